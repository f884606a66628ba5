// Package charclass classifies Unicode codepoints into the character
// classes used by the Khmer segmentation pipeline (see data model §3).
package charclass

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Class is one of the character classes of the data model.
type Class int

const (
	Other Class = iota
	Base
	Coeng
	Register
	DepVowel
	Sign
	KhmerDigit
	ASCIIDigit
	Separator
)

func (c Class) String() string {
	switch c {
	case Base:
		return "Base"
	case Coeng:
		return "Coeng"
	case Register:
		return "Register"
	case DepVowel:
		return "DepVowel"
	case Sign:
		return "Sign"
	case KhmerDigit:
		return "KhmerDigit"
	case ASCIIDigit:
		return "ASCIIDigit"
	case Separator:
		return "Separator"
	default:
		return "Other"
	}
}

// Range tables for each class. Built from explicit Unicode ranges the
// way x/text's own generated tables are shaped, then merged where a
// class is the union of several disjoint blocks.
var (
	baseConsonantTable = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x1780, Hi: 0x17A2, Stride: 1}},
	}
	independentVowelTable = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x17A3, Hi: 0x17B3, Stride: 1}},
	}
	coengTable = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x17D2, Hi: 0x17D2, Stride: 1}},
	}
	registerTable = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x17C9, Hi: 0x17CA, Stride: 1}},
	}
	depVowelTable = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x17B6, Hi: 0x17C5, Stride: 1}},
	}
	signTable = rangetable.Merge(
		&unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x17C6, Hi: 0x17D1, Stride: 1}}},
		rangetable.New(0x17D3, 0x17DD),
	)
	khmerDigitTable = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x17E0, Hi: 0x17E9, Stride: 1}},
	}
	asciiDigitTable = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: '0', Hi: '9', Stride: 1}},
	}
	khmerPunctTable = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x17D4, Hi: 0x17DB, Stride: 1}},
	}
	generalPunctTable = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x2000, Hi: 0x206F, Stride: 1}},
	}
	currencyTable = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x20A0, Hi: 0x20CF, Stride: 1}},
	}
	// Individual ASCII punctuation/space plus guillemets, curly quotes,
	// the double-acute accent, and NBSP: too sparse to express as a
	// contiguous range, so they're listed as runes and folded into a
	// table with rangetable.New.
	asciiPunctRunes = []rune{
		'!', '?', '.', ',', ';', ':', '"', '\'', '(', ')', '[', ']', '{', '}',
		'-', '/', ' ', '%', '$',
		0x00A0, // non-breaking space
		0x00AB, 0x00BB, // guillemets
		0x201C, 0x201D, // curly quotes
		0x02DD, // double acute accent
	}
	asciiPunctTable = rangetable.New(asciiPunctRunes...)

	separatorTable = rangetable.Merge(
		khmerPunctTable,
		generalPunctTable,
		currencyTable,
		asciiPunctTable,
	)

	baseTable = rangetable.Merge(baseConsonantTable, independentVowelTable)
)

// Of returns the character class of r.
func Of(r rune) Class {
	switch {
	case unicode.Is(baseTable, r):
		return Base
	case unicode.Is(coengTable, r):
		return Coeng
	case unicode.Is(registerTable, r):
		return Register
	case unicode.Is(depVowelTable, r):
		return DepVowel
	case unicode.Is(signTable, r):
		return Sign
	case unicode.Is(khmerDigitTable, r):
		return KhmerDigit
	case unicode.Is(asciiDigitTable, r):
		return ASCIIDigit
	case unicode.Is(separatorTable, r):
		return Separator
	default:
		return Other
	}
}

// IsBase reports whether r is a BASE codepoint (consonant or
// independent vowel, U+1780-U+17B3).
func IsBase(r rune) bool { return unicode.Is(baseTable, r) }

// IsBaseConsonant reports whether r is a Khmer consonant, U+1780-U+17A2.
// Distinct from IsBase: independent vowels are BASE but not consonants,
// and the rule engine (§4.3) only ever matches against consonants.
func IsBaseConsonant(r rune) bool { return unicode.Is(baseConsonantTable, r) }

// IsCoeng reports whether r is the subscript marker U+17D2.
func IsCoeng(r rune) bool { return r == 0x17D2 }

// IsRo reports whether r is the consonant Ro, U+179A.
func IsRo(r rune) bool { return r == 0x179A }

// IsRegister reports whether r is a register shifter.
func IsRegister(r rune) bool { return unicode.Is(registerTable, r) }

// IsDepVowel reports whether r is a dependent vowel, U+17B6-U+17C5.
func IsDepVowel(r rune) bool { return unicode.Is(depVowelTable, r) }

// IsSign reports whether r is a sign/diacritic.
func IsSign(r rune) bool { return unicode.Is(signTable, r) }

// IsDigit reports whether r is an ASCII or Khmer digit.
func IsDigit(r rune) bool {
	return unicode.Is(asciiDigitTable, r) || unicode.Is(khmerDigitTable, r)
}

// IsSeparator reports whether r is a separator/punctuation codepoint.
func IsSeparator(r rune) bool { return unicode.Is(separatorTable, r) }

// IsKhmerBlock reports whether r falls in the main Khmer Unicode
// block or the Khmer Symbols block (U+1780-U+17FF, U+19E0-U+19FF).
// Used to gate the unknown-cluster +10 penalty of §4.2 transition 6
// ("the cluster is a single Khmer codepoint") and the invalid single
// consonant check of the rule engine (§4.3 rule 5).
func IsKhmerBlock(r rune) bool {
	return (r >= 0x1780 && r <= 0x17FF) || (r >= 0x19E0 && r <= 0x19FF)
}

// currencySymbols are the prefix symbols of a currency-led number group.
var currencySymbols = map[rune]bool{
	'$': true, 0x17DB: true, 0x20AC: true, 0x00A3: true, 0x00A5: true,
}

// IsCurrencySymbol reports whether r can lead a currency number group.
func IsCurrencySymbol(r rune) bool { return currencySymbols[r] }

// validSingleWords are BASE codepoints that may stand alone as a
// single-character word without being penalized as an invalid
// single consonant (spec §4.2 transition 6, §4.3 rule 5). Ported from
// the teacher's ValidSingleWords map.
var validSingleWords = map[rune]bool{
	0x1780: true, 0x1781: true, 0x1782: true, 0x1784: true, 0x1785: true,
	0x1786: true, 0x1789: true, 0x178A: true, 0x178F: true, 0x1791: true,
	0x1796: true, 0x179A: true, 0x179B: true, 0x179F: true, 0x17A1: true, // consonants
	0x17AC: true, 0x17AE: true, 0x17AA: true, 0x17AF: true, 0x17B1: true,
	0x17A6: true, 0x17A7: true, 0x17B3: true, // independent vowels
}

// IsValidSingleWord reports whether r may stand alone as a single-rune word.
func IsValidSingleWord(r rune) bool { return validSingleWords[r] }
