package dict

import (
	"bytes"
	"fmt"
)

// Dictionary is an immutable, loaded baked dictionary blob. It is
// safe for unsynchronized concurrent reads once Load returns
// (spec §4.4 "Concurrency").
type Dictionary struct {
	raw   []byte
	table []byte // tableSize*8 bytes, immediately after the header
	pool  []byte // NUL-terminated word bytes

	tableSize     uint32
	mask          uint32
	numEntries    uint32
	DefaultCost   float32
	UnknownCost   float32
	MaxWordLength int

	closer func() error // non-nil when raw is mmap-backed
}

// Load validates and wraps a baked dictionary blob already resident
// in memory (e.g. from os.ReadFile or an mmap region). It performs the
// header checks of spec §4.4 Load and returns ErrInvalidDictionary on
// any failure.
func Load(raw []byte, closer func() error) (*Dictionary, error) {
	h, err := decodeHeader(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDictionary, err)
	}
	if string(h.Magic[:]) != magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrInvalidDictionary, h.Magic[:])
	}
	if h.Version != version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidDictionary, h.Version)
	}
	if !isPowerOfTwo(h.TableSize) {
		return nil, fmt.Errorf("%w: table_size %d is not a power of two", ErrInvalidDictionary, h.TableSize)
	}
	tableBytes := int(h.TableSize) * tableEntrySize
	tableEnd := headerSize + tableBytes
	if tableEnd > len(raw) {
		return nil, fmt.Errorf("%w: table extends past blob end", ErrInvalidDictionary)
	}
	pool := raw[tableEnd:]
	if len(pool) == 0 || pool[0] != 0 {
		return nil, fmt.Errorf("%w: string pool missing empty-marker byte", ErrInvalidDictionary)
	}

	d := &Dictionary{
		raw:           raw,
		table:         raw[headerSize:tableEnd],
		pool:          pool,
		tableSize:     h.TableSize,
		mask:          h.TableSize - 1,
		numEntries:    h.NumEntries,
		DefaultCost:   h.DefaultCost,
		UnknownCost:   h.UnknownCost,
		MaxWordLength: int(h.MaxWordLength),
		closer:        closer,
	}

	if err := d.validateOffsets(); err != nil {
		return nil, err
	}
	return d, nil
}

// validateOffsets walks every occupied slot and rejects any
// name_offset that would read past the pool, or that is not
// NUL-terminated within the pool (spec §7 InvalidDictionary).
func (d *Dictionary) validateOffsets() error {
	for i := uint32(0); i < d.tableSize; i++ {
		off, _ := d.tableEntry(i)
		if off == 0 {
			continue
		}
		if int(off) >= len(d.pool) {
			return fmt.Errorf("%w: slot %d name_offset %d out of range", ErrInvalidDictionary, i, off)
		}
		end := bytes.IndexByte(d.pool[off:], 0)
		if end < 0 {
			return fmt.Errorf("%w: slot %d word not NUL-terminated", ErrInvalidDictionary, i)
		}
	}
	return nil
}

// tableEntry returns the (name_offset, cost) pair at table slot idx.
func (d *Dictionary) tableEntry(idx uint32) (nameOffset uint32, cost float32) {
	base := idx * tableEntrySize
	nameOffset = uint32(d.table[base]) | uint32(d.table[base+1])<<8 |
		uint32(d.table[base+2])<<16 | uint32(d.table[base+3])<<24
	bits := uint32(d.table[base+4]) | uint32(d.table[base+5])<<8 |
		uint32(d.table[base+6])<<16 | uint32(d.table[base+7])<<24
	cost = float32FromBits(bits)
	return nameOffset, cost
}

// Close releases any mmap-backed resources. Safe to call on a
// Dictionary loaded from a plain in-memory blob (no-op).
func (d *Dictionary) Close() error {
	if d.closer != nil {
		return d.closer()
	}
	return nil
}

// NumEntries reports the number of words baked into the dictionary.
func (d *Dictionary) NumEntries() int { return int(d.numEntries) }

// TableSize reports the open-addressing table's slot count.
func (d *Dictionary) TableSize() int { return int(d.tableSize) }

// Lookup computes the DJB2 hash of s from scratch and probes the
// table (spec §4.4 "Lookup by byte slice").
func (d *Dictionary) Lookup(s []byte) (cost float32, ok bool) {
	return d.probe(djb2(s), s)
}

// LookupHash probes the table for s using an already-computed DJB2
// hash, as produced by an IncrementalHash folded over s's bytes. This
// is the hot-path entry point used by the Viterbi engine's dictionary
// transition (spec §4.4 "Incremental lookup").
func (d *Dictionary) LookupHash(h uint32, s []byte) (cost float32, ok bool) {
	return d.probe(h, s)
}

func (d *Dictionary) probe(h uint32, s []byte) (float32, bool) {
	if len(s) == 0 {
		return 0, false
	}
	idx := h & d.mask
	for {
		off, cost := d.tableEntry(idx)
		if off == 0 {
			return 0, false
		}
		if d.matchPoolWord(off, s) {
			return cost, true
		}
		idx = (idx + 1) & d.mask
	}
}

// matchPoolWord implements the fast-path compare of spec §4.4: first
// byte, then a length-bounded bytewise compare, then the trailing NUL
// sentinel, avoiding a scan for the pool word's own length.
func (d *Dictionary) matchPoolWord(off uint32, s []byte) bool {
	pool := d.pool
	o := int(off)
	if pool[o] != s[0] {
		return false
	}
	end := o + len(s)
	if end >= len(pool) {
		return false
	}
	if !bytes.Equal(pool[o:end], s) {
		return false
	}
	return pool[end] == 0
}

// IncrementalHash folds DJB2 one byte at a time, amortizing hash
// computation across every dictionary candidate sharing a starting
// position (spec §4.4 "Incremental lookup").
type IncrementalHash struct {
	h uint32
}

// NewIncrementalHash returns a hash folder seeded at the DJB2 initial
// value 5381.
func NewIncrementalHash() IncrementalHash { return IncrementalHash{h: 5381} }

// Fold mixes the next byte into the running hash.
func (ih *IncrementalHash) Fold(b byte) { ih.h = ih.h*33 + uint32(b) }

// Sum returns the current hash value.
func (ih IncrementalHash) Sum() uint32 { return ih.h }
