// Package dict implements the baked dictionary of spec §4.4: an
// open-addressed hash table laid out as a single contiguous binary
// blob, designed for zero-copy load and incremental hashing during
// lookup.
package dict

import "encoding/binary"

const (
	magic        = "KDIC"
	version      = uint32(1)
	headerSize   = 32
	tableEntrySize = 8 // name_offset u32 + cost f32
)

// header mirrors the 32-byte blob header of spec §3 byte-for-byte.
type header struct {
	Magic         [4]byte
	Version       uint32
	NumEntries    uint32
	TableSize     uint32
	DefaultCost   float32
	UnknownCost   float32
	MaxWordLength uint32
	_padding      uint32
}

func decodeHeader(b []byte) (header, error) {
	var h header
	if len(b) < headerSize {
		return h, errShortBlob
	}
	copy(h.Magic[:], b[0:4])
	h.Version = binary.LittleEndian.Uint32(b[4:8])
	h.NumEntries = binary.LittleEndian.Uint32(b[8:12])
	h.TableSize = binary.LittleEndian.Uint32(b[12:16])
	h.DefaultCost = float32FromBits(binary.LittleEndian.Uint32(b[16:20]))
	h.UnknownCost = float32FromBits(binary.LittleEndian.Uint32(b[20:24]))
	h.MaxWordLength = binary.LittleEndian.Uint32(b[24:28])
	return h, nil
}

func encodeHeader(b []byte, h header) {
	copy(b[0:4], h.Magic[:])
	binary.LittleEndian.PutUint32(b[4:8], h.Version)
	binary.LittleEndian.PutUint32(b[8:12], h.NumEntries)
	binary.LittleEndian.PutUint32(b[12:16], h.TableSize)
	binary.LittleEndian.PutUint32(b[16:20], float32Bits(h.DefaultCost))
	binary.LittleEndian.PutUint32(b[20:24], float32Bits(h.UnknownCost))
	binary.LittleEndian.PutUint32(b[24:28], h.MaxWordLength)
	binary.LittleEndian.PutUint32(b[28:32], 0)
}

// djb2 computes the DJB2 hash of s as an unsigned 32-bit integer:
// h0 = 5381; hn+1 = hn*33 + byte (GLOSSARY).
func djb2(s []byte) uint32 {
	h := uint32(5381)
	for _, b := range s {
		h = h*33 + uint32(b)
	}
	return h
}

// isPowerOfTwo reports whether n is a positive power of two.
func isPowerOfTwo(n uint32) bool {
	return n != 0 && n&(n-1) == 0
}
