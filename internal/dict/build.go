package dict

import (
	"bytes"
	"sort"
)

// Entry is a single (word, cost) pair destined for the baked blob.
type Entry struct {
	Word []byte
	Cost float32
}

// loadFactor bounds the occupied fraction of the open-addressing
// table (spec §4.4 Build: "load_factor <= 0.75").
const loadFactor = 0.75

// tableSizeFor returns the smallest power of two >= ceil(n/loadFactor).
func tableSizeFor(n int) uint32 {
	size := uint32(1)
	for float64(n)/float64(size) > loadFactor {
		size <<= 1
	}
	return size
}

// Build serializes entries into a baked dictionary blob (spec §4.4
// "Build (reference — performed offline, not on the hot path)").
// defaultCost and unknownCost are stored in the header for the
// runtime engine's default-cost and unknown-cost transitions.
// Entries are sorted by word before insertion so repeated builds of
// the same entry set produce byte-identical blobs; word uniqueness is
// the caller's responsibility (a duplicate word gets its own pool copy
// and the next free probe slot, is counted in num_entries, and is
// never returned by a lookup, which stops at the first copy).
func Build(entries []Entry, defaultCost, unknownCost float32) []byte {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].Word, sorted[j].Word) < 0
	})

	tableSize := tableSizeFor(len(sorted))
	mask := tableSize - 1

	pool := []byte{0}
	offsets := make([]uint32, len(sorted))
	maxWordLength := 0
	for i, e := range sorted {
		offsets[i] = uint32(len(pool))
		pool = append(pool, e.Word...)
		pool = append(pool, 0)
		if len(e.Word) > maxWordLength {
			maxWordLength = len(e.Word)
		}
	}

	nameOffsets := make([]uint32, tableSize)
	costs := make([]float32, tableSize)
	occupied := make([]bool, tableSize)

	for i, e := range sorted {
		idx := djb2(e.Word) & mask
		for occupied[idx] {
			idx = (idx + 1) & mask
		}
		occupied[idx] = true
		nameOffsets[idx] = offsets[i]
		costs[idx] = e.Cost
	}

	tableBytes := make([]byte, int(tableSize)*tableEntrySize)
	for i := uint32(0); i < tableSize; i++ {
		base := i * tableEntrySize
		off := nameOffsets[i]
		tableBytes[base+0] = byte(off)
		tableBytes[base+1] = byte(off >> 8)
		tableBytes[base+2] = byte(off >> 16)
		tableBytes[base+3] = byte(off >> 24)
		bits := float32Bits(costs[i])
		tableBytes[base+4] = byte(bits)
		tableBytes[base+5] = byte(bits >> 8)
		tableBytes[base+6] = byte(bits >> 16)
		tableBytes[base+7] = byte(bits >> 24)
	}

	out := make([]byte, headerSize+len(tableBytes)+len(pool))
	encodeHeader(out, header{
		Magic:         [4]byte{'K', 'D', 'I', 'C'},
		Version:       version,
		NumEntries:    uint32(len(sorted)),
		TableSize:     tableSize,
		DefaultCost:   defaultCost,
		UnknownCost:   unknownCost,
		MaxWordLength: uint32(maxWordLength),
	})
	copy(out[headerSize:], tableBytes)
	copy(out[headerSize+len(tableBytes):], pool)
	return out
}
