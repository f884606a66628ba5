//go:build unix

package dict

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// LoadFile memory-maps path read-only and validates it as a baked
// dictionary blob, giving the zero-copy load spec §4.4 asks for. The
// mapping is released by Dictionary.Close.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrInvalidDictionary)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("dict: mmap %s: %w", path, err)
	}

	d, err := Load(data, func() error { return unix.Munmap(data) })
	if err != nil {
		_ = unix.Munmap(data)
		return nil, err
	}
	return d, nil
}
