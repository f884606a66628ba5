//go:build !unix

package dict

import "os"

// LoadFile reads path into memory and validates it as a baked
// dictionary blob. On non-Unix platforms there is no golang.org/x/sys
// mmap primitive wired up, so this falls back to a plain read; the
// dictionary is still immutable and safe for concurrent reads once
// loaded, it just isn't zero-copy on this platform.
func LoadFile(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(data, nil)
}
