package dict

import "errors"

// ErrInvalidDictionary is the InvalidDictionary error kind of spec
// §7: bad magic, wrong version, non-power-of-two table size, an
// offset out of range, or a string pool that is not NUL-terminated
// where expected. A dictionary that fails this check must fail to
// construct rather than produce a segmenter that silently
// mis-segments.
var ErrInvalidDictionary = errors.New("dict: invalid dictionary")

var errShortBlob = errors.New("dict: blob shorter than header")
