package arrays

import "errors"

// ErrInvalidPath is returned when a key path is empty or contains an element
// that is neither a string nor an integer.
var ErrInvalidPath = errors.New("invalid key path")

// ErrNotContainer is returned by FromValue when the value cannot be turned into a Container.
var ErrNotContainer = errors.New("value is not a container")

// ErrKeyConflict is returned when a container holding a field and an index
// with the same text, such as Field("0") and Index(0), is encoded into a
// form with string keys only.
var ErrKeyConflict = errors.New("field and index keys share the same text")
