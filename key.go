package arrays

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Key addresses one entry of a Container. It is either a string field or an
// integer index; Field("0") and Index(0) are different keys.
type Key struct {
	name    string
	index   int
	isIndex bool
}

// Field returns a string key.
func Field(name string) Key {
	return Key{name: name}
}

// Index returns an integer key.
func Index(i int) Key {
	return Key{index: i, isIndex: true}
}

// IsIndex reports whether k is an integer key.
func (k Key) IsIndex() bool {
	return k.isIndex
}

// Name returns the field name of a string key, or "" for an integer key.
func (k Key) Name() string {
	return k.name
}

// Int returns the index of an integer key, or 0 for a string key.
func (k Key) Int() int {
	return k.index
}

// String returns the field name or the decimal index.
func (k Key) String() string {
	if k.isIndex {
		return strconv.Itoa(k.index)
	}

	return k.name
}

// Value returns the key as a plain Go value: string or int.
func (k Key) Value() any {
	if k.isIndex {
		return k.index
	}

	return k.name
}

// Path is an ordered sequence of keys, outermost first.
type Path []Key

// String joins the keys with ':'.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, k := range p {
		parts[i] = k.String()
	}

	return strings.Join(parts, ":")
}

// ParsePath validates path and returns it as a Path.
//
// path may be a bare key (string, any integer type, Key) or a sequence
// (Path, []Key, []string, []int, []any). The result must hold at least one
// key and every element must be a string or an integer; otherwise the error
// wraps ErrInvalidPath. The returned Path never aliases the input.
func ParsePath(path any) (Path, error) {
	var keys Path

	switch p := path.(type) {
	case nil:
		return nil, fmt.Errorf("%w: path must not be nil", ErrInvalidPath)
	case Path:
		keys = append(Path(nil), p...)
	case []Key:
		keys = append(Path(nil), p...)
	case []string:
		keys = make(Path, len(p))
		for i, name := range p {
			keys[i] = Field(name)
		}
	case []int:
		keys = make(Path, len(p))
		for i, idx := range p {
			keys[i] = Index(idx)
		}
	case []any:
		keys = make(Path, len(p))

		for i, elem := range p {
			key, ok := keyOf(elem)
			if !ok {
				return nil, fmt.Errorf("%w: element %d has unsupported type %T", ErrInvalidPath, i, elem)
			}

			keys[i] = key
		}
	default:
		key, ok := keyOf(path)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported key type %T", ErrInvalidPath, path)
		}

		keys = Path{key}
	}

	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: path must contain at least one key", ErrInvalidPath)
	}

	return keys, nil
}

// SplitPath splits s on sep into a Path. Segments made only of ASCII digits
// become integer keys, everything else becomes a string key. An empty s
// yields an empty Path.
func SplitPath(s, sep string) Path {
	if s == "" {
		return Path{}
	}

	parts := strings.Split(s, sep)
	keys := make(Path, len(parts))

	for i, part := range parts {
		keys[i] = parseSegment(part)
	}

	return keys
}

// ResolvePath matches the index keys of path against the data under root.
// An index that the container at its position does not hold is replaced by
// the field with the same decimal text when that field exists, so a text
// path such as "items:0" reaches a "0" key decoded from a JSON object.
// Resolution stops at the first key that does not lead to a container; the
// remaining keys are kept as they are.
func ResolvePath(root *Container, path Path) Path {
	resolved := slices.Clone(path)
	node := root

	for i, key := range resolved {
		if key.isIndex {
			if _, ok := node.Lookup(key); !ok {
				field := Field(key.String())
				if _, ok := node.Lookup(field); ok {
					resolved[i] = field
					key = field
				}
			}
		}

		next, _ := node.Lookup(key)

		child, ok := next.(*Container)
		if !ok || child == nil {
			break
		}

		node = child
	}

	return resolved
}

func parseSegment(s string) Key {
	if s == "" || len(s) > 1 && s[0] == '0' {
		return Field(s)
	}

	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return Field(s)
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return Field(s)
	}

	return Index(n)
}

//nolint:cyclop // one case per Go integer kind
func keyOf(v any) (Key, bool) {
	switch k := v.(type) {
	case Key:
		return k, true
	case string:
		return Field(k), true
	case int:
		return Index(k), true
	case int8:
		return Index(int(k)), true
	case int16:
		return Index(int(k)), true
	case int32:
		return Index(int(k)), true
	case int64:
		if k > math.MaxInt || k < math.MinInt {
			return Key{}, false
		}

		return Index(int(k)), true
	case uint:
		return uintKey(uint64(k))
	case uint8:
		return Index(int(k)), true
	case uint16:
		return Index(int(k)), true
	case uint32:
		return uintKey(uint64(k))
	case uint64:
		return uintKey(k)
	default:
		return Key{}, false
	}
}

func uintKey(u uint64) (Key, bool) {
	if u > math.MaxInt {
		return Key{}, false
	}

	return Index(int(u)), true
}
