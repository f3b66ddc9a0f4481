package arrays

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/goccy/go-yaml"
)

// Container is an ordered mapping from Key to value. Values are scalars,
// arbitrary Go values or nested *Container.
//
// Insertion order is preserved. Overwriting a key keeps its position,
// deleting it removes it from the order. The zero value is an empty
// container ready to use. A Container is not safe for concurrent use.
type Container struct {
	keys   []Key
	values map[Key]any
}

// NewContainer returns an empty container.
func NewContainer() *Container {
	return &Container{
		keys:   nil,
		values: make(map[Key]any),
	}
}

// Len returns the number of entries.
func (c *Container) Len() int {
	if c == nil {
		return 0
	}

	return len(c.keys)
}

// Keys returns a copy of the keys in order.
func (c *Container) Keys() []Key {
	if c == nil {
		return nil
	}

	return slices.Clone(c.keys)
}

// Lookup returns the value stored under k.
func (c *Container) Lookup(k Key) (any, bool) {
	if c == nil {
		return nil, false
	}

	v, ok := c.values[k]

	return v, ok
}

// Put stores v under k.
func (c *Container) Put(k Key, v any) {
	if c.values == nil {
		c.values = make(map[Key]any)
	}

	if _, exists := c.values[k]; !exists {
		c.keys = append(c.keys, k)
	}

	c.values[k] = v
}

// Delete removes k and reports whether it was present.
func (c *Container) Delete(k Key) bool {
	if c == nil {
		return false
	}

	if _, exists := c.values[k]; !exists {
		return false
	}

	delete(c.values, k)

	if i := slices.Index(c.keys, k); i >= 0 {
		c.keys = slices.Delete(c.keys, i, i+1)
	}

	return true
}

// All iterates over the entries in order.
func (c *Container) All() iter.Seq2[Key, any] {
	return func(yield func(Key, any) bool) {
		if c == nil {
			return
		}

		for _, k := range c.keys {
			if !yield(k, c.values[k]) {
				return
			}
		}
	}
}

// isList reports whether the keys are exactly the indexes 0..n-1 in order.
func (c *Container) isList() bool {
	if c.Len() == 0 {
		return false
	}

	for i, k := range c.keys {
		if !k.isIndex || k.index != i {
			return false
		}
	}

	return true
}

// Interface converts c into plain Go data: a []any when the keys are
// 0..n-1 in order, a map[string]any otherwise. Nested containers are
// converted too; other values are returned as stored.
//
// A container holding a field and an index with the same text, such as
// Field("0") and Index(0), cannot become a map[string]any; the error wraps
// ErrKeyConflict.
func (c *Container) Interface() (any, error) {
	if c == nil {
		return nil, nil
	}

	if c.isList() {
		list := make([]any, 0, len(c.keys))

		for _, k := range c.keys {
			v, err := plain(c.values[k])
			if err != nil {
				return nil, err
			}

			list = append(list, v)
		}

		return list, nil
	}

	err := c.checkConflicts()
	if err != nil {
		return nil, err
	}

	m := make(map[string]any, len(c.keys))

	for _, k := range c.keys {
		v, err := plain(c.values[k])
		if err != nil {
			return nil, err
		}

		m[k.String()] = v
	}

	return m, nil
}

func plain(v any) (any, error) {
	if child, ok := v.(*Container); ok {
		return child.Interface()
	}

	return v, nil
}

// checkConflicts reports an index whose decimal text is also a field name.
func (c *Container) checkConflicts() error {
	var fields map[string]struct{}

	for _, k := range c.keys {
		if !k.isIndex {
			if fields == nil {
				fields = make(map[string]struct{}, len(c.keys))
			}

			fields[k.name] = struct{}{}
		}
	}

	for _, k := range c.keys {
		if _, taken := fields[k.String()]; k.isIndex && taken {
			return fmt.Errorf("%w: %q", ErrKeyConflict, k.String())
		}
	}

	return nil
}

// MarshalJSON writes c as a JSON array when its keys are 0..n-1 in order
// and as an object in key order otherwise. Integer keys become their
// decimal string, so a field and an index with the same text fail with
// ErrKeyConflict instead of producing duplicate object keys.
func (c *Container) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("null"), nil
	}

	list := c.isList()
	if !list {
		err := c.checkConflicts()
		if err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer

	if list {
		buf.WriteByte('[')
	} else {
		buf.WriteByte('{')
	}

	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		if !list {
			name, err := json.Marshal(k.String())
			if err != nil {
				return nil, fmt.Errorf("encoding key %q: %w", k.String(), err)
			}

			buf.Write(name)
			buf.WriteByte(':')
		}

		value, err := json.Marshal(c.values[k])
		if err != nil {
			return nil, fmt.Errorf("encoding value at %q: %w", k.String(), err)
		}

		buf.Write(value)
	}

	if list {
		buf.WriteByte(']')
	} else {
		buf.WriteByte('}')
	}

	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.InterfaceMarshaler. Containers become ordered
// mappings, or sequences when their keys are 0..n-1 in order.
func (c *Container) MarshalYAML() (any, error) {
	return toYAML(c), nil
}

func toYAML(v any) any {
	c, ok := v.(*Container)
	if !ok {
		return v
	}

	if c == nil {
		return nil
	}

	if c.isList() {
		list := make([]any, 0, len(c.keys))
		for _, k := range c.keys {
			list = append(list, toYAML(c.values[k]))
		}

		return list
	}

	mapSlice := make(yaml.MapSlice, 0, len(c.keys))
	for _, k := range c.keys {
		mapSlice = append(mapSlice, yaml.MapItem{Key: k.Value(), Value: toYAML(c.values[k])})
	}

	return mapSlice
}

// FromValue converts decoded data into a Container. It accepts
// yaml.MapSlice (order kept), map[string]any and map[any]any (sorted keys,
// indexes first), []any (keys 0..n-1) and *Container (returned as is).
// Nested values are converted with Normalize.
func FromValue(v any) (*Container, error) {
	c, ok := Normalize(v).(*Container)
	if !ok || c == nil {
		return nil, fmt.Errorf("%w: %T", ErrNotContainer, v)
	}

	return c, nil
}

// Normalize converts every map and slice reachable from v into a
// *Container. Other values are returned unchanged.
func Normalize(v any) any {
	switch t := v.(type) {
	case *Container:
		return t
	case yaml.MapSlice:
		c := NewContainer()
		for _, item := range t {
			c.Put(mapKey(item.Key), Normalize(item.Value))
		}

		return c
	case map[string]any:
		c := NewContainer()
		for _, name := range slices.Sorted(maps.Keys(t)) {
			c.Put(Field(name), Normalize(t[name]))
		}

		return c
	case map[any]any:
		keys := make([]Key, 0, len(t))
		byKey := make(map[Key]any, len(t))

		for raw, value := range t {
			k := mapKey(raw)
			keys = append(keys, k)
			byKey[k] = value
		}

		slices.SortFunc(keys, compareKeys)

		c := NewContainer()
		for _, k := range keys {
			c.Put(k, Normalize(byKey[k]))
		}

		return c
	case []any:
		c := NewContainer()
		for i, item := range t {
			c.Put(Index(i), Normalize(item))
		}

		return c
	default:
		return v
	}
}

// mapKey turns a decoded mapping key into a Key. Keys that are neither
// strings nor integers (booleans, floats, ...) are kept by their text form.
func mapKey(raw any) Key {
	if k, ok := keyOf(raw); ok {
		return k
	}

	return Field(fmt.Sprint(raw))
}

func compareKeys(a, b Key) int {
	switch {
	case a.isIndex && b.isIndex:
		return cmp.Compare(a.index, b.index)
	case a.isIndex:
		return -1
	case b.isIndex:
		return 1
	default:
		return cmp.Compare(a.name, b.name)
	}
}
