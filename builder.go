package arrays

import (
	"fmt"
	"log/slog"
)

// Builder reads and writes values in a root Container by key path.
//
// The Builder owns its root: Set and Remove mutate it in place and it is
// never replaced. Callers must not mutate the root through other references
// while the Builder is in use. A Builder is not safe for concurrent use.
type Builder struct {
	root *Container
	err  error
}

// New returns a Builder that owns root. A nil root is replaced by an empty container.
func New(root *Container) *Builder {
	if root == nil {
		root = NewContainer()
	}

	return &Builder{
		root: root,
		err:  nil,
	}
}

// Container returns the root container.
func (b *Builder) Container() *Container {
	return b.root
}

// Err returns the first path error recorded by Set or Remove.
func (b *Builder) Err() error {
	return b.err
}

// Get returns the value at path, or def when any key along the path is
// missing or addresses a value that is not a container. Get never creates
// structure. Nested containers are returned by reference.
//
// The error is non-nil only when path is invalid.
func (b *Builder) Get(path any, def any) (any, error) {
	keys, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	var node any = b.root

	for _, key := range keys {
		current, ok := node.(*Container)
		if !ok {
			return def, nil
		}

		node, ok = current.Lookup(key)
		if !ok {
			return def, nil
		}
	}

	return node, nil
}

// Set stores value at path and returns b.
//
// Every intermediate key that is missing, or that holds something other than
// a container, is replaced by a new empty container before descending, so the
// write always completes. Whatever was at the final key is overwritten.
//
// An invalid path is recorded on b (see Err) and nothing is changed. Set does
// nothing once an error has been recorded.
func (b *Builder) Set(path any, value any) *Builder {
	if b.err != nil {
		return b
	}

	keys, err := ParsePath(path)
	if err != nil {
		b.err = err

		return b
	}

	parent := b.root
	last := len(keys) - 1

	for _, key := range keys[:last] {
		parent = descendOrCreate(parent, key)
	}

	parent.Put(keys[last], value)

	return b
}

func descendOrCreate(parent *Container, key Key) *Container {
	existing, found := parent.Lookup(key)

	child, ok := existing.(*Container)
	if ok && child != nil {
		return child
	}

	if found {
		slog.Debug("replacing non-container value along key path",
			slog.String("key", key.String()),
			slog.String("type", fmt.Sprintf("%T", existing)))
	}

	child = NewContainer()
	parent.Put(key, child)

	return child
}

// Remove deletes the value at path and returns b.
//
// When an intermediate key is missing or does not hold a container, or the
// final key is absent, Remove does nothing. It never creates structure.
//
// An invalid path is recorded on b (see Err) and nothing is changed. Remove
// does nothing once an error has been recorded.
func (b *Builder) Remove(path any) *Builder {
	if b.err != nil {
		return b
	}

	keys, err := ParsePath(path)
	if err != nil {
		b.err = err

		return b
	}

	parent := b.root
	last := len(keys) - 1

	for _, key := range keys[:last] {
		existing, _ := parent.Lookup(key)

		child, ok := existing.(*Container)
		if !ok || child == nil {
			return b
		}

		parent = child
	}

	parent.Delete(keys[last])

	return b
}
