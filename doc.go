// Package arrays reads, writes and removes values inside nested containers
// addressed by a path of keys.
//
// A Container is an ordered mapping whose keys are either string fields or
// integer indexes, so a single document can mix both kinds at any depth.
// Nested containers are held by pointer; a Builder owns a root container and
// mutates it in place.
//
// # Paths
//
// Every operation takes a key path. A path is either a bare key or a sequence
// of keys, outermost first:
//
//	b.Get("message", nil)
//	b.Get([]any{"user", "roles", 0}, nil)
//	b.Get(arrays.Path{arrays.Field("user"), arrays.Index(0)}, nil)
//
// An empty path, or one holding anything other than strings and integers,
// fails with ErrInvalidPath. Missing data is never an error: Get returns the
// supplied default and Remove does nothing.
//
// # Chaining
//
// Set and Remove return the builder so calls can be chained. The first path
// error is kept on the builder and reported by Err; once an error is recorded
// the remaining mutations in the chain are skipped.
//
//	b := arrays.New(root).
//	    Set([]any{"user", "id"}, 123).
//	    Remove("message")
//	if err := b.Err(); err != nil {
//	    return err
//	}
//
// Set repairs the path it writes through: a missing intermediate key, or one
// holding a non-container value, is replaced with an empty container.
package arrays
