// Package ptr provides explicitly released owning pointers: Shared and Weak,
// which coordinate through one reference-counted control block, and Unique,
// a sole owner.
//
// Go has no destructors, so every handle must be released explicitly with
// Release (or consumed by Move, Assign, MoveFrom or Reset). When the last
// Shared handle to a pointee is released the pointee's deleter runs, exactly
// once. Weak handles observe the pointee without keeping it alive; the
// control block is abandoned once no Shared and no Weak handle refers to it.
//
// Handles are pointers. Copying a *Shared copies the handle, not the
// ownership: use Clone to take another counted reference.
//
// The default deleter calls Close on pointees that implement io.Closer and
// discards its error. Use WithDeleter to observe the error or to release
// other resources.
//
// None of the types are safe for concurrent use; the counts are plain ints.
package ptr
