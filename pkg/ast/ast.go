package ast

import (
	"fmt"
	"io"
)

// AST is a serialized syntax tree: one root node (typically SCRIPT) in the
// packed layout described in the package documentation, held in a growable
// byte buffer.
//
// An AST is mutably owned by one writer at a time. Readers need the buffer
// to stay unmodified for the duration of a walk; any number of them may
// share an immutable buffer.
type AST struct {
	buf []byte
}

// New returns an empty AST with the given initial capacity.
func New(capacity int) *AST {
	return &AST{buf: make([]byte, 0, capacity)}
}

// FromBytes wraps an already-serialized tree. The AST takes ownership of b.
func FromBytes(b []byte) *AST {
	return &AST{buf: b}
}

// Len returns the current buffer length in bytes.
func (a *AST) Len() int {
	return len(a.buf)
}

// Bytes returns the underlying buffer. The slice is invalidated by any
// subsequent writer operation.
func (a *AST) Bytes() []byte {
	return a.buf
}

// Trim reallocates the buffer to its exact length, releasing building
// slack. Call once the tree is complete.
func (a *AST) Trim() {
	if cap(a.buf) > len(a.buf) {
		b := make([]byte, len(a.buf))
		copy(b, a.buf)
		a.buf = b
	}
}

// WriteTo writes the serialized tree to w.
func (a *AST) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(a.buf)
	return int64(n), err
}

// insertZeros makes room for n zero bytes at position at.
func (a *AST) insertZeros(at, n int) {
	if at < 0 || at > len(a.buf) {
		panic(fmt.Sprintf("ast: insert at %d outside buffer of %d", at, len(a.buf)))
	}
	a.buf = append(a.buf, make([]byte, n)...)
	copy(a.buf[at+n:], a.buf[at:])
	for i := at; i < at+n; i++ {
		a.buf[i] = 0
	}
}

// insertBytes inserts b at position at.
func (a *AST) insertBytes(at int, b []byte) {
	a.insertZeros(at, len(b))
	copy(a.buf[at:], b)
}

// AddNode appends a node header for tag: the tag byte followed by zeroed
// skip slots. The caller appends the children and patches the skips with
// SetSkip as sequences close.
//
// Returns the offset of the node payload (one byte after the tag), the
// anchor every skip of this node is measured from.
func (a *AST) AddNode(tag Tag) int {
	if !tag.Valid() {
		panic(fmt.Sprintf("ast: unknown tag %d", tag))
	}
	d := tag.Def()
	start := len(a.buf)
	a.buf = append(a.buf, byte(tag))
	a.buf = append(a.buf, make([]byte, d.NumSkips*skipSize)...)
	return start + 1
}

// InsertNode is AddNode at an arbitrary earlier offset. The END skip of the
// new node is immediately pointed at the current buffer end, so a node
// inserted with no further children is well-formed.
//
// Inserting invalidates every payload offset at or after at that the
// caller still holds.
func (a *AST) InsertNode(at int, tag Tag) int {
	if !tag.Valid() {
		panic(fmt.Sprintf("ast: unknown tag %d", tag))
	}
	d := tag.Def()
	a.insertZeros(at, 1+d.NumSkips*skipSize)
	a.buf[at] = byte(tag)
	if d.NumSkips > 0 {
		a.SetSkip(at+1, SkipEnd)
	}
	return at + 1
}

// SetSkip patches the given skip slot of the node whose payload starts at
// start with the current buffer length. Call it when a node with trailing
// children closes, or to record a shortcut for the reader.
func (a *AST) SetSkip(start int, which Skip) int {
	return a.ModifySkip(start, len(a.buf), which)
}

// ModifySkip is SetSkip with an explicit target offset. The delta between
// target and start must fit the 16-bit slot; larger subtrees are a
// documented format limit, not a recoverable condition.
func (a *AST) ModifySkip(start, target int, which Skip) int {
	tag := Tag(a.buf[start-1])
	d := tag.Def()
	if int(which) >= d.NumSkips {
		panic(fmt.Sprintf("ast: %s has no skip %d", tag, which))
	}
	delta := target - start
	if delta < 0 || delta >= maxSkip {
		panic(fmt.Sprintf("ast: skip delta %d out of range for %s", delta, tag))
	}
	slot := start + int(which)*skipSize
	a.buf[slot] = byte(delta >> 8)
	a.buf[slot+1] = byte(delta)
	if tag == TagForIn && which == SkipEnd {
		// FOR_IN's reserved second slot follows END.
		a.buf[slot+skipSize] = byte(delta >> 8)
		a.buf[slot+skipSize+1] = byte(delta)
	}
	return target
}

// embedString inserts a varint-prefixed byte payload at position at.
func (a *AST) embedString(at int, data string) {
	b := appendVarint(make([]byte, 0, varintLen(uint64(len(data)))+len(data)), uint64(len(data)))
	b = append(b, data...)
	a.insertBytes(at, b)
}

// AddInlined appends a node carrying inline payload bytes (NUM, IDENT,
// STRING, REGEX, LABEL, and the named shapes VAR_DECL, FUNC_DECL, MEMBER,
// PROP).
func (a *AST) AddInlined(tag Tag, data string) {
	if !tag.Def().HasInlined {
		panic(fmt.Sprintf("ast: %s takes no inline data", tag))
	}
	a.embedString(a.AddNode(tag), data)
}

// InsertInlined is AddInlined at an arbitrary earlier offset.
func (a *AST) InsertInlined(at int, tag Tag, data string) {
	if !tag.Def().HasInlined {
		panic(fmt.Sprintf("ast: %s takes no inline data", tag))
	}
	a.embedString(a.InsertNode(at, tag), data)
}
