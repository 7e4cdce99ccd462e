// Package ast implements the packed binary encoding of JavaScript syntax
// trees used by the Perch engine, together with the writer, reader and
// diagnostic tooling that operate on it.
//
// The format is designed for:
//   - Compact representation (one tag byte per node, no alignment padding)
//   - Position independence (a serialized tree is a plain byte string)
//   - Random access (16-bit forward "skips" let a reader jump past any
//     subtree or sequence without understanding its tag)
//
// # Node layout
//
// Every node starts with a one-byte tag drawn from the closed catalogue in
// NodeDefs. The tag is followed, in order, by:
//
//   - NumSkips big-endian 16-bit forward offsets, each counted from the
//     first byte after the tag (the node's payload start)
//   - if HasVarint, an unsigned LEB128 byte length
//   - if HasInlined, that many bytes of raw payload (identifier text,
//     literal text, regex source, label)
//   - NumSubtrees fixed children, each a complete serialized node
//   - zero or more trailing child sequences, bounded by the skips
//
// Sequences of trailing children have no terminator tag: every node whose
// position is before the END skip belongs to the sequence. Skip slot 0 is
// always END, so a reader that knows nothing about a tag can still advance
// past the whole node. Additional slots partition the trailing children into
// named groups (IF's iffalse branch, TRY's catch and finally blocks) or act
// as cross-references (VAR's next, FUNC's first-var hoisting chain).
//
// Skips are 16-bit, which caps a function body at 64 KiB of serialized tree.
//
// # Building
//
// Writing is append-dominant: AddNode reserves zeroed skip slots, children
// are appended, and SetSkip patches the slots as each sequence closes. Nodes
// can also be inserted before already-written material (InsertNode), which
// invalidates any payload-start offsets the caller holds at or after the
// insertion point.
//
// The tag constants in tags_gen.go are generated from NodeDefs by
// cmd/genschema; regenerate after any table change so that producers and
// consumers cannot drift apart.
package ast
