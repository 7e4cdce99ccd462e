package ast

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Tree-shaped interchange for tooling: a serialized buffer decodes into a
// generic Node tree which marshals to canonical CBOR. Deterministic encoding
// keeps exports byte-comparable across runs.
//
// Structural skips (sequence boundaries such as IF's end_true or TRY's
// catch/finally) survive the round trip through Marks. Cross-reference
// skips that point outside the node's own trailing children (VAR's next,
// FUNC's first-var) are builder state, not tree shape, and are not exported;
// a re-encoded buffer leaves them zero.

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("ast: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Node is one decoded AST node. Kids holds the fixed children first,
// followed by all trailing children in order.
type Node struct {
	Tag  string  `cbor:"tag"`
	Data string  `cbor:"data,omitempty"`
	Kids []*Node `cbor:"kids,omitempty"`

	// Marks records, for each named skip slot that lands on a trailing
	// child boundary, the index within the trailing run where that
	// sequence starts. Keyed by skip slot number.
	Marks map[int]int `cbor:"marks,omitempty"`
}

// Decode reads the buffer into a Node tree rooted at offset 0.
func (a *AST) Decode() (*Node, error) {
	pos := 0
	n, err := a.decodeTree(&pos)
	if err != nil {
		return nil, err
	}
	if pos != len(a.buf) {
		return nil, fmt.Errorf("ast: decode stopped at %d of %d bytes", pos, len(a.buf))
	}
	return n, nil
}

func (a *AST) decodeTree(pos *int) (*Node, error) {
	if *pos >= len(a.buf) {
		return nil, fmt.Errorf("ast: truncated buffer at %d", *pos)
	}
	tag := a.FetchTag(pos)
	if !tag.Valid() {
		return nil, fmt.Errorf("ast: unknown tag %d at %d", tag, *pos-1)
	}
	def := tag.Def()
	payload := *pos

	n := &Node{Tag: def.Name}
	if def.HasInlined {
		ln, llen := decodeVarint(a.buf[payload:])
		if payload+llen+int(ln) > len(a.buf) {
			return nil, fmt.Errorf("ast: truncated inline data at %d", payload)
		}
		n.Data = string(a.buf[payload+llen : payload+llen+int(ln)])
	}
	a.MoveToChildren(pos)
	if *pos > len(a.buf) {
		return nil, fmt.Errorf("ast: truncated node at %d", payload)
	}

	for i := 0; i < def.NumSubtrees; i++ {
		kid, err := a.decodeTree(pos)
		if err != nil {
			return nil, err
		}
		n.Kids = append(n.Kids, kid)
	}

	if def.NumSkips > 0 {
		end := a.GetSkip(payload, SkipEnd)
		if end > len(a.buf) {
			return nil, fmt.Errorf("ast: %s END skip %d past end %d", tag, end, len(a.buf))
		}
		var starts []int
		for *pos < end {
			starts = append(starts, *pos)
			kid, err := a.decodeTree(pos)
			if err != nil {
				return nil, err
			}
			n.Kids = append(n.Kids, kid)
		}
		if *pos != end {
			return nil, fmt.Errorf("ast: %s overran END skip by %d", tag, *pos-end)
		}
		// A named skip that lands on a trailing child boundary (or on
		// END, for an empty final sequence) is structural; one that
		// points elsewhere is a cross-reference and stays unexported.
		for s := 1; s < def.NumSkips; s++ {
			sk := a.GetSkip(payload, Skip(s))
			at := -1
			for i, p := range starts {
				if p == sk {
					at = i
					break
				}
			}
			if sk == end {
				at = len(starts)
			}
			if at >= 0 {
				if n.Marks == nil {
					n.Marks = make(map[int]int)
				}
				n.Marks[s] = at
			}
		}
	}
	return n, nil
}

// Append serializes the node tree onto a, reconstructing END and every
// marked structural skip.
func (n *Node) Append(a *AST) error {
	tag, ok := TagByName[n.Tag]
	if !ok {
		return fmt.Errorf("ast: unknown tag name %q", n.Tag)
	}
	def := tag.Def()

	if def.HasInlined {
		if len(n.Kids) < def.NumSubtrees {
			return fmt.Errorf("ast: %s needs %d fixed children, has %d", n.Tag, def.NumSubtrees, len(n.Kids))
		}
		a.AddInlined(tag, n.Data)
		for _, kid := range n.Kids {
			if err := kid.Append(a); err != nil {
				return err
			}
		}
		return nil
	}

	if len(n.Kids) < def.NumSubtrees {
		return fmt.Errorf("ast: %s needs %d fixed children, has %d", n.Tag, def.NumSubtrees, len(n.Kids))
	}
	payload := a.AddNode(tag)
	for _, kid := range n.Kids[:def.NumSubtrees] {
		if err := kid.Append(a); err != nil {
			return err
		}
	}
	for i, kid := range n.Kids[def.NumSubtrees:] {
		for s, at := range n.Marks {
			if at == i {
				a.SetSkip(payload, Skip(s))
			}
		}
		if err := kid.Append(a); err != nil {
			return err
		}
	}
	if def.NumSkips > 0 {
		// Marks that sit at the end of the trailing run (an empty
		// final sequence, e.g. IF with no else branch) patch here.
		trailing := len(n.Kids) - def.NumSubtrees
		for s, at := range n.Marks {
			if at == trailing {
				a.SetSkip(payload, Skip(s))
			}
		}
		a.SetSkip(payload, SkipEnd)
	}
	return nil
}

// MarshalTree serializes a's decoded tree to canonical CBOR bytes.
func MarshalTree(a *AST) ([]byte, error) {
	n, err := a.Decode()
	if err != nil {
		return nil, err
	}
	return cborEncMode.Marshal(n)
}

// UnmarshalTree deserializes a Node tree from CBOR bytes.
func UnmarshalTree(data []byte) (*Node, error) {
	var n Node
	if err := cbor.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("ast: unmarshal tree: %w", err)
	}
	return &n, nil
}
