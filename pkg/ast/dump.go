package ast

import (
	"bufio"
	"fmt"
	"io"
)

// Dumper renders a serialized tree as indented text for debugging. The
// output is informational: it does not round-trip and is not part of the
// format contract.
type Dumper struct {
	// TagNumbers prints "TAG_<n>" instead of table names, mirroring
	// builds with the name table compiled out.
	TagNumbers bool
}

// Dump writes the whole tree to w with default settings.
func (a *AST) Dump(w io.Writer) error {
	return (&Dumper{}).Dump(w, a)
}

// Dump renders a to w.
func (d *Dumper) Dump(w io.Writer, a *AST) error {
	bw := bufio.NewWriter(w)
	pos := 0
	d.tree(bw, a, &pos, 0)
	return bw.Flush()
}

func indent(w *bufio.Writer, depth int) {
	for i := 0; i < depth; i++ {
		w.WriteString("  ")
	}
}

func comment(w *bufio.Writer, depth int, format string, args ...any) {
	indent(w, depth)
	fmt.Fprintf(w, "/* [%s] */\n", fmt.Sprintf(format, args...))
}

func (d *Dumper) tree(w *bufio.Writer, a *AST, pos *int, depth int) {
	tag := a.FetchTag(pos)
	def := tag.Def()
	payload := *pos

	indent(w, depth)
	if d.TagNumbers {
		fmt.Fprintf(w, "TAG_%d", tag)
	} else {
		w.WriteString(def.Name)
	}
	if def.HasInlined {
		fmt.Fprintf(w, " %s", a.InlinedData(payload))
	}
	w.WriteByte('\n')

	a.MoveToChildren(pos)

	for i := 0; i < def.NumSubtrees; i++ {
		d.tree(w, a, pos, depth+1)
	}

	if def.NumSkips > 0 {
		// The END skip bounds the last trailing sequence, so the walk
		// does not need to know how the sequences are grouped; the
		// other skips are only reported when the cursor lands on one.
		end := a.GetSkip(payload, SkipEnd)
		comment(w, depth+1, "...")
		for *pos < end {
			for s := def.NumSkips - 1; s > 0; s-- {
				if *pos == a.GetSkip(payload, Skip(s)) {
					comment(w, depth+1, "%d ->", s)
					break
				}
			}
			d.tree(w, a, pos, depth+1)
		}
	}
}
