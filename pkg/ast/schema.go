package ast

// Tag identifies a node kind. It is stored on the wire as a single byte and
// indexes NodeDefs. The constants are generated from the table by
// cmd/genschema (see tags_gen.go).
type Tag uint8

// Skip selects one of a node's forward offset slots. Slot 0 is always END.
// The remaining aliases name slot 1 and 2 for the tags that have them; the
// numbering is part of the wire format.
type Skip int

const (
	// SkipEnd is the offset at which the node's final trailing sequence
	// ends. Every tag with at least one skip defines it, which is what
	// lets a reader advance past nodes it does not understand.
	SkipEnd Skip = 0

	// SkipVarNext chains a VAR node to the next VAR in the same scope,
	// for hoisting. Unlike the structural skips it may point beyond END.
	SkipVarNext Skip = 1

	// SkipIfEndTrue marks the end of IF's iftrue sequence; the iffalse
	// sequence runs from there to END.
	SkipIfEndTrue Skip = 1

	// SkipDoWhileCond marks where DO_WHILE's body ends and its condition
	// begins.
	SkipDoWhileCond Skip = 1

	// SkipForBody jumps over FOR's init/cond/iter triple to the body
	// sequence, letting the interpreter re-enter the loop body without
	// re-walking the header.
	SkipForBody Skip = 1

	// SkipFuncFirstVar points at the first VAR node of a FUNC body's
	// hoisting chain, SkipFuncBody at the body sequence itself (past the
	// parameter list).
	SkipFuncFirstVar Skip = 1
	SkipFuncBody     Skip = 2

	// SkipTryCatch and SkipTryFinally mark the catch and finally
	// sequences of a TRY node.
	SkipTryCatch   Skip = 1
	SkipTryFinally Skip = 2

	// SkipSwitchDefault marks SWITCH's optional default clause.
	SkipSwitchDefault Skip = 1
)

// skipSize is the wire width of one skip slot.
const skipSize = 2

// maxSkip bounds the value a skip slot can hold.
const maxSkip = 1 << 16

// NodeDef describes the wire shape of one node kind.
type NodeDef struct {
	Name        string // dump name, also the source for the generated constants
	HasVarint   bool   // varint byte length follows the skips
	HasInlined  bool   // the varint counts raw payload bytes stored inline
	NumSkips    int    // forward offset slots, END first
	NumSubtrees int    // fixed children preceding any trailing sequences
}

// NodeDefs is the closed node catalogue, indexed by Tag. The order of the
// entries is the wire format: reordering or inserting entries changes every
// serialized tree. Tooling must be generated from this table (cmd/genschema)
// rather than keeping its own copy.
//
// Shapes of the interesting nodes, in pseudo-struct notation. `child` is a
// complete serialized node, `child body[]` a trailing sequence, and a label
// such as `end:` is the target of the skip with that name.
//
//	SCRIPT  { skip end, first_var; child body[]; end: }
//	VAR     { skip end, next; child decls[]; end: }
//	IF      { skip end, end_true; child cond; child iftrue[]; end_true: child iffalse[]; end: }
//	FUNC    { skip end, first_var, body; child name; child params[]; body: child body[]; end: }
//	DO_WHILE{ skip end, cond; child body[]; cond: child cond; end: }
//	FOR     { skip end, body; child init, cond, iter; body: child body[]; end: }
//	FOR_IN  { skip end, dummy; child var, expr, dummy; child body[]; end: }
//	TRY     { skip end, catch, finally; child try[]; catch: child var; child catch[]; finally: child finally[]; end: }
//	SWITCH  { skip end, def; child expr; child cases[]; def: child default; end: }
//	CASE    { skip end; child val; child stmts[]; end: }
//	WITH    { skip end; child expr; child body[]; end: }
//	CALL    { skip end; child expr; child args[]; end: }
//
// FOR_IN's second slot is reserved so a FOR node can be promoted to FOR_IN
// in place; the writer patches it to END.
//
// TRY counts one fixed subtree although its shape opens with the try[]
// sequence: the walkers take the first node after TRY's skips as that
// child and everything after it, up to END, as trailing children.
var NodeDefs = [...]NodeDef{
	{"NOP", false, false, 0, 0},
	{"SCRIPT", false, false, 2, 0},
	{"VAR", false, false, 2, 0},
	{"VAR_DECL", true, true, 0, 1},
	{"FUNC_DECL", true, true, 0, 1},
	{"IF", false, false, 2, 1},
	{"FUNC", false, false, 3, 1},
	{"ASSIGN", false, false, 0, 2},
	{"REM_ASSIGN", false, false, 0, 2},
	{"MUL_ASSIGN", false, false, 0, 2},
	{"DIV_ASSIGN", false, false, 0, 2},
	{"XOR_ASSIGN", false, false, 0, 2},
	{"PLUS_ASSIGN", false, false, 0, 2},
	{"MINUS_ASSIGN", false, false, 0, 2},
	{"OR_ASSIGN", false, false, 0, 2},
	{"AND_ASSIGN", false, false, 0, 2},
	{"LSHIFT_ASSIGN", false, false, 0, 2},
	{"RSHIFT_ASSIGN", false, false, 0, 2},
	{"URSHIFT_ASSIGN", false, false, 0, 2},
	{"NUM", true, true, 0, 0},
	{"IDENT", true, true, 0, 0},
	{"STRING", true, true, 0, 0},
	{"REGEX", true, true, 0, 0},
	{"LABEL", true, true, 0, 0},
	{"SEQ", false, false, 1, 0},
	{"WHILE", false, false, 1, 1},
	{"DO_WHILE", false, false, 2, 0},
	{"FOR", false, false, 2, 3},
	{"FOR_IN", false, false, 2, 3},
	{"COND", false, false, 0, 3},
	{"DEBUGGER", false, false, 0, 0},
	{"BREAK", false, false, 0, 0},
	{"LAB_BREAK", false, false, 0, 1},
	{"CONTINUE", false, false, 0, 0},
	{"LAB_CONTINUE", false, false, 0, 1},
	{"RETURN", false, false, 0, 0},
	{"VAL_RETURN", false, false, 0, 1},
	{"THROW", false, false, 0, 1},
	{"TRY", false, false, 3, 1},
	{"SWITCH", false, false, 2, 1},
	{"CASE", false, false, 1, 1},
	{"DEFAULT", false, false, 1, 0},
	{"WITH", false, false, 1, 1},
	{"LOG_OR", false, false, 0, 2},
	{"LOG_AND", false, false, 0, 2},
	{"OR", false, false, 0, 2},
	{"XOR", false, false, 0, 2},
	{"AND", false, false, 0, 2},
	{"EQ", false, false, 0, 2},
	{"EQ_EQ", false, false, 0, 2},
	{"NE", false, false, 0, 2},
	{"NE_NE", false, false, 0, 2},
	{"LE", false, false, 0, 2},
	{"LT", false, false, 0, 2},
	{"GE", false, false, 0, 2},
	{"GT", false, false, 0, 2},
	{"IN", false, false, 0, 2},
	{"INSTANCEOF", false, false, 0, 2},
	{"LSHIFT", false, false, 0, 2},
	{"RSHIFT", false, false, 0, 2},
	{"URSHIFT", false, false, 0, 2},
	{"ADD", false, false, 0, 2},
	{"SUB", false, false, 0, 2},
	{"REM", false, false, 0, 2},
	{"MUL", false, false, 0, 2},
	{"DIV", false, false, 0, 2},
	{"POS", false, false, 0, 1},
	{"NEG", false, false, 0, 1},
	{"NOT", false, false, 0, 1},
	{"LOGICAL_NOT", false, false, 0, 1},
	{"VOID", false, false, 0, 1},
	{"DELETE", false, false, 0, 1},
	{"TYPEOF", false, false, 0, 1},
	{"PREINC", false, false, 0, 1},
	{"PREDEC", false, false, 0, 1},
	{"POSTINC", false, false, 0, 1},
	{"POSTDEC", false, false, 0, 1},
	{"MEMBER", true, true, 0, 1},
	{"INDEX", false, false, 0, 2},
	{"CALL", false, false, 1, 1},
	{"NEW", false, false, 1, 1},
	{"ARRAY", false, false, 1, 0},
	{"OBJECT", false, false, 1, 0},
	{"PROP", true, true, 0, 1},
	{"GETTER", false, false, 0, 1},
	{"SETTER", false, false, 0, 1},
	{"THIS", false, false, 0, 0},
	{"TRUE", false, false, 0, 0},
	{"FALSE", false, false, 0, 0},
	{"NULL", false, false, 0, 0},
	{"UNDEF", false, false, 0, 0},
	{"USE_STRICT", false, false, 0, 0},
}

// Def returns the schema entry for t. Panics on an out-of-range tag, which
// is a programmer error or a corrupt buffer.
func (t Tag) Def() *NodeDef {
	return &NodeDefs[t]
}

// Valid reports whether t is a defined tag.
func (t Tag) Valid() bool {
	return int(t) < len(NodeDefs)
}
