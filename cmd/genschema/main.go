// genschema emits pkg/ast/tags_gen.go from the runtime node table.
//
// The tag constants, name table and lookup map are projections of
// ast.NodeDefs; generating them from the same array the reader and writer
// use at runtime is what keeps producers and consumers from drifting apart.
//
// Usage: go run ./cmd/genschema [-out pkg/ast/tags_gen.go]
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/perchjs/perch/pkg/ast"
)

// goName converts a table name such as USE_STRICT to UseStrict.
func goName(name string) string {
	var sb strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(part[:1]))
		sb.WriteString(strings.ToLower(part[1:]))
	}
	return sb.String()
}

func main() {
	out := flag.String("out", "pkg/ast/tags_gen.go", "output file")
	flag.Parse()

	f := jen.NewFile("ast")
	f.HeaderComment("Code generated by genschema from the AST node table. DO NOT EDIT.")

	f.Const().DefsFunc(func(g *jen.Group) {
		for i, d := range ast.NodeDefs {
			g.Id("Tag" + goName(d.Name)).Id("Tag").Op("=").Lit(i)
		}
	})

	f.Comment("NumTags is the number of defined tags.")
	f.Const().Id("NumTags").Op("=").Lit(len(ast.NodeDefs))

	f.Var().Id("tagNames").Op("=").Index(jen.Op("...")).String().ValuesFunc(func(g *jen.Group) {
		for _, d := range ast.NodeDefs {
			g.Lit(d.Name)
		}
	})

	f.Comment("String returns the table name of t, or \"TAG_<n>\" for an undefined tag.")
	f.Func().Params(jen.Id("t").Id("Tag")).Id("String").Params().String().Block(
		jen.If(jen.Id("int").Call(jen.Id("t")).Op("<").Id("len").Call(jen.Id("tagNames"))).Block(
			jen.Return(jen.Id("tagNames").Index(jen.Id("t"))),
		),
		jen.Return(jen.Lit("TAG_").Op("+").Qual("strconv", "Itoa").Call(jen.Id("int").Call(jen.Id("t")))),
	)

	f.Comment("TagByName maps table names back to tags.")
	f.Var().Id("TagByName").Op("=").Map(jen.String()).Id("Tag").ValuesFunc(func(g *jen.Group) {
		for i, d := range ast.NodeDefs {
			g.Lit(d.Name).Op(":").Lit(i)
		}
	})

	if err := f.Save(*out); err != nil {
		fmt.Fprintln(os.Stderr, "genschema:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d tags)\n", *out, len(ast.NodeDefs))
}
