// perch - inspect and manage binary AST files.
//
// Usage:
//
//	perch [-C dir] [-v N] dump file.ast       # indented text dump
//	perch [-C dir] [-v N] export file.ast     # canonical CBOR tree on stdout
//	perch [-C dir] [-v N] verify file.ast     # walk the tree, check invariants
//	perch [-C dir] [-v N] cache put src.js file.ast
//	perch [-C dir] [-v N] cache get src.js
//
// Settings such as the cache location and dump format come from perch.toml
// in the project directory (-C, default ".").
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/perchjs/perch/manifest"
	"github.com/perchjs/perch/pkg/ast"
	"github.com/perchjs/perch/pkg/astcache"
)

var log = commonlog.GetLogger("perch")

func main() {
	dir := flag.String("C", ".", "project directory containing perch.toml")
	verbose := flag.Int("v", 0, "log verbosity")
	flag.Parse()

	commonlog.Configure(*verbose, nil)

	if flag.NArg() < 1 {
		usage()
	}

	m, err := manifest.LoadOrDefault(*dir)
	if err != nil {
		fatal(err)
	}

	switch flag.Arg(0) {
	case "dump":
		err = runDump(m, flag.Arg(1))
	case "export":
		err = runExport(flag.Arg(1))
	case "verify":
		err = runVerify(flag.Arg(1))
	case "cache":
		err = runCache(m, flag.Args()[1:])
	default:
		usage()
	}
	if err != nil {
		fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: perch [-C dir] [-v N] <dump|export|verify|cache> ...")
	os.Exit(2)
}

func fatal(err error) {
	log.Errorf("%s", err)
	fmt.Fprintln(os.Stderr, "perch:", err)
	os.Exit(1)
}

func loadTree(path string) (*ast.AST, error) {
	if path == "" {
		return nil, fmt.Errorf("no AST file given")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	log.Infof("read %d bytes from %s", len(data), path)
	return ast.FromBytes(data), nil
}

func runDump(m *manifest.Manifest, path string) error {
	a, err := loadTree(path)
	if err != nil {
		return err
	}
	if m.Dump.Format == "cbor" {
		return writeCBOR(a)
	}
	d := &ast.Dumper{TagNumbers: m.Dump.TagNumbers}
	return d.Dump(os.Stdout, a)
}

func runExport(path string) error {
	a, err := loadTree(path)
	if err != nil {
		return err
	}
	return writeCBOR(a)
}

func writeCBOR(a *ast.AST) error {
	data, err := ast.MarshalTree(a)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func runVerify(path string) error {
	a, err := loadTree(path)
	if err != nil {
		return err
	}
	// Decode checks tag validity, skip bounds and that the walk lands
	// exactly on the buffer end.
	if _, err := a.Decode(); err != nil {
		return err
	}
	fmt.Printf("%s: ok, %d bytes\n", path, a.Len())
	return nil
}

func runCache(m *manifest.Manifest, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: cache <put|get> src-file [ast-file]")
	}
	src, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}

	c, err := astcache.Open(m.CachePath())
	if err != nil {
		return err
	}
	defer c.Close()

	switch args[0] {
	case "put":
		if len(args) < 3 {
			return fmt.Errorf("cache put needs an AST file")
		}
		a, err := loadTree(args[2])
		if err != nil {
			return err
		}
		if _, err := a.Decode(); err != nil {
			return fmt.Errorf("refusing to cache malformed tree: %w", err)
		}
		if err := c.Put(string(src), a); err != nil {
			return err
		}
		log.Infof("cached %s under %s", args[2], astcache.Key(string(src)))
		return nil
	case "get":
		a, err := c.Get(string(src))
		if err != nil {
			return err
		}
		_, err = a.WriteTo(os.Stdout)
		return err
	default:
		return fmt.Errorf("unknown cache command %q", args[0])
	}
}
