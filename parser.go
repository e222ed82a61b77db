// Copyright 2020 Aleksandr Demakin. All rights reserved.

package modimport

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexaandru/go-sitter-forest/python"
	sitter "github.com/alexaandru/go-tree-sitter-bare"
	"github.com/pkg/errors"
)

// SourceFile is one parsed Python file: its import statements in document
// order and the noqa directives found in its comments.
type SourceFile struct {
	Path       string
	Statements []Statement
	noqa       noqaIndex
}

var pythonLang = sitter.NewLanguage(python.GetLanguage())

func parseDir(path string) ([]*SourceFile, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read directory %q", path)
	}
	var files []*SourceFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".py") {
			continue
		}
		file, err := parseFile(filepath.Join(path, entry.Name()))
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}

func parseFile(path string) (*SourceFile, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read %q", path)
	}
	return parseSource(path, src)
}

func parseSource(path string, src []byte) (*SourceFile, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(pythonLang)
	tree, err := parser.ParseString(context.Background(), nil, src)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse %q", path)
	}
	root := tree.RootNode()
	if root.IsNull() {
		return nil, errors.Errorf("no syntax tree for %q", path)
	}
	file := &SourceFile{Path: path, noqa: make(noqaIndex)}
	collect(root, src, file)
	return file, nil
}

// collect walks the whole tree in document order, decoding import statements
// at any nesting depth and indexing noqa comments by line.
func collect(n sitter.Node, src []byte, file *SourceFile) {
	switch n.Type() {
	case "import_statement":
		file.Statements = append(file.Statements, decodeImport(n, src))
	case "import_from_statement":
		file.Statements = append(file.Statements, decodeFromImport(n, src))
	case "future_import_statement":
		file.Statements = append(file.Statements, decodeFutureImport(n, src))
	case "comment":
		file.noqa.add(int(n.StartPoint().Row)+1, n.Content(src))
	}
	for i := range n.NamedChildCount() {
		if child := n.NamedChild(i); !child.IsNull() {
			collect(child, src, file)
		}
	}
}

func decodeImport(n sitter.Node, src []byte) Statement {
	stmt := stmtAt(StmtImport, n)
	appendNames(&stmt, n, src, ^uint(0))
	return stmt
}

func decodeFromImport(n sitter.Node, src []byte) Statement {
	stmt := stmtAt(StmtImportFrom, n)
	skip := ^uint(0)
	if module := n.ChildByFieldName("module_name"); !module.IsNull() {
		stmt.Module = module.Content(src)
		skip = module.StartByte()
	}
	appendNames(&stmt, n, src, skip)
	return stmt
}

// "from __future__ import X" is a distinct statement kind in the grammar;
// checkers see it as a regular from-import.
func decodeFutureImport(n sitter.Node, src []byte) Statement {
	stmt := stmtAt(StmtImportFrom, n)
	stmt.Module = "__future__"
	appendNames(&stmt, n, src, ^uint(0))
	return stmt
}

func stmtAt(kind StmtKind, n sitter.Node) Statement {
	return Statement{
		Kind: kind,
		Line: int(n.StartPoint().Row) + 1,
		Col:  int(n.StartPoint().Column),
	}
}

// appendNames decodes the imported names of an import node, skipping the
// module child of from-imports, identified by its start byte.
func appendNames(stmt *Statement, n sitter.Node, src []byte, skip uint) {
	for i := range n.NamedChildCount() {
		child := n.NamedChild(i)
		if child.IsNull() || child.StartByte() == skip {
			continue
		}
		switch child.Type() {
		case "wildcard_import":
			stmt.Wildcard = true
		case "dotted_name", "identifier":
			stmt.Names = append(stmt.Names, ImportedName{
				Name: child.Content(src),
				Line: int(child.StartPoint().Row) + 1,
				Col:  int(child.StartPoint().Column),
			})
		case "aliased_import":
			stmt.Names = append(stmt.Names, decodeAliasedName(child, src))
		}
	}
}

func decodeAliasedName(n sitter.Node, src []byte) ImportedName {
	name := ImportedName{
		Line: int(n.StartPoint().Row) + 1,
		Col:  int(n.StartPoint().Column),
	}
	if nameNode := n.ChildByFieldName("name"); !nameNode.IsNull() {
		name.Name = nameNode.Content(src)
	}
	if alias := n.ChildByFieldName("alias"); !alias.IsNull() {
		name.Alias = alias.Content(src)
	}
	return name
}
