// Copyright 2020 Aleksandr Demakin. All rights reserved.

package modimport

// StmtKind tags the statement variants checkers care about.
// Anything that is not an import decodes as StmtOther.
type StmtKind int

const (
	StmtOther StmtKind = iota
	// StmtImport is a plain "import X" or "import X as Y" statement.
	StmtImport
	// StmtImportFrom is a "from X import a, b" statement.
	StmtImportFrom
)

// ImportedName is one name bound by an import statement,
// with its optional "as" alias.
type ImportedName struct {
	Name  string
	Alias string
	Line  int
	Col   int
}

// Statement is one decoded import statement.
// Line is 1-based, Col is a 0-based column, both of the statement itself.
// For from-imports Module holds the source module path as written,
// relative prefixes included ("." for "from . import x").
type Statement struct {
	Kind     StmtKind
	Module   string
	Names    []ImportedName
	Wildcard bool
	Line     int
	Col      int
}
