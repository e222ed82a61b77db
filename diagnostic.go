// Copyright 2020 Aleksandr Demakin. All rights reserved.

package modimport

import (
	"fmt"
	"sort"
)

// Diagnostic is a single rule violation inside one file.
// Line is 1-based, Column is 0-based, matching the positions of Statement.
type Diagnostic struct {
	Line    int
	Column  int
	Code    string
	Message string
}

// Report is a diagnostic attributed to a file.
type Report struct {
	File string
	Diagnostic
}

func (r Report) Location() string {
	return fmt.Sprintf("%s:%d:%d", r.File, r.Line, r.Column)
}

func (r Report) String() string {
	return fmt.Sprintf("%s: %s %s", r.Location(), r.Code, r.Message)
}

func sortReports(reports []Report) {
	sort.Slice(reports, func(i, j int) bool {
		lhs, rhs := reports[i], reports[j]
		if lhs.File != rhs.File {
			return lhs.File < rhs.File
		}
		if lhs.Line != rhs.Line {
			return lhs.Line < rhs.Line
		}
		return lhs.Column < rhs.Column
	})
}
