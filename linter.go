// Copyright 2020 Aleksandr Demakin. All rights reserved.

package modimport

import (
	"github.com/pkg/errors"
)

// Linter parses a directory of Python files once and runs named checkers
// over each of them.
type Linter struct {
	files    []*SourceFile
	checkers []string
	registry *Registry
	config   Config
}

func New(path string, checkers []string, config Config) (*Linter, error) {
	files, err := parseDir(path)
	if err != nil {
		return nil, err
	}
	return &Linter{
		files:    files,
		checkers: checkers,
		registry: DefaultRegistry(),
		config:   config,
	}, nil
}

// DoDir lints every Python file in a directory with the named checkers.
func DoDir(name string, checkers []string, config Config) ([]Report, error) {
	l, err := New(name, checkers, config)
	if err != nil {
		return nil, err
	}
	return l.Do("")
}

// Do runs the configured checkers and returns reports sorted by file,
// line and column. If file is empty, all parsed files are checked,
// otherwise only the file with a matching path.
func (l *Linter) Do(file string) (result []Report, firstErr error) {
	checkers := l.registry.makeCheckers(l.checkers, l.config)
	found := len(file) == 0
	for _, f := range l.files {
		if len(file) != 0 && f.Path != file {
			continue
		}
		found = true
		if reports, err := doFile(f, checkers...); err == nil {
			result = append(result, reports...)
		} else if firstErr == nil {
			firstErr = errors.Wrapf(err, "error checking file %q", f.Path)
		}
	}
	if !found && firstErr == nil {
		firstErr = errors.New("no such file")
	}
	sortReports(result)
	return result, firstErr
}

// doFile fans a file out to every checker and drops diagnostics
// suppressed by a noqa directive on their line.
func doFile(file *SourceFile, checkers ...Checker) ([]Report, error) {
	info := &CheckInfo{File: file}
	var result []Report
	for _, checker := range checkers {
		diags, err := checker.DoFile(info)
		if err != nil {
			return nil, err
		}
		for _, d := range diags {
			if file.noqa.suppressed(d.Line, d.Code) {
				continue
			}
			result = append(result, Report{File: file.Path, Diagnostic: d})
		}
	}
	return result, nil
}
