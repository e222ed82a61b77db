// Copyright 2020 Aleksandr Demakin. All rights reserved.

package modimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runChecker(t *testing.T, src string, exempt ...string) []Diagnostic {
	t.Helper()
	file, err := parseSource("test.py", []byte(src))
	require.NoError(t, err)
	checker := newModuleImportChecker(micConfig{exemptModules: exempt})
	diags, err := checker.DoFile(&CheckInfo{File: file})
	require.NoError(t, err)
	return diags
}

func TestModuleImportChecker(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected []string
	}{
		{
			name:     "direct import",
			src:      "from sys import path\n",
			expected: []string{"Avoid direct import of 'path' from 'sys', import the module instead"},
		},
		{
			name:     "dotted module",
			src:      "from os.path import join\n",
			expected: []string{"Avoid direct import of 'join' from 'os.path', import the module instead"},
		},
		{
			name:     "submodule name",
			src:      "from os import path\n",
			expected: []string{"Avoid direct import of 'path' from 'os', import the module instead"},
		},
		{
			name: "two names",
			src:  "from typing import TYPE_CHECKING, List\n",
			expected: []string{
				"Avoid direct import of 'TYPE_CHECKING' from 'typing', import the module instead",
				"Avoid direct import of 'List' from 'typing', import the module instead",
			},
		},
		{
			name:     "aliased name reports the original",
			src:      "from x import y as z\n",
			expected: []string{"Avoid direct import of 'y' from 'x', import the module instead"},
		},
		{
			name:     "relative import without module",
			src:      "from . import x\n",
			expected: []string{"Avoid direct import of 'x' from '.', import the module instead"},
		},
		{
			name:     "relative import with module",
			src:      "from .pkg import x\n",
			expected: []string{"Avoid direct import of 'x' from '.pkg', import the module instead"},
		},
		{
			name:     "future import",
			src:      "from __future__ import annotations\n",
			expected: []string{"Avoid direct import of 'annotations' from '__future__', import the module instead"},
		},
		{name: "plain import", src: "import pathlib\n"},
		{name: "plain import aliased", src: "import x as y\n"},
		{name: "plain import list", src: "import x, y\n"},
		{name: "wildcard import", src: "from x import *\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := assert.New(t)
			var messages []string
			for _, d := range runChecker(t, test.src) {
				a.Equal(CodeModuleImport, d.Code)
				messages = append(messages, d.Message)
			}
			a.Equal(test.expected, messages)
		})
	}
}

func TestModuleImportCheckerPosition(t *testing.T) {
	r := require.New(t)
	src := "import sys\n\nif True:\n    from sys import path\n"
	diags := runChecker(t, src)
	r.Len(diags, 1)
	r.Equal(4, diags[0].Line)
	r.Equal(4, diags[0].Column)
}

func TestModuleImportCheckerExempt(t *testing.T) {
	a := assert.New(t)
	a.Empty(runChecker(t, "from typing import TYPE_CHECKING, List\n", "typing"))
	a.Empty(runChecker(t, "from os.path import join\n", "os"))
	a.Len(runChecker(t, "from os.path import join\n", "typing"), 1)
	a.Len(runChecker(t, "from . import x\n", "x"), 1)
}
