// Copyright 2020 Aleksandr Demakin. All rights reserved.

package modimport

import "strings"

// noqaIndex maps a 1-based source line to the suppression directive
// parsed from its trailing comment.
type noqaIndex map[int]noqaDirective

type noqaDirective struct {
	all   bool
	codes []string
}

func (idx noqaIndex) add(line int, comment string) {
	if d, ok := parseNoqa(comment); ok {
		idx[line] = d
	}
}

func (idx noqaIndex) suppressed(line int, code string) bool {
	d, found := idx[line]
	if !found {
		return false
	}
	if d.all {
		return true
	}
	for _, c := range d.codes {
		if strings.EqualFold(c, code) {
			return true
		}
	}
	return false
}

// parseNoqa recognizes "# noqa" (suppress everything on the line) and
// "# noqa: CODE1,CODE2" (suppress the listed codes).
func parseNoqa(comment string) (noqaDirective, bool) {
	text := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(comment), "#"))
	if len(text) < len("noqa") || !strings.EqualFold(text[:len("noqa")], "noqa") {
		return noqaDirective{}, false
	}
	rest := strings.TrimSpace(text[len("noqa"):])
	if rest == "" {
		return noqaDirective{all: true}, true
	}
	if rest[0] != ':' {
		return noqaDirective{}, false
	}
	var codes []string
	for _, code := range strings.Split(rest[1:], ",") {
		if code = strings.TrimSpace(code); code != "" {
			codes = append(codes, code)
		}
	}
	return noqaDirective{codes: codes}, true
}
