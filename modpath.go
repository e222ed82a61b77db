// Copyright 2020 Aleksandr Demakin. All rights reserved.

package modimport

import "strings"

// modPath is a dot-separated module path, like "os.path".
// Relative paths keep an empty leading part, so they never match a top-level name.
type modPath struct {
	parts []string
}

func modPathFromString(s string) modPath {
	return modPath{parts: strings.Split(s, ".")}
}

func (p modPath) String() string {
	return strings.Join(p.parts, ".")
}

func (p modPath) first() string {
	if len(p.parts) == 0 {
		return ""
	}
	return p.parts[0]
}
