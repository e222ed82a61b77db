// Copyright 2020 Aleksandr Demakin. All rights reserved.

package modimport

// Name and Version identify the linter for the host's --version output.
const (
	Name    = "modimport"
	Version = "0.1.0"
)

// VersionString returns "<name> <version>".
func VersionString() string {
	return Name + " " + Version
}
