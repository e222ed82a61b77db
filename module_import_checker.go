// Copyright 2020 Aleksandr Demakin. All rights reserved.

package modimport

import "fmt"

// CodeModuleImport is the stable code of the direct-import rule.
const CodeModuleImport = "MIM001"

type micConfig struct {
	exemptModules []string
}

// moduleImportChecker flags names bound via from-imports,
// asking for a module-level import instead.
type moduleImportChecker struct {
	exempt map[string]struct{}
}

func newModuleImportChecker(config micConfig) *moduleImportChecker {
	checker := &moduleImportChecker{exempt: make(map[string]struct{})}
	for _, module := range config.exemptModules {
		checker.exempt[module] = struct{}{}
	}
	return checker
}

func (mic *moduleImportChecker) DoFile(info *CheckInfo) ([]Diagnostic, error) {
	var result []Diagnostic
	for _, stmt := range info.File.Statements {
		switch stmt.Kind {
		case StmtImportFrom:
			result = append(result, mic.checkFromImport(stmt)...)
		case StmtImport, StmtOther:
			// Plain imports bind the module itself, which is what the rule asks for.
		}
	}
	return result, nil
}

// checkFromImport emits one diagnostic per imported name at the statement's
// position. Wildcard imports are not flagged. Aliased names report the
// original name, not the alias.
func (mic *moduleImportChecker) checkFromImport(stmt Statement) []Diagnostic {
	if stmt.Wildcard || mic.exemptModule(stmt.Module) {
		return nil
	}
	var result []Diagnostic
	for _, name := range stmt.Names {
		result = append(result, Diagnostic{
			Line:   stmt.Line,
			Column: stmt.Col,
			Code:   CodeModuleImport,
			Message: fmt.Sprintf("Avoid direct import of '%s' from '%s', import the module instead",
				name.Name, stmt.Module),
		})
	}
	return result
}

func (mic *moduleImportChecker) exemptModule(module string) bool {
	if len(mic.exempt) == 0 {
		return false
	}
	_, found := mic.exempt[modPathFromString(module).first()]
	return found
}
