// Copyright 2020 Aleksandr Demakin. All rights reserved.

package modimport

import (
	"github.com/pkg/errors"
)

// CheckerModuleImport is the registry name of the direct-import checker.
const CheckerModuleImport = "moduleimport"

// Config carries settings shared by all checkers.
type Config struct {
	// ExemptModules lists modules whose direct imports are allowed.
	// A module matches if its first dotted segment is listed,
	// so "os" covers "os.path" as well.
	ExemptModules []string
}

// CheckInfo is the input handed to every checker.
type CheckInfo struct {
	File *SourceFile
}

type Checker interface {
	DoFile(info *CheckInfo) ([]Diagnostic, error)
}

// CheckerFactory builds a configured checker instance.
type CheckerFactory func(config Config) Checker

// Registry maps checker names to factories. Checkers are registered
// explicitly by the host, never as a package-load side effect.
type Registry struct {
	factories map[string]CheckerFactory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]CheckerFactory)}
}

func (r *Registry) Register(name string, factory CheckerFactory) error {
	if _, dup := r.factories[name]; dup {
		return errors.Errorf("checker %q already registered", name)
	}
	r.factories[name] = factory
	return nil
}

// makeCheckers instantiates the named checkers, skipping unknown names.
func (r *Registry) makeCheckers(names []string, config Config) []Checker {
	var result []Checker
	for _, name := range names {
		if factory, found := r.factories[name]; found {
			result = append(result, factory(config))
		}
	}
	return result
}

// DefaultRegistry returns a registry with all built-in checkers registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register(CheckerModuleImport, func(config Config) Checker {
		return newModuleImportChecker(micConfig{exemptModules: config.ExemptModules})
	})
	return r
}
