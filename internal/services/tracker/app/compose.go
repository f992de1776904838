// Package app composes tracker modules into one root handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/trainingtracker/internal/services/tracker/module"
)

// ComposeInput carries the modules to mount and their shared dependencies.
type ComposeInput struct {
	Dependencies module.Dependencies
	Modules      []module.Module
}

// Composer mounts modules on a root mux.
type Composer struct{}

// Compose builds a root HTTP handler from modules. Two modules claiming the
// same path is an error.
func (Composer) Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)
	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		if err := mountModule(root, feature, input.Dependencies, seen); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func mountModule(root *http.ServeMux, feature module.Module, deps module.Dependencies, seen map[string]string) error {
	mount, err := feature.Mount(deps)
	if err != nil {
		return fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if mount.Handler == nil {
		return fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	if len(mount.Paths) == 0 {
		return fmt.Errorf("mount module %q: at least one path is required", feature.ID())
	}
	for _, raw := range mount.Paths {
		path := normalizePath(raw)
		if path == "" {
			return fmt.Errorf("mount module %q: path is required", feature.ID())
		}
		if previous, ok := seen[path]; ok {
			return fmt.Errorf("module %q duplicates path %q owned by module %q", feature.ID(), path, previous)
		}
		seen[path] = feature.ID()
		root.Handle(path, mount.Handler)
	}
	return nil
}

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}
