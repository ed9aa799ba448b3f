package cmd

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	oerrors "github.com/opmodel/renderings/internal/errors"
	"github.com/opmodel/renderings/internal/output"
	"github.com/opmodel/renderings/internal/rendering"
	"github.com/opmodel/renderings/internal/viewmodels"
)

// newResolver builds the application registry and a resolver using the
// resolved policy.
func newResolver() (*rendering.Resolver, error) {
	reg, err := rendering.Build(viewmodels.Registrations())
	if err != nil {
		return nil, fmt.Errorf("building registry: %w", err)
	}

	policy := GetPolicy()
	output.Debug("registry built", "aliases", reg.Len(), "policy", policy)

	return rendering.NewResolver(reg, rendering.WithPolicy(policy)), nil
}

// lookupTypes maps type names to registered view-model types or marker
// interfaces. Unknown names are reported together.
func lookupTypes(reg *rendering.Registry, names []string) ([]reflect.Type, error) {
	types := make([]reflect.Type, 0, len(names))
	var unknown []string
	for _, name := range names {
		if t, ok := lookupType(reg, name); ok {
			types = append(types, t)
			continue
		}
		unknown = append(unknown, name)
	}

	if len(unknown) > 0 {
		return nil, &oerrors.DetailError{
			Type:    "not found",
			Message: "unknown view-model type(s): " + strings.Join(unknown, ", "),
			Hint:    "Run 'rndr alias list' to see registered types.",
			Cause:   oerrors.ErrNotFound,
		}
	}
	return types, nil
}

func lookupType(reg *rendering.Registry, name string) (reflect.Type, bool) {
	if t, ok := reg.LookupType(name); ok {
		return t, true
	}
	for _, m := range viewmodels.Markers() {
		if m.String() == name || m.Name() == name {
			return m, true
		}
	}
	return nil, false
}

// registeredTypes returns every registered view-model type in registry order.
func registeredTypes(reg *rendering.Registry) []reflect.Type {
	entries := reg.Entries()
	types := make([]reflect.Type, len(entries))
	for i, e := range entries {
		types[i] = e.ModelType
	}
	return types
}

// interactiveFormat is the default output format for inspection commands:
// styled tables on a terminal, YAML when piped.
func interactiveFormat() output.OutputFormat {
	if output.IsTerminal() {
		return output.FormatTable
	}
	return output.FormatYAML
}

// resolveRow is one line of `alias resolve` and `alias type` output.
type resolveRow struct {
	Alias  string `json:"alias,omitempty"`
	Type   string `json:"type,omitempty"`
	Status string `json:"status"`
}

func writeResolveRows(w io.Writer, rows []resolveRow, format output.OutputFormat) error {
	if format != output.FormatTable {
		return output.WriteValues(rows, output.ValueOptions{Format: format, Writer: w})
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, output.FormatResolveLine(r.Alias, r.Type, r.Status)); err != nil {
			return err
		}
	}
	return nil
}
