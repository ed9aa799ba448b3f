package cmd

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/opmodel/renderings/internal/content"
	"github.com/opmodel/renderings/internal/convert"
	"github.com/opmodel/renderings/internal/output"
	"github.com/opmodel/renderings/internal/rendering"
	"github.com/opmodel/renderings/internal/viewmodels"
)

// NewLinksConvertCmd creates the links convert command.
func NewLinksConvertCmd() *cobra.Command {
	var (
		fileFlag  string
		allowFlag []string
	)

	cmd := &cobra.Command{
		Use:   "convert -f <file>",
		Short: "Convert related links into view models",
		Long: `Load a related-links document, validate it against the embedded schema and
convert every link whose content is registered for one of the allowed
view-model types. Links to other content are dropped.

The document may be YAML, JSON or CUE. Without --allow every registered type
is allowed.

Examples:
  # Convert all links
  rndr links convert -f links.yaml

  # Only keep articles and people, as JSON
  rndr links convert -f links.yaml --allow Article --allow Person -o json

  # Keep everything that can be shown as a teaser
  rndr links convert -f links.yaml --allow Teaser`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLinksConvert(cmd, fileFlag, allowFlag)
		},
	}

	cmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Related-links document (yaml, json or cue)")
	cmd.Flags().StringSliceVar(&allowFlag, "allow", nil, "Allowed view-model type (repeatable)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// linksInput is a loaded links document plus the converter for it.
type linksInput struct {
	converter *convert.Converter
	links     []content.RelatedLink
	allowed   []reflect.Type
}

// loadLinksInput builds the registry, resolves the allowed type names and
// loads the links document.
func loadLinksInput(file string, allow []string) (*linksInput, error) {
	resolver, err := newResolver()
	if err != nil {
		return nil, err
	}
	reg := resolver.Registry()

	allowed := registeredTypes(reg)
	if len(allow) > 0 {
		allowed, err = lookupTypes(reg, allow)
		if err != nil {
			return nil, err
		}
	}
	if hasInterface(allowed) {
		// A marker interface admits every registered type implementing it.
		allowed = expandMarkers(reg, allowed)
	}

	loader, err := content.NewLoader()
	if err != nil {
		return nil, err
	}
	links, err := loader.LoadFile(file)
	if err != nil {
		return nil, err
	}

	return &linksInput{
		converter: convert.NewConverter(resolver, reg),
		links:     links,
		allowed:   allowed,
	}, nil
}

func runLinksConvert(cmd *cobra.Command, file string, allow []string) error {
	in, err := loadLinksInput(file, allow)
	if err != nil {
		return err
	}

	models, err := in.converter.Convert(in.links, in.allowed)
	if err != nil {
		return err
	}

	output.Debug("links converted", "file", file, "links", len(in.links), "models", len(models))

	format := GetOutputFormat(output.FormatYAML)
	if format == output.FormatTable {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), modelTable(models))
		return err
	}
	return output.WriteValues(models, output.ValueOptions{Format: format, Writer: cmd.OutOrStdout()})
}

func hasInterface(types []reflect.Type) bool {
	for _, t := range types {
		if t.Kind() == reflect.Interface {
			return true
		}
	}
	return false
}

// expandMarkers adds the registered types implementing any interface in
// types. The interfaces themselves are kept; the resolver ignores them.
func expandMarkers(reg *rendering.Registry, types []reflect.Type) []reflect.Type {
	out := append([]reflect.Type(nil), types...)
	for _, marker := range types {
		if marker.Kind() != reflect.Interface {
			continue
		}
		for _, t := range registeredTypes(reg) {
			if t.Implements(marker) {
				out = append(out, t)
			}
		}
	}
	return out
}

func modelTable(models []any) string {
	tbl := output.NewTable("#", "TYPE", "TITLE")
	for i, m := range models {
		title := ""
		if teaser, ok := m.(viewmodels.Teaser); ok {
			title = teaser.TeaserTitle()
		}
		tbl.Row(strconv.Itoa(i+1), reflect.TypeOf(m).String(), title)
	}
	return tbl.String()
}
