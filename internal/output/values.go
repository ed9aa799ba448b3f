package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"sigs.k8s.io/yaml"
)

// ValueOptions controls value output formatting.
type ValueOptions struct {
	// Format specifies output format: yaml, json or debug.
	Format OutputFormat
	// Writer is the output destination.
	Writer io.Writer
}

// WriteValues writes v in the requested format. YAML output goes through the
// JSON encoding of v so struct json tags apply to both formats.
func WriteValues(v any, opts ValueOptions) error {
	switch opts.Format {
	case FormatJSON:
		encoder := json.NewEncoder(opts.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case FormatDebug:
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		cfg.Fdump(opts.Writer, v)
		return nil
	case FormatTable:
		return fmt.Errorf("format %s not supported for value output", opts.Format)
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	_, err = opts.Writer.Write(data)
	return err
}
