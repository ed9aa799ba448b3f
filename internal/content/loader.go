package content

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	oerrors "github.com/opmodel/renderings/internal/errors"
	"github.com/opmodel/renderings/internal/output"
)

//go:embed schema/links.cue
var schemaFS embed.FS

// ErrUnsupportedFormat is returned when a links file has an unsupported extension.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// document is the on-disk shape of a related-links file.
type document struct {
	Links []linkRecord `json:"links"`
}

type linkRecord struct {
	Caption    string   `json:"caption"`
	Link       string   `json:"link"`
	NewWindow  bool     `json:"newWindow"`
	IsInternal bool     `json:"isInternal"`
	Type       LinkType `json:"type"`
	Content    *Node    `json:"content"`
}

// Loader loads related-links documents from CUE, YAML, or JSON files and
// validates them against the embedded schema.
type Loader struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewLoader creates a Loader with a fresh CUE context.
func NewLoader() (*Loader, error) {
	ctx := cuecontext.New()

	data, err := schemaFS.ReadFile("schema/links.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}

	schema := ctx.CompileBytes(data, cue.Filename("links.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	return &Loader{
		ctx:    ctx,
		schema: schema.LookupPath(cue.ParsePath("#Document")),
	}, nil
}

// LoadFile loads and validates a links file.
func (l *Loader) LoadFile(path string) ([]RelatedLink, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError("links file does not exist", path, "check the --file argument")
		}
		return nil, fmt.Errorf("reading links file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".cue":
		return l.Load(data, path, "cue")
	case ".yaml", ".yml":
		return l.Load(data, path, "yaml")
	case ".json":
		return l.Load(data, path, "json")
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// Load parses data in the given format ("cue", "yaml" or "json"), validates
// it and returns the links in document order. name is used in error
// positions only.
func (l *Loader) Load(data []byte, name, format string) ([]RelatedLink, error) {
	var value cue.Value
	switch format {
	case "cue":
		value = l.ctx.CompileBytes(data, cue.Filename(name))
	case "yaml":
		var parsed any
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
		jsonData, err := json.Marshal(normalizeYAML(parsed))
		if err != nil {
			return nil, fmt.Errorf("converting YAML to JSON: %w", err)
		}
		value = l.ctx.CompileBytes(jsonData, cue.Filename(name))
	case "json":
		value = l.ctx.CompileBytes(data, cue.Filename(name))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if value.Err() != nil {
		return nil, fmt.Errorf("compiling %s: %w", name, value.Err())
	}

	// An empty YAML file decodes to null; treat it as a document without links.
	if value.IsNull() {
		return []RelatedLink{}, nil
	}

	unified := l.schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, validationErrors(name, err)
	}

	var doc document
	if err := unified.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding links: %w", err)
	}

	links := make([]RelatedLink, 0, len(doc.Links))
	for _, r := range doc.Links {
		link := RelatedLink{
			Caption:    r.Caption,
			Link:       r.Link,
			NewWindow:  r.NewWindow,
			IsInternal: r.IsInternal,
			Type:       r.Type,
		}
		// Assign only non-nil nodes so Content stays a nil interface.
		if r.Content != nil {
			link.Content = r.Content
		}
		links = append(links, link)
	}

	output.Debug("loaded related links", "source", name, "links", len(links))
	return links, nil
}

// validationErrors converts CUE errors into an aggregate of DetailErrors,
// one per distinct path.
func validationErrors(name string, err error) error {
	var errs []error
	seen := make(map[string]bool)
	for _, e := range cueerrors.Errors(err) {
		field := strings.Join(e.Path(), ".")
		format, args := e.Msg()
		msg := fmt.Sprintf(format, args...)
		key := field + "\x00" + msg
		if seen[key] {
			continue
		}
		seen[key] = true
		errs = append(errs, oerrors.NewValidationError(msg, name, field, "see the related-links document format in `rndr links convert --help`"))
	}
	if len(errs) == 0 {
		return oerrors.NewValidationError(err.Error(), name, "", "")
	}
	return utilerrors.NewAggregate(errs)
}

// normalizeYAML converts map[any]any (possible with non-string YAML keys)
// into map[string]any so the result is JSON-encodable.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalizeYAML(val)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return m
	case []any:
		for i, val := range t {
			t[i] = normalizeYAML(val)
		}
		return t
	default:
		return v
	}
}
