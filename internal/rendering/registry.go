package rendering

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/opmodel/renderings/internal/content"
	"github.com/opmodel/renderings/internal/output"
)

// CreateFunc builds a view model from published content.
type CreateFunc func(c content.Content) (any, error)

// Descriptor is the metadata a view model declares about itself.
type Descriptor struct {
	// Alias is the document type alias the view model renders.
	Alias string `json:"alias"`

	// Description is a human readable summary shown by `alias list`.
	Description string `json:"description,omitempty"`

	// Labels are free-form key/value pairs.
	Labels map[string]string `json:"labels,omitempty"`
}

// Registration is one row of a registration table.
type Registration struct {
	Descriptor Descriptor
	Type       reflect.Type
	Create     CreateFunc
}

// Register builds a Registration for view-model type T. T is usually a
// pointer type so that the created model can implement interfaces with
// pointer receivers.
func Register[T any](d Descriptor, create func(c content.Content) (T, error)) Registration {
	return Registration{
		Descriptor: d,
		Type:       reflect.TypeFor[T](),
		Create: func(c content.Content) (any, error) {
			return create(c)
		},
	}
}

// Source supplies registrations to [Build].
type Source interface {
	Registrations() []Registration
}

// Table is a static registration table.
type Table []Registration

// Registrations implements Source.
func (t Table) Registrations() []Registration {
	return t
}

// ResolveResult is the outcome of resolving a single alias.
// HasErrors is set on placeholder results for aliases without a registration;
// ModelType and Descriptor are nil in that case.
type ResolveResult struct {
	Alias      string
	ModelType  reflect.Type
	Descriptor *Descriptor
	HasErrors  bool
}

// Registry maps document type aliases to view-model registrations.
// It is immutable once returned by NewRegistry or Build.
type Registry struct {
	order    []string
	entries  map[string]ResolveResult
	creators map[string]CreateFunc
}

// NewRegistry builds a registry from registrations. When two registrations
// declare the same alias the later one wins and keeps the earlier one's
// position.
func NewRegistry(regs ...Registration) (*Registry, error) {
	r := &Registry{
		entries:  make(map[string]ResolveResult, len(regs)),
		creators: make(map[string]CreateFunc, len(regs)),
	}

	for i, reg := range regs {
		if err := validateRegistration(reg); err != nil {
			return nil, fmt.Errorf("registration %d: %w", i, err)
		}

		alias := reg.Descriptor.Alias
		if prev, ok := r.entries[alias]; ok {
			output.Warn("duplicate document alias, last registration wins",
				"alias", alias,
				"previous", TypeName(prev.ModelType),
				"type", TypeName(reg.Type),
			)
		} else {
			r.order = append(r.order, alias)
		}

		d := reg.Descriptor
		r.entries[alias] = ResolveResult{
			Alias:      alias,
			ModelType:  reg.Type,
			Descriptor: &d,
		}
		r.creators[alias] = reg.Create
	}

	output.Debug("view-model registry built", "aliases", len(r.order))
	return r, nil
}

// Build collects registrations from all sources, in order, and builds a registry.
func Build(sources ...Source) (*Registry, error) {
	var regs []Registration
	for _, s := range sources {
		regs = append(regs, s.Registrations()...)
	}
	return NewRegistry(regs...)
}

func validateRegistration(reg Registration) error {
	switch {
	case strings.TrimSpace(reg.Descriptor.Alias) == "":
		return ErrEmptyAlias
	case reg.Type == nil:
		return fmt.Errorf("alias %q: %w", reg.Descriptor.Alias, ErrNilType)
	case reg.Type.Kind() == reflect.Interface:
		return fmt.Errorf("alias %q: %w", reg.Descriptor.Alias, ErrAbstractType)
	case reg.Create == nil:
		return fmt.Errorf("alias %q: %w", reg.Descriptor.Alias, ErrNilCreate)
	}
	return nil
}

// Lookup returns the registration result for alias.
func (r *Registry) Lookup(alias string) (ResolveResult, bool) {
	res, ok := r.entries[alias]
	return res, ok
}

// Len returns the number of registered aliases.
func (r *Registry) Len() int {
	return len(r.order)
}

// Aliases returns the registered aliases in registration order.
func (r *Registry) Aliases() []string {
	return append([]string(nil), r.order...)
}

// Entries returns a snapshot of all entries in registration order.
func (r *Registry) Entries() []ResolveResult {
	out := make([]ResolveResult, 0, len(r.order))
	for _, a := range r.order {
		out = append(out, r.entries[a])
	}
	return out
}

// LookupType finds a registered type by name. name may be the full type
// string ("*viewmodels.Article"), the package-qualified name without the
// pointer ("viewmodels.Article") or the bare name ("Article").
func (r *Registry) LookupType(name string) (reflect.Type, bool) {
	for _, a := range r.order {
		t := r.entries[a].ModelType
		base := t
		for base.Kind() == reflect.Pointer {
			base = base.Elem()
		}
		if t.String() == name || base.String() == name || base.Name() == name {
			return t, true
		}
	}
	return nil, false
}

// CreatorFor returns the creation function registered for alias.
func (r *Registry) CreatorFor(alias string) (CreateFunc, error) {
	create, ok := r.creators[alias]
	if !ok {
		return nil, fmt.Errorf("no creator for alias %q: %w", alias, ErrNoCreator)
	}
	return create, nil
}

// TypeName returns t's name for messages, or "<nil>".
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
