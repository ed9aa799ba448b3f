package rendering

import (
	"iter"
	"reflect"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/opmodel/renderings/internal/output"
)

// Policy decides what happens when an alias or type cannot be resolved.
type Policy int

const (
	// Lenient logs the failure and returns an empty or partial result.
	Lenient Policy = iota

	// Strict returns a *ConfigError.
	Strict
)

func (p Policy) String() string {
	if p == Strict {
		return "strict"
	}
	return "lenient"
}

// ProductionEnvironment is the environment name that selects the lenient policy.
const ProductionEnvironment = "production"

// PolicyFor derives a policy from an environment name and an optional
// explicit override. Without an override, an unset or production
// environment is lenient and every other environment is strict.
func PolicyFor(environment string, strict *bool) Policy {
	if strict != nil {
		if *strict {
			return Strict
		}
		return Lenient
	}
	env := strings.TrimSpace(environment)
	if env == "" || strings.EqualFold(env, ProductionEnvironment) {
		return Lenient
	}
	return Strict
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithPolicy sets the failure policy. The default is Lenient.
func WithPolicy(p Policy) Option {
	return func(r *Resolver) {
		r.policy = p
	}
}

// Resolver resolves aliases to view-model types and back.
type Resolver struct {
	registry *Registry
	policy   Policy
}

// NewResolver creates a resolver over reg.
func NewResolver(reg *Registry, opts ...Option) *Resolver {
	r := &Resolver{registry: reg}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registry returns the underlying registry.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// Policy returns the resolver's failure policy.
func (r *Resolver) Policy() Policy {
	return r.policy
}

// Resolve looks up alias. A miss yields a placeholder with HasErrors set,
// plus a *ConfigError under the Strict policy.
func (r *Resolver) Resolve(alias string) (ResolveResult, error) {
	if res, ok := r.registry.Lookup(alias); ok {
		return res, nil
	}

	placeholder := ResolveResult{Alias: alias, HasErrors: true}
	return placeholder, r.fail(alias, suggestAlias(alias, r.registry.order))
}

// ResolveAlias returns the view-model type registered for alias, or nil.
func (r *Resolver) ResolveAlias(alias string) (reflect.Type, error) {
	res, err := r.Resolve(alias)
	return res.ModelType, err
}

// ResolveAliases lazily resolves aliases in order, yielding the type of each
// alias that resolves. Unresolved aliases are skipped under Lenient; under
// Strict the first failure is yielded with a nil type and iteration stops.
func (r *Resolver) ResolveAliases(aliases []string) iter.Seq2[reflect.Type, error] {
	return func(yield func(reflect.Type, error) bool) {
		for _, alias := range aliases {
			res, err := r.Resolve(alias)
			if err != nil {
				yield(nil, err)
				return
			}
			if res.HasErrors {
				continue
			}
			if !yield(res.ModelType, nil) {
				return
			}
		}
	}
}

// ResolveType returns the alias registered for t, or "".
func (r *Resolver) ResolveType(t reflect.Type) (string, error) {
	for alias, err := range r.ResolveTypes([]reflect.Type{t}) {
		return alias, err
	}
	return "", nil
}

// ResolveTypes lazily yields, in registry order, the aliases whose type is
// one of types. Interface types are ignored. If any remaining type has no
// registration the policy is applied to the names of all input types: under
// Strict the error is yielded before any alias and iteration stops.
func (r *Resolver) ResolveTypes(types []reflect.Type) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		wanted := concreteTypes(types)
		matches, matched := r.match(wanted)

		if matched.Len() != wanted.Len() {
			if err := r.fail(joinTypeNames(types), ""); err != nil {
				yield("", err)
				return
			}
		}

		for _, alias := range matches {
			if !yield(alias, nil) {
				return
			}
		}
	}
}

// MissingTypes returns the concrete types among types that have no
// registration, in input order without duplicates. Lenient callers use it
// to tell a partial ResolveTypes result from a complete one.
func (r *Resolver) MissingTypes(types []reflect.Type) []reflect.Type {
	_, matched := r.match(concreteTypes(types))

	var missing []reflect.Type
	seen := sets.New[reflect.Type]()
	for _, t := range types {
		if isAbstract(t) || matched.Has(t) || seen.Has(t) {
			continue
		}
		seen.Insert(t)
		missing = append(missing, t)
	}
	return missing
}

// match returns the aliases whose type is in wanted, in registry order, and
// the subset of wanted that matched at least one alias.
func (r *Resolver) match(wanted sets.Set[reflect.Type]) ([]string, sets.Set[reflect.Type]) {
	var aliases []string
	matched := sets.New[reflect.Type]()
	for _, alias := range r.registry.order {
		t := r.registry.entries[alias].ModelType
		if wanted.Has(t) {
			aliases = append(aliases, alias)
			matched.Insert(t)
		}
	}
	return aliases, matched
}

// fail applies the policy to an unresolved subject.
func (r *Resolver) fail(subject, suggestion string) error {
	if r.policy == Strict {
		return &ConfigError{Subject: subject, Suggestion: suggestion}
	}
	output.Warn("unable to resolve a view model, check the registration table",
		"subject", subject,
		"policy", r.policy,
	)
	return nil
}

// ResolvePropertyAlias returns the property alias declared on the field of
// t named by member. It fails regardless of policy.
func (r *Resolver) ResolvePropertyAlias(t reflect.Type, member string) (string, error) {
	return propertyAlias(t, member)
}

func isAbstract(t reflect.Type) bool {
	return t == nil || t.Kind() == reflect.Interface
}

func concreteTypes(types []reflect.Type) sets.Set[reflect.Type] {
	out := sets.New[reflect.Type]()
	for _, t := range types {
		if !isAbstract(t) {
			out.Insert(t)
		}
	}
	return out
}

func joinTypeNames(types []reflect.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = TypeName(t)
	}
	return strings.Join(names, ",")
}
