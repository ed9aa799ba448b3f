// Package convert turns related links into typed view models.
package convert

import (
	"errors"
	"fmt"
	"iter"
	"reflect"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/opmodel/renderings/internal/content"
	"github.com/opmodel/renderings/internal/output"
	"github.com/opmodel/renderings/internal/rendering"
)

// ErrTypeMismatch is returned when a created view model is not of the
// requested type.
var ErrTypeMismatch = errors.New("view model type mismatch")

// AliasResolver translates view-model types into document aliases.
// *rendering.Resolver implements it.
type AliasResolver interface {
	ResolveTypes(types []reflect.Type) iter.Seq2[string, error]
}

// Creator hands out view-model creation functions by alias.
// *rendering.Registry implements it.
type Creator interface {
	CreatorFor(alias string) (rendering.CreateFunc, error)
}

// LinkReceiver is implemented by view models that want the link they were
// created from.
type LinkReceiver interface {
	SetLink(link content.RelatedLink)
}

// Converter converts related links into view models.
type Converter struct {
	resolver AliasResolver
	creator  Creator
}

// NewConverter creates a Converter.
func NewConverter(resolver AliasResolver, creator Creator) *Converter {
	return &Converter{resolver: resolver, creator: creator}
}

// Convert creates one view model per link whose content alias is registered
// for one of allowed. Order follows links; other links are dropped. The first
// creation failure aborts the conversion.
func (c *Converter) Convert(links []content.RelatedLink, allowed []reflect.Type) ([]any, error) {
	return ConvertLinks[any](c, links, allowed)
}

// ConvertLinks is the typed form of Converter.Convert. Every created view
// model must be assignable to T.
func ConvertLinks[T any](c *Converter, links []content.RelatedLink, allowed []reflect.Type) ([]T, error) {
	log := output.ComponentLogger("converter")
	result := make([]T, 0, len(links))
	if len(links) == 0 {
		return result, nil
	}

	aliases, err := c.permittedAliases(allowed)
	if err != nil {
		return nil, err
	}
	permitted := sets.New(aliases...)

	for i, link := range links {
		alias := link.DocumentTypeAlias()
		if reason := dropReason(link, permitted); reason != "" {
			log.Debug("dropping related link", "index", i, "caption", link.Caption, "alias", alias, "reason", reason)
			continue
		}

		create, err := c.creator.CreatorFor(alias)
		if err != nil {
			return nil, err
		}
		created, err := create(link.Content)
		if err != nil {
			return nil, fmt.Errorf("creating view model for %q (link %d): %w", alias, i, err)
		}

		model, ok := created.(T)
		if !ok {
			return nil, fmt.Errorf("%w: alias %q created %T, want %s",
				ErrTypeMismatch, alias, created, reflect.TypeFor[T]())
		}
		if receiver, ok := created.(LinkReceiver); ok {
			receiver.SetLink(link)
		}

		result = append(result, model)
	}

	log.Debug("converted related links", "links", len(links), "models", len(result))
	return result, nil
}

// permittedAliases resolves the aliases registered for allowed, in
// registry order.
func (c *Converter) permittedAliases(allowed []reflect.Type) ([]string, error) {
	var aliases []string
	for alias, err := range c.resolver.ResolveTypes(allowed) {
		if err != nil {
			return nil, fmt.Errorf("resolving allowed types: %w", err)
		}
		aliases = append(aliases, alias)
	}
	return aliases, nil
}

// dropReason returns why link is not converted, or "" when it is.
func dropReason(link content.RelatedLink, permitted sets.Set[string]) string {
	switch {
	case link.Content == nil:
		return ReasonNoContent
	case !permitted.Has(link.DocumentTypeAlias()):
		return ReasonNotAllowed
	default:
		return ""
	}
}
