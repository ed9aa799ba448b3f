package rendering_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opmodel/renderings/internal/content"
	"github.com/opmodel/renderings/internal/rendering"
)

type article struct {
	Title   string `rendering:"title"`
	Summary string `rendering:"summary,omitempty"`
	Body    string
	Hero    hero
	Skip    string `rendering:"-"`
}

type hero struct {
	Image string `rendering:"heroImage"`
}

type person struct {
	Name string `rendering:"fullName"`
}

type promo struct{}

type unregistered struct{}

type teaser interface {
	Teaser() string
}

var (
	articleType      = reflect.TypeFor[*article]()
	personType       = reflect.TypeFor[*person]()
	promoType        = reflect.TypeFor[*promo]()
	unregisteredType = reflect.TypeFor[*unregistered]()
	teaserType       = reflect.TypeFor[teaser]()
)

func registrations() []rendering.Registration {
	return []rendering.Registration{
		rendering.Register(rendering.Descriptor{Alias: "article", Description: "Article page"},
			func(c content.Content) (*article, error) { return &article{Title: c.Name()}, nil }),
		rendering.Register(rendering.Descriptor{Alias: "person"},
			func(c content.Content) (*person, error) { return &person{Name: c.Name()}, nil }),
		rendering.Register(rendering.Descriptor{Alias: "promo"},
			func(content.Content) (*promo, error) { return &promo{}, nil }),
	}
}

func newRegistry(t *testing.T) *rendering.Registry {
	t.Helper()
	reg, err := rendering.NewRegistry(registrations()...)
	require.NoError(t, err)
	return reg
}

func newResolver(t *testing.T, p rendering.Policy) *rendering.Resolver {
	t.Helper()
	return rendering.NewResolver(newRegistry(t), rendering.WithPolicy(p))
}
