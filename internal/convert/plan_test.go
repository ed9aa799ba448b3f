package convert_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/renderings/internal/content"
	"github.com/opmodel/renderings/internal/convert"
	oerrors "github.com/opmodel/renderings/internal/errors"
	"github.com/opmodel/renderings/internal/rendering"
)

func TestConverter_Plan(t *testing.T) {
	c, creator := setup(t, rendering.Strict)
	links := []content.RelatedLink{
		link("first", "person", "Ada"),
		link("promo", "promo", "Sale"),
		{Caption: "external", Link: "https://example.com", Type: content.LinkExternal},
		link("second", "article", "Hello"),
		link("another promo", "promo", "Winter"),
	}

	plan, err := c.Plan(links, []reflect.Type{personType, articleType})
	require.NoError(t, err)

	assert.Equal(t, []string{"article", "person"}, plan.Permitted, "registry order")
	require.Len(t, plan.Matches, 5)
	assert.Equal(t, convert.LinkMatch{Index: 0, Caption: "first", Alias: "person", Matched: true}, plan.Matches[0])
	assert.Equal(t, convert.ReasonNotAllowed, plan.Matches[1].Reason)
	assert.Equal(t, convert.ReasonNoContent, plan.Matches[2].Reason)
	assert.Empty(t, plan.Matches[2].Alias)
	assert.True(t, plan.Matches[3].Matched)
	assert.Equal(t, 2, plan.Matched())
	assert.Empty(t, creator.calls, "planning never creates view models")

	assert.Equal(t, []string{
		"alias promo: alias not allowed (2 links)",
		"1 link without content",
	}, convert.CollectWarnings(plan))
}

func TestConverter_PlanAgreesWithConvert(t *testing.T) {
	c, _ := setup(t, rendering.Lenient)
	links := []content.RelatedLink{
		link("a", "article", "Hello"),
		link("p", "promo", "Sale"),
		link("b", "person", "Ada"),
	}
	allowed := []reflect.Type{articleType, promoType}

	plan, err := c.Plan(links, allowed)
	require.NoError(t, err)
	got, err := c.Convert(links, allowed)
	require.NoError(t, err)

	assert.Equal(t, len(got), plan.Matched())
}

func TestConverter_PlanStrictUnregistered(t *testing.T) {
	type unregistered struct{}
	c, _ := setup(t, rendering.Strict)

	_, err := c.Plan([]content.RelatedLink{link("a", "article", "Hello")},
		[]reflect.Type{reflect.TypeFor[*unregistered]()})
	assert.ErrorIs(t, err, oerrors.ErrUnresolved)
}

func TestConverter_PlanEmpty(t *testing.T) {
	c, _ := setup(t, rendering.Strict)

	plan, err := c.Plan(nil, []reflect.Type{articleType})
	require.NoError(t, err)
	assert.Empty(t, plan.Matches)
	assert.Empty(t, plan.Permitted)
	assert.Empty(t, convert.CollectWarnings(plan))
}
