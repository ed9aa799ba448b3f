package rendering_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/renderings/internal/errors"
	"github.com/opmodel/renderings/internal/rendering"
)

func TestPropertyAliasOf(t *testing.T) {
	tests := []struct {
		member string
		want   string
	}{
		{"Title", "title"},
		{"Summary", "summary"},
		{"Hero.Image", "heroImage"},
	}

	for _, tt := range tests {
		t.Run(tt.member, func(t *testing.T) {
			got, err := rendering.PropertyAliasOf[article](tt.member)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// Pointer types resolve the same way.
			got, err = rendering.PropertyAliasOf[*article](tt.member)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPropertyAlias_MissingAnnotation(t *testing.T) {
	for _, member := range []string{"Body", "Skip", "Hero"} {
		t.Run(member, func(t *testing.T) {
			_, err := rendering.PropertyAliasOf[article](member)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrMissingAnnotation), "got %v", err)
		})
	}
}

func TestPropertyAlias_InvalidMember(t *testing.T) {
	tests := []struct {
		name   string
		typ    reflect.Type
		member string
	}{
		{"unknown field", articleType, "Nope"},
		{"empty member", articleType, ""},
		{"nil type", nil, "Title"},
		{"non-struct type", reflect.TypeFor[string](), "Len"},
		{"path through non-struct", articleType, "Title.Length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newResolver(t, rendering.Lenient).ResolvePropertyAlias(tt.typ, tt.member)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrInvalidMember), "got %v", err)
		})
	}
}

func TestResolvePropertyAlias_IgnoresPolicy(t *testing.T) {
	for _, p := range []rendering.Policy{rendering.Lenient, rendering.Strict} {
		t.Run(p.String(), func(t *testing.T) {
			got, err := newResolver(t, p).ResolvePropertyAlias(personType, "Name")
			require.NoError(t, err)
			assert.Equal(t, "fullName", got)

			_, err = newResolver(t, p).ResolvePropertyAlias(articleType, "Body")
			assert.True(t, errors.Is(err, oerrors.ErrMissingAnnotation))
		})
	}
}

func TestPropertyAliases(t *testing.T) {
	assert.Equal(t, map[string]string{
		"Title":   "title",
		"Summary": "summary",
	}, rendering.PropertyAliases(articleType))

	assert.Empty(t, rendering.PropertyAliases(promoType))
	assert.Empty(t, rendering.PropertyAliases(reflect.TypeFor[int]()))
	assert.Empty(t, rendering.PropertyAliases(nil))
}
