// Package viewmodels holds the application's view models and the
// registration table that binds them to document type aliases.
package viewmodels

import (
	"reflect"

	"github.com/opmodel/renderings/internal/content"
	"github.com/opmodel/renderings/internal/rendering"
)

// Teaser is implemented by view models that can be listed as a teaser.
// It is a marker for allowed-type lists and is never registered itself.
type Teaser interface {
	TeaserTitle() string
}

// LinkInfo is the link metadata a view model receives from its related link.
type LinkInfo struct {
	Caption   string `json:"caption,omitempty"`
	URL       string `json:"url"`
	NewWindow bool   `json:"newWindow,omitempty"`
	External  bool   `json:"external,omitempty"`
}

func linkInfo(l content.RelatedLink) *LinkInfo {
	return &LinkInfo{
		Caption:   l.Caption,
		URL:       l.Link,
		NewWindow: l.NewWindow,
		External:  !l.IsInternal,
	}
}

// Article renders "article" content.
type Article struct {
	ID      int       `json:"id"`
	Title   string    `json:"title" rendering:"title"`
	Summary string    `json:"summary,omitempty" rendering:"summary"`
	Author  string    `json:"author,omitempty" rendering:"author"`
	Link    *LinkInfo `json:"link,omitempty"`
}

func (a *Article) TeaserTitle() string { return a.Title }

func (a *Article) SetLink(l content.RelatedLink) { a.Link = linkInfo(l) }

// Person renders "person" content.
type Person struct {
	ID       int       `json:"id"`
	Name     string    `json:"name" rendering:"fullName"`
	JobTitle string    `json:"jobTitle,omitempty" rendering:"jobTitle"`
	Email    string    `json:"email,omitempty" rendering:"email"`
	Link     *LinkInfo `json:"link,omitempty"`
}

func (p *Person) TeaserTitle() string { return p.Name }

func (p *Person) SetLink(l content.RelatedLink) { p.Link = linkInfo(l) }

// Promo renders "promo" content. Promos carry their own call to action and
// ignore the link they were created from.
type Promo struct {
	ID           int    `json:"id"`
	Headline     string `json:"headline" rendering:"headline"`
	CallToAction string `json:"callToAction,omitempty" rendering:"cta"`
	Priority     int    `json:"priority,omitempty" rendering:"priority"`
}

// Registrations is the application's registration table.
func Registrations() rendering.Table {
	return rendering.Table{
		rendering.Register(rendering.Descriptor{
			Alias:       "article",
			Description: "Editorial article page",
			Labels:      map[string]string{"section": "editorial"},
		}, newModel[Article]),
		rendering.Register(rendering.Descriptor{
			Alias:       "person",
			Description: "Staff or author profile",
		}, newModel[Person]),
		rendering.Register(rendering.Descriptor{
			Alias:       "promo",
			Description: "Promotional block",
			Labels:      map[string]string{"section": "marketing"},
		}, newModel[Promo]),
	}
}

// Markers returns the abstract types that may appear in allowed-type lists.
func Markers() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[Teaser]()}
}
