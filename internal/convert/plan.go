package convert

import (
	"fmt"
	"reflect"
	"slices"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/opmodel/renderings/internal/content"
)

// Reasons a related link is dropped.
const (
	ReasonNoContent  = "no content"
	ReasonNotAllowed = "alias not allowed"
)

// LinkMatch records whether one related link would be converted.
type LinkMatch struct {
	Index   int    `json:"index"`
	Caption string `json:"caption"`
	Alias   string `json:"alias,omitempty"`
	Matched bool   `json:"matched"`
	Reason  string `json:"reason,omitempty"`
}

// MatchPlan describes a conversion without creating any view model.
type MatchPlan struct {
	// Permitted are the aliases registered for the allowed types, in
	// registry order.
	Permitted []string `json:"permitted"`

	// Matches has one entry per link, in input order.
	Matches []LinkMatch `json:"matches"`
}

// Plan reports which links Convert would turn into view models. It applies
// the resolver's policy to allowed exactly as Convert does but never calls
// the creator.
func (c *Converter) Plan(links []content.RelatedLink, allowed []reflect.Type) (*MatchPlan, error) {
	plan := &MatchPlan{
		Permitted: []string{},
		Matches:   make([]LinkMatch, 0, len(links)),
	}
	if len(links) == 0 {
		return plan, nil
	}

	aliases, err := c.permittedAliases(allowed)
	if err != nil {
		return nil, err
	}
	plan.Permitted = append(plan.Permitted, aliases...)
	permitted := sets.New(aliases...)

	for i, link := range links {
		reason := dropReason(link, permitted)
		plan.Matches = append(plan.Matches, LinkMatch{
			Index:   i,
			Caption: link.Caption,
			Alias:   link.DocumentTypeAlias(),
			Matched: reason == "",
			Reason:  reason,
		})
	}
	return plan, nil
}

// Matched returns the number of links that would be converted.
func (p *MatchPlan) Matched() int {
	n := 0
	for _, m := range p.Matches {
		if m.Matched {
			n++
		}
	}
	return n
}

// CollectWarnings summarizes dropped links per content alias. Links without
// content are reported together. Warnings are sorted for stable output.
func CollectWarnings(plan *MatchPlan) []string {
	dropped := make(map[string]int)
	noContent := 0
	for _, m := range plan.Matches {
		switch m.Reason {
		case ReasonNoContent:
			noContent++
		case ReasonNotAllowed:
			dropped[m.Alias]++
		}
	}

	var warnings []string
	for alias, n := range dropped {
		warnings = append(warnings, fmt.Sprintf("alias %s: %s (%s)", alias, ReasonNotAllowed, pluralize(n, "link")))
	}
	slices.Sort(warnings)

	if noContent > 0 {
		warnings = append(warnings, fmt.Sprintf("%s without content", pluralize(noContent, "link")))
	}
	return warnings
}

func pluralize(count int, label string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, label)
	}
	return fmt.Sprintf("%d %ss", count, label)
}
