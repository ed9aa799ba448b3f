// Package content models the slice of the host CMS content tree that the
// rendering layer consumes: published content nodes and related links that
// point at them.
package content

// Content is a published content node.
type Content interface {
	// ID returns the node id.
	ID() int

	// Name returns the node name.
	Name() string

	// DocumentTypeAlias returns the alias of the node's document type.
	DocumentTypeAlias() string

	// Value returns the value of the property with the given alias.
	Value(alias string) (any, bool)
}

// Node is the in-memory Content implementation used for documents loaded
// from disk and in tests.
type Node struct {
	NodeID     int            `json:"id"`
	NodeName   string         `json:"name"`
	Alias      string         `json:"documentTypeAlias"`
	URL        string         `json:"url,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
}

var _ Content = (*Node)(nil)

// ID implements Content.
func (n *Node) ID() int { return n.NodeID }

// Name implements Content.
func (n *Node) Name() string { return n.NodeName }

// DocumentTypeAlias implements Content.
func (n *Node) DocumentTypeAlias() string { return n.Alias }

// Value implements Content.
func (n *Node) Value(alias string) (any, bool) {
	v, ok := n.Properties[alias]
	return v, ok
}

// LinkType distinguishes links to content nodes from links to external URLs.
type LinkType string

const (
	LinkInternal LinkType = "internal"
	LinkExternal LinkType = "external"
)

// RelatedLink pairs a content reference with link metadata.
// Content is nil for external links and for internal links whose target
// could not be found.
type RelatedLink struct {
	Caption    string   `json:"caption"`
	Link       string   `json:"link"`
	NewWindow  bool     `json:"newWindow"`
	IsInternal bool     `json:"isInternal"`
	Type       LinkType `json:"type"`
	Content    Content  `json:"-"`
}

// DocumentTypeAlias returns the alias of the linked content, or "" when the
// link has no content.
func (l RelatedLink) DocumentTypeAlias() string {
	if l.Content == nil {
		return ""
	}
	return l.Content.DocumentTypeAlias()
}
