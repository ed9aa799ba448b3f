package cmd

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLinks = `
links:
  - caption: Read more
    link: /articles/hello
    isInternal: true
    content:
      id: 1001
      name: Hello
      documentTypeAlias: article
      properties:
        title: Hello
        summary: A first post
  - caption: Spring sale
    link: /promo/spring
    isInternal: true
    content:
      id: 1003
      name: Spring
      documentTypeAlias: promo
      properties:
        headline: Spring sale
  - caption: Gallery
    link: /gallery/1
    isInternal: true
    content:
      id: 1004
      name: Gallery
      documentTypeAlias: gallery
  - caption: Elsewhere
    link: https://example.com
    type: external
  - caption: Author
    link: /people/ada
    isInternal: true
    content:
      id: 1002
      name: Ada
      documentTypeAlias: person
      properties:
        fullName: Ada Lovelace
`

func writeLinks(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "links.yaml")
	require.NoError(t, writeTestFile(path, content))
	return path
}

func convertJSON(t *testing.T, args ...string) []map[string]any {
	t.Helper()
	out, err := executeRoot(t, append([]string{"links", "convert", "-o", "json"}, args...)...)
	require.NoError(t, err)

	var models []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &models))
	return models
}

func TestLinksConvert(t *testing.T) {
	file := writeLinks(t, testLinks)

	t.Run("all registered types by default", func(t *testing.T) {
		models := convertJSON(t, "-f", file)
		require.Len(t, models, 3)
		assert.Equal(t, "Hello", models[0]["title"])
		assert.Equal(t, "Spring sale", models[1]["headline"])
		assert.Equal(t, "Ada Lovelace", models[2]["name"])
	})

	t.Run("link metadata is handed to receivers", func(t *testing.T) {
		models := convertJSON(t, "-f", file, "--allow", "Article")
		require.Len(t, models, 1)
		link, ok := models[0]["link"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "/articles/hello", link["url"])
		assert.Equal(t, "Read more", link["caption"])
	})

	t.Run("marker interface admits implementations", func(t *testing.T) {
		models := convertJSON(t, "-f", file, "--allow", "Teaser")
		require.Len(t, models, 2)
		assert.Equal(t, "Hello", models[0]["title"])
		assert.Equal(t, "Ada Lovelace", models[1]["name"])
	})

	t.Run("order follows the document", func(t *testing.T) {
		models := convertJSON(t, "-f", file, "--allow", "Person,Promo")
		require.Len(t, models, 2)
		assert.Equal(t, "Spring sale", models[0]["headline"])
		assert.Equal(t, "Ada Lovelace", models[1]["name"])
	})

	t.Run("table output", func(t *testing.T) {
		out, err := executeRoot(t, "links", "convert", "-f", file, "-o", "table")
		require.NoError(t, err)
		assert.Contains(t, out, "TITLE")
		assert.Contains(t, out, "*viewmodels.Article")
		assert.Contains(t, out, "Ada Lovelace")
	})

	t.Run("empty document", func(t *testing.T) {
		models := convertJSON(t, "-f", writeLinks(t, "links: []\n"))
		assert.Empty(t, models)
	})
}

func TestLinksConvert_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := executeRoot(t, "links", "convert", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Equal(t, ExitNotFound, ExitCodeFromError(err))
	})

	t.Run("file flag is required", func(t *testing.T) {
		_, err := executeRoot(t, "links", "convert")
		assert.Error(t, err)
	})

	t.Run("schema violation", func(t *testing.T) {
		file := writeLinks(t, "links:\n  - caption: Bad\n    link: /x\n    type: sideways\n")
		_, err := executeRoot(t, "links", "convert", "-f", file)
		require.Error(t, err)
		assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
	})

	t.Run("unknown allowed type", func(t *testing.T) {
		file := writeLinks(t, testLinks)
		_, err := executeRoot(t, "links", "convert", "-f", file, "--allow", "Gallery")
		require.Error(t, err)
		assert.Equal(t, ExitNotFound, ExitCodeFromError(err))
	})
}

func TestLinksPlan(t *testing.T) {
	file := writeLinks(t, testLinks)

	t.Run("json", func(t *testing.T) {
		out, err := executeRoot(t, "links", "plan", "-f", file, "--allow", "Teaser", "-o", "json")
		require.NoError(t, err)

		var plan struct {
			Permitted []string `json:"permitted"`
			Matches   []struct {
				Alias   string `json:"alias"`
				Matched bool   `json:"matched"`
				Reason  string `json:"reason"`
			} `json:"matches"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &plan))
		assert.Equal(t, []string{"article", "person"}, plan.Permitted)
		require.Len(t, plan.Matches, 5)
		assert.True(t, plan.Matches[0].Matched)
		assert.Equal(t, "alias not allowed", plan.Matches[1].Reason)
		assert.Equal(t, "alias not allowed", plan.Matches[2].Reason)
		assert.Equal(t, "no content", plan.Matches[3].Reason)
		assert.True(t, plan.Matches[4].Matched)
	})

	t.Run("table", func(t *testing.T) {
		out, err := executeRoot(t, "links", "plan", "-f", file, "-o", "table")
		require.NoError(t, err)
		assert.Contains(t, out, "3 of 5 links converted")
		assert.Contains(t, out, "gallery -> Gallery")
	})
}
