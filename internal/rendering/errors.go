package rendering

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"

	oerrors "github.com/opmodel/renderings/internal/errors"
)

// Registration errors.
var (
	ErrEmptyAlias   = errors.New("empty document alias")
	ErrNilType      = errors.New("nil view-model type")
	ErrAbstractType = errors.New("interface types cannot be registered")
	ErrNilCreate    = errors.New("nil create function")
	ErrNoCreator    = errors.New("no creator registered")
)

// ConfigError reports aliases or types that have no view-model registration.
// It wraps errors.ErrUnresolved.
type ConfigError struct {
	// Subject is the offending alias, or a comma-joined list of type names.
	Subject string

	// Suggestion is the closest registered alias, if one is close enough.
	Suggestion string
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("unable to resolve a view model for alias(es)/type(s): %s", e.Subject)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return oerrors.ErrUnresolved
}

// suggestAlias returns the registered alias closest to alias, or "" when
// none is within a third of its length (minimum 2 edits).
func suggestAlias(alias string, candidates []string) string {
	limit := max(2, len(alias)/3)
	best, bestDist := "", limit+1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(alias, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
