// Package rendering maps CMS document type aliases to application view-model
// types and back.
//
// A [Registry] is built once, at startup, from an explicit registration
// table and is read-only afterwards, so it can be shared freely between
// goroutines. A [Resolver] wraps a Registry with a failure [Policy]: in
// Strict mode unknown aliases and unregistered types are configuration
// errors, in Lenient mode they are logged and skipped.
package rendering
