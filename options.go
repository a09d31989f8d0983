package astddl

import (
	"log/slog"

	"github.com/zoobzio/astddl/internal/render"
)

// Option configures rendering.
type Option = render.Option

// Capabilities describes the DDL features supported by a dialect family.
type Capabilities = render.Capabilities

// KeywordCase controls how SQL keywords are cased.
type KeywordCase = render.KeywordCase

// Re-export keyword case constants for public API.
const (
	KeywordUpper = render.KeywordUpper
	KeywordLower = render.KeywordLower
)

// NameStyle controls how identifiers are rendered.
type NameStyle = render.NameStyle

// Re-export name style constants for public API.
const (
	NameQuoted = render.NameQuoted
	NameAsIs   = render.NameAsIs
	NameUpper  = render.NameUpper
	NameLower  = render.NameLower
)

// Listener receives clause events synchronously as they are recorded.
type Listener = render.Listener

// WithKeywordCase sets keyword casing.
func WithKeywordCase(k KeywordCase) Option {
	return render.WithKeywordCase(k)
}

// WithNameStyle sets identifier rendering.
func WithNameStyle(n NameStyle) Option {
	return render.WithNameStyle(n)
}

// WithPretty renders wrappers across multiple lines, indenting nested
// blocks by indent spaces.
func WithPretty(indent int) Option {
	return render.WithPretty(indent)
}

// WithLogger sets the logger used while rendering. Rendering is silent by default.
func WithLogger(l *slog.Logger) Option {
	return render.WithLogger(l)
}

// WithListener registers a clause event listener.
func WithListener(l Listener) Option {
	return render.WithListener(l)
}

// ParseKeywordCase resolves a keyword case by name.
func ParseKeywordCase(name string) (KeywordCase, error) {
	return render.ParseKeywordCase(name)
}

// ParseNameStyle resolves a name style by name.
func ParseNameStyle(name string) (NameStyle, error) {
	return render.ParseNameStyle(name)
}

// CapabilitiesFor returns the DDL capabilities of a dialect family.
func CapabilitiesFor(f Family) Capabilities {
	return render.CapabilitiesFor(f)
}
