package render

import (
	"log/slog"
	"strings"

	"github.com/zoobzio/astddl/internal/types"
)

// KeywordCase controls how SQL keywords are cased.
type KeywordCase int

const (
	KeywordUpper KeywordCase = iota
	KeywordLower
)

// NameStyle controls how identifiers are rendered.
type NameStyle int

const (
	NameQuoted NameStyle = iota // quoted, case preserved
	NameAsIs                    // unquoted, case preserved
	NameUpper                   // unquoted, upper-cased
	NameLower                   // unquoted, lower-cased
)

var keywordCaseNames = map[KeywordCase]string{
	KeywordUpper: "upper",
	KeywordLower: "lower",
}

var nameStyleNames = map[NameStyle]string{
	NameQuoted: "quoted",
	NameAsIs:   "as_is",
	NameUpper:  "upper",
	NameLower:  "lower",
}

func (k KeywordCase) String() string {
	return keywordCaseNames[k]
}

func (n NameStyle) String() string {
	return nameStyleNames[n]
}

// ParseKeywordCase resolves a keyword case by name.
func ParseKeywordCase(name string) (KeywordCase, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for k, n := range keywordCaseNames {
		if n == key {
			return k, nil
		}
	}
	return KeywordUpper, NewUnknownNameError("keyword case", name)
}

// ParseNameStyle resolves a name style by name. "as-is" is accepted for "as_is".
func ParseNameStyle(name string) (NameStyle, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for s, n := range nameStyleNames {
		if n == key {
			return s, nil
		}
	}
	return NameQuoted, NewUnknownNameError("name style", name)
}

// Listener receives clause events synchronously as they are recorded.
type Listener func(types.ClauseEvent)

// Settings holds rendering options. The zero value renders upper-case
// keywords, quoted identifiers and a single line.
type Settings struct {
	Logger    *slog.Logger
	Listeners []Listener
	Keywords  KeywordCase
	Names     NameStyle
	Indent    int
	Pretty    bool
}

// Option configures Settings.
type Option func(*Settings)

// WithKeywordCase sets keyword casing.
func WithKeywordCase(k KeywordCase) Option {
	return func(s *Settings) {
		s.Keywords = k
	}
}

// WithNameStyle sets identifier rendering.
func WithNameStyle(n NameStyle) Option {
	return func(s *Settings) {
		s.Names = n
	}
}

// WithPretty renders fallback wrappers across multiple indented lines.
func WithPretty(indent int) Option {
	return func(s *Settings) {
		s.Pretty = true
		s.Indent = indent
	}
}

// WithLogger sets the logger used for render diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Settings) {
		s.Logger = l
	}
}

// WithListener registers a clause event listener.
func WithListener(l Listener) Option {
	return func(s *Settings) {
		s.Listeners = append(s.Listeners, l)
	}
}

// NewSettings applies options over the zero Settings.
func NewSettings(opts ...Option) Settings {
	var s Settings
	for _, opt := range opts {
		opt(&s)
	}
	if s.Logger == nil {
		s.Logger = slog.New(slog.DiscardHandler)
	}
	if s.Pretty && s.Indent <= 0 {
		s.Indent = 2
	}
	return s
}
