package render

import (
	"errors"
	"testing"
)

func TestParseKeywordCase(t *testing.T) {
	tests := []struct {
		input   string
		want    KeywordCase
		wantErr bool
	}{
		{"upper", KeywordUpper, false},
		{"LOWER", KeywordLower, false},
		{" lower ", KeywordLower, false},
		{"title", KeywordUpper, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKeywordCase(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKeywordCase(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKeywordCase(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseNameStyle(t *testing.T) {
	tests := []struct {
		input   string
		want    NameStyle
		wantErr bool
	}{
		{"quoted", NameQuoted, false},
		{"as_is", NameAsIs, false},
		{"as-is", NameAsIs, false},
		{"Upper", NameUpper, false},
		{"lower", NameLower, false},
		{"snake", NameQuoted, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseNameStyle(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseNameStyle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseNameStyle(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}

	_, err := ParseNameStyle("snake")
	var unErr *UnknownNameError
	if !errors.As(err, &unErr) || unErr.Kind != "name style" {
		t.Errorf("error = %v, want *UnknownNameError for name style", err)
	}
}

func TestNewSettings(t *testing.T) {
	s := NewSettings()
	if s.Logger == nil {
		t.Error("Logger = nil, want discard logger")
	}
	if s.Keywords != KeywordUpper || s.Names != NameQuoted || s.Pretty {
		t.Errorf("NewSettings() = %+v, want upper, quoted, single line", s)
	}

	s = NewSettings(WithPretty(0), WithKeywordCase(KeywordLower), WithNameStyle(NameLower))
	if !s.Pretty || s.Indent != 2 {
		t.Errorf("WithPretty(0): Pretty=%v Indent=%d, want true 2", s.Pretty, s.Indent)
	}
	if s.Keywords != KeywordLower || s.Names != NameLower {
		t.Errorf("options not applied: %+v", s)
	}
}
