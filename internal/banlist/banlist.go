// Package banlist serves the fixed banned-card tables for the supported
// formats. The tables ship inside the binary.
package banlist

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for a format without a table
var ErrUnknownFormat = errors.New("unknown format")

// Format is a play format name
type Format string

const (
	FormatCommander Format = "commander"
	FormatPauper    Format = "pauper"
	FormatPioneer   Format = "pioneer"
	FormatBrawl     Format = "brawl"
	FormatStandard  Format = "standard"
	FormatModern    Format = "modern"
	FormatLegacy    Format = "legacy"
)

//go:embed banlists.yaml
var rawTables []byte

type document struct {
	Formats []struct {
		Name  Format   `yaml:"name"`
		Cards []string `yaml:"cards"`
	} `yaml:"formats"`
}

// Tables holds the banned names per format in display order
type Tables struct {
	order []Format
	cards map[Format][]string
}

// Load parses tables from YAML
func Load(raw []byte) (*Tables, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse banlists: %w", err)
	}

	t := &Tables{cards: make(map[Format][]string, len(doc.Formats))}
	for _, f := range doc.Formats {
		name := Format(strings.ToLower(strings.TrimSpace(string(f.Name))))
		if name == "" {
			return nil, errors.New("banlist format without a name")
		}
		if _, dup := t.cards[name]; dup {
			return nil, fmt.Errorf("duplicate banlist format %q", name)
		}
		t.order = append(t.order, name)
		t.cards[name] = f.Cards
	}
	return t, nil
}

// Default returns the tables embedded in the binary
func Default() *Tables {
	t, err := Load(rawTables)
	if err != nil {
		panic(err)
	}
	return t
}

// Formats lists the known formats in display order
func (t *Tables) Formats() []Format {
	out := make([]Format, len(t.order))
	copy(out, t.order)
	return out
}

// Get returns a copy of the banned names for format
func (t *Tables) Get(format Format) ([]string, error) {
	cards, ok := t.cards[Format(strings.ToLower(string(format)))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	out := make([]string, len(cards))
	copy(out, cards)
	return out, nil
}
