// Package group handles reading, writing, and validating gift-exchange
// groups at the file boundary.
//
// The solver in pkg/match assumes well-formed, name-unique input; this
// package is where that contract is enforced. Groups are stored as TOML
// (the default, friendly to hand editing) or JSON, detected by file
// extension:
//
//	name = "office 2026"
//
//	[[participant]]
//	name = "alice"
//	exclusions = ["bob"]
//
//	[[participant]]
//	name = "bob"
//
// [Group.Normalize] assigns a fresh UUID to every participant without an
// ID and collapses duplicate exclusion entries; [Group.Validate] rejects
// empty or duplicate names and oversized exclusion lists. Exclusions that
// name nobody in the group are allowed - they simply have no effect on
// matching.
package group

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/matzehuels/giftmatch/pkg/match"
)

var (
	// ErrEmptyName is returned by [Group.Validate] when a participant
	// has no name. Names are the matching key and must be present.
	ErrEmptyName = errors.New("participant name must not be empty")

	// ErrDuplicateName is returned by [Group.Validate] when two
	// participants share a name. Names must be unique within a group.
	ErrDuplicateName = errors.New("duplicate participant name")

	// ErrTooManyExclusions is returned by [Group.Validate] when a
	// participant's exclusion list exceeds the group's limit.
	ErrTooManyExclusions = errors.New("too many exclusions")

	// ErrUnknownFormat is returned by [ReadFile] and [WriteFile] for
	// file extensions other than .toml and .json.
	ErrUnknownFormat = errors.New("unknown group file format")
)

// DefaultMaxExclusions caps the exclusion list size when the group file
// does not set its own limit.
const DefaultMaxExclusions = 10

// Group is a named set of participants as stored on disk.
type Group struct {
	Name string `toml:"name" json:"name,omitempty"`

	// MaxExclusions caps the exclusion list size per participant.
	// Zero means DefaultMaxExclusions.
	MaxExclusions int `toml:"max_exclusions" json:"max_exclusions,omitempty"`

	Members []Member `toml:"participant" json:"participants"`
}

// Member is the on-disk shape of one participant.
type Member struct {
	ID         string   `toml:"id,omitempty" json:"id,omitempty"`
	Name       string   `toml:"name" json:"name"`
	Exclusions []string `toml:"exclusions,omitempty" json:"exclusions,omitempty"`
}

// Participants converts the group into the solver's input type.
func (g *Group) Participants() []match.Participant {
	out := make([]match.Participant, len(g.Members))
	for i, m := range g.Members {
		out[i] = match.Participant{
			ID:         m.ID,
			Name:       m.Name,
			Exclusions: slices.Clone(m.Exclusions),
		}
	}
	return out
}

// Normalize fills in generated UUIDs for members without an ID and
// collapses duplicate exclusion entries, preserving first-seen order.
// It is idempotent and safe to call on already normalized groups.
func (g *Group) Normalize() {
	for i := range g.Members {
		m := &g.Members[i]
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		if len(m.Exclusions) > 1 {
			seen := make(map[string]struct{}, len(m.Exclusions))
			deduped := m.Exclusions[:0]
			for _, name := range m.Exclusions {
				if _, dup := seen[name]; dup {
					continue
				}
				seen[name] = struct{}{}
				deduped = append(deduped, name)
			}
			m.Exclusions = deduped
		}
	}
}

// Validate checks the well-formedness contract the solver relies on:
// every member named, names unique, exclusion lists within the limit.
// Errors are wrapped with the offending member for context; use
// errors.Is against the package sentinels to branch on the cause.
func (g *Group) Validate() error {
	limit := g.MaxExclusions
	if limit <= 0 {
		limit = DefaultMaxExclusions
	}

	seen := make(map[string]struct{}, len(g.Members))
	for i, m := range g.Members {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("participant %d: %w", i, ErrEmptyName)
		}
		if _, dup := seen[m.Name]; dup {
			return fmt.Errorf("participant %q: %w", m.Name, ErrDuplicateName)
		}
		seen[m.Name] = struct{}{}

		if len(m.Exclusions) > limit {
			return fmt.Errorf("participant %q has %d exclusions (limit %d): %w",
				m.Name, len(m.Exclusions), limit, ErrTooManyExclusions)
		}
	}
	return nil
}

// ReadFile reads a group file, picking the decoder by extension:
// .toml (or no extension) for TOML, .json for JSON.
func ReadFile(path string) (*Group, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch ext := filepath.Ext(path); ext {
	case ".toml", "":
		return ReadTOML(f)
	case ".json":
		return ReadJSON(f)
	default:
		return nil, fmt.Errorf("%s: %w", ext, ErrUnknownFormat)
	}
}

// ReadTOML decodes a TOML group from r.
func ReadTOML(r io.Reader) (*Group, error) {
	var g Group
	if _, err := toml.NewDecoder(r).Decode(&g); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	return &g, nil
}

// ReadJSON decodes a JSON group from r.
func ReadJSON(r io.Reader) (*Group, error) {
	var g Group
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return &g, nil
}

// WriteFile writes the group to path, picking the encoder by extension
// the same way [ReadFile] picks the decoder. Files are created with 0644
// permissions.
func WriteFile(g *Group, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	switch ext := filepath.Ext(path); ext {
	case ".toml", "":
		return WriteTOML(g, f)
	case ".json":
		return WriteJSON(g, f)
	default:
		return fmt.Errorf("%s: %w", ext, ErrUnknownFormat)
	}
}

// WriteTOML encodes the group as TOML to w.
func WriteTOML(g *Group, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(g); err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	return nil
}

// WriteJSON encodes the group as indented JSON to w.
func WriteJSON(g *Group, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
