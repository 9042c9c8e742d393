// Package profiles loads the named environment profiles that ccswitch can activate.
package profiles

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"maps"
	"slices"

	"github.com/huangdijia/ccswitch/internal/apperr"
	"github.com/spf13/afero"
)

// FallbackDefault is the profile name used when the document has no "default" field.
const FallbackDefault = "default"

// Well-known variable names.
const (
	ModelKey          = "ANTHROPIC_MODEL"
	BaseURLKey        = "ANTHROPIC_BASE_URL"
	SmallFastModelKey = "ANTHROPIC_SMALL_FAST_MODEL"
)

// tierKeys are filled from ModelKey when a profile leaves them out.
var tierKeys = []string{
	"ANTHROPIC_DEFAULT_HAIKU_MODEL",
	"ANTHROPIC_DEFAULT_OPUS_MODEL",
	"ANTHROPIC_DEFAULT_SONNET_MODEL",
	SmallFastModelKey,
}

// Document is the on-disk shape of the profiles file.
type Document struct {
	Default      string                       `json:"default,omitempty"`
	SettingsPath string                       `json:"settingsPath,omitempty"`
	Profiles     map[string]map[string]string `json:"profiles"`
	Descriptions map[string]string            `json:"descriptions,omitempty"`
}

// Store answers read-only queries over a loaded profiles document.
type Store struct {
	path string
	doc  Document
}

// Load reads the profiles document at path. A missing file is an apperr.ErrNotFound.
func Load(fsys afero.Fs, path string) (*Store, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.NotFound("profiles file", path)
		}
		return nil, apperr.IO("read", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperr.Parse(path, err)
	}
	if doc.Profiles == nil {
		doc.Profiles = make(map[string]map[string]string)
	}
	if doc.Descriptions == nil {
		doc.Descriptions = make(map[string]string)
	}

	slog.Debug("loaded profiles", "path", path, "count", len(doc.Profiles))
	return &Store{path: path, doc: doc}, nil
}

// Path returns the file the store was loaded from.
func (s *Store) Path() string {
	return s.path
}

// Has reports whether name is a configured profile.
func (s *Store) Has(name string) bool {
	_, ok := s.doc.Profiles[name]
	return ok
}

// Default returns the configured default profile name, or FallbackDefault.
// The name is not required to exist.
func (s *Store) Default() string {
	if s.doc.Default != "" {
		return s.doc.Default
	}
	return FallbackDefault
}

// Get returns a copy of the profile's variables. When ANTHROPIC_MODEL is set,
// missing model tier variables are filled with its value. Unknown names yield
// an empty map.
func (s *Store) Get(name string) map[string]string {
	env := maps.Clone(s.doc.Profiles[name])
	if env == nil {
		return make(map[string]string)
	}

	model, ok := env[ModelKey]
	if !ok {
		return env
	}
	for _, key := range tierKeys {
		if _, exists := env[key]; !exists {
			env[key] = model
		}
	}
	return env
}

// SettingsPath returns the settings file override, if the document sets one.
func (s *Store) SettingsPath() (string, bool) {
	return s.doc.SettingsPath, s.doc.SettingsPath != ""
}

// Names returns all profile names in sorted order.
func (s *Store) Names() []string {
	return slices.Sorted(maps.Keys(s.doc.Profiles))
}

// Description returns the display description for name, or "".
func (s *Store) Description(name string) string {
	return s.doc.Descriptions[name]
}

// Raw returns the stored variables for name without derived fields.
func (s *Store) Raw(name string) map[string]string {
	return maps.Clone(s.doc.Profiles[name])
}

// Len returns the number of profiles.
func (s *Store) Len() int {
	return len(s.doc.Profiles)
}
