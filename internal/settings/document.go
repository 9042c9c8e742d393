// Package settings edits the external tool's settings.json while leaving
// fields it does not own untouched.
package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/huangdijia/ccswitch/internal/apperr"
	"github.com/huangdijia/ccswitch/internal/config"
	"github.com/spf13/afero"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Fields owned by ccswitch.
const (
	EnvField   = "env"
	ModelField = "model"
)

const indent = "    "

// Document is a settings file held as an ordered JSON object. Unknown fields
// round-trip verbatim; only key order of removed or added fields changes.
type Document struct {
	fs     afero.Fs
	path   string
	fields *orderedmap.OrderedMap[string, json.RawMessage]
}

// Load reads the settings file at path, expanding a leading "~" against home.
// A missing file is created as an empty object first.
func Load(fsys afero.Fs, path, home string) (*Document, error) {
	path = config.ExpandHome(path, home)

	d := &Document{
		fs:     fsys,
		path:   path,
		fields: orderedmap.New[string, json.RawMessage](),
	}

	if _, err := fsys.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, apperr.IO("create directory", filepath.Dir(path), err)
		}
		if err := afero.WriteFile(fsys, path, []byte("{}"), 0644); err != nil {
			return nil, apperr.IO("create", path, err)
		}
		slog.Debug("created settings file", "path", path)
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, apperr.IO("read", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return d, nil
	}
	// Decode once with encoding/json for its error messages, then again into
	// the ordered map to keep field order.
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, apperr.Parse(path, err)
	}
	if probe == nil {
		return nil, apperr.Parse(path, errors.New("top-level value must be an object"))
	}
	if err := d.fields.UnmarshalJSON(data); err != nil {
		return nil, apperr.Parse(path, err)
	}

	slog.Debug("loaded settings", "path", path, "fields", d.fields.Len())
	return d, nil
}

// Path returns the resolved file path.
func (d *Document) Path() string {
	return d.path
}

// Get returns the raw JSON of a top-level field.
func (d *Document) Get(field string) (json.RawMessage, bool) {
	return d.fields.Get(field)
}

// Has reports whether a top-level field is present.
func (d *Document) Has(field string) bool {
	_, ok := d.fields.Get(field)
	return ok
}

// Set inserts or overwrites a top-level field. Existing fields keep their position.
func (d *Document) Set(field string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode field %q: %w", field, err)
	}
	d.fields.Set(field, raw)
	return nil
}

// Unset removes a top-level field if present.
func (d *Document) Unset(field string) {
	d.fields.Delete(field)
}

// Fields returns the top-level field names in document order.
func (d *Document) Fields() []string {
	names := make([]string, 0, d.fields.Len())
	for pair := d.fields.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Env decodes the env field. An absent or null env is an empty map.
func (d *Document) Env() (map[string]any, error) {
	env := make(map[string]any)
	raw, ok := d.fields.Get(EnvField)
	if !ok {
		return env, nil
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, apperr.Parse(d.path, fmt.Errorf("field %q: %w", EnvField, err))
	}
	if env == nil {
		env = make(map[string]any)
	}
	return env, nil
}

// SetEnv replaces the env field. A nil map is written as an empty object.
func (d *Document) SetEnv(env map[string]string) error {
	if env == nil {
		env = map[string]string{}
	}
	return d.Set(EnvField, env)
}

// Model returns the model field when it is a string.
func (d *Document) Model() (string, bool) {
	raw, ok := d.fields.Get(ModelField)
	if !ok {
		return "", false
	}
	var model string
	if err := json.Unmarshal(raw, &model); err != nil {
		return "", false
	}
	return model, true
}

// SetModel sets the model field.
func (d *Document) SetModel(model string) error {
	return d.Set(ModelField, model)
}

// Bytes renders the document as indented JSON.
func (d *Document) Bytes() ([]byte, error) {
	compact, err := d.fields.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", indent); err != nil {
		return nil, fmt.Errorf("failed to format settings: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Write overwrites the settings file in place.
func (d *Document) Write() error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	if err := afero.WriteFile(d.fs, d.path, data, 0644); err != nil {
		return apperr.IO("write", d.path, err)
	}
	slog.Debug("wrote settings", "path", d.path, "bytes", len(data))
	return nil
}
