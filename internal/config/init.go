package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/huangdijia/ccswitch/internal/apperr"
	"github.com/spf13/afero"
)

// InitResult describes what WriteTemplate did.
type InitResult struct {
	Path       string
	CreatedDir bool
	Full       bool
}

// WriteTemplate writes the built-in profiles template to path. An existing file
// is left untouched unless force is set.
func WriteTemplate(fsys afero.Fs, path string, force, full bool) (*InitResult, error) {
	if _, err := fsys.Stat(path); err == nil && !force {
		return nil, apperr.AlreadyExists(path)
	}

	result := &InitResult{Path: path, Full: full}

	configDir := filepath.Dir(path)
	if _, err := fsys.Stat(configDir); errors.Is(err, fs.ErrNotExist) {
		if err := fsys.MkdirAll(configDir, 0755); err != nil {
			return nil, apperr.IO("create directory", configDir, err)
		}
		result.CreatedDir = true
	}

	if err := afero.WriteFile(fsys, path, []byte(Template(full)), 0644); err != nil {
		return nil, apperr.IO("write", path, err)
	}

	slog.Debug("wrote profiles template", "path", path, "full", full)
	return result, nil
}
