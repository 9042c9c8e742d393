// Package activation projects a profile onto the settings document and
// decides which profile a command invocation refers to.
package activation

import (
	"log/slog"

	"github.com/huangdijia/ccswitch/internal/apperr"
	"github.com/huangdijia/ccswitch/internal/profiles"
	"github.com/huangdijia/ccswitch/internal/settings"
)

// Document is the part of settings.Document that activation mutates.
type Document interface {
	SetEnv(env map[string]string) error
	SetModel(model string) error
	Unset(field string)
	Write() error
}

var _ Document = (*settings.Document)(nil)

// Apply replaces the document's env with env, syncs model from
// ANTHROPIC_MODEL (removing it when absent) and persists the document.
func Apply(doc Document, env map[string]string) error {
	if err := doc.SetEnv(env); err != nil {
		return err
	}

	if model, ok := env[profiles.ModelKey]; ok {
		if err := doc.SetModel(model); err != nil {
			return err
		}
	} else {
		doc.Unset(settings.ModelField)
	}

	return doc.Write()
}

// Reset clears env and removes model.
func Reset(doc Document) error {
	return Apply(doc, nil)
}

// Store is the read side of profiles.Store used for resolution.
type Store interface {
	Has(name string) bool
	Default() string
	Names() []string
}

var _ Store = (*profiles.Store)(nil)

// Request carries the ways a profile can be named on the command line.
// Arg is the positional argument, Selector the --profile flag or
// CCSWITCH_PROFILE value, and Pick an optional interactive chooser.
type Request struct {
	Arg      string
	Selector string
	Pick     func(names []string, defaultName string) (string, error)
}

// Resolve chooses the profile name: Arg, then Selector, then Pick, then the
// store default. The result must exist in the store. Errors from Pick are
// returned unchanged.
func Resolve(store Store, req Request) (string, error) {
	name, source := req.Arg, "argument"
	if name == "" && req.Selector != "" {
		name, source = req.Selector, "selector"
	}
	if name == "" && req.Pick != nil {
		picked, err := req.Pick(store.Names(), store.Default())
		if err != nil {
			return "", err
		}
		name, source = picked, "picker"
	}
	if name == "" {
		name, source = store.Default(), "default"
	}

	if !store.Has(name) {
		return "", apperr.ProfileNotFound(name, store.Names())
	}

	slog.Debug("resolved profile", "name", name, "source", source)
	return name, nil
}
