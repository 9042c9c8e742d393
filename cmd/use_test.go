package cmd

import (
	"context"
	"testing"

	"github.com/huangdijia/ccswitch/internal/apperr"
	"github.com/huangdijia/ccswitch/internal/termui"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const activatedA = `{
	"env": {
		"ANTHROPIC_MODEL": "m1",
		"ANTHROPIC_BASE_URL": "https://a.example.com",
		"ANTHROPIC_AUTH_TOKEN": "sk-ant-1234567890",
		"ANTHROPIC_DEFAULT_HAIKU_MODEL": "m1",
		"ANTHROPIC_DEFAULT_OPUS_MODEL": "m1",
		"ANTHROPIC_DEFAULT_SONNET_MODEL": "m1",
		"ANTHROPIC_SMALL_FAST_MODEL": "m1"
	},
	"model": "m1",
	"theme": "dark"
}`

func TestUseCmd_ActivatesProfile(t *testing.T) {
	env := newTestEnv(t, false)
	env.writeFile(t, profilesPath, scenarioProfiles)
	env.writeFile(t, settingsPath, `{"theme":"dark"}`)

	require.NoError(t, env.run("use", "a"))

	assert.JSONEq(t, activatedA, env.readFile(t, settingsPath))
	out := env.out.String()
	assert.Contains(t, out, "✓ Successfully switched to profile: a")
	assert.Contains(t, out, "URL: https://a.example.com")
	assert.Contains(t, out, "Fast Model: m1")
}

func TestUseCmd_ProfileWithoutModel(t *testing.T) {
	env := newTestEnv(t, false)
	env.writeFile(t, profilesPath, scenarioProfiles)
	env.writeFile(t, settingsPath, `{"env":{"X":"1"},"model":"m","theme":"dark"}`)

	require.NoError(t, env.run("switch", "b"))

	assert.JSONEq(t, `{"env":{},"theme":"dark"}`, env.readFile(t, settingsPath))
}

func TestUseCmd_Idempotent(t *testing.T) {
	env := newTestEnv(t, false)
	env.writeFile(t, profilesPath, scenarioProfiles)

	require.NoError(t, env.run("set", "a"))
	once := env.readFile(t, settingsPath)
	require.NoError(t, env.run("set", "a"))

	assert.Equal(t, once, env.readFile(t, settingsPath))
}

func TestUseCmd_UnknownProfileLeavesSettings(t *testing.T) {
	env := newTestEnv(t, false)
	env.writeFile(t, profilesPath, scenarioProfiles)
	original := `{"env":{"X":"1"},"model":"m"}`
	env.writeFile(t, settingsPath, original)

	err := env.run("use", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrProfileNotFound)
	assert.Equal(t, original, env.readFile(t, settingsPath))
}

func TestUseCmd_MissingProfilesFile(t *testing.T) {
	env := newTestEnv(t, false)

	err := env.run("use", "a")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUseCmd_Resolution(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		envVar    string
		wantModel bool
	}{
		{name: "default when nothing given", args: []string{"use"}, wantModel: true},
		{name: "profile flag", args: []string{"use", "--profile", "b"}, wantModel: false},
		{name: "environment selector", args: []string{"use"}, envVar: "b", wantModel: false},
		{name: "argument beats environment", args: []string{"use", "a"}, envVar: "b", wantModel: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envVar != "" {
				t.Setenv("CCSWITCH_PROFILE", tt.envVar)
			}
			env := newTestEnv(t, false)
			env.writeFile(t, profilesPath, scenarioProfiles)

			require.NoError(t, env.run(tt.args...))

			settings := env.readFile(t, settingsPath)
			if tt.wantModel {
				assert.Contains(t, settings, `"model": "m1"`)
			} else {
				assert.NotContains(t, settings, `"model"`)
			}
		})
	}
}

func TestUseCmd_InteractivePicker(t *testing.T) {
	env := newTestEnv(t, true)
	env.writeFile(t, profilesPath, scenarioProfiles)

	var offered []string
	var preselected string
	env.app.Pick = func(_ context.Context, names []string, defaultName string) (string, error) {
		offered, preselected = names, defaultName
		return "b", nil
	}

	require.NoError(t, env.run("use"))

	assert.Equal(t, []string{"a", "b"}, offered)
	assert.Equal(t, "a", preselected)
	assert.Contains(t, env.out.String(), "Successfully switched to profile: b")
}

func TestUseCmd_InteractivePickerCanceled(t *testing.T) {
	env := newTestEnv(t, true)
	env.writeFile(t, profilesPath, scenarioProfiles)
	original := `{"model":"keep"}`
	env.writeFile(t, settingsPath, original)
	env.app.Pick = func(context.Context, []string, string) (string, error) {
		return "", termui.ErrCanceled
	}

	require.NoError(t, env.run("use"))

	assert.Contains(t, env.out.String(), "Canceled.")
	assert.Equal(t, original, env.readFile(t, settingsPath))
}

func TestUseCmd_SettingsPathFromProfiles(t *testing.T) {
	env := newTestEnv(t, false)
	env.writeFile(t, profilesPath, `{"settingsPath":"~/.config/claude/settings.json","profiles":{"default":{"ANTHROPIC_MODEL":"m2"}}}`)

	require.NoError(t, env.run("use"))

	assert.Contains(t, env.readFile(t, "/home/test/.config/claude/settings.json"), `"model": "m2"`)
	exists, err := afero.Exists(env.fs, settingsPath)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUseCmd_SettingsFlagOverrides(t *testing.T) {
	env := newTestEnv(t, false)
	env.writeFile(t, profilesPath, `{"settingsPath":"~/.config/claude/settings.json","profiles":{"default":{"ANTHROPIC_MODEL":"m2"}}}`)

	require.NoError(t, env.run("use", "default", "--settings", "/tmp/custom.json"))

	assert.Contains(t, env.readFile(t, "/tmp/custom.json"), `"model": "m2"`)
}
