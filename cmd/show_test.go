package cmd

import (
	"testing"

	"github.com/huangdijia/ccswitch/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Profile(t *testing.T) {
	env := newTestEnv(t, false)
	env.writeFile(t, profilesPath, scenarioProfiles)

	require.NoError(t, env.run("show", "a"))

	out := env.out.String()
	assert.Contains(t, out, "Profile: a")
	assert.Contains(t, out, "(default profile)")
	assert.Contains(t, out, "Description: Profile A")
	assert.Contains(t, out, "ANTHROPIC_AUTH_TOKEN: sk-a*********7890")
	assert.Contains(t, out, "ANTHROPIC_DEFAULT_OPUS_MODEL: m1")
	assert.NotContains(t, out, "sk-ant-1234567890")
}

func TestShowCmd_EmptyProfile(t *testing.T) {
	env := newTestEnv(t, false)
	env.writeFile(t, profilesPath, scenarioProfiles)

	require.NoError(t, env.run("show", "b"))

	assert.Contains(t, env.out.String(), "(no custom configuration)")
	assert.NotContains(t, env.out.String(), "(default profile)")
}

func TestShowCmd_UnknownProfile(t *testing.T) {
	env := newTestEnv(t, false)
	env.writeFile(t, profilesPath, scenarioProfiles)

	err := env.run("show", "zzz")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrProfileNotFound)
	assert.Contains(t, err.Error(), "available: a, b")
}

func TestShowCmd_Current(t *testing.T) {
	env := newTestEnv(t, false)
	env.writeFile(t, profilesPath, scenarioProfiles)
	env.writeFile(t, settingsPath, `{"env":{"ANTHROPIC_API_KEY":"abc","ANTHROPIC_BASE_URL":"https://x.example.com"},"model":"m9"}`)

	for _, args := range [][]string{{"show"}, {"show", "a", "--current"}} {
		env.out.Reset()
		require.NoError(t, env.run(args...))

		out := env.out.String()
		assert.Contains(t, out, "Current Claude Settings:")
		assert.Contains(t, out, "Settings file: "+settingsPath)
		assert.Contains(t, out, "Model: m9")
		assert.Contains(t, out, "ANTHROPIC_API_KEY: ***")
		assert.Contains(t, out, "ANTHROPIC_BASE_URL: https://x.example.com")
	}
}

func TestShowCmd_CurrentWithoutProfilesFile(t *testing.T) {
	env := newTestEnv(t, false)

	require.NoError(t, env.run("show", "--current"))

	assert.Contains(t, env.out.String(), "Model: (default)")
	assert.JSONEq(t, `{}`, env.readFile(t, settingsPath))
}

func TestShowCmd_CurrentMalformedSettings(t *testing.T) {
	env := newTestEnv(t, false)
	env.writeFile(t, settingsPath, `{not json`)

	err := env.run("show", "--current")
	assert.ErrorIs(t, err, apperr.ErrParse)
}
