package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/huangdijia/ccswitch/internal/termui"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const (
	testHome     = "/home/test"
	profilesPath = "/home/test/.ccswitch/ccs.json"
	settingsPath = "/home/test/.claude/settings.json"
)

const scenarioProfiles = `{
	"default": "a",
	"profiles": {
		"a": {"ANTHROPIC_MODEL": "m1", "ANTHROPIC_BASE_URL": "https://a.example.com", "ANTHROPIC_AUTH_TOKEN": "sk-ant-1234567890"},
		"b": {}
	},
	"descriptions": {"a": "Profile A"}
}`

type testEnv struct {
	app    *App
	fs     afero.Fs
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newTestEnv(t *testing.T, interactive bool) *testEnv {
	t.Helper()
	streams, _, out, errOut := termui.TestIOStreamsNonInteractive()
	if interactive {
		streams, _, out, errOut = termui.TestIOStreams()
	}
	fsys := afero.NewMemMapFs()
	return &testEnv{
		app: &App{
			Fs:      fsys,
			Home:    testHome,
			Streams: streams,
			Pick: func(context.Context, []string, string) (string, error) {
				t.Fatal("picker should not be shown")
				return "", nil
			},
		},
		fs:     fsys,
		out:    out,
		errOut: errOut,
	}
}

func (e *testEnv) writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(e.fs, path, []byte(content), 0644))
}

func (e *testEnv) readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := afero.ReadFile(e.fs, path)
	require.NoError(t, err)
	return string(content)
}

func (e *testEnv) run(args ...string) error {
	root := NewRootCmd(e.app)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}
