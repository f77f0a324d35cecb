package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransport records request lines and answers OK with a canned payload.
type fakeTransport struct {
	requests []string
	payload  []string
	fail     bool
}

func (f *fakeTransport) Roundtrip(_ context.Context, line string) ([]string, error) {
	f.requests = append(f.requests, line)
	status := "BatchCommand finished: OK"
	if f.fail {
		status = "BatchCommand finished: Failed!"
	}
	return append(append([]string{}, f.payload...), status), nil
}

func (f *fakeTransport) Close() error { return nil }

// run executes the CLI against a fake transport and captures stdout.
func run(t *testing.T, ft *fakeTransport, args ...string) (string, error) {
	t.Helper()
	app := &App{transport: ft}
	root := app.Root()

	// Point --config at an empty file so a developer's real config cannot
	// leak into the test.
	cfg := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfg, nil, 0o644))
	args = append([]string{"--config", cfg}, args...)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestExecNoParameters(t *testing.T) {
	ft := &fakeTransport{}
	_, err := run(t, ft, "play")
	require.NoError(t, err)
	assert.Equal(t, []string{"Play:"}, ft.requests)
}

func TestExecFlagsBecomeParameters(t *testing.T) {
	ft := &fakeTransport{}
	_, err := run(t, ft, "tone", "--frequency", "880", "--waveform", "Square")
	require.NoError(t, err)
	require.Len(t, ft.requests, 1)
	assert.Equal(t,
		`Tone: Frequency="880" Amplitude="0.8" Waveform="Square" Interpolation="Linear"`,
		ft.requests[0])
}

func TestExecDefaultsFromCatalog(t *testing.T) {
	ft := &fakeTransport{}
	_, err := run(t, ft, "chirp")
	require.NoError(t, err)
	require.Len(t, ft.requests, 1)
	assert.Equal(t,
		`Chirp: StartFreq="440" EndFreq="1320" StartAmp="0.8" EndAmp="0.1" Waveform="Sine" Interpolation="Linear"`,
		ft.requests[0])
}

func TestExecOptionalFlagsOmittedWhenUnset(t *testing.T) {
	ft := &fakeTransport{}
	_, err := run(t, ft, "set-label", "--label", "2", "--text", "chorus")
	require.NoError(t, err)
	require.Len(t, ft.requests, 1)
	assert.Equal(t, `SetLabel: Label="2" Text="chorus"`, ft.requests[0])
}

func TestExecOptionalBoolExplicitFalse(t *testing.T) {
	ft := &fakeTransport{}
	_, err := run(t, ft, "set-track-audio", "--mute=false")
	require.NoError(t, err)
	require.Len(t, ft.requests, 1)
	assert.Equal(t, `SetTrackAudio: Mute="0"`, ft.requests[0])
}

func TestExecScriptNameOverride(t *testing.T) {
	ft := &fakeTransport{}
	_, err := run(t, ft, "open", "--filename", "song.aup3")
	require.NoError(t, err)
	require.Len(t, ft.requests, 1)
	assert.Equal(t, `OpenProject2: Filename="song.aup3" AddToHistory="0"`, ft.requests[0])
}

func TestExecRejectsBadEnum(t *testing.T) {
	ft := &fakeTransport{}
	_, err := run(t, ft, "noise", "--type", "Purple")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Purple")
	assert.Empty(t, ft.requests, "invalid command must not be sent")
}

func TestExecFailedStatusIsError(t *testing.T) {
	ft := &fakeTransport{fail: true, payload: []string{"no such command"}}
	out, err := run(t, ft, "play")
	require.Error(t, err)
	assert.Contains(t, out, "no such command")
}

func TestExecPrintsPayload(t *testing.T) {
	ft := &fakeTransport{payload: []string{"track info here"}}
	out, err := run(t, ft, "get-info", "--type", "Tracks")
	require.NoError(t, err)
	assert.Contains(t, out, "track info here")
	assert.Equal(t, `GetInfo: Type="Tracks" Format="JSON"`, ft.requests[0])
}

func TestDryRunSkipsTransport(t *testing.T) {
	ft := &fakeTransport{}
	out, err := run(t, ft, "--dry-run", "chirp", "--start-freq", "220")
	require.NoError(t, err)
	assert.Empty(t, ft.requests)
	assert.Contains(t, out, `Chirp: StartFreq="220"`)
}

func TestDoSendsRawLine(t *testing.T) {
	ft := &fakeTransport{}
	_, err := run(t, ft, "do", `Message: Text="hi"`)
	require.NoError(t, err)
	assert.Equal(t, []string{`Message: Text="hi"`}, ft.requests)
}

func TestCommandsList(t *testing.T) {
	ft := &fakeTransport{}
	out, err := run(t, ft, "commands")
	require.NoError(t, err)
	assert.Contains(t, out, "chirp")
	assert.Contains(t, out, "set-label")
	assert.Empty(t, ft.requests)
}

func TestCommandsFilter(t *testing.T) {
	ft := &fakeTransport{}
	out, err := run(t, ft, "commands", "fade")
	require.NoError(t, err)
	assert.Contains(t, out, "adjustable-fade")
	assert.NotContains(t, out, "zoom-in")
}

func TestCommandsFilterNoMatch(t *testing.T) {
	ft := &fakeTransport{}
	_, err := run(t, ft, "commands", "zzzz-nothing")
	require.Error(t, err)
}

func TestEverySubcommandRegistered(t *testing.T) {
	app := &App{}
	root := app.Root()

	for _, name := range []string{"play", "chirp", "set-track", "open", "ladspa", "sw-playthrough"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestFlagUsageListsEnumValues(t *testing.T) {
	app := &App{}
	root := app.Root()

	cmd, _, err := root.Find([]string{"noise"})
	require.NoError(t, err)
	fl := cmd.Flags().Lookup("type")
	require.NotNil(t, fl)
	assert.True(t, strings.Contains(fl.Usage, "White") &&
		strings.Contains(fl.Usage, "Pink") &&
		strings.Contains(fl.Usage, "Brownian"))
}
