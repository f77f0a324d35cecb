package audacity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransport records request lines and plays back canned replies.
type fakeTransport struct {
	requests []string
	replies  [][]string
	err      error
	closed   bool
}

func (f *fakeTransport) Roundtrip(ctx context.Context, line string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	f.requests = append(f.requests, line)
	if len(f.replies) == 0 {
		return []string{"BatchCommand finished: OK"}, nil
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	return reply, nil
}

func (f *fakeTransport) Close() error {
	f.closed = true
	return nil
}

func TestClientDo(t *testing.T) {
	ft := &fakeTransport{
		replies: [][]string{{"hello", "BatchCommand finished: OK"}},
	}
	c := NewClient(ft)

	resp, err := c.Do(context.Background(), &Message{Text: "hello"})
	require.NoError(t, err)
	assert.True(t, resp.IsOK())
	assert.Equal(t, "hello", resp.Text)
	require.Len(t, ft.requests, 1)
	assert.Equal(t, `Message: Text="hello"`, ft.requests[0])
}

func TestClientDoFailedStatus(t *testing.T) {
	ft := &fakeTransport{
		replies: [][]string{{"no can do", "BatchCommand finished: Failed!"}},
	}
	c := NewClient(ft)

	resp, err := c.Do(context.Background(), &Undo{})
	require.NoError(t, err)
	assert.False(t, resp.IsOK())
	assert.Equal(t, "no can do", resp.Text)
}

func TestClientDoValidationSkipsTransport(t *testing.T) {
	ft := &fakeTransport{}
	c := NewClient(ft)

	_, err := c.Do(context.Background(), &Noise{Type: "Purple"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, ft.requests, "invalid command must not reach the pipe")
}

func TestClientDoRaw(t *testing.T) {
	ft := &fakeTransport{}
	c := NewClient(ft)

	resp, err := c.DoRaw(context.Background(), `GetInfo: Type="Tracks"`)
	require.NoError(t, err)
	assert.True(t, resp.IsOK())
	assert.Equal(t, []string{`GetInfo: Type="Tracks"`}, ft.requests)
}

func TestClientDoAll(t *testing.T) {
	ft := &fakeTransport{}
	c := NewClient(ft, WithCommandDelay(0))

	resps, err := c.DoAll(context.Background(),
		&New{},
		&Tone{Frequency: 440, Amplitude: 0.8, Waveform: WaveformSine, Interpolation: InterpolationLinear},
		&Play{},
	)
	require.NoError(t, err)
	assert.Len(t, resps, 3)
	assert.Equal(t, []string{
		"New:",
		`Tone: Frequency="440" Amplitude="0.8" Waveform="Sine" Interpolation="Linear"`,
		"Play:",
	}, ft.requests)
}

func TestClientDoAllStopsOnTransportError(t *testing.T) {
	ft := &fakeTransport{}
	c := NewClient(ft, WithCommandDelay(0))

	// First command goes through, then the channel breaks.
	_, err := c.DoAll(context.Background(), &New{})
	require.NoError(t, err)

	ft.err = errors.New("pipe gone")
	resps, err := c.DoAll(context.Background(), &Play{}, &Stop{})
	require.Error(t, err)
	assert.Empty(t, resps)
}

func TestClientDoAllStopsOnValidationError(t *testing.T) {
	ft := &fakeTransport{}
	c := NewClient(ft, WithCommandDelay(0))

	resps, err := c.DoAll(context.Background(),
		&New{},
		&Noise{Type: "Purple"},
		&Play{},
	)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, resps, 1, "replies before the bad command are kept")
	assert.Equal(t, []string{"New:"}, ft.requests)
}

func TestClientDoAllHonorsContext(t *testing.T) {
	ft := &fakeTransport{}
	c := NewClient(ft, WithCommandDelay(time.Minute))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.DoAll(ctx, &New{}, &Play{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClientClose(t *testing.T) {
	ft := &fakeTransport{}
	c := NewClient(ft)

	require.NoError(t, c.Close())
	assert.True(t, ft.closed)

	_, err := c.Do(context.Background(), &Play{})
	assert.ErrorIs(t, err, ErrNotConnected)

	assert.NoError(t, c.Close(), "closing twice is a no-op")
}
