package audacity

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Client dispatches commands to a running Audacity instance over a
// Transport. It is safe for concurrent use; commands are serialized because
// the scripting interface answers one request at a time.
type Client struct {
	mu        sync.Mutex
	transport Transport
	delay     time.Duration
	timeout   time.Duration
	log       zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger attaches a structured logger. The client logs each request and
// reply at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithCommandDelay sets the pause inserted between consecutive commands in
// DoAll. Defaults to DefaultCommandDelay.
func WithCommandDelay(d time.Duration) Option {
	return func(c *Client) { c.delay = d }
}

// WithTimeout sets the per-command timeout applied when the caller's context
// carries no deadline. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// NewClient creates a client over an existing transport. Most callers want
// Dial instead.
func NewClient(t Transport, opts ...Option) *Client {
	c := &Client{
		transport: t,
		delay:     DefaultCommandDelay,
		timeout:   DefaultTimeout,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dial connects to the default script pipes for the current user.
func Dial(opts ...Option) (*Client, error) {
	return DialPipes(ToPipePath(), FromPipePath(), opts...)
}

// DialPipes connects to script pipes at explicit paths.
func DialPipes(toPath, fromPath string, opts ...Option) (*Client, error) {
	t, err := OpenPipePaths(toPath, fromPath)
	if err != nil {
		return nil, err
	}
	return NewClient(t, opts...), nil
}

// Do serializes a command, sends it, and returns the parsed reply. The
// returned error is non-nil only for validation or channel failures; a
// command Audacity rejected comes back as a Response with IsOK() == false.
func (c *Client) Do(ctx context.Context, cmd Command) (Response, error) {
	line, err := Format(cmd)
	if err != nil {
		return Response{}, err
	}
	return c.DoRaw(ctx, line)
}

// DoRaw sends an already-formatted request line. Useful for scripting
// commands not yet in the catalog.
func (c *Client) DoRaw(ctx context.Context, line string) (Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.roundtrip(ctx, line)
}

// DoAll sends a sequence of commands, pausing the configured delay between
// consecutive commands (but not before the first). It stops at the first
// validation or channel error, returning the replies gathered so far.
func (c *Client) DoAll(ctx context.Context, cmds ...Command) ([]Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	responses := make([]Response, 0, len(cmds))
	for i, cmd := range cmds {
		if i > 0 && c.delay > 0 {
			select {
			case <-time.After(c.delay):
			case <-ctx.Done():
				return responses, ctx.Err()
			}
		}

		line, err := Format(cmd)
		if err != nil {
			return responses, err
		}
		resp, err := c.roundtrip(ctx, line)
		if err != nil {
			return responses, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// roundtrip performs one exchange. Callers hold c.mu.
func (c *Client) roundtrip(ctx context.Context, line string) (Response, error) {
	if c.transport == nil {
		return Response{}, ErrNotConnected
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	c.log.Debug().Str("request", line).Msg("send")
	lines, err := c.transport.Roundtrip(ctx, line)
	if err != nil {
		c.log.Debug().Err(err).Msg("roundtrip failed")
		return Response{}, err
	}

	resp, err := ParseResponse(lines)
	if err != nil {
		return Response{}, err
	}
	c.log.Debug().
		Str("status", resp.Status).
		Int("payload_lines", len(resp.Lines())).
		Msg("reply")
	return resp, nil
}

// Close closes the underlying transport. The client cannot be reused.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.transport == nil {
		return nil
	}
	err := c.transport.Close()
	c.transport = nil
	return err
}
