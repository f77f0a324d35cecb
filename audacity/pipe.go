package audacity

import (
	"bufio"
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"time"
)

// Transport carries one formatted request line to Audacity and returns the
// raw reply lines, including the final status line. Implementations must be
// safe for use by a single client; the client serializes calls.
type Transport interface {
	Roundtrip(ctx context.Context, line string) ([]string, error)
	Close() error
}

// PipeTransport is the named-pipe transport used by mod-script-pipe: one
// pipe carries requests to Audacity, the other carries replies back.
type PipeTransport struct {
	mu   sync.Mutex
	to   *os.File
	from *os.File
	r    *bufio.Reader
}

// OpenPipe opens the default script pipes for the current user. Returns an
// error wrapping ErrPipeNotFound when the pipes do not exist.
func OpenPipe() (*PipeTransport, error) {
	return OpenPipePaths(ToPipePath(), FromPipePath())
}

// OpenPipePaths opens the script pipes at explicit paths.
func OpenPipePaths(toPath, fromPath string) (*PipeTransport, error) {
	for _, path := range []string{toPath, fromPath} {
		if _, err := os.Stat(path); err != nil {
			return nil, NewConnectionError(path, ErrPipeNotFound)
		}
	}

	to, err := os.OpenFile(toPath, os.O_WRONLY, 0)
	if err != nil {
		return nil, NewConnectionError("opening "+toPath, err)
	}
	from, err := os.OpenFile(fromPath, os.O_RDONLY, 0)
	if err != nil {
		to.Close()
		return nil, NewConnectionError("opening "+fromPath, err)
	}

	return &PipeTransport{to: to, from: from, r: bufio.NewReader(from)}, nil
}

// Roundtrip writes one request line and reads the reply that follows.
func (t *PipeTransport) Roundtrip(ctx context.Context, line string) ([]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.to == nil {
		return nil, ErrNotConnected
	}

	deadline, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		deadline = time.Now().Add(DefaultTimeout)
	}
	t.to.SetWriteDeadline(deadline)
	t.from.SetReadDeadline(deadline)

	if _, err := t.to.WriteString(line + requestEOL); err != nil {
		return nil, mapPipeError("write", err)
	}

	return t.readReply()
}

// readReply collects reply lines up to and including the status line. Blank
// lines before any content are leftovers from the previous reply and are
// skipped.
func (t *PipeTransport) readReply() ([]string, error) {
	var lines []string
	for {
		raw, err := t.r.ReadString('\n')
		if err != nil {
			return nil, mapPipeError("read", err)
		}
		line := strings.TrimRight(raw, "\r\n")
		line = strings.TrimRight(line, "\x00")

		if line == "" && len(lines) == 0 {
			continue
		}
		lines = append(lines, line)
		if strings.HasPrefix(line, StatusPrefix) {
			return lines, nil
		}
	}
}

// Close closes both pipes.
func (t *PipeTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.to == nil {
		return nil
	}
	errTo := t.to.Close()
	errFrom := t.from.Close()
	t.to, t.from, t.r = nil, nil, nil
	if errTo != nil {
		return errTo
	}
	return errFrom
}

// mapPipeError converts deadline errors to ErrTimeout and wraps the rest.
func mapPipeError(op string, err error) error {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return ErrTimeout
	}
	return NewConnectionError(op+" on script pipe", err)
}
