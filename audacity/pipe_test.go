//go:build !windows

package audacity

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestPipePaths(t *testing.T) {
	uid := fmt.Sprint(os.Getuid())
	if got := ToPipePath(); got != "/tmp/audacity_script_pipe.to."+uid {
		t.Errorf("ToPipePath = %q", got)
	}
	if got := FromPipePath(); got != "/tmp/audacity_script_pipe.from."+uid {
		t.Errorf("FromPipePath = %q", got)
	}
}

func TestOpenPipePathsMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := OpenPipePaths(dir+"/nope.to", dir+"/nope.from")
	if !errors.Is(err, ErrPipeNotFound) {
		t.Errorf("expected ErrPipeNotFound, got %v", err)
	}

	var cerr *ConnectionError
	if !errors.As(err, &cerr) {
		t.Errorf("expected *ConnectionError, got %T", err)
	}
	if !strings.Contains(err.Error(), "nope.to") {
		t.Errorf("error does not name the missing pipe: %v", err)
	}
}

func TestMapPipeError(t *testing.T) {
	if err := mapPipeError("read", os.ErrDeadlineExceeded); !errors.Is(err, ErrTimeout) {
		t.Errorf("deadline error not mapped to ErrTimeout: %v", err)
	}

	cause := errors.New("broken")
	err := mapPipeError("write", cause)
	if !errors.Is(err, cause) {
		t.Errorf("cause not wrapped: %v", err)
	}
}
