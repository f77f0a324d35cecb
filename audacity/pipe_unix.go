//go:build !windows

package audacity

import (
	"fmt"
	"os"
)

// requestEOL terminates request lines written to the command pipe.
const requestEOL = "\n"

// ToPipePath returns the path of the pipe Audacity reads commands from.
func ToPipePath() string {
	return fmt.Sprintf("/tmp/audacity_script_pipe.to.%d", os.Getuid())
}

// FromPipePath returns the path of the pipe Audacity writes replies to.
func FromPipePath() string {
	return fmt.Sprintf("/tmp/audacity_script_pipe.from.%d", os.Getuid())
}
