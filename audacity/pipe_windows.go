//go:build windows

package audacity

// requestEOL terminates request lines written to the command pipe. The
// Windows scripting module additionally expects a trailing NUL.
const requestEOL = "\r\n\x00"

// ToPipePath returns the path of the pipe Audacity reads commands from.
func ToPipePath() string {
	return `\\.\pipe\ToSrvPipe`
}

// FromPipePath returns the path of the pipe Audacity writes replies to.
func FromPipePath() string {
	return `\\.\pipe\FromSrvPipe`
}
