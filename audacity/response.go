package audacity

import "strings"

// Response is a parsed reply from Audacity: the payload text (possibly
// empty) and the status reported on the final line.
type Response struct {
	Status string // StatusOK or StatusFailed
	Text   string // payload lines joined with newlines
}

// IsOK returns true if Audacity reported success.
func (r Response) IsOK() bool {
	return r.Status == StatusOK
}

// Lines returns the payload split into lines. Returns nil for an empty
// payload.
func (r Response) Lines() []string {
	if r.Text == "" {
		return nil
	}
	return strings.Split(r.Text, "\n")
}

// ParseResponse parses raw reply lines into a Response. The reply consists
// of zero or more payload lines followed by a status line beginning with
// StatusPrefix; trailing blank lines are tolerated. A reply without a status
// line returns a *ProtocolError.
func ParseResponse(lines []string) (Response, error) {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return Response{}, &ProtocolError{Reply: ""}
	}

	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, StatusPrefix) {
		return Response{}, &ProtocolError{Reply: last}
	}

	return Response{
		Status: strings.TrimSpace(strings.TrimPrefix(last, StatusPrefix)),
		Text:   strings.Join(lines[:len(lines)-1], "\n"),
	}, nil
}
