package audacity

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  Response
	}{
		{
			"ok without payload",
			[]string{"BatchCommand finished: OK"},
			Response{Status: "OK"},
		},
		{
			"ok with payload",
			[]string{"941 audio files", "BatchCommand finished: OK"},
			Response{Status: "OK", Text: "941 audio files"},
		},
		{
			"failed",
			[]string{"Your batch command of Amplify was not recognized.", "BatchCommand finished: Failed!"},
			Response{Status: "Failed!", Text: "Your batch command of Amplify was not recognized."},
		},
		{
			"trailing blank lines tolerated",
			[]string{"data", "BatchCommand finished: OK", "", ""},
			Response{Status: "OK", Text: "data"},
		},
		{
			"multi-line payload",
			[]string{"line one", "line two", "BatchCommand finished: OK"},
			Response{Status: "OK", Text: "line one\nline two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResponse(tt.lines)
			if err != nil {
				t.Fatalf("ParseResponse: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseResponseMalformed(t *testing.T) {
	for _, lines := range [][]string{
		nil,
		{""},
		{"no status line here"},
	} {
		_, err := ParseResponse(lines)
		var perr *ProtocolError
		if !errors.As(err, &perr) {
			t.Errorf("ParseResponse(%q): expected *ProtocolError, got %v", lines, err)
		}
	}
}

func TestResponseIsOK(t *testing.T) {
	if !(Response{Status: StatusOK}).IsOK() {
		t.Error("OK status not recognized")
	}
	if (Response{Status: StatusFailed}).IsOK() {
		t.Error("Failed status reported as OK")
	}
}

func TestResponseLines(t *testing.T) {
	r := Response{Status: StatusOK, Text: "a\nb"}
	if got := r.Lines(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Lines = %v", got)
	}
	if got := (Response{Status: StatusOK}).Lines(); got != nil {
		t.Errorf("empty payload Lines = %v, want nil", got)
	}
}
