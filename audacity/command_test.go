package audacity

import (
	"errors"
	"testing"
)

// TestFormat verifies request serialization for a cross-section of the
// catalog.
func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		cmd      Command
		expected string
	}{
		{"no parameters", &Play{}, "Play:"},
		{"string and int", &NyquistPrompt{Command: "(print 1)", Version: 3},
			`NyquistPrompt: Command="(print 1)" Version="3"`},
		{"bool as one", &SetPreference{Name: "GUI/Theme", Value: "dark", Reload: true},
			`SetPreference: Name="GUI/Theme" Value="dark" Reload="1"`},
		{"bool as zero", &Export2{Filename: "out.wav", NumChannels: 2},
			`Export2: Filename="out.wav" NumChannels="2"`},
		{"floats trim trailing zeros", &Chirp{
			StartFreq:     440,
			EndFreq:       1320,
			StartAmp:      0.8,
			EndAmp:        0.1,
			Waveform:      WaveformSine,
			Interpolation: InterpolationLinear,
		}, `Chirp: StartFreq="440" EndFreq="1320" StartAmp="0.8" EndAmp="0.1" Waveform="Sine" Interpolation="Linear"`},
		{"optional set", &SetLabel{Label: 2, Text: String("chorus")},
			`SetLabel: Label="2" Text="chorus"`},
		{"optional nil omitted", &SetLabel{Label: 1},
			`SetLabel: Label="1"`},
		{"optional bool", &SetTrackAudio{Mute: Bool(true), Pan: Float(-0.5)},
			`SetTrackAudio: Mute="1" Pan="-0.5"`},
		{"all optionals nil", &SelectTime{}, "SelectTime:"},
		{"renamed wire parameter", &Paulstretch{StretchFactor: 10, TimeResolution: 0.25},
			`Paulstretch: Stretch Factor="10" Time Resolution="0.25"`},
		{"lowercase wire parameters", &NotchFilter{Frequency: 60, Q: 1},
			`NotchFilter: frequency="60" q="1"`},
		{"hyphenated wire parameters", &Limiter{
			Type:   LimiterSoftLimit,
			GainL:  2,
			Thresh: -3,
			Makeup: No,
		}, `Limiter: type="SoftLimit" gain-L="2" gain-R="0" thresh="-3" hold="0" makeup="No"`},
		{"enum with spaces", &Distortion{
			Type:        DistortionCubicCurve,
			ThresholdDB: -6,
			NoiseFloor:  -70,
			Parameter1:  50,
			Parameter2:  50,
			Repeats:     1,
		}, `Distortion: Type="Cubic Curve (odd harmonics)" DC Block="0" Threshold dB="-6" Noise Floor="-70" Parameter 1="50" Parameter 2="50" Repeats="1"`},
		{"quotes escaped", &Message{Text: `say "hi"`},
			`Message: Text="say \"hi\""`},
		{"backslash escaped", &Import2{Filename: `C:\music\take1.wav`},
			`Import2: Filename="C:\\music\\take1.wav"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.cmd)
			if err != nil {
				t.Fatalf("Format: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestFormatScriptName verifies commands whose scripting name differs from
// the Go type name.
func TestFormatScriptName(t *testing.T) {
	tests := []struct {
		name     string
		cmd      Command
		expected string
	}{
		{"Open dispatches as OpenProject2", &Open{Filename: String("song.aup3")},
			`OpenProject2: Filename="song.aup3" AddToHistory="0"`},
		{"alignment underscore", &AlignEndToEnd{}, "Align_EndToEnd:"},
		{"macro underscore", &MacroFadeEnds{}, "Macro_FadeEnds:"},
		{"server misspelling preserved", &BuiltIn{}, "BuiltIin:"},
		{"lowercase and", &MinutesAndSeconds{}, "MinutesandSeconds:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.cmd)
			if err != nil {
				t.Fatalf("Format: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatOmitsZeroEnum(t *testing.T) {
	line, err := Format(&Chirp{StartFreq: 440, EndFreq: 880, StartAmp: 0.8, EndAmp: 0.1})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	want := `Chirp: StartFreq="440" EndFreq="880" StartAmp="0.8" EndAmp="0.1"`
	if line != want {
		t.Errorf("got %q, want %q", line, want)
	}
}

func TestFormatRejectsBadEnum(t *testing.T) {
	_, err := Format(&Noise{Type: "Purple", Amplitude: 0.8})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Command != "Noise" || verr.Param != "Type" || verr.Value != "Purple" {
		t.Errorf("unexpected error details: %+v", verr)
	}
	if len(verr.Allowed) != 3 {
		t.Errorf("expected 3 allowed values, got %v", verr.Allowed)
	}
}

func TestFormatRejectsBadOptionalEnum(t *testing.T) {
	bad := RelativeTo("Nowhere")
	_, err := Format(&SelectTime{Start: Float(0), RelativeTo: &bad})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Param != "RelativeTo" {
		t.Errorf("got param %q, want RelativeTo", verr.Param)
	}
}
