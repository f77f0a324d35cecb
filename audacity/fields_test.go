package audacity

import (
	"reflect"
	"testing"
)

func TestKebabCase(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"Play", "play"},
		{"SelectAll", "select-all"},
		{"ExportMIDI", "export-midi"},
		{"ImportMIDI", "import-midi"},
		{"SWPlaythrough", "sw-playthrough"},
		{"LADSPA", "ladspa"},
		{"DtmfTones", "dtmf-tones"},
		{"Record1stChoice", "record1st-choice"},
		{"FitV", "fit-v"},
		{"LUFSLevel", "lufs-level"},
		{"GainL", "gain-l"},
		{"DCBlock", "dc-block"},
		{"F0", "f0"},
		{"ZoomIn", "zoom-in"},
		{"NyquistPlugInInstaller", "nyquist-plug-in-installer"},
		{"ShowSpectralSelectionTB", "show-spectral-selection-tb"},
		{"Macro_FadeEnds", "macro-fade-ends"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := kebabCase(tt.in); got != tt.out {
				t.Errorf("kebabCase(%q) = %q, want %q", tt.in, got, tt.out)
			}
		})
	}
}

func TestFieldsOf(t *testing.T) {
	cmd := &Tone{}
	fields := FieldsOf(cmd)

	want := []struct {
		name string
		flag string
		kind Kind
	}{
		{"Frequency", "frequency", KindFloat},
		{"Amplitude", "amplitude", KindFloat},
		{"Waveform", "waveform", KindEnum},
		{"Interpolation", "interpolation", KindEnum},
	}
	if len(fields) != len(want) {
		t.Fatalf("got %d fields, want %d", len(fields), len(want))
	}
	for i, w := range want {
		f := fields[i]
		if f.Name != w.name || f.Flag != w.flag || f.Kind != w.kind {
			t.Errorf("field %d = {%s %s %d}, want {%s %s %d}",
				i, f.Name, f.Flag, f.Kind, w.name, w.flag, w.kind)
		}
		if f.Optional {
			t.Errorf("field %s unexpectedly optional", f.Name)
		}
	}
}

func TestFieldsOfWireTags(t *testing.T) {
	fields := FieldsOf(&RhythmTrack{})

	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	want := []string{
		"tempo", "timesig", "swing", "bars", "click-track-dur",
		"offset", "click-type", "high", "low",
	}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("wire names = %v, want %v", names, want)
	}
}

func TestFieldSet(t *testing.T) {
	cmd := &Chirp{}
	fields := FieldsOf(cmd)

	if err := fields[0].Set("880"); err != nil {
		t.Fatalf("Set StartFreq: %v", err)
	}
	if err := fields[4].Set("Square"); err != nil {
		t.Fatalf("Set Waveform: %v", err)
	}
	if cmd.StartFreq != 880 {
		t.Errorf("StartFreq = %v, want 880", cmd.StartFreq)
	}
	if cmd.Waveform != WaveformSquare {
		t.Errorf("Waveform = %q, want Square", cmd.Waveform)
	}
}

func TestFieldSetOptional(t *testing.T) {
	cmd := &SetTrack{}
	for _, f := range FieldsOf(cmd) {
		if f.Flag != "gain" {
			continue
		}
		if f.IsSet() {
			t.Fatal("optional field set before assignment")
		}
		if err := f.Set("0.75"); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	if cmd.Gain == nil || *cmd.Gain != 0.75 {
		t.Errorf("Gain = %v, want 0.75", cmd.Gain)
	}
}

func TestFieldSetRejectsBadInput(t *testing.T) {
	cmd := &Repeat{}
	fields := FieldsOf(cmd)
	if err := fields[0].Set("lots"); err == nil {
		t.Error("expected error setting int field from non-numeric input")
	}
}
