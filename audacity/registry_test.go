package audacity

import (
	"sort"
	"testing"
)

func TestLookup(t *testing.T) {
	e, ok := Lookup("chirp")
	if !ok {
		t.Fatal("chirp not registered")
	}
	if e.Script != "Chirp" {
		t.Errorf("Script = %q, want Chirp", e.Script)
	}

	if _, ok := Lookup("no-such-command"); ok {
		t.Error("Lookup accepted an unknown name")
	}
}

func TestLookupScriptNameOverride(t *testing.T) {
	e, ok := Lookup("open")
	if !ok {
		t.Fatal("open not registered")
	}
	if e.Script != "OpenProject2" {
		t.Errorf("Script = %q, want OpenProject2", e.Script)
	}
}

// TestEntryNewDefaults verifies constructors return fresh instances carrying
// the documented defaults.
func TestEntryNewDefaults(t *testing.T) {
	e, _ := Lookup("chirp")

	c1 := e.New().(*Chirp)
	if c1.StartFreq != 440 || c1.EndFreq != 1320 {
		t.Errorf("defaults = %v/%v, want 440/1320", c1.StartFreq, c1.EndFreq)
	}
	if c1.Waveform != WaveformSine {
		t.Errorf("Waveform = %q, want Sine", c1.Waveform)
	}

	c1.StartFreq = 100
	c2 := e.New().(*Chirp)
	if c2.StartFreq != 440 {
		t.Error("New returned a shared instance")
	}
}

func TestEntryNewOptionalDefaultsNil(t *testing.T) {
	e, _ := Lookup("set-label")
	cmd := e.New().(*SetLabel)
	if cmd.Text != nil || cmd.Start != nil || cmd.End != nil || cmd.Selected != nil {
		t.Error("optional fields not nil in a fresh instance")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) < 250 {
		t.Fatalf("catalog suspiciously small: %d commands", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Error("Names not sorted")
	}
}

func TestAllMatchesNames(t *testing.T) {
	if got, want := len(All()), len(Names()); got != want {
		t.Errorf("All() has %d entries, Names() has %d", got, want)
	}
}

func TestSearch(t *testing.T) {
	hits := Search("fade")
	if len(hits) == 0 {
		t.Fatal("no hits for fade")
	}
	found := false
	for _, e := range hits {
		if e.Name == "adjustable-fade" {
			found = true
		}
	}
	if !found {
		t.Error("adjustable-fade missing from fade search")
	}

	if hits := Search("zzzz-nothing"); len(hits) != 0 {
		t.Errorf("unexpected hits: %v", hits)
	}
}

func TestScriptNameFallback(t *testing.T) {
	type unregistered struct{ scriptable }
	if got := ScriptName(&unregistered{}); got != "unregistered" {
		t.Errorf("ScriptName = %q, want unregistered", got)
	}
}
