package audacity

// Generate menu: tone, noise and rhythm generators.

// Waveform selects the shape of a generated tone.
type Waveform string

// Waveform values. Triangle appears in the UI although the scripting
// reference omits it.
const (
	WaveformSine          Waveform = "Sine"
	WaveformSquare        Waveform = "Square"
	WaveformSawtooth      Waveform = "Sawtooth"
	WaveformSquareNoAlias Waveform = "Square, no alias"
	WaveformTriangle      Waveform = "Triangle"
)

func (Waveform) EnumValues() []string {
	return []string{"Sine", "Square", "Sawtooth", "Square, no alias", "Triangle"}
}

// Interpolation selects how a generator sweeps between two frequencies.
type Interpolation string

const (
	InterpolationLinear      Interpolation = "Linear"
	InterpolationLogarithmic Interpolation = "Logarithmic"
)

func (Interpolation) EnumValues() []string {
	return []string{"Linear", "Logarithmic"}
}

// NoiseType selects the noise spectrum.
type NoiseType string

const (
	NoiseWhite    NoiseType = "White"
	NoisePink     NoiseType = "Pink"
	NoiseBrownian NoiseType = "Brownian"
)

func (NoiseType) EnumValues() []string {
	return []string{"White", "Pink", "Brownian"}
}

// PluckFade selects how a plucked tone fades out.
type PluckFade string

const (
	PluckFadeAbrupt  PluckFade = "Abrupt"
	PluckFadeGradual PluckFade = "Gradual"
)

func (PluckFade) EnumValues() []string {
	return []string{"Abrupt", "Gradual"}
}

// RhythmTrackBeat selects the click sound of a rhythm track.
type RhythmTrackBeat string

const (
	RhythmBeatMetronome     RhythmTrackBeat = "Metronome"
	RhythmBeatPingShort     RhythmTrackBeat = "Ping (short)"
	RhythmBeatPingLong      RhythmTrackBeat = "Ping (long)"
	RhythmBeatCowbell       RhythmTrackBeat = "Cowbell"
	RhythmBeatResonantNoise RhythmTrackBeat = "ResonantNoise"
	RhythmBeatNoiseClick    RhythmTrackBeat = "NoiseClick"
	RhythmBeatDripShort     RhythmTrackBeat = "Drip (short)"
	RhythmBeatDripLong      RhythmTrackBeat = "Drip (long)"
)

func (RhythmTrackBeat) EnumValues() []string {
	return []string{
		"Metronome", "Ping (short)", "Ping (long)", "Cowbell",
		"ResonantNoise", "NoiseClick", "Drip (short)", "Drip (long)",
	}
}

// ManageGenerators opens the Plugin Manager for generators.
type ManageGenerators struct{ scriptable }

// BuiltIn shows the list of built-in effects. The wire name carries the
// server's own misspelling.
type BuiltIn struct{ scriptable }

// Nyquist shows the list of Nyquist effects.
type Nyquist struct{ scriptable }

// Chirp generates a tone whose frequency and amplitude sweep between a
// start and an end value.
type Chirp struct {
	scriptable
	StartFreq     float64
	EndFreq       float64
	StartAmp      float64
	EndAmp        float64
	Waveform      Waveform
	Interpolation Interpolation
}

// DtmfTones generates dual-tone multi-frequency tones like a telephone
// keypad.
type DtmfTones struct {
	scriptable
	Sequence  string
	DutyCycle float64 `audacity:"Duty Cycle"`
	Amplitude float64
}

// Noise generates white, pink or Brownian noise.
type Noise struct {
	scriptable
	Type      NoiseType
	Amplitude float64
}

// Tone generates a constant-frequency tone.
type Tone struct {
	scriptable
	Frequency     float64
	Amplitude     float64
	Waveform      Waveform
	Interpolation Interpolation
}

// Pluck generates a synthesized pluck with selectable MIDI pitch.
type Pluck struct {
	scriptable
	Pitch int       `audacity:"pitch"`
	Fade  PluckFade `audacity:"fade"`
	Dur   float64   `audacity:"dur"`
}

// RhythmTrack generates a click track at a given tempo and time signature.
type RhythmTrack struct {
	scriptable
	Tempo         float64         `audacity:"tempo"`
	TimeSig       int             `audacity:"timesig"`
	Swing         float64         `audacity:"swing"`
	Bars          int             `audacity:"bars"`
	ClickTrackDur float64         `audacity:"click-track-dur"`
	Offset        float64         `audacity:"offset"`
	ClickType     RhythmTrackBeat `audacity:"click-type"`
	High          int             `audacity:"high"`
	Low           int             `audacity:"low"`
}

// RissetDrum produces a realistic drum sound.
type RissetDrum struct {
	scriptable
	Freq  float64 `audacity:"freq"`
	Decay float64 `audacity:"decay"`
	CF    float64 `audacity:"cf"`
	BW    float64 `audacity:"bw"`
	Noise float64 `audacity:"noise"`
	Gain  float64 `audacity:"gain"`
}

func init() {
	register(&ManageGenerators{}, "Open the Plugin Manager for generators.")
	registerAs(&BuiltIn{}, "BuiltIin", "Show the built-in effects list.")
	register(&Nyquist{}, "Show the Nyquist effects list.")
	register(&Chirp{
		StartFreq:     440,
		EndFreq:       1320,
		StartAmp:      0.8,
		EndAmp:        0.1,
		Waveform:      WaveformSine,
		Interpolation: InterpolationLinear,
	}, "Generate a frequency and amplitude sweep.")
	register(&DtmfTones{
		Sequence:  "audacity",
		DutyCycle: 55,
		Amplitude: 0.8,
	}, "Generate DTMF keypad tones.")
	register(&Noise{
		Type:      NoiseWhite,
		Amplitude: 0.8,
	}, "Generate white, pink or Brownian noise.")
	register(&Tone{
		Frequency:     440,
		Amplitude:     0.8,
		Waveform:      WaveformSine,
		Interpolation: InterpolationLinear,
	}, "Generate a constant tone.")
	register(&Pluck{Fade: PluckFadeAbrupt}, "Generate a synthesized pluck.")
	register(&RhythmTrack{ClickType: RhythmBeatMetronome}, "Generate a click track.")
	register(&RissetDrum{}, "Generate a drum sound.")
}
