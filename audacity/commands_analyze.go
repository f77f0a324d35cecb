package audacity

// Analyze menu: analyzers that report on the selection or write labels.

// SoundMeasurement selects how Label Sounds measures signal level.
type SoundMeasurement string

const (
	MeasurePeak SoundMeasurement = "peak"
	MeasureAvg  SoundMeasurement = "avg"
	MeasureRMS  SoundMeasurement = "rms"
)

func (SoundMeasurement) EnumValues() []string {
	return []string{"peak", "avg", "rms"}
}

// LabelPlacement selects where Label Sounds places labels relative to a
// sound.
type LabelPlacement string

const (
	LabelBefore  LabelPlacement = "before"
	LabelAfter   LabelPlacement = "after"
	LabelAround  LabelPlacement = "around"
	LabelBetween LabelPlacement = "between"
)

func (LabelPlacement) EnumValues() []string {
	return []string{"before", "after", "around", "between"}
}

// ManageAnalyzers opens the Plugin Manager for analyzers.
type ManageAnalyzers struct{ scriptable }

// ContrastAnalyser measures the RMS contrast between foreground speech
// and background audio.
type ContrastAnalyser struct{ scriptable }

// PlotSpectrum graphs frequencies against amplitudes for the selection.
type PlotSpectrum struct{ scriptable }

// FindClipping labels runs of clipped samples.
type FindClipping struct {
	scriptable
	DutyCycleStart int `audacity:"Duty Cycle Start"`
	DutyCycleEnd   int `audacity:"Duty Cycle End"`
}

// BeatFinder places labels at beats much louder than the surrounding
// audio.
type BeatFinder struct {
	scriptable
	Thresval int `audacity:"thresval"`
}

// LabelSounds labels areas of sound separated by silence.
type LabelSounds struct {
	scriptable
	Threshold   float64          `audacity:"threshold"`
	Measurement SoundMeasurement `audacity:"measurement"`
	SilDur      float64          `audacity:"sil-dur"`
	SndDur      float64          `audacity:"snd-dur"`
	Type        LabelPlacement   `audacity:"type"`
	PreOffset   float64          `audacity:"pre-offset"`
	PostOffset  float64          `audacity:"post-offset"`
	Text        string           `audacity:"text"`
}

func init() {
	register(&ManageAnalyzers{}, "Open the Plugin Manager for analyzers.")
	register(&ContrastAnalyser{}, "Measure foreground/background contrast.")
	register(&PlotSpectrum{}, "Plot frequencies against amplitudes.")
	register(&FindClipping{DutyCycleStart: 3, DutyCycleEnd: 3}, "Label runs of clipped samples.")
	register(&BeatFinder{}, "Label beats louder than the surroundings.")
	register(&LabelSounds{
		Measurement: MeasurePeak,
		Type:        LabelBefore,
	}, "Label sounds separated by silence.")
}
