package audacity

// Effect menu: the built-in effects.

// DistortionType selects the waveshaping function of the Distortion effect.
type DistortionType string

const (
	DistortionHardClipping    DistortionType = "Hard Clipping"
	DistortionSoftClipping    DistortionType = "Soft Clipping"
	DistortionSoftOverdrive   DistortionType = "Soft Overdrive"
	DistortionMediumOverdrive DistortionType = "Medium Overdrive"
	DistortionHardOverdrive   DistortionType = "Hard Overdrive"
	DistortionCubicCurve      DistortionType = "Cubic Curve (odd harmonics)"
	DistortionEvenHarmonics   DistortionType = "Even Harmonics"
	DistortionExpandCompress  DistortionType = "Expand and Compress"
	DistortionLeveller        DistortionType = "Leveller"
	DistortionRectifier       DistortionType = "Rectifier Distortion"
	DistortionHardLimiter     DistortionType = "Hard Limiter 1413"
)

func (DistortionType) EnumValues() []string {
	return []string{
		"Hard Clipping", "Soft Clipping", "Soft Overdrive", "Medium Overdrive",
		"Hard Overdrive", "Cubic Curve (odd harmonics)", "Even Harmonics",
		"Expand and Compress", "Leveller", "Rectifier Distortion",
		"Hard Limiter 1413",
	}
}

// EqInterpolation selects the curve interpolation of the filter effects.
type EqInterpolation string

const (
	EqInterpolationBSpline EqInterpolation = "B-spline"
	EqInterpolationCosine  EqInterpolation = "Cosine"
	EqInterpolationCubic   EqInterpolation = "Cubic"
)

func (EqInterpolation) EnumValues() []string {
	return []string{"B-spline", "Cosine", "Cubic"}
}

// SilenceAction selects what Truncate Silence does with detected silences.
type SilenceAction string

const (
	SilenceActionTruncate SilenceAction = "Truncate Detected Silence"
	SilenceActionCompress SilenceAction = "Compress Excess Silence"
)

func (SilenceAction) EnumValues() []string {
	return []string{"Truncate Detected Silence", "Compress Excess Silence"}
}

// ManageEffects opens the Plugin Manager for effects.
type ManageEffects struct{ scriptable }

// RepeatLastEffect repeats the last used effect with its last settings.
type RepeatLastEffect struct{ scriptable }

// LADSPA shows the list of LADSPA effects.
type LADSPA struct{ scriptable }

// Amplify changes the volume of the selected audio.
type Amplify struct {
	scriptable
	Ratio         float64
	AllowClipping bool
}

// AutoDuck lowers the volume of the selection whenever a control track
// reaches a threshold.
type AutoDuck struct {
	scriptable
	DuckAmountDb     float64
	InnerFadeDownLen float64
	InnerFadeUpLen   float64
	OuterFadeDownLen float64
	OuterFadeUpLen   float64
	ThresholdDb      float64
	MaximumPause     float64
}

// BassAndTreble adjusts the low and high frequencies independently.
type BassAndTreble struct {
	scriptable
	Bass        float64
	Treble      float64
	Gain        float64
	LinkSliders bool `audacity:"Link Sliders"`
}

// ChangePitch changes the pitch of the selection without changing its
// tempo.
type ChangePitch struct {
	scriptable
	Percentage float64
	SBSMS      bool
}

// ChangeSpeed changes the speed of the selection, also changing its pitch.
type ChangeSpeed struct {
	scriptable
	Percentage float64
}

// ChangeTempo changes the tempo of the selection without changing its
// pitch.
type ChangeTempo struct {
	scriptable
	Percentage float64
	SBSMS      bool
}

// ClickRemoval removes clicks, suited to vinyl recordings.
type ClickRemoval struct {
	scriptable
	Threshold int
	Width     int
}

// Compressor compresses the dynamic range of the selection.
type Compressor struct {
	scriptable
	Threshold   float64
	NoiseFloor  float64
	Ratio       float64
	AttackTime  float64
	ReleaseTime float64
	Normalize   bool
	UsePeak     bool
}

// Distortion applies a waveshaping distortion.
type Distortion struct {
	scriptable
	Type        DistortionType
	DCBlock     bool    `audacity:"DC Block"`
	ThresholdDB float64 `audacity:"Threshold dB"`
	NoiseFloor  float64 `audacity:"Noise Floor"`
	Parameter1  float64 `audacity:"Parameter 1"`
	Parameter2  float64 `audacity:"Parameter 2"`
	Repeats     int
}

// Echo repeats the selection with a fixed delay, softer each time.
type Echo struct {
	scriptable
	Delay float64
	Decay float64
}

// FadeIn applies a linear fade-in to the selection.
type FadeIn struct{ scriptable }

// FadeOut applies a linear fade-out to the selection.
type FadeOut struct{ scriptable }

// FilterCurve adjusts the volume of particular frequencies along a drawn
// curve.
type FilterCurve struct {
	scriptable
	FilterLength        int
	InterpolateLin      bool
	InterpolationMethod EqInterpolation
	F0                  float64 `audacity:"f0"`
	V0                  float64 `audacity:"v0"`
}

// GraphicEq adjusts the volume of particular frequencies with band
// sliders.
type GraphicEq struct {
	scriptable
	FilterLength        int
	InterpolateLin      bool
	InterpolationMethod EqInterpolation
	F0                  float64 `audacity:"f0"`
	V0                  float64 `audacity:"v0"`
}

// Invert flips the audio samples upside-down.
type Invert struct{ scriptable }

// LoudnessNormalization changes the perceived loudness of the audio.
type LoudnessNormalization struct {
	scriptable
	StereoIndependent bool
	LUFSLevel         float64
	RMSLevel          float64
	DualMono          bool
	NormalizeTo       int
}

// NoiseReduction reduces constant background noise. Not configurable from
// scripting.
type NoiseReduction struct{ scriptable }

// Normalize sets the peak amplitude and optionally removes DC offset.
type Normalize struct {
	scriptable
	PeakLevel         float64
	ApplyGain         bool
	RemoveDcOffset    bool
	StereoIndependent bool
}

// Paulstretch applies an extreme time stretch.
type Paulstretch struct {
	scriptable
	StretchFactor  float64 `audacity:"Stretch Factor"`
	TimeResolution float64 `audacity:"Time Resolution"`
}

// Phaser combines phase-shifted signals with the original, swept by an
// LFO.
type Phaser struct {
	scriptable
	Stages   int
	DryWet   int
	Freq     float64
	Phase    float64
	Depth    int
	Feedback int
	Gain     float64
}

// Repair fixes a short glitch of at most 128 samples.
type Repair struct{ scriptable }

// Repeat repeats the selection a number of times.
type Repeat struct {
	scriptable
	Count int
}

// Reverb is a configurable stereo reverberation effect.
type Reverb struct {
	scriptable
	RoomSize     float64
	Delay        float64
	Reverberance float64
	HfDamping    float64
	ToneLow      float64
	ToneHigh     float64
	WetGain      float64
	DryGain      float64
	StereoWidth  float64
	WetOnly      bool
}

// Reverse reverses the selected audio.
type Reverse struct{ scriptable }

// SlidingStretch changes tempo and/or pitch continuously between initial
// and final values.
type SlidingStretch struct {
	scriptable
	RatePercentChangeStart  float64
	RatePercentChangeEnd    float64
	PitchHalfStepsStart     float64
	PitchHalfStepsEnd       float64
	PitchPercentChangeStart float64
	PitchPercentChangeEnd   float64
}

// TruncateSilence finds audible silences and truncates or compresses them.
type TruncateSilence struct {
	scriptable
	Threshold   float64
	Action      SilenceAction
	Minimum     float64
	Truncate    float64
	Compress    float64
	Independent bool
}

// Wahwah applies rapid tone quality variations swept by an LFO.
type Wahwah struct {
	scriptable
	Freq      float64
	Phase     float64
	Depth     int
	Resonance float64
	Offset    int
	Gain      float64
}

func init() {
	register(&ManageEffects{}, "Open the Plugin Manager for effects.")
	register(&RepeatLastEffect{}, "Repeat the last effect with its last settings.")
	register(&LADSPA{}, "Show the LADSPA effects list.")
	register(&Amplify{Ratio: 0.9}, "Change the volume of the selection.")
	register(&AutoDuck{
		DuckAmountDb:     -12,
		OuterFadeDownLen: 0.5,
		OuterFadeUpLen:   0.5,
		ThresholdDb:      -30,
		MaximumPause:     1,
	}, "Duck the selection against a control track.")
	register(&BassAndTreble{}, "Adjust bass and treble.")
	register(&ChangePitch{}, "Change pitch without changing tempo.")
	register(&ChangeSpeed{}, "Change speed, also changing pitch.")
	register(&ChangeTempo{}, "Change tempo without changing pitch.")
	register(&ClickRemoval{Threshold: 200, Width: 20}, "Remove clicks from the selection.")
	register(&Compressor{
		Threshold:   -12,
		NoiseFloor:  -40,
		Ratio:       2,
		AttackTime:  0.2,
		ReleaseTime: 1,
		Normalize:   true,
	}, "Compress the dynamic range.")
	register(&Distortion{
		Type:        DistortionHardClipping,
		ThresholdDB: -6,
		NoiseFloor:  -70,
		Parameter1:  50,
		Parameter2:  50,
		Repeats:     1,
	}, "Apply waveshaping distortion.")
	register(&Echo{Delay: 1, Decay: 0.5}, "Repeat the selection, softer each time.")
	register(&FadeIn{}, "Apply a linear fade-in.")
	register(&FadeOut{}, "Apply a linear fade-out.")
	register(&FilterCurve{
		FilterLength:        8191,
		InterpolationMethod: EqInterpolationBSpline,
	}, "Adjust frequencies along a drawn curve.")
	register(&GraphicEq{
		FilterLength:        8191,
		InterpolationMethod: EqInterpolationBSpline,
	}, "Adjust frequencies with band sliders.")
	register(&Invert{}, "Flip the audio samples upside-down.")
	register(&LoudnessNormalization{
		LUFSLevel: -23,
		RMSLevel:  -20,
		DualMono:  true,
	}, "Normalize perceived loudness.")
	register(&NoiseReduction{}, "Reduce constant background noise.")
	register(&Normalize{
		PeakLevel:      -1,
		ApplyGain:      true,
		RemoveDcOffset: true,
	}, "Set peak amplitude and remove DC offset.")
	register(&Paulstretch{StretchFactor: 10, TimeResolution: 0.25}, "Apply an extreme time stretch.")
	register(&Phaser{
		Stages: 2,
		DryWet: 128,
		Freq:   0.4,
		Depth:  100,
		Gain:   -6,
	}, "Apply a phaser swept by an LFO.")
	register(&Repair{}, "Fix a short glitch.")
	register(&Repeat{Count: 1}, "Repeat the selection.")
	register(&Reverb{
		RoomSize:     75,
		Delay:        10,
		Reverberance: 50,
		HfDamping:    50,
		ToneLow:      100,
		ToneHigh:     100,
		WetGain:      -1,
		DryGain:      -1,
		StereoWidth:  100,
	}, "Apply stereo reverberation.")
	register(&Reverse{}, "Reverse the selected audio.")
	register(&SlidingStretch{}, "Change tempo and pitch continuously.")
	register(&TruncateSilence{
		Threshold: -20,
		Action:    SilenceActionTruncate,
		Minimum:   0.5,
		Truncate:  0.5,
		Compress:  50,
	}, "Truncate or compress silences.")
	register(&Wahwah{
		Freq:      1.5,
		Depth:     70,
		Resonance: 2.5,
		Offset:    30,
		Gain:      -6,
	}, "Apply a wahwah swept by an LFO.")
}
