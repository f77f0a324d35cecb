package audacity

// Nyquist plugin effects shipped with Audacity. Their parameters go over
// the wire in lower case, often hyphenated.

// FadeType selects the direction and shape family of an adjustable fade.
type FadeType string

const (
	FadeUp         FadeType = "Up"
	FadeDown       FadeType = "Down"
	FadeSCurveUp   FadeType = "SCurveUp"
	FadeSCurveDown FadeType = "SCurveDown"
)

func (FadeType) EnumValues() []string {
	return []string{"Up", "Down", "SCurveUp", "SCurveDown"}
}

// FadeUnits selects whether fade gains are given in percent or dB.
type FadeUnits string

const (
	FadeUnitsPercent FadeUnits = "Percent"
	FadeUnitsDB      FadeUnits = "dB"
)

func (FadeUnits) EnumValues() []string {
	return []string{"Percent", "dB"}
}

// FadePreset selects a predefined fade shape.
type FadePreset string

const (
	FadePresetNone           FadePreset = "None"
	FadePresetLinearIn       FadePreset = "LinearIn"
	FadePresetLinearOut      FadePreset = "LinearOut"
	FadePresetExponentialIn  FadePreset = "ExponentialIn"
	FadePresetExponentialOut FadePreset = "ExponentialOut"
	FadePresetLogarithmicIn  FadePreset = "LogarithmicIn"
	FadePresetLogarithmicOut FadePreset = "LogarithmicOut"
	FadePresetRoundedIn      FadePreset = "RoundedIn"
	FadePresetRoundedOut     FadePreset = "RoundedOut"
	FadePresetCosineIn       FadePreset = "CosineIn"
	FadePresetCosineOut      FadePreset = "CosineOut"
	FadePresetSCurveIn       FadePreset = "SCurveIn"
	FadePresetSCurveOut      FadePreset = "SCurveOut"
)

func (FadePreset) EnumValues() []string {
	return []string{
		"None", "LinearIn", "LinearOut", "ExponentialIn", "ExponentialOut",
		"LogarithmicIn", "LogarithmicOut", "RoundedIn", "RoundedOut",
		"CosineIn", "CosineOut", "SCurveIn", "SCurveOut",
	}
}

// CrossfadeType selects the gain law of a track crossfade.
type CrossfadeType string

const (
	CrossfadeConstantGain   CrossfadeType = "ConstantGain"
	CrossfadeConstantPower1 CrossfadeType = "ConstantPower1"
	CrossfadeConstantPower2 CrossfadeType = "ConstantPower2"
	CrossfadeCustomCurve    CrossfadeType = "CustomCurve"
)

func (CrossfadeType) EnumValues() []string {
	return []string{"ConstantGain", "ConstantPower1", "ConstantPower2", "CustomCurve"}
}

// CrossfadeDirection selects which track fades out and which fades in.
type CrossfadeDirection string

const (
	CrossfadeAutomatic CrossfadeDirection = "Automatic"
	CrossfadeOutIn     CrossfadeDirection = "OutIn"
	CrossfadeInOut     CrossfadeDirection = "InOut"
)

func (CrossfadeDirection) EnumValues() []string {
	return []string{"Automatic", "OutIn", "InOut"}
}

// DelayType selects the spacing pattern of the delays.
type DelayType string

const (
	DelayRegular             DelayType = "Regular"
	DelayBouncingBall        DelayType = "BouncingBall"
	DelayReverseBouncingBall DelayType = "ReverseBouncingBall"
)

func (DelayType) EnumValues() []string {
	return []string{"Regular", "BouncingBall", "ReverseBouncingBall"}
}

// DelayPitchType selects how delays are pitch shifted.
type DelayPitchType string

const (
	DelayPitchTempo   DelayPitchType = "PitchTempo"
	DelayLQPitchShift DelayPitchType = "LQPitchShift"
)

func (DelayPitchType) EnumValues() []string {
	return []string{"PitchTempo", "LQPitchShift"}
}

// YesNo is an enum parameter that the Nyquist plugins use instead of a
// bool.
type YesNo string

const (
	Yes YesNo = "Yes"
	No  YesNo = "No"
)

func (YesNo) EnumValues() []string {
	return []string{"Yes", "No"}
}

// FilterRolloff selects the attenuation slope of the pass filters.
type FilterRolloff string

const (
	RolloffDB6  FilterRolloff = "dB6"
	RolloffDB12 FilterRolloff = "dB12"
	RolloffDB24 FilterRolloff = "dB24"
	RolloffDB36 FilterRolloff = "dB36"
	RolloffDB48 FilterRolloff = "dB48"
)

func (FilterRolloff) EnumValues() []string {
	return []string{"dB6", "dB12", "dB24", "dB36", "dB48"}
}

// LimiterType selects the limiting function.
type LimiterType string

const (
	LimiterSoftLimit LimiterType = "SoftLimit"
	LimiterHardLimit LimiterType = "HardLimit"
	LimiterSoftClip  LimiterType = "SoftClip"
	LimiterHardClip  LimiterType = "HardClip"
)

func (LimiterType) EnumValues() []string {
	return []string{"SoftLimit", "HardLimit", "SoftClip", "HardClip"}
}

// TremoloWave selects the LFO waveform of the tremolo.
type TremoloWave string

const (
	TremoloSine            TremoloWave = "Sine"
	TremoloTriangle        TremoloWave = "Triangle"
	TremoloSawtooth        TremoloWave = "Sawtooth"
	TremoloInverseSawtooth TremoloWave = "InverseSawtooth"
	TremoloSquare          TremoloWave = "Square"
)

func (TremoloWave) EnumValues() []string {
	return []string{"Sine", "Triangle", "Sawtooth", "InverseSawtooth", "Square"}
}

// VocalAction selects what Vocal Reduction and Isolation does with the
// center-panned audio.
type VocalAction string

const (
	VocalRemoveToMono        VocalAction = "RemoveToMono"
	VocalRemove              VocalAction = "Remove"
	VocalIsolate             VocalAction = "Isolate"
	VocalIsolateInvert       VocalAction = "IsolateInvert"
	VocalRemoveCenterToMono  VocalAction = "RemoveCenterToMono"
	VocalRemoveCenter        VocalAction = "RemoveCenter"
	VocalIsolateCenter       VocalAction = "IsolateCenter"
	VocalIsolateCenterInvert VocalAction = "IsolateCenterInvert"
	VocalAnalyze             VocalAction = "Analyze"
)

func (VocalAction) EnumValues() []string {
	return []string{
		"RemoveToMono", "Remove", "Isolate", "IsolateInvert",
		"RemoveCenterToMono", "RemoveCenter", "IsolateCenter",
		"IsolateCenterInvert", "Analyze",
	}
}

// VocoderOutput selects which channels receive the vocoded signal.
type VocoderOutput string

const (
	VocoderBothChannels VocoderOutput = "BothChannels"
	VocoderRightOnly    VocoderOutput = "RightOnly"
)

func (VocoderOutput) EnumValues() []string {
	return []string{"BothChannels", "RightOnly"}
}

// AdjustableFade fades up or down with a configurable, possibly partial,
// shape.
type AdjustableFade struct {
	scriptable
	Type   FadeType   `audacity:"type"`
	Curve  float64    `audacity:"curve"`
	Units  FadeUnits  `audacity:"units"`
	Gain0  float64    `audacity:"gain0"`
	Gain1  float64    `audacity:"gain1"`
	Preset FadePreset `audacity:"preset"`
}

// ClipFix reconstructs clipped regions by interpolating the lost signal.
type ClipFix struct {
	scriptable
	Threshold float64 `audacity:"threshold"`
	Gain      float64 `audacity:"gain"`
}

// CrossfadeClips crossfades a selected pair of clips in one track.
type CrossfadeClips struct{ scriptable }

// CrossfadeTracks makes a smooth transition between two overlapping
// tracks.
type CrossfadeTracks struct {
	scriptable
	Type      CrossfadeType      `audacity:"type"`
	Curve     float64            `audacity:"curve"`
	Direction CrossfadeDirection `audacity:"direction"`
}

// Delay is a configurable delay with variable time and pitch-shifted
// repeats.
type Delay struct {
	scriptable
	DelayType DelayType      `audacity:"delay-type"`
	Dgain     float64        `audacity:"dgain"`
	Delay     float64        `audacity:"delay"`
	PitchType DelayPitchType `audacity:"pitch-type"`
	Shift     float64        `audacity:"shift"`
	Number    int            `audacity:"number"`
	Constrain YesNo          `audacity:"constrain"`
}

// HighPassFilter attenuates frequencies below the cutoff.
type HighPassFilter struct {
	scriptable
	Frequency float64       `audacity:"frequency"`
	Rolloff   FilterRolloff `audacity:"rolloff"`
}

// Limiter prevents peaks from exceeding a threshold.
type Limiter struct {
	scriptable
	Type   LimiterType `audacity:"type"`
	GainL  float64     `audacity:"gain-L"`
	GainR  float64     `audacity:"gain-R"`
	Thresh float64     `audacity:"thresh"`
	Hold   float64     `audacity:"hold"`
	Makeup YesNo       `audacity:"makeup"`
}

// LowPassFilter attenuates frequencies above the cutoff.
type LowPassFilter struct {
	scriptable
	Frequency float64       `audacity:"frequency"`
	Rolloff   FilterRolloff `audacity:"rolloff"`
}

// NotchFilter attenuates a narrow frequency band, useful against mains
// hum.
type NotchFilter struct {
	scriptable
	Frequency float64 `audacity:"frequency"`
	Q         float64 `audacity:"q"`
}

// SpectralEditMultiTool applies notch, high pass or low pass filtering
// according to the spectral selection.
type SpectralEditMultiTool struct{ scriptable }

// SpectralEditParametricEq cuts or boosts the band of the spectral
// selection.
type SpectralEditParametricEq struct {
	scriptable
	ControlGain float64 `audacity:"control-gain"`
}

// SpectralEditShelves applies shelving filters according to the spectral
// selection.
type SpectralEditShelves struct {
	scriptable
	ControlGain float64 `audacity:"control-gain"`
}

// StudioFadeOut applies a musical fade out.
type StudioFadeOut struct{ scriptable }

// Tremolo modulates the volume at a selected depth and rate.
type Tremolo struct {
	scriptable
	Wave  TremoloWave `audacity:"wave"`
	Phase int         `audacity:"phase"`
	Wet   int         `audacity:"wet"`
	Lfo   float64     `audacity:"lfo"`
}

// VocalReductionAndIsolation removes or isolates center-panned audio.
type VocalReductionAndIsolation struct {
	scriptable
	Action         VocalAction `audacity:"action"`
	Strength       float64     `audacity:"strength"`
	LowTransition  float64     `audacity:"low-transition"`
	HighTransition float64     `audacity:"high-transition"`
}

// Vocoder modulates the left channel of a stereo track with the carrier
// in the right channel.
type Vocoder struct {
	scriptable
	Dst     float64       `audacity:"dst"`
	Mst     VocoderOutput `audacity:"mst"`
	Bands   int           `audacity:"bands"`
	TrackVl float64       `audacity:"track-vl"`
	NoiseVl float64       `audacity:"noise-vl"`
	RadarVl float64       `audacity:"radar-vl"`
	RadarF  float64       `audacity:"radar-f"`
}

func init() {
	register(&AdjustableFade{
		Type:   FadeUp,
		Units:  FadeUnitsPercent,
		Preset: FadePresetNone,
	}, "Fade with a configurable shape.")
	register(&ClipFix{}, "Reconstruct clipped regions.")
	register(&CrossfadeClips{}, "Crossfade a pair of clips.")
	register(&CrossfadeTracks{
		Type:      CrossfadeConstantGain,
		Direction: CrossfadeAutomatic,
	}, "Crossfade two overlapping tracks.")
	register(&Delay{
		DelayType: DelayRegular,
		PitchType: DelayPitchTempo,
		Constrain: Yes,
	}, "Apply a configurable delay.")
	register(&HighPassFilter{Rolloff: RolloffDB6}, "Attenuate below the cutoff frequency.")
	register(&Limiter{
		Type:   LimiterSoftLimit,
		Makeup: No,
	}, "Keep peaks below a threshold.")
	register(&LowPassFilter{Rolloff: RolloffDB6}, "Attenuate above the cutoff frequency.")
	register(&NotchFilter{}, "Attenuate a narrow frequency band.")
	register(&SpectralEditMultiTool{}, "Filter according to the spectral selection.")
	register(&SpectralEditParametricEq{}, "Cut or boost the spectral selection band.")
	register(&SpectralEditShelves{}, "Shelve filter the spectral selection.")
	register(&StudioFadeOut{}, "Apply a musical fade out.")
	register(&Tremolo{Wave: TremoloSine}, "Modulate the volume with an LFO.")
	register(&VocalReductionAndIsolation{Action: VocalRemoveToMono}, "Remove or isolate center-panned audio.")
	register(&Vocoder{Mst: VocoderBothChannels}, "Vocode the left channel with the right.")
}
