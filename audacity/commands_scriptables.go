package audacity

// Scriptables: commands intended for scripting rather than menus. Most
// parameters default to "unchanged", so the fields are pointers and
// omitted from the request when nil.

// RelativeTo anchors a time selection to a project or selection edge.
type RelativeTo string

const (
	RelativeToProjectStart   RelativeTo = "ProjectStart"
	RelativeToProject        RelativeTo = "Project"
	RelativeToProjectEnd     RelativeTo = "ProjectEnd"
	RelativeToSelectionStart RelativeTo = "SelectionStart"
	RelativeToSelection      RelativeTo = "Selection"
	RelativeToSelectionEnd   RelativeTo = "SelectionEnd"
)

func (RelativeTo) EnumValues() []string {
	return []string{
		"ProjectStart", "Project", "ProjectEnd",
		"SelectionStart", "Selection", "SelectionEnd",
	}
}

// SelectMode combines a new track selection with the current one.
type SelectMode string

const (
	SelectSet    SelectMode = "Set"
	SelectAdd    SelectMode = "Add"
	SelectRemove SelectMode = "Remove"
)

func (SelectMode) EnumValues() []string {
	return []string{"Set", "Add", "Remove"}
}

// TrackDisplay selects the view of a track.
type TrackDisplay string

const (
	DisplayWaveform    TrackDisplay = "Waveform"
	DisplaySpectrogram TrackDisplay = "Spectrogram"
	DisplayMultiView   TrackDisplay = "Multi-view"
)

func (TrackDisplay) EnumValues() []string {
	return []string{"Waveform", "Spectrogram", "Multi-view"}
}

// TrackScale selects the vertical scale of a waveform view.
type TrackScale string

const (
	ScaleLinear TrackScale = "Linear"
	ScaleDB     TrackScale = "dB"
)

func (TrackScale) EnumValues() []string {
	return []string{"Linear", "dB"}
}

// TrackColor selects one of the four waveform colors.
type TrackColor string

const (
	Color0 TrackColor = "Color0"
	Color1 TrackColor = "Color1"
	Color2 TrackColor = "Color2"
	Color3 TrackColor = "Color3"
)

func (TrackColor) EnumValues() []string {
	return []string{"Color0", "Color1", "Color2", "Color3"}
}

// VZoomMode selects a vertical zoom action.
type VZoomMode string

const (
	VZoomReset    VZoomMode = "Reset"
	VZoomTimes2   VZoomMode = "Times2"
	VZoomHalfWave VZoomMode = "HalfWave"
)

func (VZoomMode) EnumValues() []string {
	return []string{"Reset", "Times2", "HalfWave"}
}

// ColorScheme selects the spectrogram color scheme.
type ColorScheme string

const (
	SchemeColorDefault     ColorScheme = "Color (default)"
	SchemeColorClassic     ColorScheme = "Color (classic)"
	SchemeGrayscale        ColorScheme = "Grayscale"
	SchemeInverseGrayscale ColorScheme = "Inverse Grayscale"
)

func (ColorScheme) EnumValues() []string {
	return []string{
		"Color (default)", "Color (classic)", "Grayscale", "Inverse Grayscale",
	}
}

// InfoType selects what GetInfo reports on.
type InfoType string

const (
	InfoCommands    InfoType = "Commands"
	InfoMenus       InfoType = "Menus"
	InfoPreferences InfoType = "Preferences"
	InfoTracks      InfoType = "Tracks"
	InfoClips       InfoType = "Clips"
	InfoEnvelopes   InfoType = "Envelopes"
	InfoLabels      InfoType = "Labels"
	InfoBoxes       InfoType = "Boxes"
)

func (InfoType) EnumValues() []string {
	return []string{
		"Commands", "Menus", "Preferences", "Tracks",
		"Clips", "Envelopes", "Labels", "Boxes",
	}
}

// InfoFormat selects the output format of GetInfo and Help.
type InfoFormat string

const (
	FormatJSON  InfoFormat = "JSON"
	FormatLISP  InfoFormat = "LISP"
	FormatBrief InfoFormat = "Brief"
)

func (InfoFormat) EnumValues() []string {
	return []string{"JSON", "LISP", "Brief"}
}

// DragAnchor anchors mouse coordinates to a window or track panel.
type DragAnchor string

const (
	DragRelativePanel  DragAnchor = "Panel"
	DragRelativeApp    DragAnchor = "App"
	DragRelativeTrack0 DragAnchor = "Track0"
	DragRelativeTrack1 DragAnchor = "Track1"
)

func (DragAnchor) EnumValues() []string {
	return []string{"Panel", "App", "Track0", "Track1"}
}

// SelectTime modifies the temporal selection.
type SelectTime struct {
	scriptable
	Start      *float64
	End        *float64
	RelativeTo *RelativeTo
}

// SelectFrequencies modifies the spectral selection.
type SelectFrequencies struct {
	scriptable
	High *float64
	Low  *float64
}

// SelectTracks modifies which tracks are selected.
type SelectTracks struct {
	scriptable
	Track      *float64
	TrackCount *float64
	Mode       *SelectMode
}

// SetTrackStatus sets the name, selectedness and focus of a track.
type SetTrackStatus struct {
	scriptable
	Name     *string
	Selected *bool
	Focused  *bool
}

// SetTrackAudio sets pan, gain, mute and solo of a track.
type SetTrackAudio struct {
	scriptable
	Mute *bool
	Solo *bool
	Gain *float64
	Pan  *float64
}

// SetTrackVisuals sets visual properties of a track.
type SetTrackVisuals struct {
	scriptable
	Height      *int
	Display     *TrackDisplay
	Scale       *TrackScale
	Color       *TrackColor
	VZoom       *VZoomMode
	VZoomHigh   *float64
	VZoomLow    *float64
	SpecPrefs   *bool
	SpectralSel *bool
	Scheme      *ColorScheme
}

// GetPreference gets a single preference setting.
type GetPreference struct {
	scriptable
	Name string
}

// SetPreference sets a single preference setting. Some settings only take
// effect with Reload, which slows a script down.
type SetPreference struct {
	scriptable
	Name   string
	Value  string
	Reload bool
}

// SetClip modifies the clip at a given time on a track. Audacity allows
// overlapping clips but does not like them.
type SetClip struct {
	scriptable
	At    *float64
	Color *TrackColor
	Start *float64
}

// SetEnvelope modifies an envelope point at a time within a track. The
// whole envelope can be removed with Delete; individual points cannot.
type SetEnvelope struct {
	scriptable
	Time   *float64
	Value  *float64
	Delete *bool
}

// SetProject sets the project window location, size, caption and rate.
type SetProject struct {
	scriptable
	Name   *string
	Rate   *float64
	X      *int
	Y      *int
	Width  *int
	Height *int
}

// Select selects audio by time, frequency and track in one command.
type Select struct {
	scriptable
	Start      *float64
	End        *float64
	RelativeTo *RelativeTo
	High       *float64
	Low        *float64
	Track      *float64
	TrackCount *float64
	Mode       *SelectMode
}

// SetTrack sets status, audio and visual properties in one command.
type SetTrack struct {
	scriptable
	Name        *string
	Selected    *bool
	Focused     *bool
	Mute        *bool
	Solo        *bool
	Gain        *float64
	Pan         *float64
	Height      *int
	Display     *TrackDisplay
	Scale       *TrackScale
	Color       *TrackColor
	VZoom       *VZoomMode
	VZoomHigh   *float64
	VZoomLow    *float64
	SpecPrefs   *bool
	SpectralSel *bool
	GrayScale   *bool
}

// GetInfo reports a list of commands, menus, preferences, tracks, clips,
// envelopes, labels or boxes.
type GetInfo struct {
	scriptable
	Type   InfoType
	Format InfoFormat
}

// Message sends the text back to the caller. Used in testing.
type Message struct {
	scriptable
	Text string
}

// Help reports on a single command, like a one-entry GetInfo Commands.
type Help struct {
	scriptable
	Command string
	Format  InfoFormat
}

// Import2 imports a file without a file-open dialog.
type Import2 struct {
	scriptable
	Filename string
}

// Export2 exports the selected audio to a named file. Detailed format
// options come from saved preferences.
type Export2 struct {
	scriptable
	Filename    string
	NumChannels int
}

// OpenProject2 opens a project.
type OpenProject2 struct {
	scriptable
	Filename     string
	AddToHistory bool
}

// SaveProject2 saves a project.
type SaveProject2 struct {
	scriptable
	Filename     string
	AddToHistory bool
	Compress     bool
}

// Drag moves the mouse to a window or widget, dragging if To is given.
type Drag struct {
	scriptable
	Id         *int
	Window     *string
	FromX      *float64
	FromY      *float64
	ToX        *float64
	ToY        *float64
	RelativeTo *DragAnchor
}

// CompareAudio reports differences between the selected range on two
// tracks.
type CompareAudio struct {
	scriptable
	Threshold float64
}

func init() {
	register(&SelectTime{}, "Modify the temporal selection.")
	register(&SelectFrequencies{}, "Modify the spectral selection.")
	register(&SelectTracks{}, "Modify which tracks are selected.")
	register(&SetTrackStatus{}, "Set track name, selectedness and focus.")
	register(&SetTrackAudio{}, "Set track pan, gain, mute and solo.")
	register(&SetTrackVisuals{}, "Set track visual properties.")
	register(&GetPreference{}, "Get a preference setting.")
	register(&SetPreference{}, "Set a preference setting.")
	register(&SetClip{}, "Modify a clip on a track.")
	register(&SetEnvelope{}, "Modify an envelope point.")
	register(&SetProject{}, "Set project window location and size.")
	register(&Select{}, "Select audio by time, frequency and track.")
	register(&SetTrack{}, "Set track properties in one command.")
	register(&GetInfo{
		Type:   InfoCommands,
		Format: FormatJSON,
	}, "Report commands, tracks, clips and more.")
	register(&Message{Text: "Some message"}, "Echo the text back.")
	register(&Help{
		Command: "Help",
		Format:  FormatJSON,
	}, "Report on a single command.")
	register(&Import2{}, "Import a file.")
	register(&Export2{
		Filename:    "exported.wav",
		NumChannels: 1,
	}, "Export the selection to a file.")
	register(&OpenProject2{Filename: "test.aup3"}, "Open a project.")
	register(&SaveProject2{Filename: "name.aup3"}, "Save a project.")
	register(&Drag{}, "Move or drag the mouse.")
	register(&CompareAudio{}, "Compare the selection on two tracks.")
}
