package audacity

// Tools menu: macros, screenshots, Nyquist tooling and sample data
// import/export.

// CaptureTarget selects what part of the Audacity window a screenshot
// captures.
type CaptureTarget string

const (
	CaptureWindow     CaptureTarget = "Window"
	CaptureFullWindow CaptureTarget = "FullWindow"
	CaptureWindowPlus CaptureTarget = "WindowPlus"
	CaptureFullscreen CaptureTarget = "Fullscreen"
	CaptureToolbars   CaptureTarget = "Toolbars"
	CaptureTrackpanel CaptureTarget = "Trackpanel"
	CaptureRuler      CaptureTarget = "Ruler"
	CaptureTracks     CaptureTarget = "Tracks"
	CaptureAllTracks  CaptureTarget = "AllTracks"
	CaptureFirstTrack CaptureTarget = "FirstTrack"
)

func (CaptureTarget) EnumValues() []string {
	return []string{
		"Window", "FullWindow", "WindowPlus", "Fullscreen", "Toolbars",
		"Effects", "Scriptables", "Preferences", "Selectionbar",
		"SpectralSelection", "Timer", "Tools", "Transport", "Mixer",
		"Meter", "PlayMeter", "RecordMeter", "Edit", "Device", "Scrub",
		"Play-at-Speed", "Trackpanel", "Ruler", "Tracks", "FirstTrack",
		"FirstTwoTracks", "FirstThreeTracks", "FirstFourTracks",
		"SecondTrack", "TracksPlus", "FirstTrackPlus", "AllTracks",
		"AllTracksPlus",
	}
}

// CaptureBackground selects the screenshot background fill.
type CaptureBackground string

const (
	BackgroundBlue  CaptureBackground = "Blue"
	BackgroundWhite CaptureBackground = "White"
	BackgroundNone  CaptureBackground = "None"
)

func (CaptureBackground) EnumValues() []string {
	return []string{"Blue", "White", "None"}
}

// OverwritePolicy selects whether the plugin installer may replace
// existing files.
type OverwritePolicy string

const (
	OverwriteDisallow OverwritePolicy = "Disallow"
	OverwriteAllow    OverwritePolicy = "Allow"
)

func (OverwritePolicy) EnumValues() []string {
	return []string{"Disallow", "Allow"}
}

// IntervalMode selects whether labels are placed by count, by interval,
// or both.
type IntervalMode string

const (
	IntervalBoth   IntervalMode = "Both"
	IntervalNumber IntervalMode = "Number"
	IntervalLength IntervalMode = "Interval"
)

func (IntervalMode) EnumValues() []string {
	return []string{"Both", "Number", "Interval"}
}

// ZeroPadding selects how label numbers are zero padded.
type ZeroPadding string

const (
	ZerosTextOnly    ZeroPadding = "TextOnly"
	ZerosOneBefore   ZeroPadding = "OneBefore"
	ZerosTwoBefore   ZeroPadding = "TwoBefore"
	ZerosThreeBefore ZeroPadding = "ThreeBefore"
	ZerosOneAfter    ZeroPadding = "OneAfter"
	ZerosTwoAfter    ZeroPadding = "TwoAfter"
	ZerosThreeAfter  ZeroPadding = "ThreeAfter"
)

func (ZeroPadding) EnumValues() []string {
	return []string{
		"TextOnly", "OneBefore", "TwoBefore", "ThreeBefore",
		"OneAfter", "TwoAfter", "ThreeAfter",
	}
}

// Verbosity selects how much Regular Interval Labels reports.
type Verbosity string

const (
	VerboseDetails  Verbosity = "Details"
	VerboseWarnings Verbosity = "Warnings"
	VerboseNone     Verbosity = "None"
)

func (Verbosity) EnumValues() []string {
	return []string{"Details", "Warnings", "None"}
}

// SampleUnits selects the unit sample values are printed in.
type SampleUnits string

const (
	SampleUnitsDB     SampleUnits = "dB"
	SampleUnitsLinear SampleUnits = "Linear"
)

func (SampleUnits) EnumValues() []string {
	return []string{"dB", "Linear"}
}

// IndexFormat selects the index column written next to each sample.
type IndexFormat string

const (
	IndexNone  IndexFormat = "None"
	IndexCount IndexFormat = "Count"
	IndexTime  IndexFormat = "Time"
)

func (IndexFormat) EnumValues() []string {
	return []string{"None", "Count", "Time"}
}

// HeaderStyle selects the header written to the export file.
type HeaderStyle string

const (
	HeaderNone     HeaderStyle = "None"
	HeaderMinimal  HeaderStyle = "Minimal"
	HeaderStandard HeaderStyle = "Standard"
	HeaderAll      HeaderStyle = "All"
)

func (HeaderStyle) EnumValues() []string {
	return []string{"None", "Minimal", "Standard", "All"}
}

// ChannelLayout selects how stereo samples are arranged in the export
// file.
type ChannelLayout string

const (
	ChannelsSameLine  ChannelLayout = "SameLine"
	ChannelsAlternate ChannelLayout = "Alternate"
	ChannelsLFirst    ChannelLayout = "LFirst"
)

func (ChannelLayout) EnumValues() []string {
	return []string{"SameLine", "Alternate", "LFirst"}
}

// MessagePolicy selects which messages the exporter shows.
type MessagePolicy string

const (
	MessagesYes    MessagePolicy = "Yes"
	MessagesErrors MessagePolicy = "Errors"
	MessagesNone   MessagePolicy = "None"
)

func (MessagePolicy) EnumValues() []string {
	return []string{"Yes", "Errors", "None"}
}

// BadDataPolicy selects what the importer does with unreadable values.
type BadDataPolicy string

const (
	BadDataThrowError BadDataPolicy = "ThrowError"
	BadDataReadAsZero BadDataPolicy = "ReadAsZero"
)

func (BadDataPolicy) EnumValues() []string {
	return []string{"ThrowError", "ReadAsZero"}
}

// ManageTools opens the Plugin Manager for tools.
type ManageTools struct{ scriptable }

// ManageMacros creates a new macro or edits an existing one.
type ManageMacros struct{ scriptable }

// ApplyMacro shows a menu of macros to apply to the current project.
type ApplyMacro struct{ scriptable }

// Screenshot captures part of the Audacity window to an image file.
type Screenshot struct {
	scriptable
	Path        string
	CaptureWhat CaptureTarget
	Background  CaptureBackground
	ToTop       bool
}

// Benchmark measures the performance of one part of Audacity.
type Benchmark struct{ scriptable }

// NyquistPrompt executes Nyquist code entered directly.
type NyquistPrompt struct {
	scriptable
	Command string
	Version int
}

// NyquistPlugInInstaller installs other Nyquist plugins.
type NyquistPlugInInstaller struct {
	scriptable
	Files     string          `audacity:"files"`
	Overwrite OverwritePolicy `audacity:"overwrite"`
}

// RegularIntervalLabels divides a long track into equally sized labeled
// segments.
type RegularIntervalLabels struct {
	scriptable
	Mode      IntervalMode `audacity:"mode"`
	TotalNum  int          `audacity:"totalnum"`
	Interval  float64      `audacity:"interval"`
	Region    float64      `audacity:"region"`
	Adjust    YesNo        `audacity:"adjust"`
	LabelText string       `audacity:"labeltext"`
	Zeros     ZeroPadding  `audacity:"zeros"`
	FirstNum  int          `audacity:"firstnum"`
	Verbose   Verbosity    `audacity:"verbose"`
}

// SampleDataExport prints successive sample values to a text, CSV or
// HTML file.
type SampleDataExport struct {
	scriptable
	Number        int           `audacity:"number"`
	Units         SampleUnits   `audacity:"units"`
	Filename      string        `audacity:"filename"`
	FileFormat    IndexFormat   `audacity:"fileformat"`
	Header        HeaderStyle   `audacity:"header"`
	OpText        string        `audacity:"optext"`
	ChannelLayout ChannelLayout `audacity:"channel-layout"`
	Messages      MessagePolicy `audacity:"messages"`
}

// SampleDataImport creates a PCM sample for each numeric value read from
// a text file.
type SampleDataImport struct {
	scriptable
	Filename string        `audacity:"filename"`
	BadData  BadDataPolicy `audacity:"bad-data"`
}

// ApplyMacrosPalette shows the macros palette.
type ApplyMacrosPalette struct{ scriptable }

// Shipped macros. The wire names carry an underscore.
type (
	MacroFadeEnds      struct{ scriptable }
	MacroMP3Conversion struct{ scriptable }
)

func init() {
	register(&ManageTools{}, "Open the Plugin Manager for tools.")
	register(&ManageMacros{}, "Create or edit a macro.")
	register(&ApplyMacro{}, "Apply a macro to the current project.")
	register(&Screenshot{
		CaptureWhat: CaptureWindow,
		Background:  BackgroundNone,
		ToTop:       true,
	}, "Capture a screenshot of Audacity.")
	register(&Benchmark{}, "Measure Audacity performance.")
	register(&NyquistPrompt{Version: 3}, "Execute Nyquist code.")
	register(&NyquistPlugInInstaller{Overwrite: OverwriteDisallow}, "Install Nyquist plugins.")
	register(&RegularIntervalLabels{
		Mode:    IntervalBoth,
		Adjust:  No,
		Zeros:   ZerosTextOnly,
		Verbose: VerboseDetails,
	}, "Divide a track into labeled segments.")
	register(&SampleDataExport{
		Units:         SampleUnitsDB,
		FileFormat:    IndexNone,
		Header:        HeaderNone,
		ChannelLayout: ChannelsSameLine,
		Messages:      MessagesYes,
	}, "Export sample values to a text file.")
	register(&SampleDataImport{BadData: BadDataThrowError}, "Import sample values from a text file.")
	register(&ApplyMacrosPalette{}, "Show the macros palette.")
	registerAs(&MacroFadeEnds{}, "Macro_FadeEnds", "Fade in the first and out the last second.")
	registerAs(&MacroMP3Conversion{}, "Macro_MP3Conversion", "Convert to MP3.")
}
