package audacity

// Extra menu: tool selection, mixer gains, play-at-speed, device choice,
// snapping and keyboard navigation.

// Tool selection on the Tools toolbar.
type (
	SelectTool   struct{ scriptable }
	EnvelopeTool struct{ scriptable }
	DrawTool     struct{ scriptable }
	MultiTool    struct{ scriptable }
	PrevTool     struct{ scriptable }
	NextTool     struct{ scriptable }
)

// Mixer toolbar gain adjustments.
type (
	OutputGain    struct{ scriptable }
	OutputGainInc struct{ scriptable }
	OutputGainDec struct{ scriptable }
	InputGain     struct{ scriptable }
	InputGainInc  struct{ scriptable }
	InputGainDec  struct{ scriptable }
)

// DeleteKey deletes the selection like the Delete command.
type DeleteKey struct{ scriptable }

// DeleteKey2 is the alternative delete key binding.
type DeleteKey2 struct{ scriptable }

// TimeShiftLeft moves the selected clips left.
type TimeShiftLeft struct{ scriptable }

// TimeShiftRight moves the selected clips right.
type TimeShiftRight struct{ scriptable }

// Play-at-Speed toolbar.
type (
	PlayAtSpeed           struct{ scriptable }
	PlayAtSpeedLooped     struct{ scriptable }
	PlayAtSpeedCutPreview struct{ scriptable }
	SetPlaySpeed          struct{ scriptable }
	PlaySpeedInc          struct{ scriptable }
	PlaySpeedDec          struct{ scriptable }
)

// Seeking during playback.
type (
	SeekLeftShort  struct{ scriptable }
	SeekRightShort struct{ scriptable }
	SeekLeftLong   struct{ scriptable }
	SeekRightLong  struct{ scriptable }
)

// Device toolbar choices.
type (
	InputDevice   struct{ scriptable }
	OutputDevice  struct{ scriptable }
	AudioHost     struct{ scriptable }
	InputChannels struct{ scriptable }
)

// Snap-to setting.
type (
	SnapToOff     struct{ scriptable }
	SnapToNearest struct{ scriptable }
	SnapToPrior   struct{ scriptable }
)

// MoveToPrevLabel moves the focus to the previous label.
type MoveToPrevLabel struct{ scriptable }

// MoveToNextLabel moves the focus to the next label.
type MoveToNextLabel struct{ scriptable }

// MinutesAndSeconds sets the selection format to minutes and seconds.
// The wire name keeps the server's lower-case "and".
type MinutesAndSeconds struct{ scriptable }

// BeatsAndMeasures sets the selection format to beats and measures.
type BeatsAndMeasures struct{ scriptable }

// Keyboard focus navigation.
type (
	PrevFrame  struct{ scriptable }
	NextFrame  struct{ scriptable }
	PrevTrack  struct{ scriptable }
	NextTrack  struct{ scriptable }
	FirstTrack struct{ scriptable }
	LastTrack  struct{ scriptable }
	ShiftUp    struct{ scriptable }
	ShiftDown  struct{ scriptable }
	Toggle     struct{ scriptable }
	ToggleAlt  struct{ scriptable }
)

// Cursor movement.
type (
	CursorLeft           struct{ scriptable }
	CursorRight          struct{ scriptable }
	CursorShortJumpLeft  struct{ scriptable }
	CursorShortJumpRight struct{ scriptable }
	CursorLongJumpLeft   struct{ scriptable }
	CursorLongJumpRight  struct{ scriptable }
	ClipLeft             struct{ scriptable }
	ClipRight            struct{ scriptable }
)

// Focused-track adjustments.
type (
	TrackPan        struct{ scriptable }
	TrackPanLeft    struct{ scriptable }
	TrackPanRight   struct{ scriptable }
	TrackGain       struct{ scriptable }
	TrackGainInc    struct{ scriptable }
	TrackGainDec    struct{ scriptable }
	TrackMenu       struct{ scriptable }
	TrackMute       struct{ scriptable }
	TrackSolo       struct{ scriptable }
	TrackClose      struct{ scriptable }
	TrackMoveUp     struct{ scriptable }
	TrackMoveDown   struct{ scriptable }
	TrackMoveTop    struct{ scriptable }
	TrackMoveBottom struct{ scriptable }
)

// PrevWindow navigates to the previous window.
type PrevWindow struct{ scriptable }

// NextWindow navigates to the next window.
type NextWindow struct{ scriptable }

func init() {
	register(&SelectTool{}, "Choose the Selection tool.")
	register(&EnvelopeTool{}, "Choose the Envelope tool.")
	register(&DrawTool{}, "Choose the Draw tool.")
	register(&MultiTool{}, "Choose the Multi tool.")
	register(&PrevTool{}, "Cycle backward through tools.")
	register(&NextTool{}, "Cycle forward through tools.")
	register(&OutputGain{}, "Show the output gain slider.")
	register(&OutputGainInc{}, "Increase output gain.")
	register(&OutputGainDec{}, "Decrease output gain.")
	register(&InputGain{}, "Show the input gain slider.")
	register(&InputGainInc{}, "Increase input gain.")
	register(&InputGainDec{}, "Decrease input gain.")
	register(&DeleteKey{}, "Delete the selection.")
	register(&DeleteKey2{}, "Delete the selection (alternate binding).")
	register(&TimeShiftLeft{}, "Move the selected clips left.")
	register(&TimeShiftRight{}, "Move the selected clips right.")
	register(&PlayAtSpeed{}, "Play at the play-at-speed rate.")
	register(&PlayAtSpeedLooped{}, "Loop play at the play-at-speed rate.")
	register(&PlayAtSpeedCutPreview{}, "Cut-preview at the play-at-speed rate.")
	register(&SetPlaySpeed{}, "Show the play speed slider.")
	register(&PlaySpeedInc{}, "Increase play speed.")
	register(&PlaySpeedDec{}, "Decrease play speed.")
	register(&SeekLeftShort{}, "Seek left a short interval.")
	register(&SeekRightShort{}, "Seek right a short interval.")
	register(&SeekLeftLong{}, "Seek left a long interval.")
	register(&SeekRightLong{}, "Seek right a long interval.")
	register(&InputDevice{}, "Choose the input device.")
	register(&OutputDevice{}, "Choose the output device.")
	register(&AudioHost{}, "Choose the audio host.")
	register(&InputChannels{}, "Choose the input channel count.")
	register(&SnapToOff{}, "Turn snapping off.")
	register(&SnapToNearest{}, "Snap to the nearest interval.")
	register(&SnapToPrior{}, "Snap to the prior interval.")
	register(&MoveToPrevLabel{}, "Move focus to the previous label.")
	register(&MoveToNextLabel{}, "Move focus to the next label.")
	registerAs(&MinutesAndSeconds{}, "MinutesandSeconds", "Use minutes and seconds.")
	registerAs(&BeatsAndMeasures{}, "BeatsandMeasures", "Use beats and measures.")
	register(&PrevFrame{}, "Move focus to the previous frame.")
	register(&NextFrame{}, "Move focus to the next frame.")
	register(&PrevTrack{}, "Move focus to the previous track.")
	register(&NextTrack{}, "Move focus to the next track.")
	register(&FirstTrack{}, "Move focus to the first track.")
	register(&LastTrack{}, "Move focus to the last track.")
	register(&ShiftUp{}, "Move focus up, extending the selection.")
	register(&ShiftDown{}, "Move focus down, extending the selection.")
	register(&Toggle{}, "Toggle selectedness of the focused track.")
	register(&ToggleAlt{}, "Toggle selectedness (alternate binding).")
	register(&CursorLeft{}, "Move the cursor left.")
	register(&CursorRight{}, "Move the cursor right.")
	register(&CursorShortJumpLeft{}, "Jump the cursor left a short interval.")
	register(&CursorShortJumpRight{}, "Jump the cursor right a short interval.")
	register(&CursorLongJumpLeft{}, "Jump the cursor left a long interval.")
	register(&CursorLongJumpRight{}, "Jump the cursor right a long interval.")
	register(&ClipLeft{}, "Move the clip under the cursor left.")
	register(&ClipRight{}, "Move the clip under the cursor right.")
	register(&TrackPan{}, "Show the pan slider of the focused track.")
	register(&TrackPanLeft{}, "Pan the focused track left.")
	register(&TrackPanRight{}, "Pan the focused track right.")
	register(&TrackGain{}, "Show the gain slider of the focused track.")
	register(&TrackGainInc{}, "Increase gain of the focused track.")
	register(&TrackGainDec{}, "Decrease gain of the focused track.")
	register(&TrackMenu{}, "Open the menu of the focused track.")
	register(&TrackMute{}, "Mute the focused track.")
	register(&TrackSolo{}, "Solo the focused track.")
	register(&TrackClose{}, "Close the focused track.")
	register(&TrackMoveUp{}, "Move the focused track up.")
	register(&TrackMoveDown{}, "Move the focused track down.")
	register(&TrackMoveTop{}, "Move the focused track to the top.")
	register(&TrackMoveBottom{}, "Move the focused track to the bottom.")
	register(&PrevWindow{}, "Navigate to the previous window.")
	register(&NextWindow{}, "Navigate to the next window.")
}
