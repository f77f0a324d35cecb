package audacity

// Transport menu: playback, recording, scrubbing and cursor movement.

// PlayStop starts and stops playback without changing the restart position.
type PlayStop struct{ scriptable }

// PlayStopSelect starts playback; stopping sets the restart position to the
// stop point.
type PlayStopSelect struct{ scriptable }

// Pause pauses playing or recording without losing the position.
type Pause struct{ scriptable }

// Record1stChoice starts recording at the end of the selected tracks.
type Record1stChoice struct{ scriptable }

// Record2ndChoice starts recording on a new track at the cursor or
// selection start.
type Record2ndChoice struct{ scriptable }

// TimerRecord opens the Timer Record dialog.
type TimerRecord struct{ scriptable }

// PunchAndRoll re-records over audio with a pre-roll.
type PunchAndRoll struct{ scriptable }

// Scrub adjusts playback position and speed with the mouse.
type Scrub struct{ scriptable }

// Seek is scrubbing with skips.
type Seek struct{ scriptable }

// ToggleScrubRuler shows or hides the scrub ruler.
type ToggleScrubRuler struct{ scriptable }

// CursSelStart centers the left edge of the selection on screen.
type CursSelStart struct{ scriptable }

// CursSelEnd centers the right edge of the selection on screen.
type CursSelEnd struct{ scriptable }

// CursTrackStart moves the cursor to the start of the selected track.
type CursTrackStart struct{ scriptable }

// CursTrackEnd moves the cursor to the end of the selected track.
type CursTrackEnd struct{ scriptable }

// CursPrevClipBoundary moves the cursor to the previous clip boundary.
type CursPrevClipBoundary struct{ scriptable }

// CursNextClipBoundary moves the cursor to the next clip boundary.
type CursNextClipBoundary struct{ scriptable }

// CursProjectStart moves the cursor to the beginning of the project.
type CursProjectStart struct{ scriptable }

// CursProjectEnd moves the cursor to the end of the project.
type CursProjectEnd struct{ scriptable }

// SoundActivationLevel sets the level for sound activated recording.
type SoundActivationLevel struct{ scriptable }

// SoundActivation toggles sound activated recording.
type SoundActivation struct{ scriptable }

// PinnedHead toggles the pinned play/record head.
type PinnedHead struct{ scriptable }

// Overdub toggles hearing other tracks while recording.
type Overdub struct{ scriptable }

// SWPlaythrough toggles audible input monitoring.
type SWPlaythrough struct{ scriptable }

// Play plays (or stops) audio.
type Play struct{ scriptable }

// Stop stops audio.
type Stop struct{ scriptable }

// PlayOneSec plays one second centered on the mouse pointer.
type PlayOneSec struct{ scriptable }

// PlayToSelection plays between the mouse pointer and the selection.
type PlayToSelection struct{ scriptable }

// Cut-preview playback around selection boundaries.
type (
	PlayBeforeSelectionStart         struct{ scriptable }
	PlayAfterSelectionStart          struct{ scriptable }
	PlayBeforeSelectionEnd           struct{ scriptable }
	PlayAfterSelectionEnd            struct{ scriptable }
	PlayBeforeAndAfterSelectionStart struct{ scriptable }
	PlayBeforeAndAfterSelectionEnd   struct{ scriptable }
)

// PlayCutPreview plays audio excluding the selection.
type PlayCutPreview struct{ scriptable }

// ScrubBackwards exists so its shortcut can be reassigned.
type ScrubBackwards struct{ scriptable }

// ScrubForwards exists so its shortcut can be reassigned.
type ScrubForwards struct{ scriptable }

func init() {
	register(&PlayStop{}, "Start or stop playback.")
	register(&PlayStopSelect{}, "Start or stop playback, moving the restart position.")
	register(&Pause{}, "Pause playing or recording.")
	register(&Record1stChoice{}, "Record at the end of the selected tracks.")
	register(&Record2ndChoice{}, "Record on a new track.")
	register(&TimerRecord{}, "Open the Timer Record dialog.")
	register(&PunchAndRoll{}, "Re-record over audio with a pre-roll.")
	register(&Scrub{}, "Scrub playback with the mouse.")
	register(&Seek{}, "Seek playback with skips.")
	register(&ToggleScrubRuler{}, "Show or hide the scrub ruler.")
	register(&CursSelStart{}, "Center the selection start on screen.")
	register(&CursSelEnd{}, "Center the selection end on screen.")
	register(&CursTrackStart{}, "Move cursor to track start.")
	register(&CursTrackEnd{}, "Move cursor to track end.")
	register(&CursPrevClipBoundary{}, "Move cursor to previous clip boundary.")
	register(&CursNextClipBoundary{}, "Move cursor to next clip boundary.")
	register(&CursProjectStart{}, "Move cursor to project start.")
	register(&CursProjectEnd{}, "Move cursor to project end.")
	register(&SoundActivationLevel{}, "Set the sound activated recording level.")
	register(&SoundActivation{}, "Toggle sound activated recording.")
	register(&PinnedHead{}, "Toggle the pinned play/record head.")
	register(&Overdub{}, "Toggle overdub.")
	register(&SWPlaythrough{}, "Toggle software playthrough.")
	register(&Play{}, "Play audio.")
	register(&Stop{}, "Stop audio.")
	register(&PlayOneSec{}, "Play one second around the pointer.")
	register(&PlayToSelection{}, "Play between pointer and selection.")
	register(&PlayBeforeSelectionStart{}, "Play shortly before the selection start.")
	register(&PlayAfterSelectionStart{}, "Play shortly after the selection start.")
	register(&PlayBeforeSelectionEnd{}, "Play shortly before the selection end.")
	register(&PlayAfterSelectionEnd{}, "Play shortly after the selection end.")
	register(&PlayBeforeAndAfterSelectionStart{}, "Play around the selection start.")
	register(&PlayBeforeAndAfterSelectionEnd{}, "Play around the selection end.")
	register(&PlayCutPreview{}, "Play audio excluding the selection.")
	register(&ScrubBackwards{}, "Placeholder for the scrub-backwards shortcut.")
	register(&ScrubForwards{}, "Placeholder for the scrub-forwards shortcut.")
}
