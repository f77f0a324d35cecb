package audacity

// Select menu: selection manipulation and spectral selection.

// SelectAll selects all audio in all tracks.
type SelectAll struct{ scriptable }

// SelectNone deselects all audio in all tracks.
type SelectNone struct{ scriptable }

// SelCursorStoredCursor selects from the cursor to the stored cursor
// position.
type SelCursorStoredCursor struct{ scriptable }

// StoreCursorPosition stores the cursor position for a later selection.
type StoreCursorPosition struct{ scriptable }

// ZeroCross nudges selection edges to the nearest rising zero crossings.
type ZeroCross struct{ scriptable }

// SelAllTracks extends the current selection into all tracks.
type SelAllTracks struct{ scriptable }

// SelSyncLockTracks extends the selection into all sync-locked tracks.
type SelSyncLockTracks struct{ scriptable }

// SetLeftSelection sets the left selection boundary.
type SetLeftSelection struct{ scriptable }

// SetRightSelection sets the right selection boundary.
type SetRightSelection struct{ scriptable }

// SelTrackStartToCursor selects from the track start to the cursor.
type SelTrackStartToCursor struct{ scriptable }

// SelCursorToTrackEnd selects from the cursor to the track end.
type SelCursorToTrackEnd struct{ scriptable }

// SelTrackStartToEnd selects the whole of the selected tracks.
type SelTrackStartToEnd struct{ scriptable }

// SelSave stores the selection end points for later reuse.
type SelSave struct{ scriptable }

// SelRestore retrieves previously stored selection end points.
type SelRestore struct{ scriptable }

// ToggleSpectralSelection toggles between time and spectral selection.
type ToggleSpectralSelection struct{ scriptable }

// NextHigherPeakFrequency snaps the center frequency to the next higher
// peak.
type NextHigherPeakFrequency struct{ scriptable }

// NextLowerPeakFrequency snaps the center frequency to the next lower peak.
type NextLowerPeakFrequency struct{ scriptable }

// SelPrevClipBoundaryToCursor selects back to the previous clip boundary.
type SelPrevClipBoundaryToCursor struct{ scriptable }

// SelCursorToNextClipBoundary selects forward to the next clip boundary.
type SelCursorToNextClipBoundary struct{ scriptable }

// SelPrevClip moves the selection to the previous clip.
type SelPrevClip struct{ scriptable }

// SelNextClip moves the selection to the next clip.
type SelNextClip struct{ scriptable }

// SelStart selects from the cursor to the start of the track.
type SelStart struct{ scriptable }

// SelEnd selects from the cursor to the end of the track.
type SelEnd struct{ scriptable }

// SelExtLeft extends the selection to the left.
type SelExtLeft struct{ scriptable }

// SelExtRight extends the selection to the right.
type SelExtRight struct{ scriptable }

// SelSetExtLeft extends the selection left a little.
type SelSetExtLeft struct{ scriptable }

// SelSetExtRight extends the selection right a little.
type SelSetExtRight struct{ scriptable }

// SelCntrLeft contracts the selection from the right.
type SelCntrLeft struct{ scriptable }

// SelCntrRight contracts the selection from the left.
type SelCntrRight struct{ scriptable }

func init() {
	register(&SelectAll{}, "Select all audio in all tracks.")
	register(&SelectNone{}, "Deselect everything.")
	register(&SelCursorStoredCursor{}, "Select from cursor to the stored cursor position.")
	register(&StoreCursorPosition{}, "Store the cursor position.")
	register(&ZeroCross{}, "Snap selection edges to zero crossings.")
	register(&SelAllTracks{}, "Extend the selection into all tracks.")
	register(&SelSyncLockTracks{}, "Extend the selection into sync-locked tracks.")
	register(&SetLeftSelection{}, "Set the left selection boundary.")
	register(&SetRightSelection{}, "Set the right selection boundary.")
	register(&SelTrackStartToCursor{}, "Select from track start to cursor.")
	register(&SelCursorToTrackEnd{}, "Select from cursor to track end.")
	register(&SelTrackStartToEnd{}, "Select from track start to track end.")
	register(&SelSave{}, "Store the selection end points.")
	register(&SelRestore{}, "Restore stored selection end points.")
	register(&ToggleSpectralSelection{}, "Toggle spectral selection.")
	register(&NextHigherPeakFrequency{}, "Snap center frequency to next higher peak.")
	register(&NextLowerPeakFrequency{}, "Snap center frequency to next lower peak.")
	register(&SelPrevClipBoundaryToCursor{}, "Select back to the previous clip boundary.")
	register(&SelCursorToNextClipBoundary{}, "Select forward to the next clip boundary.")
	register(&SelPrevClip{}, "Move the selection to the previous clip.")
	register(&SelNextClip{}, "Move the selection to the next clip.")
	register(&SelStart{}, "Select from cursor to start of track.")
	register(&SelEnd{}, "Select from cursor to end of track.")
	register(&SelExtLeft{}, "Extend the selection left.")
	register(&SelExtRight{}, "Extend the selection right.")
	register(&SelSetExtLeft{}, "Extend the selection left a little.")
	register(&SelSetExtRight{}, "Extend the selection right a little.")
	register(&SelCntrLeft{}, "Contract the selection from the right.")
	register(&SelCntrRight{}, "Contract the selection from the left.")
}
