package audacity

// Edit menu: clipboard operations, clip boundaries and preferences.

// Undo undoes the most recent editing action.
type Undo struct{ scriptable }

// Redo redoes the most recently undone editing action.
type Redo struct{ scriptable }

// Cut removes the selected audio and/or labels to the Audacity clipboard.
type Cut struct{ scriptable }

// Delete removes the selected audio and/or labels without copying them.
type Delete struct{ scriptable }

// Copy copies the selected audio to the Audacity clipboard.
type Copy struct{ scriptable }

// Paste inserts the Audacity clipboard at the selection cursor.
type Paste struct{ scriptable }

// Duplicate creates a new track containing only the current selection.
type Duplicate struct{ scriptable }

// EditMetaData opens the Metadata Editor.
type EditMetaData struct{ scriptable }

// Preferences opens the Preferences dialog.
type Preferences struct{ scriptable }

// SplitCut is Cut without shifting the audio right of the selection.
type SplitCut struct{ scriptable }

// SplitDelete is Delete without shifting the audio right of the selection.
type SplitDelete struct{ scriptable }

// Silence replaces the selected audio with absolute silence.
type Silence struct{ scriptable }

// Trim deletes all audio but the selection.
type Trim struct{ scriptable }

// Split splits the current clip at the cursor or selection boundaries.
type Split struct{ scriptable }

// SplitNew split-cuts the selection and pastes it into a new track.
type SplitNew struct{ scriptable }

// Join joins all clips overlapping the selection into one large clip.
type Join struct{ scriptable }

// Disjoin creates separate clips around absolute silences in the selection.
type Disjoin struct{ scriptable }

func init() {
	register(&Undo{}, "Undo the most recent editing action.")
	register(&Redo{}, "Redo the most recently undone action.")
	register(&Cut{}, "Cut the selection to the clipboard.")
	register(&Delete{}, "Delete the selection.")
	register(&Copy{}, "Copy the selection to the clipboard.")
	register(&Paste{}, "Paste the clipboard at the cursor.")
	register(&Duplicate{}, "Duplicate the selection into a new track.")
	register(&EditMetaData{}, "Open the Metadata Editor.")
	register(&Preferences{}, "Open the Preferences dialog.")
	register(&SplitCut{}, "Cut without shifting later audio.")
	register(&SplitDelete{}, "Delete without shifting later audio.")
	register(&Silence{}, "Replace the selection with silence.")
	register(&Trim{}, "Delete all audio but the selection.")
	register(&Split{}, "Split the clip at the cursor or selection.")
	register(&SplitNew{}, "Split-cut the selection into a new track.")
	register(&Join{}, "Join clips overlapping the selection.")
	register(&Disjoin{}, "Split the selection into clips at silences.")
}
