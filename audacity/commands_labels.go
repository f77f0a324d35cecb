package audacity

// Label editing and labeled-audio operations.

// EditLabels opens the Label Editor dialog.
type EditLabels struct{ scriptable }

// AddLabel creates a new empty label at the cursor or selection region.
type AddLabel struct{ scriptable }

// AddLabelPlaying creates a label at the current playback or recording
// position.
type AddLabelPlaying struct{ scriptable }

// PasteNewLabel pastes clipboard text into a new label at the cursor.
type PasteNewLabel struct{ scriptable }

// TypeToCreateLabel toggles creating labels by typing into a focused label
// track.
type TypeToCreateLabel struct{ scriptable }

// SetLabel modifies an existing label, addressed by label number.
type SetLabel struct {
	scriptable
	Label    int
	Text     *string
	Start    *float64
	End      *float64
	Selected *bool
}

// CutLabels cuts labeled audio regions.
type CutLabels struct{ scriptable }

// DeleteLabels deletes labeled audio regions.
type DeleteLabels struct{ scriptable }

// SplitCutLabels split-cuts labeled audio regions.
type SplitCutLabels struct{ scriptable }

// SplitDeleteLabels split-deletes labeled audio regions.
type SplitDeleteLabels struct{ scriptable }

// SilenceLabels silences labeled audio regions.
type SilenceLabels struct{ scriptable }

// CopyLabels copies labeled audio regions.
type CopyLabels struct{ scriptable }

// SplitLabels splits at labeled audio regions or points.
type SplitLabels struct{ scriptable }

// JoinLabels joins labeled audio regions or points.
type JoinLabels struct{ scriptable }

// DisjoinLabels detaches labeled audio regions at silences.
type DisjoinLabels struct{ scriptable }

func init() {
	register(&EditLabels{}, "Open the Label Editor.")
	register(&AddLabel{}, "Create an empty label at the cursor or selection.")
	register(&AddLabelPlaying{}, "Create a label at the playback position.")
	register(&PasteNewLabel{}, "Paste clipboard text into a new label.")
	register(&TypeToCreateLabel{}, "Toggle typing to create labels.")
	register(&SetLabel{}, "Modify an existing label by number.")
	register(&CutLabels{}, "Cut labeled audio regions.")
	register(&DeleteLabels{}, "Delete labeled audio regions.")
	register(&SplitCutLabels{}, "Split-cut labeled audio regions.")
	register(&SplitDeleteLabels{}, "Split-delete labeled audio regions.")
	register(&SilenceLabels{}, "Silence labeled audio regions.")
	register(&CopyLabels{}, "Copy labeled audio regions.")
	register(&SplitLabels{}, "Split at labeled regions or points.")
	register(&JoinLabels{}, "Join labeled regions or points.")
	register(&DisjoinLabels{}, "Detach labeled regions at silences.")
}
