package audacity

// Tracks menu: track creation, mixing, muting, panning and alignment.

// Resample resamples the selected tracks.
type Resample struct{ scriptable }

// RemoveTracks removes the selected tracks.
type RemoveTracks struct{ scriptable }

// SyncLock toggles sync-lock, keeping tracks synchronized while editing.
type SyncLock struct{ scriptable }

// NewMonoTrack creates a new empty mono audio track.
type NewMonoTrack struct{ scriptable }

// NewStereoTrack creates a new empty stereo audio track.
type NewStereoTrack struct{ scriptable }

// NewLabelTrack creates a new empty label track.
type NewLabelTrack struct{ scriptable }

// NewTimeTrack creates a new time track for changing playback speed over
// time.
type NewTimeTrack struct{ scriptable }

// StereoToMono converts the selected stereo tracks to mono.
type StereoToMono struct{ scriptable }

// MixAndRender mixes the selected tracks down into a single track.
type MixAndRender struct{ scriptable }

// MixAndRenderToNewTrack mixes the selected tracks into a new track,
// keeping the originals.
type MixAndRenderToNewTrack struct{ scriptable }

// MuteAllTracks mutes all audio tracks.
type MuteAllTracks struct{ scriptable }

// UnmuteAllTracks unmutes all audio tracks.
type UnmuteAllTracks struct{ scriptable }

// MuteTracks mutes the selected tracks.
type MuteTracks struct{ scriptable }

// UnmuteTracks unmutes the selected tracks.
type UnmuteTracks struct{ scriptable }

// PanLeft pans the selected tracks hard left.
type PanLeft struct{ scriptable }

// PanRight pans the selected tracks hard right.
type PanRight struct{ scriptable }

// PanCenter pans the selected tracks to center.
type PanCenter struct{ scriptable }

// Track alignment. The wire names carry an underscore.
type (
	AlignEndToEnd        struct{ scriptable }
	AlignTogether        struct{ scriptable }
	AlignStartToZero     struct{ scriptable }
	AlignStartToSelStart struct{ scriptable }
	AlignStartToSelEnd   struct{ scriptable }
	AlignEndToSelStart   struct{ scriptable }
	AlignEndToSelEnd     struct{ scriptable }
)

// MoveSelectionWithTracks toggles moving the selection together with
// aligned tracks.
type MoveSelectionWithTracks struct{ scriptable }

// SortByTime sorts tracks by their start time.
type SortByTime struct{ scriptable }

// SortByName sorts tracks by name.
type SortByName struct{ scriptable }

func init() {
	register(&Resample{}, "Resample the selected tracks.")
	register(&RemoveTracks{}, "Remove the selected tracks.")
	register(&SyncLock{}, "Toggle sync-lock.")
	register(&NewMonoTrack{}, "Create an empty mono track.")
	register(&NewStereoTrack{}, "Create an empty stereo track.")
	register(&NewLabelTrack{}, "Create an empty label track.")
	register(&NewTimeTrack{}, "Create a time track.")
	register(&StereoToMono{}, "Convert stereo tracks to mono.")
	register(&MixAndRender{}, "Mix selected tracks into one track.")
	register(&MixAndRenderToNewTrack{}, "Mix selected tracks into a new track.")
	register(&MuteAllTracks{}, "Mute all tracks.")
	register(&UnmuteAllTracks{}, "Unmute all tracks.")
	register(&MuteTracks{}, "Mute the selected tracks.")
	register(&UnmuteTracks{}, "Unmute the selected tracks.")
	register(&PanLeft{}, "Pan the selected tracks left.")
	register(&PanRight{}, "Pan the selected tracks right.")
	register(&PanCenter{}, "Pan the selected tracks to center.")
	registerAs(&AlignEndToEnd{}, "Align_EndToEnd", "Align tracks end to end.")
	registerAs(&AlignTogether{}, "Align_Together", "Align tracks together.")
	registerAs(&AlignStartToZero{}, "Align_StartToZero", "Align track starts to zero.")
	registerAs(&AlignStartToSelStart{}, "Align_StartToSelStart", "Align track starts to the selection start.")
	registerAs(&AlignStartToSelEnd{}, "Align_StartToSelEnd", "Align track starts to the selection end.")
	registerAs(&AlignEndToSelStart{}, "Align_EndToSelStart", "Align track ends to the selection start.")
	registerAs(&AlignEndToSelEnd{}, "Align_EndToSelEnd", "Align track ends to the selection end.")
	register(&MoveSelectionWithTracks{}, "Move selection together with aligned tracks.")
	register(&SortByTime{}, "Sort tracks by start time.")
	register(&SortByName{}, "Sort tracks by name.")
}
