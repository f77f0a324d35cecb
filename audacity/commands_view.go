package audacity

// View menu: zooming, track sizing, toolbars and auxiliary windows.

// UndoHistory opens the History window.
type UndoHistory struct{ scriptable }

// Karaoke opens the Karaoke window.
type Karaoke struct{ scriptable }

// MixerBoard opens the Mixer Board view.
type MixerBoard struct{ scriptable }

// ShowExtraMenus shows the extra menus with less-used commands.
type ShowExtraMenus struct{ scriptable }

// ShowClipping toggles highlighting of clipped audio.
type ShowClipping struct{ scriptable }

// ZoomIn zooms in on the horizontal axis.
type ZoomIn struct{ scriptable }

// ZoomNormal zooms to the default view.
type ZoomNormal struct{ scriptable }

// ZoomOut zooms out on the horizontal axis.
type ZoomOut struct{ scriptable }

// ZoomSel zooms so the selection fills the window width.
type ZoomSel struct{ scriptable }

// ZoomToggle toggles between two preset zoom levels.
type ZoomToggle struct{ scriptable }

// AdvancedVZoom enables left-click gestures in the vertical scale.
type AdvancedVZoom struct{ scriptable }

// FitInWindow zooms out until the whole project fits the window.
type FitInWindow struct{ scriptable }

// FitV adjusts track heights until all tracks fit the window.
type FitV struct{ scriptable }

// CollapseAllTracks collapses all tracks to minimum height.
type CollapseAllTracks struct{ scriptable }

// ExpandAllTracks expands all collapsed tracks.
type ExpandAllTracks struct{ scriptable }

// SkipSelStart moves the cursor to the selection start and deselects.
type SkipSelStart struct{ scriptable }

// SkipSelEnd moves the cursor to the selection end and deselects.
type SkipSelEnd struct{ scriptable }

// ResetToolbars restores all toolbars to their default layout.
type ResetToolbars struct{ scriptable }

// Toolbar visibility toggles.
type (
	ShowTransportTB         struct{ scriptable }
	ShowToolsTB             struct{ scriptable }
	ShowRecordMeterTB       struct{ scriptable }
	ShowPlayMeterTB         struct{ scriptable }
	ShowMixerTB             struct{ scriptable }
	ShowEditTB              struct{ scriptable }
	ShowTranscriptionTB     struct{ scriptable }
	ShowScrubbingTB         struct{ scriptable }
	ShowDeviceTB            struct{ scriptable }
	ShowSelectionTB         struct{ scriptable }
	ShowSpectralSelectionTB struct{ scriptable }
)

// RescanDevices rescans connected audio devices.
type RescanDevices struct{ scriptable }

// FullScreenOnOff toggles full screen mode.
type FullScreenOnOff struct{ scriptable }

func init() {
	register(&UndoHistory{}, "Open the History window.")
	register(&Karaoke{}, "Open the Karaoke window.")
	register(&MixerBoard{}, "Open the Mixer Board view.")
	register(&ShowExtraMenus{}, "Show the extra menus.")
	register(&ShowClipping{}, "Toggle highlighting of clipped audio.")
	register(&ZoomIn{}, "Zoom in.")
	register(&ZoomNormal{}, "Zoom to the default view.")
	register(&ZoomOut{}, "Zoom out.")
	register(&ZoomSel{}, "Zoom the selection to the window width.")
	register(&ZoomToggle{}, "Toggle between two zoom levels.")
	register(&AdvancedVZoom{}, "Enable vertical-scale zoom gestures.")
	register(&FitInWindow{}, "Fit the whole project in the window.")
	register(&FitV{}, "Fit all tracks vertically.")
	register(&CollapseAllTracks{}, "Collapse all tracks.")
	register(&ExpandAllTracks{}, "Expand all collapsed tracks.")
	register(&SkipSelStart{}, "Move cursor to selection start.")
	register(&SkipSelEnd{}, "Move cursor to selection end.")
	register(&ResetToolbars{}, "Reset toolbars to the default layout.")
	register(&ShowTransportTB{}, "Toggle the Transport toolbar.")
	register(&ShowToolsTB{}, "Toggle the Tools toolbar.")
	register(&ShowRecordMeterTB{}, "Toggle the Recording Meter toolbar.")
	register(&ShowPlayMeterTB{}, "Toggle the Playback Meter toolbar.")
	register(&ShowMixerTB{}, "Toggle the Mixer toolbar.")
	register(&ShowEditTB{}, "Toggle the Edit toolbar.")
	register(&ShowTranscriptionTB{}, "Toggle the Play-at-Speed toolbar.")
	register(&ShowScrubbingTB{}, "Toggle the Scrub toolbar.")
	register(&ShowDeviceTB{}, "Toggle the Device toolbar.")
	register(&ShowSelectionTB{}, "Toggle the Selection toolbar.")
	register(&ShowSpectralSelectionTB{}, "Toggle the Spectral Selection toolbar.")
	register(&RescanDevices{}, "Rescan connected audio devices.")
	register(&FullScreenOnOff{}, "Toggle full screen mode.")
}
