package audacity

// Help menu: documentation, diagnostics and update checks.

// QuickHelp opens a brief version of the manual.
type QuickHelp struct{ scriptable }

// Manual opens the full manual.
type Manual struct{ scriptable }

// Updates checks online for a newer Audacity version.
type Updates struct{ scriptable }

// About opens the About dialog.
type About struct{ scriptable }

// DeviceInfo shows technical information about the audio devices.
type DeviceInfo struct{ scriptable }

// MidiDeviceInfo shows technical information about the MIDI devices.
type MidiDeviceInfo struct{ scriptable }

// Log opens the Audacity log window.
type Log struct{ scriptable }

// CrashReport generates a debug report.
type CrashReport struct{ scriptable }

// CheckDeps lists audio files the project depends on.
type CheckDeps struct{ scriptable }

func init() {
	register(&QuickHelp{}, "Open the quick help.")
	register(&Manual{}, "Open the manual.")
	register(&Updates{}, "Check for updates.")
	register(&About{}, "Open the About dialog.")
	register(&DeviceInfo{}, "Show audio device information.")
	register(&MidiDeviceInfo{}, "Show MIDI device information.")
	register(&Log{}, "Open the log window.")
	register(&CrashReport{}, "Generate a debug report.")
	register(&CheckDeps{}, "List audio file dependencies.")
}
