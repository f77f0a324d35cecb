package audacity

// File menu: project lifecycle, import and export.

// New creates a new empty project window.
type New struct{ scriptable }

// Open opens a project file. Dispatches as OpenProject2; the plain Open
// scripting command only raises the file dialog.
type Open struct {
	scriptable
	Filename     *string
	AddToHistory bool
}

// Close closes the current project window, prompting to save unsaved work.
type Close struct{ scriptable }

// PageSetup opens the standard Page Setup dialog prior to printing.
type PageSetup struct{ scriptable }

// Print prints all waveforms in the current project window to one page.
type Print struct{ scriptable }

// Exit closes all project windows and exits Audacity.
type Exit struct{ scriptable }

// Save saves the current project .AUP3 file.
type Save struct{ scriptable }

// SaveAs saves a copy of the open project under a different name or location.
type SaveAs struct{ scriptable }

// SaveCopy saves a copy of the current project.
type SaveCopy struct{ scriptable }

// SaveCompressed saves the project compressed, suitable for mailing.
type SaveCompressed struct{ scriptable }

// SaveProject opens the save-project submenu.
type SaveProject struct{ scriptable }

// ExportAudio exports audio files in various formats.
type ExportAudio struct{ scriptable }

// ExportLabels exports audio at one or more labels to files.
type ExportLabels struct{ scriptable }

// ExportMIDI exports note tracks to a MIDI file.
type ExportMIDI struct{ scriptable }

// ImportAudio adds a file as a new track to the existing project.
type ImportAudio struct{ scriptable }

// ImportLabels imports a text file of point or region labels.
type ImportLabels struct{ scriptable }

// ImportMIDI imports a MIDI or Allegro file to a Note Track.
type ImportMIDI struct{ scriptable }

// ImportRaw imports an uncompressed audio file without relying on headers.
type ImportRaw struct{ scriptable }

func init() {
	register(&New{}, "Create a new empty project window.")
	registerAs(&Open{}, "OpenProject2", "Open a project file.")
	register(&Close{}, "Close the current project window.")
	register(&PageSetup{}, "Open the Page Setup dialog.")
	register(&Print{}, "Print all waveforms in the current project.")
	register(&Exit{}, "Close all project windows and exit Audacity.")
	register(&Save{}, "Save the current project.")
	register(&SaveAs{}, "Save the project under a different name or location.")
	register(&SaveCopy{}, "Save a copy of the current project.")
	register(&SaveCompressed{}, "Save the project compressed.")
	register(&SaveProject{}, "Open the save-project submenu.")
	register(&ExportAudio{}, "Export audio in various formats.")
	register(&ExportLabels{}, "Export audio at labels to files.")
	register(&ExportMIDI{}, "Export note tracks to a MIDI file.")
	register(&ImportAudio{}, "Import a file as a new track.")
	register(&ImportLabels{}, "Import a labels text file.")
	register(&ImportMIDI{}, "Import a MIDI or Allegro file.")
	register(&ImportRaw{}, "Import headerless raw audio data.")
}
