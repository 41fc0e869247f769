package types

// Mode represents the current mode of the TUI
type Mode int

const (
	// Normal is the default mode for note navigation
	Normal Mode = iota
	// EditFolders is the modal folder-list editor
	EditFolders
)

// String returns the mode label shown in the status bar.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "NORMAL"
	case EditFolders:
		return "FOLDERS"
	default:
		return "UNKNOWN"
	}
}

// Position is a snapshot of the cursor across all granularity levels.
type Position struct {
	Note int
	Line int
	Word int
	Char int
}

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	Mode() Mode
	ShowHelp() bool
	Width() int
	ActiveFolder() string
	CurrentNote() (NoteFile, bool)
	NoteCount() int
	Lines() []string
	Position() Position
	Announcement() string
	AnnouncementFailed() bool
}
