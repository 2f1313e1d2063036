package mode

import "fmt"

// NoFilesSelected is returned when Send mode is requested with an empty path list.
type NoFilesSelected struct{}

func NewNoFilesSelected() NoFilesSelected { return NoFilesSelected{} }

func (NoFilesSelected) Error() string { return "no files selected to send" }

// NoDestinationProvided is returned when Receive mode is requested without a directory.
type NoDestinationProvided struct{}

func NewNoDestinationProvided() NoDestinationProvided { return NoDestinationProvided{} }

func (NoDestinationProvided) Error() string { return "no destination directory provided" }

// BothEndsSameMode is returned by the mode leg of the handshake when both
// peers selected the same direction.
type BothEndsSameMode struct {
	mode Mode
}

func NewBothEndsSameMode(m Mode) BothEndsSameMode { return BothEndsSameMode{mode: m} }

func (b BothEndsSameMode) Error() string {
	return fmt.Sprintf("Both ends of the transfer selected %s", b.mode)
}
