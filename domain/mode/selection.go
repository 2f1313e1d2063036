package mode

// Selection binds a Mode to its operands: the local file paths to send, or
// the destination directory to receive into. Exactly one side is populated.
type Selection struct {
	mode        Mode
	sendPaths   []string
	receiveRoot string
}

// NewSend builds a Send selection. paths must be non-empty.
func NewSend(paths []string) (Selection, error) {
	if len(paths) == 0 {
		return Selection{}, NewNoFilesSelected()
	}
	cp := make([]string, len(paths))
	copy(cp, paths)
	return Selection{mode: Send, sendPaths: cp}, nil
}

// NewReceive builds a Receive selection into dir.
func NewReceive(dir string) (Selection, error) {
	if dir == "" {
		return Selection{}, NewNoDestinationProvided()
	}
	return Selection{mode: Receive, receiveRoot: dir}, nil
}

func (s Selection) Mode() Mode { return s.mode }

// Paths returns the selected files; only meaningful when Mode() == Send.
func (s Selection) Paths() []string { return s.sendPaths }

// Destination returns the receive directory; only meaningful when Mode() == Receive.
func (s Selection) Destination() string { return s.receiveRoot }
