package handshake

import (
	"encoding/binary"
	"fmt"
	"io"
)

// writeU64 and readU64 are the single wire primitive of the handshake
// protocol: every handshake field is a fixed-width big-endian u64,
// transmitted in the clear (the link is already restricted to two
// authenticated endpoints by the hotspot passphrase).
func writeU64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("write u64: %w", err)
	}
	return nil
}

func readU64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("read u64: %w", err)
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}
