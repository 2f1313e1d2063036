// Package transfer implements C5: the framed, chunked, authenticated file
// streaming protocol that runs once the handshake has agreed on version
// and direction.
package transfer

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ChunkSize is the plaintext size of every chunk but the last, which may
// be shorter (but not zero unless the file itself is empty).
const ChunkSize = 1_000_000

// writeU64/readU64 frame the u64 fields of the per-session and per-file
// headers (N, path_len, file_size) and the u64 end-of-session
// acknowledgement.
func writeU64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func readU64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

// writeString emits a u64 length followed by the UTF-8 bytes of s, used
// for the per-file relative path.
func writeString(w io.Writer, s string) error {
	if err := writeU64(w, uint64(len(s))); err != nil {
		return err
	}
	_, err := w.Write([]byte(s))
	return err
}

func readString(r io.Reader, maxLen uint64) (string, error) {
	n, err := readU64(r)
	if err != nil {
		return "", err
	}
	if n > maxLen {
		return "", fmt.Errorf("string frame length %d exceeds maximum %d", n, maxLen)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// writeCiphertextFrame emits a u64 ciphertext_len followed by the
// ciphertext+tag bytes.
func writeCiphertextFrame(w io.Writer, ciphertext []byte) error {
	if err := writeU64(w, uint64(len(ciphertext))); err != nil {
		return err
	}
	if len(ciphertext) == 0 {
		return nil
	}
	_, err := w.Write(ciphertext)
	return err
}

// writeTerminatorFrame emits the distinguished end-of-file frame: a u64
// ciphertext_len of zero. The receiver recognizes this without invoking
// AEAD decryption on it.
func writeTerminatorFrame(w io.Writer) error {
	return writeU64(w, 0)
}

// readCiphertextFrame reads one frame. isTerminator is true when the
// frame's length was zero, in which case ciphertext is nil.
func readCiphertextFrame(r io.Reader, maxLen uint64) (ciphertext []byte, isTerminator bool, err error) {
	n, err := readU64(r)
	if err != nil {
		return nil, false, err
	}
	if n == 0 {
		return nil, true, nil
	}
	if n > maxLen {
		return nil, false, fmt.Errorf("ciphertext frame length %d exceeds maximum %d", n, maxLen)
	}
	buf := make([]byte, n)
	if _, readErr := io.ReadFull(r, buf); readErr != nil {
		return nil, false, readErr
	}
	return buf, false, nil
}
