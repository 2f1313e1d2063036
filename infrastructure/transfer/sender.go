package transfer

import (
	"io"
	"path/filepath"

	"github.com/samir0909/flyingcarpet/application"
	coreerrors "github.com/samir0909/flyingcarpet/domain/errors"
)

// Send drives the sender half of C5: one u64 N, then for each file a
// relative-path frame, a size frame, a run of encrypted chunk frames, and
// a terminator. After the last file it blocks for the receiver's
// completion acknowledgement, which prevents the caller from tearing down
// the hotspot while the receiver is still flushing.
func Send(conn application.ConnectionAdapter, fs application.FileSystem, cs application.CryptographyService, paths []string, ui application.UI) error {
	if err := writeU64(conn, uint64(len(paths))); err != nil {
		return coreerrors.NewNetwork(coreerrors.PhaseSendingFile, err)
	}

	ancestor := commonAncestor(paths)

	for _, p := range paths {
		if err := sendFile(conn, fs, cs, ancestor, p, ui); err != nil {
			return err
		}
	}

	ack, err := readU64(conn)
	if err != nil {
		return coreerrors.NewNetwork(coreerrors.PhaseSendingFile, err)
	}
	if ack != 1 {
		return coreerrors.NewProtocol(coreerrors.PhaseSendingFile, "unexpected completion acknowledgement")
	}
	return nil
}

func sendFile(conn application.ConnectionAdapter, fs application.FileSystem, cs application.CryptographyService, ancestor, path string, ui application.UI) error {
	rel, err := filepath.Rel(ancestor, path)
	if err != nil {
		return coreerrors.NewConfiguration("cannot compute relative path for " + path + ": " + err.Error())
	}
	rel = filepath.ToSlash(rel)

	if err := writeString(conn, rel); err != nil {
		return coreerrors.NewNetwork(coreerrors.PhaseSendingFile, err)
	}

	reader, err := fs.OpenRead(path)
	if err != nil {
		return coreerrors.NewConfiguration("cannot open " + path + ": " + err.Error())
	}
	defer reader.Close()

	size, err := reader.Size()
	if err != nil {
		return coreerrors.NewConfiguration("cannot stat " + path + ": " + err.Error())
	}
	if err := writeU64(conn, uint64(size)); err != nil {
		return coreerrors.NewNetwork(coreerrors.PhaseSendingFile, err)
	}

	ui.ShowProgressBar()

	var sent int64
	buf := make([]byte, ChunkSize)
	for {
		n, readErr := io.ReadFull(reader, buf)
		if n > 0 {
			ciphertext, encErr := cs.Encrypt(buf[:n])
			if encErr != nil {
				return coreerrors.NewProtocol(coreerrors.PhaseSendingFile, "encryption failed: "+encErr.Error())
			}
			if err := writeCiphertextFrame(conn, ciphertext); err != nil {
				return coreerrors.NewNetwork(coreerrors.PhaseSendingFile, err)
			}
			sent += int64(n)
			ui.UpdateProgressBar(clampPercent(sent, size))
		}
		if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
			break
		}
		if readErr != nil {
			return coreerrors.NewConfiguration("read error for " + path + ": " + readErr.Error())
		}
	}

	if err := writeTerminatorFrame(conn); err != nil {
		return coreerrors.NewNetwork(coreerrors.PhaseSendingFile, err)
	}

	return nil
}

func clampPercent(sent, size int64) int {
	if size <= 0 {
		return 100
	}
	percent := int(sent * 100 / size)
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
