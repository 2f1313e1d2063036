package transfer

import (
	"github.com/samir0909/flyingcarpet/application"
	coreerrors "github.com/samir0909/flyingcarpet/domain/errors"
)

// Receive drives the receiver half of C5, mirroring Send frame for
// frame. It validates every relative path before touching the
// filesystem, rejects parent-directory references, and after the last
// file's terminator sends the single completion acknowledgement the
// sender is blocked on.
func Receive(conn application.ConnectionAdapter, fs application.FileSystem, cs application.CryptographyService, destDir string, ui application.UI) error {
	n, err := readU64(conn)
	if err != nil {
		return coreerrors.NewNetwork(coreerrors.PhaseReceivingFile, err)
	}

	for i := uint64(0); i < n; i++ {
		if err := receiveFile(conn, fs, cs, destDir, ui); err != nil {
			return err
		}
		if i == n-1 {
			if err := writeU64(conn, 1); err != nil {
				return coreerrors.NewNetwork(coreerrors.PhaseReceivingFile, err)
			}
		}
	}

	return nil
}

func receiveFile(conn application.ConnectionAdapter, fs application.FileSystem, cs application.CryptographyService, destDir string, ui application.UI) error {
	rel, err := readString(conn, maxPathFrameLen)
	if err != nil {
		return coreerrors.NewNetwork(coreerrors.PhaseReceivingFile, err)
	}
	if err := validateRelativePath(rel); err != nil {
		return err
	}

	size, err := readU64(conn)
	if err != nil {
		return coreerrors.NewNetwork(coreerrors.PhaseReceivingFile, err)
	}

	writer, err := fs.CreateForWrite(destDir, rel)
	if err != nil {
		return coreerrors.NewConfiguration("cannot create " + rel + ": " + err.Error())
	}
	defer writer.Close()

	ui.ShowProgressBar()

	var received int64
	for {
		ciphertext, isTerminator, err := readCiphertextFrame(conn, maxCiphertextFrameLen)
		if err != nil {
			return coreerrors.NewNetwork(coreerrors.PhaseReceivingFile, err)
		}
		if isTerminator {
			break
		}

		plaintext, decErr := cs.Decrypt(ciphertext)
		if decErr != nil {
			return decErr
		}
		if _, writeErr := writer.Write(plaintext); writeErr != nil {
			return coreerrors.NewConfiguration("write error for " + rel + ": " + writeErr.Error())
		}
		received += int64(len(plaintext))
		ui.UpdateProgressBar(clampPercent(received, int64(size)))
	}

	return nil
}
