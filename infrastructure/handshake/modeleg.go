package handshake

import (
	coreerrors "github.com/samir0909/flyingcarpet/domain/errors"
	"github.com/samir0909/flyingcarpet/domain/mode"

	"github.com/samir0909/flyingcarpet/application"
)

// Mode runs the mode leg. The connector writes its mode code first and
// then reads the host's verdict. The host reads the peer's code, compares
// it to its own, and writes 1 (valid: one sends, one receives) or 0
// (invalid: both chose the same direction).
func Mode(conn application.ConnectionAdapter, isListener bool, local mode.Mode) error {
	if isListener {
		peerCode, err := readU64(conn)
		if err != nil {
			return coreerrors.NewNetwork(coreerrors.PhaseConfirmingMode, err)
		}
		peer := mode.FromCode(peerCode)

		verdict := uint64(1)
		if peer == local {
			verdict = 0
		}
		if writeErr := writeU64(conn, verdict); writeErr != nil {
			return coreerrors.NewNetwork(coreerrors.PhaseConfirmingMode, writeErr)
		}
		if verdict == 0 {
			return mode.NewBothEndsSameMode(local)
		}
		return nil
	}

	if err := writeU64(conn, local.Code()); err != nil {
		return coreerrors.NewNetwork(coreerrors.PhaseConfirmingMode, err)
	}
	verdict, err := readU64(conn)
	if err != nil {
		return coreerrors.NewNetwork(coreerrors.PhaseConfirmingMode, err)
	}
	if verdict == 0 {
		return mode.NewBothEndsSameMode(local)
	}
	return nil
}
