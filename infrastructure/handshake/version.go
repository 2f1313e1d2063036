package handshake

import (
	coreerrors "github.com/samir0909/flyingcarpet/domain/errors"

	"github.com/samir0909/flyingcarpet/application"
)

// MajorVersion is this build's protocol version, exchanged verbatim over
// the wire during the version leg.
const MajorVersion uint64 = 9

// minCompatibleVersion is the compatibility table referenced by the
// design: the arbiter (the side holding the higher version) accepts any
// peer at or above this floor.
const minCompatibleVersion uint64 = 8

// isCompatible is the arbiter's compatibility decision for a peer at the
// given version.
func isCompatible(peerVersion uint64) bool {
	return peerVersion >= minCompatibleVersion
}

// Version runs the version leg. The connector writes its version first
// and then reads the host's; the host reads first and then writes.
// Afterwards, whichever side holds the strictly higher version acts as
// arbiter and writes a compatibility verdict that the other side reads;
// if versions are equal no verdict is exchanged.
func Version(conn application.ConnectionAdapter, isListener bool) (peerVersion uint64, err error) {
	if isListener {
		peerVersion, err = readU64(conn)
		if err != nil {
			return 0, coreerrors.NewNetwork(coreerrors.PhaseConfirmingVersion, err)
		}
		if writeErr := writeU64(conn, MajorVersion); writeErr != nil {
			return 0, coreerrors.NewNetwork(coreerrors.PhaseConfirmingVersion, writeErr)
		}
	} else {
		if writeErr := writeU64(conn, MajorVersion); writeErr != nil {
			return 0, coreerrors.NewNetwork(coreerrors.PhaseConfirmingVersion, writeErr)
		}
		peerVersion, err = readU64(conn)
		if err != nil {
			return 0, coreerrors.NewNetwork(coreerrors.PhaseConfirmingVersion, err)
		}
	}

	switch {
	case peerVersion == MajorVersion:
		// Equal versions: no verdict is exchanged, protocol advances.
		return peerVersion, nil

	case MajorVersion > peerVersion:
		// We are the arbiter.
		verdict := uint64(0)
		if isCompatible(peerVersion) {
			verdict = 1
		}
		if writeErr := writeU64(conn, verdict); writeErr != nil {
			return 0, coreerrors.NewNetwork(coreerrors.PhaseConfirmingVersion, writeErr)
		}
		if verdict == 0 {
			return peerVersion, coreerrors.NewProtocol(coreerrors.PhaseConfirmingVersion, "peer version is incompatible, please update")
		}
		return peerVersion, nil

	default:
		// Peer is the arbiter; we read its verdict.
		verdict, readErr := readU64(conn)
		if readErr != nil {
			return 0, coreerrors.NewNetwork(coreerrors.PhaseConfirmingVersion, readErr)
		}
		if verdict == 0 {
			return peerVersion, coreerrors.NewProtocol(coreerrors.PhaseConfirmingVersion, "please update: your version is incompatible with your peer's")
		}
		return peerVersion, nil
	}
}
