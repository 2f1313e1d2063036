// Package handshake implements C4: the version and mode legs that run
// immediately after the TCP session is established. Both legs preserve
// the connector-writes-first asymmetry verbatim for wire compatibility,
// since it is what avoids a mutual-read deadlock without timeouts.
package handshake

import (
	"github.com/samir0909/flyingcarpet/domain/mode"

	"github.com/samir0909/flyingcarpet/application"
)

// Result carries what the handshake learned about the peer, for logging.
type Result struct {
	PeerVersion uint64
}

// Run performs the version leg followed by the mode leg. isListener
// selects which half of each leg this side performs (see package C2 role
// semantics); local is this side's chosen transfer direction.
func Run(conn application.ConnectionAdapter, isListener bool, local mode.Mode) (Result, error) {
	peerVersion, err := Version(conn, isListener)
	if err != nil {
		return Result{}, err
	}

	if err := Mode(conn, isListener, local); err != nil {
		return Result{PeerVersion: peerVersion}, err
	}

	return Result{PeerVersion: peerVersion}, nil
}
