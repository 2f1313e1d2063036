package application

import "io"

// ConnectionAdapter is the narrow read/write/close surface the handshake
// and streaming protocols need from the TCP session. Mirrors the
// teacher's application.ConnectionAdapter: production code hands it a
// net.Conn, tests hand it a net.Pipe or bytes-backed stub.
type ConnectionAdapter interface {
	io.ReadWriteCloser
}
