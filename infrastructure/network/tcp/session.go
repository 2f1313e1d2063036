// Package tcp implements C3: binding-and-accepting (host) or connecting
// (client) on the fixed port the protocol always uses, since the two ends
// never exchange port numbers.
package tcp

import (
	"context"
	"fmt"
	"net"

	"github.com/samir0909/flyingcarpet/application"
)

// Port is the fixed TCP port both ends agree on without negotiation.
const Port = 3290

// Listen binds 0.0.0.0:Port, tells the UI it is waiting, accepts exactly
// one inbound connection, and discards its address. The listener is
// closed before returning, successfully or not: only the single accepted
// connection is kept.
func Listen(ctx context.Context, ui application.UI) (net.Conn, error) {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", fmt.Sprintf("0.0.0.0:%d", Port))
	if err != nil {
		return nil, fmt.Errorf("listen on port %d: %w", Port, err)
	}
	defer func() { _ = ln.Close() }()

	ui.Output("waiting for connection...")

	type acceptResult struct {
		conn net.Conn
		err  error
	}
	result := make(chan acceptResult, 1)
	go func() {
		conn, err := ln.Accept()
		result <- acceptResult{conn, err}
	}()

	select {
	case <-ctx.Done():
		_ = ln.Close()
		<-result // let Accept's goroutine unblock on the now-closed listener
		return nil, ctx.Err()
	case r := <-result:
		if r.err != nil {
			return nil, fmt.Errorf("accept on port %d: %w", Port, r.err)
		}
		return r.conn, nil
	}
}

// Dial resolves gateway:Port and connects to it.
func Dial(ctx context.Context, gateway string) (net.Conn, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", fmt.Sprintf("%s:%d", gateway, Port))
	if err != nil {
		return nil, fmt.Errorf("connect to %s:%d: %w", gateway, Port, err)
	}
	return conn, nil
}
