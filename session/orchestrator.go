// Package session implements the session orchestrator: it drives key
// derivation, hotspot setup, TCP establishment, handshake, and file
// streaming in order, and guarantees teardown of the external hotspot and
// socket on every exit path.
package session

import (
	"context"
	"fmt"
	"net"

	"golang.org/x/sync/errgroup"

	"github.com/samir0909/flyingcarpet/application"
	coreerrors "github.com/samir0909/flyingcarpet/domain/errors"
	"github.com/samir0909/flyingcarpet/domain/mode"
	"github.com/samir0909/flyingcarpet/domain/peer"
	"github.com/samir0909/flyingcarpet/domain/peerresource"
	domainsession "github.com/samir0909/flyingcarpet/domain/session"
	"github.com/samir0909/flyingcarpet/infrastructure/cryptography/chacha20"
	"github.com/samir0909/flyingcarpet/infrastructure/handshake"
	"github.com/samir0909/flyingcarpet/infrastructure/keyderivation"
	"github.com/samir0909/flyingcarpet/infrastructure/network/tcp"
	"github.com/samir0909/flyingcarpet/infrastructure/transfer"
)

// Orchestrator drives components C1-C5 in order for a single transfer.
// Invariant: at most one active session per process; Run refuses to
// start a second session while one is in flight.
type Orchestrator struct {
	hotspot application.Hotspot
	ui      application.UI
	fs      application.FileSystem
	logger  application.Logger

	slots slots
}

// New builds an Orchestrator wired to its external collaborators.
func New(hotspot application.Hotspot, ui application.UI, fs application.FileSystem, logger application.Logger) *Orchestrator {
	return &Orchestrator{hotspot: hotspot, ui: ui, fs: fs, logger: logger}
}

// Run executes one full session: Init -> HotspotUp -> TcpUp -> VersionOk ->
// ModeOk -> Streaming -> Done, or an error labeled with the phase it broke
// in. Teardown always runs before Run returns, on every exit path.
func (o *Orchestrator) Run(ctx context.Context, passphrase string, platform peer.Platform, iface string, sel mode.Selection) error {
	if !o.slots.tryAcquire() {
		return coreerrors.NewConfiguration("a transfer is already in progress")
	}
	defer o.teardown()

	if passphrase == "" {
		return coreerrors.NewConfiguration("passphrase must not be empty")
	}

	g, gctx := errgroup.WithContext(ctx)
	sessionDone := make(chan struct{})

	g.Go(func() error {
		defer close(sessionDone)
		return o.runPhases(gctx, passphrase, platform, iface, sel)
	})

	// Cancellation watcher: a single cancellation handle (gctx) is held
	// in shared state implicitly by the errgroup; when it fires, closing
	// whatever connection the session task has published unblocks any
	// pending socket read/write so the task can observe the error. It
	// exits without closing anything once the session task has finished.
	g.Go(func() error {
		select {
		case <-gctx.Done():
			if _, _, conn := o.slots.snapshot(); conn != nil {
				_ = conn.Close()
			}
		case <-sessionDone:
		}
		return nil
	})

	return g.Wait()
}

func (o *Orchestrator) runPhases(ctx context.Context, passphrase string, platform peer.Platform, iface string, sel mode.Selection) error {
	phase := domainsession.Init
	o.logger.Printf("session phase: %s", phase)

	derived := keyderivation.Derive(passphrase)
	o.slots.setSSID(derived.SSID)

	resource, err := o.hotspot.ConnectToPeer(ctx, platform, sel.Mode(), derived.SSID, passphrase, iface, o.ui)
	if err != nil {
		return coreerrors.NewExternalSetup(coreerrors.PhaseConnecting, err.Error())
	}
	phase = domainsession.HotspotUp
	o.logger.Printf("session phase: %s", phase)

	conn, err := o.establishTCP(ctx, resource)
	if err != nil {
		return err
	}
	o.slots.setConn(conn)
	phase = domainsession.TcpUp
	o.logger.Printf("session phase: %s", phase)

	result, err := handshake.Run(conn, resource.Listener(), sel.Mode())
	if err != nil {
		return err
	}
	o.logger.Printf("handshake ok, peer version %d", result.PeerVersion)

	// The resource is published to shared state only once the handshake
	// has succeeded: a hotspot whose own start call failed never reaches
	// this line (nothing to store), and until here teardown can still
	// reach the hotspot through the SSID slot alone.
	o.slots.setResource(resource)
	phase = domainsession.VersionOk
	o.logger.Printf("session phase: %s", phase)
	phase = domainsession.ModeOk
	o.logger.Printf("session phase: %s", phase)

	cipher, err := chacha20.New(derived.Key)
	if err != nil {
		return coreerrors.NewConfiguration(fmt.Sprintf("cannot construct cipher: %v", err))
	}

	phase = domainsession.Streaming
	o.logger.Printf("session phase: %s", phase)
	if sel.Mode() == mode.Send {
		if err := transfer.Send(conn, o.fs, cipher, sel.Paths(), o.ui); err != nil {
			return err
		}
	} else {
		if err := transfer.Receive(conn, o.fs, cipher, sel.Destination(), o.ui); err != nil {
			return err
		}
	}

	phase = domainsession.Done
	o.logger.Printf("session phase: %s", phase)
	return nil
}

func (o *Orchestrator) establishTCP(ctx context.Context, resource peerresource.Resource) (net.Conn, error) {
	if resource.Listener() {
		return tcp.Listen(ctx, o.ui)
	}
	gateway, ok := resource.Address()
	if !ok {
		return nil, coreerrors.NewConfiguration("connector peer resource has no gateway address")
	}
	return tcp.Dial(ctx, gateway)
}

// teardown performs, independently and best-effort: closing the TCP
// stream, stopping the external hotspot, clearing the shared slots, and
// re-enabling the UI. It never returns an error and is safe to call
// twice: the second call finds empty slots and a no-op close.
func (o *Orchestrator) teardown() {
	resource, ssid, conn := o.slots.snapshot()

	if conn != nil {
		if err := conn.Close(); err != nil {
			o.logger.Printf("teardown: closing tcp stream: %v", err)
		}
	}

	if msg := o.hotspot.StopHotspot(resource, ssid); msg != "" {
		o.logger.Printf("teardown: %s", msg)
	}

	o.slots.clear()
	o.ui.EnableUI()
}
