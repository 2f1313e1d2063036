package application

import (
	"context"

	"github.com/samir0909/flyingcarpet/domain/mode"
	"github.com/samir0909/flyingcarpet/domain/peer"
	"github.com/samir0909/flyingcarpet/domain/peerresource"
)

// Hotspot is the external, OS-specific collaborator that starts or joins a
// temporary WiFi network and reports back the resource describing it. Its
// internals (platform hotspot APIs, BLE credential exchange) are out of
// scope for the core; the core only ever sees this interface.
type Hotspot interface {
	// ConnectToPeer starts hosting or joins a peer's hotspot depending on
	// peer and mode, and blocks until the link is ready (or ctx is
	// canceled). ssid and passphrase are the values derived by C1.
	ConnectToPeer(ctx context.Context, p peer.Platform, m mode.Mode, ssid, passphrase, iface string, ui UI) (peerresource.Resource, error)
	// StopHotspot tears down whatever ConnectToPeer started. It is
	// best-effort: implementations should not panic, and a failure here
	// must never block the rest of teardown.
	StopHotspot(resource peerresource.Resource, ssid string) string
	// WifiInterfaces lists local interface names a hotspot could bind to.
	WifiInterfaces() ([]string, error)
}
