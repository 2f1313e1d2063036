// Package hotspot adapts the out-of-scope platform hotspot and BLE
// credential exchange into the application.Hotspot port. The spec marks
// Bluetooth pairing and the per-OS hotspot APIs themselves out of scope;
// this package carries the seam those would plug into, and ships a
// loopback-WiFi stand-in good enough to run a transfer between two
// processes on the same host (or two hosts already on one network).
package hotspot

import (
	"context"
	"fmt"

	"github.com/samir0909/flyingcarpet/application"
	"github.com/samir0909/flyingcarpet/domain/mode"
	"github.com/samir0909/flyingcarpet/domain/peer"
	"github.com/samir0909/flyingcarpet/domain/peerresource"
)

// Loopback is an application.Hotspot that never touches platform WiFi
// APIs: it treats "joining a peer's hotspot" as "dial the address the
// caller already has" and "hosting" as "bind locally and wait". It is the
// seam a real Android/iOS/Linux/macOS/Windows hotspot driver replaces.
type Loopback struct {
	// PeerAddress is the gateway to dial when acting as a WiFi client.
	// Left empty, this process always hosts.
	PeerAddress string
}

// ConnectToPeer reports a HostedHotspot resource when PeerAddress is
// empty, or a WifiClient resource pointed at PeerAddress otherwise. Real
// implementations additionally exchange ssid/passphrase over BLE and wait
// for the OS to report the WiFi link is up before returning.
func (l Loopback) ConnectToPeer(ctx context.Context, p peer.Platform, m mode.Mode, ssid, passphrase, iface string, ui application.UI) (peerresource.Resource, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("unknown peer platform %q", p)
	}

	if l.PeerAddress == "" {
		ui.Output(fmt.Sprintf("hosting hotspot %s on %s", ssid, iface))
		return peerresource.NewHostedHotspot(iface), nil
	}

	ui.Output(fmt.Sprintf("joining peer hotspot %s", ssid))
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return peerresource.NewWifiClient(l.PeerAddress), nil
}

// StopHotspot is a no-op beyond logging: nothing platform-specific was
// ever started to tear down.
func (l Loopback) StopHotspot(resource peerresource.Resource, ssid string) string {
	if resource == nil {
		return ""
	}
	return fmt.Sprintf("torn down %s (ssid %s)", resource.Describe(), ssid)
}

// WifiInterfaces reports no real interfaces; a platform implementation
// would enumerate adapters capable of hosting an access point.
func (l Loopback) WifiInterfaces() ([]string, error) {
	return nil, nil
}
