// Package peerresource models the WiFi endpoint produced by the (out of
// scope) hotspot collaborator. It is the single source of truth for role
// in every subsequent protocol step: clients connect, hosts accept;
// clients write-then-read during handshakes, hosts read-then-write.
package peerresource

// Resource is a tagged variant. Exhaustive type switches on the concrete
// implementations below are preferred over an IsHost bool field so that
// adding a new platform hotspot kind forces every call site to be
// revisited.
type Resource interface {
	// Listener reports whether this end binds and accepts (true) or
	// connects out (false).
	Listener() bool
	// Describe returns a short human-readable label for logs and UI.
	Describe() string
	// Address returns the gateway host to connect to. ok is false for
	// listener variants, which have no peer address to dial.
	Address() (host string, ok bool)
}

// WifiClient means this process joined a peer's hotspot; the peer is
// reachable at gateway.
type WifiClient struct {
	gateway string
}

func NewWifiClient(gateway string) WifiClient { return WifiClient{gateway: gateway} }

func (w WifiClient) Listener() bool { return false }

func (w WifiClient) Describe() string { return "wifi client of peer hotspot at " + w.gateway }

func (w WifiClient) Address() (string, bool) { return w.gateway, true }

// HostedHotspot means this process is hosting; peers connect to it.
// platformHandle is an opaque identifier the hotspot layer uses to find
// the resource again during teardown (interface name, hotspot object id).
type HostedHotspot struct {
	platformHandle string
}

func NewHostedHotspot(platformHandle string) HostedHotspot {
	return HostedHotspot{platformHandle: platformHandle}
}

func (h HostedHotspot) Listener() bool { return true }

func (h HostedHotspot) Describe() string { return "hosting hotspot " + h.platformHandle }

func (h HostedHotspot) Address() (string, bool) { return "", false }

// JoinedHotspot means this process joined a hotspot but, unlike
// WifiClient, is the side that listens (some platforms report the
// listen/connect role independently of who created the network).
type JoinedHotspot struct{}

func NewJoinedHotspot() JoinedHotspot { return JoinedHotspot{} }

func (j JoinedHotspot) Listener() bool { return true }

func (j JoinedHotspot) Describe() string { return "joined hotspot, listening" }

func (j JoinedHotspot) Address() (string, bool) { return "", false }
