package session

import (
	"net"
	"sync"

	"github.com/samir0909/flyingcarpet/domain/peerresource"
)

// slots holds the mutex-guarded shared state teardown must be able to
// reach from outside the session task: the PeerResource and SSID the
// external hotspot collaborator needs to find and stop the hotspot, and
// the TCP connection to close. Only the orchestrator mutates these;
// external callers (a cancellation handler, a UI re-enable check) only
// ever read them.
type slots struct {
	mu       sync.Mutex
	active   bool
	resource peerresource.Resource
	ssid     string
	conn     net.Conn
}

func (s *slots) tryAcquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return false
	}
	s.active = true
	return true
}

func (s *slots) setSSID(ssid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ssid = ssid
}

func (s *slots) setResource(r peerresource.Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resource = r
}

func (s *slots) setConn(c net.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn = c
}

// snapshot returns a consistent copy of the fields teardown needs.
func (s *slots) snapshot() (resource peerresource.Resource, ssid string, conn net.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resource, s.ssid, s.conn
}

// clear empties the slots, idempotently: calling clear twice in a row
// leaves shared state empty both times.
func (s *slots) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resource = nil
	s.ssid = ""
	s.conn = nil
	s.active = false
}
