package config

import (
	"path/filepath"
	"testing"

	"github.com/samir0909/flyingcarpet/domain/mode"
	"github.com/samir0909/flyingcarpet/domain/peer"
)

func TestParseArgs_Send(t *testing.T) {
	req, err := ParseArgs([]string{"-mode", "send", "-passphrase", "hunter22hunter22", "-peer", "linux", "/tmp/a.txt", "/tmp/b.txt"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if req.Mode != mode.Send {
		t.Fatalf("Mode = %v, want Send", req.Mode)
	}
	if req.Platform != peer.Linux {
		t.Fatalf("Platform = %v, want Linux", req.Platform)
	}
	if len(req.Paths) != 2 {
		t.Fatalf("Paths = %v, want 2 entries", req.Paths)
	}
}

func TestParseArgs_Receive(t *testing.T) {
	req, err := ParseArgs([]string{"-mode", "receive", "-passphrase", "p", "-peer", "mac", "-dest", "/tmp/out"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	sel, err := req.Selection()
	if err != nil {
		t.Fatalf("Selection: %v", err)
	}
	if sel.Destination() != "/tmp/out" {
		t.Fatalf("Destination = %q, want /tmp/out", sel.Destination())
	}
}

func TestParseArgs_RejectsBadPlatform(t *testing.T) {
	_, err := ParseArgs([]string{"-mode", "send", "-passphrase", "p", "-peer", "commodore64", "f.txt"})
	if err == nil {
		t.Fatal("expected an error for an unknown platform")
	}
}

func TestParseArgs_RequiresPassphrase(t *testing.T) {
	_, err := ParseArgs([]string{"-mode", "send", "-peer", "linux", "f.txt"})
	if err == nil {
		t.Fatal("expected an error for a missing passphrase")
	}
}

func TestParseArgs_UIFlag(t *testing.T) {
	req, err := ParseArgs([]string{"-mode", "send", "-passphrase", "p", "-peer", "linux", "-ui", "tui", "f.txt"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if req.UIMode != UITUI {
		t.Fatalf("UIMode = %v, want %v", req.UIMode, UITUI)
	}
}

func TestParseArgs_RejectsBadUIMode(t *testing.T) {
	_, err := ParseArgs([]string{"-mode", "send", "-passphrase", "p", "-peer", "linux", "-ui", "holographic", "f.txt"})
	if err == nil {
		t.Fatal("expected an error for an unknown -ui value")
	}
}

func TestRequest_ResolveUIMode(t *testing.T) {
	cases := []struct {
		name     string
		req      Request
		settings Settings
		want     UIMode
	}{
		{"request override wins", Request{UIMode: UICLI}, Settings{UIMode: UITUI}, UICLI},
		{"falls back to settings", Request{}, Settings{UIMode: UITUI}, UITUI},
		{"falls back to auto", Request{}, Settings{}, UIAuto},
	}
	for _, c := range cases {
		if got := c.req.ResolveUIMode(c.settings); got != c.want {
			t.Errorf("%s: ResolveUIMode() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestLoadSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load (create default): %v", err)
	}
	if loaded != DefaultSettings() {
		t.Fatalf("Load = %+v, want defaults %+v", loaded, DefaultSettings())
	}

	custom := Settings{Interface: "wlan1", DialTimeoutSeconds: 5}
	if err := Save(path, custom); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load (after save): %v", err)
	}
	if reloaded != custom {
		t.Fatalf("reloaded = %+v, want %+v", reloaded, custom)
	}
}
