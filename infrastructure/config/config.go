// Package config loads the JSON-backed runtime configuration and parses
// command-line arguments into a Request, the way the teacher's PAL
// configuration package separates persisted settings from per-invocation
// arguments.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samir0909/flyingcarpet/domain/mode"
	"github.com/samir0909/flyingcarpet/domain/peer"
)

// UIMode selects which application.UI implementation to dispatch to.
type UIMode string

const (
	// UIAuto picks the TUI on an interactive terminal and the plain CLI
	// otherwise.
	UIAuto UIMode = "auto"
	// UITUI forces the bubbletea progress UI.
	UITUI UIMode = "tui"
	// UICLI forces the plain line-oriented UI.
	UICLI UIMode = "cli"
)

// Valid reports whether m is one of the known UI modes.
func (m UIMode) Valid() bool {
	switch m {
	case UIAuto, UITUI, UICLI:
		return true
	default:
		return false
	}
}

// Settings is the persisted, rarely-changed configuration: values a user
// sets once and expects to carry across runs.
type Settings struct {
	// Interface is the WiFi adapter name to host or join on.
	Interface string `json:"interface"`
	// DialTimeoutSeconds is persisted and loaded with the other settings.
	// Nothing reads it: Dial is bounded only by the session context.
	DialTimeoutSeconds int `json:"dial_timeout_seconds"`
	// UIMode selects the progress UI; see UIAuto/UITUI/UICLI.
	UIMode UIMode `json:"ui_mode"`
}

// DefaultSettings mirrors the teacher's pattern of a hardcoded fallback
// consulted when no file exists yet.
func DefaultSettings() Settings {
	return Settings{Interface: "wlan0", DialTimeoutSeconds: 30, UIMode: UIAuto}
}

// Load reads Settings from path, creating it with DefaultSettings on
// first run the way the teacher's Creator/Resolver pair does.
func Load(path string) (Settings, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s := DefaultSettings()
		if werr := Save(path, s); werr != nil {
			return s, fmt.Errorf("writing default config: %w", werr)
		}
		return s, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var s Settings
	if err := json.Unmarshal(b, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return s, nil
}

// Save persists s to path as indented JSON, creating parent directories
// as needed, with file permissions narrowed to the owner.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, b, 0600)
}

// Request is everything a single invocation needs, resolved from
// command-line arguments: the mode, operands, passphrase, and peer
// platform. It intentionally excludes Settings, which come from disk.
type Request struct {
	Mode       mode.Mode
	Paths      []string
	Dest       string
	Passphrase string
	Platform   peer.Platform
	// UIMode overrides the persisted Settings.UIMode for this invocation
	// when non-empty.
	UIMode UIMode
}

// ParseArgs hand-scans argv the way the teacher's ArgumentResolver does,
// rather than reaching for a flags framework: this CLI's surface is five
// small flags, not a subcommand tree.
//
//	-mode send|receive
//	-passphrase <word-word-word>
//	-peer android|ios|linux|mac|windows
//	-dest <dir>              (receive only)
//	-ui auto|tui|cli         (optional, overrides the persisted setting)
//	<path> [<path> ...]      (send only, trailing positional args)
func ParseArgs(argv []string) (Request, error) {
	var req Request
	var modeStr, peerStr, uiStr string

	i := 0
	for i < len(argv) {
		switch argv[i] {
		case "-mode":
			i++
			if i >= len(argv) {
				return Request{}, fmt.Errorf("-mode requires a value")
			}
			modeStr = argv[i]
		case "-passphrase":
			i++
			if i >= len(argv) {
				return Request{}, fmt.Errorf("-passphrase requires a value")
			}
			req.Passphrase = argv[i]
		case "-peer":
			i++
			if i >= len(argv) {
				return Request{}, fmt.Errorf("-peer requires a value")
			}
			peerStr = argv[i]
		case "-dest":
			i++
			if i >= len(argv) {
				return Request{}, fmt.Errorf("-dest requires a value")
			}
			req.Dest = argv[i]
		case "-ui":
			i++
			if i >= len(argv) {
				return Request{}, fmt.Errorf("-ui requires a value")
			}
			uiStr = argv[i]
		default:
			req.Paths = append(req.Paths, argv[i])
		}
		i++
	}

	if uiStr != "" {
		req.UIMode = UIMode(uiStr)
		if !req.UIMode.Valid() {
			return Request{}, fmt.Errorf("-ui must be one of auto/tui/cli, got %q", uiStr)
		}
	}

	switch modeStr {
	case "send":
		req.Mode = mode.Send
	case "receive":
		req.Mode = mode.Receive
	default:
		return Request{}, fmt.Errorf("-mode must be %q or %q, got %q", "send", "receive", modeStr)
	}

	req.Platform = peer.Platform(peerStr)
	if !req.Platform.Valid() {
		return Request{}, fmt.Errorf("-peer must be one of android/ios/linux/mac/windows, got %q", peerStr)
	}

	if req.Passphrase == "" {
		return Request{}, fmt.Errorf("-passphrase is required")
	}

	return req, nil
}

// Selection converts Request's mode-specific operands into a mode.Selection.
func (r Request) Selection() (mode.Selection, error) {
	if r.Mode == mode.Send {
		return mode.NewSend(r.Paths)
	}
	return mode.NewReceive(r.Dest)
}

// ResolveUIMode returns r.UIMode when the invocation set one, falling back
// to the persisted settings otherwise.
func (r Request) ResolveUIMode(settings Settings) UIMode {
	if r.UIMode != "" {
		return r.UIMode
	}
	if settings.UIMode != "" {
		return settings.UIMode
	}
	return UIAuto
}
