// Package presentation wires configuration, the external hotspot
// collaborator, a UI, and the filesystem into a session.Orchestrator and
// runs one transfer, the way the teacher's presentation/runners packages
// assemble a Dependencies container before handing off to the core.
package presentation

import (
	"context"
	"fmt"

	"github.com/samir0909/flyingcarpet/application"
	"github.com/samir0909/flyingcarpet/infrastructure/config"
	"github.com/samir0909/flyingcarpet/infrastructure/filesystem"
	"github.com/samir0909/flyingcarpet/infrastructure/hotspot"
	"github.com/samir0909/flyingcarpet/infrastructure/logging"
	"github.com/samir0909/flyingcarpet/session"
)

// Dependencies is the assembled set of collaborators a Run needs. It
// exists separately from Run's arguments so tests can substitute fakes
// for ui/hotspot without touching argument parsing.
type Dependencies struct {
	UI      application.UI
	Hotspot application.Hotspot
	FS      application.FileSystem
	Logger  application.Logger
}

// NewDependencies assembles production collaborators: the OS filesystem,
// the standard logger, and a loopback hotspot adapter pointed at peerAddr
// (empty means host, non-empty means join).
func NewDependencies(ui application.UI, peerAddr string) Dependencies {
	return Dependencies{
		UI:      ui,
		Hotspot: hotspot.Loopback{PeerAddress: peerAddr},
		FS:      filesystem.OS{},
		Logger:  logging.New(),
	}
}

// Run builds an Orchestrator from deps and req and executes one transfer.
func Run(ctx context.Context, deps Dependencies, req config.Request, settings config.Settings) error {
	sel, err := req.Selection()
	if err != nil {
		return fmt.Errorf("resolving selection: %w", err)
	}

	o := session.New(deps.Hotspot, deps.UI, deps.FS, deps.Logger)
	return o.Run(ctx, req.Passphrase, req.Platform, settings.Interface, sel)
}
