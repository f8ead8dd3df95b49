package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/kardash/internal/config"
	"github.com/MKhiriev/kardash/internal/gateway"
	"github.com/MKhiriev/kardash/internal/logger"
	"github.com/MKhiriev/kardash/internal/service"
	"github.com/MKhiriev/kardash/internal/tui"
	"github.com/MKhiriev/kardash/models"
)

var _ Client = (*App)(nil)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

type App struct {
	services *service.ClientServices
	ui       UI
	tokens   gateway.TokenProvider
	workers  config.ClientWorkers
	out      io.Writer
	copyText func(string) error
	logger   *logger.Logger
	build    models.AppBuildInfo

	commands map[string]command
}

// NewApp wires the sub-commands. ui may be nil, in which case the "ui"
// sub-command fails with ErrNoUI.
func NewApp(services *service.ClientServices, ui UI, tokens gateway.TokenProvider, cfg config.ClientWorkers, out io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client: no services")
	}
	if tokens == nil {
		return nil, errors.New("client: no token provider")
	}

	a := &App{
		services: services,
		ui:       ui,
		tokens:   tokens,
		workers:  cfg,
		out:      out,
		copyText: clipboard.WriteAll,
		logger:   logger,
	}
	a.commands = map[string]command{
		"login":         {usage: "login -email EMAIL -password PASSWORD", run: a.login},
		"register":      {usage: "register -email EMAIL -password PASSWORD -name NAME [-role freelancer|admin]", run: a.register},
		"logout":        {usage: "logout", run: a.logout},
		"whoami":        {usage: "whoami [-refresh]", run: a.whoami},
		"profile":       {usage: "profile [-name NAME] [-skills TAGS] [-rate N]", run: a.profile},
		"token":         {usage: "token [-copy]", run: a.token},
		"dashboard":     {usage: "dashboard [-search TEXT] [-sort budget-high|budget-low] [-urgent]", run: a.dashboard},
		"earnings":      {usage: "earnings [-period daily|weekly|monthly]", run: a.earnings},
		"jobs":          {usage: "jobs get ID | jobs apply ID -proposal TEXT -bid N | jobs deliver ID -notes TEXT -files URL", run: a.jobs},
		"admin":         {usage: "admin overview|stats|activate-user ID|deactivate-user ID|create-job|update-job ID|delete-job ID|complete ID|create-bot|activate-bot ID|pause-bot ID|bot-stats ...", run: a.admin},
		"notifications": {usage: "notifications [list [-unread] | count | read ID | read-all]", run: a.notifications},
		"watch":         {usage: "watch", run: a.watch},
		"ui":            {usage: "ui", run: a.runUI},
		"version":       {usage: "version", run: a.version},
	}

	return a, nil
}

// Run executes the sub-command named by args[0]. Without arguments the
// terminal UI is started.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.runUI(ctx, nil)
	}

	name, rest := args[0], args[1:]
	if name == "help" || name == "-h" || name == "--help" {
		a.printUsage()
		return nil
	}

	cmd, ok := a.commands[name]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	a.logger.Debug().Str("command", name).Msg("running command")
	if err := cmd.run(ctx, rest); err != nil {
		if errors.Is(err, ErrUsage) {
			return fmt.Errorf("%w\nusage: kardash %s", err, cmd.usage)
		}
		return err
	}
	return nil
}

// SetBuildInfo sets what the "version" command prints.
func (a *App) SetBuildInfo(info models.AppBuildInfo) {
	a.build = info
}

func (a *App) version(_ context.Context, args []string) error {
	if err := parseFlags(newFlagSet("version"), args); err != nil {
		return err
	}
	_, err := fmt.Fprint(a.out, a.build.String())
	return err
}

func (a *App) runUI(ctx context.Context, _ []string) error {
	if a.ui == nil {
		return ErrNoUI
	}

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	slices.Sort(names)

	var b strings.Builder
	b.WriteString("usage: kardash [flags] <command> [args]\n\ncommands:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %s\n", a.commands[name].usage)
	}
	fmt.Fprint(a.out, b.String())
}
