package main

import (
	"github.com/alecthomas/kong"

	"github.com/hourkeep/hourkeep-cli/internal/authapi"
	"github.com/hourkeep/hourkeep-cli/internal/cli"
	"github.com/hourkeep/hourkeep-cli/internal/config"
	"github.com/hourkeep/hourkeep-cli/internal/constants"
	apperrors "github.com/hourkeep/hourkeep-cli/internal/errors"
	"github.com/hourkeep/hourkeep-cli/internal/logger"
	"github.com/hourkeep/hourkeep-cli/internal/timesheet"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"string" default:"~/.config/hourkeep/hourkeep.yaml"`
	Debug   bool   `help:"Enable verbose logging to stderr."`

	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive weekly grid." default:"1"`
	Week     cli.WeekCmd     `cmd:"" help:"Print the reconciled grid for a week."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run connectivity diagnostics."`
	Login    cli.LoginCmd    `cmd:"" help:"Sign in and store the session."`
	Register cli.RegisterCmd `cmd:"" help:"Create an account and sign in."`
	Logout   cli.LogoutCmd   `cmd:"" help:"Clear the stored session."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Weekly timesheet entry for the save/submit record services"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		apperrors.Fatal(err)
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug || cfg.Debug,
		ConfigDir: config.Dir(CLI.Config),
	}); err != nil {
		apperrors.Fatal(err)
	}

	appCtx := &cli.Context{
		Config: cfg,
		Save:   timesheet.NewClient(cfg.SaveServiceURL, constants.SaveServicePrefix),
		Submit: timesheet.NewClient(cfg.SubmitServiceURL, constants.SubmitServicePrefix),
		Auth:   authapi.NewClient(cfg.AuthServiceURL),
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}
