package main

import (
	"context"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/rxtech-lab/argo-console/internal/config"
	"github.com/rxtech-lab/argo-console/internal/version"
)

func logviewAction(_ context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	dir := cfg.LogDir
	if cmd.IsSet("dir") {
		dir = cmd.String("dir")
	}

	p := tea.NewProgram(NewModel(dir), tea.WithAltScreen())

	// Without a watcher the view still works; r reloads by hand.
	if w, err := watchDir(dir, p.Send); err == nil {
		defer w.Close()
	}

	_, err = p.Run()

	return err
}

func main() {
	cmd := &cli.Command{
		Name:    "logview",
		Usage:   "Browse the per-symbol and per-source log files",
		Version: version.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file",
			},
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Log directory, overrides the config file",
			},
		},
		Action: logviewAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
