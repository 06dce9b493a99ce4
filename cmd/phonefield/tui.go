package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"phonefield/internal/config"
	"phonefield/internal/log"
	"phonefield/internal/tui"
	"phonefield/internal/watch"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive phone input",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The render loop owns stdout; logs go to a file when one
			// is configured, otherwise they are discarded.
			if cfg.Settings.LogFile != "" {
				f, err := os.OpenFile(cfg.Settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("cannot open log file: %w", err)
				}
				defer f.Close()
				log.SetOutput(f)
			} else {
				devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
				if err == nil {
					defer devnull.Close()
					log.SetOutput(devnull)
				}
			}

			configPath := cfgFile
			if configPath == "" {
				if p, err := config.DefaultPath(); err == nil {
					configPath = p
				}
			}

			var reloads <-chan struct{}
			if configPath != "" {
				if w, err := watch.New(configPath); err == nil {
					w.Start()
					defer w.Stop()
					reloads = w.Reloads()
				} else {
					log.Debugf("config watcher unavailable: %v", err)
				}
			}

			m := tui.New(cfg, configPath, reloads)
			p := tea.NewProgram(m)
			_, err := p.Run()
			return err
		},
	}
}
