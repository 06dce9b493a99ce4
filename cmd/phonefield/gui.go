package main

import (
	"github.com/spf13/cobra"

	"phonefield/internal/gui"
)

func guiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Run the desktop rendition of the phone input",
		Run: func(cmd *cobra.Command, args []string) {
			gui.NewApp(cfg).Run()
		},
	}
}
