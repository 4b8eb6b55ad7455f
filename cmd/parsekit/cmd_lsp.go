package main

import (
	"github.com/dhamidi/parsekit/config"
	"github.com/dhamidi/parsekit/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a configuration file the server looks for one in
			// the workspace root sent by the client.
			var cfg *config.Config
			if a.loaded {
				cfg = a.cfg
			}
			return lsp.NewServer(version, cfg).RunStdio()
		},
	}
}
