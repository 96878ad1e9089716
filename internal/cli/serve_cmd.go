package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP trigger service",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Server == nil {
				return fmt.Errorf("trigger server is not configured")
			}
			if addr == "" {
				addr = app.ListenAddr
			}
			fmt.Printf("Server running on %s\n", addr)
			return http.ListenAndServe(addr, app.Server.Handler())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from configuration)")

	return cmd
}
