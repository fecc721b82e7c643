package main

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tical/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve the browser calculator page",
	Long: `Serves the self-contained calculator web page on the configured
listen address. The page evaluates in the browser; the server only
hands out static content.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logrus.StandardLogger()
		handler := web.Handler(log)

		log.WithField("addr", cfg.ListenAddr).Info("serving calculator page")
		return http.ListenAndServe(cfg.ListenAddr, handler)
	},
}
