package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tical/app"
	"tical/engine"
	"tical/graph"
	"tical/screen"
)

const (
	screenWidth  = 480
	screenHeight = 320
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "open the desktop graphing calculator",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng := engine.New(cfg.EngineOptions())
		gr := graph.New(eng, cfg.PlotSamples)
		fb := screen.NewFramebuffer(screenWidth, screenHeight)
		a := app.New(eng, gr, fb)

		logrus.WithFields(logrus.Fields{
			"scale": cfg.WindowScale,
			"unit":  cfg.AngleUnit,
		}).Debug("opening calculator window")
		return screen.RunWindow("tical", fb, cfg.WindowScale, a.Step)
	},
}
