// Command riichi-view is a small desktop window around the hand evaluator.
package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"mahjong-hand/config"
	"mahjong-hand/hand"
	"mahjong-hand/scoring"
)

func main() {
	var configPath string
	cmd := &cobra.Command{
		Use:          "riichi-view",
		Short:        "Evaluate riichi mahjong hands in a window",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			level, err := logrus.ParseLevel(cfg.Log.Level)
			if err != nil {
				return err
			}
			logger := logrus.New()
			logger.SetLevel(level)
			hand.SetLogger(logger)
			scoring.SetLogger(logger)

			a := app.New()
			w := a.NewWindow("Riichi Hand Evaluator")
			v := newView(cfg)
			w.SetContent(v.content())
			w.Resize(fyne.NewSize(720, 520))
			w.ShowAndRun()
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (.yaml, .yml or .toml)")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
