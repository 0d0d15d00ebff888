package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"mahjong-hand/config"
	"mahjong-hand/notation"
	"mahjong-hand/report"
	"mahjong-hand/scoring"
)

// app is the state shared by every subcommand once the root has loaded the
// configuration.
type app struct {
	configPath string
	logLevel   string
	logFile    string
	seat       string
	round      string
	dealer     bool
	riichi     bool
	dora       string
	plain      bool

	cfg    config.Config
	ctx    scoring.Context
	rules  scoring.Rules
	logger *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "riichi",
		Short:         "Interpret and score riichi mahjong hands",
		Long:          "riichi decomposes a complete hand into every valid reading, annotates the\nwait, and scores each reading with yaku and fu.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "config file (.yaml, .yml or .toml)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&a.logFile, "log-file", "", "write logs to a daily rotated file")
	flags.StringVar(&a.seat, "seat", "", "seat wind (east, south, west, north)")
	flags.StringVar(&a.round, "round", "", "round wind (east, south, west, north)")
	flags.BoolVar(&a.dealer, "dealer", false, "the winner is the dealer")
	flags.BoolVar(&a.riichi, "riichi", false, "the winner declared riichi")
	flags.StringVar(&a.dora, "dora", "", "dora indicators, e.g. 3m7z")
	flags.BoolVar(&a.plain, "plain", false, "disable colors")

	root.AddCommand(
		newEvalCmd(a),
		newWaitsCmd(a),
		newBatchCmd(a),
		newShellCmd(a),
		newConfigCmd(a),
	)
	return root
}

// setup loads the config, applies flag overrides and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = a.logFile
	}
	if flags.Changed("seat") {
		cfg.Table.SeatWind = a.seat
	}
	if flags.Changed("round") {
		cfg.Table.RoundWind = a.round
	}
	if flags.Changed("dealer") {
		cfg.Table.Dealer = a.dealer
	}
	if flags.Changed("riichi") {
		cfg.Table.Riichi = a.riichi
	}
	if flags.Changed("dora") {
		cfg.Table.Dora = a.dora
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid options")
	}

	logger, err := newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	installLogger(logger)

	ctx, err := cfg.Context()
	if err != nil {
		return err
	}

	a.cfg, a.ctx, a.rules, a.logger = cfg, ctx, cfg.ScoringRules(), logger
	logger.WithFields(logrus.Fields{
		"seat":  ctx.SeatWind.String(),
		"round": ctx.RoundWind.String(),
	}).Debug("configured")
	return nil
}

// evaluate parses one hand and scores it under the table context.
func (a *app) evaluate(s string, extra func(*scoring.Context)) (scoring.Evaluation, error) {
	h, err := notation.Parse(s)
	if err != nil {
		return scoring.Evaluation{}, err
	}
	c := a.ctx
	c.Method = h.Method
	c.RedFives = h.RedFives
	if extra != nil {
		extra(&c)
	}
	return scoring.EvaluateHand(h.Tiles, h.Melds, h.WinTile, c, a.rules)
}

func (a *app) render(w io.Writer, ev scoring.Evaluation) {
	if a.plain {
		fmt.Fprint(w, report.Plain(ev))
		return
	}
	fmt.Fprint(w, report.Styled(ev))
}
