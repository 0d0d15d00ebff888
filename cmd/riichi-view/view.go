package main

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/pkg/errors"

	"mahjong-hand/config"
	"mahjong-hand/notation"
	"mahjong-hand/report"
	"mahjong-hand/scoring"
)

var winds = []string{"east", "south", "west", "north"}

// view holds the widgets of the evaluator window.
type view struct {
	cfg config.Config

	hand   *widget.Entry
	dora   *widget.Entry
	seat   *widget.Select
	round  *widget.Select
	dealer *widget.Check
	riichi *widget.Check
	button *widget.Button
	result *widget.Entry
}

func newView(cfg config.Config) *view {
	v := &view{cfg: cfg}

	v.hand = widget.NewEntry()
	v.hand.SetPlaceHolder("234m567m23p678s55s 4p")
	v.hand.OnSubmitted = func(string) { v.evaluate() }

	v.dora = widget.NewEntry()
	v.dora.SetPlaceHolder("dora indicators, e.g. 3m7z")
	v.dora.SetText(cfg.Table.Dora)

	v.seat = widget.NewSelect(winds, nil)
	v.seat.SetSelected(strings.ToLower(cfg.Table.SeatWind))
	v.round = widget.NewSelect(winds, nil)
	v.round.SetSelected(strings.ToLower(cfg.Table.RoundWind))

	v.dealer = widget.NewCheck("Dealer", nil)
	v.dealer.SetChecked(cfg.Table.Dealer)
	v.riichi = widget.NewCheck("Riichi", nil)
	v.riichi.SetChecked(cfg.Table.Riichi)

	v.button = widget.NewButton("Evaluate", v.evaluate)

	v.result = widget.NewMultiLineEntry()
	v.result.Wrapping = fyne.TextWrapWord
	v.result.TextStyle = fyne.TextStyle{Monospace: true}
	v.result.Disable()
	return v
}

func (v *view) content() fyne.CanvasObject {
	form := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Hand", v.hand),
			widget.NewFormItem("Dora", v.dora),
			widget.NewFormItem("Seat", v.seat),
			widget.NewFormItem("Round", v.round),
		),
		container.NewHBox(v.dealer, v.riichi),
		v.button,
	)
	return container.NewBorder(form, nil, nil, nil, v.result)
}

// evaluate scores the entered hand and shows the report or the error.
func (v *view) evaluate() {
	out, err := v.report()
	if err != nil {
		out = "Error: " + err.Error()
	}
	v.result.SetText(out)
}

func (v *view) report() (string, error) {
	cfg := v.cfg
	cfg.Table.SeatWind = v.seat.Selected
	cfg.Table.RoundWind = v.round.Selected
	cfg.Table.Dealer = v.dealer.Checked
	cfg.Table.Riichi = v.riichi.Checked
	cfg.Table.Dora = v.dora.Text
	if err := cfg.Validate(); err != nil {
		return "", errors.Wrap(err, "table")
	}
	c, err := cfg.Context()
	if err != nil {
		return "", err
	}

	h, err := notation.Parse(v.hand.Text)
	if err != nil {
		return "", err
	}
	c.Method = h.Method
	c.RedFives = h.RedFives
	ev, err := scoring.EvaluateHand(h.Tiles, h.Melds, h.WinTile, c, cfg.ScoringRules())
	if err != nil {
		return "", err
	}
	return report.Plain(ev), nil
}
