package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const shellHelp = `Enter a hand, e.g. "234m567m23p678s55s 4p" (ron) or "234m567m23p678s55s4p" (tsumo).
  waits <tiles>  list the waits of a 13 tile hand
  help           show this text
  quit           leave the shell`

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Evaluate hands typed one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.shell(bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout())
		},
	}
}

// shell reads hands until quit or end of input. Bad input is reported and
// the prompt repeats.
func (a *app) shell(reader *bufio.Reader, out io.Writer) error {
	fmt.Fprintln(out, shellHelp)
	waits := newWaitsCmd(a)
	for {
		fmt.Fprint(out, "\nhand> ")
		input, err := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if err != nil && input == "" {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return errors.Wrap(err, "read input")
		}

		switch {
		case input == "":
		case input == "quit" || input == "exit":
			return nil
		case input == "help":
			fmt.Fprintln(out, shellHelp)
		case strings.HasPrefix(input, "waits "):
			waits.SetOut(out)
			if err := waits.RunE(waits, []string{strings.TrimSpace(strings.TrimPrefix(input, "waits "))}); err != nil {
				fmt.Fprintln(out, "Invalid input:", err)
			}
		default:
			ev, err := a.evaluate(input, nil)
			if err != nil {
				fmt.Fprintln(out, "Invalid input:", err)
				continue
			}
			a.render(out, ev)
		}
		if err != nil {
			// last line had no newline
			return nil
		}
	}
}
