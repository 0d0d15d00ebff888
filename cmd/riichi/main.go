// Command riichi evaluates riichi mahjong hands written in compact notation.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
