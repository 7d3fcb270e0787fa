package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lox/wargame/internal/deck"
)

type AssetsCmd struct {
	Jokers string `enum:"auto,on,off" default:"auto" help:"Include the Jokers: auto follows the configured rules"`
}

// Run prints every card with the asset key the display uses for it.
func (c *AssetsCmd) Run(flags *GlobalFlags) error {
	_, rules, err := loadConfig(flags)
	if err != nil {
		return err
	}
	jokers := rules.IncludeJokers
	switch c.Jokers {
	case "on":
		jokers = true
	case "off":
		jokers = false
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tCARD\tVALUE\tASSET")
	for _, card := range deck.Build(jokers) {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", card.Code(), card, card.Value(), card.AssetKey())
	}
	fmt.Fprintf(tw, "--\tback\t-\t%s\n", deck.BackAssetKey)
	return tw.Flush()
}
