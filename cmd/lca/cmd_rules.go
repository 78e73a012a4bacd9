package main

import (
	"encoding/json"
	"fmt"

	"lca/internal/automaton"

	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the preset rule tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			types := []automaton.Type{automaton.TypeA, automaton.TypeB}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				type preset struct {
					Type   string `json:"type"`
					Rules  string `json:"rules"`
					Number uint8  `json:"number"`
				}
				presets := make([]preset, 0, len(types))
				for _, t := range types {
					r := t.Preset()
					presets = append(presets, preset{Type: t.String(), Rules: r.String(), Number: r.Number()})
				}
				return json.NewEncoder(out).Encode(presets)
			}

			for _, t := range types {
				r := t.Preset()
				fmt.Fprintf(out, "%s  %s  rule %d\n", t, r, r.Number())
			}
			fmt.Fprintln(out, "U  user defined, 8 rules follow init_end")
			return nil
		},
	}
}
