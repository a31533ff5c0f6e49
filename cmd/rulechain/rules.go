package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulechain/pkg/rules"
)

func newRulesCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the built-in rule tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, token := range rules.Builtin().Tokens() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), token); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
