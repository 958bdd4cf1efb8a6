package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/okx/testtube/app"
	"github.com/okx/testtube/libs/log"
)

func routesCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the message type URLs and query paths the chain serves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.ReadConfig(v)
			if err != nil {
				return err
			}
			testApp, err := app.NewWithLogger(cfg, log.NewNopLogger())
			if err != nil {
				return err
			}
			msgs, queries := testApp.Routes()
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "messages:")
			for _, route := range msgs {
				fmt.Fprintln(w, "  "+route)
			}
			fmt.Fprintln(w, "queries:")
			for _, route := range queries {
				fmt.Fprintln(w, "  "+route)
			}
			return nil
		},
	}
}
