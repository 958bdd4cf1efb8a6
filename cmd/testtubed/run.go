package main

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/okx/testtube/app"
	"github.com/okx/testtube/libs/log"
	"github.com/okx/testtube/scenario"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type runOutput struct {
	ChainID string             `json:"chain_id"`
	Height  int64              `json:"height"`
	Results []scenario.Result  `json:"results"`
	Error   string             `json:"error,omitempty"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
}

func runCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "run [scenario.yaml...]",
		Short: "Run scenario files in order on one fresh chain",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.ReadConfig(v)
			if err != nil {
				return err
			}
			// stdout carries the json report
			logger, err := log.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}
			testApp, err := app.NewWithLogger(cfg, logger)
			if err != nil {
				return errors.Wrap(err, "start chain")
			}
			r := scenario.NewRunner(testApp, logger)

			out := runOutput{ChainID: cfg.ChainID}
			var runErr error
			for _, path := range args {
				content, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				s, err := scenario.Parse(content)
				if err != nil {
					return errors.Wrap(err, path)
				}
				results, err := r.Run(s)
				out.Results = append(out.Results, results...)
				if err != nil {
					runErr = errors.Wrap(err, path)
					out.Error = runErr.Error()
					break
				}
			}
			out.Height = testApp.BlockHeight()
			if registry := testApp.MetricsRegistry(); registry != nil {
				if out.Metrics, err = gatherMetrics(registry); err != nil {
					return err
				}
			}

			bz, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(bz))
			return runErr
		},
	}
}

// gatherMetrics flattens counters and gauges into name{labels} keys.
func gatherMetrics(registry prometheus.Gatherer) (map[string]float64, error) {
	families, err := registry.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range m.GetLabel() {
				key += "," + lp.GetName() + "=" + lp.GetValue()
			}
			switch {
			case m.GetCounter() != nil:
				out[key] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[key] = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				out[key+",count"] = float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return out, nil
}
