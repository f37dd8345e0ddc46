/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package main

import (
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	imetrics "github.com/voedger/lrucache/internal/metrics"
	"github.com/voedger/lrucache/internal/workload"
)

func newRunCmd() *cobra.Command {
	params := workload.Params{}
	providerName := ""
	format := ""

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a workload against a single cache provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := workload.ParseProvider(providerName)
			if err != nil {
				return err
			}
			params.Provider = provider

			metrics := imetrics.Provide()
			res, err := workload.Run(params, metrics)
			if err != nil {
				return err
			}
			logger.Verbose("workload finished:", res.Provider, "ops:", res.Ops())

			return report(cmd.OutOrStdout(), format, metrics, []workload.Result{res})
		},
	}

	cmd.Flags().StringVar(&providerName, "provider", workload.Provider_Lrucache.String(), "Cache provider: "+providersHint())
	addWorkloadFlags(cmd, &params)
	addFormatFlag(cmd, &format)

	return cmd
}

func addWorkloadFlags(cmd *cobra.Command, params *workload.Params) {
	cmd.Flags().IntVar(&params.Capacity, "capacity", defaultCapacity, "Cache capacity, entries")
	cmd.Flags().IntVar(&params.Keys, "keys", defaultKeys, "Keyspace size")
	cmd.Flags().IntVar(&params.Ops, "ops", defaultOps, "Operations count")
	cmd.Flags().IntVar(&params.ValueSize, "value-size", defaultValueSize, "Value payload size, bytes")
	cmd.Flags().BoolVar(&params.Zipf, "zipf", false, "Use Zipf-distributed keys instead of uniform")
	cmd.Flags().Int64Var(&params.Seed, "seed", defaultSeed, "Random source seed")
}

func addFormatFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVar(format, "format", formatTable, "Output format: table or prom")
}
