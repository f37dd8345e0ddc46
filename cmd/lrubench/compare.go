/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package main

import (
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/slices"

	imetrics "github.com/voedger/lrucache/internal/metrics"
	"github.com/voedger/lrucache/internal/workload"
)

func newCompareCmd() *cobra.Command {
	params := workload.Params{}
	format := ""

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run the same workload against every cache provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			metrics := imetrics.Provide()

			results := make([]workload.Result, 0, len(workload.Providers()))
			for _, provider := range workload.Providers() {
				params.Provider = provider
				logger.Verbose("running workload:", provider)

				res, err := workload.Run(params, metrics)
				if err != nil {
					return err
				}
				results = append(results, res)
			}

			slices.SortFunc(results, func(a, b workload.Result) bool {
				return a.HitRatio() > b.HitRatio()
			})

			return report(cmd.OutOrStdout(), format, metrics, results)
		},
	}

	addWorkloadFlags(cmd, &params)
	addFormatFlag(cmd, &format)

	return cmd
}
