/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	imetrics "github.com/voedger/lrucache/internal/metrics"
	"github.com/voedger/lrucache/internal/workload"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

func providersHint() string {
	names := make([]string, 0, len(workload.Providers()))
	for _, provider := range workload.Providers() {
		names = append(names, provider.String())
	}
	return strings.Join(names, "|")
}

func report(w io.Writer, format string, metrics imetrics.IMetrics, results []workload.Result) error {
	switch format {
	case formatTable:
		printResults(w, results)
		return nil
	case formatProm:
		return printPrometheus(w, metrics)
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

// Results are expected to be sorted by hit ratio in descending order. With
// more than one result the best provider is green and the worst is red
func printResults(w io.Writer, results []workload.Result) {
	fmt.Fprintf(w, "%-12s%12s%12s%10s%10s%14s\n", "provider", "hits", "misses", "ratio", "ns/op", "elapsed")
	for i, res := range results {
		name := fmt.Sprintf("%-12s", res.Provider)
		if len(results) > 1 {
			switch i {
			case 0:
				name = green(name)
			case len(results) - 1:
				name = red(name)
			}
		}
		fmt.Fprintf(w, "%s%12d%12d%9.2f%%%10d%14s\n",
			name, res.Hits, res.Misses, res.HitRatio()*100, res.NsPerOp(), res.Elapsed.Round(time.Microsecond))
	}
}

func printPrometheus(w io.Writer, metrics imetrics.IMetrics) error {
	return metrics.List(func(metric imetrics.IMetric, value float64) error {
		_, err := w.Write(imetrics.ToPrometheus(metric, value))
		return err
	})
}
