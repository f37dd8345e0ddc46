/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/voedger/lrucache/internal/workload"
)

var testVersion = "0.0.1-dummy"

func TestBasicUsage(t *testing.T) {
	require := require.New(t)

	for _, provider := range workload.Providers() {
		t.Run(provider.String(), func(t *testing.T) {
			err := execRootCmd([]string{"lrubench", "run",
				"--provider", provider.String(),
				"--capacity", "64",
				"--keys", "256",
				"--ops", "2048",
				"--value-size", "16",
			}, testVersion)
			require.NoError(err)
		})
	}

	t.Run("compare", func(t *testing.T) {
		err := execRootCmd([]string{"lrubench", "compare",
			"--capacity", "64",
			"--keys", "256",
			"--ops", "2048",
			"--value-size", "16",
			"--zipf",
		}, testVersion)
		require.NoError(err)
	})

	t.Run("prom format", func(t *testing.T) {
		err := execRootCmd([]string{"lrubench", "run",
			"--capacity", "64",
			"--keys", "256",
			"--ops", "1024",
			"--value-size", "16",
			"--format", "prom",
		}, testVersion)
		require.NoError(err)
	})

	t.Run("version", func(t *testing.T) {
		err := execRootCmd([]string{"lrubench", "version"}, testVersion)
		require.NoError(err)
	})
}

func TestErrors(t *testing.T) {
	require := require.New(t)

	t.Run("Should return error on unknown provider", func(t *testing.T) {
		err := execRootCmd([]string{"lrubench", "run", "--provider", "bolt"}, testVersion)
		require.ErrorIs(err, workload.ErrUnknownProvider)
	})

	t.Run("Should return error on unknown format", func(t *testing.T) {
		err := execRootCmd([]string{"lrubench", "run",
			"--keys", "16", "--ops", "16", "--format", "json",
		}, testVersion)
		require.ErrorIs(err, ErrUnknownFormat)
	})

	t.Run("Should return error on invalid params", func(t *testing.T) {
		err := execRootCmd([]string{"lrubench", "run", "--capacity", "0"}, testVersion)
		require.ErrorIs(err, workload.ErrInvalidRunParams)
	})
}

func TestPrintResults(t *testing.T) {
	require := require.New(t)

	results := []workload.Result{
		{Provider: workload.Provider_Lrucache, Hits: 75, Misses: 25, Elapsed: time.Millisecond},
		{Provider: workload.Provider_Theine, Hits: 50, Misses: 50, Elapsed: time.Millisecond},
	}

	out := bytes.Buffer{}
	printResults(&out, results)

	require.Contains(out.String(), "provider")
	require.Contains(out.String(), "lrucache")
	require.Contains(out.String(), "theine")
	require.Contains(out.String(), "75.00%")
	require.Contains(out.String(), "50.00%")
}
