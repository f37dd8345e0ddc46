/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package workload

const (
	getTotal       = "lrubench_get_total"
	getCachedTotal = "lrubench_get_cached_total"
	putTotal       = "lrubench_put_total"
	runSeconds     = "lrubench_run_seconds"
)
