/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package main

const (
	defaultCapacity  = 1024
	defaultKeys      = 8192
	defaultOps       = 100000
	defaultValueSize = 128
	defaultSeed      = 1

	formatTable = "table"
	formatProm  = "prom"
)
