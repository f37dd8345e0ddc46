/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package imetrics

func Provide() IMetrics {
	return newMetrics()
}
