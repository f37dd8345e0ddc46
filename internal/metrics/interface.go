/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package imetrics

type IMetric interface {
	Name() string

	// Provider returns empty string when not specified
	Provider() string
}

type IMetrics interface {
	// Increase metric value with "delta".
	// The default metric value is always 0.
	// Naming best practices: https://prometheus.io/docs/practices/naming/
	//
	// @ConcurrentAccess
	Increase(metricName string, provider string, valueDelta float64)

	// MetricAddr returns address of the metric value.
	// The returned address is stable and can be cached by callers.
	// Value by address must be changed using AddFloat64 only.
	//
	// @ConcurrentAccess
	MetricAddr(metricName string, provider string) *float64

	// List lists current values of all metrics
	//
	// @ConcurrentAccess
	List(cb func(metric IMetric, metricValue float64) (err error)) (err error)
}
