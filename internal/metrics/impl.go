/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package imetrics

import (
	"bytes"
	"math"
	"strconv"
	"sync"
	"sync/atomic"
	"unsafe"
)

type metric struct {
	name     string
	provider string
}

func (m *metric) Name() string {
	return m.name
}

func (m *metric) Provider() string {
	return m.provider
}

type mapMetrics struct {
	metrics map[metric]*float64
	lock    sync.Mutex
}

func newMetrics() IMetrics {
	return &mapMetrics{
		metrics: make(map[metric]*float64),
	}
}

func (m *mapMetrics) Increase(metricName string, provider string, valueDelta float64) {
	AddFloat64(m.MetricAddr(metricName, provider), valueDelta)
}

func (m *mapMetrics) MetricAddr(metricName string, provider string) *float64 {
	key := metric{
		name:     metricName,
		provider: provider,
	}
	m.lock.Lock()
	defer m.lock.Unlock()
	addr, ok := m.metrics[key]
	if !ok {
		addr = new(float64)
		m.metrics[key] = addr
	}
	return addr
}

func (m *mapMetrics) List(cb func(metric IMetric, metricValue float64) (err error)) (err error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	for metric, value := range m.metrics {
		metric := metric
		err = cb(&metric, *value)
		if err != nil {
			return
		}
	}
	return err
}

// AddFloat64 atomically adds delta to the value at addr.
// Addr must be obtained from IMetrics.MetricAddr.
func AddFloat64(addr *float64, delta float64) {
	for {
		oldBits := atomic.LoadUint64((*uint64)(unsafe.Pointer(addr)))
		newBits := math.Float64bits(math.Float64frombits(oldBits) + delta)
		if atomic.CompareAndSwapUint64((*uint64)(unsafe.Pointer(addr)), oldBits, newBits) {
			return
		}
	}
}

func ToPrometheus(metric IMetric, metricValue float64) []byte {
	bb := bytes.Buffer{}
	bb.WriteString(metric.Name())
	if metric.Provider() != "" {
		bb.WriteString(`{provider="`)
		bb.WriteString(metric.Provider())
		bb.WriteString(`"}`)
	}
	bb.WriteRune(' ')
	bb.WriteString(strconv.FormatFloat(metricValue, 'f', -1, bitSize))
	bb.WriteRune('\n')
	return bb.Bytes()
}
