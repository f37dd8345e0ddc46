/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package workload

import (
	"fmt"
	"strconv"
	"time"
)

// Enumeration of the cache implementations a workload can be run against
type Provider uint8

const (
	// null - no-value provider. Returned by ParseProvider when the name is unknown
	Provider_null Provider = iota

	Provider_Lrucache
	Provider_Hashicorp
	Provider_Floatdrop
	Provider_Theine
	Provider_Imcache
	Provider_Fastcache

	Provider_Count
)

var providerNames = [Provider_Count]string{
	"",
	"lrucache",
	"hashicorp",
	"floatdrop",
	"theine",
	"imcache",
	"fastcache",
}

// Renders provider name in lower case, suitable for CLI flags and metric labels
func (p Provider) String() string {
	if p < Provider_Count {
		return providerNames[p]
	}
	const base = 10
	return "Provider(" + strconv.FormatUint(uint64(p), base) + ")"
}

// Enumerates all known providers
func Providers() []Provider {
	pp := make([]Provider, 0, Provider_Count-1)
	for p := Provider_null + 1; p < Provider_Count; p++ {
		pp = append(pp, p)
	}
	return pp
}

// Returns provider by name. Returns Provider_null and ErrUnknownProvider
// if no provider has the specified name
func ParseProvider(name string) (Provider, error) {
	for p := Provider_null + 1; p < Provider_Count; p++ {
		if providerNames[p] == name {
			return p, nil
		}
	}
	return Provider_null, fmt.Errorf("%w: %s", ErrUnknownProvider, name)
}

// Params of a single workload run.
//
// The run works over a keyspace of Keys UUID strings and performs Ops
// read-through operations: get a key, and if the key is absent, put it with a
// ValueSize bytes payload. Keys are picked uniformly, or with Zipf-distributed
// skew when Zipf is set. Runs with equal Params give equal key sequences.
type Params struct {
	Provider  Provider
	Capacity  int
	Keys      int
	Ops       int
	ValueSize int
	Zipf      bool
	Seed      int64
}

// Result of a workload run
type Result struct {
	Provider Provider
	Hits     int
	Misses   int
	Elapsed  time.Duration
}

// Returns total operations count
func (r Result) Ops() int {
	return r.Hits + r.Misses
}

// Returns hits share of all operations, in range [0, 1]
func (r Result) HitRatio() float64 {
	if ops := r.Ops(); ops > 0 {
		return float64(r.Hits) / float64(ops)
	}
	return 0
}

// Returns average nanoseconds per operation
func (r Result) NsPerOp() int64 {
	if ops := r.Ops(); ops > 0 {
		return r.Elapsed.Nanoseconds() / int64(ops)
	}
	return 0
}
