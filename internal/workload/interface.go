/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package workload

// Cache under measurement.
//
// Keys are UUID strings from the run keyspace, values are opaque byte
// payloads of the configured size.
//
// @ConcurrentAccess
type ITarget interface {
	// Gets value by key. Returns true and value if key exists, false and nil overwise
	Get(key string) (value []byte, ok bool)

	// Puts value with key
	Put(key string, value []byte)
}
