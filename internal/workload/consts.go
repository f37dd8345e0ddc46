/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package workload

const (
	// Zipf law parameters for the skewed key distribution
	zipfS = 1.1
	zipfV = 1.0

	// fastcache limits the cache by total bytes, not by entries count.
	// Per-entry budget covers the UUID key, the entry metadata and slack
	// from the chunked allocation.
	fastcacheBytesPerEntry = 512
)
