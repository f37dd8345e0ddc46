/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package workload

import (
	"bytes"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/voedger/lrucache"
	imetrics "github.com/voedger/lrucache/internal/metrics"
)

// Thread safe target over the arena cache. The other targets are thread safe
// out of the box.
type lruTarget struct {
	lock  sync.Mutex
	cache lrucache.ICache[string, []byte]
}

func (t *lruTarget) Get(key string) (value []byte, ok bool) {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.cache.Get(key)
}

func (t *lruTarget) Put(key string, value []byte) {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.cache.Put(key, value)
}

// Generates a keyspace of count UUID strings from the provided random source.
// Equal sources generate equal keyspaces
func NewKeySpace(count int, r *rand.Rand) ([]string, error) {
	keys := make([]string, count)
	for i := range keys {
		id, err := uuid.NewRandomFromReader(r)
		if err != nil {
			// notest
			return nil, err
		}
		keys[i] = id.String()
	}
	return keys, nil
}

// Runs the workload described by params over a fresh target cache.
//
// The run loop reads through the cache: gets a key, and if the key is absent,
// puts it with the payload. Hits, misses and elapsed time are accumulated both
// in the returned Result and in the metrics registry under the provider label
func Run(params Params, metrics imetrics.IMetrics) (res Result, err error) {
	if params.Keys < 1 {
		return res, fmt.Errorf("%w: keys must be positive, %d given", ErrInvalidRunParams, params.Keys)
	}
	if params.Ops < 0 {
		return res, fmt.Errorf("%w: ops must not be negative, %d given", ErrInvalidRunParams, params.Ops)
	}

	target, err := New(params.Provider, params.Capacity, params.ValueSize)
	if err != nil {
		return res, err
	}

	r := rand.New(rand.NewSource(params.Seed))
	keys, err := NewKeySpace(params.Keys, r)
	if err != nil {
		// notest
		return res, err
	}

	var zipf *rand.Zipf
	if params.Zipf {
		zipf = rand.NewZipf(r, zipfS, zipfV, uint64(params.Keys-1))
	}

	value := bytes.Repeat([]byte{'v'}, params.ValueSize)

	provider := params.Provider.String()
	mGetTotal := metrics.MetricAddr(getTotal, provider)
	mGetCachedTotal := metrics.MetricAddr(getCachedTotal, provider)
	mPutTotal := metrics.MetricAddr(putTotal, provider)
	mRunSeconds := metrics.MetricAddr(runSeconds, provider)

	res.Provider = params.Provider

	start := time.Now()
	for op := 0; op < params.Ops; op++ {
		var key string
		if zipf != nil {
			key = keys[zipf.Uint64()]
		} else {
			key = keys[r.Intn(params.Keys)]
		}

		imetrics.AddFloat64(mGetTotal, 1.0)
		if _, ok := target.Get(key); ok {
			imetrics.AddFloat64(mGetCachedTotal, 1.0)
			res.Hits++
			continue
		}

		imetrics.AddFloat64(mPutTotal, 1.0)
		target.Put(key, value)
		res.Misses++
	}
	res.Elapsed = time.Since(start)

	imetrics.AddFloat64(mRunSeconds, res.Elapsed.Seconds())

	return res, nil
}
