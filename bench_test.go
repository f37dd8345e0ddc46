/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package lrucache_test

import (
	"bytes"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/voedger/lrucache/internal/workload"
)

const benchValueSize = 16

func newTarget(b *testing.B, p workload.Provider, size int) workload.ITarget {
	target, err := workload.New(p, size, benchValueSize)
	if err != nil {
		b.Fatal(err)
	}
	return target
}

func newBenchKeys(b *testing.B, size int, seed int64) []string {
	keys, err := workload.NewKeySpace(size, rand.New(rand.NewSource(seed)))
	if err != nil {
		b.Fatal(err)
	}
	return keys
}

func sequenceBench(b *testing.B, p workload.Provider, size int) {
	keys := newBenchKeys(b, size, 1)
	value := bytes.Repeat([]byte{'v'}, benchValueSize)

	var put, get int64
	b.Run(fmt.Sprintf("%v-Seq-Put-%d", p, size), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			target := newTarget(b, p, size)
			for _, key := range keys {
				target.Put(key, value)
			}
		}
		put = b.Elapsed().Nanoseconds() / int64(b.N) / int64(size)
	})

	target := newTarget(b, p, size)
	for _, key := range keys {
		target.Put(key, value)
	}
	b.Run(fmt.Sprintf("%v-Seq-Get-%d", p, size), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			for _, key := range keys {
				target.Get(key)
			}
		}
		get = b.Elapsed().Nanoseconds() / int64(b.N) / int64(size)
	})
	fmt.Printf("\t— %v:\t (Sequenced)\t Put:\t%10d ns/op; Get:\t%10d ns/op\n", p, put, get)
}

func parallelBench(b *testing.B, p workload.Provider, size int, bCount int) {
	parts := make([][]string, bCount)
	for i := range parts {
		parts[i] = newBenchKeys(b, size, int64(i))
	}
	value := bytes.Repeat([]byte{'v'}, benchValueSize)

	var put, get int64
	b.Run(fmt.Sprintf("%v-Par-Put-%d-%d", p, size, bCount), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			wg := sync.WaitGroup{}
			target := newTarget(b, p, bCount*size)
			for part := 0; part < bCount; part++ {
				wg.Add(1)
				go func(part int) {
					defer wg.Done()
					for _, key := range parts[part] {
						target.Put(key, value)
					}
				}(part)
			}
			wg.Wait()
		}
		put = b.Elapsed().Nanoseconds() / int64(b.N) / int64(size) / int64(bCount)
	})

	b.Run(fmt.Sprintf("%v-Par-Get-%d-%d", p, size, bCount), func(b *testing.B) {
		target := newTarget(b, p, bCount*size)
		for part := 0; part < bCount; part++ {
			for _, key := range parts[part] {
				target.Put(key, value)
			}
		}

		for i := 0; i < b.N; i++ {
			wg := sync.WaitGroup{}
			for part := 0; part < bCount; part++ {
				wg.Add(1)
				go func(part int) {
					defer wg.Done()
					for _, key := range parts[part] {
						target.Get(key)
					}
				}(part)
			}
			wg.Wait()
		}
		get = b.Elapsed().Nanoseconds() / int64(b.N) / int64(size) / int64(bCount)
	})
	fmt.Printf("\t— %v:\t (Parallel-%d)\t Put:\t%10d ns/op; Get:\t%10d ns/op\n", p, bCount, put, get)
}

func generalBench(b *testing.B, p workload.Provider) {
	b.Run("1. Small cache 100 keys", func(b *testing.B) {
		b.Run("1.1. Sequenced", func(b *testing.B) {
			sequenceBench(b, p, 100)
		})
		b.Run("1.2. Parallel (2×50)", func(b *testing.B) {
			parallelBench(b, p, 50, 2)
		})
	})

	b.Run("2. Middle cache 1’000 keys", func(b *testing.B) {
		b.Run("2.1. Sequenced", func(b *testing.B) {
			sequenceBench(b, p, 1000)
		})
		b.Run("2.2. Parallel (10×100)", func(b *testing.B) {
			parallelBench(b, p, 100, 10)
		})
	})

	b.Run("3. Big cache 10’000 keys", func(b *testing.B) {
		b.Run("3.1. Sequenced", func(b *testing.B) {
			sequenceBench(b, p, 10000)
		})
		b.Run("3.2. Parallel (20×500)", func(b *testing.B) {
			parallelBench(b, p, 500, 20)
		})
	})
}

func BenchmarkCacheGeneralLrucache(b *testing.B) {
	generalBench(b, workload.Provider_Lrucache)
}

func BenchmarkCacheGeneralHashicorp(b *testing.B) {
	generalBench(b, workload.Provider_Hashicorp)
}

func BenchmarkCacheGeneralFloatdrop(b *testing.B) {
	generalBench(b, workload.Provider_Floatdrop)
}

func BenchmarkCacheGeneralTheine(b *testing.B) {
	generalBench(b, workload.Provider_Theine)
}

func BenchmarkCacheGeneralImcache(b *testing.B) {
	generalBench(b, workload.Provider_Imcache)
}

func BenchmarkCacheGeneralFastcache(b *testing.B) {
	generalBench(b, workload.Provider_Fastcache)
}

func BenchmarkCacheParallelLrucache(b *testing.B) {
	const (
		size    = 1000
		maxPart = 101
	)
	for part := 1; part <= maxPart; part += 10 {
		parallelBench(b, workload.Provider_Lrucache, size, part)
	}
}

func BenchmarkCacheParallelHashicorp(b *testing.B) {
	const (
		size    = 1000
		maxPart = 101
	)
	for part := 1; part <= maxPart; part += 10 {
		parallelBench(b, workload.Provider_Hashicorp, size, part)
	}
}
