/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package workload

import (
	"fmt"

	"github.com/voedger/lrucache"
	"github.com/voedger/lrucache/internal/fastcache"
	"github.com/voedger/lrucache/internal/floatdrop"
	"github.com/voedger/lrucache/internal/hashicorp"
	"github.com/voedger/lrucache/internal/imcache"
	"github.com/voedger/lrucache/internal/theine"
)

// Creates and returns new cache target backed by the specified provider.
//
// Target capacity is limited by capacity entries. For fastcache, which is
// limited by total bytes, the capacity is converted using a per-entry byte
// budget.
func New(provider Provider, capacity int, valueSize int) (ITarget, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: capacity must be positive, %d given", ErrInvalidRunParams, capacity)
	}
	if valueSize < 1 {
		return nil, fmt.Errorf("%w: value size must be positive, %d given", ErrInvalidRunParams, valueSize)
	}

	switch provider {
	case Provider_Lrucache:
		return &lruTarget{cache: lrucache.New[string, []byte](capacity)}, nil
	case Provider_Hashicorp:
		return hashicorp.New[string, []byte](capacity), nil
	case Provider_Floatdrop:
		return floatdrop.New[string, []byte](capacity), nil
	case Provider_Theine:
		return theine.New[string, []byte](capacity), nil
	case Provider_Imcache:
		return imcache.New[string, []byte](capacity), nil
	case Provider_Fastcache:
		return fastcache.New(capacity * (fastcacheBytesPerEntry + valueSize)), nil
	}

	return nil, fmt.Errorf("%w: %v", ErrUnknownProvider, provider)
}
