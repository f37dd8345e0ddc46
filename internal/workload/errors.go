/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package workload

import "errors"

var (
	ErrUnknownProvider  = errors.New("unknown cache provider")
	ErrInvalidRunParams = errors.New("invalid run params")
)
