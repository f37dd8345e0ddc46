/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package main

import "errors"

var ErrUnknownFormat = errors.New("unknown output format (expected table or prom)")
