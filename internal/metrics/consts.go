/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package imetrics

const bitSize = 64
