// Copyright 2018-2019 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hardware holds what the hardware access packages share.
package hardware

import (
	"errors"
)

// ErrResourceUnavailable is wrapped by every error caused by a GPIO line or
// a register window that could not be acquired. Such a failure only affects
// the device that needed the resource.
var ErrResourceUnavailable = errors.New("resource unavailable")
