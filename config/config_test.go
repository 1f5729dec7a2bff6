// Copyright 2019 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"testing"
)

func TestMemorySize(t *testing.T) {
	if DefaultConfig.MemorySize != 0x10000000 {
		t.Errorf("MemorySize = %#x, want 256 MiB", DefaultConfig.MemorySize)
	}
}

func TestGpioChipPattern(t *testing.T) {
	if got := fmt.Sprintf(DefaultConfig.Paths.GpioChip, 1); got != "/dev/gpiochip1" {
		t.Errorf("GpioChip pattern gives %q for bank 1", got)
	}
}

func TestOtgModeParam(t *testing.T) {
	if DefaultConfig.OtgModeParam != "otg_mode" {
		t.Errorf("OtgModeParam = %q, want otg_mode", DefaultConfig.OtgModeParam)
	}
}
