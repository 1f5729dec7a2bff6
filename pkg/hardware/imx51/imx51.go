// Copyright 2018-2019 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Library for poking at i.MX51 SoC blocks from userspace during board
// bring-up.
//
// The register writes done here are in competition with whatever the
// kernel drivers think the hardware looks like. Only use this before the
// affected drivers are bound, which is what the board bring-up does.

package imx51

import (
	"fmt"

	"github.com/u-root/u-bringup/pkg/hardware/mem"
	"github.com/u-root/u-bringup/pkg/logger"
)

var log = logger.LogContainer.GetSimpleLogger()

const (
	IOMUXC_BASE uintptr = 0x73FA8000
	IOMUXC_SIZE         = 0x4000

	USB_OTG_BASE uintptr = 0x73F80000
	USB_SIZE             = 0x1000
)

type Soc struct {
	iomux mem.Window
}

// Open maps the IOMUX controller. The mapping is kept until Close since the
// pin table and the pad overrides are applied at different times during
// bring-up.
func Open(m mem.Mapper) (*Soc, error) {
	w, err := m.Map(IOMUXC_BASE, IOMUXC_SIZE)
	if err != nil {
		return nil, fmt.Errorf("iomuxc: %w", err)
	}
	return &Soc{w}, nil
}

func (s *Soc) Close() error {
	return s.iomux.Unmap()
}

// GpioPort returns the global GPIO number of GPIO<bank>_<n>, with banks
// counted from 1 as in the reference manual. Each bank has 32 lines.
func GpioPort(bank, n int) uint32 {
	return uint32((bank-1)*32 + n)
}
