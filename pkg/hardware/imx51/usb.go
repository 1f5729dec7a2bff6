// Copyright 2018-2019 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imx51

import (
	"fmt"
	"sync"
	"time"

	"github.com/jmhodges/clock"
	"github.com/u-root/u-bringup/pkg/hardware/mem"
)

const (
	// The "other" register block shared by all USB cores
	USBOTHER_REGS_OFFSET uintptr = 0x800

	// OTG core UTMI PHY control, relative to USBOTHER
	USB_PHY_CTR_FUNC2_OFFSET      uintptr = 0x0c
	USB_UTMI_PHYCTRL1_PLLDIV_MASK uint32  = 0x3

	USB_PLL_DIV_12_MHZ   uint32 = 0x0
	USB_PLL_DIV_19_2_MHZ uint32 = 0x1
	USB_PLL_DIV_24_MHZ   uint32 = 0x2

	// Host1 control, relative to USBOTHER
	USB_CTRL_1_OFFSET       uintptr = 0x10
	USB_CTRL_UH1_EXT_CLK_EN uint32  = 1 << 25

	// Time the PHY needs on the new clock before the controller is enabled
	USB_CLOCK_SETTLE = 10 * time.Millisecond
)

type Core int

const (
	// The OTG core, host or device capable
	CoreOTG Core = iota
	// The host only core wired to the ULPI PHY
	CoreHost1
)

func (c Core) String() string {
	switch c {
	case CoreOTG:
		return "usb-otg"
	case CoreHost1:
		return "usb-host1"
	}
	return fmt.Sprintf("usb-core-%d", int(c))
}

// USB selects the clock source of the two USB cores.
type USB struct {
	m   mem.Mapper
	clk clock.Clock
	// Both cores live in the same window, keep their read-modify-writes apart
	lock sync.Mutex
}

func NewUSB(m mem.Mapper, clk clock.Clock) *USB {
	return &USB{m: m, clk: clk}
}

// ConfigureClock points the given core at its clock source and waits for
// the clock to settle.
//
// The OTG core runs its internal PHY from the 19.2 MHz reference. Host1
// takes its clock from the external ULPI PHY.
func (u *USB) ConfigureClock(c Core) error {
	var err error
	switch c {
	case CoreOTG:
		err = u.modify32(USB_PHY_CTR_FUNC2_OFFSET, USB_UTMI_PHYCTRL1_PLLDIV_MASK, USB_PLL_DIV_19_2_MHZ)
	case CoreHost1:
		err = u.modify32(USB_CTRL_1_OFFSET, 0, USB_CTRL_UH1_EXT_CLK_EN)
	default:
		return fmt.Errorf("unknown USB core %d", int(c))
	}
	if err != nil {
		return fmt.Errorf("%v clock: %w", c, err)
	}
	u.clk.Sleep(USB_CLOCK_SETTLE)
	log.Infof("Configured %v clock", c)
	return nil
}

// modify32 clears and then sets bits of one USBOTHER register. The window is
// only mapped for the duration of the call.
func (u *USB) modify32(off uintptr, clear, set uint32) error {
	u.lock.Lock()
	defer u.lock.Unlock()

	w, err := u.m.Map(USB_OTG_BASE, USB_SIZE)
	if err != nil {
		return err
	}
	defer func() {
		if err := w.Unmap(); err != nil {
			log.Warnf("USB window: %v", err)
		}
	}()

	reg := USBOTHER_REGS_OFFSET + off
	v := w.Read32(reg)
	w.Write32(reg, v&^clear|set)
	return nil
}
