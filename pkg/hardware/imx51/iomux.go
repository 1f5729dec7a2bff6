// Copyright 2018-2019 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imx51

import (
	"fmt"
)

// Pad control register bits
const (
	PAD_CTL_DVS           = 1 << 13
	PAD_CTL_HYS           = 1 << 8
	PAD_CTL_PKE           = 1 << 7
	PAD_CTL_PUE           = 1 << 6
	PAD_CTL_PUS_100K_DOWN = 0 << 4
	PAD_CTL_PUS_47K_UP    = 1 << 4
	PAD_CTL_PUS_100K_UP   = 2 << 4
	PAD_CTL_PUS_22K_UP    = 3 << 4
	PAD_CTL_ODE           = 1 << 3
	PAD_CTL_DSE_LOW       = 0 << 1
	PAD_CTL_DSE_MED       = 1 << 1
	PAD_CTL_DSE_HIGH      = 2 << 1
	PAD_CTL_DSE_MAX       = 3 << 1
	PAD_CTL_SRE_FAST      = 1 << 0

	// Not a hardware bit. Marks pads whose control register is left alone.
	NO_PAD_CTRL = 1 << 17

	// Software input on, the pad loops its output back to the input path.
	IOMUX_CONFIG_SION = 0x10
)

// Pad describes one pad setting as in the IOMUX v3 layout: which function
// the pad is muxed to, which daisy chain input it feeds, and its electrical
// configuration. Offsets are relative to IOMUXC_BASE; a zero offset means
// the register does not exist for this pad.
type Pad struct {
	Name        string
	MuxCtrlOfs  uint16
	MuxMode     uint8
	PadCtrlOfs  uint16
	PadCtrl     uint32
	SelInputOfs uint16
	SelInput    uint8
}

func (p Pad) String() string {
	return fmt.Sprintf("%s (mux %#03x = %d)", p.Name, p.MuxCtrlOfs, p.MuxMode)
}

// SetupPad writes a single pad. There is nothing to check: pads are fixed at
// build time and the IOMUX registers cannot refuse a write.
func (s *Soc) SetupPad(p Pad) {
	if p.MuxCtrlOfs != 0 {
		s.iomux.Write32(uintptr(p.MuxCtrlOfs), uint32(p.MuxMode))
	}
	if p.SelInputOfs != 0 {
		s.iomux.Write32(uintptr(p.SelInputOfs), uint32(p.SelInput))
	}
	if p.PadCtrl&NO_PAD_CTRL == 0 && p.PadCtrlOfs != 0 {
		s.iomux.Write32(uintptr(p.PadCtrlOfs), p.PadCtrl)
	}
}

// SetupPads applies the pads in order. A later entry for the same pad wins.
func (s *Soc) SetupPads(pads []Pad) {
	for _, p := range pads {
		s.SetupPad(p)
	}
	log.Infof("Configured %d pads", len(pads))
}
