// Copyright 2018 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpio

import (
	"github.com/u-root/u-bringup/pkg/hardware/imx51"
)

var (
	linePortMap = map[string]uint32{
		"USB_HUB_RESET": imx51.GpioPort(1, 7),
		// Only a GPIO while the USBH1_STP pad is muxed away from the ULPI port
		"USBH1_STP":     imx51.GpioPort(1, 27),
		"USB_PHY_RESET": imx51.GpioPort(2, 5),
		"FEC_PHY_RESET": imx51.GpioPort(2, 14),
	}

	// Reverse map of linePortMap
	portLineMap map[uint32]string
)

type Gpio struct {
}

func init() {
	portLineMap = make(map[uint32]string)
	for k, v := range linePortMap {
		portLineMap[v] = k
	}
}

func (_ *Gpio) GpioNameToPort(l string) (uint32, bool) {
	s, ok := linePortMap[l]
	return s, ok
}

func (_ *Gpio) GpioPortToName(i uint32) (string, bool) {
	s, ok := portLineMap[i]
	return s, ok
}
