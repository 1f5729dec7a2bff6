// Copyright 2018-2019 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bootparam resolves board settings passed on the kernel command
// line.
package bootparam

import (
	"errors"
	"fmt"

	"github.com/u-root/u-root/pkg/cmdline"
	"go.uber.org/zap"
)

var ErrAmbiguous = errors.New("unrecognized boot parameter value")

// OtgMode is the personality of the USB OTG core.
type OtgMode int

const (
	Device OtgMode = iota
	Host
)

func (m OtgMode) String() string {
	switch m {
	case Device:
		return "device"
	case Host:
		return "host"
	}
	return fmt.Sprintf("OtgMode(%d)", int(m))
}

// ParseOtgMode accepts exactly "host" and "device".
func ParseOtgMode(v string) (OtgMode, error) {
	switch v {
	case "host":
		return Host, nil
	case "device":
		return Device, nil
	}
	return Device, fmt.Errorf("otg mode %q: %w", v, ErrAmbiguous)
}

// Lookup returns the value of a boot parameter and whether it was given.
type Lookup func(key string) (string, bool)

// Cmdline looks parameters up on the running kernel's command line.
func Cmdline(key string) (string, bool) {
	return cmdline.Flag(key)
}

// ResolveOtgMode reads the OTG mode once. A missing parameter selects device
// mode; a value other than "host" or "device" selects device mode with a
// warning.
func ResolveOtgMode(lookup Lookup, key string, log *zap.SugaredLogger) OtgMode {
	v, ok := lookup(key)
	if !ok {
		return Device
	}
	m, err := ParseOtgMode(v)
	if err != nil {
		log.Warnf("%v, using %v mode", err, Device)
	}
	return m
}
