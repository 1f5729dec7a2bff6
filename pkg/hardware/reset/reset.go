// Copyright 2018-2019 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reset runs the reset pulses of board peripherals over GPIO lines.
//
// A pulse requests the lines asserted, holds them for the device's minimum
// reset time, deasserts them and waits for the device to come out of reset.
// All delays are blocking sleeps on the supplied clock.
package reset

import (
	"fmt"
	"time"

	"github.com/jmhodges/clock"
	"github.com/u-root/u-bringup/pkg/hardware/gpio"
	"github.com/u-root/u-bringup/pkg/hardware/imx51"
	"github.com/u-root/u-bringup/pkg/logger"
)

var log = logger.LogContainer.GetSimpleLogger()

// Protocol is the reset timing contract of one device.
type Protocol struct {
	Name  string
	Lines []string
	// Minimum time the lines are held asserted
	Hold time.Duration
	// Time to wait after deassertion before the device is used
	Settle time.Duration
	// Reset is asserted by driving the lines high instead of low
	ActiveHigh bool
}

func (p Protocol) asserted() bool {
	return p.ActiveHigh
}

// PadMuxer rebinds a single pad. imx51.Soc implements it.
type PadMuxer interface {
	SetupPad(p imx51.Pad)
}

// Override describes a pad that normally carries a peripheral function and
// has to be muxed to GPIO while its line is pulsed.
type Override struct {
	Gpio     imx51.Pad
	Function imx51.Pad
}

type Sequencer struct {
	gpio *gpio.GpioSystem
	pads PadMuxer
	clk  clock.Clock
}

func NewSequencer(g *gpio.GpioSystem, pads PadMuxer, clk clock.Clock) *Sequencer {
	return &Sequencer{g, pads, clk}
}

// Reset runs the pulse and releases the lines afterwards, also on failure.
func (s *Sequencer) Reset(p Protocol) error {
	l, err := s.ResetAndHold(p)
	if err != nil {
		return err
	}
	return l.Release()
}

// ResetAndHold runs the pulse and hands the still requested lines to the
// caller, who keeps them driven deasserted until it releases them. On
// failure nothing stays requested.
func (s *Sequencer) ResetAndHold(p Protocol) (*gpio.LineGroup, error) {
	cfg := make([]gpio.LineConfig, len(p.Lines))
	for i, n := range p.Lines {
		cfg[i] = gpio.LineConfig{Name: n, Initial: p.asserted()}
	}
	l, err := s.gpio.Request(p.Name, cfg)
	if err != nil {
		return nil, fmt.Errorf("reset %s: %w", p.Name, err)
	}

	s.clk.Sleep(p.Hold)
	if err := l.SetAll(!p.asserted()); err != nil {
		l.Release()
		return nil, fmt.Errorf("reset %s: deassert: %w", p.Name, err)
	}
	if p.Settle > 0 {
		s.clk.Sleep(p.Settle)
	}
	log.Infof("Reset %s (held %v)", p.Name, p.Hold)
	return l, nil
}

// Borrow muxes the pad to GPIO and returns the function that gives it back
// to the peripheral. Callers defer the returned function.
func (s *Sequencer) Borrow(o Override) (restore func()) {
	s.pads.SetupPad(o.Gpio)
	return func() {
		s.pads.SetupPad(o.Function)
		log.Infof("Restored pad %v", o.Function)
	}
}
