// Copyright 2018 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package platform brings up the TS48XX board: pin mux, PHY and hub resets,
// USB clocks and controller registration, in a fixed order.
package platform

import (
	"fmt"
	"time"

	"github.com/jmhodges/clock"
	"github.com/u-root/u-bringup/pkg/bootparam"
	"github.com/u-root/u-bringup/pkg/controller"
	"github.com/u-root/u-bringup/pkg/hardware/gpio"
	"github.com/u-root/u-bringup/pkg/hardware/imx51"
	"github.com/u-root/u-bringup/pkg/hardware/reset"
	"github.com/u-root/u-bringup/pkg/metric"
	"go.uber.org/zap"
)

var (
	FecPhyReset = reset.Protocol{
		Name:  "fec-phy-reset",
		Lines: []string{"FEC_PHY_RESET"},
		Hold:  time.Millisecond,
	}
	// STP is held low together with the PHY reset line
	Usbh1PhyReset = reset.Protocol{
		Name:  "usbh1-phy-reset",
		Lines: []string{"USBH1_STP", "USB_PHY_RESET"},
		Hold:  100 * time.Millisecond,
	}
	UsbHubReset = reset.Protocol{
		Name:  "usb-hub-reset",
		Lines: []string{"USB_HUB_RESET"},
		Hold:  2 * time.Millisecond,
	}
	Usbh1StpOverride = reset.Override{
		Gpio:     imx51.PAD_USBH1_STP__GPIO1_27,
		Function: imx51.PAD_USBH1_STP__USBH1_STP,
	}

	Fec = controller.Controller{
		Name:   "fec",
		Driver: "imx27-fec",
		Device: "imx27-fec.0",
		Mode:   controller.Platform,
		Netdev: "eth0",
	}
	UsbOtgHost = controller.Controller{
		Name:   "usb-otg",
		Driver: "mxc-ehci",
		Device: "mxc-ehci.0",
		Mode:   controller.Host,
	}
	UsbOtgGadget = controller.Controller{
		Name:   "usb-otg",
		Driver: "fsl-usb2-udc",
		Device: "fsl-usb2-udc",
		Mode:   controller.Gadget,
	}
	UsbHost1 = controller.Controller{
		Name:   "usb-host1",
		Driver: "mxc-ehci",
		Device: "mxc-ehci.1",
		Mode:   controller.Host,
	}
	Sdhc = controller.Controller{
		Name:   "sdhc",
		Driver: "sdhci-esdhc-imx",
		Device: "sdhci-esdhc-imx51.0",
		Mode:   controller.Platform,
	}
)

var (
	stepTotal = metric.CounterVec(metric.MetricOpts{
		Namespace: "boardinit",
		Name:      "step_total",
		Help:      "Board bring-up steps by result",
	}, "step", "result")
	stepDuration = metric.GaugeVec(metric.MetricOpts{
		Namespace: "boardinit",
		Name:      "step_duration_seconds",
		Help:      "Time spent in each board bring-up step",
	}, "step")
)

// Pinmux applies pads. imx51.Soc implements it.
type Pinmux interface {
	SetupPad(p imx51.Pad)
	SetupPads(pads []imx51.Pad)
}

// UsbClock selects the clock source of a USB core. imx51.USB implements it.
type UsbClock interface {
	ConfigureClock(c imx51.Core) error
}

// Deps is the hardware the board is brought up on.
type Deps struct {
	Pinmux      Pinmux
	Gpio        *gpio.GpioSystem
	Usb         UsbClock
	Controllers *controller.Framework
	Clock       clock.Clock
	Log         *zap.SugaredLogger
}

type Board struct {
	d   Deps
	seq *reset.Sequencer
	// Hub reset line, driven deasserted for as long as the board runs
	hub *gpio.LineGroup
}

// StepResult is the outcome of one bring-up step.
type StepResult struct {
	Step     string
	Err      error
	Duration time.Duration
}

type Report struct {
	Mode  bootparam.OtgMode
	Steps []StepResult
}

// Err returns the error of the named step, nil if it succeeded or did not
// run.
func (r *Report) Err(step string) error {
	for _, s := range r.Steps {
		if s.Step == step {
			return s.Err
		}
	}
	return nil
}

func (r *Report) Failed() []StepResult {
	var f []StepResult
	for _, s := range r.Steps {
		if s.Err != nil {
			f = append(f, s)
		}
	}
	return f
}

func New(d Deps) *Board {
	return &Board{
		d:   d,
		seq: reset.NewSequencer(d.Gpio, d.Pinmux, d.Clock),
	}
}

func (b *Board) step(r *Report, name string, fn func() error) {
	start := b.d.Clock.Now()
	err := fn()
	dur := b.d.Clock.Now().Sub(start)

	result := "ok"
	if err != nil {
		result = "failed"
		b.d.Log.Errorf("Step %s failed: %v", name, err)
	} else {
		b.d.Log.Infof("Step %s done in %v", name, dur)
	}
	stepTotal.WithLabelValues(name, result).Inc()
	stepDuration.WithLabelValues(name).Set(dur.Seconds())
	r.Steps = append(r.Steps, StepResult{name, err, dur})
}

func (b *Board) configureOtgClock() error {
	return b.d.Usb.ConfigureClock(imx51.CoreOTG)
}

func (b *Board) configureHost1Clock() error {
	return b.d.Usb.ConfigureClock(imx51.CoreHost1)
}

// Bringup runs every step once, in order. A failed step is logged and
// recorded and the remaining steps still run.
func (b *Board) Bringup(mode bootparam.OtgMode) *Report {
	r := &Report{Mode: mode}

	b.step(r, "pinmux", func() error {
		b.d.Pinmux.SetupPads(Pads)
		return nil
	})

	b.step(r, "fec-phy-reset", func() error {
		if err := b.seq.Reset(FecPhyReset); err != nil {
			return err
		}
		b.d.Controllers.Register(Fec)
		return nil
	})

	b.step(r, "otg-mode", func() error {
		b.d.Log.Infof("USB OTG port in %v mode", mode)
		return nil
	})

	b.step(r, "usb-otg", func() error {
		switch mode {
		case bootparam.Host:
			// The clock is switched right before the host driver binds
			return b.d.Controllers.Attach(UsbOtgHost, controller.DeferredInit, b.configureOtgClock)
		case bootparam.Device:
			return b.d.Controllers.Attach(UsbOtgGadget, controller.EagerInit, b.configureOtgClock)
		}
		return fmt.Errorf("unknown OTG mode %v", mode)
	})

	b.usbHost1(r)

	b.step(r, "sdhc", func() error {
		b.d.Controllers.Register(Sdhc)
		return nil
	})
	return r
}

// usbHost1 runs with USBH1_STP borrowed as a GPIO. Handing the pad back is a
// step of its own and is deferred so it runs whatever happens before it.
func (b *Board) usbHost1(r *Report) {
	restore := b.seq.Borrow(Usbh1StpOverride)
	defer b.step(r, "usbh1-stp-restore", func() error {
		restore()
		return nil
	})

	b.step(r, "usbh1-phy-reset", func() error {
		return b.seq.Reset(Usbh1PhyReset)
	})
	b.step(r, "usb-hub-reset", func() error {
		l, err := b.seq.ResetAndHold(UsbHubReset)
		if err != nil {
			return err
		}
		b.hub = l
		return nil
	})
	b.step(r, "usb-host1", func() error {
		return b.d.Controllers.Attach(UsbHost1, controller.EagerInit, b.configureHost1Clock)
	})
}

// Close releases the lines the board kept after bring-up.
func (b *Board) Close() error {
	if b.hub == nil {
		return nil
	}
	return b.hub.Release()
}
