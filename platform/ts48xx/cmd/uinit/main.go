// Copyright 2018 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// uinit brings up the TS48XX board hardware once at boot, before the
// drivers for the USB, FEC and SD controllers are bound.

package main

import (
	"flag"

	"github.com/jmhodges/clock"
	"github.com/spf13/afero"
	"github.com/u-root/u-bringup/config"
	"github.com/u-root/u-bringup/pkg/bootparam"
	"github.com/u-root/u-bringup/pkg/controller"
	"github.com/u-root/u-bringup/pkg/hardware/gpio"
	"github.com/u-root/u-bringup/pkg/hardware/imx51"
	"github.com/u-root/u-bringup/pkg/hardware/mem"
	"github.com/u-root/u-bringup/pkg/logger"
	"github.com/u-root/u-bringup/pkg/metric"
	tsgpio "github.com/u-root/u-bringup/platform/ts48xx/pkg/gpio"
	"github.com/u-root/u-bringup/platform/ts48xx/pkg/platform"
)

var (
	cfg      = config.DefaultConfig
	devMem   = flag.String("mem", cfg.Paths.DevMem, "Physical memory device")
	gpioChip = flag.String("gpiochip", cfg.Paths.GpioChip, "GPIO chip device, %d is the bank number")
	sysfs    = flag.String("sysfs", cfg.Paths.Sysfs, "Root of sysfs")
	textfile = flag.String("metrics", cfg.Paths.MetricsTextfile, "Prometheus textfile written after bring-up")
	lc       = logger.LogContainer
	log      = lc.GetSimpleLogger()
)

func main() {
	flag.Parse()
	lc.GetLogger().Info("TS48XX bring-up",
		lc.String("version", cfg.Version.Version),
		lc.String("git", cfg.Version.GitHash))

	m, err := mem.OpenDevMem(*devMem)
	if err != nil {
		log.Fatalf("Open %s: %v", *devMem, err)
	}
	defer m.Close()

	// Without the pin mux none of the following steps can work
	soc, err := imx51.Open(m)
	if err != nil {
		log.Fatalf("Map IOMUX controller: %v", err)
	}
	defer soc.Close()

	clk := clock.New()
	mode := bootparam.ResolveOtgMode(bootparam.Cmdline, cfg.OtgModeParam, log)
	fw := controller.New(afero.NewOsFs(), *sysfs, controller.NetlinkLookup)

	b := platform.New(platform.Deps{
		Pinmux:      soc,
		Gpio:        gpio.NewGpioSystem(&tsgpio.Gpio{}, gpio.NewLinuxGpio(*gpioChip)),
		Usb:         imx51.NewUSB(m, clk),
		Controllers: fw,
		Clock:       clk,
		Log:         log,
	})
	defer b.Close()

	r := b.Bringup(mode)
	if err := fw.Probe(); err != nil {
		log.Errorf("Controller probe: %v", err)
	}
	if f := r.Failed(); len(f) > 0 {
		log.Warnf("%d of %d bring-up steps failed", len(f), len(r.Steps))
	}
	if err := metric.WriteTextfile(*textfile); err != nil {
		log.Warnf("Write metrics: %v", err)
	}
}
