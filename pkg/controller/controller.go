// Copyright 2018-2019 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package controller starts SoC controllers by binding their platform
// devices to kernel drivers.
//
// Registering a controller only queues it. Nothing touches the hardware
// until Probe, which runs any deferred initializer and then binds the
// device through sysfs.
package controller

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/u-root/u-bringup/pkg/logger"
	"github.com/vishvananda/netlink"
	"go.uber.org/multierr"
)

var log = logger.LogContainer.GetSimpleLogger()

type Mode int

const (
	Platform Mode = iota
	Host
	Gadget
)

func (m Mode) String() string {
	switch m {
	case Platform:
		return "platform"
	case Host:
		return "host"
	case Gadget:
		return "gadget"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// InitFunc prepares the hardware of a controller before its driver binds.
type InitFunc func() error

// Strategy selects when a controller's InitFunc runs.
type Strategy int

const (
	// Run the initializer now, before the controller is queued
	EagerInit Strategy = iota
	// Hand the initializer to the framework, which runs it at probe time
	DeferredInit
)

func (s Strategy) String() string {
	if s == EagerInit {
		return "eager"
	}
	return "deferred"
}

type Controller struct {
	Name   string
	Driver string
	Device string
	Mode   Mode
	// Run by Probe right before the device is bound
	Init InitFunc
	// Network interface expected once the driver is bound
	Netdev string
}

// LinkLookup reports whether a network interface exists.
type LinkLookup func(name string) error

func NetlinkLookup(name string) error {
	if _, err := netlink.LinkByName(name); err != nil {
		return fmt.Errorf("unable to get interface %s: %v", name, err)
	}
	return nil
}

type Framework struct {
	fs    afero.Fs
	sysfs string
	link  LinkLookup
	queue []Controller
	bound []string
}

func New(fs afero.Fs, sysfs string, link LinkLookup) *Framework {
	return &Framework{fs: fs, sysfs: sysfs, link: link}
}

// Register queues c for Probe.
func (f *Framework) Register(c Controller) {
	log.Infof("Registered %s controller %s (%s)", c.Mode, c.Name, c.Device)
	f.queue = append(f.queue, c)
}

// Attach registers c with fn run according to s. With EagerInit a failing
// fn leaves c unregistered.
func (f *Framework) Attach(c Controller, s Strategy, fn InitFunc) error {
	switch s {
	case EagerInit:
		if err := fn(); err != nil {
			return fmt.Errorf("%s: init: %w", c.Name, err)
		}
		c.Init = nil
	case DeferredInit:
		c.Init = fn
	default:
		return fmt.Errorf("%s: unknown init strategy %d", c.Name, int(s))
	}
	f.Register(c)
	return nil
}

// Registered returns the queued controllers in registration order.
func (f *Framework) Registered() []Controller {
	return append([]Controller(nil), f.queue...)
}

// Bound returns the devices bound so far.
func (f *Framework) Bound() []string {
	return append([]string(nil), f.bound...)
}

func (f *Framework) bindPath(driver string) string {
	return filepath.Join(f.sysfs, "bus", "platform", "drivers", driver, "bind")
}

func (f *Framework) bind(c Controller) error {
	p := f.bindPath(c.Driver)
	fd, err := f.fs.OpenFile(p, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("%s: %v", c.Name, err)
	}
	defer fd.Close()
	if _, err := fd.Write([]byte(c.Device)); err != nil {
		return fmt.Errorf("%s: bind %s: %v", c.Name, c.Device, err)
	}
	return nil
}

// Probe starts the queued controllers in order. A controller whose init or
// bind fails is left unbound and the rest are still started. The returned
// error combines all failures.
func (f *Framework) Probe() error {
	var errs error
	for _, c := range f.queue {
		if c.Init != nil {
			if err := c.Init(); err != nil {
				log.Errorf("Init of %s failed: %v", c.Name, err)
				errs = multierr.Append(errs, fmt.Errorf("%s: init: %w", c.Name, err))
				continue
			}
		}
		if err := f.bind(c); err != nil {
			log.Errorf("Bind failed: %v", err)
			errs = multierr.Append(errs, err)
			continue
		}
		f.bound = append(f.bound, c.Device)
		log.Infof("Bound %s to %s", c.Device, c.Driver)

		if c.Netdev != "" && f.link != nil {
			if err := f.link(c.Netdev); err != nil {
				log.Warnf("%s bound but %v", c.Name, err)
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", c.Name, err))
			}
		}
	}
	f.queue = nil
	return errs
}
