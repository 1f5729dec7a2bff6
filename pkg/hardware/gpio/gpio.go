// Copyright 2018 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpio

import (
	"fmt"
	"strings"
	"sync"

	"github.com/u-root/u-bringup/pkg/hardware"
	"github.com/u-root/u-bringup/pkg/logger"
)

var log = logger.LogContainer.GetSimpleLogger()

// Kernel limit of lines in one line handle request
const GPIO_MAX_LINES = 64

type GpioPlatform interface {
	GpioNameToPort(string) (uint32, bool)
	GpioPortToName(uint32) (string, bool)
}

type gpioLineImpl interface {
	setValues(out []bool) error
	close() error
}

type gpioImpl interface {
	requestLineHandle(label string, lines []uint32, out []bool) (gpioLineImpl, error)
}

// GpioSystem hands out exclusive ownership of GPIO lines. A line is either
// free or owned by exactly one LineGroup.
type GpioSystem struct {
	p     GpioPlatform
	impl  gpioImpl
	owner map[uint32]string
	m     sync.Mutex
}

// LineConfig names a line and the level it is driven to when requested.
type LineConfig struct {
	Name    string
	Initial bool
}

// LineGroup is a set of output lines requested together under one label.
type LineGroup struct {
	g        *GpioSystem
	label    string
	names    []string
	ports    []uint32
	handle   gpioLineImpl
	released bool
	m        sync.Mutex
}

func NewGpioSystem(p GpioPlatform, impl gpioImpl) *GpioSystem {
	return &GpioSystem{
		p:     p,
		impl:  impl,
		owner: map[uint32]string{},
	}
}

// Request acquires all lines as outputs driven to their initial levels. It
// is all or nothing: when any line is unknown, already owned, or refused by
// the kernel, no line is left acquired and the error wraps
// hardware.ErrResourceUnavailable.
func (g *GpioSystem) Request(label string, lines []LineConfig) (*LineGroup, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%s: no GPIO lines requested", label)
	}
	if len(lines) > GPIO_MAX_LINES {
		return nil, fmt.Errorf("%s: too many GPIO lines: %d > %d", label, len(lines), GPIO_MAX_LINES)
	}

	names := make([]string, len(lines))
	ports := make([]uint32, len(lines))
	vals := make([]bool, len(lines))
	for i, l := range lines {
		port, ok := g.p.GpioNameToPort(l.Name)
		if !ok {
			return nil, fmt.Errorf("%s: could not resolve GPIO %s: %w", label, l.Name, hardware.ErrResourceUnavailable)
		}
		names[i] = l.Name
		ports[i] = port
		vals[i] = l.Initial
	}

	g.m.Lock()
	defer g.m.Unlock()
	for i, port := range ports {
		if o, found := g.owner[port]; found {
			return nil, fmt.Errorf("%s: GPIO %s is owned by %s: %w", label, names[i], o, hardware.ErrResourceUnavailable)
		}
	}
	h, err := g.impl.requestLineHandle(label, ports, vals)
	if err != nil {
		return nil, fmt.Errorf("%s: request %s: %w: %v", label, strings.Join(names, ","), hardware.ErrResourceUnavailable, err)
	}
	for i, port := range ports {
		g.owner[port] = label
		log.Infof("Requested GPIO line %-20s = %v [%s]", names[i], vals[i], label)
	}
	return &LineGroup{
		g:      g,
		label:  label,
		names:  names,
		ports:  ports,
		handle: h,
	}, nil
}

// Owner returns the label of the group currently holding the named line.
func (g *GpioSystem) Owner(name string) (string, bool) {
	port, ok := g.p.GpioNameToPort(name)
	if !ok {
		return "", false
	}
	g.m.Lock()
	defer g.m.Unlock()
	o, found := g.owner[port]
	return o, found
}

func (l *LineGroup) Label() string {
	return l.label
}

func (l *LineGroup) Names() []string {
	return append([]string(nil), l.names...)
}

// Set drives every line of the group, in request order.
func (l *LineGroup) Set(values []bool) error {
	l.m.Lock()
	defer l.m.Unlock()
	if l.released {
		return fmt.Errorf("%s: GPIO lines already released", l.label)
	}
	if len(values) != len(l.ports) {
		return fmt.Errorf("%s: got %d values for %d lines", l.label, len(values), len(l.ports))
	}
	if err := l.handle.setValues(values); err != nil {
		return fmt.Errorf("%s: %v", l.label, err)
	}
	return nil
}

// SetAll drives every line of the group to v.
func (l *LineGroup) SetAll(v bool) error {
	values := make([]bool, len(l.ports))
	for i := range values {
		values[i] = v
	}
	return l.Set(values)
}

// Release returns the lines to the free pool. Releasing twice is a no-op.
func (l *LineGroup) Release() error {
	l.m.Lock()
	defer l.m.Unlock()
	if l.released {
		return nil
	}
	l.released = true

	l.g.m.Lock()
	for _, port := range l.ports {
		delete(l.g.owner, port)
	}
	l.g.m.Unlock()

	if err := l.handle.close(); err != nil {
		return fmt.Errorf("%s: release: %v", l.label, err)
	}
	return nil
}
