// Copyright 2018 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpio

import (
	"fmt"
	"sync"
	"time"

	"github.com/jmhodges/clock"
)

// Event is one level change seen by a FakeGpio.
type Event struct {
	Time  time.Time
	Port  uint32
	Value bool
}

// FakeGpio records line levels and when they changed. Requests for lines
// passed to FailRequest are refused the way the kernel refuses a busy line.
type FakeGpio struct {
	clk    clock.Clock
	lock   sync.Mutex
	level  map[uint32]bool
	held   map[uint32]bool
	fail   map[uint32]bool
	events []Event
}

type fakeLine struct {
	g     *FakeGpio
	lines []uint32
}

func NewFakeGpio(clk clock.Clock) *FakeGpio {
	return &FakeGpio{
		clk:   clk,
		level: map[uint32]bool{},
		held:  map[uint32]bool{},
		fail:  map[uint32]bool{},
	}
}

// SetLevel presets the level of a line as if something else drove it.
func (g *FakeGpio) SetLevel(port uint32, v bool) {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.level[port] = v
}

func (g *FakeGpio) Level(port uint32) bool {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.level[port]
}

// Held reports whether a kernel handle is open for the line.
func (g *FakeGpio) Held(port uint32) bool {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.held[port]
}

func (g *FakeGpio) FailRequest(port uint32) {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.fail[port] = true
}

// Events returns the level changes of one line in order.
func (g *FakeGpio) Events(port uint32) []Event {
	g.lock.Lock()
	defer g.lock.Unlock()
	var e []Event
	for _, ev := range g.events {
		if ev.Port == port {
			e = append(e, ev)
		}
	}
	return e
}

func (g *FakeGpio) drive(lines []uint32, out []bool) {
	now := g.clk.Now()
	for i, l := range lines {
		g.level[l] = out[i]
		g.events = append(g.events, Event{now, l, out[i]})
	}
}

func (g *FakeGpio) requestLineHandle(label string, lines []uint32, out []bool) (gpioLineImpl, error) {
	g.lock.Lock()
	defer g.lock.Unlock()
	for _, l := range lines {
		if g.fail[l] || g.held[l] {
			return nil, fmt.Errorf("GPIO_GET_LINEHANDLE_IOCTL: line %d: device or resource busy", l)
		}
	}
	for _, l := range lines {
		g.held[l] = true
	}
	g.drive(lines, out)
	return &fakeLine{g, append([]uint32(nil), lines...)}, nil
}

func (l *fakeLine) setValues(out []bool) error {
	l.g.lock.Lock()
	defer l.g.lock.Unlock()
	l.g.drive(l.lines, out)
	return nil
}

func (l *fakeLine) close() error {
	l.g.lock.Lock()
	defer l.g.lock.Unlock()
	for _, p := range l.lines {
		delete(l.g.held, p)
	}
	return nil
}
