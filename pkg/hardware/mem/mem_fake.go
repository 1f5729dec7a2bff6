// Copyright 2018 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mem

import (
	"fmt"
	"sync"

	"github.com/u-root/u-bringup/pkg/hardware"
)

// Op is one register access seen by a FakeMapper.
type Op struct {
	Write   bool
	Address uintptr
	Data    uint32
}

func (o Op) String() string {
	t := "read"
	if o.Write {
		t = "write"
	}
	return fmt.Sprintf("{%s @ %08x = %08x}", t, o.Address, o.Data)
}

// FakeMapper is a register file backed Mapper for tests. Registers that were
// never set read as zero.
type FakeMapper struct {
	lock  sync.Mutex
	regs  map[uintptr]uint32
	fail  map[uintptr]bool
	ops   []Op
	open  int
	total int
}

func NewFakeMapper() *FakeMapper {
	return &FakeMapper{
		regs: make(map[uintptr]uint32),
		fail: make(map[uintptr]bool),
	}
}

// Set presets the register at the absolute address a.
func (m *FakeMapper) Set(a uintptr, v uint32) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.regs[a] = v
}

// Get returns the register at the absolute address a without recording an op.
func (m *FakeMapper) Get(a uintptr) uint32 {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.regs[a]
}

// FailMap makes every later Map of base fail.
func (m *FakeMapper) FailMap(base uintptr) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.fail[base] = true
}

// Ops returns the accesses recorded so far.
func (m *FakeMapper) Ops() []Op {
	m.lock.Lock()
	defer m.lock.Unlock()
	return append([]Op(nil), m.ops...)
}

// Writes returns only the recorded writes.
func (m *FakeMapper) Writes() []Op {
	var w []Op
	for _, o := range m.Ops() {
		if o.Write {
			w = append(w, o)
		}
	}
	return w
}

// Open is the number of windows currently mapped.
func (m *FakeMapper) Open() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.open
}

// Mapped is the number of successful Map calls so far.
func (m *FakeMapper) Mapped() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.total
}

func (m *FakeMapper) Map(base uintptr, size int) (Window, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	if m.fail[base] {
		return nil, fmt.Errorf("mmap %#08x+%#x: %w", base, size, hardware.ErrResourceUnavailable)
	}
	m.open++
	m.total++
	return &fakeWindow{m: m, base: base, size: uintptr(size), mapped: true}, nil
}

type fakeWindow struct {
	m      *FakeMapper
	base   uintptr
	size   uintptr
	mapped bool
}

func (w *fakeWindow) Base() uintptr {
	return w.base
}

func (w *fakeWindow) check(off uintptr) {
	if !w.mapped {
		panic(fmt.Sprintf("access to unmapped window %#08x", w.base))
	}
	if off+4 > w.size || off%4 != 0 {
		panic(fmt.Sprintf("offset %#x outside window %#08x+%#x", off, w.base, w.size))
	}
}

func (w *fakeWindow) Read32(off uintptr) uint32 {
	w.check(off)
	w.m.lock.Lock()
	defer w.m.lock.Unlock()
	v := w.m.regs[w.base+off]
	w.m.ops = append(w.m.ops, Op{false, w.base + off, v})
	return v
}

func (w *fakeWindow) Write32(off uintptr, v uint32) {
	w.check(off)
	w.m.lock.Lock()
	defer w.m.lock.Unlock()
	w.m.regs[w.base+off] = v
	w.m.ops = append(w.m.ops, Op{true, w.base + off, v})
}

func (w *fakeWindow) Unmap() error {
	if !w.mapped {
		return nil
	}
	w.mapped = false
	w.m.lock.Lock()
	defer w.m.lock.Unlock()
	w.m.open--
	return nil
}
