// Copyright 2018-2019 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mem gives access to memory mapped SoC registers.
//
// A Window is a mapping of a physical register block. Windows are meant to
// be short lived: map, touch the registers, unmap. Nothing in here caches
// register values, every Read32 goes to the hardware.
package mem

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/u-root/u-bringup/pkg/hardware"
	"golang.org/x/sys/unix"
)

type Window interface {
	// Base is the physical address the window starts at.
	Base() uintptr
	Read32(off uintptr) uint32
	Write32(off uintptr, v uint32)
	// Unmap releases the mapping. Accessing the window afterwards panics.
	Unmap() error
}

type Mapper interface {
	Map(base uintptr, size int) (Window, error)
}

// DevMem maps physical memory through /dev/mem.
type DevMem struct {
	f *os.File
}

func OpenDevMem(path string) (*DevMem, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0600)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &DevMem{f}, nil
}

func (d *DevMem) Close() error {
	return d.f.Close()
}

// span returns the page aligned mapping needed to cover [base, base+size).
func span(base uintptr, size int, pageSize uintptr) (page uintptr, delta uintptr, length int) {
	page = base & ^(pageSize - 1)
	delta = base - page
	end := (delta + uintptr(size) + pageSize - 1) & ^(pageSize - 1)
	return page, delta, int(end)
}

func (d *DevMem) Map(base uintptr, size int) (Window, error) {
	page, delta, length := span(base, size, uintptr(unix.Getpagesize()))
	b, err := unix.Mmap(int(d.f.Fd()), int64(page), length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap %#08x+%#x: %w: %v", base, size, hardware.ErrResourceUnavailable, err)
	}
	return &devWindow{mem: b, delta: delta, base: base, size: uintptr(size)}, nil
}

type devWindow struct {
	mem   []byte
	delta uintptr
	base  uintptr
	size  uintptr
}

func (w *devWindow) Base() uintptr {
	return w.base
}

func (w *devWindow) reg(off uintptr) *uint32 {
	if w.mem == nil {
		panic(fmt.Sprintf("access to unmapped window %#08x", w.base))
	}
	if off+4 > w.size || off%4 != 0 {
		panic(fmt.Sprintf("offset %#x outside window %#08x+%#x", off, w.base, w.size))
	}
	return (*uint32)(unsafe.Pointer(&w.mem[w.delta+off]))
}

func (w *devWindow) Read32(off uintptr) uint32 {
	return *w.reg(off)
}

func (w *devWindow) Write32(off uintptr, v uint32) {
	*w.reg(off) = v
}

func (w *devWindow) Unmap() error {
	if w.mem == nil {
		return nil
	}
	err := unix.Munmap(w.mem)
	w.mem = nil
	if err != nil {
		return fmt.Errorf("munmap %#08x: %v", w.base, err)
	}
	return nil
}
