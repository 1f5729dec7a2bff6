// Copyright 2018 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpio

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

type gpiohandle_request struct {
	lineoffsets    [GPIO_MAX_LINES]uint32
	flags          uint32
	default_values [GPIO_MAX_LINES]uint8
	consumer_label [32]byte
	lines          uint32
	fd             uint32
}

type gpiohandle_config struct {
	flags          uint32
	default_values [GPIO_MAX_LINES]uint8
	padding        [4]uint32
}

type gpiohandle_data struct {
	values [GPIO_MAX_LINES]uint8
}

const (
	GPIO_GET_LINEHANDLE_IOCTL        = 0xc16cb403
	GPIOHANDLE_SET_LINE_VALUES_IOCTL = 0xc040b409
	GPIOHANDLE_SET_CONFIG_IOCTL      = 0xc054b40a

	GPIOHANDLE_REQUEST_INPUT  = (1 << 0)
	GPIOHANDLE_REQUEST_OUTPUT = (1 << 1)

	// Lines per gpiochip, one chip per SoC GPIO bank
	GPIO_BANK_LINES = 32
)

// lnxBank is an open line handle on one gpiochip.
type lnxBank interface {
	setOutput(out []bool) error
	setValues(out []bool) error
	close() error
}

type gpioLnx struct {
	chip     string
	openBank func(label, path string, offsets []uint32) (lnxBank, error)
}

// One kernel handle per bank touched by a request. idx maps the handle's
// lines back to their position in the request.
type gpioLnxHandle struct {
	b   lnxBank
	idx []int
}

type gpioLnxLine struct {
	handles []gpioLnxHandle
}

type lnxFile struct {
	f *os.File
}

// NewLinuxGpio returns the gpiochip character device backend. chip is a
// printf pattern taking the bank number, for example "/dev/gpiochip%d".
func NewLinuxGpio(chip string) *gpioLnx {
	return &gpioLnx{chip, requestBank}
}

func pick(out []bool, idx []int) []bool {
	v := make([]bool, len(idx))
	for i, j := range idx {
		v[i] = out[j]
	}
	return v
}

// A request spanning several banks first takes every bank with the line
// direction left as it is, and only then turns the lines into outputs. A
// bank that cannot be had leaves all lines of the request undriven.
func (g *gpioLnx) requestLineHandle(label string, lines []uint32, out []bool) (gpioLineImpl, error) {
	var banks []uint32
	byBank := map[uint32][]int{}
	for i, l := range lines {
		b := l / GPIO_BANK_LINES
		if _, found := byBank[b]; !found {
			banks = append(banks, b)
		}
		byBank[b] = append(byBank[b], i)
	}

	res := &gpioLnxLine{}
	for _, b := range banks {
		offsets := make([]uint32, len(byBank[b]))
		for i, j := range byBank[b] {
			offsets[i] = lines[j] % GPIO_BANK_LINES
		}
		h, err := g.openBank(label, fmt.Sprintf(g.chip, b), offsets)
		if err != nil {
			res.close()
			return nil, err
		}
		res.handles = append(res.handles, gpioLnxHandle{h, byBank[b]})
	}
	for _, h := range res.handles {
		if err := h.b.setOutput(pick(out, h.idx)); err != nil {
			res.close()
			return nil, err
		}
	}
	return res, nil
}

func requestBank(label, path string, offsets []uint32) (lnxBank, error) {
	c, err := os.OpenFile(path, os.O_RDWR, 0600)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	// No direction flag, the kernel keeps the line as it is
	rinfo := gpiohandle_request{}
	copy(rinfo.lineoffsets[:], offsets)
	rinfo.lines = uint32(len(offsets))
	copy(rinfo.consumer_label[:len(rinfo.consumer_label)-1], label)
	_, _, errno := unix.Syscall(
		unix.SYS_IOCTL,
		c.Fd(),
		uintptr(GPIO_GET_LINEHANDLE_IOCTL),
		uintptr(unsafe.Pointer(&rinfo)))
	if errno != 0 {
		return nil, fmt.Errorf("%s: GPIO_GET_LINEHANDLE_IOCTL: errno %v", path, errno)
	}
	return &lnxFile{os.NewFile(uintptr(rinfo.fd), "gpio-"+label)}, nil
}

func (l *lnxFile) setOutput(out []bool) error {
	cinfo := gpiohandle_config{flags: GPIOHANDLE_REQUEST_OUTPUT}
	for i, v := range out {
		if v {
			cinfo.default_values[i] = 1
		}
	}
	_, _, errno := unix.Syscall(
		unix.SYS_IOCTL,
		l.f.Fd(),
		uintptr(GPIOHANDLE_SET_CONFIG_IOCTL),
		uintptr(unsafe.Pointer(&cinfo)))
	if errno != 0 {
		return fmt.Errorf("GPIOHANDLE_SET_CONFIG_IOCTL: errno %v", errno)
	}
	return nil
}

func (l *lnxFile) setValues(out []bool) error {
	hinfo := gpiohandle_data{}
	for i, v := range out {
		if v {
			hinfo.values[i] = 1
		}
	}
	_, _, errno := unix.Syscall(
		unix.SYS_IOCTL,
		l.f.Fd(),
		uintptr(GPIOHANDLE_SET_LINE_VALUES_IOCTL),
		uintptr(unsafe.Pointer(&hinfo)))
	if errno != 0 {
		return fmt.Errorf("GPIOHANDLE_SET_LINE_VALUES_IOCTL: errno %v", errno)
	}
	return nil
}

func (l *lnxFile) close() error {
	return l.f.Close()
}

func (l *gpioLnxLine) setValues(out []bool) error {
	for _, h := range l.handles {
		if err := h.b.setValues(pick(out, h.idx)); err != nil {
			return err
		}
	}
	return nil
}

// The kernel frees the lines when the last handle fd is closed.
func (l *gpioLnxLine) close() error {
	var first error
	for _, h := range l.handles {
		if err := h.b.close(); err != nil && first == nil {
			first = err
		}
	}
	l.handles = nil
	return first
}
