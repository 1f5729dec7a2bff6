// Copyright 2018 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package platform

import (
	"errors"
	"testing"
	"time"

	"github.com/jmhodges/clock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/afero"
	"github.com/u-root/u-bringup/pkg/bootparam"
	"github.com/u-root/u-bringup/pkg/controller"
	"github.com/u-root/u-bringup/pkg/hardware"
	"github.com/u-root/u-bringup/pkg/hardware/gpio"
	"github.com/u-root/u-bringup/pkg/hardware/imx51"
	"github.com/u-root/u-bringup/pkg/hardware/mem"
	tsgpio "github.com/u-root/u-bringup/platform/ts48xx/pkg/gpio"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const (
	phyCtrlFunc2 = imx51.USB_OTG_BASE + imx51.USBOTHER_REGS_OFFSET + imx51.USB_PHY_CTR_FUNC2_OFFSET
	usbCtrl1     = imx51.USB_OTG_BASE + imx51.USBOTHER_REGS_OFFSET + imx51.USB_CTRL_1_OFFSET
)

var (
	stpMux = imx51.IOMUXC_BASE + uintptr(imx51.PAD_USBH1_STP__USBH1_STP.MuxCtrlOfs)

	hubReset uint32
	stp      uint32
	phyReset uint32
	fecReset uint32
)

func init() {
	g := &tsgpio.Gpio{}
	hubReset, _ = g.GpioNameToPort("USB_HUB_RESET")
	stp, _ = g.GpioNameToPort("USBH1_STP")
	phyReset, _ = g.GpioNameToPort("USB_PHY_RESET")
	fecReset, _ = g.GpioNameToPort("FEC_PHY_RESET")
}

type testBoard struct {
	*Board
	mem  *mem.FakeMapper
	gpio *gpio.FakeGpio
	clk  clock.FakeClock
	fs   afero.Fs
	fw   *controller.Framework
	logs *observer.ObservedLogs
}

func newTestBoard(t *testing.T) *testBoard {
	t.Helper()
	m := mem.NewFakeMapper()
	soc, err := imx51.Open(m)
	if err != nil {
		t.Fatalf("imx51.Open: %v", err)
	}
	clk := clock.NewFake()
	f := gpio.NewFakeGpio(clk)
	fs := afero.NewMemMapFs()
	for _, c := range []controller.Controller{Fec, UsbOtgHost, UsbOtgGadget, UsbHost1, Sdhc} {
		if err := afero.WriteFile(fs, "/sys/bus/platform/drivers/"+c.Driver+"/bind", nil, 0200); err != nil {
			t.Fatal(err)
		}
	}
	fw := controller.New(fs, "/sys", nil)
	core, logs := observer.New(zapcore.InfoLevel)

	b := New(Deps{
		Pinmux:      soc,
		Gpio:        gpio.NewGpioSystem(&tsgpio.Gpio{}, f),
		Usb:         imx51.NewUSB(m, clk),
		Controllers: fw,
		Clock:       clk,
		Log:         zap.New(core).Sugar(),
	})
	return &testBoard{b, m, f, clk, fs, fw, logs}
}

func registered(fw *controller.Framework) []string {
	var n []string
	for _, c := range fw.Registered() {
		n = append(n, c.Device)
	}
	return n
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func indexOf(ops []mem.Op, from int, fn func(mem.Op) bool) int {
	for i := from; i < len(ops); i++ {
		if fn(ops[i]) {
			return i
		}
	}
	return -1
}

func TestStepOrder(t *testing.T) {
	b := newTestBoard(t)
	r := b.Bringup(bootparam.Device)

	want := []string{
		"pinmux",
		"fec-phy-reset",
		"otg-mode",
		"usb-otg",
		"usbh1-phy-reset",
		"usb-hub-reset",
		"usb-host1",
		"usbh1-stp-restore",
		"sdhc",
	}
	var got []string
	for _, s := range r.Steps {
		got = append(got, s.Step)
	}
	if !equal(got, want) {
		t.Errorf("steps = %v, want %v", got, want)
	}
	if f := r.Failed(); len(f) != 0 {
		t.Errorf("failed steps: %v", f)
	}
	if r.Mode != bootparam.Device {
		t.Errorf("report mode = %v, want device", r.Mode)
	}
}

func TestPinsApplyFirst(t *testing.T) {
	b := newTestBoard(t)
	start := b.clk.Now()
	b.Bringup(bootparam.Device)

	n := 0
	for _, p := range Pads {
		if p.MuxCtrlOfs != 0 {
			n++
		}
		if p.SelInputOfs != 0 {
			n++
		}
		if p.PadCtrl&imx51.NO_PAD_CTRL == 0 && p.PadCtrlOfs != 0 {
			n++
		}
	}
	ops := b.mem.Ops()
	if len(ops) < n {
		t.Fatalf("%d register accesses, want at least %d for the pin table", len(ops), n)
	}
	if ops[0].Address != imx51.IOMUXC_BASE+uintptr(Pads[0].MuxCtrlOfs) {
		t.Errorf("first access %v is not the mux of %v", ops[0], Pads[0])
	}
	for i, o := range ops[:n] {
		if !o.Write || o.Address < imx51.IOMUXC_BASE || o.Address >= imx51.IOMUXC_BASE+imx51.IOMUXC_SIZE {
			t.Fatalf("access %d = %v during the pin table", i, o)
		}
	}
	if ev := b.gpio.Events(fecReset); len(ev) == 0 || !ev[0].Time.Equal(start) {
		t.Errorf("FEC PHY reset events = %v, want pulse started right after pin mux", ev)
	}
}

func TestPadTable(t *testing.T) {
	has := func(p imx51.Pad) bool {
		for _, q := range Pads {
			if q == p {
				return true
			}
		}
		return false
	}
	for _, p := range []imx51.Pad{imx51.PAD_GPIO1_7__GPIO1_7, imx51.PAD_EIM_D21__GPIO2_5, imx51.PAD_EIM_A20__GPIO2_14} {
		if !has(p) {
			t.Errorf("reset line pad %v missing from Pads", p)
		}
	}
	for _, p := range []imx51.Pad{imx51.PAD_USBH1_STP__USBH1_STP, imx51.PAD_USBH1_STP__GPIO1_27} {
		if has(p) {
			t.Errorf("pad %v is handled by the USBH1 reset and must not be in Pads", p)
		}
	}
}

func TestHostModeDefersOtgClock(t *testing.T) {
	b := newTestBoard(t)
	b.Bringup(bootparam.Host)

	if i := indexOf(b.mem.Ops(), 0, func(o mem.Op) bool { return o.Address == phyCtrlFunc2 }); i >= 0 {
		t.Fatalf("OTG clock touched during bring-up in host mode: %v", b.mem.Ops()[i])
	}
	if got, want := registered(b.fw), []string{"imx27-fec.0", "mxc-ehci.0", "mxc-ehci.1", "sdhci-esdhc-imx51.0"}; !equal(got, want) {
		t.Fatalf("registered = %v, want %v", got, want)
	}
	if b.fw.Registered()[1].Init == nil {
		t.Fatalf("OTG host controller registered without deferred init")
	}

	if err := b.fw.Probe(); err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if v := b.mem.Get(phyCtrlFunc2); v != imx51.USB_PLL_DIV_19_2_MHZ {
		t.Errorf("PHY_CTRL_FUNC2 = %#x after probe, want %#x", v, imx51.USB_PLL_DIV_19_2_MHZ)
	}
	bound := b.fw.Bound()
	if len(bound) != 4 || bound[1] != "mxc-ehci.0" {
		t.Errorf("bound = %v", bound)
	}
}

func TestDeviceModeEagerOtgClock(t *testing.T) {
	b := newTestBoard(t)
	b.mem.Set(phyCtrlFunc2, 0xffffffff)
	b.Bringup(bootparam.Device)

	if v := b.mem.Get(phyCtrlFunc2); v != 0xfffffffd {
		t.Errorf("PHY_CTRL_FUNC2 = %08x after bring-up, want fffffffd", v)
	}
	if got, want := registered(b.fw), []string{"imx27-fec.0", "fsl-usb2-udc", "mxc-ehci.1", "sdhci-esdhc-imx51.0"}; !equal(got, want) {
		t.Fatalf("registered = %v, want %v", got, want)
	}
	if b.fw.Registered()[1].Init != nil {
		t.Errorf("gadget registered with an init left for probe time")
	}
}

func TestBringupDelays(t *testing.T) {
	for _, c := range []struct {
		mode bootparam.OtgMode
		want time.Duration
	}{
		// FEC 1ms, USBH1 PHY 100ms, hub 2ms, host1 clock 10ms
		{bootparam.Host, 113 * time.Millisecond},
		// and the OTG clock 10ms
		{bootparam.Device, 123 * time.Millisecond},
	} {
		b := newTestBoard(t)
		start := b.clk.Now()
		b.Bringup(c.mode)
		if d := b.clk.Now().Sub(start); d != c.want {
			t.Errorf("%v mode bring-up took %v, want %v", c.mode, d, c.want)
		}
	}
}

func TestResetPulses(t *testing.T) {
	b := newTestBoard(t)
	b.Bringup(bootparam.Host)

	for _, c := range []struct {
		port uint32
		hold time.Duration
	}{
		{fecReset, time.Millisecond},
		{stp, 100 * time.Millisecond},
		{phyReset, 100 * time.Millisecond},
		{hubReset, 2 * time.Millisecond},
	} {
		ev := b.gpio.Events(c.port)
		if len(ev) != 2 || ev[0].Value || !ev[1].Value {
			t.Errorf("line %d events = %v, want one low-high pulse", c.port, ev)
			continue
		}
		if d := ev[1].Time.Sub(ev[0].Time); d != c.hold {
			t.Errorf("line %d held for %v, want %v", c.port, d, c.hold)
		}
	}
}

func TestStpBorrowedAroundHost1(t *testing.T) {
	b := newTestBoard(t)
	b.Bringup(bootparam.Host)

	w := b.mem.Writes()
	toGpio := indexOf(w, 0, func(o mem.Op) bool { return o.Address == stpMux && o.Data == 2 })
	clk := indexOf(w, 0, func(o mem.Op) bool { return o.Address == usbCtrl1 })
	restore := indexOf(w, toGpio+1, func(o mem.Op) bool { return o.Address == stpMux && o.Data == 0 })
	if toGpio < 0 || clk < 0 || restore < 0 {
		t.Fatalf("missing writes: gpio=%d clock=%d restore=%d in %v", toGpio, clk, restore, w)
	}
	if !(toGpio < clk && clk < restore) {
		t.Errorf("order gpio=%d clock=%d restore=%d, want pad restored after the host1 clock", toGpio, clk, restore)
	}
	if v := b.mem.Get(usbCtrl1); v != imx51.USB_CTRL_UH1_EXT_CLK_EN {
		t.Errorf("USB_CTRL_1 = %#x, want %#x", v, imx51.USB_CTRL_UH1_EXT_CLK_EN)
	}
}

func TestFecResetFailure(t *testing.T) {
	b := newTestBoard(t)
	b.gpio.FailRequest(fecReset)
	before := testutil.ToFloat64(stepTotal.WithLabelValues("fec-phy-reset", "failed"))

	r := b.Bringup(bootparam.Device)
	if err := r.Err("fec-phy-reset"); !errors.Is(err, hardware.ErrResourceUnavailable) {
		t.Errorf("fec-phy-reset error = %v, want ErrResourceUnavailable", err)
	}
	if f := r.Failed(); len(f) != 1 {
		t.Errorf("failed steps = %v, want only the FEC reset", f)
	}
	if got, want := registered(b.fw), []string{"fsl-usb2-udc", "mxc-ehci.1", "sdhci-esdhc-imx51.0"}; !equal(got, want) {
		t.Errorf("registered = %v, want %v", got, want)
	}
	if after := testutil.ToFloat64(stepTotal.WithLabelValues("fec-phy-reset", "failed")); after != before+1 {
		t.Errorf("failed counter went from %v to %v", before, after)
	}
	if b.logs.FilterMessageSnippet("fec-phy-reset failed").Len() != 1 {
		t.Errorf("FEC reset failure not logged: %v", b.logs.All())
	}
}

func TestUsbWindowFailure(t *testing.T) {
	b := newTestBoard(t)
	b.mem.FailMap(imx51.USB_OTG_BASE)

	r := b.Bringup(bootparam.Device)
	for _, s := range []string{"usb-otg", "usb-host1"} {
		if err := r.Err(s); !errors.Is(err, hardware.ErrResourceUnavailable) {
			t.Errorf("%s error = %v, want ErrResourceUnavailable", s, err)
		}
	}
	if f := r.Failed(); len(f) != 2 {
		t.Errorf("failed steps = %v, want the two USB cores", f)
	}
	if got, want := registered(b.fw), []string{"imx27-fec.0", "sdhci-esdhc-imx51.0"}; !equal(got, want) {
		t.Errorf("registered = %v, want %v", got, want)
	}
	w := b.mem.Writes()
	toGpio := indexOf(w, 0, func(o mem.Op) bool { return o.Address == stpMux && o.Data == 2 })
	if toGpio < 0 || indexOf(w, toGpio+1, func(o mem.Op) bool { return o.Address == stpMux && o.Data == 0 }) < 0 {
		t.Errorf("USBH1_STP not handed back to the ULPI function: %v", w)
	}
}

func TestStpRestoredWhenPhyResetFails(t *testing.T) {
	b := newTestBoard(t)
	b.gpio.FailRequest(phyReset)

	r := b.Bringup(bootparam.Host)
	if r.Err("usbh1-phy-reset") == nil {
		t.Fatalf("usbh1-phy-reset succeeded with a busy line")
	}
	if r.Err("usb-host1") != nil || r.Err("sdhc") != nil {
		t.Errorf("later steps failed: %v", r.Failed())
	}
	if len(b.gpio.Events(stp)) != 0 {
		t.Errorf("STP driven although its group could not be requested")
	}
	w := b.mem.Writes()
	toGpio := indexOf(w, 0, func(o mem.Op) bool { return o.Address == stpMux && o.Data == 2 })
	restore := indexOf(w, toGpio+1, func(o mem.Op) bool { return o.Address == stpMux && o.Data == 0 })
	if toGpio < 0 || restore < 0 {
		t.Errorf("USBH1_STP not restored after failed reset: %v", w)
	}
}

func TestHubLineKept(t *testing.T) {
	b := newTestBoard(t)
	b.Bringup(bootparam.Host)

	if !b.gpio.Held(hubReset) || !b.gpio.Level(hubReset) {
		t.Errorf("hub reset held=%v level=%v, want requested and high", b.gpio.Held(hubReset), b.gpio.Level(hubReset))
	}
	if b.gpio.Held(fecReset) || b.gpio.Held(stp) || b.gpio.Held(phyReset) {
		t.Errorf("reset lines other than the hub still requested")
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if b.gpio.Held(hubReset) {
		t.Errorf("hub reset still requested after Close")
	}
}

func TestStepMetrics(t *testing.T) {
	before := testutil.ToFloat64(stepTotal.WithLabelValues("sdhc", "ok"))
	b := newTestBoard(t)
	b.Bringup(bootparam.Host)

	if after := testutil.ToFloat64(stepTotal.WithLabelValues("sdhc", "ok")); after != before+1 {
		t.Errorf("sdhc ok counter went from %v to %v", before, after)
	}
	if d := testutil.ToFloat64(stepDuration.WithLabelValues("usbh1-phy-reset")); d != 0.1 {
		t.Errorf("usbh1-phy-reset duration = %v, want 0.1", d)
	}
}
