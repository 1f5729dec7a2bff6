// Copyright 2018-2019 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package controller

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
)

const sysfs = "/sys"

func newTestFramework(t *testing.T, drivers ...string) (*Framework, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, d := range drivers {
		if err := afero.WriteFile(fs, sysfs+"/bus/platform/drivers/"+d+"/bind", nil, 0200); err != nil {
			t.Fatal(err)
		}
	}
	return New(fs, sysfs, nil), fs
}

func bindContent(t *testing.T, fs afero.Fs, driver string) string {
	t.Helper()
	b, err := afero.ReadFile(fs, sysfs+"/bus/platform/drivers/"+driver+"/bind")
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestEagerInitRunsAtAttach(t *testing.T) {
	f, _ := newTestFramework(t, "fsl-usb2-udc")
	ran := false
	c := Controller{Name: "usb-otg", Driver: "fsl-usb2-udc", Device: "fsl-usb2-udc", Mode: Gadget}

	if err := f.Attach(c, EagerInit, func() error { ran = true; return nil }); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if !ran {
		t.Errorf("eager init did not run at Attach")
	}
	if r := f.Registered(); len(r) != 1 || r[0].Init != nil {
		t.Errorf("Registered = %v, want one controller without init", r)
	}
}

func TestEagerInitFailureSkipsRegistration(t *testing.T) {
	f, _ := newTestFramework(t)
	c := Controller{Name: "usb-otg", Driver: "fsl-usb2-udc", Device: "fsl-usb2-udc"}
	if err := f.Attach(c, EagerInit, func() error { return errors.New("no clock") }); err == nil {
		t.Fatalf("Attach succeeded with failing init")
	}
	if len(f.Registered()) != 0 {
		t.Errorf("controller registered after failed eager init")
	}
}

func TestDeferredInitRunsAtProbe(t *testing.T) {
	f, fs := newTestFramework(t, "mxc-ehci")
	ran := 0
	c := Controller{Name: "usb-otg", Driver: "mxc-ehci", Device: "mxc-ehci.0", Mode: Host}

	if err := f.Attach(c, DeferredInit, func() error { ran++; return nil }); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if ran != 0 {
		t.Fatalf("deferred init ran at Attach")
	}
	if err := f.Probe(); err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if ran != 1 {
		t.Errorf("deferred init ran %d times, want 1", ran)
	}
	if got := bindContent(t, fs, "mxc-ehci"); got != "mxc-ehci.0" {
		t.Errorf("bind = %q, want mxc-ehci.0", got)
	}
}

func TestProbeContinuesAfterFailure(t *testing.T) {
	f, fs := newTestFramework(t, "mxc-ehci", "sdhci-esdhc-imx51")
	f.Register(Controller{Name: "usb-otg", Driver: "mxc-ehci", Device: "mxc-ehci.0",
		Init: func() error { return errors.New("no clock") }})
	f.Register(Controller{Name: "missing", Driver: "nope", Device: "nope.0"})
	f.Register(Controller{Name: "sdhc", Driver: "sdhci-esdhc-imx51", Device: "sdhci-esdhc-imx51.0"})

	if err := f.Probe(); err == nil {
		t.Errorf("Probe succeeded with failing controllers")
	}
	if b := f.Bound(); len(b) != 1 || b[0] != "sdhci-esdhc-imx51.0" {
		t.Errorf("Bound = %v, want only the SD controller", b)
	}
	if got := bindContent(t, fs, "mxc-ehci"); got != "" {
		t.Errorf("mxc-ehci bound to %q after failed init", got)
	}
}

func TestProbeChecksNetdev(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, sysfs+"/bus/platform/drivers/imx27-fec/bind", nil, 0200)
	var looked []string
	f := New(fs, sysfs, func(name string) error {
		looked = append(looked, name)
		return errors.New("not found")
	})
	f.Register(Controller{Name: "fec", Driver: "imx27-fec", Device: "imx27-fec.0", Netdev: "eth0"})

	if err := f.Probe(); err == nil {
		t.Errorf("Probe succeeded without the network interface")
	}
	if len(looked) != 1 || looked[0] != "eth0" {
		t.Errorf("looked up %v, want [eth0]", looked)
	}
	if len(f.Bound()) != 1 {
		t.Errorf("fec not bound")
	}
}
