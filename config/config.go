// Copyright 2018 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

// Set with -ldflags "-X github.com/u-root/u-bringup/config.gitVersion=..."
var (
	gitVersion = "dev"
	gitHash    = "unknown"
)

const (
	MiB = 1 << 20

	// The TS48XX bootloader reports the wrong amount of RAM. The board
	// always carries 256 MiB.
	MemorySize uint32 = 256 * MiB
)

type Version struct {
	Version string
	GitHash string
}

type Paths struct {
	// Physical memory device used for register windows
	DevMem string
	// fmt pattern taking the zero-based GPIO bank number
	GpioChip string
	// Root of sysfs, used to bind platform devices to their drivers
	Sysfs string
	// ATAG list as handed over by the bootloader
	AtagsIn string
	// Fixed-up ATAG list for the next kernel
	AtagsOut string
	// Prometheus textfile written once bring-up is done
	MetricsTextfile string
}

type Config struct {
	Paths Paths
	// Kernel command line key selecting the OTG personality
	OtgModeParam string
	MemorySize   uint32
	Version      Version
}

var DefaultConfig = &Config{
	Paths: Paths{
		DevMem:          "/dev/mem",
		GpioChip:        "/dev/gpiochip%d",
		Sysfs:           "/sys",
		AtagsIn:         "/proc/atags",
		AtagsOut:        "/tmp/atags.bin",
		MetricsTextfile: "/tmp/boardinit.prom",
	},
	OtgModeParam: "otg_mode",
	MemorySize:   MemorySize,
	Version: Version{
		Version: gitVersion,
		GitHash: gitHash,
	},
}
