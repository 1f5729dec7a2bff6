// Copyright 2018 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// atagfixup rewrites the memory size in the boot loader's ATAG list so the
// next kernel sees the RAM the board really has.

package main

import (
	"flag"

	"github.com/spf13/afero"
	"github.com/u-root/u-bringup/config"
	"github.com/u-root/u-bringup/pkg/atags"
	"github.com/u-root/u-bringup/pkg/logger"
)

var (
	cfg = config.DefaultConfig
	in  = flag.String("in", cfg.Paths.AtagsIn, "ATAG list from the boot loader")
	out = flag.String("out", cfg.Paths.AtagsOut, "Fixed up ATAG list")
	log = logger.LogContainer.GetSimpleLogger()
)

func main() {
	flag.Parse()
	if err := atags.FixupFile(afero.NewOsFs(), *in, *out, cfg.MemorySize); err != nil {
		log.Fatalf("ATAG fixup: %v", err)
	}
	log.Infof("Wrote %s", *out)
}
