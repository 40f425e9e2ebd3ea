// Copyright (C) 2024  Adrian Volpe

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/avolpe/lc3vm/pkg/console"
	"github.com/avolpe/lc3vm/pkg/encoding"
	"github.com/avolpe/lc3vm/pkg/machine"
)

var helpvar bool
var watchvar bool
var pcvar string

const usage = "lc3vm [-pc addr] [-watch] image-file ..."

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.BoolVar(&watchvar, "watch", false,
		"Reloads and restarts when the first image file changes")
	flag.StringVar(&pcvar, "pc", "",
		"Overrides the start address (x3000 or #12288)")
	flag.Parse()
}

func loadImages(mc *machine.Machine, paths []string, start uint16) error {
	mc.Reset()

	for _, path := range paths {
		file, err := os.Open(path)

		if err != nil {
			return err
		}

		err = mc.LoadImage(file)
		file.Close()

		if err != nil {
			return fmt.Errorf("%s: %v", path, err)
		}
	}

	mc.State.Program = start

	return nil
}

func lc3vm() int {
	if helpvar {
		fmt.Println(usage)
		return 0
	}

	args := flag.Args()

	if len(args) < 1 {
		log.Println(usage)
		return 1
	}

	start := machine.PC_START

	if pcvar != "" {
		addr, err := encoding.DecodeAddr(pcvar)

		if err != nil {
			log.Println(err)
			return 1
		}

		start = addr
	}

	cons := console.New()

	var mc machine.Machine
	mc.Devices = &machine.DeviceHandler{
		Keyboard: cons,
		Display:  cons.Display(),
	}

	if err := loadImages(&mc, args, start); err != nil {
		log.Println(err)
		return 1
	}

	if err := cons.Raw(); err != nil {
		log.Println(err)
		return 1
	}

	defer cons.Restore()

	c := make(chan os.Signal, 1)
	defer close(c)

	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			cons.Restore()
			fmt.Println()
			os.Exit(2)
		}
	}()

	if watchvar {
		return watchAndRun(&mc, args, start)
	}

	if err := mc.Run(); err != nil {
		log.Println(err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(lc3vm())
}
