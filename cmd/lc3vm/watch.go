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
	"log"
	"path/filepath"
	"time"

	"github.com/howeyc/fsnotify"

	"github.com/avolpe/lc3vm/pkg/machine"
)

// watchAndRun runs the machine and restarts it from a fresh image load
// whenever the first image file is rewritten. A halted or faulted machine
// stays resident, waiting for the next change.
func watchAndRun(mc *machine.Machine, paths []string, start uint16) int {
	watcher, err := fsnotify.NewWatcher()

	if err != nil {
		log.Println(err)
		return 1
	}

	defer watcher.Close()

	target := filepath.Clean(paths[0])

	if err := watcher.Watch(filepath.Dir(target)); err != nil {
		log.Println(err)
		return 1
	}

	reload := make(chan struct{}, 1)

	go func() {
		var settle <-chan time.Time

		for {
			select {
			case ev, ok := <-watcher.Event:
				if !ok {
					return
				}

				// Editors and assemblers rewrite in bursts; wait for the
				// file to settle before reloading
				if filepath.Clean(ev.Name) == target && !ev.IsAttrib() {
					settle = time.After(100 * time.Millisecond)
				}
			case <-settle:
				settle = nil

				select {
				case reload <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Error:
				if !ok {
					return
				}

				log.Printf("watch: %v", err)
			}
		}
	}()

	restart := func() {
		log.Printf("reload %s", target)

		if err := loadImages(mc, paths, start); err != nil {
			log.Println(err)
			mc.Running = false
		}
	}

	for {
		if !mc.Running {
			<-reload
			restart()
			continue
		}

		select {
		case <-reload:
			restart()
			continue
		default:
		}

		if err := mc.Step(); err != nil {
			log.Println(err)
			mc.Running = false
		}
	}
}
