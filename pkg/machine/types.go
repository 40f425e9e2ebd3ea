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

package machine

import (
	"bufio"
)

// Keyboard is the console input contract. Poll reports, without blocking,
// whether ReadKey would return immediately. ReadKey blocks for the next byte
// and does not echo.
type Keyboard interface {
	Poll() bool
	ReadKey() (byte, error)
}

type DeviceHandler struct {
	Keyboard Keyboard
	Display  *bufio.Writer
}

type MachineState struct {
	Registers [8]uint16

	// Program counter, always the address of the next fetch
	Program uint16

	// Condition flags, one of FLAG_NEG, FLAG_ZERO, FLAG_POS after the first
	// flag-updating instruction
	Condition uint16

	Memory [1 << 16]uint16
}

type Machine struct {
	Devices *DeviceHandler
	State   MachineState

	// Cleared by the HALT service routine
	Running bool
}
