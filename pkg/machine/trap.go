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
	"errors"
	"fmt"
)

func (mc *Machine) trap(vector uint16) error {
	switch vector {
	case TRAP_GETC:
		return mc.trapGetc()
	case TRAP_OUT:
		return mc.trapOut()
	case TRAP_PUTS:
		return mc.trapPuts()
	case TRAP_IN:
		return mc.trapIn()
	case TRAP_PUTSP:
		return mc.trapPutsp()
	case TRAP_HALT:
		return mc.trapHalt()
	}

	return fmt.Errorf("Unknown trap vector %#02x", vector)
}

func (mc *Machine) keyboard() (Keyboard, error) {
	if mc.Devices == nil || mc.Devices.Keyboard == nil {
		return nil, errors.New("No keyboard device attached")
	}

	return mc.Devices.Keyboard, nil
}

func (mc *Machine) display() (*bufio.Writer, error) {
	if mc.Devices == nil || mc.Devices.Display == nil {
		return nil, errors.New("No display device attached")
	}

	return mc.Devices.Display, nil
}

// GETC: R0 receives the next key, high byte zero, no echo. End of input on
// the keyboard stops the machine with an error.
func (mc *Machine) trapGetc() error {
	keyboard, err := mc.keyboard()

	if err != nil {
		return err
	}

	key, err := keyboard.ReadKey()

	if err != nil {
		return err
	}

	mc.State.Registers[0] = uint16(key)

	return nil
}

// OUT: the low byte of R0 is written to the display
func (mc *Machine) trapOut() error {
	display, err := mc.display()

	if err != nil {
		return err
	}

	display.WriteByte(byte(mc.State.Registers[0]))

	return display.Flush()
}

// PUTS: words starting at memory[R0] are written as characters, one per
// word, until a zero word
func (mc *Machine) trapPuts() error {
	display, err := mc.display()

	if err != nil {
		return err
	}

	for addr := mc.State.Registers[0]; ; addr++ {
		char := mc.read(addr)

		if char == 0 {
			break
		}

		display.WriteByte(byte(char))
	}

	return display.Flush()
}

// IN: prompt, then read one key and echo it, storing it in R0
func (mc *Machine) trapIn() error {
	display, err := mc.display()

	if err != nil {
		return err
	}

	keyboard, err := mc.keyboard()

	if err != nil {
		return err
	}

	display.WriteString("Enter a character: ")

	if err := display.Flush(); err != nil {
		return err
	}

	key, err := keyboard.ReadKey()

	if err != nil {
		return err
	}

	mc.State.Registers[0] = uint16(key)

	display.WriteByte(key)

	return display.Flush()
}

// PUTSP: words starting at memory[R0] are written as packed character
// pairs, low byte first; a zero word or a zero high byte terminates
func (mc *Machine) trapPutsp() error {
	display, err := mc.display()

	if err != nil {
		return err
	}

	for addr := mc.State.Registers[0]; ; addr++ {
		char := mc.read(addr)

		if char == 0 {
			break
		}

		display.WriteByte(byte(char))

		if char>>8 == 0 {
			break
		}

		display.WriteByte(byte(char >> 8))
	}

	return display.Flush()
}

// HALT: announce and clear the running flag. The flag is cleared before
// touching the display so a faulted display still halts the machine.
func (mc *Machine) trapHalt() error {
	mc.Running = false

	display, err := mc.display()

	if err != nil {
		return err
	}

	display.WriteString("HALT\n")

	return display.Flush()
}
