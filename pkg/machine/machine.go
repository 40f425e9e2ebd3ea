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
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/avolpe/lc3vm/pkg/encoding"
)

// Reset returns the machine to its power-on state: registers, condition
// flags, and memory zeroed, program counter at PC_START, running.
func (mc *Machine) Reset() {
	for i := range mc.State.Registers {
		mc.State.Registers[i] = 0x0000
	}

	for i := range mc.State.Memory {
		mc.State.Memory[i] = 0x0000
	}

	mc.State.Condition = 0x0000
	mc.State.Program = PC_START
	mc.Running = true
}

// LoadImage reads a big-endian memory image. The first word is the origin
// address, the remaining words are placed in memory from the origin upward.
// Words past the top of memory are ignored. Loading does not reset the
// machine, so several images may be layered before running.
func (mc *Machine) LoadImage(reader io.Reader) error {
	scratch := make([]byte, 2)

	if _, err := io.ReadFull(reader, scratch); err != nil {
		return errors.New("Error reading image origin")
	}

	addr := uint32(binary.BigEndian.Uint16(scratch))

	for addr < 1<<16 {
		_, err := io.ReadFull(reader, scratch)

		if err == io.EOF {
			return nil
		} else if err == io.ErrUnexpectedEOF {
			return errors.New("Image ends with a partial word")
		} else if err != nil {
			return err
		}

		mc.State.Memory[addr] = binary.BigEndian.Uint16(scratch)
		addr++
	}

	return nil
}

// The keyboard status and data registers are refreshed on every read of
// KBSR. Guest programs discover input by polling KBSR in a loop, so this
// side effect is the device's only clock; it must not be cached away.
func (mc *Machine) read(addr uint16) uint16 {
	if addr == DEV_KBSR {
		mc.pollKeyboard()
	}

	return mc.State.Memory[addr]
}

func (mc *Machine) pollKeyboard() {
	if mc.Devices == nil || mc.Devices.Keyboard == nil {
		mc.State.Memory[DEV_KBSR] = 0x0000
		return
	}

	if mc.Devices.Keyboard.Poll() {
		key, err := mc.Devices.Keyboard.ReadKey()

		// A readable descriptor that yields no byte has hit end of input;
		// report the keyboard as idle
		if err != nil {
			mc.State.Memory[DEV_KBSR] = 0x0000
			return
		}

		mc.State.Memory[DEV_KBSR] = KEY_READY
		mc.State.Memory[DEV_KBDR] = uint16(key)
	} else {
		mc.State.Memory[DEV_KBSR] = 0x0000
	}
}

func (mc *Machine) write(addr uint16, value uint16) {
	mc.State.Memory[addr] = value
}

func (mc *Machine) setFlags(value uint16) {
	if value == 0 {
		mc.State.Condition = FLAG_ZERO
	} else if value>>15 == 1 {
		mc.State.Condition = FLAG_NEG
	} else {
		mc.State.Condition = FLAG_POS
	}
}

// Step fetches, decodes, and executes a single instruction. The program
// counter is incremented at fetch time, so PC-relative offsets are measured
// from the following instruction.
func (mc *Machine) Step() error {
	instruction := mc.read(mc.State.Program)
	opcode := instruction >> 12

	mc.State.Program++

	switch opcode {
	// ADD  |0001    |DR   |SR1  |0|00 |SR2   | Register  addition
	// ADD  |0001    |DR   |SR1  |1|imm5      | Immediate addition
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_ADD:
		dest := (instruction >> 9) & 0x7
		src1 := (instruction >> 6) & 0x7

		if (instruction>>5)&0x1 == 1 {
			imm5 := encoding.SignExtend(instruction&0x1F, 5)

			mc.State.Registers[dest] = mc.State.Registers[src1] + imm5
		} else {
			src2 := (instruction & 0x7)

			mc.State.Registers[dest] = mc.State.Registers[src1] +
				mc.State.Registers[src2]
		}

		mc.setFlags(mc.State.Registers[dest])

	// AND  |0101    |DR   |SR1  |0|00 |SR2   | Register  bitwise
	// AND  |0101    |DR   |SR1  |1|imm5      | Immediate bitwise
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_AND:
		dest := (instruction >> 9) & 0x7
		src1 := (instruction >> 6) & 0x7

		if (instruction>>5)&0x1 == 1 {
			imm5 := encoding.SignExtend(instruction&0x1F, 5)

			mc.State.Registers[dest] = mc.State.Registers[src1] & imm5
		} else {
			src2 := (instruction & 0x7)

			mc.State.Registers[dest] = mc.State.Registers[src1] &
				mc.State.Registers[src2]
		}

		mc.setFlags(mc.State.Registers[dest])

	// BR   |0000    |N|Z|P|PCoffset9         | Conditional branch
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_BR:
		flags := (instruction >> 9) & 0x7

		if flags&mc.State.Condition > 0 {
			mc.State.Program += encoding.SignExtend(instruction&0x1FF, 9)
		}

	// JMP  |1100    |000  |BaseR|000000      | Jump
	// RET  |1100    |000  |111  |000000      | Return
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_JMP:
		src := (instruction >> 6) & 0x7

		mc.State.Program = mc.State.Registers[src]

	// JSR  |0100    |1|PCoffset11            | Jump to subroutine
	// JSRR |0100    |0|00 |BaseR|000000      | Jump to subroutine register
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_JSR:
		mc.State.Registers[7] = mc.State.Program

		if (instruction>>11)&0x1 == 1 {
			mc.State.Program += encoding.SignExtend(instruction&0x7FF, 11)
		} else {
			src := (instruction >> 6) & 0x7

			mc.State.Program = mc.State.Registers[src]
		}

	// LD   |0010    |DR   |PCoffset9         | Load
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_LD:
		dest := (instruction >> 9) & 0x7
		addr := mc.State.Program + encoding.SignExtend(instruction&0x1FF, 9)

		mc.State.Registers[dest] = mc.read(addr)

		mc.setFlags(mc.State.Registers[dest])

	// LDI  |1010    |DR   |PCoffset9         | Load indirect
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_LDI:
		dest := (instruction >> 9) & 0x7
		addr := mc.State.Program + encoding.SignExtend(instruction&0x1FF, 9)

		mc.State.Registers[dest] = mc.read(mc.read(addr))

		mc.setFlags(mc.State.Registers[dest])

	// LDR  |0110    |DR   |BaseR|offset6     | Load base+offset
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_LDR:
		dest := (instruction >> 9) & 0x7
		src := (instruction >> 6) & 0x7
		addr := mc.State.Registers[src] +
			encoding.SignExtend(instruction&0x3F, 6)

		mc.State.Registers[dest] = mc.read(addr)

		mc.setFlags(mc.State.Registers[dest])

	// LEA  |1110    |DR   |PCoffset9         | Load effective address
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_LEA:
		dest := (instruction >> 9) & 0x7
		addr := mc.State.Program + encoding.SignExtend(instruction&0x1FF, 9)

		mc.State.Registers[dest] = addr

		mc.setFlags(mc.State.Registers[dest])

	// NOT  |1001    |DR   |SR   |1|11111     | Bitwise complement
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_NOT:
		dest := (instruction >> 9) & 0x7
		src := (instruction >> 6) & 0x7

		mc.State.Registers[dest] = ^mc.State.Registers[src]

		mc.setFlags(mc.State.Registers[dest])

	// ST   |0011    |SR   |PCoffset9         | Store
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_ST:
		src := (instruction >> 9) & 0x7
		addr := mc.State.Program + encoding.SignExtend(instruction&0x1FF, 9)

		mc.write(addr, mc.State.Registers[src])

	// STI  |1011    |SR   |PCoffset9         | Store indirect
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_STI:
		src := (instruction >> 9) & 0x7
		addr := mc.State.Program + encoding.SignExtend(instruction&0x1FF, 9)

		mc.write(mc.read(addr), mc.State.Registers[src])

	// STR  |0111    |SR   |BaseR|offset6     | Store base+offset
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_STR:
		src := (instruction >> 9) & 0x7
		dest := (instruction >> 6) & 0x7
		addr := mc.State.Registers[dest] +
			encoding.SignExtend(instruction&0x3F, 6)

		mc.write(addr, mc.State.Registers[src])

	// TRAP |1111    |0000   |trapvect8       | Service routine call
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_TRAP:
		// R7 holds the return address for the benefit of guest code; the
		// routine itself runs on the host and execution resumes in the main
		// loop without diverting through a trap vector table
		mc.State.Registers[7] = mc.State.Program

		return mc.trap(encoding.ZeroExtend(instruction, 8))

	// RTI  |1000    |000000000000            | Return from interrupt (illegal)
	// RES  |1101    |                        | Reserved (illegal)
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_RTI, OP_RES:
		return fmt.Errorf(
			"Illegal opcode %#04x at %#04x", instruction, mc.State.Program-1,
		)
	}

	return nil
}

// Run steps the machine until the HALT service routine clears the running
// flag or an instruction faults.
func (mc *Machine) Run() error {
	for mc.Running {
		if err := mc.Step(); err != nil {
			return err
		}
	}

	return nil
}
