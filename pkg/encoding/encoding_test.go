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

package encoding

import (
	"testing"
)

func TestDecodeHex(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		cases := []struct {
			Name     string
			Input    string
			Expected uint16
		}{
			{Name: "Prefixed", Input: "0x3000", Expected: 0x3000},
			{Name: "Bare", Input: "x3000", Expected: 0x3000},
			{Name: "Short", Input: "xFF", Expected: 0x00FF},
			{Name: "UpperPrefix", Input: "X0020", Expected: 0x0020},
			{Name: "Max", Input: "xFFFF", Expected: 0xFFFF},
			{Name: "Zero", Input: "x0", Expected: 0x0000},
		}

		for _, c := range cases {
			t.Run(c.Name, func(t *testing.T) {
				result, err := DecodeHex(c.Input)

				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}

				if result != c.Expected {
					t.Errorf("Expected %#04x, got: %#04x", c.Expected, result)
				}
			})
		}
	})

	t.Run("Failure", func(t *testing.T) {
		cases := []struct {
			Name  string
			Input string
		}{
			{Name: "Empty", Input: ""},
			{Name: "NoMarker", Input: "3000"},
			{Name: "Decimal", Input: "#3000"},
			{Name: "Garbage", Input: "xZZZZ"},
			{Name: "Overflow", Input: "x10000"},
			{Name: "LateMarker", Input: "30x00"},
		}

		for _, c := range cases {
			t.Run(c.Name, func(t *testing.T) {
				if _, err := DecodeHex(c.Input); err == nil {
					t.Error("Expected error, got none")
				}
			})
		}
	})
}

func TestDecodeInt(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		cases := []struct {
			Name     string
			Input    string
			Expected int16
		}{
			{Name: "Prefixed", Input: "#123", Expected: 123},
			{Name: "Bare", Input: "123", Expected: 123},
			{Name: "Negative", Input: "#-5", Expected: -5},
			{Name: "Zero", Input: "0", Expected: 0},
			{Name: "Min", Input: "#-32768", Expected: -32768},
			{Name: "Max", Input: "32767", Expected: 32767},
		}

		for _, c := range cases {
			t.Run(c.Name, func(t *testing.T) {
				result, err := DecodeInt(c.Input)

				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}

				if result != c.Expected {
					t.Errorf("Expected %d, got: %d", c.Expected, result)
				}
			})
		}
	})

	t.Run("Failure", func(t *testing.T) {
		cases := []struct {
			Name  string
			Input string
		}{
			{Name: "Empty", Input: ""},
			{Name: "Hex", Input: "x3000"},
			{Name: "Overflow", Input: "#32768"},
			{Name: "Garbage", Input: "#12a"},
		}

		for _, c := range cases {
			t.Run(c.Name, func(t *testing.T) {
				if _, err := DecodeInt(c.Input); err == nil {
					t.Error("Expected error, got none")
				}
			})
		}
	})
}

func TestDecodeAddr(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		cases := []struct {
			Name     string
			Input    string
			Expected uint16
		}{
			{Name: "Hex", Input: "x3000", Expected: 0x3000},
			{Name: "Decimal", Input: "#12288", Expected: 0x3000},
			{Name: "BareDecimal", Input: "12288", Expected: 0x3000},
			{Name: "NegativeWraps", Input: "#-1", Expected: 0xFFFF},
		}

		for _, c := range cases {
			t.Run(c.Name, func(t *testing.T) {
				result, err := DecodeAddr(c.Input)

				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}

				if result != c.Expected {
					t.Errorf("Expected %#04x, got: %#04x", c.Expected, result)
				}
			})
		}
	})

	t.Run("Failure", func(t *testing.T) {
		cases := []struct {
			Name  string
			Input string
		}{
			{Name: "Empty", Input: ""},
			{Name: "Garbage", Input: "start"},
			{Name: "HexOverflow", Input: "x10000"},
		}

		for _, c := range cases {
			t.Run(c.Name, func(t *testing.T) {
				if _, err := DecodeAddr(c.Input); err == nil {
					t.Error("Expected error, got none")
				}
			})
		}
	})
}

func TestSwapEndian(t *testing.T) {
	cases := []struct {
		Name     string
		Input    uint16
		Expected uint16
	}{
		{Name: "Mixed", Input: 0x1234, Expected: 0x3412},
		{Name: "Zero", Input: 0x0000, Expected: 0x0000},
		{Name: "AllOnes", Input: 0xFFFF, Expected: 0xFFFF},
		{Name: "LowByte", Input: 0x00FF, Expected: 0xFF00},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			result := SwapEndian(c.Input)

			if result != c.Expected {
				t.Errorf("Expected %#04x, got: %#04x", c.Expected, result)
			}

			if SwapEndian(result) != c.Input {
				t.Errorf("Double swap did not restore %#04x", c.Input)
			}
		})
	}
}

func TestSignExtend(t *testing.T) {
	cases := []struct {
		Name     string
		Input    uint16
		Bitcount uint16
		Expected uint16
	}{
		{Name: "Imm5Positive", Input: 0b01111, Bitcount: 5, Expected: 0x000F},
		{Name: "Imm5Negative", Input: 0b11111, Bitcount: 5, Expected: 0xFFFF},
		{Name: "Imm5MinusTwo", Input: 0b11110, Bitcount: 5, Expected: 0xFFFE},
		{Name: "Offset6Negative", Input: 0b100000, Bitcount: 6, Expected: 0xFFE0},
		{Name: "Offset9Positive", Input: 0x00FF, Bitcount: 9, Expected: 0x00FF},
		{Name: "Offset9Negative", Input: 0x0100, Bitcount: 9, Expected: 0xFF00},
		{Name: "Offset11Negative", Input: 0x0400, Bitcount: 11, Expected: 0xFC00},
		{Name: "OneBit", Input: 0b1, Bitcount: 1, Expected: 0xFFFF},
		{Name: "FullWidth", Input: 0x8000, Bitcount: 16, Expected: 0x8000},
		{Name: "Zero", Input: 0x0000, Bitcount: 9, Expected: 0x0000},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			result := SignExtend(c.Input, c.Bitcount)

			if result != c.Expected {
				t.Errorf("Expected %#04x, got: %#04x", c.Expected, result)
			}
		})
	}
}

func TestZeroExtend(t *testing.T) {
	cases := []struct {
		Name     string
		Input    uint16
		Bitcount uint16
		Expected uint16
	}{
		{Name: "TrapVector", Input: 0xF025, Bitcount: 8, Expected: 0x0025},
		{Name: "NoHighBits", Input: 0x0025, Bitcount: 8, Expected: 0x0025},
		{Name: "AllOnes", Input: 0xFFFF, Bitcount: 8, Expected: 0x00FF},
		{Name: "OneBit", Input: 0xFFFF, Bitcount: 1, Expected: 0x0001},
		{Name: "FullWidth", Input: 0xFFFF, Bitcount: 16, Expected: 0xFFFF},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			result := ZeroExtend(c.Input, c.Bitcount)

			if result != c.Expected {
				t.Errorf("Expected %#04x, got: %#04x", c.Expected, result)
			}
		})
	}
}
