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

package console

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Console adapts the process terminal to the machine's device contracts:
// uncanonical, unechoed input with a zero-timeout readiness poll, and a
// buffered writer for output.
type Console struct {
	in      *os.File
	display *bufio.Writer

	restore unix.Termios
	raw     bool
}

func New() *Console {
	return &Console{
		in:      os.Stdin,
		display: bufio.NewWriter(os.Stdout),
	}
}

// Raw disables canonical input buffering and echo. It is a no-op when the
// input is not a terminal, so images can be driven from a pipe.
func (c *Console) Raw() error {
	if !term.IsTerminal(int(c.in.Fd())) {
		return nil
	}

	if err := termios.Tcgetattr(c.in.Fd(), &c.restore); err != nil {
		return err
	}

	state := c.restore
	state.Lflag &^= unix.ICANON | unix.ECHO

	if err := termios.Tcsetattr(c.in.Fd(), termios.TCSANOW, &state); err != nil {
		return err
	}

	c.raw = true

	return nil
}

// Restore reinstates the terminal attributes saved by Raw
func (c *Console) Restore() error {
	if !c.raw {
		return nil
	}

	c.raw = false

	return termios.Tcsetattr(c.in.Fd(), termios.TCSANOW, &c.restore)
}

// Poll reports whether a key is ready, using a zero-timeout select on the
// input descriptor
func (c *Console) Poll() bool {
	fd := int(c.in.Fd())

	var fds unix.FdSet
	fds.Set(fd)

	timeout := unix.Timeval{}
	n, err := unix.Select(fd+1, &fds, nil, nil, &timeout)

	return err == nil && n > 0
}

// ReadKey blocks until one byte arrives on the input
func (c *Console) ReadKey() (byte, error) {
	scratch := make([]byte, 1)

	n, err := c.in.Read(scratch)

	if err != nil {
		return 0, err
	} else if n == 0 {
		return 0, io.EOF
	}

	return scratch[0], nil
}

// Display returns the buffered writer the machine prints through
func (c *Console) Display() *bufio.Writer {
	return c.display
}
