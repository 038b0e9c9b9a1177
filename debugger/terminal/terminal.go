// This file is part of Soft323x.
//
// Soft323x is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Soft323x is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Soft323x.  If not, see <https://www.gnu.org/licenses/>.

package terminal

import (
	"os"
)

// Sentinel error patterns returned by TermRead(). Test with curated.Is().
const (
	// the user pressed ctrl-c or the process received an interrupt signal
	UserInterrupt = "user interrupt"

	// the input stream has closed (ctrl-d or end of a piped script)
	UserAbort = "user abort"
)

// ReadEvents should be monitored during a TermRead().
type ReadEvents struct {
	// interrupt signals from the operating system
	Signal chan os.Signal
}

// Style is used by TermPrintLine() to hint at how the line should be
// displayed.
type Style int

// List of valid Style values.
const (
	// the style of a normal command response
	StyleNormal Style = iota

	// the style of help text
	StyleHelp

	// the style of log lines
	StyleLog

	// the style of error messages
	StyleError
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input, without the trailing
	// newline. The prompt should be displayed for implementations where a
	// human is on the other side.
	//
	// If possible the TermRead() implementation should check the ReadEvents
	// channels for activity while it waits.
	TermRead(prompt string, events *ReadEvents) (string, error)

	// IsInteractive() should return true for implementations that take
	// their input from a human rather than a script.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows
// output.
type Output interface {
	TermPrintLine(style Style, s string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	// Terminal implementations also implement the Input and Output
	// interfaces.
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need
	// to do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible. for
	// example, we use this to make sure the terminal is returned to
	// canonical mode. not all terminal implementations will need to do
	// anything.
	CleanUp()
}
