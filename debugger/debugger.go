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

package debugger

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/soft323x/curated"
	"github.com/jetsetilly/soft323x/debugger/terminal"
	"github.com/jetsetilly/soft323x/hardware"
	"github.com/jetsetilly/soft323x/hardware/timebase"
	"github.com/jetsetilly/soft323x/logger"
)

// Debugger is the basic debugging frontend for the emulation. It owns the
// machine and a manually stepped timebase: in a debugging session seconds
// pass only on request, through the TICK command.
type Debugger struct {
	machine  *hardware.Machine
	timebase *timebase.Manual

	term   terminal.Terminal
	events *terminal.ReadEvents

	// the debugging loop ends when this is false
	running bool
}

// NewDebugger creates a machine with the given SRAM size and attaches the
// debugging frontend to it.
func NewDebugger(sramSize int, term terminal.Terminal) *Debugger {
	dbg := &Debugger{
		timebase: &timebase.Manual{},
		term:     term,
	}

	dbg.machine = hardware.NewMachine(sramSize, dbg.timebase)

	dbg.events = &terminal.ReadEvents{
		Signal: make(chan os.Signal, 1),
	}

	return dbg
}

// Start the debugging loop. Returns when the user quits the session.
func (dbg *Debugger) Start() error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	signal.Notify(dbg.events.Signal, os.Interrupt)
	defer signal.Stop(dbg.events.Signal)

	dbg.machine.Power()
	defer dbg.machine.Off()

	logger.Log("debugger", "session started")

	dbg.running = true
	for dbg.running {
		input, err := dbg.term.TermRead(dbg.prompt(), dbg.events)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) || curated.Is(err, terminal.UserAbort) {
				dbg.running = false
				continue
			}
			return curated.Errorf("debugger: %v", err)
		}

		err = dbg.parseInput(input)
		if err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

// the prompt shows the current time so that the effect of TICK and POKE is
// always on display.
func (dbg *Debugger) prompt() string {
	return fmt.Sprintf("[ %s ] >> ", dbg.machine.RTC.String())
}

func (dbg *Debugger) printLine(style terminal.Style, s string, a ...interface{}) {
	dbg.term.TermPrintLine(style, fmt.Sprintf(s, a...))
}

// parseInput splits the input into individual commands and dispatches them.
func (dbg *Debugger) parseInput(input string) error {
	for _, cmd := range strings.Split(input, ";") {
		tokens := strings.Fields(cmd)
		if len(tokens) == 0 {
			continue
		}

		err := dbg.processTokens(tokens)
		if err != nil {
			return err
		}
	}

	return nil
}
