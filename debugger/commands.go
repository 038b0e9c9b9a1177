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
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/soft323x/curated"
	"github.com/jetsetilly/soft323x/debugger/terminal"
	"github.com/jetsetilly/soft323x/hardware/rtc/registers"
	"github.com/jetsetilly/soft323x/logger"
)

// list of commands understood by the debugger.
const (
	cmdHelp  = "HELP"
	cmdQuit  = "QUIT"
	cmdPeek  = "PEEK"
	cmdPoke  = "POKE"
	cmdTick  = "TICK"
	cmdTime  = "TIME"
	cmdRegs  = "REGS"
	cmdSRAM  = "SRAM"
	cmdReset = "RESET"
	cmdOSF   = "OSF"
	cmdLog   = "LOG"
	cmdViz   = "VIZ"
)

var helpText = []string{
	"HELP            this help",
	"QUIT            end the debugging session",
	"PEEK addr [n]   read n registers starting at addr",
	"POKE addr val   write val to addr through the bus protocol",
	"TICK [n]        advance the clock by n seconds (default 1)",
	"TIME            show the current time",
	"REGS            show the fixed registers",
	"SRAM            show the user SRAM",
	"RESET           reset the device to its power-on state",
	"OSF             assert the oscillator-stop flag",
	"LOG             show the application log",
	"VIZ [file]      write the machine state graph to a dot file",
}

func (dbg *Debugger) processTokens(tokens []string) error {
	command := strings.ToUpper(tokens[0])
	args := tokens[1:]

	switch command {
	case cmdHelp:
		for _, s := range helpText {
			dbg.printLine(terminal.StyleHelp, s)
		}

	case cmdQuit:
		dbg.running = false

	case cmdPeek:
		return dbg.peek(args)

	case cmdPoke:
		return dbg.poke(args)

	case cmdTick:
		n := 1
		if len(args) > 0 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return curated.Errorf("debugger: not a tick count: %s", args[0])
			}
		}

		// ticks are committed in batches of at most 255, matching the
		// width of the tick accumulator
		for n > 0 {
			b := n
			if b > 255 {
				b = 255
			}
			dbg.timebase.Step(b)
			dbg.machine.Idle()
			n -= b
		}
		dbg.printLine(terminal.StyleNormal, dbg.machine.RTC.String())

	case cmdTime:
		dbg.printLine(terminal.StyleNormal, dbg.machine.RTC.String())

	case cmdRegs:
		dbg.regs()

	case cmdSRAM:
		return dbg.sram()

	case cmdReset:
		dbg.machine.RTC.Reset()
		dbg.machine.Timebase.Restart()
		dbg.printLine(terminal.StyleNormal, dbg.machine.RTC.String())

	case cmdOSF:
		dbg.machine.RTC.AssertOSF()

	case cmdLog:
		b := &strings.Builder{}
		if logger.Write(b) {
			for _, s := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
				dbg.printLine(terminal.StyleLog, s)
			}
		}

	case cmdViz:
		return dbg.viz(args)

	default:
		return curated.Errorf("debugger: unrecognised command: %s", command)
	}

	return nil
}

// parseAddress accepts hex (0x12 or $12) and decimal register addresses, as
// well as the canonical register names from the datasheet.
func parseAddress(s string) (uint8, error) {
	for addr, sym := range registers.CanonicalSymbols {
		if strings.EqualFold(s, sym) {
			return addr, nil
		}
	}

	base := 0
	if strings.HasPrefix(s, "$") {
		s = s[1:]
		base = 16
	}
	v, err := strconv.ParseUint(s, base, 8)
	if err != nil {
		return 0, curated.Errorf("debugger: not an address: %s", s)
	}

	return uint8(v), nil
}

func (dbg *Debugger) peek(args []string) error {
	if len(args) < 1 {
		return curated.Errorf("debugger: PEEK requires an address")
	}

	addr, err := parseAddress(args[0])
	if err != nil {
		return err
	}

	n := 1
	if len(args) > 1 {
		n, err = strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return curated.Errorf("debugger: not a register count: %s", args[1])
		}
	}

	for i := 0; i < n; i++ {
		dbg.printLine(terminal.StyleNormal, "%s = %#02x", dbg.regLabel(addr), dbg.machine.RTC.Read(addr))
		addr = dbg.machine.RTC.NextAddr(addr)
	}

	return nil
}

func (dbg *Debugger) poke(args []string) error {
	if len(args) != 2 {
		return curated.Errorf("debugger: POKE requires an address and a value")
	}

	addr, err := parseAddress(args[0])
	if err != nil {
		return err
	}

	v, err := strconv.ParseUint(strings.TrimPrefix(args[1], "$"), 0, 8)
	if err != nil {
		return curated.Errorf("debugger: not a byte value: %s", args[1])
	}

	// go through the bus protocol so that masking, clamping and side
	// effects all apply, exactly as they would for a real bus master
	dbg.machine.Bus.AddressedForWrite()
	dbg.machine.Bus.ReceiveByte(addr)
	dbg.machine.Bus.ReceiveByte(uint8(v))
	dbg.machine.Bus.Stop()

	dbg.printLine(terminal.StyleNormal, "%s = %#02x", dbg.regLabel(addr), dbg.machine.RTC.Read(addr))

	return nil
}

func (dbg *Debugger) regLabel(addr uint8) string {
	if sym, ok := registers.CanonicalSymbols[addr]; ok {
		return fmt.Sprintf("%s (%#02x)", sym, addr)
	}
	return fmt.Sprintf("%#02x", addr)
}

func (dbg *Debugger) regs() {
	for addr := uint8(0); addr < registers.SRAM; addr++ {
		dbg.printLine(terminal.StyleNormal, "%-16s %#02x", dbg.regLabel(addr), dbg.machine.RTC.Read(addr))
	}
}

func (dbg *Debugger) sram() error {
	size := dbg.machine.RTC.BankSize() - int(registers.SRAM)
	if size == 0 {
		return curated.Errorf("debugger: no SRAM in this device variant")
	}

	for base := int(registers.SRAM); base < dbg.machine.RTC.BankSize(); base += 16 {
		s := &strings.Builder{}
		fmt.Fprintf(s, "%#02x:", base)
		for a := base; a < base+16 && a < dbg.machine.RTC.BankSize(); a++ {
			fmt.Fprintf(s, " %02x", dbg.machine.RTC.Read(uint8(a)))
		}
		dbg.printLine(terminal.StyleNormal, s.String())
	}

	return nil
}

// viz writes a graphviz visualisation of the machine state. useful when
// studying how the components relate.
func (dbg *Debugger) viz(args []string) error {
	filename := "machine.dot"
	if len(args) > 0 {
		filename = args[0]
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer f.Close()

	memviz.Map(f, dbg.machine)
	dbg.printLine(terminal.StyleNormal, "machine state written to %s", filename)

	return nil
}
