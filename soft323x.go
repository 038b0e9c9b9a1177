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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/soft323x/debugger"
	"github.com/jetsetilly/soft323x/debugger/terminal"
	"github.com/jetsetilly/soft323x/debugger/terminal/colorterm"
	"github.com/jetsetilly/soft323x/debugger/terminal/plainterm"
	"github.com/jetsetilly/soft323x/hardware"
	"github.com/jetsetilly/soft323x/hardware/i2c"
	"github.com/jetsetilly/soft323x/hardware/rtc"
	"github.com/jetsetilly/soft323x/hardware/timebase"
	"github.com/jetsetilly/soft323x/logger"
	"github.com/jetsetilly/soft323x/modalflag"
	"github.com/jetsetilly/soft323x/performance"
	"github.com/jetsetilly/soft323x/statsview"
	"github.com/jetsetilly/soft323x/version"
)

// how often the main loop gives the emulation a chance to commit pending
// ticks while the bus is quiet.
const idlePeriod = 100 * time.Millisecond

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DEBUG", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = emulate(md)
	case "DEBUG":
		err = debug(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		showVersion(md.Output)
	}

	if err != nil {
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}
}

// emulate is the default mode: the device runs against the wall clock until
// interrupted. Useful when the program is wired to a real bus bridge or
// simply to watch the clock keep time.
func emulate(md *modalflag.Modes) error {
	md.NewMode()

	sram := md.AddInt("sram", rtc.SRAMSizeDS3231, "size of user SRAM (0 for DS3231, 236 for DS3232)")
	log := md.AddBool("log", false, "echo log entries to stderr")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			md.Output.Write([]byte("no statsview in this build (rebuild with the statsview tag)\n"))
		}
	}

	m := hardware.NewMachine(*sram, timebase.NewClock())
	m.Power()
	defer m.Off()

	logger.Logf("machine", "powered on with %d bytes of SRAM", m.RTC.BankSize()-0x14)
	logger.Logf("machine", "presenting as i2c slave %#02x", i2c.DefaultSlaveAddress)

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	for {
		select {
		case <-intChan:
			md.Output.Write([]byte("\n"))
			return nil
		case <-time.After(idlePeriod):
			if m.Idle() > 0 {
				md.Output.Write([]byte(fmt.Sprintf("\r%s", m.RTC.String())))
			}
		}
	}
}

// debug attaches the interactive debugger to a fresh machine. Time is under
// manual control in this mode.
func debug(md *modalflag.Modes) error {
	md.NewMode()

	sram := md.AddInt("sram", rtc.SRAMSizeDS3231, "size of user SRAM (0 for DS3231, 236 for DS3232)")
	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	var term terminal.Terminal

	switch *termType {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		term = &plainterm.PlainTerminal{}
	}

	dbg := debugger.NewDebugger(*sram, term)

	return dbg.Start()
}

// perform runs the emulation flat out for a short while and reports the
// achieved rate.
func perform(md *modalflag.Modes) error {
	md.NewMode()

	sram := md.AddInt("sram", rtc.SRAMSizeDS3231, "size of user SRAM (0 for DS3231, 236 for DS3232)")
	profile := md.AddBool("profile", false, "write cpu and memory profiles")
	duration := md.AddString("duration", "5s", "run duration")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	return performance.Check(md.Output, *profile, *sram, *duration)
}

func showVersion(output io.Writer) {
	vrs, rev, release := version.Version()
	if release {
		output.Write([]byte(fmt.Sprintf("%s %s\n", version.ApplicationName, vrs)))
	} else {
		output.Write([]byte(fmt.Sprintf("%s %s (%s)\n", version.ApplicationName, vrs, rev)))
	}
}
