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

// Package performance contains the rough and ready performance check for
// the emulation: how many emulated seconds can be pushed through the tick
// and commit path per wall clock second. Optional CPU and memory profiles
// can be written for closer study.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/soft323x/curated"
	"github.com/jetsetilly/soft323x/hardware"
	"github.com/jetsetilly/soft323x/hardware/rtc/registers"
	"github.com/jetsetilly/soft323x/hardware/timebase"
)

// the number of ticks committed per batch. matches the width of the tick
// accumulator
const batchSize = 255

// Check is a very rough and ready calculation of the emulation's
// performance. An alarm is armed so that the alarm engine is part of what
// is being measured.
func Check(output io.Writer, profile bool, sramSize int, runTime string) error {
	duration, err := time.ParseDuration(runTime)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	tb := &timebase.Manual{}
	m := hardware.NewMachine(sramSize, tb)
	m.Power()
	defer m.Off()

	// an alarm that fires every minute keeps the match engine honest
	m.Bus.AddressedForWrite()
	m.Bus.ReceiveByte(registers.Alarm2Minutes)
	m.Bus.ReceiveByte(registers.BitAlarmMode)
	m.Bus.ReceiveByte(registers.BitAlarmMode)
	m.Bus.ReceiveByte(registers.BitAlarmMode)
	m.Bus.Stop()

	seconds := 0

	err = cpuProfile(profile, "cpu.profile", func() error {
		end := time.Now().Add(duration)
		for time.Now().Before(end) {
			tb.Step(batchSize)
			seconds += m.Idle()

			// clear the alarm flags the way the host would, otherwise the
			// match engine short-circuits once the flags are set
			m.Bus.AddressedForWrite()
			m.Bus.ReceiveByte(registers.Ctrl2)
			m.Bus.ReceiveByte(0x00)
			m.Bus.Stop()
		}
		return nil
	})
	if err != nil {
		return err
	}

	rate := float64(seconds) / duration.Seconds()
	output.Write([]byte(fmt.Sprintf("%.0f emulated seconds per second (%d seconds in %.2fs)\n",
		rate, seconds, duration.Seconds())))

	return memProfile(profile, "mem.profile")
}
