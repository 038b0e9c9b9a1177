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

package hardware

import (
	"github.com/jetsetilly/soft323x/hardware/i2c"
	"github.com/jetsetilly/soft323x/hardware/rtc"
	"github.com/jetsetilly/soft323x/hardware/timebase"
)

// Machine is the main container for the emulated components: the register
// file, the bus protocol machine and the timebase that stands in for the
// crystal.
type Machine struct {
	RTC *rtc.RTC
	Bus *i2c.Bus

	// the timebase is not part of the device but is attached to it
	Timebase timebase.Source

	// Converter, if not nil, is consulted when the bus master requests a
	// temperature conversion. It returns the raw values for the two
	// temperature registers. Temperature acquisition itself is outside the
	// emulation
	Converter func() (uint8, uint8)
}

// NewMachine creates the register file with the given SRAM size and wires
// it to the bus protocol machine and the timebase. The timebase is not
// started; call Power() when the emulation should begin.
func NewMachine(sramSize int, src timebase.Source) *Machine {
	m := &Machine{
		RTC:      rtc.NewRTC(sramSize),
		Timebase: src,
	}

	m.Bus = i2c.NewBus(m.RTC)
	m.Bus.RestartTimer = src.Restart
	m.Bus.ConvertTemperature = m.convertTemperature

	return m
}

// Power starts the timebase. The OSF flag is already raised from the reset
// so the host can tell the clock has been down.
func (m *Machine) Power() {
	m.Timebase.Start(m.RTC.Tick)
}

// Off stops the timebase. The register file keeps its state.
func (m *Machine) Off() {
	m.Timebase.Stop()
}

// Idle gives the emulation a chance to commit pending ticks. Call it
// whenever the bus is quiet; it does nothing if a transaction is in
// progress. Returns the number of seconds that were applied.
func (m *Machine) Idle() int {
	if !m.Bus.Idle() {
		return 0
	}
	return m.RTC.Update()
}

func (m *Machine) convertTemperature() {
	if m.Converter == nil {
		return
	}
	msb, lsb := m.Converter()
	m.RTC.SetTemperature(msb, lsb)
}
