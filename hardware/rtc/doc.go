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

// Package rtc emulates the register file of a DS3231/DS3232 real time
// clock. The RTC type holds the byte addressed register bank exactly as a
// bus master would see it, along with the tick accumulator that connects
// the one second timebase to the calendar engine.
//
// Time is advanced in two stages. Tick() records that a second has passed
// and may be called from a timer goroutine; Update() drains the accumulated
// ticks into the register bank and evaluates the alarms. The host program
// decides when Update() runs - see the Update() documentation for the
// commit point rules that keep bus reads coherent.
//
// Bus traffic goes through Read(), Write() and NextAddr(). Write() treats
// the incoming byte as untrusted and converts it to a valid register state
// by masking and clamping; it returns an Action bitset for the side effects
// the caller must perform (restarting the second timer, starting a
// temperature conversion).
//
// The register layout and bit definitions live in the registers
// sub-package. The BCD and calendar arithmetic live in the bcd and calendar
// sub-packages.
package rtc
