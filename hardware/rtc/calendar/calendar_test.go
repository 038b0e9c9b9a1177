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

package calendar_test

import (
	"testing"

	"github.com/jetsetilly/soft323x/hardware/rtc/calendar"
	"github.com/jetsetilly/soft323x/test"
)

func TestIsLeapYear(t *testing.T) {
	test.ExpectedFailure(t, calendar.IsLeapYear(1900))
	test.ExpectedSuccess(t, calendar.IsLeapYear(1904))
	test.ExpectedSuccess(t, calendar.IsLeapYear(2000))
	test.ExpectedFailure(t, calendar.IsLeapYear(2019))
	test.ExpectedSuccess(t, calendar.IsLeapYear(2020))
	test.ExpectedFailure(t, calendar.IsLeapYear(2100))
	test.ExpectedFailure(t, calendar.IsLeapYear(2200))
	test.ExpectedFailure(t, calendar.IsLeapYear(2300))
	test.ExpectedSuccess(t, calendar.IsLeapYear(2400))

	// compare against the direct Gregorian definition over the years 1600
	// to 2400
	for y := uint16(1600); y <= 2400; y++ {
		expected := (y%4 == 0 && y%100 != 0) || y%400 == 0
		test.Equate(t, calendar.IsLeapYear(y), expected)
	}
}

func TestNumberOfDays(t *testing.T) {
	leap := []uint8{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	common := []uint8{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

	for m := uint8(1); m <= 12; m++ {
		test.Equate(t, calendar.NumberOfDays(m, 2000), leap[m-1])
		test.Equate(t, calendar.NumberOfDays(m, 2001), common[m-1])
	}

	// out of range months
	test.Equate(t, calendar.NumberOfDays(0, 2001), uint8(0))
	test.Equate(t, calendar.NumberOfDays(13, 2001), uint8(0))
}
