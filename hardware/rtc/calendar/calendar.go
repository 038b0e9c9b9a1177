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

// Package calendar implements the Gregorian calendar rules needed by the
// time advance engine: the leap year rule and the number of days in a
// month.
package calendar

// IsLeapYear returns true if the given year is a leap year under the
// Gregorian rule. The year is an absolute year (eg. 2019).
func IsLeapYear(year uint16) bool {
	return (year%4 == 0) && (year%100 != 0 || year%400 == 0)
}

// NumberOfDays returns the number of days in the given month of the given
// year. Months outside the range 1 to 12 return 0.
func NumberOfDays(month uint8, year uint16) uint8 {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}
