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

package bcd

// Encode converts a binary value in the range 0 to 99 to binary coded
// decimal. Values greater than 99 produce an invalid result.
//
// Deliberately implemented with successive subtraction rather than division.
// The reference device class runs on microcontrollers without a hardware
// divider and the same code structure is kept here.
func Encode(value uint8) uint8 {
	lsd := value    // least-significant digit
	msd := uint8(0) // most-significant digit
	if lsd >= 80 {
		lsd -= 80
		msd += 8
	}
	if lsd >= 40 {
		lsd -= 40
		msd += 4
	}
	if lsd >= 20 {
		lsd -= 20
		msd += 2
	}
	if lsd >= 10 {
		lsd -= 10
		msd += 1
	}
	return (msd << 4) | lsd
}

// Decode converts a BCD value to binary. Valid whenever both nibbles are
// less than 10.
//
// The subtraction works because the high nibble is worth 16 in binary but
// only 10 in BCD, a difference of 6 per high-nibble unit.
func Decode(value uint8) uint8 {
	return value - 6*(value>>4)
}

// Clamp limits a BCD value to the given inclusive range. The comparison is
// nibble-wise, which is the correct ordering for well-formed BCD values.
// The returned value is always between min and max.
func Clamp(value uint8, min uint8, max uint8) uint8 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Increment adds one to the BCD value stored in the masked bits of reg,
// propagating the nibble carry. If the value is already at max it is
// replaced with overflowTo instead. Bits outside the mask are preserved.
//
// Returns true if the overflow happened. The return value is used to ripple
// a carry through the seconds/minutes/hours chain.
func Increment(reg *uint8, mask uint8, max uint8, overflowTo uint8) bool {
	v := *reg & mask

	overflow := v == max
	if overflow {
		v = overflowTo
	} else {
		v++
		if (v & 0x0f) >= 0x0a {
			v = (v & 0xf0) + 0x10
		}
	}

	*reg = (*reg & ^mask) | (v & mask)

	return overflow
}
