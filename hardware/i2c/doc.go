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

// Package i2c implements the slave end of the bus protocol: the state
// machine that sits between the bus peripheral's address/data events and
// the register file.
//
// The transaction pattern is the Philips style addressed register access
// used by every driver for this device class:
//
//	write:  START | addr+W | reg | byte0 | byte1 | ... | STOP
//	read:   START | addr+W | reg | RESTART | addr+R | byte0 | ... | NACK | STOP
//
// The register cursor autoincrements after every transferred byte and
// wraps modulo the 256 byte address space.
//
// The package does not talk to any real bus hardware. The external driver
// (or a test) translates its peripheral's events into calls to the Bus
// methods, in the order the bus delivers them.
package i2c
