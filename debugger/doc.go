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

// Package debugger implements an interactive command line session against
// the emulated device. Time is under manual control: the TICK command
// stands in for the seconds that would arrive from the crystal, and PEEK
// and POKE go through the same bus protocol a real master would use, so
// every masking rule and side effect can be observed directly.
//
// The terminal sub-package defines the interface between the debugger and
// the command line itself, with plain and color implementations.
package debugger
