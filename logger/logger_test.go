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

package logger

import (
	"strings"
	"testing"

	"github.com/jetsetilly/soft323x/test"
)

func TestLogger(t *testing.T) {
	l := newLogger(16)

	b := &strings.Builder{}
	test.ExpectedFailure(t, l.write(b))
	test.Equate(t, b.String(), "")

	l.log("test", "this is a test")
	b.Reset()
	test.ExpectedSuccess(t, l.write(b))
	test.Equate(t, b.String(), "test: this is a test\n")

	l.logf("test", "this is test %d", 2)
	b.Reset()
	test.ExpectedSuccess(t, l.write(b))
	test.Equate(t, b.String(), "test: this is a test\ntest: this is test 2\n")
}

func TestRepeatCollapse(t *testing.T) {
	l := newLogger(16)

	l.log("tick", "lost")
	l.log("tick", "lost")
	l.log("tick", "lost")

	b := &strings.Builder{}
	test.ExpectedSuccess(t, l.write(b))
	test.Equate(t, b.String(), "tick: lost (repeat x3)\n")
}

func TestTail(t *testing.T) {
	l := newLogger(16)

	l.log("test", "one")
	l.log("test", "two")
	l.log("test", "three")

	b := &strings.Builder{}
	l.tail(b, 2)
	test.Equate(t, b.String(), "test: two\ntest: three\n")

	// tail longer than the log is capped
	b.Reset()
	l.tail(b, 100)
	test.Equate(t, b.String(), "test: one\ntest: two\ntest: three\n")
}

func TestMaxEntries(t *testing.T) {
	l := newLogger(2)

	l.log("test", "one")
	l.log("test", "two")
	l.log("test", "three")

	b := &strings.Builder{}
	test.ExpectedSuccess(t, l.write(b))
	test.Equate(t, b.String(), "test: two\ntest: three\n")
}
