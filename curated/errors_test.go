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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/soft323x/curated"
	"github.com/jetsetilly/soft323x/test"
)

func TestIsAndHas(t *testing.T) {
	e := curated.Errorf("not yet implemented")
	f := curated.Errorf("debugger: %v", e)

	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, "not yet implemented"))
	test.ExpectedFailure(t, curated.Is(f, "not yet implemented"))
	test.ExpectedSuccess(t, curated.Has(f, "not yet implemented"))

	// uncurated errors satisfy nothing
	g := errors.New("plain")
	test.ExpectedFailure(t, curated.IsAny(g))
	test.ExpectedFailure(t, curated.Is(g, "plain"))
	test.ExpectedFailure(t, curated.Has(g, "plain"))

	// nil is not an error at all
	test.ExpectedFailure(t, curated.IsAny(nil))
}

func TestNormalisation(t *testing.T) {
	// duplicate adjacent parts are removed from the message
	e := curated.Errorf("debugger: %v", curated.Errorf("debugger: %v", curated.Errorf("oof")))
	test.Equate(t, e.Error(), "debugger: oof")
}
