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

package colorterm

import (
	"bufio"
	"os"

	"github.com/jetsetilly/soft323x/debugger/terminal"
)

// ansi control sequences used by the terminal output.
const (
	ansiNormal     = "\033[0m"
	ansiBold       = "\033[1m"
	ansiDim        = "\033[2m"
	ansiRed        = "\033[31m"
	ansiYellow     = "\033[33m"
	ansiClearToEnd = "\033[K"
)

// styleAnsi returns the ansi sequence for the given style.
func styleAnsi(style terminal.Style) string {
	switch style {
	case terminal.StyleHelp:
		return ansiDim
	case terminal.StyleLog:
		return ansiYellow
	case terminal.StyleError:
		return ansiRed
	}
	return ansiNormal
}

// runeReader wraps the input stream in a buffered rune reader.
type runeReader struct {
	reader *bufio.Reader
}

func initRuneReader(input *os.File) runeReader {
	return runeReader{reader: bufio.NewReader(input)}
}

func (rr runeReader) readRune() (rune, error) {
	r, _, err := rr.reader.ReadRune()
	return r, err
}
