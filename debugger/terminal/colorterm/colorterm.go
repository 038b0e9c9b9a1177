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

// Package colorterm implements the Terminal interface for the debugger.
// It supports color output, a line editor and a command history.
package colorterm

import (
	"os"

	"github.com/jetsetilly/soft323x/curated"
	"github.com/jetsetilly/soft323x/debugger/terminal"
	"github.com/jetsetilly/soft323x/debugger/terminal/colorterm/easyterm"
)

const maxHistory = 50

// ColorTerminal implements the Terminal interface for the debugger,
// controlling the terminal through the easyterm wrapper.
type ColorTerminal struct {
	easyterm.Terminal

	reader         runeReader
	commandHistory []string
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	err := ct.Terminal.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	ct.commandHistory = make([]string, 0, maxHistory)
	ct.reader = initRuneReader(os.Stdin)

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.Print(ansiNormal)
	ct.Terminal.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	ct.Print(styleAnsi(style))
	ct.Print(s)
	ct.Print(ansiNormal)
	ct.Print("\n")
}

// TermRead implements the terminal.Input interface. The line editor
// understands backspace, ctrl-c, ctrl-d and up/down for history.
func (ct *ColorTerminal) TermRead(prompt string, events *terminal.ReadEvents) (string, error) {
	ct.CBreakMode()
	defer ct.CanonicalMode()

	input := []rune{}
	historyIdx := len(ct.commandHistory)

	showInput := func() {
		ct.Print("\r%s%s%s%s", ansiBold, prompt, ansiNormal, string(input))
		ct.Print(ansiClearToEnd)
	}
	showInput()

	for {
		// check for interrupt signals that arrived while we were reading
		select {
		case <-events.Signal:
			ct.Print("\n")
			return "", curated.Errorf(terminal.UserInterrupt)
		default:
		}

		r, err := ct.reader.readRune()
		if err != nil {
			ct.Print("\n")
			return "", curated.Errorf(terminal.UserAbort)
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.Print("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEndOfFile:
			ct.Print("\n")
			return "", curated.Errorf(terminal.UserAbort)

		case easyterm.KeyCarriage, '\n':
			ct.Print("\n")
			s := string(input)
			if s != "" {
				ct.commandHistory = append(ct.commandHistory, s)
				if len(ct.commandHistory) > maxHistory {
					ct.commandHistory = ct.commandHistory[1:]
				}
			}
			return s, nil

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if len(input) > 0 {
				input = input[:len(input)-1]
				showInput()
			}

		case easyterm.KeyEsc:
			// filter ansi sequences for the cursor keys. up and down
			// scroll through the command history
			r, err = ct.reader.readRune()
			if err != nil {
				continue
			}
			if r != '[' {
				continue
			}
			r, err = ct.reader.readRune()
			if err != nil {
				continue
			}

			switch r {
			case 'A': // cursor up
				if historyIdx > 0 {
					historyIdx--
					input = []rune(ct.commandHistory[historyIdx])
					showInput()
				}
			case 'B': // cursor down
				if historyIdx < len(ct.commandHistory)-1 {
					historyIdx++
					input = []rune(ct.commandHistory[historyIdx])
					showInput()
				} else if historyIdx == len(ct.commandHistory)-1 {
					historyIdx++
					input = input[:0]
					showInput()
				}
			}

		default:
			if r >= 32 {
				input = append(input, r)
				showInput()
			}
		}
	}
}
