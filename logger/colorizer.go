// This file is part of GopherAdvance.
//
// GopherAdvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAdvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAdvance.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	dimPen    = "\033[2m"
	normalPen = "\033[0m"
)

// Colorizer applies basic coloring rules to logging output. Colouring is only
// applied if the underlying writer is a terminal.
type Colorizer struct {
	out      io.Writer
	terminal bool
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	c := Colorizer{out: out}
	if f, ok := out.(*os.File); ok {
		c.terminal = term.IsTerminal(int(f.Fd()))
	}
	return c
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	if !c.terminal {
		return c.out.Write(p)
	}

	l := strings.Split(strings.TrimSpace(string(p)), "\n")
	if len(l) == 0 {
		return 0, nil
	}

	// the tag is printed normally and the detail is printed with a dim pen
	tag, detail, ok := strings.Cut(l[0], ": ")
	if !ok {
		return c.out.Write(p)
	}

	s := strings.Builder{}
	s.WriteString(tag)
	s.WriteString(": ")
	s.WriteString(dimPen)
	s.WriteString(detail)
	s.WriteString(normalPen)
	s.WriteString("\n")
	for _, t := range l[1:] {
		s.WriteString(t)
		s.WriteString("\n")
	}

	_, err = c.out.Write([]byte(s.String()))
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
