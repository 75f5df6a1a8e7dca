// Copyright 2026 go-bitexpand Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/ajroetker/go-bitexpand/expand"
)

type renderer struct {
	format string
	styled bool
	one    lipgloss.Style
	zero   lipgloss.Style
}

func newRenderer(format, color string, out io.Writer) (*renderer, error) {
	switch format {
	case "hex", "lanes", "bits":
	default:
		return nil, fmt.Errorf("unknown format %q (want hex, lanes or bits)", format)
	}

	r := &renderer{format: format}
	switch color {
	case "always":
		r.styled = true
	case "never":
	case "auto":
		r.styled = isTerminal(out)
	default:
		return nil, fmt.Errorf("unknown color mode %q (want auto, always or never)", color)
	}

	lr := lipgloss.NewRenderer(out)
	if r.styled {
		lr.SetColorProfile(termenv.ANSI)
	}
	r.one = lr.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	r.zero = lr.NewStyle().Faint(true)
	return r, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (r *renderer) render(value uint8, lanes expand.Lanes) string {
	word := lanes.Word()
	switch r.format {
	case "hex":
		return fmt.Sprintf("0x%02x -> 0x%06x", value, word)
	case "bits":
		return fmt.Sprintf("%08b -> %s", value, r.runs(word))
	default:
		return fmt.Sprintf("0x%02x -> 0x%06x lanes %d %d %d", value, word, lanes[0], lanes[1], lanes[2])
	}
}

// runs writes the word as eight space-separated runs, most significant first.
func (r *renderer) runs(word uint32) string {
	parts := make([]string, 0, 8)
	for i := 7; i >= 0; i-- {
		run := fmt.Sprintf("%03b", (word>>(expand.Factor*i))&0b111)
		if r.styled {
			if run == "111" {
				run = r.one.Render(run)
			} else {
				run = r.zero.Render(run)
			}
		}
		parts = append(parts, run)
	}
	return strings.Join(parts, " ")
}
