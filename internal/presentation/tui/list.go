package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/sprig/pkg/domain"
	"github.com/muesli/termenv"
)

const (
	insertColor = "#4ade80"
	moveColor   = "#facc15"
	deleteColor = "#f87171"
)

// FormatTodos renders the list with the rows named by the change hint marked.
// With colored set the marks are also painted; otherwise the output is plain text.
func FormatTodos(state domain.State, colored bool) string {
	p := termenv.Ascii
	if colored {
		p = termenv.ColorProfile()
	}
	paint := func(s, color string) string {
		if !colored {
			return s
		}
		return p.String(s).Foreground(p.Color(color)).Bold().String()
	}

	var b strings.Builder
	if state.Change.Kind == domain.ChangeReload {
		b.WriteString(paint("~ list reloaded", moveColor))
		b.WriteByte('\n')
	}
	if state.Len() == 0 {
		b.WriteString("  (empty)\n")
	}

	for i, todo := range state.Todos {
		row := fmt.Sprintf("%d. %s", i, todo)
		switch {
		case i == state.Change.To && state.Change.Kind == domain.ChangeInsert:
			b.WriteString(paint("+ "+row, insertColor))
		case i == state.Change.To && state.Change.Kind == domain.ChangeMove:
			b.WriteString(paint(fmt.Sprintf("> %s (from %d)", row, state.Change.From), moveColor))
		default:
			b.WriteString("  " + row)
		}
		b.WriteByte('\n')
	}

	if state.Change.Kind == domain.ChangeDelete {
		b.WriteString(paint(fmt.Sprintf("- removed row %d", state.Change.From), deleteColor))
		b.WriteByte('\n')
	}
	return b.String()
}
