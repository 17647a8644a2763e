package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{`  ___ _ __  _ __(_) __ _ `, "#4ade80"},
	{` / __| '_ \| '__| |/ _` + "`" + ` |`, "#34d399"},
	{` \__ \ |_) | |  | | (_| |`, "#2dd4bf"},
	{` |___/ .__/|_|  |_|\__, |`, "#22d3ee"},
	{`      |_|           |___/ `, "#38bdf8"},
}

// PrintBanner writes the sprig ASCII art banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()

	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
