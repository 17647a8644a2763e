package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// The style follows the terminal background.
func NewRenderer() func(string) (string, error) {
	return newRenderer(glamour.WithAutoStyle())
}

// NewPlainRenderer renders markdown without ANSI sequences, for pipes and logs.
func NewPlainRenderer() func(string) (string, error) {
	return newRenderer(glamour.WithStandardStyle("notty"))
}

func newRenderer(style glamour.TermRendererOption) func(string) (string, error) {
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
	if err != nil {
		return func(markdown string) (string, error) {
			return "", err
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
