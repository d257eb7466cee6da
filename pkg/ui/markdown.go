// Package ui holds terminal presentation helpers shared by the commands.
package ui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// RenderMarkdown converts markdown to styled terminal output, falling back
// to the raw text when rendering is unavailable (not a TTY, or glamour
// failed). Width 0 means glamour's default wrap.
func RenderMarkdown(content string, width int) string {
	if !IsTerminal() {
		return content
	}

	options := []glamour.TermRendererOption{
		glamour.WithAutoStyle(),
	}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// IsTerminal reports whether stdout is an interactive terminal with color
// support.
func IsTerminal() bool {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}
