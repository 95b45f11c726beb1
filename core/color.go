package core

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/josephlewis42/minish/core/config"
	"github.com/mattn/go-isatty"
)

// ColorPrinter decorates shell output when color is enabled.
type ColorPrinter struct {
	Prompt *color.Color
	Error  *color.Color
}

// NewColorPrinter creates a printer for the given mode (auto, always or
// never). In auto mode, color is only used if out is a terminal.
func NewColorPrinter(mode string, out io.Writer) *ColorPrinter {
	printer := &ColorPrinter{
		Prompt: color.New(color.FgGreen, color.Bold),
		Error:  color.New(color.FgRed, color.Bold),
	}

	enabled := shouldColor(mode, out)
	for _, c := range []*color.Color{printer.Prompt, printer.Error} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return printer
}

func shouldColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorNever:
		return false
	case config.ColorAlways:
		return true
	default:
		return IsTerminal(out)
	}
}

// IsTerminal returns true if v is a file attached to a terminal.
func IsTerminal(v interface{}) bool {
	fd, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(fd.Fd()) || isatty.IsCygwinTerminal(fd.Fd())
}
