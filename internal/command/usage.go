package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"

	"github.com/vk/clibase/internal/option"
)

const (
	optionIndent = "  "
	gapWidth     = 4
	fallbackCols = 80
	minDescCols  = 20
)

var (
	headerColor = color.New(color.Bold)
	synopsisCol = color.New(color.FgCyan)
)

// renderUsage builds the full usage text: a header line naming the
// invoked script, then one line per registered option in declaration
// order. Descriptions wrap at the terminal width when out is a terminal,
// at 80 columns otherwise.
func renderUsage(scriptName string, opts *option.Collection, out io.Writer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [options] %s\n", headerColor.Sprint("Usage:"), scriptName)

	all := opts.All()
	widest := 0
	for _, opt := range all {
		if n := len(opt.Synopsis()); n > widest {
			widest = n
		}
	}

	cols := outputWidth(out)
	descCols := cols - len(optionIndent) - widest - gapWidth
	if descCols < minDescCols {
		descCols = minDescCols
	}

	for _, opt := range all {
		syn := opt.Synopsis()
		pad := strings.Repeat(" ", widest-len(syn)+gapWidth)
		desc := wordwrap.WrapString(opt.Description, uint(descCols))
		lines := strings.Split(desc, "\n")

		fmt.Fprintf(&b, "%s%s%s%s\n", optionIndent, synopsisCol.Sprint(syn), pad, lines[0])
		continuation := strings.Repeat(" ", len(optionIndent)+widest+gapWidth)
		for _, line := range lines[1:] {
			fmt.Fprintf(&b, "%s%s\n", continuation, line)
		}
	}
	return b.String()
}

// outputWidth returns the column budget for usage text: the width of the
// terminal behind out, or a fixed fallback when out is not a terminal.
func outputWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return fallbackCols
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return fallbackCols
	}
	return cols
}
