package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ByLCY/designkit/layout"
)

const maxContentWidth = 32

func renderElementTable(w io.Writer, elements []layout.Element) {
	if len(elements) == 0 {
		_, _ = fmt.Fprintln(w, "(0 elements)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "kind", "x", "y", "width", "height", "fill", "content", "font"})

	for i, el := range elements {
		font := ""
		if el.Kind == layout.KindText {
			font = fmt.Sprintf("%s %s", num(el.FontSize), el.FontWeight)
		}
		t.AppendRow(table.Row{i, el.Kind, num(el.X), num(el.Y), num(el.Width), num(el.Height), el.Fill, clip(el.Content), font})
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d elements)\n", len(elements))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func clip(s string) string {
	r := []rune(s)
	if len(r) <= maxContentWidth {
		return s
	}
	return string(r[:maxContentWidth-1]) + "…"
}
