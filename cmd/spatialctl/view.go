package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/spatial/grid"
)

// glyph is one rendered map cell.
type glyph struct {
	r     rune
	style tcell.Style
}

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	targetStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	pathStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	siteStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// distanceRunes shade finite distances from near to far.
var distanceRunes = []rune("0123456789")

// layout maps the report onto a rows×cols glyph matrix, later layers on top:
// distance shading, placement sites, paths, targets.
func layout(rep Report) [][]glyph {
	f := rep.Field
	rows, cols := f.Rows(), f.Cols()

	maxD := 0.0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if d := f.Distance(r, c); !math.IsInf(d, 1) {
				maxD = math.Max(maxD, d)
			}
		}
	}

	out := make([][]glyph, rows)
	for r := range out {
		out[r] = make([]glyph, cols)
		for c := range out[r] {
			d := f.Distance(r, c)
			switch {
			case math.IsInf(d, 1):
				out[r][c] = glyph{'█', wallStyle}
			case d == 0:
				out[r][c] = glyph{'*', targetStyle}
			default:
				band := len(distanceRunes) - 1
				if maxD > 0 {
					band = int(d / maxD * float64(len(distanceRunes)-1))
				}
				shade := int32(255 - band*20)
				out[r][c] = glyph{distanceRunes[band], tcell.StyleDefault.Foreground(tcell.NewRGBColor(shade, shade, shade))}
			}
		}
	}

	put := func(c grid.Cell, g glyph) {
		if c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols && out[c.Row][c.Col].r != '*' {
			out[c.Row][c.Col] = g
		}
	}
	if rep.Query != nil {
		for _, s := range rep.Sites {
			for _, off := range rep.Query.Kernel.Offsets() {
				put(s.Cell().Add(off.Row, off.Col), glyph{'#', siteStyle})
			}
		}
	}
	for _, p := range rep.Paths {
		for _, c := range p {
			put(c, glyph{'o', pathStyle})
		}
	}

	return out
}

// runView draws the report until Escape, Ctrl-C or q.
func runView(rep Report) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	cells := layout(rep)
	draw := func() {
		screen.Clear()
		for r, row := range cells {
			for c, g := range row {
				screen.SetContent(c, r, g.r, nil, g.style)
			}
		}
		status := fmt.Sprintf("%dx%d  paths=%d  sites=%d  [q] quit", rep.Field.Rows(), rep.Field.Cols(), len(rep.Paths), len(rep.Sites))
		for i, ch := range status {
			screen.SetContent(i, len(cells)+1, ch, nil, textStyle)
		}
		screen.Show()
	}

	draw()
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
			draw()
		case nil:
			return nil
		}
	}
}
