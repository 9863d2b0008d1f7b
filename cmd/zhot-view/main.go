// Command zhot-view shows a game's rules diagram in the terminal: the
// moves on a ring, one line per beats pair. Handy when no SVG viewer is
// around.
//
// Usage:
//
//	zhot-view [moves.csv]
//
// q, Esc or Ctrl-C exits; the picture re-fits on terminal resize.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/zhot/catalog"
	"github.com/katalvlaran/zhot/diagram"
	"github.com/katalvlaran/zhot/tournament"
)

// Cell glyphs. Terminal cells are roughly twice as tall as wide, so the
// layout canvas is sized in rows and stretched 2× horizontally on draw.
const (
	edgeGlyph   = '·'
	markerGlyph = '●'
	xStretch    = 2
)

var (
	edgeStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	markerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	labelStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	hintStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

func main() {
	cat, err := loadCatalog(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "zhot-view:", err)
		os.Exit(1)
	}
	tour, err := tournament.Build(cat)
	if err != nil {
		fmt.Fprintln(os.Stderr, "zhot-view:", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "zhot-view:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "zhot-view:", err)
		os.Exit(1)
	}
	defer screen.Fini()

	draw(screen, cat, tour)
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw(screen, cat, tour)
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return
			}
		}
	}
}

func loadCatalog(args []string) (*catalog.Catalog, error) {
	if len(args) == 0 {
		return catalog.Default(), nil
	}
	return catalog.FromCSVFile(args[0])
}

// draw fits the circular layout to the current terminal and paints edges,
// markers and labels.
func draw(screen tcell.Screen, cat *catalog.Catalog, tour *tournament.Tournament) {
	screen.Clear()
	w, h := screen.Size()

	// Square canvas in row units, stretched later; leave a hint line.
	size := h - 2
	if stretched := (w - 2) / xStretch; stretched < size {
		size = stretched
	}
	points, err := diagram.Layout(cat.Len(), size)
	if err != nil {
		putString(screen, 0, 0, "terminal too small", hintStyle)
		screen.Show()
		return
	}
	offsetX := (w - size*xStretch) / 2
	offsetY := (h - 1 - size) / 2

	toCell := func(p diagram.Point) (int, int) {
		return offsetX + int(math.Round(p.X))*xStretch, offsetY + int(math.Round(p.Y))
	}

	for i := 0; i < cat.Len(); i++ {
		x0, y0 := toCell(points[i])
		for _, j := range tour.DefeatsIndex(i) {
			x1, y1 := toCell(points[j])
			plotLine(screen, x0, y0, x1, y1)
		}
	}
	for i, p := range points {
		x, y := toCell(p)
		screen.SetContent(x, y, markerGlyph, nil, markerStyle)
		name := cat.Move(i).Name
		putString(screen, x-len(name)/2, y+1, name, labelStyle)
	}
	putString(screen, 0, h-1, "q to quit", hintStyle)
	screen.Show()
}

// plotLine draws a Bresenham segment between two cells, skipping the
// endpoints so markers stay visible.
func plotLine(screen tcell.Screen, x0, y0, x1, y1 int) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx + dy
	x, y := x0, y0
	for {
		if (x != x0 || y != y0) && (x != x1 || y != y1) {
			screen.SetContent(x, y, edgeGlyph, nil, edgeStyle)
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func putString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	col := x
	for _, r := range s {
		screen.SetContent(col, y, r, nil, style)
		col++
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
