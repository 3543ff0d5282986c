package main

import (
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/chessboard/board"
	"github.com/daystram/chessboard/position"
)

var (
	tileDark   = color.New(color.FgBlack, color.BgGreen)
	tileLight  = color.New(color.FgBlack, color.BgHiWhite)
	tileMarked = color.New(color.FgBlack, color.BgHiYellow)
	tileCheck  = color.New(color.FgBlack, color.BgRed)
	legend     = color.New(color.Bold)
)

// draw renders b with White at the bottom. Squares in marked are highlighted
// and a checked king is drawn on red.
func draw(b *board.Board, marked ...position.Pos) string {
	checked := make(map[position.Pos]bool, 2)
	for _, s := range []board.Side{board.SideWhite, board.SideBlack} {
		if k, ok := b.King(s); ok && b.IsChecked(k) {
			checked[k.Pos] = true
		}
	}
	highlight := make(map[position.Pos]bool, len(marked))
	for _, pos := range marked {
		highlight[pos] = true
	}

	builder := strings.Builder{}
	for y := board.Height - 1; y >= 0; y-- {
		_, _ = builder.WriteString(legend.Sprintf(" %s ", position.NotationComponentRank(y)))
		for x := int8(0); x < board.Width; x++ {
			pos := position.New(x, y)
			sym := " "
			if p, ok := b.At(pos); ok {
				sym = p.Kind.SymbolUnicode(p.Side, false)
				if color.NoColor {
					sym = p.Kind.Symbol(p.Side)
				}
			}

			tile := tileLight
			switch {
			case checked[pos]:
				tile = tileCheck
			case highlight[pos]:
				tile = tileMarked
			case x%2^y%2 == 0:
				tile = tileDark
			}
			cell := " " + sym + " "
			if color.NoColor && highlight[pos] {
				cell = "(" + sym + ")"
			}
			_, _ = builder.WriteString(tile.Sprint(cell))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := int8(0); x < board.Width; x++ {
		_, _ = builder.WriteString(legend.Sprintf(" %s ", position.NotationComponentFile(x)))
	}
	return builder.String()
}
