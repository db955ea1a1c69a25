package main

import (
	"fmt"

	"chesscore/board"
	"github.com/charmbracelet/lipgloss"
)

var (
	lightSquare = lipgloss.NewStyle().
			Background(lipgloss.Color("#EEEED2")).
			Foreground(lipgloss.Color("#000000"))
	darkSquare = lipgloss.NewStyle().
			Background(lipgloss.Color("#769656")).
			Foreground(lipgloss.Color("#000000"))
	whitePiece = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	boardBox   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// renderBoard draws p with White at the bottom, followed by its FEN.
func renderBoard(p *board.Position) string {
	rows := make([]string, 0, 10)
	for rank := 7; rank >= 0; rank-- {
		cells := []string{labelStyle.Render(fmt.Sprintf("%d ", rank+1))}
		for file := 0; file < 8; file++ {
			style := lightSquare
			if (file+rank)%2 == 0 {
				style = darkSquare
			}
			pc := p.PieceAt(board.SquareAt(file, rank))
			if !pc.Empty() && pc.Color == board.White {
				style = style.Copy().Inherit(whitePiece)
			}
			cells = append(cells, style.Render(" "+pieceGlyph(pc)+" "))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	rows = append(rows, labelStyle.Render("   a  b  c  d  e  f  g  h"))

	side := "White"
	if p.SideToMove() == board.Black {
		side = "Black"
	}
	caption := fmt.Sprintf("%s to move  %s", side, p.ToFEN(false))
	return boardBox.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)) + "\n" + caption
}

// pieceGlyph is the FEN letter of pc, or a space for an empty square.
func pieceGlyph(pc *board.Piece) string {
	if pc.Empty() {
		return " "
	}
	l := pc.Type.Letter()
	if pc.Color == board.Black {
		return string(l[0] + 'a' - 'A')
	}
	return l
}
