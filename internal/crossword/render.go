package crossword

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Render draws the grid as text: blocked cells as full blocks, open cells as
// their assigned letter or a space.
func Render(p *Puzzle, a Assignment) string {
	letters := letterGrid(p, a)
	var sb strings.Builder
	for r := 0; r < p.Height; r++ {
		for c := 0; c < p.Width; c++ {
			switch {
			case !p.open[r][c]:
				sb.WriteRune('█')
			case letters[r][c] != 0:
				sb.WriteRune(letters[r][c])
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// SavePNG writes the grid as an image: white letter cells on a black canvas,
// 100 pixel cells with a 2 pixel border.
func SavePNG(p *Puzzle, a Assignment, path string) error {
	const (
		cellSize   = 100
		cellBorder = 2
	)

	img := image.NewRGBA(image.Rect(0, 0, p.Width*cellSize, p.Height*cellSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	letters := letterGrid(p, a)
	face := basicfont.Face7x13
	for r := 0; r < p.Height; r++ {
		for c := 0; c < p.Width; c++ {
			if !p.open[r][c] {
				continue
			}
			cell := image.Rect(
				c*cellSize+cellBorder, r*cellSize+cellBorder,
				(c+1)*cellSize-cellBorder, (r+1)*cellSize-cellBorder,
			)
			draw.Draw(img, cell, image.NewUniform(color.White), image.Point{}, draw.Src)

			if letters[r][c] == 0 {
				continue
			}
			drawer := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(color.Black),
				Face: face,
				Dot: fixed.P(
					c*cellSize+(cellSize-face.Advance)/2,
					r*cellSize+(cellSize-face.Height)/2+face.Ascent,
				),
			}
			drawer.DrawString(string(letters[r][c]))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

// letterGrid spreads the assignment's words over the grid, one rune per
// cell. Unfilled cells stay zero.
func letterGrid(p *Puzzle, a Assignment) [][]rune {
	grid := make([][]rune, p.Height)
	for r := range grid {
		grid[r] = make([]rune, p.Width)
	}
	for v, word := range a {
		for k, cell := range v.Cells() {
			if k < len(word) {
				grid[cell.Row][cell.Col] = rune(word[k])
			}
		}
	}
	return grid
}
