package piece

import "image/color"

// shape builds a Shape from 0/1 rows, which keep the catalog readable.
func shape(rows ...[]int) Shape {
	s := make(Shape, len(rows))
	for i, row := range rows {
		s[i] = make([]bool, len(row))
		for j, v := range row {
			s[i][j] = v != 0
		}
	}
	return s
}

func rgb(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

var catalog = []Piece{
	// Classic tetrominoes
	{Name: "I", Shape: shape([]int{1, 1, 1, 1}), Color: rgb(0x00, 0xf0, 0xf0)},
	{Name: "O", Shape: shape([]int{1, 1}, []int{1, 1}), Color: rgb(0xf0, 0xf0, 0x00)},
	{Name: "T", Shape: shape([]int{1, 1, 1}, []int{0, 1, 0}), Color: rgb(0xa0, 0x00, 0xf0)},
	{Name: "L", Shape: shape([]int{1, 1, 1}, []int{1, 0, 0}), Color: rgb(0x00, 0x00, 0xf0)},
	{Name: "J", Shape: shape([]int{1, 1, 1}, []int{0, 0, 1}), Color: rgb(0xf0, 0xa0, 0x00)},
	{Name: "S", Shape: shape([]int{1, 1, 0}, []int{0, 1, 1}), Color: rgb(0x00, 0xf0, 0x00)},
	{Name: "Z", Shape: shape([]int{0, 1, 1}, []int{1, 1, 0}), Color: rgb(0xf0, 0x00, 0x00)},

	// Extended
	{Name: "L-tail", Shape: shape([]int{1, 1, 1, 1}, []int{0, 0, 1, 0}), Color: rgb(0xff, 0x69, 0xb4)},
	{Name: "T-tail", Shape: shape([]int{1, 1, 1}, []int{0, 1, 0}, []int{0, 1, 0}), Color: rgb(0x8a, 0x2b, 0xe2)},
	{Name: "Rect-2x3", Shape: shape([]int{1, 1}, []int{1, 1}, []int{1, 1}), Color: rgb(0xff, 0x45, 0x00)},
	{Name: "Z-wide", Shape: shape([]int{1, 0, 0}, []int{1, 1, 1}, []int{0, 0, 1}), Color: rgb(0x20, 0xb2, 0xaa)},
	{Name: "Cross", Shape: shape([]int{0, 1, 0}, []int{1, 1, 1}, []int{0, 1, 0}), Color: rgb(0xff, 0x8c, 0x00)},
	{Name: "I5", Shape: shape([]int{1, 1, 1, 1, 1}), Color: rgb(0x93, 0x70, 0xdb)},
	{Name: "Hollow", Shape: shape([]int{1, 1, 1}, []int{1, 0, 1}, []int{1, 1, 1}), Color: rgb(0xff, 0x14, 0x93)},
	{Name: "Rect-3x2", Shape: shape([]int{1, 1, 1}, []int{1, 1, 1}), Color: rgb(0x00, 0xce, 0xd1)},
	{Name: "H", Shape: shape([]int{1, 0, 1}, []int{1, 1, 1}, []int{1, 0, 1}), Color: rgb(0xff, 0x63, 0x47)},
	{Name: "L-long", Shape: shape([]int{1, 1, 1, 1}, []int{1, 0, 0, 0}), Color: rgb(0x7b, 0x68, 0xee)},
	{Name: "Stairs", Shape: shape([]int{1, 1, 1}, []int{0, 1, 1}, []int{0, 0, 1}), Color: rgb(0x32, 0xcd, 0x32)},
	{Name: "U", Shape: shape([]int{1, 1}, []int{1, 0}, []int{1, 1}), Color: rgb(0xda, 0x70, 0xd6)},
	{Name: "L-big", Shape: shape([]int{1, 1, 1}, []int{1, 1, 0}, []int{1, 0, 0}), Color: rgb(0xff, 0x7f, 0x50)},
	{Name: "I-bump", Shape: shape([]int{1, 1, 1, 1}, []int{0, 1, 0, 0}), Color: rgb(0x6a, 0x5a, 0xcd)},
	{Name: "Square-3", Shape: shape([]int{1, 1, 1}, []int{1, 1, 1}, []int{1, 1, 1}), Color: rgb(0xff, 0xd7, 0x00)},
}

// Catalog returns the standard piece set. The returned slice is a fresh copy;
// the shapes themselves are shared and must not be mutated.
func Catalog() []Piece {
	return append([]Piece(nil), catalog...)
}
