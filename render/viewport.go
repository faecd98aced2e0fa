package render

import (
	"github.com/lixenwraith/gunslinger/constants"
	"github.com/lixenwraith/gunslinger/core"
	"github.com/lixenwraith/gunslinger/vmath"
)

// Viewport maps field units onto the terminal cells between the HUD and banter rows
type Viewport struct {
	Cols, Rows int // Cells given to the field
	OffsetY    int // Screen row of the first field row

	FieldWidth, FieldHeight int
}

// NewViewport fits a field into a screen of the given size
func NewViewport(screenW, screenH, fieldW, fieldH int) Viewport {
	return Viewport{
		Cols:        max(screenW, 1),
		Rows:        max(screenH-constants.HudRows-constants.BanterRows, 1),
		OffsetY:     constants.HudRows,
		FieldWidth:  max(fieldW, 1),
		FieldHeight: max(fieldH, 1),
	}
}

// ToCell returns the screen cell containing field point (x, y)
func (v Viewport) ToCell(x, y float64) (col, row int) {
	col = int(x * float64(v.Cols) / float64(v.FieldWidth))
	row = int(y*float64(v.Rows)/float64(v.FieldHeight)) + v.OffsetY
	return col, row
}

// CellSpan returns the half-open cell rectangle covering a, never narrower than one cell
func (v Viewport) CellSpan(a core.Area) (c0, r0, c1, r1 int) {
	c0, r0 = v.ToCell(float64(a.X), float64(a.Y))
	c1, r1 = v.ToCell(float64(a.Right()), float64(a.Bottom()))
	c1 = max(c1, c0+1)
	r1 = max(r1, r0+1)
	return c0, r0, c1, r1
}

// FieldCells returns the screen cells the field occupies
func (v Viewport) FieldCells() core.Area {
	return core.Area{X: 0, Y: v.OffsetY, Width: v.Cols, Height: v.Rows}
}

// ToField returns the field point at the centre of a screen cell
// ok is false for cells outside the field rows and columns
func (v Viewport) ToField(col, row int) (x, y int, ok bool) {
	if !vmath.AreaContains(v.FieldCells(), col, row) {
		return 0, 0, false
	}
	row -= v.OffsetY
	x = int((float64(col) + 0.5) * float64(v.FieldWidth) / float64(v.Cols))
	y = int((float64(row) + 0.5) * float64(v.FieldHeight) / float64(v.Rows))
	return x, y, true
}
