package geom

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vango-dev/geom/pkg/observe"
)

// Mat3 is an observable 3x3 matrix stored row-major:
//
//	| a b c |
//	| d e f |
//	| g h i |
type Mat3 struct {
	changes observe.Source
	cells   [9]float64
}

// NewMat3 creates a matrix from nine row-major cells.
func NewMat3(a, b, c, d, e, f, g, h, i float64) *Mat3 {
	return &Mat3{cells: [9]float64{a, b, c, d, e, f, g, h, i}}
}

// Identity returns a new identity matrix.
func Identity() *Mat3 {
	return NewMat3(1, 0, 0, 0, 1, 0, 0, 0, 1)
}

func fromGL(m mgl64.Mat3) *Mat3 {
	out := &Mat3{}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out.cells[row*3+col] = m.At(row, col)
		}
	}
	return out
}

// gl converts to mathgl's column-major layout.
func (m *Mat3) gl() mgl64.Mat3 {
	c := m.cells
	return mgl64.Mat3{
		c[0], c[3], c[6],
		c[1], c[4], c[7],
		c[2], c[5], c[8],
	}
}

// Subscribe registers fn to run after every change.
func (m *Mat3) Subscribe(fn observe.Callback) observe.Revoke {
	return m.changes.Subscribe(fn)
}

// At returns the cell at row, col.
func (m *Mat3) At(row, col int) float64 {
	return m.cells[row*3+col]
}

// Cells returns the row-major cells.
func (m *Mat3) Cells() [9]float64 {
	return m.cells
}

// Set replaces all nine cells and notifies once if any changed.
func (m *Mat3) Set(a, b, c, d, e, f, g, h, i float64) {
	next := [9]float64{a, b, c, d, e, f, g, h, i}
	if next == m.cells {
		return
	}
	m.cells = next
	m.changes.Notify()
}

func (m *Mat3) SetSilent(a, b, c, d, e, f, g, h, i float64) {
	m.cells = [9]float64{a, b, c, d, e, f, g, h, i}
}

func (m *Mat3) setCells(cells [9]float64) {
	m.Set(cells[0], cells[1], cells[2], cells[3], cells[4], cells[5], cells[6], cells[7], cells[8])
}

func (m *Mat3) Copy(other *Mat3) {
	m.setCells(other.cells)
}

func (m *Mat3) Clone() *Mat3 {
	return &Mat3{cells: m.cells}
}

func (m *Mat3) Equals(other *Mat3) bool {
	return other != nil && m.cells == other.cells
}

// Mul returns m * o.
func (m *Mat3) Mul(o *Mat3) *Mat3 {
	return fromGL(m.gl().Mul3(o.gl()))
}

func (m *Mat3) Determinant() float64 {
	return m.gl().Det()
}

// Inverse returns the inverse of m, or false if m is singular.
func (m *Mat3) Inverse() (*Mat3, bool) {
	g := m.gl()
	if g.Det() == 0 {
		return nil, false
	}
	return fromGL(g.Inv()), true
}

// TransformPoint applies m to p in homogeneous coordinates.
func (m *Mat3) TransformPoint(p *Vec2) *Vec2 {
	v := m.gl().Mul3x1(mgl64.Vec3{p.x, p.y, 1})
	if w := v[2]; w != 0 && w != 1 {
		return NewVec2(v[0]/w, v[1]/w)
	}
	return NewVec2(v[0], v[1])
}
