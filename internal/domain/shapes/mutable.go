// Package shapes holds the Rectangle/Square substitutability example.
//
// mutable.go is the broken design, kept as a regression fixture: Square
// satisfies MutableRectangle's method set but not its behavior, so code
// written against MutableRectangle computes wrong areas when handed a Square.
// shape.go is the corrected design.
package shapes

// MutableRectangle is the contract callers of Rectangle rely on: width and
// height can be changed independently.
type MutableRectangle interface {
	SetWidth(w float64)
	SetHeight(h float64)
	Width() float64
	Height() float64
	Area() float64
}

// Rectangle honors the MutableRectangle contract.
type Rectangle struct {
	width  float64
	height float64
}

func NewRectangle(width, height float64) *Rectangle {
	return &Rectangle{width: width, height: height}
}

func (r *Rectangle) SetWidth(w float64)  { r.width = w }
func (r *Rectangle) SetHeight(h float64) { r.height = h }
func (r *Rectangle) Width() float64      { return r.width }
func (r *Rectangle) Height() float64     { return r.height }
func (r *Rectangle) Area() float64       { return r.width * r.height }

// Square reuses Rectangle but forces both sides equal on every write.
//
// Go Learning Note — Embedding Is Not Subtyping:
// Square embeds *Rectangle, and its SetWidth/SetHeight shadow the promoted
// ones. Because Go has no virtual dispatch on embedded types, the only way a
// Square "is a" rectangle is by satisfying the MutableRectangle interface,
// and it does, which is exactly the problem.
type Square struct {
	*Rectangle
}

func NewSquare(side float64) *Square {
	return &Square{Rectangle: NewRectangle(side, side)}
}

// SetWidth also changes the height.
func (s *Square) SetWidth(w float64) {
	s.width = w
	s.height = w
}

// SetHeight also changes the width.
func (s *Square) SetHeight(h float64) {
	s.width = h
	s.height = h
}

// Stretch is written against the MutableRectangle contract and expects the
// resulting area to be w*h.
func Stretch(r MutableRectangle, w, h float64) float64 {
	r.SetWidth(w)
	r.SetHeight(h)
	return r.Area()
}

var (
	_ MutableRectangle = (*Rectangle)(nil)
	_ MutableRectangle = (*Square)(nil)
)
