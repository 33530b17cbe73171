package shapes

import "errors"

var ErrNonPositiveSide = errors.New("shape sides must be positive")

// Shape is the corrected abstraction: it promises an area and nothing about
// mutation, so every implementation can honor it.
type Shape interface {
	Area() float64
}

// Rect is an immutable rectangle. Resizing returns a new value.
type Rect struct {
	width  float64
	height float64
}

func NewRect(width, height float64) (Rect, error) {
	if width <= 0 || height <= 0 {
		return Rect{}, ErrNonPositiveSide
	}
	return Rect{width: width, height: height}, nil
}

func (r Rect) Width() float64  { return r.width }
func (r Rect) Height() float64 { return r.height }
func (r Rect) Area() float64   { return r.width * r.height }

// WithWidth returns a copy of r with a new width.
func (r Rect) WithWidth(w float64) (Rect, error) {
	return NewRect(w, r.height)
}

// WithHeight returns a copy of r with a new height.
func (r Rect) WithHeight(h float64) (Rect, error) {
	return NewRect(r.width, h)
}

// Sq is an immutable square. It is a sibling of Rect, not a subtype.
type Sq struct {
	side float64
}

func NewSq(side float64) (Sq, error) {
	if side <= 0 {
		return Sq{}, ErrNonPositiveSide
	}
	return Sq{side: side}, nil
}

func (s Sq) Side() float64 { return s.side }
func (s Sq) Area() float64 { return s.side * s.side }

// TotalArea sums the areas of any shapes.
func TotalArea(shapes ...Shape) float64 {
	var total float64
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}
