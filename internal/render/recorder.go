package render

import "image/color"

// OpKind identifies a recorded drawing call.
type OpKind uint8

const (
	OpClear OpKind = iota
	OpCircle
	OpRadial
	OpStroke
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpCircle:
		return "circle"
	case OpRadial:
		return "radial"
	case OpStroke:
		return "stroke"
	}
	return "unknown"
}

// Op is one recorded drawing call.
type Op struct {
	Kind   OpKind
	X, Y   float64
	R      float64
	Alpha  float64
	Width  float64
	Color  color.NRGBA
	Points []Point
}

// Recorder is a Surface that remembers every call instead of rasterising.
type Recorder struct {
	W, H float64
	Ops  []Op
}

// NewRecorder returns an empty recorder with the given dimensions.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Width() float64  { return r.W }
func (r *Recorder) Height() float64 { return r.H }

func (r *Recorder) Clear(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Color: NRGBA(c)})
}

func (r *Recorder) FillCircle(x, y, rad float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X: x, Y: y, R: rad, Color: NRGBA(c)})
}

func (r *Recorder) FillRadial(x, y, rad float64, c color.Color, alpha float64) {
	r.Ops = append(r.Ops, Op{Kind: OpRadial, X: x, Y: y, R: rad, Alpha: alpha, Color: NRGBA(c)})
}

func (r *Recorder) StrokePath(pts []Point, width float64, c color.Color) {
	cp := append([]Point(nil), pts...)
	r.Ops = append(r.Ops, Op{Kind: OpStroke, Width: width, Color: NRGBA(c), Points: cp})
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

// Count returns how many calls of kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls of kind in order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
