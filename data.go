package implot

import "fmt"

// Scalar is the set of element types the data adapters accept.
type Scalar interface {
	float64 | float32 | int64 | int32 | int16 | int8 | uint64 | uint32 | uint16 | uint8
}

// DataView is a validated window over series data, ready to hand to
// the native library. A view is created by Adapt or AdaptValues; every
// bound is checked at creation, so a DataView can always be plotted
// without further validation.
//
// For float64 sources the view aliases the caller's backing array and
// the native call receives the stride unchanged, so no element is
// copied for any stride. Other element types are converted once into
// a scratch buffer owned by the view (stride collapsed to 1).
type DataView struct {
	vals   []float64
	stride int
	count  int
}

// Adapt validates a strided window over values and returns a view of
// it. The window starts at values[offset] and touches every stride-th
// element, count elements in total; the last touched index must lie
// inside values. Violations return ErrOutOfBounds before any native
// call can see the data.
//
// A count of zero is valid and yields an empty view; plotting an
// empty view draws nothing.
func Adapt[T Scalar](values []T, offset, stride, count int) (DataView, error) {
	switch {
	case offset < 0:
		return DataView{}, fmt.Errorf("implot: adapt: negative offset %d: %w", offset, ErrOutOfBounds)
	case stride < 1:
		return DataView{}, fmt.Errorf("implot: adapt: stride %d below 1: %w", stride, ErrOutOfBounds)
	case count < 0:
		return DataView{}, fmt.Errorf("implot: adapt: negative count %d: %w", count, ErrOutOfBounds)
	}
	if count == 0 {
		return DataView{stride: 1}, nil
	}
	last := offset + stride*(count-1)
	if last >= len(values) {
		return DataView{}, fmt.Errorf("implot: adapt: index %d out of range for %d elements (offset %d, stride %d, count %d): %w",
			last, len(values), offset, stride, count, ErrOutOfBounds)
	}

	// float64 passes through untouched; the native entry points take
	// the stride in bytes, so the window can alias the caller's array.
	if f64, ok := any(values).([]float64); ok {
		return DataView{vals: f64[offset:], stride: stride, count: count}, nil
	}

	scratch := make([]float64, count)
	for i := range scratch {
		scratch[i] = float64(values[offset+i*stride])
	}
	return DataView{vals: scratch, stride: 1, count: count}, nil
}

// AdaptValues adapts a whole slice: offset 0, stride 1.
func AdaptValues[T Scalar](values []T) (DataView, error) {
	return Adapt(values, 0, 1, len(values))
}

// mustAdaptValues adapts a whole slice. The whole-slice window cannot
// violate the bounds rule.
func mustAdaptValues(values []float64) DataView {
	v, err := AdaptValues(values)
	if err != nil {
		panic(err)
	}
	return v
}

// Count returns the number of elements in the view.
func (v DataView) Count() int { return v.count }

// Stride returns the element stride of the view's backing slice.
func (v DataView) Stride() int {
	if v.stride == 0 {
		return 1
	}
	return v.stride
}

// Values returns the backing slice, starting at the view's first
// element. Drivers combine it with Stride and Count to form the
// native call; the slice aliases the caller's data for float64
// sources.
func (v DataView) Values() []float64 { return v.vals }

// At returns the i-th element of the view.
func (v DataView) At(i int) float64 {
	if i < 0 || i >= v.count {
		panic(fmt.Sprintf("implot: view index %d out of range [0,%d)", i, v.count))
	}
	return v.vals[i*v.Stride()]
}
