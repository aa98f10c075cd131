package thicket

import "reflect"

// InterpolatorFunc blends two dynamically typed values of the same kind.
type InterpolatorFunc func(from, to any, ratio float64) any

var interpolators = map[reflect.Type]InterpolatorFunc{}

// RegisterInterpolator makes values of sample's type animatable through
// Interpolate. Registering a type twice replaces the previous function.
func RegisterInterpolator(sample any, fn InterpolatorFunc) {
	interpolators[reflect.TypeOf(sample)] = fn
}

// Interpolate blends from and to with the interpolator registered for the
// type of to. The second result is false when no interpolator is known, in
// which case the value jumps: from is returned below ratio 1, to at 1.
func Interpolate(from, to any, ratio float64) (any, bool) {
	fn, ok := interpolators[reflect.TypeOf(to)]
	if !ok {
		if ratio >= 1 {
			return to, false
		}
		return from, false
	}
	return fn(from, to, ratio), true
}

func init() {
	RegisterInterpolator(Color{}, func(from, to any, ratio float64) any {
		f, _ := from.(Color)
		return f.Lerp(to.(Color), ratio)
	})
	RegisterInterpolator(Gradient{}, func(from, to any, ratio float64) any {
		f, _ := from.(Gradient)
		return f.Interpolated(to.(Gradient), ratio)
	})
}

// sameValue reports whether a and b hold equal values. Values whose dynamic
// type cannot be compared with == (structs holding slices, maps, funcs) are
// never the same, so callers treat them as changed instead of panicking.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}
