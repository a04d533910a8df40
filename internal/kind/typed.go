package kind

import "github.com/born-ml/tenskind/internal/comp"

// The typed constructors take components as type parameters, so a type that
// is not a component is rejected by the compiler. They cover up to six
// components; longer kinds are built with New or by blending.

// Of1 returns the kind <A>.
func Of1[A comp.Component]() *Kind {
	var a A
	return MustNew(a)
}

// Of2 returns the kind <A,B>.
func Of2[A, B comp.Component]() *Kind {
	var (
		a A
		b B
	)
	return MustNew(a, b)
}

// Of3 returns the kind <A,B,C>.
func Of3[A, B, C comp.Component]() *Kind {
	var (
		a A
		b B
		c C
	)
	return MustNew(a, b, c)
}

// Of4 returns the kind <A,B,C,D>.
func Of4[A, B, C, D comp.Component]() *Kind {
	var (
		a A
		b B
		c C
		d D
	)
	return MustNew(a, b, c, d)
}

// Of5 returns the kind <A,B,C,D,E>.
func Of5[A, B, C, D, E comp.Component]() *Kind {
	var (
		a A
		b B
		c C
		d D
		e E
	)
	return MustNew(a, b, c, d, e)
}

// Of6 returns the kind <A,B,C,D,E,F>.
func Of6[A, B, C, D, E, F comp.Component]() *Kind {
	var (
		a A
		b B
		c C
		d D
		e E
		f F
	)
	return MustNew(a, b, c, d, e, f)
}

// Has reports whether component C is part of k.
func Has[C comp.Component](k *Kind) bool {
	var c C
	return k.Has(c)
}

// PosOf returns the position of component C in k, or NotPresent.
func PosOf[C comp.Component](k *Kind) int {
	var c C
	return k.PosOf(c)
}

// DynPos returns the slot of the dynamic component C in the dynamic sizes of k.
func DynPos[C comp.Component](k *Kind) (int, error) {
	var c C
	return k.DynCompPos(c)
}

// HasSize reports whether component C declares a fixed size.
func HasSize[C comp.Component]() bool {
	var c C
	return comp.HasSize(c)
}
