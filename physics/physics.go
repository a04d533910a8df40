// Copyright 2025 The tenskind Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package physics provides the tensor components of lattice field theory:
// complex parts, color, spin, Lorentz direction and space-time sites, along
// with the kinds built from them.
package physics

import "github.com/born-ml/tenskind/kind"

// Extents of the static components.
const (
	NCompl = 2 // Real and imaginary part.
	NCol   = 3 // Colors of SU(3).
	NSpin  = 4 // Dirac spin.
	NDir   = 4 // Space-time directions.
)

// Index of the real and imaginary part along Compl.
const (
	RealPartID = 0
	ImagPartID = 1
)

// Compl is the real/imaginary axis of a complex number.
type Compl struct{}

func (Compl) Name() string { return "compl" }
func (Compl) Size() int    { return NCompl }

// Col is the color axis.
type Col struct{}

func (Col) Name() string { return "col" }
func (Col) Size() int    { return NCol }

// Spin is the Dirac spin axis.
type Spin struct{}

func (Spin) Name() string { return "spin" }
func (Spin) Size() int    { return NSpin }

// Dir is the space-time direction axis.
type Dir struct{}

func (Dir) Name() string { return "dir" }
func (Dir) Size() int    { return NDir }

// Spacetime is the lattice site axis. Its extent, the lattice volume, is
// given at run time.
type Spacetime struct{}

func (Spacetime) Name() string { return "spacetime" }

// RwCol is the row color index of a color matrix.
type RwCol struct{}

func (RwCol) Name() string         { return "rwcol" }
func (RwCol) Size() int            { return NCol }
func (RwCol) Twin() kind.Component { return CnCol{} }

// CnCol is the column color index of a color matrix.
type CnCol struct{}

func (CnCol) Name() string         { return "cncol" }
func (CnCol) Size() int            { return NCol }
func (CnCol) Twin() kind.Component { return RwCol{} }

// RwSpin is the row spin index of a spin matrix.
type RwSpin struct{}

func (RwSpin) Name() string         { return "rwspin" }
func (RwSpin) Size() int            { return NSpin }
func (RwSpin) Twin() kind.Component { return CnSpin{} }

// CnSpin is the column spin index of a spin matrix.
type CnSpin struct{}

func (CnSpin) Name() string         { return "cnspin" }
func (CnSpin) Size() int            { return NSpin }
func (CnSpin) Twin() kind.Component { return RwSpin{} }

// Kinds of the common lattice fields, innermost component last.
var (
	Complex     = kind.Of1[Compl]()
	ColorVector = kind.Of2[Col, Compl]()
	Spincolor   = kind.Of3[Spin, Col, Compl]()
	SU3Matrix   = kind.Of3[RwCol, CnCol, Compl]()
	SpinMatrix  = kind.Of3[RwSpin, CnSpin, Compl]()

	// GaugeConf holds one SU(3) matrix per site and direction.
	GaugeConf = kind.MustBlend(kind.Of2[Spacetime, Dir](), SU3Matrix)
	// SpincolorField holds one spincolor per site.
	SpincolorField = kind.MustBlend(kind.Of1[Spacetime](), Spincolor)
)

// Volume returns the number of sites of a lattice with the given extents.
func Volume(extents ...int) int {
	v := 1
	for _, e := range extents {
		v *= e
	}
	return v
}
