// Copyright 2025 The tenskind Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package kind describes the shape of tensors before any tensor exists.
//
// # Overview
//
// A tensor kind is an ordered list of components (axes). Each component has a
// name, its identity, and either a fixed size or none, in which case it is
// dynamic and its extent is given when a tensor is created. This package
// provides:
//   - Components: any type with a Name method, plus Size for fixed extents
//   - Kinds: construction, queries, dynamic-size lists and row-major indexing
//   - Merge: grouping contiguous compatible components into one
//   - Blend: unioning kinds while preserving order and removing duplicates
//   - Position lookup of a kind's components across a list of kinds
//
// # Basic Usage
//
//	type Col struct{}
//
//	func (Col) Name() string { return "col" }
//	func (Col) Size() int    { return 3 }
//
//	type Site struct{}
//
//	func (Site) Name() string { return "site" }
//
//	var (
//	    Colored = kind.Of2[Col, physics.Spin]()
//	    Field   = kind.MustBlend(Colored, kind.Of1[Site]())
//	)
//
//	func main() {
//	    ds := kind.MustDynSizes(Field, 16*16*16*32)
//	    n, _ := Field.TotalSize(ds) // 3*4*131072
//	}
//
// # Failure Model
//
// Typed constructors reject non-component types at compile time. Must*
// helpers panic on ill-formed kinds (duplicate components, conflicting
// blends, invalid merges); declared as package-level variables they abort the
// program during initialization. The remaining functions return a
// *ConstraintError naming the violated constraint.
package kind
