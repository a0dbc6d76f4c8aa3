// Copyright 2026 The go-alpaka Authors. SPDX-License-Identifier: Apache-2.0

package acc

import "fmt"

// Vec3 is a 3-D index or extent. As an extent every component counts
// elements along that axis; as an index every component is zero-based.
//
// Linearization is row-major with X fastest, matching the iteration order
// of the launch loops: linear = x + X*(y + Y*z).
type Vec3 struct {
	X, Y, Z int
}

// Linear returns the number of elements in the extent v.
func (v Vec3) Linear() int {
	return v.X * v.Y * v.Z
}

// String returns the extent in (x,y,z) form.
func (v Vec3) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}

// linearIn returns the row-major linear position of index v within extent.
func (v Vec3) linearIn(extent Vec3) int {
	return v.X + extent.X*(v.Y+extent.Y*v.Z)
}

// linearTo3D is the inverse of linearIn for extent dim.
func linearTo3D(linear int, dim Vec3) Vec3 {
	return Vec3{
		X: linear % dim.X,
		Y: (linear / dim.X) % dim.Y,
		Z: linear / (dim.X * dim.Y),
	}
}
