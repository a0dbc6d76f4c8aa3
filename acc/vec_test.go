// Copyright 2026 The go-alpaka Authors. SPDX-License-Identifier: Apache-2.0

package acc

import "testing"

func TestVec3Linear(t *testing.T) {
	tests := []struct {
		v    Vec3
		want int
	}{
		{Vec3{1, 1, 1}, 1},
		{Vec3{4, 1, 1}, 4},
		{Vec3{4, 3, 2}, 24},
		{Vec3{0, 5, 5}, 0},
	}
	for _, tt := range tests {
		if got := tt.v.Linear(); got != tt.want {
			t.Errorf("%s.Linear() = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestLinearRoundTrip(t *testing.T) {
	dim := Vec3{X: 5, Y: 3, Z: 4}
	for i := 0; i < dim.Linear(); i++ {
		v := linearTo3D(i, dim)
		if v.X < 0 || v.X >= dim.X || v.Y < 0 || v.Y >= dim.Y || v.Z < 0 || v.Z >= dim.Z {
			t.Fatalf("linearTo3D(%d) = %s out of extent %s", i, v, dim)
		}
		if got := v.linearIn(dim); got != i {
			t.Fatalf("linearIn(linearTo3D(%d)) = %d", i, got)
		}
	}
}

func TestLinearOrderXFastest(t *testing.T) {
	dim := Vec3{X: 3, Y: 2, Z: 2}
	if got := linearTo3D(1, dim); got != (Vec3{X: 1}) {
		t.Errorf("linearTo3D(1) = %s, want (1,0,0)", got)
	}
	if got := linearTo3D(3, dim); got != (Vec3{Y: 1}) {
		t.Errorf("linearTo3D(3) = %s, want (0,1,0)", got)
	}
	if got := linearTo3D(6, dim); got != (Vec3{Z: 1}) {
		t.Errorf("linearTo3D(6) = %s, want (0,0,1)", got)
	}
}

func TestWorkDivValidate(t *testing.T) {
	tests := []struct {
		name    string
		div     WorkDiv
		wantErr bool
	}{
		{"valid", WorkDiv{Vec3{2, 1, 1}, Vec3{4, 1, 1}}, false},
		{"zero grid dim", WorkDiv{Vec3{2, 0, 1}, Vec3{4, 1, 1}}, true},
		{"zero block dim", WorkDiv{Vec3{2, 1, 1}, Vec3{4, 1, 0}}, true},
		{"negative", WorkDiv{Vec3{-1, 1, 1}, Vec3{1, 1, 1}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.div.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWorkDiv1D(t *testing.T) {
	div := WorkDiv1D(100, 64)
	if div.GridBlocks != (Vec3{X: 2, Y: 1, Z: 1}) {
		t.Errorf("GridBlocks = %s, want (2,1,1)", div.GridBlocks)
	}
	if div.BlockThreads != (Vec3{X: 64, Y: 1, Z: 1}) {
		t.Errorf("BlockThreads = %s, want (64,1,1)", div.BlockThreads)
	}

	// Degenerate inputs still produce a valid division.
	div = WorkDiv1D(0, 0)
	if err := div.Validate(); err != nil {
		t.Errorf("WorkDiv1D(0,0).Validate() = %v", err)
	}
}
