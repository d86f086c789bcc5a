package cpu

import (
	"math"
	"testing"

	"github.com/tensorext/tensorext/internal/tensor"
)

func TestMatMul2D(t *testing.T) {
	backend := New()
	// [2, 3] @ [3, 2] -> [2, 2]
	a := newFloat32(t, tensor.Shape{2, 3}, []float32{
		1, 2, 3,
		4, 5, 6,
	})
	b := newFloat32(t, tensor.Shape{3, 2}, []float32{
		7, 8,
		9, 10,
		11, 12,
	})

	result := backend.MatMul(a, b)
	if !result.Shape().Equal(tensor.Shape{2, 2}) {
		t.Fatalf("shape = %v, want [2 2]", result.Shape())
	}
	want := []float32{58, 64, 139, 154}
	for i, v := range result.AsFloat32() {
		if v != want[i] {
			t.Errorf("result[%d] = %v, want %v", i, v, want[i])
		}
	}
}

func TestMatMulInnerDimMismatchPanics(t *testing.T) {
	backend := New()
	a := newFloat32(t, tensor.Shape{2, 3}, make([]float32, 6))
	b := newFloat32(t, tensor.Shape{2, 2}, make([]float32, 4))

	defer func() {
		if recover() == nil {
			t.Error("MatMul with mismatched inner dims should panic")
		}
	}()
	backend.MatMul(a, b)
}

func TestBatchMatMul(t *testing.T) {
	backend := New()
	// Two independent [2, 2] matmuls.
	a := newFloat32(t, tensor.Shape{2, 2, 2}, []float32{
		1, 0,
		0, 1,

		2, 0,
		0, 2,
	})
	b := newFloat32(t, tensor.Shape{2, 2, 2}, []float32{
		1, 2,
		3, 4,

		5, 6,
		7, 8,
	})

	result := backend.BatchMatMul(a, b)
	if !result.Shape().Equal(tensor.Shape{2, 2, 2}) {
		t.Fatalf("shape = %v, want [2 2 2]", result.Shape())
	}
	want := []float32{
		1, 2,
		3, 4,

		10, 12,
		14, 16,
	}
	for i, v := range result.AsFloat32() {
		if v != want[i] {
			t.Errorf("result[%d] = %v, want %v", i, v, want[i])
		}
	}
}

func TestBatchMatMulBroadcast(t *testing.T) {
	backend := New()
	// [2, 1, 2, 2] @ [1, 3, 2, 2] -> [2, 3, 2, 2]: both batch dims expand.
	aData := make([]float32, 2*2*2)
	for i := range aData {
		aData[i] = float32(i)
	}
	a := newFloat32(t, tensor.Shape{2, 1, 2, 2}, aData)

	// Identity matrices so the result rows equal the a matrices.
	b := newFloat32(t, tensor.Shape{1, 3, 2, 2}, []float32{
		1, 0, 0, 1,
		1, 0, 0, 1,
		1, 0, 0, 1,
	})

	result := backend.BatchMatMul(a, b)
	if !result.Shape().Equal(tensor.Shape{2, 3, 2, 2}) {
		t.Fatalf("shape = %v, want [2 3 2 2]", result.Shape())
	}
	got := result.AsFloat32()
	for outer := 0; outer < 2; outer++ {
		for rep := 0; rep < 3; rep++ {
			for i := 0; i < 4; i++ {
				idx := (outer*3+rep)*4 + i
				want := aData[outer*4+i]
				if got[idx] != want {
					t.Errorf("batch (%d,%d)[%d] = %v, want %v", outer, rep, i, got[idx], want)
				}
			}
		}
	}
}

func TestBatchMatMulVsSingle(t *testing.T) {
	backend := New()
	// A batched matmul with batch size 1 must match the 2D kernel.
	aData := []float32{0.5, -1, 2, 3, 1.5, -2}
	bData := []float32{1, 2, -1, 0.5, 3, -0.5}

	a2 := newFloat32(t, tensor.Shape{2, 3}, aData)
	b2 := newFloat32(t, tensor.Shape{3, 2}, bData)
	single := backend.MatMul(a2, b2).AsFloat32()

	a3 := newFloat32(t, tensor.Shape{1, 2, 3}, aData)
	b3 := newFloat32(t, tensor.Shape{1, 3, 2}, bData)
	batched := backend.BatchMatMul(a3, b3).AsFloat32()

	for i := range single {
		if math.Abs(float64(single[i]-batched[i])) > 1e-6 {
			t.Errorf("mismatch at %d: %v vs %v", i, single[i], batched[i])
		}
	}
}

func TestExpSqrt(t *testing.T) {
	backend := New()
	a := newFloat32(t, tensor.Shape{3}, []float32{0, 1, 2})

	exp := backend.Exp(a).AsFloat32()
	wantExp := []float32{1, float32(math.E), float32(math.Exp(2))}
	for i := range wantExp {
		if math.Abs(float64(exp[i]-wantExp[i])) > 1e-6 {
			t.Errorf("exp[%d] = %v, want %v", i, exp[i], wantExp[i])
		}
	}

	b := newFloat32(t, tensor.Shape{3}, []float32{4, 9, 16})
	sqrt := backend.Sqrt(b).AsFloat32()
	wantSqrt := []float32{2, 3, 4}
	for i := range wantSqrt {
		if sqrt[i] != wantSqrt[i] {
			t.Errorf("sqrt[%d] = %v, want %v", i, sqrt[i], wantSqrt[i])
		}
	}
}
