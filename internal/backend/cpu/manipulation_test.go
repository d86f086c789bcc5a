package cpu

import (
	"testing"

	"github.com/tensorext/tensorext/internal/tensor"
	"github.com/x448/float16"
)

func TestReshape(t *testing.T) {
	backend := New()
	x := newFloat32(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})

	result := backend.Reshape(x, tensor.Shape{3, 2})
	if !result.Shape().Equal(tensor.Shape{3, 2}) {
		t.Fatalf("shape = %v, want [3 2]", result.Shape())
	}
	// Row-major order is preserved.
	got := result.AsFloat32()
	for i, want := range []float32{1, 2, 3, 4, 5, 6} {
		if got[i] != want {
			t.Errorf("result[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestReshapeBadSizePanics(t *testing.T) {
	backend := New()
	x := newFloat32(t, tensor.Shape{2, 3}, make([]float32, 6))

	defer func() {
		if recover() == nil {
			t.Error("Reshape to a different element count should panic")
		}
	}()
	backend.Reshape(x, tensor.Shape{4, 2})
}

func TestTranspose2D(t *testing.T) {
	backend := New()
	x := newFloat32(t, tensor.Shape{2, 3}, []float32{
		1, 2, 3,
		4, 5, 6,
	})

	result := backend.Transpose(x)
	if !result.Shape().Equal(tensor.Shape{3, 2}) {
		t.Fatalf("shape = %v, want [3 2]", result.Shape())
	}
	want := []float32{
		1, 4,
		2, 5,
		3, 6,
	}
	for i, v := range result.AsFloat32() {
		if v != want[i] {
			t.Errorf("result[%d] = %v, want %v", i, v, want[i])
		}
	}
}

func TestTransposeLastTwoAxes(t *testing.T) {
	backend := New()
	// Swap the trailing axes of a [2, 2, 3] tensor, keeping the batch dim.
	data := make([]float32, 12)
	for i := range data {
		data[i] = float32(i)
	}
	x := newFloat32(t, tensor.Shape{2, 2, 3}, data)

	result := backend.Transpose(x, 0, 2, 1)
	if !result.Shape().Equal(tensor.Shape{2, 3, 2}) {
		t.Fatalf("shape = %v, want [2 3 2]", result.Shape())
	}
	got := result.AsFloat32()
	for b := 0; b < 2; b++ {
		for i := 0; i < 2; i++ {
			for j := 0; j < 3; j++ {
				src := (b*2+i)*3 + j
				dst := (b*3+j)*2 + i
				if got[dst] != data[src] {
					t.Errorf("[%d][%d][%d]: got %v, want %v", b, j, i, got[dst], data[src])
				}
			}
		}
	}
}

func TestTransposeBool(t *testing.T) {
	backend := New()
	x := newBool(t, tensor.Shape{2, 2}, []bool{true, false, false, true})

	result := backend.Transpose(x)
	got := result.AsBool()
	want := []bool{true, false, false, true}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestChunk(t *testing.T) {
	backend := New()
	x := newFloat32(t, tensor.Shape{2, 4}, []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
	})

	parts := backend.Chunk(x, 2, 1)
	if len(parts) != 2 {
		t.Fatalf("len(parts) = %d, want 2", len(parts))
	}
	if !parts[0].Shape().Equal(tensor.Shape{2, 2}) {
		t.Fatalf("part shape = %v, want [2 2]", parts[0].Shape())
	}
	want0 := []float32{1, 2, 5, 6}
	want1 := []float32{3, 4, 7, 8}
	for i := range want0 {
		if parts[0].AsFloat32()[i] != want0[i] {
			t.Errorf("parts[0][%d] = %v, want %v", i, parts[0].AsFloat32()[i], want0[i])
		}
		if parts[1].AsFloat32()[i] != want1[i] {
			t.Errorf("parts[1][%d] = %v, want %v", i, parts[1].AsFloat32()[i], want1[i])
		}
	}
}

func TestChunkIndivisiblePanics(t *testing.T) {
	backend := New()
	x := newFloat32(t, tensor.Shape{2, 4}, make([]float32, 8))

	defer func() {
		if recover() == nil {
			t.Error("Chunk with indivisible dim should panic")
		}
	}()
	backend.Chunk(x, 3, 1)
}

func TestWhere(t *testing.T) {
	backend := New()
	cond := newBool(t, tensor.Shape{4}, []bool{true, false, true, false})
	x := newFloat32(t, tensor.Shape{4}, []float32{1, 2, 3, 4})
	y := newFloat32(t, tensor.Shape{4}, []float32{-1, -2, -3, -4})

	result := backend.Where(cond, x, y)
	want := []float32{1, -2, 3, -4}
	for i, v := range result.AsFloat32() {
		if v != want[i] {
			t.Errorf("result[%d] = %v, want %v", i, v, want[i])
		}
	}
}

func TestWhereBroadcast(t *testing.T) {
	backend := New()
	// Condition [2, 2] selects between a scalar-like x [1] and matrix y.
	cond := newBool(t, tensor.Shape{2, 2}, []bool{true, false, false, true})
	x := newFloat32(t, tensor.Shape{1}, []float32{0})
	y := newFloat32(t, tensor.Shape{2, 2}, []float32{1, 2, 3, 4})

	result := backend.Where(cond, x, y)
	if !result.Shape().Equal(tensor.Shape{2, 2}) {
		t.Fatalf("shape = %v, want [2 2]", result.Shape())
	}
	want := []float32{0, 2, 3, 0}
	for i, v := range result.AsFloat32() {
		if v != want[i] {
			t.Errorf("result[%d] = %v, want %v", i, v, want[i])
		}
	}
}

func TestWhereNonBoolCondPanics(t *testing.T) {
	backend := New()
	x := newFloat32(t, tensor.Shape{2}, []float32{1, 2})

	defer func() {
		if recover() == nil {
			t.Error("Where with a non-bool condition should panic")
		}
	}()
	backend.Where(x, x, x)
}

func TestCast(t *testing.T) {
	backend := New()

	t.Run("float32 to int32 truncates", func(t *testing.T) {
		x := newFloat32(t, tensor.Shape{3}, []float32{1.9, -2.7, 3})
		result := backend.Cast(x, tensor.Int32)
		got := result.AsInt32()
		want := []int32{1, -2, 3}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("result[%d] = %d, want %d", i, got[i], want[i])
			}
		}
	})

	t.Run("bool to int64", func(t *testing.T) {
		x := newBool(t, tensor.Shape{3}, []bool{true, false, true})
		result := backend.Cast(x, tensor.Int64)
		got := result.AsInt64()
		want := []int64{1, 0, 1}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("result[%d] = %d, want %d", i, got[i], want[i])
			}
		}
	})

	t.Run("int32 to bool", func(t *testing.T) {
		x, _ := tensor.NewRaw(tensor.Shape{3}, tensor.Int32, tensor.CPU)
		copy(x.AsInt32(), []int32{0, 5, -1})
		result := backend.Cast(x, tensor.Bool)
		got := result.AsBool()
		want := []bool{false, true, true}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("result[%d] = %v, want %v", i, got[i], want[i])
			}
		}
	})

	t.Run("float32 to float16 and back", func(t *testing.T) {
		x := newFloat32(t, tensor.Shape{3}, []float32{1, -0.5, 2})
		half := backend.Cast(x, tensor.Float16)
		if half.DType() != tensor.Float16 {
			t.Fatalf("dtype = %v, want Float16", half.DType())
		}
		if got := half.AsFloat16()[1]; got != float16.Fromfloat32(-0.5) {
			t.Errorf("half[1] = %v", got)
		}
		back := backend.Cast(half, tensor.Float32)
		got := back.AsFloat32()
		want := []float32{1, -0.5, 2}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("round trip[%d] = %v, want %v", i, got[i], want[i])
			}
		}
	})

	t.Run("same dtype is identity", func(t *testing.T) {
		x := newFloat32(t, tensor.Shape{2}, []float32{1, 2})
		if result := backend.Cast(x, tensor.Float32); result != x {
			t.Error("Cast to the same dtype should return the input")
		}
	})
}
