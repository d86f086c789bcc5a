package tensor

import (
	"testing"
)

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	if !raw.Shape().Equal(Shape{2, 3}) {
		t.Errorf("shape = %v, want [2 3]", raw.Shape())
	}
	if raw.DType() != Float32 {
		t.Errorf("dtype = %v, want Float32", raw.DType())
	}
	data := raw.AsFloat32()
	if len(data) != 6 {
		t.Fatalf("len(data) = %d, want 6", len(data))
	}
	for i, v := range data {
		if v != 0 {
			t.Errorf("data[%d] = %v, want 0", i, v)
		}
	}
}

func TestNewRawInvalidShape(t *testing.T) {
	if _, err := NewRaw(Shape{2, 0}, Float32, CPU); err == nil {
		t.Error("NewRaw with a zero dimension should fail")
	}
}

func TestRawTypedViews(t *testing.T) {
	raw, err := NewRaw(Shape{4}, Int64, CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	view := raw.AsInt64()
	view[2] = 42

	// Views alias the underlying buffer.
	if got := raw.AsInt64()[2]; got != 42 {
		t.Errorf("AsInt64()[2] = %d, want 42", got)
	}
}

func TestRawClone(t *testing.T) {
	raw, err := NewRaw(Shape{2}, Float64, CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	raw.AsFloat64()[0] = 1.5

	clone := raw.Clone()
	clone.AsFloat64()[0] = 9

	if got := raw.AsFloat64()[0]; got != 1.5 {
		t.Errorf("clone write leaked into source: %v", got)
	}
}

func TestRawWithShape(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	raw.AsFloat32()[4] = 7

	view, err := raw.WithShape(Shape{3, 2})
	if err != nil {
		t.Fatalf("WithShape: %v", err)
	}
	if !view.Shape().Equal(Shape{3, 2}) {
		t.Errorf("shape = %v, want [3 2]", view.Shape())
	}
	if got := view.AsFloat32()[4]; got != 7 {
		t.Errorf("reshape must not move data, got %v", got)
	}

	if _, err := raw.WithShape(Shape{4, 2}); err == nil {
		t.Error("WithShape with mismatched element count should fail")
	}
}

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		want  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Float16, 2},
		{Int32, 4},
		{Int64, 8},
		{Uint8, 1},
		{Bool, 1},
	}
	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.want {
			t.Errorf("%v.Size() = %d, want %d", tt.dtype, got, tt.want)
		}
	}
}

func TestDataTypeClassification(t *testing.T) {
	if !Float16.IsFloat() || !Float32.IsFloat() || !Float64.IsFloat() {
		t.Error("float dtypes must report IsFloat")
	}
	if !Int32.IsInt() || !Int64.IsInt() || !Uint8.IsInt() {
		t.Error("integer dtypes must report IsInt")
	}
	if Bool.IsFloat() || Bool.IsInt() {
		t.Error("Bool is neither float nor int")
	}
}
