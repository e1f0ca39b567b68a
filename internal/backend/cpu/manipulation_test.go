package cpu

import (
	"testing"

	"github.com/seedling-ml/seedling/internal/tensor"
)

// TestCPUBackend_Cat tests tensor concatenation.
func TestCPUBackend_Cat(t *testing.T) {
	backend := newTestBackend()

	t.Run("Dim0", func(t *testing.T) {
		a := rawFloat32(t, tensor.Shape{2, 2}, []float32{1, 2, 3, 4})
		b := rawFloat32(t, tensor.Shape{1, 2}, []float32{5, 6})

		result := backend.Cat([]*tensor.RawTensor{a, b}, 0)

		if !result.Shape().Equal(tensor.Shape{3, 2}) {
			t.Fatalf("Expected shape [3, 2], got %v", result.Shape())
		}
		if !float32SliceEqual(result.AsFloat32(), []float32{1, 2, 3, 4, 5, 6}) {
			t.Errorf("Cat(0) failed: got %v", result.AsFloat32())
		}
	})

	t.Run("Dim1", func(t *testing.T) {
		a := rawFloat32(t, tensor.Shape{2, 2}, []float32{1, 2, 3, 4})
		b := rawFloat32(t, tensor.Shape{2, 1}, []float32{5, 6})

		result := backend.Cat([]*tensor.RawTensor{a, b}, 1)

		if !result.Shape().Equal(tensor.Shape{2, 3}) {
			t.Fatalf("Expected shape [2, 3], got %v", result.Shape())
		}
		if !float32SliceEqual(result.AsFloat32(), []float32{1, 2, 5, 3, 4, 6}) {
			t.Errorf("Cat(1) failed: got %v", result.AsFloat32())
		}
	})

	t.Run("NegativeDim", func(t *testing.T) {
		a := rawFloat32(t, tensor.Shape{2, 2}, []float32{1, 2, 3, 4})
		b := rawFloat32(t, tensor.Shape{2, 1}, []float32{5, 6})

		result := backend.Cat([]*tensor.RawTensor{a, b}, -1)

		if !float32SliceEqual(result.AsFloat32(), []float32{1, 2, 5, 3, 4, 6}) {
			t.Errorf("Cat(-1) failed: got %v", result.AsFloat32())
		}
	})

	t.Run("ThreeTensors", func(t *testing.T) {
		a := rawFloat32(t, tensor.Shape{1, 2}, []float32{1, 2})
		b := rawFloat32(t, tensor.Shape{1, 2}, []float32{3, 4})
		c := rawFloat32(t, tensor.Shape{1, 2}, []float32{5, 6})

		result := backend.Cat([]*tensor.RawTensor{a, b, c}, 0)

		if !result.Shape().Equal(tensor.Shape{3, 2}) {
			t.Fatalf("Expected shape [3, 2], got %v", result.Shape())
		}
		if !float32SliceEqual(result.AsFloat32(), []float32{1, 2, 3, 4, 5, 6}) {
			t.Errorf("Cat of three tensors failed: got %v", result.AsFloat32())
		}
	})

	t.Run("Uint8", func(t *testing.T) {
		// The image-batch pattern: stacking flattened uint8 rows
		a, _ := tensor.NewRaw(tensor.Shape{1, 4}, tensor.Uint8, tensor.CPU)
		b, _ := tensor.NewRaw(tensor.Shape{1, 4}, tensor.Uint8, tensor.CPU)
		copy(a.AsUint8(), []uint8{0, 64, 128, 255})
		copy(b.AsUint8(), []uint8{10, 20, 30, 40})

		result := backend.Cat([]*tensor.RawTensor{a, b}, 0)

		expected := []uint8{0, 64, 128, 255, 10, 20, 30, 40}
		for i, v := range result.AsUint8() {
			if v != expected[i] {
				t.Errorf("Cat uint8 failed at %d: got %d, expected %d", i, v, expected[i])
			}
		}
	})

	t.Run("Bool", func(t *testing.T) {
		a, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Bool, tensor.CPU)
		b, _ := tensor.NewRaw(tensor.Shape{1}, tensor.Bool, tensor.CPU)
		a.AsBool()[0] = true
		b.AsBool()[0] = true

		result := backend.Cat([]*tensor.RawTensor{a, b}, 0)

		expected := []bool{true, false, true}
		for i, v := range result.AsBool() {
			if v != expected[i] {
				t.Errorf("Cat bool failed at %d: got %v, expected %v", i, v, expected[i])
			}
		}
	})

	t.Run("EmptyInput", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected panic for empty tensor list")
			}
		}()
		backend.Cat(nil, 0)
	})

	t.Run("MismatchedShapes", func(t *testing.T) {
		a := rawFloat32(t, tensor.Shape{2, 2}, []float32{1, 2, 3, 4})
		b := rawFloat32(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})

		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected panic for mismatched non-concat dimensions")
			}
		}()
		backend.Cat([]*tensor.RawTensor{a, b}, 0)
	})

	t.Run("MismatchedDTypes", func(t *testing.T) {
		a := rawFloat32(t, tensor.Shape{2}, []float32{1, 2})
		b, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Int32, tensor.CPU)

		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected panic for mismatched dtypes")
			}
		}()
		backend.Cat([]*tensor.RawTensor{a, b}, 0)
	})
}
