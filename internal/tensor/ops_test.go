package tensor

import (
	"fmt"
	"math"
	"testing"
)

// Division Tests

func TestTensorDiv(t *testing.T) {
	backend := NewMockBackend()
	a, _ := FromSlice([]float32{10, 20, 30, 40}, Shape{2, 2}, backend)
	b, _ := FromSlice([]float32{2, 4, 5, 8}, Shape{2, 2}, backend)

	c := a.Div(b)

	expected := []float32{5, 5, 6, 5}
	got := c.Data()

	for i := range expected {
		assertEqualFloat32(t, expected[i], got[i], fmt.Sprintf("Div[%d]", i))
	}
}

// Scalar Operations Tests

func TestTensorMulScalar(t *testing.T) {
	backend := NewMockBackend()
	tensor, _ := FromSlice([]float32{1, 2, 3, 4}, Shape{2, 2}, backend)

	result := tensor.MulScalar(2.5)

	expected := []float32{2.5, 5, 7.5, 10}
	got := result.Data()
	for i := range expected {
		assertEqualFloat32(t, expected[i], got[i], fmt.Sprintf("MulScalar[%d]", i))
	}
}

func TestTensorAddScalar(t *testing.T) {
	backend := NewMockBackend()
	tensor, _ := FromSlice([]float32{1, 2, 3, 4}, Shape{2, 2}, backend)

	result := tensor.AddScalar(10)

	expected := []float32{11, 12, 13, 14}
	got := result.Data()
	for i := range expected {
		assertEqualFloat32(t, expected[i], got[i], fmt.Sprintf("AddScalar[%d]", i))
	}
}

func TestTensorSubScalar(t *testing.T) {
	backend := NewMockBackend()
	tensor, _ := FromSlice([]float32{10, 20, 30, 40}, Shape{2, 2}, backend)

	result := tensor.SubScalar(5)

	expected := []float32{5, 15, 25, 35}
	got := result.Data()
	for i := range expected {
		assertEqualFloat32(t, expected[i], got[i], fmt.Sprintf("SubScalar[%d]", i))
	}
}

func TestTensorDivScalar(t *testing.T) {
	backend := NewMockBackend()
	tensor, _ := FromSlice([]float32{10, 20, 30, 40}, Shape{2, 2}, backend)

	result := tensor.DivScalar(10)

	expected := []float32{1, 2, 3, 4}
	got := result.Data()
	for i := range expected {
		assertEqualFloat32(t, expected[i], got[i], fmt.Sprintf("DivScalar[%d]", i))
	}
}

// Mathematical Functions Tests

func TestTensorExp(t *testing.T) {
	backend := NewMockBackend()
	tensor, _ := FromSlice([]float32{0, 1, 2}, Shape{3}, backend)

	result := tensor.Exp()

	expected := []float32{1, 2.718281828, 7.389056099}
	got := result.Data()
	for i := range expected {
		if math.Abs(float64(got[i]-expected[i])) > 1e-5 {
			t.Errorf("Exp[%d] = %v, want %v", i, got[i], expected[i])
		}
	}
}

func TestTensorLog(t *testing.T) {
	backend := NewMockBackend()
	tensor, _ := FromSlice([]float32{1, 2.718281828, 7.389056099}, Shape{3}, backend)

	result := tensor.Log()

	expected := []float32{0, 1, 2}
	got := result.Data()
	for i := range expected {
		if math.Abs(float64(got[i]-expected[i])) > 1e-5 {
			t.Errorf("Log[%d] = %v, want %v", i, got[i], expected[i])
		}
	}
}

func TestTensorSqrt(t *testing.T) {
	backend := NewMockBackend()
	tensor, _ := FromSlice([]float32{1, 4, 9, 16}, Shape{4}, backend)

	result := tensor.Sqrt()

	expected := []float32{1, 2, 3, 4}
	got := result.Data()
	for i := range expected {
		assertEqualFloat32(t, expected[i], got[i], fmt.Sprintf("Sqrt[%d]", i))
	}
}

// Softmax Tests

func TestTensorSoftmax(t *testing.T) {
	backend := NewMockBackend()
	// [[1, 2, 3],
	//  [4, 5, 6]]
	tensor, _ := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, backend)

	// Softmax along dim 1 (across columns)
	result := tensor.Softmax(1)

	assertEqualShape(t, Shape{2, 3}, result.Shape(), "Softmax shape")

	// Check that each row sums to 1
	for i := 0; i < 2; i++ {
		sum := float32(0)
		for j := 0; j < 3; j++ {
			val := result.At(i, j)
			if val < 0 || val > 1 {
				t.Errorf("Softmax[%d,%d] = %v, should be in [0, 1]", i, j, val)
			}
			sum += val
		}
		if math.Abs(float64(sum-1)) > 1e-5 {
			t.Errorf("Softmax row %d sum = %v, want 1", i, sum)
		}
	}

	// Values should increase within each row (since input is increasing)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if result.At(i, j) >= result.At(i, j+1) {
				t.Errorf("Softmax[%d,%d] = %v should be less than Softmax[%d,%d] = %v",
					i, j, result.At(i, j), i, j+1, result.At(i, j+1))
			}
		}
	}

	// Both rows have the same relative offsets, so probabilities should match
	for j := 0; j < 3; j++ {
		if math.Abs(float64(result.At(0, j)-result.At(1, j))) > 1e-5 {
			t.Errorf("Softmax rows differ at col %d: %v vs %v", j, result.At(0, j), result.At(1, j))
		}
	}
}

func TestTensorSoftmaxNegativeDim(t *testing.T) {
	backend := NewMockBackend()
	tensor, _ := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, backend)

	a := tensor.Softmax(-1)
	b := tensor.Softmax(1)

	aData := a.Data()
	bData := b.Data()
	for i := range aData {
		assertEqualFloat32(t, bData[i], aData[i], fmt.Sprintf("Softmax(-1)[%d]", i))
	}
}

func TestTensorSoftmaxLargeValues(t *testing.T) {
	backend := NewMockBackend()
	// Without max subtraction, exp(1000) would overflow
	tensor, _ := FromSlice([]float32{1000, 1001, 1002}, Shape{1, 3}, backend)

	result := tensor.Softmax(1)

	sum := float32(0)
	for j := 0; j < 3; j++ {
		val := result.At(0, j)
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			t.Fatalf("Softmax[0,%d] = %v, numerical stability failure", j, val)
		}
		sum += val
	}
	if math.Abs(float64(sum-1)) > 1e-5 {
		t.Errorf("Softmax sum = %v, want 1", sum)
	}
}

// Reduction Tests

func TestTensorSum(t *testing.T) {
	backend := NewMockBackend()
	tensor, _ := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, backend)

	result := tensor.Sum()

	assertEqualShape(t, Shape{}, result.Shape(), "Sum shape")

	// Sum of all elements: 1+2+3+4+5+6 = 21
	if result.Item() != 21 {
		t.Errorf("Sum() = %v, want 21", result.Item())
	}
}

func TestTensorSumDim(t *testing.T) {
	backend := NewMockBackend()
	// [[1, 2, 3],
	//  [4, 5, 6]]
	tensor, _ := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, backend)

	// Sum along dim 0 (reduce rows)
	sum0 := tensor.SumDim(0, false)
	assertEqualShape(t, Shape{3}, sum0.Shape(), "SumDim(0) shape")
	expected0 := []float32{5, 7, 9} // [1+4, 2+5, 3+6]
	for i, exp := range expected0 {
		assertEqualFloat32(t, exp, sum0.At(i), fmt.Sprintf("SumDim(0)[%d]", i))
	}

	// Sum along dim 1 (reduce columns)
	sum1 := tensor.SumDim(1, false)
	assertEqualShape(t, Shape{2}, sum1.Shape(), "SumDim(1) shape")
	expected1 := []float32{6, 15} // [1+2+3, 4+5+6]
	for i, exp := range expected1 {
		assertEqualFloat32(t, exp, sum1.At(i), fmt.Sprintf("SumDim(1)[%d]", i))
	}

	// Sum with keepdim
	sum0Keep := tensor.SumDim(0, true)
	assertEqualShape(t, Shape{1, 3}, sum0Keep.Shape(), "SumDim(0, keepdim) shape")
}

func TestTensorMeanDim(t *testing.T) {
	backend := NewMockBackend()
	// [[2, 4, 6],
	//  [8, 10, 12]]
	tensor, _ := FromSlice([]float32{2, 4, 6, 8, 10, 12}, Shape{2, 3}, backend)

	// Mean along dim 0
	mean0 := tensor.MeanDim(0, false)
	assertEqualShape(t, Shape{3}, mean0.Shape(), "MeanDim(0) shape")
	expected0 := []float32{5, 7, 9} // [(2+8)/2, (4+10)/2, (6+12)/2]
	for i, exp := range expected0 {
		assertEqualFloat32(t, exp, mean0.At(i), fmt.Sprintf("MeanDim(0)[%d]", i))
	}

	// Mean along dim 1
	mean1 := tensor.MeanDim(1, false)
	assertEqualShape(t, Shape{2}, mean1.Shape(), "MeanDim(1) shape")
	expected1 := []float32{4, 10} // [(2+4+6)/3, (8+10+12)/3]
	for i, exp := range expected1 {
		assertEqualFloat32(t, exp, mean1.At(i), fmt.Sprintf("MeanDim(1)[%d]", i))
	}
}

func TestTensorArgmax(t *testing.T) {
	backend := NewMockBackend()
	// [[1, 5, 3],
	//  [9, 2, 7]]
	tensor, _ := FromSlice([]float32{1, 5, 3, 9, 2, 7}, Shape{2, 3}, backend)

	// Argmax along dim 0 (across rows)
	result0 := tensor.Argmax(0)
	assertEqualShape(t, Shape{3}, result0.Shape(), "Argmax(0) shape")
	expected0 := []int32{1, 0, 1}
	for i, exp := range expected0 {
		if result0.At(i) != exp {
			t.Errorf("Argmax(0)[%d] = %v, want %v", i, result0.At(i), exp)
		}
	}

	// Argmax along dim 1 (across columns)
	result1 := tensor.Argmax(1)
	assertEqualShape(t, Shape{2}, result1.Shape(), "Argmax(1) shape")
	expected1 := []int32{1, 0}
	for i, exp := range expected1 {
		if result1.At(i) != exp {
			t.Errorf("Argmax(1)[%d] = %v, want %v", i, result1.At(i), exp)
		}
	}

	if result1.DType() != Int32 {
		t.Errorf("Argmax result dtype = %v, want Int32", result1.DType())
	}
}

func TestTensorArgmaxNegativeDim(t *testing.T) {
	backend := NewMockBackend()
	tensor, _ := FromSlice([]float32{1, 5, 3, 9, 2, 7}, Shape{2, 3}, backend)

	a := tensor.Argmax(-1)
	b := tensor.Argmax(1)

	aData := a.Data()
	bData := b.Data()
	for i := range aData {
		if aData[i] != bData[i] {
			t.Errorf("Argmax(-1)[%d] = %v, want %v", i, aData[i], bData[i])
		}
	}
}

// Type Conversion Tests

func TestTensorInt32(t *testing.T) {
	backend := NewMockBackend()
	tensor, _ := FromSlice([]float32{1.7, 2.3, 3.9}, Shape{3}, backend)

	result := tensor.Int32()

	expected := []int32{1, 2, 3}
	got := result.Data()
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Int32[%d] = %v, want %v", i, got[i], expected[i])
		}
	}
}

func TestTensorFloat32(t *testing.T) {
	backend := NewMockBackend()
	tensor, _ := FromSlice([]int32{1, 2, 3}, Shape{3}, backend)

	result := tensor.Float32()

	expected := []float32{1, 2, 3}
	got := result.Data()
	for i := range expected {
		assertEqualFloat32(t, expected[i], got[i], fmt.Sprintf("Float32[%d]", i))
	}
}

func TestTensorFloat32FromUint8(t *testing.T) {
	backend := NewMockBackend()
	tensor, _ := FromSlice([]uint8{0, 128, 255}, Shape{3}, backend)

	result := tensor.Float32()

	expected := []float32{0, 128, 255}
	got := result.Data()
	for i := range expected {
		assertEqualFloat32(t, expected[i], got[i], fmt.Sprintf("Float32FromUint8[%d]", i))
	}
}

func TestTensorFloat64(t *testing.T) {
	backend := NewMockBackend()
	tensor, _ := FromSlice([]float32{1.5, 2.5, 3.5}, Shape{3}, backend)

	result := tensor.Float64()

	expected := []float64{1.5, 2.5, 3.5}
	got := result.Data()
	for i := range expected {
		if math.Abs(got[i]-expected[i]) > 1e-6 {
			t.Errorf("Float64[%d] = %v, want %v", i, got[i], expected[i])
		}
	}
}

func TestTensorInt64(t *testing.T) {
	backend := NewMockBackend()
	tensor, _ := FromSlice([]float32{1.7, 2.3, 3.9}, Shape{3}, backend)

	result := tensor.Int64()

	expected := []int64{1, 2, 3}
	got := result.Data()
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Int64[%d] = %v, want %v", i, got[i], expected[i])
		}
	}
}
