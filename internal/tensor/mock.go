package tensor

import (
	"fmt"
	"math"
)

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing.
// It implements all operations naively for correctness verification.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// Add performs element-wise addition with broadcasting.
func (m *MockBackend) Add(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (m *MockBackend) Sub(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (m *MockBackend) Mul(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with broadcasting.
func (m *MockBackend) Div(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x / y })
}

// elementWise performs element-wise operations with broadcasting.
func (m *MockBackend) elementWise(a, b *RawTensor, op func(float64, float64) float64) *RawTensor {
	// Broadcast shapes
	outShape, _, err := BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(err)
	}

	// Create output tensor
	result, err := NewRaw(outShape, a.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	// Perform operation (naive implementation)
	numElements := outShape.NumElements()

	// Convert to float64 for generic processing
	aData := m.toFloat64Slice(a)
	bData := m.toFloat64Slice(b)
	resultData := m.toFloat64Slice(result)

	for i := 0; i < numElements; i++ {
		aIdx := m.broadcastIndex(i, outShape, a.Shape())
		bIdx := m.broadcastIndex(i, outShape, b.Shape())

		resultData[i] = op(aData[aIdx], bData[bIdx])
	}

	m.fromFloat64Slice(resultData, result)
	return result
}

// MatMul performs matrix multiplication.
func (m *MockBackend) MatMul(a, b *RawTensor) *RawTensor {
	aShape := a.Shape()
	bShape := b.Shape()

	// Only support 2D for now
	if len(aShape) != 2 || len(bShape) != 2 {
		panic("MatMul only supports 2D tensors in mock backend")
	}

	if aShape[1] != bShape[0] {
		panic(fmt.Sprintf("incompatible shapes for MatMul: %v @ %v", aShape, bShape))
	}

	M, K := aShape[0], aShape[1]
	N := bShape[1]

	outShape := Shape{M, N}
	result, err := NewRaw(outShape, a.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	aData := m.toFloat64Slice(a)
	bData := m.toFloat64Slice(b)
	resultData := m.toFloat64Slice(result)

	// Naive matrix multiplication
	for i := 0; i < M; i++ {
		for j := 0; j < N; j++ {
			sum := 0.0
			for k := 0; k < K; k++ {
				sum += aData[i*K+k] * bData[k*N+j]
			}
			resultData[i*N+j] = sum
		}
	}

	m.fromFloat64Slice(resultData, result)
	return result
}

// Reshape changes tensor shape.
func (m *MockBackend) Reshape(t *RawTensor, newShape Shape) *RawTensor {
	if err := newShape.Validate(); err != nil {
		panic(err)
	}

	if t.NumElements() != newShape.NumElements() {
		panic(fmt.Sprintf("cannot reshape tensor with %d elements to shape %v (%d elements)",
			t.NumElements(), newShape, newShape.NumElements()))
	}

	result, err := NewRaw(newShape, t.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	// Copy data
	copy(result.Data(), t.Data())
	return result
}

// Transpose transposes tensor dimensions.
func (m *MockBackend) Transpose(t *RawTensor, axes ...int) *RawTensor {
	shape := t.Shape()

	// Default: reverse all dimensions
	if len(axes) == 0 {
		axes = make([]int, len(shape))
		for i := range axes {
			axes[i] = len(shape) - 1 - i
		}
	}

	// Validate axes
	if len(axes) != len(shape) {
		panic(fmt.Sprintf("axes length %d doesn't match tensor dimensions %d", len(axes), len(shape)))
	}

	// Compute new shape
	newShape := make(Shape, len(shape))
	for i, axis := range axes {
		if axis < 0 || axis >= len(shape) {
			panic(fmt.Sprintf("axis %d out of bounds for tensor with %d dimensions", axis, len(shape)))
		}
		newShape[i] = shape[axis]
	}

	result, err := NewRaw(newShape, t.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	// Transpose data (naive implementation)
	tData := m.toFloat64Slice(t)
	resultData := m.toFloat64Slice(result)

	oldStrides := shape.ComputeStrides()
	newStrides := newShape.ComputeStrides()

	for i := 0; i < t.NumElements(); i++ {
		// Convert flat index to multi-dimensional indices
		indices := make([]int, len(shape))
		temp := i
		for j := 0; j < len(shape); j++ {
			indices[j] = temp / oldStrides[j]
			temp %= oldStrides[j]
		}

		// Permute indices
		permuted := make([]int, len(indices))
		for j, axis := range axes {
			permuted[j] = indices[axis]
		}

		// Convert permuted indices to flat index
		newIdx := 0
		for j, idx := range permuted {
			newIdx += idx * newStrides[j]
		}

		resultData[newIdx] = tData[i]
	}

	m.fromFloat64Slice(resultData, result)
	return result
}

// MulScalar multiplies every element by a scalar.
func (m *MockBackend) MulScalar(t *RawTensor, scalar any) *RawTensor {
	s := scalarToFloat64(scalar)
	return m.unary(t, func(x float64) float64 { return x * s })
}

// AddScalar adds a scalar to every element.
func (m *MockBackend) AddScalar(t *RawTensor, scalar any) *RawTensor {
	s := scalarToFloat64(scalar)
	return m.unary(t, func(x float64) float64 { return x + s })
}

// SubScalar subtracts a scalar from every element.
func (m *MockBackend) SubScalar(t *RawTensor, scalar any) *RawTensor {
	s := scalarToFloat64(scalar)
	return m.unary(t, func(x float64) float64 { return x - s })
}

// DivScalar divides every element by a scalar.
func (m *MockBackend) DivScalar(t *RawTensor, scalar any) *RawTensor {
	s := scalarToFloat64(scalar)
	return m.unary(t, func(x float64) float64 { return x / s })
}

// Exp computes e^x element-wise.
func (m *MockBackend) Exp(t *RawTensor) *RawTensor {
	return m.unary(t, math.Exp)
}

// Log computes ln(x) element-wise.
func (m *MockBackend) Log(t *RawTensor) *RawTensor {
	return m.unary(t, math.Log)
}

// Sqrt computes the square root element-wise.
func (m *MockBackend) Sqrt(t *RawTensor) *RawTensor {
	return m.unary(t, math.Sqrt)
}

// ReLU computes max(0, x) element-wise.
func (m *MockBackend) ReLU(t *RawTensor) *RawTensor {
	return m.unary(t, func(x float64) float64 { return math.Max(0, x) })
}

// Sigmoid computes 1/(1+e^-x) element-wise.
func (m *MockBackend) Sigmoid(t *RawTensor) *RawTensor {
	return m.unary(t, func(x float64) float64 { return 1.0 / (1.0 + math.Exp(-x)) })
}

// Tanh computes the hyperbolic tangent element-wise.
func (m *MockBackend) Tanh(t *RawTensor) *RawTensor {
	return m.unary(t, math.Tanh)
}

// unary applies op to every element, preserving shape and dtype.
func (m *MockBackend) unary(t *RawTensor, op func(float64) float64) *RawTensor {
	result, err := NewRaw(t.Shape(), t.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	data := m.toFloat64Slice(t)
	resultData := m.toFloat64Slice(result)
	for i, v := range data {
		resultData[i] = op(v)
	}

	m.fromFloat64Slice(resultData, result)
	return result
}

// Softmax computes softmax along the specified dimension.
func (m *MockBackend) Softmax(t *RawTensor, dim int) *RawTensor {
	shape := t.Shape()
	dim = normalizeDim(dim, len(shape))

	result, err := NewRaw(shape, t.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	data := m.toFloat64Slice(t)
	resultData := m.toFloat64Slice(result)

	outer, dimSize, inner := splitDims(shape, dim)
	for o := 0; o < outer; o++ {
		for in := 0; in < inner; in++ {
			base := o*dimSize*inner + in

			// Max subtraction for numerical stability
			maxVal := math.Inf(-1)
			for k := 0; k < dimSize; k++ {
				if v := data[base+k*inner]; v > maxVal {
					maxVal = v
				}
			}

			sum := 0.0
			for k := 0; k < dimSize; k++ {
				e := math.Exp(data[base+k*inner] - maxVal)
				resultData[base+k*inner] = e
				sum += e
			}
			for k := 0; k < dimSize; k++ {
				resultData[base+k*inner] /= sum
			}
		}
	}

	m.fromFloat64Slice(resultData, result)
	return result
}

// Sum reduces all elements to a scalar tensor.
func (m *MockBackend) Sum(t *RawTensor) *RawTensor {
	result, err := NewRaw(Shape{}, t.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	sum := 0.0
	for _, v := range m.toFloat64Slice(t) {
		sum += v
	}

	m.fromFloat64Slice([]float64{sum}, result)
	return result
}

// SumDim sums along the specified dimension.
func (m *MockBackend) SumDim(t *RawTensor, dim int, keepDim bool) *RawTensor {
	return m.reduceDim(t, dim, keepDim, false)
}

// MeanDim averages along the specified dimension.
func (m *MockBackend) MeanDim(t *RawTensor, dim int, keepDim bool) *RawTensor {
	return m.reduceDim(t, dim, keepDim, true)
}

func (m *MockBackend) reduceDim(t *RawTensor, dim int, keepDim, mean bool) *RawTensor {
	shape := t.Shape()
	dim = normalizeDim(dim, len(shape))

	result, err := NewRaw(reducedShape(shape, dim, keepDim), t.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	data := m.toFloat64Slice(t)
	resultData := m.toFloat64Slice(result)

	outer, dimSize, inner := splitDims(shape, dim)
	for o := 0; o < outer; o++ {
		for in := 0; in < inner; in++ {
			sum := 0.0
			for k := 0; k < dimSize; k++ {
				sum += data[o*dimSize*inner+k*inner+in]
			}
			if mean {
				sum /= float64(dimSize)
			}
			resultData[o*inner+in] = sum
		}
	}

	m.fromFloat64Slice(resultData, result)
	return result
}

// Argmax returns int32 indices of the maximum along the specified dimension.
func (m *MockBackend) Argmax(t *RawTensor, dim int) *RawTensor {
	shape := t.Shape()
	dim = normalizeDim(dim, len(shape))

	result, err := NewRaw(reducedShape(shape, dim, false), Int32, m.Device())
	if err != nil {
		panic(err)
	}

	data := m.toFloat64Slice(t)
	resultData := result.AsInt32()

	outer, dimSize, inner := splitDims(shape, dim)
	for o := 0; o < outer; o++ {
		for in := 0; in < inner; in++ {
			maxVal := math.Inf(-1)
			maxIdx := 0
			for k := 0; k < dimSize; k++ {
				if v := data[o*dimSize*inner+k*inner+in]; v > maxVal {
					maxVal = v
					maxIdx = k
				}
			}
			resultData[o*inner+in] = int32(maxIdx) //nolint:gosec // G115: dimension sizes fit in int32
		}
	}

	return result
}

// Cat concatenates tensors along the specified dimension.
func (m *MockBackend) Cat(tensors []*RawTensor, dim int) *RawTensor {
	if len(tensors) == 0 {
		panic("cat: at least one tensor required")
	}

	first := tensors[0]
	dim = normalizeDim(dim, len(first.Shape()))

	outShape := first.Shape().Clone()
	for _, t := range tensors[1:] {
		shape := t.Shape()
		if len(shape) != len(outShape) {
			panic(fmt.Sprintf("cat: rank mismatch %v vs %v", first.Shape(), shape))
		}
		for i := range shape {
			if i == dim {
				continue
			}
			if shape[i] != outShape[i] {
				panic(fmt.Sprintf("cat: shape mismatch %v vs %v at dim %d", first.Shape(), shape, i))
			}
		}
		outShape[dim] += shape[dim]
	}

	result, err := NewRaw(outShape, first.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	resultData := m.toFloat64Slice(result)

	outer, _, inner := splitDims(outShape, dim)
	outDimSize := outShape[dim]
	offset := 0
	for _, t := range tensors {
		data := m.toFloat64Slice(t)
		dimSize := t.Shape()[dim]
		for o := 0; o < outer; o++ {
			for k := 0; k < dimSize; k++ {
				for in := 0; in < inner; in++ {
					resultData[o*outDimSize*inner+(offset+k)*inner+in] = data[o*dimSize*inner+k*inner+in]
				}
			}
		}
		offset += dimSize
	}

	m.fromFloat64Slice(resultData, result)
	return result
}

// Cast converts the tensor to a different dtype.
func (m *MockBackend) Cast(t *RawTensor, dtype DataType) *RawTensor {
	result, err := NewRaw(t.Shape(), dtype, m.Device())
	if err != nil {
		panic(err)
	}

	m.fromFloat64Slice(m.toFloat64Slice(t), result)
	return result
}

// Helper functions

func (m *MockBackend) toFloat64Slice(t *RawTensor) []float64 {
	switch t.DType() {
	case Float32:
		src := t.AsFloat32()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	case Float64:
		return t.AsFloat64()
	case Int32:
		src := t.AsInt32()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	case Int64:
		src := t.AsInt64()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	case Uint8:
		src := t.AsUint8()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	default:
		panic(fmt.Sprintf("unsupported dtype: %s", t.DType()))
	}
}

func (m *MockBackend) fromFloat64Slice(src []float64, t *RawTensor) {
	switch t.DType() {
	case Float32:
		dst := t.AsFloat32()
		for i, v := range src {
			dst[i] = float32(v)
		}
	case Float64:
		copy(t.AsFloat64(), src)
	case Int32:
		dst := t.AsInt32()
		for i, v := range src {
			dst[i] = int32(v)
		}
	case Int64:
		dst := t.AsInt64()
		for i, v := range src {
			dst[i] = int64(v)
		}
	case Uint8:
		dst := t.AsUint8()
		for i, v := range src {
			dst[i] = uint8(v)
		}
	}
}

func (m *MockBackend) broadcastIndex(flatIdx int, outShape, inShape Shape) int {
	// Convert flat index to multi-dimensional indices in output shape
	outStrides := outShape.ComputeStrides()
	indices := make([]int, len(outShape))

	temp := flatIdx
	for i := 0; i < len(outShape); i++ {
		indices[i] = temp / outStrides[i]
		temp %= outStrides[i]
	}

	// Map to input shape (accounting for broadcasting)
	inStrides := inShape.ComputeStrides()
	inIdx := 0

	offset := len(outShape) - len(inShape)
	for i := 0; i < len(inShape); i++ {
		outDimIdx := indices[offset+i]
		inDim := inShape[i]

		// If input dimension is 1, always use index 0 (broadcasting)
		if inDim == 1 {
			outDimIdx = 0
		}

		inIdx += outDimIdx * inStrides[i]
	}

	return inIdx
}

// scalarToFloat64 converts a scalar of any supported numeric type to float64.
func scalarToFloat64(scalar any) float64 {
	switch s := scalar.(type) {
	case float32:
		return float64(s)
	case float64:
		return s
	case int:
		return float64(s)
	case int32:
		return float64(s)
	case int64:
		return float64(s)
	case uint8:
		return float64(s)
	default:
		panic(fmt.Sprintf("unsupported scalar type: %T", scalar))
	}
}

// normalizeDim resolves negative dimension indices and bounds-checks the result.
func normalizeDim(dim, ndim int) int {
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("dimension %d out of range for %d-dimensional tensor", dim, ndim))
	}
	return dim
}

// splitDims decomposes a shape around dim into outer, dim size, and inner
// element counts for row-major iteration.
func splitDims(shape Shape, dim int) (outer, dimSize, inner int) {
	outer, dimSize, inner = 1, shape[dim], 1
	for i := 0; i < dim; i++ {
		outer *= shape[i]
	}
	for i := dim + 1; i < len(shape); i++ {
		inner *= shape[i]
	}
	return outer, dimSize, inner
}

// reducedShape returns the output shape after reducing dim.
func reducedShape(shape Shape, dim int, keepDim bool) Shape {
	if keepDim {
		out := shape.Clone()
		out[dim] = 1
		return out
	}
	out := make(Shape, 0, len(shape)-1)
	for i, s := range shape {
		if i != dim {
			out = append(out, s)
		}
	}
	return out
}
