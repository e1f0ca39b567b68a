package cpu

import (
	"fmt"

	"github.com/seedling-ml/seedling/internal/tensor"
)

// Cast converts the tensor to a different data type. Casting to the same
// dtype returns x unchanged. Narrowing conversions truncate the way Go
// conversions do.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x
	}

	result := cpu.newResult("cast", x.Shape(), dtype)

	// Bool has no Go conversion to or from the numeric types, so it gets
	// dedicated paths.
	switch {
	case x.DType() == tensor.Bool:
		castFromBool(result, x)
	case dtype == tensor.Bool:
		castToBool(result, x)
	default:
		castNumericTensor(result, x)
	}

	return result
}

func castNumericTensor(result, x *tensor.RawTensor) {
	switch x.DType() {
	case tensor.Float32:
		castFromSlice(result, x.AsFloat32())
	case tensor.Float64:
		castFromSlice(result, x.AsFloat64())
	case tensor.Int32:
		castFromSlice(result, x.AsInt32())
	case tensor.Int64:
		castFromSlice(result, x.AsInt64())
	case tensor.Uint8:
		castFromSlice(result, x.AsUint8())
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %v", x.DType()))
	}
}

func castFromSlice[S numeric](result *tensor.RawTensor, src []S) {
	switch result.DType() {
	case tensor.Float32:
		castSlice(result.AsFloat32(), src)
	case tensor.Float64:
		castSlice(result.AsFloat64(), src)
	case tensor.Int32:
		castSlice(result.AsInt32(), src)
	case tensor.Int64:
		castSlice(result.AsInt64(), src)
	case tensor.Uint8:
		castSlice(result.AsUint8(), src)
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %v", result.DType()))
	}
}

func castSlice[D, S numeric](dst []D, src []S) {
	for i, v := range src {
		dst[i] = D(v)
	}
}

// castFromBool maps true to 1 and false to 0.
func castFromBool(result, x *tensor.RawTensor) {
	src := x.AsBool()

	switch result.DType() {
	case tensor.Float32:
		boolToNumeric(result.AsFloat32(), src)
	case tensor.Float64:
		boolToNumeric(result.AsFloat64(), src)
	case tensor.Int32:
		boolToNumeric(result.AsInt32(), src)
	case tensor.Int64:
		boolToNumeric(result.AsInt64(), src)
	case tensor.Uint8:
		boolToNumeric(result.AsUint8(), src)
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %v from bool", result.DType()))
	}
}

func boolToNumeric[D numeric](dst []D, src []bool) {
	for i, v := range src {
		if v {
			dst[i] = 1
		} else {
			dst[i] = 0
		}
	}
}

// castToBool maps nonzero values to true.
func castToBool(result, x *tensor.RawTensor) {
	dst := result.AsBool()

	switch x.DType() {
	case tensor.Float32:
		numericToBool(dst, x.AsFloat32())
	case tensor.Float64:
		numericToBool(dst, x.AsFloat64())
	case tensor.Int32:
		numericToBool(dst, x.AsInt32())
	case tensor.Int64:
		numericToBool(dst, x.AsInt64())
	case tensor.Uint8:
		numericToBool(dst, x.AsUint8())
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %v for bool target", x.DType()))
	}
}

func numericToBool[S numeric](dst []bool, src []S) {
	for i, v := range src {
		dst[i] = v != 0
	}
}
