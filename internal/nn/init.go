package nn

import (
	"math"
	"math/rand"

	"github.com/seedling-ml/seedling/internal/tensor"
)

// Xavier returns a tensor filled with Glorot uniform values drawn from
// [-bound, bound] where bound = sqrt(6 / (fanIn + fanOut)). It keeps
// activation variance roughly constant across layers at initialization.
func Xavier[B tensor.Backend](shape tensor.Shape, fanIn, fanOut int, backend B) *tensor.Tensor[float32, B] {
	t := tensor.Zeros[float32, B](shape, backend)
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	data := t.Data()
	for i := range data {
		data[i] = float32((rand.Float64()*2.0 - 1.0) * bound) //nolint:gosec // G404: weight init does not need crypto randomness
	}
	return t
}
