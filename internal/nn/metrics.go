package nn

import (
	"fmt"

	"github.com/seedling-ml/seedling/internal/tensor"
)

// Accuracy returns the fraction of rows in logits whose argmax equals
// the corresponding target class. Logits must be [batch, classes] and
// targets [batch]; the targets hold class indices.
func Accuracy[B tensor.Backend](logits *tensor.Tensor[float32, B], targets *tensor.Tensor[int32, B]) float32 {
	shape := logits.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("nn.Accuracy: logits must be 2-D [batch, classes], got shape %v", shape))
	}
	batchSize, numClasses := shape[0], shape[1]
	if targets.NumElements() != batchSize {
		panic(fmt.Sprintf("nn.Accuracy: %d targets for batch of %d", targets.NumElements(), batchSize))
	}
	if batchSize == 0 {
		return 0
	}

	logitsData := logits.Data()
	targetsData := targets.Data()

	correct := 0
	for i := 0; i < batchSize; i++ {
		row := logitsData[i*numClasses : (i+1)*numClasses]
		if Argmax(row) == int(targetsData[i]) {
			correct++
		}
	}
	return float32(correct) / float32(batchSize)
}

// Argmax returns the index of the largest value. Ties resolve to the
// earliest index. It panics on an empty slice.
func Argmax(values []float32) int {
	if len(values) == 0 {
		panic("nn.Argmax: empty slice")
	}
	maxIdx := 0
	maxVal := values[0]
	for i, v := range values[1:] {
		if v > maxVal {
			maxVal = v
			maxIdx = i + 1
		}
	}
	return maxIdx
}
