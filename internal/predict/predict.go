// Package predict scores serialized feature vectors with a trained
// oxidation-state classifier. It is the downstream consumer the featurizer
// exists for: features in, oxidation state plus confidence out.
package predict

import (
	"fmt"
	"math"
)

// Prediction is the classifier output for one site's feature vector.
type Prediction struct {
	State         int     // predicted oxidation state
	Confidence    float64 // softmax probability of the predicted class
	Probabilities []float64
}

// Option configures a Predictor.
type Option func(*Predictor)

// WithStates maps class indices to oxidation states. The default is
// 1..numClasses.
func WithStates(states []int) Option {
	return func(p *Predictor) { p.states = states }
}

// Predictor runs oxidation-state inference over an ONNX classifier.
type Predictor struct {
	sess   *onnxSession
	states []int
}

// New loads the ONNX model. runtimePath may be empty; see newONNXSession.
func New(modelPath, runtimePath string, opts ...Option) (*Predictor, error) {
	sess, err := newONNXSession(modelPath, runtimePath)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	p := &Predictor{sess: sess}
	for _, opt := range opts {
		opt(p)
	}
	if p.states == nil {
		p.states = make([]int, sess.numClasses)
		for i := range p.states {
			p.states[i] = i + 1
		}
	}
	if int64(len(p.states)) != sess.numClasses {
		sess.close()
		return nil, fmt.Errorf("predict: %d states for %d model classes", len(p.states), sess.numClasses)
	}
	return p, nil
}

// FeatureDim returns the feature-vector length the model expects.
func (p *Predictor) FeatureDim() int {
	return int(p.sess.featureDim)
}

// Predict classifies a single feature vector.
func (p *Predictor) Predict(feature []float64) (Prediction, error) {
	preds, err := p.PredictBatch([][]float64{feature})
	if err != nil {
		return Prediction{}, err
	}
	return preds[0], nil
}

// PredictBatch classifies multiple feature vectors in one inference call.
func (p *Predictor) PredictBatch(features [][]float64) ([]Prediction, error) {
	if len(features) == 0 {
		return nil, nil
	}
	dim := int(p.sess.featureDim)
	flat := make([]float32, 0, len(features)*dim)
	for i, f := range features {
		if len(f) != dim {
			return nil, fmt.Errorf("predict: vector %d has %d components, model expects %d", i, len(f), dim)
		}
		for _, v := range f {
			flat = append(flat, float32(v))
		}
	}

	logits, err := p.sess.infer(flat, int64(len(features)))
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}

	n := int(p.sess.numClasses)
	preds := make([]Prediction, len(features))
	for i := range features {
		row := logits[i*n : (i+1)*n]
		probs := softmax(row)
		best := argmax(probs)
		preds[i] = Prediction{
			State:         p.states[best],
			Confidence:    probs[best],
			Probabilities: probs,
		}
	}
	return preds, nil
}

// Close releases ONNX Runtime resources.
func (p *Predictor) Close() error {
	if p.sess != nil {
		return p.sess.close()
	}
	return nil
}

// softmax converts logits to probabilities, shifted by the max for
// numerical stability.
func softmax(logits []float32) []float64 {
	if len(logits) == 0 {
		return nil
	}
	max := float64(logits[0])
	for _, v := range logits[1:] {
		if float64(v) > max {
			max = float64(v)
		}
	}
	probs := make([]float64, len(logits))
	var sum float64
	for i, v := range logits {
		probs[i] = math.Exp(float64(v) - max)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

// argmax returns the index of the largest value.
func argmax(v []float64) int {
	best := 0
	for i, x := range v {
		if x > v[best] {
			best = i
		}
	}
	return best
}
