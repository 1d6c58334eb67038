package linclass

import (
	"errors"
	"fmt"
	"math"

	"github.com/unixpickle/essentials"
	"gonum.org/v1/gonum/floats"
)

// minCoeff is the numerical-stability floor for the lazy
// regularization coefficient.
// When the coefficient shrinks below it, the coefficient
// is folded back into the stored weight vector.
const minCoeff = 1e-9

// SGD learns a binary linear classifier using stochastic
// gradient descent.
//
// The weight vector is stored unscaled next to a scalar
// coefficient; the effective weight of feature i is
// coeff*weights[i].
// L2 regularization shrinks the coefficient once per
// example instead of rewriting the whole weight vector.
//
// An SGD is not safe for concurrent use.
// Parallel training of independent classes should use
// one SGD per class; instances share no state.
type SGD struct {
	src      DocSource
	positive Label
	negative Label
	loss     Loss
	conf     Config

	weights    []float64
	coeff      float64
	biasWeight float64
}

// NewSGD creates an untrained SGD.
//
// Documents labeled positive form the positive class;
// every other label is treated as negative, and Classify
// returns the negative label for them.
//
// It fails if loss or src is nil.
func NewSGD(src DocSource, positive, negative Label, loss Loss, conf Config) (*SGD, error) {
	if src == nil {
		return nil, errors.New("new sgd: nil document source")
	}
	if loss == nil {
		return nil, errors.New("new sgd: nil loss function")
	}
	return &SGD{
		src:      src,
		positive: positive,
		negative: negative,
		loss:     loss,
		conf:     conf,
		coeff:    1,
	}, nil
}

// Train runs SGD over the documents, in the given order,
// for up to conf.MaxIter epochs.
// Training stops early once the total loss of an epoch
// changes by no more than conf.Gamma from the previous
// epoch.
//
// Train does not reset learned state, so calling it
// again continues training.
// The document order is kept stable across epochs;
// callers wanting a different order should shuffle ids
// before calling.
func (s *SGD) Train(docs []DocID) error {
	if len(docs) == 0 {
		return nil
	}
	if s.weights == nil {
		s.weights = make([]float64, s.src.NumFeatures())
	}
	prevLoss := math.Inf(1)
	for iter := 0; iter < s.conf.MaxIter; iter++ {
		var sumLoss float64
		for _, id := range docs {
			doc, err := s.src.GetDocument(id)
			if err != nil {
				return essentials.AddCtx(fmt.Sprintf("train: document %d", id), err)
			}
			expected := -1.0
			if doc.Label == s.positive {
				expected = 1
			}
			pred := s.PredictVector(doc.Features)
			sumLoss += s.loss.Loss(pred, expected)

			// Updates apply to the unscaled weights, so
			// dividing by coeff makes the net effective
			// change alpha*deriv*value.
			if d := s.loss.Deriv(pred, expected); d != 0 {
				for _, f := range doc.Features {
					s.weights[f.ID] -= s.conf.Alpha * d * f.Value / s.coeff
				}
				s.biasWeight -= s.conf.Alpha * d * s.conf.Bias
			}

			// Lazy L2 shrink: one scalar multiply stands
			// in for shrinking every effective weight.
			// The bias weight is never regularized.
			s.coeff *= 1 - s.conf.Alpha*s.conf.Lambda
			if s.coeff < minCoeff {
				s.foldCoeff()
			}
		}
		s.foldCoeff()
		if math.Abs(prevLoss-sumLoss) <= s.conf.Gamma {
			break
		}
		prevLoss = sumLoss
	}
	return nil
}

// Predict returns the raw decision score for a document.
//
// The sign of the score indicates the predicted class
// and the magnitude indicates confidence.
// Multiclass adapters compare these scores across
// several binary learners to pick a winner.
func (s *SGD) Predict(id DocID) (float64, error) {
	doc, err := s.src.GetDocument(id)
	if err != nil {
		return 0, essentials.AddCtx(fmt.Sprintf("predict: document %d", id), err)
	}
	return s.PredictVector(doc.Features), nil
}

// PredictVector returns the raw decision score for a
// sparse feature vector:
//
//	coeff*dot(weights, fv) + biasWeight*bias
//
// Feature ids outside the training vocabulary contribute
// nothing; the dimension of test documents may exceed
// that of training documents.
func (s *SGD) PredictVector(fv FeatureVector) float64 {
	var dot float64
	for _, f := range fv {
		if f.ID < len(s.weights) {
			dot += s.weights[f.ID] * f.Value
		}
	}
	return s.coeff*dot + s.biasWeight*s.conf.Bias
}

// Classify predicts the label for a document.
// Scores of at least 0 map to the positive label.
func (s *SGD) Classify(id DocID) (Label, error) {
	pred, err := s.Predict(id)
	if err != nil {
		return "", err
	}
	if pred >= 0 {
		return s.positive, nil
	}
	return s.negative, nil
}

// Reset discards all learned weights so the SGD may be
// retrained from scratch.
// Hyperparameters and the loss function are kept.
func (s *SGD) Reset() {
	for i := range s.weights {
		s.weights[i] = 0
	}
	s.coeff = 1
	s.biasWeight = 0
}

// foldCoeff folds the scalar coefficient back into the
// stored weight vector.
// Effective weights are unchanged.
func (s *SGD) foldCoeff() {
	floats.Scale(s.coeff, s.weights)
	s.coeff = 1
}
