package linclass

import (
	"fmt"
	"math"
)

// A Loss measures the error of a raw prediction against
// an expected target of +1 or -1.
//
// Deriv returns the derivative of the loss with respect
// to the prediction.
// It is 0 when the example is already classified
// correctly beyond the margin the loss cares about, in
// which case no weight update takes place.
type Loss interface {
	Loss(prediction, expected float64) float64
	Deriv(prediction, expected float64) float64
}

// ByName returns the Loss for a name such as "hinge" or
// "logistic".
func ByName(name string) (Loss, error) {
	switch name {
	case "hinge":
		return Hinge{}, nil
	case "perceptron":
		return Perceptron{}, nil
	case "least-squares":
		return LeastSquares{}, nil
	case "logistic":
		return Logistic{}, nil
	case "smooth-hinge":
		return SmoothHinge{}, nil
	case "squared-hinge":
		return SquaredHinge{}, nil
	case "modified-huber":
		return ModifiedHuber{}, nil
	case "huber":
		return Huber{Delta: 1}, nil
	}
	return nil, fmt.Errorf("unknown loss function: %s", name)
}

// Hinge is the SVM hinge loss, max(0, 1-p*y).
type Hinge struct{}

// Loss returns the hinge loss.
func (h Hinge) Loss(prediction, expected float64) float64 {
	z := prediction * expected
	if z < 1 {
		return 1 - z
	}
	return 0
}

// Deriv returns the derivative of the hinge loss with
// respect to the prediction.
func (h Hinge) Deriv(prediction, expected float64) float64 {
	if prediction*expected < 1 {
		return -expected
	}
	return 0
}

// Perceptron is the perceptron loss, max(0, -p*y).
// It penalizes misclassifications only, with no margin.
type Perceptron struct{}

// Loss returns the perceptron loss.
func (p Perceptron) Loss(prediction, expected float64) float64 {
	z := prediction * expected
	if z < 0 {
		return -z
	}
	return 0
}

// Deriv returns the derivative of the perceptron loss
// with respect to the prediction.
func (p Perceptron) Deriv(prediction, expected float64) float64 {
	if prediction*expected <= 0 {
		return -expected
	}
	return 0
}

// LeastSquares is the squared error loss, (p-y)^2/2.
type LeastSquares struct{}

// Loss returns the squared error loss.
func (l LeastSquares) Loss(prediction, expected float64) float64 {
	diff := prediction - expected
	return 0.5 * diff * diff
}

// Deriv returns the derivative of the squared error loss
// with respect to the prediction.
func (l LeastSquares) Deriv(prediction, expected float64) float64 {
	return prediction - expected
}

// Logistic is the logistic loss, log(1+exp(-p*y)).
type Logistic struct{}

// Loss returns the logistic loss.
func (l Logistic) Loss(prediction, expected float64) float64 {
	return math.Log(1 + math.Exp(-prediction*expected))
}

// Deriv returns the derivative of the logistic loss with
// respect to the prediction.
func (l Logistic) Deriv(prediction, expected float64) float64 {
	return -expected / (math.Exp(prediction*expected) + 1)
}

// SmoothHinge is a smoothed hinge loss: quadratic for
// margins in (0, 1), linear for negative margins.
type SmoothHinge struct{}

// Loss returns the smooth hinge loss.
func (s SmoothHinge) Loss(prediction, expected float64) float64 {
	z := prediction * expected
	if z >= 1 {
		return 0
	}
	if z <= 0 {
		return 0.5 - z
	}
	return 0.5 * (1 - z) * (1 - z)
}

// Deriv returns the derivative of the smooth hinge loss
// with respect to the prediction.
func (s SmoothHinge) Deriv(prediction, expected float64) float64 {
	z := prediction * expected
	if z >= 1 {
		return 0
	}
	if z <= 0 {
		return -expected
	}
	return -expected * (1 - z)
}

// SquaredHinge is the squared hinge loss,
// max(0, 1-p*y)^2/2.
type SquaredHinge struct{}

// Loss returns the squared hinge loss.
func (s SquaredHinge) Loss(prediction, expected float64) float64 {
	z := prediction * expected
	if z < 1 {
		return 0.5 * (1 - z) * (1 - z)
	}
	return 0
}

// Deriv returns the derivative of the squared hinge loss
// with respect to the prediction.
func (s SquaredHinge) Deriv(prediction, expected float64) float64 {
	z := prediction * expected
	if z < 1 {
		return -expected * (1 - z)
	}
	return 0
}

// ModifiedHuber is the modified huber loss: the squared
// hinge max(0, 1-p*y)^2 for margins of at least -1, and
// the linear -4*p*y below that.
type ModifiedHuber struct{}

// Loss returns the modified huber loss.
func (m ModifiedHuber) Loss(prediction, expected float64) float64 {
	z := prediction * expected
	if z < -1 {
		return -4 * z
	}
	if z < 1 {
		return (1 - z) * (1 - z)
	}
	return 0
}

// Deriv returns the derivative of the modified huber
// loss with respect to the prediction.
func (m ModifiedHuber) Deriv(prediction, expected float64) float64 {
	z := prediction * expected
	if z < -1 {
		return -4 * expected
	}
	if z < 1 {
		return -2 * expected * (1 - z)
	}
	return 0
}

// Huber is the huber loss on the residual p-y: quadratic
// for residuals within Delta, linear beyond.
type Huber struct {
	// Delta is the width of the quadratic region.
	Delta float64
}

// Loss returns the huber loss.
func (h Huber) Loss(prediction, expected float64) float64 {
	diff := prediction - expected
	if math.Abs(diff) <= h.Delta {
		return 0.5 * diff * diff
	}
	return h.Delta * (math.Abs(diff) - 0.5*h.Delta)
}

// Deriv returns the derivative of the huber loss with
// respect to the prediction.
func (h Huber) Deriv(prediction, expected float64) float64 {
	diff := prediction - expected
	if math.Abs(diff) <= h.Delta {
		return diff
	}
	if diff > 0 {
		return h.Delta
	}
	return -h.Delta
}
