package linclass

import (
	"math"
	"testing"
)

func TestHinge(t *testing.T) {
	testLoss(t, Hinge{}, []float64{
		0.5, 1.5, -2, 1, 1,
	}, []float64{
		1, 1, -1, -1, 1,
	}, []float64{
		0.5, 0, 0, 2, 0,
	}, []float64{
		-1, 0, 0, 1, 0,
	})
}

func TestPerceptron(t *testing.T) {
	testLoss(t, Perceptron{}, []float64{
		0.5, 0, -2, 3,
	}, []float64{
		1, 1, 1, -1,
	}, []float64{
		0, 0, 2, 3,
	}, []float64{
		0, -1, -1, 1,
	})
}

func TestLeastSquares(t *testing.T) {
	testLoss(t, LeastSquares{}, []float64{
		0.5, 2,
	}, []float64{
		1, -1,
	}, []float64{
		0.125, 4.5,
	}, []float64{
		-0.5, 3,
	})
}

func TestLogistic(t *testing.T) {
	testLoss(t, Logistic{}, []float64{
		0, 2, 1,
	}, []float64{
		1, 1, -1,
	}, []float64{
		0.6931471806, 0.1269280110, 1.3132616875,
	}, []float64{
		-0.5, -0.1192029220, 0.7310585786,
	})
}

func TestSmoothHinge(t *testing.T) {
	testLoss(t, SmoothHinge{}, []float64{
		-0.5, 0.5, 2,
	}, []float64{
		1, 1, 1,
	}, []float64{
		1, 0.125, 0,
	}, []float64{
		-1, -0.5, 0,
	})
}

func TestSquaredHinge(t *testing.T) {
	testLoss(t, SquaredHinge{}, []float64{
		0.5, -1, 2,
	}, []float64{
		1, 1, 1,
	}, []float64{
		0.125, 2, 0,
	}, []float64{
		-0.5, -2, 0,
	})
}

func TestModifiedHuber(t *testing.T) {
	testLoss(t, ModifiedHuber{}, []float64{
		0, -2, 2, 0.5,
	}, []float64{
		1, 1, 1, -1,
	}, []float64{
		1, 8, 0, 2.25,
	}, []float64{
		-2, -4, 0, 3,
	})
}

func TestHuber(t *testing.T) {
	testLoss(t, Huber{Delta: 1}, []float64{
		0.5, 3, -3,
	}, []float64{
		1, 1, 1,
	}, []float64{
		0.125, 1.5, 3.5,
	}, []float64{
		-0.5, 1, -1,
	})
}

func TestByName(t *testing.T) {
	names := []string{"hinge", "perceptron", "least-squares", "logistic",
		"smooth-hinge", "squared-hinge", "modified-huber", "huber"}
	for _, name := range names {
		loss, err := ByName(name)
		if err != nil {
			t.Errorf("loss %s: %s", name, err)
		} else if loss == nil {
			t.Errorf("loss %s: nil result", name)
		}
	}
	if _, err := ByName("0-1"); err == nil {
		t.Error("expected error for unknown loss")
	}
}

func testLoss(t *testing.T, l Loss, preds, expecteds, losses, derivs []float64) {
	for i, pred := range preds {
		loss := l.Loss(pred, expecteds[i])
		if math.IsNaN(loss) || math.Abs(loss-losses[i]) > 1e-8 {
			t.Errorf("case %d: expected loss %f but got %f", i, losses[i], loss)
		}
		deriv := l.Deriv(pred, expecteds[i])
		if math.IsNaN(deriv) || math.Abs(deriv-derivs[i]) > 1e-8 {
			t.Errorf("case %d: expected deriv %f but got %f", i, derivs[i], deriv)
		}
	}
}
