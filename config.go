package linclass

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/unixpickle/essentials"
)

// Default hyperparameters for an SGD learner.
const (
	DefaultAlpha   = 0.001
	DefaultGamma   = 1e-6
	DefaultBias    = 1
	DefaultLambda  = 0.0001
	DefaultMaxIter = 50
)

// Config holds the hyperparameters for an SGD learner.
//
// Config is used verbatim: a Lambda of 0 really disables
// regularization and a MaxIter of 0 runs no epochs.
// Use DefaultConfig for sensible defaults.
type Config struct {
	// Alpha is the learning rate.
	Alpha float64 `toml:"alpha"`

	// Gamma is the convergence threshold: training stops
	// early once the total loss of an epoch changes by
	// no more than Gamma from the previous epoch.
	Gamma float64 `toml:"gamma"`

	// Bias is the value of the synthetic always-active
	// bias feature appended to every document.
	Bias float64 `toml:"bias"`

	// Lambda is the L2 regularization strength.
	Lambda float64 `toml:"lambda"`

	// MaxIter caps the number of training epochs.
	MaxIter int `toml:"max-iter"`
}

// DefaultConfig returns the default hyperparameters.
func DefaultConfig() Config {
	return Config{
		Alpha:   DefaultAlpha,
		Gamma:   DefaultGamma,
		Bias:    DefaultBias,
		Lambda:  DefaultLambda,
		MaxIter: DefaultMaxIter,
	}
}

// ConfigFromTOML reads hyperparameters and a loss
// function from TOML data.
//
// Recognized keys are "alpha", "gamma", "bias",
// "lambda", "max-iter" and "loss"; missing keys keep
// their defaults, with hinge as the default loss.
func ConfigFromTOML(data []byte) (Config, Loss, error) {
	parsed := struct {
		Config
		Loss string `toml:"loss"`
	}{Config: DefaultConfig(), Loss: "hinge"}
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return Config{}, nil, essentials.AddCtx("parse config", err)
	}
	loss, err := ByName(parsed.Loss)
	if err != nil {
		return Config{}, nil, essentials.AddCtx("parse config", err)
	}
	return parsed.Config, loss, nil
}
