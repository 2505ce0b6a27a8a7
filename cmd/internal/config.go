package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"git.sr.ht/~flobar/perceptron/pkg/perceptron/ml"
	"github.com/BurntSushi/toml"
)

// Config defines the command's configuration.
type Config struct {
	InitWeight   float64 `json:"initWeight"`
	Threshold    float64 `json:"threshold"`
	LearningRate float64 `json:"learningRate"`
	MaxEpochs    int     `json:"maxEpochs"`
	Verbose      bool    `json:"verbose"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LearningRate: 1,
		MaxEpochs:    ml.DefaultMaxEpochs,
	}
}

// UpdateInConfig updates the value in dest with val if the according
// value is not the zero-type for the underlying type.  Dest must be a
// pointer type to either string, int, float64 or bool.  Otherwise the
// function panics.
func UpdateInConfig(dest, val interface{}) {
	switch dest.(type) {
	case *string:
		v := val.(string)
		if val != "" {
			(*dest.(*string)) = v
		}
	case *int:
		v := val.(int)
		if v != 0 {
			(*dest.(*int)) = v
		}
	case *float64:
		v := val.(float64)
		if v != 0 {
			(*dest.(*float64)) = v
		}
	case *bool:
		v := val.(bool)
		if v {
			(*dest.(*bool)) = v
		}
	default:
		panic("bad type")
	}
}

// ReadConfig reads the config from a json or toml file.  If the name
// is empty, the default configuration is returned.  If name has the
// prefix '{' and the suffix '}' the name is interpreted as a json
// string and parsed accordingly.  Values missing in the file keep
// their default.
func ReadConfig(name string) (*Config, error) {
	config := DefaultConfig()
	if name == "" {
		return config, nil
	}
	if strings.HasPrefix(name, "{") && strings.HasSuffix(name, "}") {
		r := strings.NewReader(name)
		if err := json.NewDecoder(r).Decode(config); err != nil {
			return nil, fmt.Errorf("readConfig %s: %v", name, err)
		}
		return config, nil
	}
	is, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("readConfig %s: %v", name, err)
	}
	defer is.Close()
	if strings.HasSuffix(name, ".toml") {
		if _, err := toml.DecodeReader(is, config); err != nil {
			return nil, fmt.Errorf("readConfig %s: %v", name, err)
		}
		return config, nil
	}
	if err := json.NewDecoder(is).Decode(config); err != nil {
		return nil, fmt.Errorf("readConfig %s: %v", name, err)
	}
	return config, nil
}

// NewClassifier creates a new classifier for examples of length k
// using the settings of the configuration.
func (c *Config) NewClassifier(k int) (*ml.LinearClassifier, error) {
	lc, err := ml.NewLinearClassifier(c.InitWeight, k, c.Threshold, c.LearningRate)
	if err != nil {
		return nil, fmt.Errorf("newClassifier: %w", err)
	}
	lc.MaxEpochs = c.MaxEpochs
	return lc, nil
}
