// Package config holds the generator settings. Every field has a default,
// so the command runs without any config file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/chazu/thermalmesh/pkg/thermal"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"gopkg.in/yaml.v3"
)

// FilePath is the optional config file, relative to the working directory.
const FilePath = "thermalmesh.yaml"

// DefaultOutput is where the mock viewer data lives, relative to the
// working directory.
const DefaultOutput = "apps/web/public/mock/storage/热控系统温度场.vtp"

// DefaultFieldName names the exported point-data array.
const DefaultFieldName = "Temperature"

// Config holds the output location and the thermal model parameters.
type Config struct {
	Output         string     `yaml:"output"`
	FieldName      string     `yaml:"field_name"`
	Sun            [3]float64 `yaml:"sun"`
	MinTemp        float64    `yaml:"min_temp"`
	MaxTemp        float64    `yaml:"max_temp"`
	PanelThreshold float64    `yaml:"panel_threshold"`
	PanelBias      float64    `yaml:"panel_bias"`
}

// Default returns the settings that produce the reference output.
func Default() Config {
	sun := thermal.DefaultSun
	return Config{
		Output:         DefaultOutput,
		FieldName:      DefaultFieldName,
		Sun:            [3]float64{sun.X, sun.Y, sun.Z},
		MinTemp:        thermal.DefaultMinTemp,
		MaxTemp:        thermal.DefaultMaxTemp,
		PanelThreshold: thermal.DefaultPanelThreshold,
		PanelBias:      thermal.DefaultPanelBias,
	}
}

// Load reads settings from path. A missing file yields Default(); keys
// absent from the file keep their default values.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Validate rejects settings the thermal model cannot use.
func (c Config) Validate() error {
	if c.Output == "" {
		return errors.New("output path is empty")
	}
	if c.FieldName == "" {
		return errors.New("field_name is empty")
	}
	if c.Sun == [3]float64{} {
		return errors.New("sun direction is zero")
	}
	if c.MaxTemp <= c.MinTemp {
		return fmt.Errorf("max_temp %.2f must exceed min_temp %.2f", c.MaxTemp, c.MinTemp)
	}
	return nil
}

// Model builds the thermal model described by c.
func (c Config) Model() thermal.Model {
	m := thermal.NewModel(v3.Vec{X: c.Sun[0], Y: c.Sun[1], Z: c.Sun[2]})
	m.MinTemp = c.MinTemp
	m.MaxTemp = c.MaxTemp
	m.PanelThreshold = c.PanelThreshold
	m.PanelBias = c.PanelBias
	return m
}
