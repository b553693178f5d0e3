package common

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"vincit.fi/image-transformer/api/apitype"
	"vincit.fi/image-transformer/common/logger"
)

const (
	EnvLogLevel = "IMAGE_TRANSFORMER_LOG_LEVEL"
	EnvWorkers  = "IMAGE_TRANSFORMER_WORKERS"
	EnvJournal  = "IMAGE_TRANSFORMER_JOURNAL"

	defaultEventQueueSize = 1000
)

// Params is the runtime configuration. Values are layered: defaults, then
// the environment (and a .env file), then the preset file, then command
// line flags.
type Params struct {
	LogLevel       string
	Workers        int
	EventQueueSize int
	JournalPath    string
	PresetPath     string
	Preset         Preset
}

// Preset describes a transformation. Every value is a string and goes
// through the same parsing as values typed by the user, so an unknown
// value falls back to its default instead of failing.
type Preset struct {
	Format  string       `yaml:"format"`
	Quality string       `yaml:"quality"`
	Speed   string       `yaml:"speed"`
	Rotate  string       `yaml:"rotate"`
	Resize  ResizePreset `yaml:"resize"`
	Sort    SortPreset   `yaml:"sort"`
	Name    NamePreset   `yaml:"name"`
}

type ResizePreset struct {
	Type   string `yaml:"type"`
	Method string `yaml:"method"`
	Width  string `yaml:"width"`
	Height string `yaml:"height"`
}

type SortPreset struct {
	Field      string `yaml:"field"`
	Descending bool   `yaml:"descending"`
}

type NamePreset struct {
	Prefix string `yaml:"prefix"`
	Suffix string `yaml:"suffix"`
}

// NewParams returns the defaults. Zero workers means one less than the
// number of CPUs.
func NewParams() *Params {
	return &Params{
		LogLevel:       "INFO",
		Workers:        0,
		EventQueueSize: defaultEventQueueSize,
	}
}

// LoadEnv loads .env from the working directory if there is one and reads
// the IMAGE_TRANSFORMER_* variables.
func (s *Params) LoadEnv() {
	// A missing .env is fine
	_ = godotenv.Load()

	if value := os.Getenv(EnvLogLevel); value != "" {
		s.LogLevel = value
	}
	if value := os.Getenv(EnvWorkers); value != "" {
		if workers, err := strconv.Atoi(value); err != nil {
			logger.Warn.Printf("Invalid %s '%s': %s", EnvWorkers, value, err)
		} else {
			s.Workers = workers
		}
	}
	if value := os.Getenv(EnvJournal); value != "" {
		s.JournalPath = value
	}
}

// LoadPresetFile replaces the preset with the contents of path.
func (s *Params) LoadPresetFile(path string) error {
	preset, err := LoadPreset(path)
	if err != nil {
		return err
	}
	s.PresetPath = path
	s.Preset = *preset
	return nil
}

func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}

	var preset Preset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("failed to parse preset: %w", err)
	}
	logger.Debug.Printf("Loaded preset %s: %+v", path, preset)
	return &preset, nil
}

func (s Preset) TransformConfig() apitype.TransformConfig {
	config := apitype.NewTransformConfig()
	config.Format.Format = apitype.ParseFormat(s.Format)
	config.Format.Quality = apitype.ParseQuality(s.Quality)
	config.Format.Speed = apitype.ParseSpeed(s.Speed)
	config.Rotate.Angle = apitype.ParseAngle(s.Rotate)
	config.Resize = apitype.ResizeSpec{
		Type:   apitype.ParseResizeType(s.Resize.Type),
		Method: apitype.ParseResizeMethod(s.Resize.Method),
		Width:  apitype.ParseDimension(s.Resize.Width),
		Height: apitype.ParseDimension(s.Resize.Height),
	}
	config.NamePrefix = s.Name.Prefix
	config.NameSuffix = s.Name.Suffix
	return config
}

func (s Preset) SortSpec() apitype.SortSpec {
	spec := apitype.SortSpec{
		Field: apitype.ParseSortField(s.Sort.Field),
		Order: apitype.Ascending,
	}
	if s.Sort.Descending {
		spec.Order = apitype.Descending
	}
	return spec
}
