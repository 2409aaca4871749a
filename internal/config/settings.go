// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override, e.g. BEAMS_SCENE_BEAM_COUNT.
const EnvPrefix = "BEAMS"

// Settings holds every tunable of the scene, the window and the enhance service.
type Settings struct {
	Scene     SceneSettings     `mapstructure:"scene" yaml:"scene"`
	Beam      BeamSettings      `mapstructure:"beam" yaml:"beam"`
	Explosion ExplosionSettings `mapstructure:"explosion" yaml:"explosion"`
	Log       LogSettings       `mapstructure:"log" yaml:"log"`
	Server    ServerSettings    `mapstructure:"server" yaml:"server"`
	Model     ModelSettings     `mapstructure:"model" yaml:"model"`
}

type SceneSettings struct {
	Width          int           `mapstructure:"width" yaml:"width"`
	Height         int           `mapstructure:"height" yaml:"height"`
	Seed           int64         `mapstructure:"seed" yaml:"seed"`
	BeamCount      int           `mapstructure:"beam_count" yaml:"beam_count"`
	PollInterval   time.Duration `mapstructure:"poll_interval" yaml:"poll_interval"`
	BoundaryHeight float64       `mapstructure:"boundary_height" yaml:"boundary_height"`
	ShowBoundary   bool          `mapstructure:"show_boundary" yaml:"show_boundary"`
}

type BeamSettings struct {
	MaxOffset   float64       `mapstructure:"max_offset" yaml:"max_offset"`
	StartY      float64       `mapstructure:"start_y" yaml:"start_y"`
	Travel      float64       `mapstructure:"travel" yaml:"travel"`
	MinDuration time.Duration `mapstructure:"min_duration" yaml:"min_duration"`
	MaxDuration time.Duration `mapstructure:"max_duration" yaml:"max_duration"`
	MaxDelay    time.Duration `mapstructure:"max_delay" yaml:"max_delay"`
	RepeatDelay time.Duration `mapstructure:"repeat_delay" yaml:"repeat_delay"`
	Cooldown    time.Duration `mapstructure:"cooldown" yaml:"cooldown"`
}

type ExplosionSettings struct {
	Lifetime            time.Duration `mapstructure:"lifetime" yaml:"lifetime"`
	MinParticleDuration time.Duration `mapstructure:"min_particle_duration" yaml:"min_particle_duration"`
	MaxParticleDuration time.Duration `mapstructure:"max_particle_duration" yaml:"max_particle_duration"`
}

type LogSettings struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Development bool   `mapstructure:"development" yaml:"development"`
}

type ServerSettings struct {
	Addr            string        `mapstructure:"addr" yaml:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

type ModelSettings struct {
	Name        string  `mapstructure:"name" yaml:"name"`
	APIKey      string  `mapstructure:"api_key" yaml:"-"`
	Temperature float32 `mapstructure:"temperature" yaml:"temperature"`
	MaxTokens   int32   `mapstructure:"max_tokens" yaml:"max_tokens"`
	TopP        float32 `mapstructure:"top_p" yaml:"top_p"`
}

// Default returns the settings used when no file or environment override is present.
func Default() Settings {
	v := viper.New()
	setDefaults(v)
	s, err := decode(v)
	if err != nil {
		panic(fmt.Sprintf("config: defaults do not decode: %v", err))
	}
	return *s
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("scene.width", ScreenWidth)
	v.SetDefault("scene.height", ScreenHeight)
	v.SetDefault("scene.seed", 0)
	v.SetDefault("scene.beam_count", BeamCount)
	v.SetDefault("scene.poll_interval", PollInterval)
	v.SetDefault("scene.boundary_height", BoundaryHeight)
	v.SetDefault("scene.show_boundary", false)

	v.SetDefault("beam.max_offset", BeamMaxOffset)
	v.SetDefault("beam.start_y", BeamStartY)
	v.SetDefault("beam.travel", BeamTravel)
	v.SetDefault("beam.min_duration", BeamMinDuration)
	v.SetDefault("beam.max_duration", BeamMaxDuration)
	v.SetDefault("beam.max_delay", BeamMaxDelay)
	v.SetDefault("beam.repeat_delay", time.Duration(BeamRepeatDelay))
	v.SetDefault("beam.cooldown", CooldownDuration)

	v.SetDefault("explosion.lifetime", ExplosionLifetime)
	v.SetDefault("explosion.min_particle_duration", ParticleMinDuration)
	v.SetDefault("explosion.max_particle_duration", ParticleMaxDuration)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("model.name", "gemini-2.5-flash")
	v.SetDefault("model.api_key", "")
	v.SetDefault("model.temperature", 0.3)
	v.SetDefault("model.max_tokens", 2048)
	v.SetDefault("model.top_p", 1.0)
}

// Load reads settings from path, or from beams.yaml in the working directory
// or ./configs when path is empty. A missing default file is not an error.
func Load(path string) (*Settings, *viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("beams")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("model.api_key", EnvPrefix+"_MODEL_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY"); err != nil {
		return nil, nil, fmt.Errorf("error binding api key env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	s, err := decode(v)
	if err != nil {
		return nil, nil, err
	}
	return s, v, nil
}

func decode(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate rejects settings the scene cannot run with.
func (s *Settings) Validate() error {
	var errs []error
	if s.Scene.Width <= 0 || s.Scene.Height <= 0 {
		errs = append(errs, fmt.Errorf("scene size must be positive, got %dx%d", s.Scene.Width, s.Scene.Height))
	}
	if s.Scene.BeamCount < 0 {
		errs = append(errs, fmt.Errorf("scene.beam_count must not be negative, got %d", s.Scene.BeamCount))
	}
	if s.Scene.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("scene.poll_interval must be positive, got %s", s.Scene.PollInterval))
	}
	if s.Beam.MinDuration <= 0 || s.Beam.MaxDuration < s.Beam.MinDuration {
		errs = append(errs, fmt.Errorf("beam duration range [%s, %s) is invalid", s.Beam.MinDuration, s.Beam.MaxDuration))
	}
	if s.Beam.MaxDelay < 0 || s.Beam.RepeatDelay < 0 {
		errs = append(errs, errors.New("beam delays must not be negative"))
	}
	if s.Beam.Cooldown <= 0 {
		errs = append(errs, fmt.Errorf("beam.cooldown must be positive, got %s", s.Beam.Cooldown))
	}
	if s.Explosion.Lifetime <= 0 {
		errs = append(errs, fmt.Errorf("explosion.lifetime must be positive, got %s", s.Explosion.Lifetime))
	}
	if s.Explosion.MinParticleDuration <= 0 || s.Explosion.MaxParticleDuration < s.Explosion.MinParticleDuration {
		errs = append(errs, errors.New("explosion particle duration range is invalid"))
	}
	return errors.Join(errs...)
}

// Encode writes s as YAML. The API key is never written.
func Encode(w io.Writer, s *Settings) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return enc.Close()
}
