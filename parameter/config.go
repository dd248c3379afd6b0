package parameter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the tunables of one session; zero-valued fields in a file keep their defaults
type Config struct {
	Seed string `yaml:"seed"`

	World struct {
		Width          float64 `yaml:"width"`
		Height         float64 `yaml:"height"`
		BoundThickness float64 `yaml:"bound_thickness"`
	} `yaml:"world"`

	Loop struct {
		FixedStep  time.Duration `yaml:"fixed_step"`
		MaxCatchUp int           `yaml:"max_catch_up"`
		Telemetry  time.Duration `yaml:"telemetry"`
	} `yaml:"loop"`

	Player struct {
		Radius      float64 `yaml:"radius"`
		DragScale   float64 `yaml:"drag_scale"`
		EaseDivisor float64 `yaml:"ease_divisor"`
	} `yaml:"player"`

	Foe struct {
		Count         int           `yaml:"count"`
		Radius        float64       `yaml:"radius"`
		Sides         int           `yaml:"sides"`
		LinearSpeed   float64       `yaml:"linear_speed"`
		AngularSpeed  float64       `yaml:"angular_speed"`
		ShotCooldown  time.Duration `yaml:"shot_cooldown"`
		SightFraction float64       `yaml:"sight_fraction"`
	} `yaml:"foe"`

	Bullet struct {
		Radius      float64       `yaml:"radius"`
		SpeedFactor float64       `yaml:"speed_factor"`
		MaxSpeed    float64       `yaml:"max_speed"`
		Restitution float64       `yaml:"restitution"`
		Lifetime    time.Duration `yaml:"lifetime"`
	} `yaml:"bullet"`

	Collectible struct {
		Count   int     `yaml:"count"`
		Radius  float64 `yaml:"radius"`
		Padding float64 `yaml:"padding"`
		Points  int     `yaml:"points"`
	} `yaml:"collectible"`

	Difficulty struct {
		LinearSpeedStep  float64 `yaml:"linear_speed_step"`
		AngularSpeedStep float64 `yaml:"angular_speed_step"`
	} `yaml:"difficulty"`
}

// DefaultConfig returns the built-in tunables
func DefaultConfig() *Config {
	c := &Config{}
	c.World.Width = WorldWidth
	c.World.Height = WorldHeight
	c.World.BoundThickness = BoundThickness

	c.Loop.FixedStep = FixedStep
	c.Loop.MaxCatchUp = MaxCatchUpSteps
	c.Loop.Telemetry = TelemetryInterval

	c.Player.Radius = PlayerRadius
	c.Player.DragScale = DragScale
	c.Player.EaseDivisor = EaseDivisor

	c.Foe.Count = FoeCount
	c.Foe.Radius = FoeRadius
	c.Foe.Sides = FoeSides
	c.Foe.LinearSpeed = FoeLinearSpeed
	c.Foe.AngularSpeed = FoeAngularSpeed
	c.Foe.ShotCooldown = FoeShotCooldown
	c.Foe.SightFraction = FoeSightFraction

	c.Bullet.Radius = BulletRadius
	c.Bullet.SpeedFactor = BulletSpeedFactor
	c.Bullet.MaxSpeed = BulletMaxSpeed
	c.Bullet.Restitution = BulletRestitution
	c.Bullet.Lifetime = BulletLifetime

	c.Collectible.Count = CollectibleCount
	c.Collectible.Radius = CollectibleRadius
	c.Collectible.Padding = CollectiblePadding
	c.Collectible.Points = CollectiblePoints

	c.Difficulty.LinearSpeedStep = LinearSpeedStep
	c.Difficulty.AngularSpeedStep = AngularSpeedStep
	return c
}

// LoadConfig reads a YAML file over the defaults
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig parses YAML over the defaults; unknown keys are rejected
func DecodeConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("decode config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges; every error wraps ErrInvalidConfig
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size %gx%g must be positive", c.World.Width, c.World.Height)
	check(c.World.BoundThickness > 0, "bound thickness %g must be positive", c.World.BoundThickness)
	check(c.Loop.FixedStep > 0, "fixed step %s must be positive", c.Loop.FixedStep)
	check(c.Loop.MaxCatchUp >= 1, "max catch up %d must be at least 1", c.Loop.MaxCatchUp)
	check(c.Loop.Telemetry > 0, "telemetry interval %s must be positive", c.Loop.Telemetry)
	check(c.Player.Radius > 0, "player radius %g must be positive", c.Player.Radius)
	check(2*c.Player.Radius < c.World.Width && 2*c.Player.Radius < c.World.Height, "player radius %g does not fit the world", c.Player.Radius)
	check(c.Player.DragScale > 0, "drag scale %g must be positive", c.Player.DragScale)
	check(c.Player.EaseDivisor >= 1, "ease divisor %g must be at least 1", c.Player.EaseDivisor)
	check(c.Foe.Count >= 0, "foe count %d must not be negative", c.Foe.Count)
	check(c.Foe.Radius > 0, "foe radius %g must be positive", c.Foe.Radius)
	check(c.Foe.Sides >= 3, "foe sides %d must be at least 3", c.Foe.Sides)
	check(c.Foe.LinearSpeed >= 0 && c.Foe.AngularSpeed >= 0, "foe speeds must not be negative")
	check(c.Foe.ShotCooldown > 0, "shot cooldown %s must be positive", c.Foe.ShotCooldown)
	check(c.Foe.SightFraction > 0, "sight fraction %g must be positive", c.Foe.SightFraction)
	check(c.Bullet.Radius > 0, "bullet radius %g must be positive", c.Bullet.Radius)
	check(c.Bullet.SpeedFactor > 0 && c.Bullet.MaxSpeed > 0, "bullet speed factor and max speed must be positive")
	check(c.Bullet.Restitution >= 0 && c.Bullet.Restitution <= 1, "bullet restitution %g must be in [0, 1]", c.Bullet.Restitution)
	check(c.Bullet.Lifetime > 0, "bullet lifetime %s must be positive", c.Bullet.Lifetime)
	check(c.Collectible.Count >= 0, "collectible count %d must not be negative", c.Collectible.Count)
	check(c.Collectible.Radius > 0, "collectible radius %g must be positive", c.Collectible.Radius)
	check(c.Collectible.Padding >= 0 && 2*c.Collectible.Padding <= c.World.Width && 2*c.Collectible.Padding <= c.World.Height,
		"collectible padding %g does not fit the world", c.Collectible.Padding)
	check(c.Collectible.Points > 0, "collectible points %d must be positive", c.Collectible.Points)
	check(c.Difficulty.LinearSpeedStep >= 0 && c.Difficulty.AngularSpeedStep >= 0, "difficulty steps must not be negative")

	return errors.Join(errs...)
}

// SeedValue hashes the seed string into a rand source seed; empty seed uses fallback
func (c *Config) SeedValue(fallback int64) int64 {
	if c.Seed == "" {
		return fallback
	}
	return int64(xxhash.Sum64String(c.Seed))
}

// FixedDelta returns the fixed step in seconds
func (c *Config) FixedDelta() float64 {
	return c.Loop.FixedStep.Seconds()
}
