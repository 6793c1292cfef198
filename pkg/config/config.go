// pkg/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config contains the full configuration for an orbital defense session.
// It is loaded once at startup and treated as immutable afterwards.
type Config struct {
	Planet     PlanetConfig     `yaml:"planet"`
	Station    StationConfig    `yaml:"defense_station"`
	Weapons    []WeaponConfig   `yaml:"weapons"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Simulation SimulationConfig `yaml:"simulation"`
	Display    DisplayConfig    `yaml:"display"`
}

// PlanetConfig describes the central planet
type PlanetConfig struct {
	Mass   float64 `yaml:"mass"`
	Radius float64 `yaml:"radius"`
}

// StationConfig describes the player's defense station
type StationConfig struct {
	Mass        float64 `yaml:"mass"`
	Radius      float64 `yaml:"radius"`
	OrbitHeight float64 `yaml:"orbit_height"`
}

// WeaponConfig describes one weapon slot. Weapons are an ordered list;
// the list index is the weapon's selection key.
type WeaponConfig struct {
	Name             string  `yaml:"name"`
	Mass             float64 `yaml:"mass"`
	Radius           float64 `yaml:"radius"`
	MaxSpeed         float64 `yaml:"max_speed"`
	Cooldown         float64 `yaml:"cooldown"`
	GuidanceStrength float64 `yaml:"guidance_strength"`
}

// EnemiesConfig describes enemy spawning and per-type parameters
type EnemiesConfig struct {
	SpawnDistance float64        `yaml:"spawn_distance"`
	SpawnInterval float64        `yaml:"spawn_interval"`
	Asteroid      AsteroidConfig `yaml:"asteroid"`
	Ship          ShipConfig     `yaml:"ship"`
}

// AsteroidConfig describes asteroid enemies
type AsteroidConfig struct {
	MinMass float64 `yaml:"min_mass"`
	MaxMass float64 `yaml:"max_mass"`
	Radius  float64 `yaml:"radius"`
	Points  int     `yaml:"points"`
}

// ShipConfig describes AI-controlled enemy ships
type ShipConfig struct {
	Mass   float64  `yaml:"mass"`
	Radius float64  `yaml:"radius"`
	Points int      `yaml:"points"`
	AI     AIConfig `yaml:"ai"`
}

// AIConfig describes enemy ship navigation tuning
type AIConfig struct {
	UpdateInterval   float64 `yaml:"update_interval"`
	OrbitDistance    float64 `yaml:"orbit_distance"`
	ApproachDistance float64 `yaml:"approach_distance"`
	MaxSpeed         float64 `yaml:"max_speed"`
}

// SimulationConfig describes time stepping and trajectory prediction
type SimulationConfig struct {
	TimeStep           float64 `yaml:"time_step"`
	MaxPredictionSteps int     `yaml:"max_prediction_steps"`
	PredictionInterval float64 `yaml:"prediction_interval"`
	Seed               int64   `yaml:"seed"`
}

// DisplayConfig describes the terminal play field
type DisplayConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Load reads and validates a configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Save writes a configuration to a YAML file
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the configuration for values the simulation cannot
// run with. Failures here are fatal at startup; the physics core
// expects validated numeric parameters.
func (c *Config) Validate() error {
	if c.Planet.Mass <= 0 {
		return fmt.Errorf("planet mass must be positive, got %v", c.Planet.Mass)
	}
	if c.Planet.Radius < 0 {
		return fmt.Errorf("planet radius must be non-negative, got %v", c.Planet.Radius)
	}
	if c.Station.Mass <= 0 {
		return fmt.Errorf("station mass must be positive, got %v", c.Station.Mass)
	}
	if len(c.Weapons) == 0 {
		return fmt.Errorf("at least one weapon must be configured")
	}
	for i, w := range c.Weapons {
		if w.Name == "" {
			return fmt.Errorf("weapon %d has no name", i)
		}
		if w.Mass <= 0 {
			return fmt.Errorf("weapon %q mass must be positive, got %v", w.Name, w.Mass)
		}
		if w.MaxSpeed <= 0 {
			return fmt.Errorf("weapon %q max speed must be positive, got %v", w.Name, w.MaxSpeed)
		}
		if w.Cooldown < 0 {
			return fmt.Errorf("weapon %q cooldown must be non-negative, got %v", w.Name, w.Cooldown)
		}
		if w.GuidanceStrength < 0 {
			return fmt.Errorf("weapon %q guidance strength must be non-negative, got %v", w.Name, w.GuidanceStrength)
		}
	}
	if c.Enemies.SpawnDistance <= 0 {
		return fmt.Errorf("enemy spawn distance must be positive, got %v", c.Enemies.SpawnDistance)
	}
	if c.Enemies.SpawnInterval <= 0 {
		return fmt.Errorf("enemy spawn interval must be positive, got %v", c.Enemies.SpawnInterval)
	}
	if c.Enemies.Asteroid.MinMass <= 0 || c.Enemies.Asteroid.MaxMass < c.Enemies.Asteroid.MinMass {
		return fmt.Errorf("asteroid mass range [%v, %v] is invalid",
			c.Enemies.Asteroid.MinMass, c.Enemies.Asteroid.MaxMass)
	}
	if c.Enemies.Ship.Mass <= 0 {
		return fmt.Errorf("ship mass must be positive, got %v", c.Enemies.Ship.Mass)
	}
	if c.Enemies.Ship.AI.UpdateInterval <= 0 {
		return fmt.Errorf("ship AI update interval must be positive, got %v", c.Enemies.Ship.AI.UpdateInterval)
	}
	if c.Simulation.TimeStep <= 0 {
		return fmt.Errorf("simulation time step must be positive, got %v", c.Simulation.TimeStep)
	}
	if c.Simulation.MaxPredictionSteps <= 0 {
		return fmt.Errorf("prediction step count must be positive, got %d", c.Simulation.MaxPredictionSteps)
	}
	if c.Simulation.PredictionInterval <= 0 {
		return fmt.Errorf("prediction interval must be positive, got %v", c.Simulation.PredictionInterval)
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display size %dx%d is invalid", c.Display.Width, c.Display.Height)
	}
	return nil
}

// Default returns a playable default configuration
func Default() *Config {
	return &Config{
		Planet: PlanetConfig{
			Mass:   1e6,
			Radius: 3,
		},
		Station: StationConfig{
			Mass:        100,
			Radius:      0.5,
			OrbitHeight: 2,
		},
		Weapons: []WeaponConfig{
			{
				Name:     "railgun",
				Mass:     1,
				Radius:   0.5,
				MaxSpeed: 40,
				Cooldown: 1.5,
			},
			{
				Name:     "cannon",
				Mass:     3,
				Radius:   0.8,
				MaxSpeed: 25,
				Cooldown: 3,
			},
			{
				Name:             "missile",
				Mass:             5,
				Radius:           1,
				MaxSpeed:         20,
				Cooldown:         5,
				GuidanceStrength: 0.8,
			},
		},
		Enemies: EnemiesConfig{
			SpawnDistance: 30,
			SpawnInterval: 2,
			Asteroid: AsteroidConfig{
				MinMass: 50,
				MaxMass: 200,
				Radius:  1,
				Points:  100,
			},
			Ship: ShipConfig{
				Mass:   80,
				Radius: 1,
				Points: 200,
				AI: AIConfig{
					UpdateInterval:   0.5,
					OrbitDistance:    12,
					ApproachDistance: 40,
					MaxSpeed:         8,
				},
			},
		},
		Simulation: SimulationConfig{
			TimeStep:           0.05,
			MaxPredictionSteps: 100,
			PredictionInterval: 0.1,
			Seed:               0,
		},
		Display: DisplayConfig{
			Width:  80,
			Height: 24,
		},
	}
}
