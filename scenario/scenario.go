// Package scenario describes the initial state of a simulation run and loads
// it from TOML or YAML files.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/plus3/sigecs/ecs"
)

// Validation errors returned by Validate, wrapped with the offending value.
var (
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrSlotOutOfRange  = errors.New("slot out of range")
	ErrDuplicateSlot   = errors.New("duplicate slot")
	ErrNegativeTicks   = errors.New("max_ticks must not be negative")
)

// Scenario is the table size, run limits and initial entities of one run.
type Scenario struct {
	Capacity int           `toml:"capacity" yaml:"capacity"`
	MaxTicks int           `toml:"max_ticks" yaml:"max_ticks"` // 0 = unlimited
	Spatial  bool          `toml:"spatial" yaml:"spatial"`     // spatial-hash collision scan
	Logging  LoggingConfig `toml:"logging" yaml:"logging"`
	Entities []EntitySpec  `toml:"entities" yaml:"entities"`
}

// LoggingConfig selects the zap logger level and encoding.
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
}

// EntitySpec places components on one slot. Nil components are absent.
type EntitySpec struct {
	Slot     int   `toml:"slot" yaml:"slot"`
	Position *Vec2 `toml:"position" yaml:"position"`
	Velocity *Vec2 `toml:"velocity" yaml:"velocity"`
}

// Vec2 is an integer pair used for both Position and Velocity.
type Vec2 struct {
	X int `toml:"x" yaml:"x"`
	Y int `toml:"y" yaml:"y"`
}

// Default returns the reference scenario: entity 0 at (3,3) moving (-1,-1)
// towards a stationary entity 1 at the origin.
func Default() *Scenario {
	s := defaults()
	s.Entities = []EntitySpec{
		{Slot: 0, Position: &Vec2{X: 3, Y: 3}, Velocity: &Vec2{X: -1, Y: -1}},
		{Slot: 1, Position: &Vec2{X: 0, Y: 0}},
	}
	return s
}

func defaults() *Scenario {
	return &Scenario{
		Capacity: ecs.DefaultCapacity,
		MaxTicks: 1000,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a scenario file. The format is chosen by extension: .toml,
// .yaml or .yml. Fields missing from the file keep their defaults.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}

	s := defaults()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parse scenario %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parse scenario %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("scenario %s: unsupported format %q", path, ext)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Validate checks capacity, tick budget and slot assignments.
func (s *Scenario) Validate() error {
	if s.Capacity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, s.Capacity)
	}
	if s.MaxTicks < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeTicks, s.MaxTicks)
	}

	seen := make(map[int]bool, len(s.Entities))
	for _, e := range s.Entities {
		if e.Slot < 0 || e.Slot >= s.Capacity {
			return fmt.Errorf("%w: %d (capacity %d)", ErrSlotOutOfRange, e.Slot, s.Capacity)
		}
		if seen[e.Slot] {
			return fmt.Errorf("%w: %d", ErrDuplicateSlot, e.Slot)
		}
		seen[e.Slot] = true
	}
	return nil
}

// Build validates the scenario and returns a table populated with its
// entities.
func (s *Scenario) Build() (*ecs.Table, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	table := ecs.NewTable(s.Capacity)
	for _, spec := range s.Entities {
		e := table.Entity(ecs.EntityId(spec.Slot))
		if spec.Position != nil {
			e.AddPosition(spec.Position.X, spec.Position.Y)
		}
		if spec.Velocity != nil {
			e.AddVelocity(spec.Velocity.X, spec.Velocity.Y)
		}
	}
	return table, nil
}

// CollisionOptions returns the collision system options the scenario asks
// for.
func (s *Scenario) CollisionOptions() []ecs.CollisionOption {
	if s.Spatial {
		return []ecs.CollisionOption{ecs.WithSpatialHash()}
	}
	return nil
}
