package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/transitzone/transitzone/pkg/ctm"
	"gopkg.in/yaml.v3"
)

type Config struct {
	PeakWindows []Window `yaml:"peak_windows" validate:"min=1,dive"`

	// ServiceWeekdays is the commute pattern a trip's calendar must cover in
	// full before its arrivals count towards headways.
	ServiceWeekdays []string `yaml:"service_weekdays" validate:"min=1"`

	HeadwayThresholdMinutes float64 `yaml:"headway_threshold_minutes" validate:"gt=0"`
	MinRouteCount           int     `yaml:"min_route_count" validate:"gte=1"`
	MinObservations         int     `yaml:"min_observations" validate:"gte=1"`
	OutlierCeilingMinutes   float64 `yaml:"outlier_ceiling_minutes" validate:"gt=0"`

	HubBufferRadiusMiles      float64 `yaml:"hub_buffer_radius_miles" validate:"gt=0"`
	CorridorBufferRadiusMiles float64 `yaml:"corridor_buffer_radius_miles" validate:"gt=0"`
	Corridors                 bool    `yaml:"corridors"`

	Rail RailRules `yaml:"rail"`

	Projection Projection `yaml:"projection"`

	ReferenceRegions []ReferenceRegion `yaml:"reference_regions" validate:"dive"`
}

type Window struct {
	Start string `yaml:"start" validate:"required"`
	End   string `yaml:"end" validate:"required"`
}

type RailRules struct {
	// MinLatitude/MaxLatitude exclude out-of-jurisdiction stations. Zero
	// disables the bound.
	MinLatitude float64 `yaml:"min_latitude"`
	MaxLatitude float64 `yaml:"max_latitude"`
}

type Projection struct {
	UTMZone  int  `yaml:"utm_zone" validate:"gte=1,lte=60"`
	Northern bool `yaml:"northern"`
}

type ReferenceRegion struct {
	Name string `yaml:"name" validate:"required"`

	// Either a GeoJSON boundary file whose polygons are unioned, or a
	// pre-computed land area. Exactly one must be set.
	BoundaryPath string  `yaml:"boundary_path"`
	SquareMiles  float64 `yaml:"square_miles"`
}

// Default returns the statute parameters: 07:00-09:00 and 16:00-18:00 peaks on
// weekday service, 15 minute headway over at least 2 routes, half mile hub and
// eighth mile corridor buffers.
func Default() Config {
	return Config{
		PeakWindows: []Window{
			{Start: "07:00:00", End: "09:00:00"},
			{Start: "16:00:00", End: "18:00:00"},
		},
		ServiceWeekdays:           []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		HeadwayThresholdMinutes:   15,
		MinRouteCount:             2,
		MinObservations:           3,
		OutlierCeilingMinutes:     60,
		HubBufferRadiusMiles:      0.5,
		CorridorBufferRadiusMiles: 0.125,
		Projection: Projection{
			UTMZone:  10,
			Northern: true,
		},
	}
}

func Load(path string) (Config, error) {
	cfg := Default()

	contents, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate fails fast on configuration errors before any feed is read.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	for _, window := range c.PeakWindows {
		start, err := ctm.ParseTimeOfDay(window.Start)
		if err != nil {
			return fmt.Errorf("invalid peak window start: %w", err)
		}
		end, err := ctm.ParseTimeOfDay(window.End)
		if err != nil {
			return fmt.Errorf("invalid peak window end: %w", err)
		}
		if end <= start {
			return fmt.Errorf("peak window %s-%s is inverted", window.Start, window.End)
		}
	}

	if _, err := c.Weekdays(); err != nil {
		return err
	}

	if c.Rail.MaxLatitude != 0 && c.Rail.MinLatitude != 0 && c.Rail.MaxLatitude <= c.Rail.MinLatitude {
		return fmt.Errorf("rail latitude bounds %f-%f are inverted", c.Rail.MinLatitude, c.Rail.MaxLatitude)
	}

	for _, region := range c.ReferenceRegions {
		if region.BoundaryPath == "" && region.SquareMiles <= 0 {
			return fmt.Errorf("reference region %s needs a boundary path or an area", region.Name)
		}
	}

	return nil
}

func (c *Config) Weekdays() ([]time.Weekday, error) {
	names := map[string]time.Weekday{
		"Sunday":    time.Sunday,
		"Monday":    time.Monday,
		"Tuesday":   time.Tuesday,
		"Wednesday": time.Wednesday,
		"Thursday":  time.Thursday,
		"Friday":    time.Friday,
		"Saturday":  time.Saturday,
	}

	weekdays := make([]time.Weekday, 0, len(c.ServiceWeekdays))
	for _, name := range c.ServiceWeekdays {
		weekday, exists := names[name]
		if !exists {
			return nil, fmt.Errorf("unknown service weekday %q", name)
		}
		weekdays = append(weekdays, weekday)
	}

	return weekdays, nil
}
