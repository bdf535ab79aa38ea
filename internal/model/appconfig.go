package model

import (
	"errors"
	"fmt"
)

// PackSettings tunes the placement engine.
type PackSettings struct {
	// Workers is the number of goroutines used to score candidate
	// placements. Zero or less means one per CPU.
	Workers int `json:"workers"`
	// MinParallel is the number of (item, region) pairs below which scoring
	// runs on the calling goroutine.
	MinParallel int `json:"min_parallel"`
}

// DefaultPackSettings uses one worker per CPU and searches inline below
// 4096 candidate pairs.
func DefaultPackSettings() PackSettings {
	return PackSettings{
		Workers:     0,
		MinParallel: 4096,
	}
}

// AppConfig holds the front-end settings for a packing run.
type AppConfig struct {
	// Containers
	ContainerWidth  int `json:"container_width"`
	ContainerHeight int `json:"container_height"`
	Containers      int `json:"containers"`

	// Random items (ignored when items are imported from a file)
	Items       int   `json:"items"`
	MinItemSide int   `json:"min_item_side"`
	MaxItemSide int   `json:"max_item_side"`
	Seed        int64 `json:"seed"` // 0 = time based

	Pack PackSettings `json:"pack"`

	// Reusable leftover thresholds
	MinOffcutDimension int `json:"min_offcut_dimension"`
	MinOffcutArea      int `json:"min_offcut_area"`

	// Outputs; an empty path disables that output
	Outputs Outputs `json:"outputs"`
}

// Outputs lists the files a run should write.
type Outputs struct {
	PNG    string `json:"png"`
	PDF    string `json:"pdf"`
	Labels string `json:"labels"`
	DXF    string `json:"dxf"`
	Excel  string `json:"excel"`
	Report string `json:"report"`
}

// DefaultAppConfig returns an AppConfig with 200x200 containers and random
// item sides between 1 and 99.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		ContainerWidth:     200,
		ContainerHeight:    200,
		Containers:         1,
		Items:              50,
		MinItemSide:        1,
		MaxItemSide:        99,
		Seed:               0,
		Pack:               DefaultPackSettings(),
		MinOffcutDimension: MinOffcutDimension,
		MinOffcutArea:      MinOffcutArea,
		Outputs: Outputs{
			PNG: "output.png",
		},
	}
}

var errNegative = errors.New("must not be negative")

// Validate checks that the config describes a runnable job.
func (c AppConfig) Validate() error {
	if c.ContainerWidth <= 0 || c.ContainerHeight <= 0 {
		return fmt.Errorf("container size %dx%d: dimensions must be positive", c.ContainerWidth, c.ContainerHeight)
	}
	if c.Containers < 0 {
		return fmt.Errorf("containers: %w", errNegative)
	}
	if c.Items < 0 {
		return fmt.Errorf("items: %w", errNegative)
	}
	if c.MinItemSide <= 0 {
		return fmt.Errorf("min item side %d: must be positive", c.MinItemSide)
	}
	if c.MaxItemSide < c.MinItemSide {
		return fmt.Errorf("max item side %d is smaller than min item side %d", c.MaxItemSide, c.MinItemSide)
	}
	if c.MinOffcutDimension < 0 {
		return fmt.Errorf("min offcut dimension: %w", errNegative)
	}
	if c.MinOffcutArea < 0 {
		return fmt.Errorf("min offcut area: %w", errNegative)
	}
	return nil
}
