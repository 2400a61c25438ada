package sim

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

//Options represents the simulator's configurable options
//none of them reach the world model or tick engine, which take no config
type Options struct {
	Interval        time.Duration `json:"interval"`          //delay between scheduled steps while running
	MaxSteps        int           `json:"max_steps"`         //stop after this many generations, 0 means unlimited
	MaxSkippedTicks int           `json:"max_skipped_ticks"` //give up after this many ticks skipped while a step is in flight
	Pattern         string        `json:"pattern"`           //name of the seeding pattern
	Density         float64       `json:"density"`           //cell density for random seeding
	ViewportWidth   int           `json:"viewport_width"`    //random-seed rectangle width, also the UI's initial viewport
	ViewportHeight  int           `json:"viewport_height"`   //random-seed rectangle height
}

//default options
const (
	DefInterval        = time.Millisecond * 100
	DefMaxSteps        = 1000
	DefMaxSkippedTicks = 5
	DefPattern         = "glider"
	DefDensity         = 0.15
	DefViewportWidth   = 60
	DefViewportHeight  = 24
)

//DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		Interval:        DefInterval,
		MaxSteps:        DefMaxSteps,
		MaxSkippedTicks: DefMaxSkippedTicks,
		Pattern:         DefPattern,
		Density:         DefDensity,
		ViewportWidth:   DefViewportWidth,
		ViewportHeight:  DefViewportHeight,
	}
}

//LoadOptions reads options from a JSON file over the defaults
func LoadOptions(filename string) (Options, error) {
	options := DefaultOptions()

	data, err := os.ReadFile(filename)
	if err != nil {
		return options, errors.Wrapf(err, "[LoadOptions] failed to read file: %v", filename)
	}

	if err = json.Unmarshal(data, &options); err != nil {
		return options, errors.Wrapf(err, "[LoadOptions] failed to unmarshal data from file: %v", filename)
	}

	return options, nil
}
