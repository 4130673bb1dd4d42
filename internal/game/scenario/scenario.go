// Package scenario loads game scenario manifests: the YAML file naming a
// world's content files together with the rules of play.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/campus-adventure/internal/game/controller"
	"github.com/cory-johannsen/campus-adventure/internal/game/inventory"
	"github.com/cory-johannsen/campus-adventure/internal/game/player"
	"github.com/cory-johannsen/campus-adventure/internal/game/world"
)

// yamlScenarioFile is the top-level YAML structure for scenario manifests.
type yamlScenarioFile struct {
	Scenario yamlScenario `yaml:"scenario"`
}

type yamlScenario struct {
	Name                string          `yaml:"name"`
	Plot                string          `yaml:"plot"`
	Objectives          string          `yaml:"objectives"`
	Content             yamlContent     `yaml:"content"`
	Start               yamlCoordinate  `yaml:"start"`
	HomeLocation        int             `yaml:"home_location"`
	Goal                *yamlCoordinate `yaml:"goal"`
	MaxMoves            int             `yaml:"max_moves"`
	InventoryCapacity   int             `yaml:"inventory_capacity"`
	RestrictedLocations []int           `yaml:"restricted_locations"`
	KeyItem             int             `yaml:"key_item"`
	EssentialItems      []int           `yaml:"essential_items"`
	Actions             []string        `yaml:"actions"`
}

type yamlContent struct {
	Map       string `yaml:"map"`
	Locations string `yaml:"locations"`
	Items     string `yaml:"items"`
	NPCs      string `yaml:"npcs"`
}

type yamlCoordinate struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Content names the four content files of a scenario.
type Content struct {
	Map       string
	Locations string
	Items     string
	NPCs      string
}

// Scenario describes one playable game.
type Scenario struct {
	Name       string
	Plot       string
	Objectives string
	// Content paths are relative to BaseDir unless absolute.
	Content Content
	// BaseDir is the directory of the manifest file.
	BaseDir             string
	Start               controller.Coordinate
	HomeLocation        int
	Goal                controller.Coordinate
	MaxMoves            int
	InventoryCapacity   int
	RestrictedLocations []int
	KeyItem             int
	// EssentialItems lists start location IDs; empty means every item.
	EssentialItems []int
	Actions        []string
}

// LoadFromFile reads and validates a scenario manifest.
//
// Precondition: path must point to a YAML scenario manifest.
// Postcondition: Returns a validated Scenario whose BaseDir is the manifest's
// directory, or a non-nil error.
func LoadFromFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file %s: %w", path, err)
	}
	sc, err := LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	sc.BaseDir = filepath.Dir(path)
	return sc, nil
}

// LoadFromBytes parses and validates a scenario manifest. Unset rule fields
// take the defaults of the campus game.
//
// Postcondition: Returns a validated Scenario or a non-nil error.
func LoadFromBytes(data []byte) (*Scenario, error) {
	var file yamlScenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}
	sc := convertYAMLScenario(file.Scenario)
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("validating scenario: %w", err)
	}
	return sc, nil
}

func convertYAMLScenario(ys yamlScenario) *Scenario {
	sc := &Scenario{
		Name:       ys.Name,
		Plot:       ys.Plot,
		Objectives: ys.Objectives,
		Content: Content{
			Map:       ys.Content.Map,
			Locations: ys.Content.Locations,
			Items:     ys.Content.Items,
			NPCs:      ys.Content.NPCs,
		},
		BaseDir:             ".",
		Start:               controller.Coordinate{X: ys.Start.X, Y: ys.Start.Y},
		HomeLocation:        ys.HomeLocation,
		Goal:                controller.DefaultGoal,
		MaxMoves:            ys.MaxMoves,
		InventoryCapacity:   ys.InventoryCapacity,
		RestrictedLocations: ys.RestrictedLocations,
		KeyItem:             ys.KeyItem,
		EssentialItems:      ys.EssentialItems,
		Actions:             ys.Actions,
	}
	if ys.Goal != nil {
		sc.Goal = controller.Coordinate{X: ys.Goal.X, Y: ys.Goal.Y}
	}
	if sc.HomeLocation == 0 {
		sc.HomeLocation = controller.DefaultHomeID
	}
	if sc.MaxMoves == 0 {
		sc.MaxMoves = player.DefaultMaxMoves
	}
	if sc.InventoryCapacity == 0 {
		sc.InventoryCapacity = inventory.DefaultCapacity
	}
	if len(sc.Actions) == 0 {
		sc.Actions = append([]string(nil), world.DefaultActions...)
	}
	return sc
}

// Validate checks that the scenario is internally consistent. References to
// locations and items are checked when the world is built.
//
// Postcondition: Returns nil iff valid; otherwise every violation is reported.
func (sc *Scenario) Validate() error {
	var errs []error
	if sc.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	for field, path := range map[string]string{
		"content.map":       sc.Content.Map,
		"content.locations": sc.Content.Locations,
		"content.items":     sc.Content.Items,
		"content.npcs":      sc.Content.NPCs,
	} {
		if path == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", field))
		}
	}
	if sc.MaxMoves <= 0 {
		errs = append(errs, fmt.Errorf("max_moves must be > 0, got %d", sc.MaxMoves))
	}
	if sc.InventoryCapacity <= 0 {
		errs = append(errs, fmt.Errorf("inventory_capacity must be > 0, got %d", sc.InventoryCapacity))
	}
	if sc.HomeLocation < 1 {
		errs = append(errs, fmt.Errorf("home_location must be >= 1, got %d", sc.HomeLocation))
	}
	if len(sc.RestrictedLocations) > 0 && sc.KeyItem < 1 {
		errs = append(errs, errors.New("key_item is required when restricted_locations is set"))
	}
	known := make(map[string]bool, len(world.DefaultActions))
	for _, a := range world.DefaultActions {
		known[a] = true
	}
	for _, a := range sc.Actions {
		if !known[a] {
			errs = append(errs, fmt.Errorf("unknown action %q", a))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// ContentPath resolves a content file name against BaseDir.
func (sc *Scenario) ContentPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(sc.BaseDir, name)
}

// WorldOptions returns the world construction options of the scenario.
func (sc *Scenario) WorldOptions() world.Options {
	return world.Options{
		Actions:        sc.Actions,
		RestrictedIDs:  sc.RestrictedLocations,
		KeyItem:        sc.KeyItem,
		EssentialItems: sc.EssentialItems,
	}
}

// ControllerOptions returns the rule options of the scenario.
func (sc *Scenario) ControllerOptions() controller.Options {
	goal := sc.Goal
	return controller.Options{HomeID: sc.HomeLocation, Goal: &goal}
}

// BuildWorld opens the content files and builds a fresh World.
//
// Postcondition: Returns a validated World or a non-nil error naming the failing file.
func (sc *Scenario) BuildWorld() (*world.World, error) {
	paths := []string{sc.Content.Map, sc.Content.Locations, sc.Content.Items, sc.Content.NPCs}
	files := make([]*os.File, 0, len(paths))
	defer func() {
		for _, f := range files {
			_ = f.Close()
		}
	}()
	for _, p := range paths {
		f, err := os.Open(sc.ContentPath(p))
		if err != nil {
			return nil, fmt.Errorf("scenario %q: opening content: %w", sc.Name, err)
		}
		files = append(files, f)
	}
	w, err := world.New(world.Sources{
		Map:       files[0],
		Locations: files[1],
		Items:     files[2],
		NPCs:      files[3],
	}, sc.WorldOptions())
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	return w, nil
}

// CheckPlayable reports content that would make the scenario unwinnable: a
// start, home or goal off the map, or an item whose start or target cannot be
// walked to from the start.
//
// Precondition: w must be built from sc.
// Postcondition: Returns nil iff every check passes; otherwise every problem is reported.
func (sc *Scenario) CheckPlayable(w *world.World) error {
	var errs []error
	reachable := make(map[int]bool)
	for _, id := range w.ReachableFrom(sc.Start.X, sc.Start.Y) {
		reachable[id] = true
	}
	if len(reachable) == 0 {
		return fmt.Errorf("start (%d, %d) is not a location", sc.Start.X, sc.Start.Y)
	}
	if !reachable[sc.HomeLocation] {
		errs = append(errs, fmt.Errorf("home location %d is not reachable", sc.HomeLocation))
	}
	if goal, ok := w.LocationAt(sc.Goal.X, sc.Goal.Y); !ok {
		errs = append(errs, fmt.Errorf("goal (%d, %d) is not a location", sc.Goal.X, sc.Goal.Y))
	} else if !reachable[goal.ID] {
		errs = append(errs, fmt.Errorf("goal location %d is not reachable", goal.ID))
	}
	for _, it := range w.Items() {
		if !reachable[it.StartPosition] {
			errs = append(errs, fmt.Errorf("item %q: start location %d is not reachable", it.Name, it.StartPosition))
		}
		if !reachable[it.TargetPosition] {
			errs = append(errs, fmt.Errorf("item %q: target location %d is not reachable", it.Name, it.TargetPosition))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
