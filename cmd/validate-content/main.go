// Package main checks scenario content for load errors and unwinnable layouts.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cory-johannsen/campus-adventure/internal/game/scenario"
)

func main() {
	scenarioPath := flag.String("scenario", "content/campus/scenario.yaml", "scenario manifest to check")
	flag.Parse()

	if err := run(*scenarioPath, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, out io.Writer) error {
	sc, err := scenario.LoadFromFile(path)
	if err != nil {
		return err
	}
	w, err := sc.BuildWorld()
	if err != nil {
		return err
	}

	essential := 0
	for _, it := range w.Items() {
		if it.IsEssential {
			essential++
		}
	}
	restricted := 0
	for _, id := range w.LocationIDs() {
		if w.IsRestricted(id) {
			restricted++
		}
	}
	fmt.Fprintf(out, "scenario:   %s\n", sc.Name)
	fmt.Fprintf(out, "map:        %dx%d\n", w.Width(), w.Height())
	fmt.Fprintf(out, "locations:  %d (%d restricted)\n", len(w.LocationIDs()), restricted)
	fmt.Fprintf(out, "items:      %d (%d essential)\n", len(w.Items()), essential)
	fmt.Fprintf(out, "max moves:  %d\n", sc.MaxMoves)
	if x, y, ok := w.PositionOf(sc.HomeLocation); ok {
		fmt.Fprintf(out, "home:       location %d at (%d, %d)\n", sc.HomeLocation, x, y)
	}
	if key, ok := w.ItemAt(sc.KeyItem); ok {
		fmt.Fprintf(out, "key item:   %s (starts at location %d)\n", key.Name, key.StartPosition)
	}

	if err := sc.CheckPlayable(w); err != nil {
		return fmt.Errorf("scenario %q is not playable:\n%w", sc.Name, err)
	}
	fmt.Fprintln(out, "ok")
	return nil
}
