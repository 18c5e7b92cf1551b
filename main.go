// Command thermalmesh writes a toy satellite mesh with a simulated
// temperature field to a VTK PolyData file.
//
// Usage:
//
//	thermalmesh [output-path]
//
// Without an argument the file goes to the mock storage location used by
// the web viewer. Settings can be overridden in thermalmesh.yaml.
package main

import (
	"log"
	"os"

	"github.com/chazu/thermalmesh/pkg/config"
)

func main() {
	if len(os.Args) > 2 {
		log.Fatalf("usage: %s [output-path]", os.Args[0])
	}

	cfg, err := config.Load(config.FilePath)
	if err != nil {
		log.Fatalf("thermalmesh: %v", err)
	}

	path := cfg.Output
	if len(os.Args) == 2 {
		path = os.Args[1]
	}

	if _, err := NewApp(cfg).Generate(path); err != nil {
		log.Fatalf("thermalmesh: %v", err)
	}
}
