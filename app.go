package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chazu/thermalmesh/pkg/config"
	"github.com/chazu/thermalmesh/pkg/kernel"
	"github.com/chazu/thermalmesh/pkg/kernel/sdfx"
	"github.com/chazu/thermalmesh/pkg/mesh"
	"github.com/chazu/thermalmesh/pkg/vtp"
)

// App runs the generator: mesh, temperature field, VTP file.
type App struct {
	cfg    config.Config
	kernel kernel.Kernel
	out    io.Writer
}

// NewApp creates an App with the sdfx kernel that reports to stdout.
func NewApp(cfg config.Config) *App {
	return &App{
		cfg:    cfg,
		kernel: sdfx.New(),
		out:    os.Stdout,
	}
}

// Generate builds the satellite mesh, evaluates the temperature field and
// writes both to path. It returns the absolute path of the written file.
func (a *App) Generate(path string) (string, error) {
	// Step 1: Assemble the parts and mesh their bounds.
	asm := mesh.Satellite(a.kernel)
	if err := asm.Check(); err != nil {
		log.Printf("Mesh check failed: %v", err)
		return "", err
	}

	// Step 2: One temperature per point.
	field := a.cfg.Model().Evaluate(asm.Mesh.Points)

	// Step 3: Serialize.
	doc, err := vtp.NewFile(asm.Mesh, a.cfg.FieldName, field)
	if err != nil {
		log.Printf("Building VTP document failed: %v", err)
		return "", err
	}
	abs, err := vtp.WriteFile(path, doc)
	if err != nil {
		log.Printf("Write error: %v", err)
		return "", err
	}

	fmt.Fprintf(a.out, "Successfully generated VTP file at: %s\n", abs)
	return abs, nil
}
