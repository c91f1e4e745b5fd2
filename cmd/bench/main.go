// Command bench runs a simulation headless for a fixed number of ticks and
// reports step timing.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"parsim/internal/app"
	"parsim/internal/core"
	_ "parsim/internal/sims/life"
	_ "parsim/internal/sims/mandel"
	_ "parsim/internal/sims/nbody"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 120, "number of ticks to run")
	flag.Parse()

	if cfg.Verbose {
		core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var opts map[string]string
	if cfg.Preset != "" {
		var err error
		opts, err = app.LoadPreset(cfg.Preset, cfg.Sim)
		if err != nil {
			log.Fatal(err)
		}
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(opts)
	sim.Reset(cfg.Seed)

	start := time.Now()
	for i := 0; i < *steps; i++ {
		sim.Step()
	}
	elapsed := time.Since(start)

	lit := 0
	sim.WithImage(func(pix []byte) {
		for i := 0; i < len(pix); i += 4 {
			if pix[i] != 0 || pix[i+1] != 0 || pix[i+2] != 0 {
				lit++
			}
		}
	})

	size := sim.Size()
	fmt.Printf("%s %dx%d: %d steps in %v (%.3f ms/step), %d lit pixels\n",
		sim.Name(), size.W, size.H, *steps, elapsed.Round(time.Millisecond),
		float64(elapsed.Microseconds())/1000/float64(*steps), lit)
}
