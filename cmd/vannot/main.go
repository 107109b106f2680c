package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"golang.org/x/sync/errgroup"

	"github.com/mkravtsov/vannot/internal/content"
	"github.com/mkravtsov/vannot/internal/interaction"
	"github.com/mkravtsov/vannot/internal/media"
	"github.com/mkravtsov/vannot/internal/scenario"
	"github.com/mkravtsov/vannot/internal/sched"
	"github.com/mkravtsov/vannot/internal/timeline"
	"github.com/mkravtsov/vannot/internal/ui"
)

func main() {
	inputPtr := flag.String("input", "", "Scenario file, directory, or glob (default: latest file in scenarios/)")
	validatePtr := flag.Bool("validate", false, "Validate scenarios without simulating")
	stepPtr := flag.Float64("step", 1.0, "Simulation tick step in seconds")
	probePtr := flag.Bool("probe", false, "Probe natural dimensions of image content files")
	statsPtr := flag.Bool("stats", false, "Print a resource report after the run")
	verbosePtr := flag.Bool("v", false, "Debug logging")

	flag.Parse()

	level := slog.LevelInfo
	if *verbosePtr {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	paths, err := resolveInputs(*inputPtr)
	if err != nil {
		slog.Error("resolving input", "error", err)
		os.Exit(1)
	}

	start := time.Now()
	failed := 0
	for _, path := range paths {
		if err := runScenario(path, *validatePtr, *probePtr, *stepPtr); err != nil {
			slog.Error("scenario failed", "path", path, "error", err)
			failed++
		}
	}

	if *statsPtr {
		printStats(len(paths), time.Since(start))
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// resolveInputs expands the -input argument into scenario file paths: a glob
// pattern, a directory (latest file wins, matching the input convention of
// the generator tools), a single file, or empty for scenarios/.
func resolveInputs(input string) ([]string, error) {
	if input == "" {
		latest, err := scenario.FindLatest("scenarios")
		if err != nil {
			return nil, fmt.Errorf("no -input given: %w", err)
		}
		fmt.Printf("[*] Selected scenario: %s\n", latest)
		return []string{latest}, nil
	}

	fi, err := os.Stat(input)
	if err == nil && fi.IsDir() {
		latest, err := scenario.FindLatest(input)
		if err != nil {
			return nil, err
		}
		fmt.Printf("[*] Selected scenario: %s\n", latest)
		return []string{latest}, nil
	}
	if err == nil {
		return []string{input}, nil
	}

	matches, err := doublestar.FilepathGlob(input)
	if err != nil {
		return nil, fmt.Errorf("bad glob %q: %w", input, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no scenarios match %q", input)
	}
	return matches, nil
}

func runScenario(path string, validateOnly, probe bool, step float64) error {
	scn, err := scenario.Read(path)
	if err != nil {
		return err
	}
	if err := scn.Validate(); err != nil {
		return err
	}

	if probe {
		if err := probeImages(scn); err != nil {
			return err
		}
	}

	fmt.Printf("--- [SCENARIO: %s] ---\n", path)
	fmt.Printf("[*] Video: %q | Duration: %.2fs | Interactions: %d\n",
		scn.Video.Title, scn.Video.Duration, len(scn.Interactions))

	if validateOnly {
		fmt.Println("[+] Valid")
		return nil
	}

	loop := sched.NewLoop()
	deps := interaction.Deps{
		Sched:  loop,
		Prober: &media.LoopProber{Sched: loop},
		Log:    slog.Default(),
	}

	tl, err := timeline.Build(scn, deps, interaction.Options{})
	if err != nil {
		return err
	}

	track := ui.NewElement(ui.RoleContent, "iv-timeline")
	tl.Dots(track)

	events := tl.Sweep(step)
	for _, ev := range events {
		state := "hide"
		if ev.Shown {
			state = "show"
		}
		pause := ""
		if ev.Pause {
			pause = " [pause]"
		}
		fmt.Printf("[>] %7s  %-4s  #%d %q%s\n",
			content.HumanizeTime(ev.Second), state, ev.Index, ev.Title, pause)
	}
	fmt.Printf("[+] %d events, %d timeline dots\n", len(events), len(track.Children))
	return nil
}

// probeImages fills missing natural dimensions of image interactions from the
// files on disk, a few in parallel.
func probeImages(scn *scenario.Scenario) error {
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for _, spec := range scn.Interactions {
		if spec.Action.Kind() != content.KindImage {
			continue
		}
		file := spec.Action.File
		if file == nil || file.Path == "" || (file.Width > 0 && file.Height > 0) {
			continue
		}
		g.Go(func() error {
			w, h, err := media.Dimensions(file.Path)
			if err != nil {
				return err
			}
			file.Width, file.Height = w, h
			slog.Debug("probed image", "path", file.Path, "width", w, "height", h)
			return nil
		})
	}
	return g.Wait()
}

func printStats(scenarios int, elapsed time.Duration) {
	fmt.Println("--- [RESOURCE REPORT] ---")
	fmt.Printf("Scenarios: %d\n", scenarios)
	fmt.Printf("Total Time: %.2fs\n", elapsed.Seconds())

	if vm, err := mem.VirtualMemory(); err == nil {
		fmt.Printf("Memory Used: %.1f%% (%.1f MB)\n",
			vm.UsedPercent, float64(vm.Used)/1024/1024)
	}
	if cores, err := cpu.Counts(true); err == nil {
		fmt.Printf("Logical CPUs: %d\n", cores)
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	fmt.Printf("Heap Alloc: %.1f MB | GC Cycles: %d\n",
		float64(ms.HeapAlloc)/1024/1024, ms.NumGC)
	fmt.Println("-------------------------")
}
