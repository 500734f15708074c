// ABOUTME: Entry point for the stu file previewer
// ABOUTME: Handles command-line parsing, profiling, and routing to TUI or plain mode

// Package main provides the entry point for stu, a terminal file previewer
// with scrolling, word wrap, and line numbers.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/mrllama123/stu/config"
	"github.com/mrllama123/stu/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile := flag.String("memprofile", "", "write memory profile to file")
	plain := flag.Bool("plain", false, "print the preview to stdout and exit")
	width := flag.Int("width", 80, "output width for plain mode")
	wrap := flag.Bool("wrap", true, "wrap long lines")
	number := flag.Bool("number", true, "show line numbers")
	debug := flag.Bool("debug", false, "enable debug logging to stu-debug.log")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Println("Usage: stu [flags] <file>")
		fmt.Println("Example: stu /var/log/syslog")
		fmt.Println("\nFlags:")
		flag.PrintDefaults()

		return 1
	}

	path := args[0]

	if *cpuprofile != "" {
		stopCPUProfile := setupCPUProfile(*cpuprofile)
		defer stopCPUProfile()
	}

	if *memprofile != "" {
		defer writeMemoryProfile(*memprofile)
	}

	if *debug {
		if err := SetupDebugLog("stu-debug.log"); err != nil {
			log.Printf("Failed to setup debug log: %v", err)

			return 1
		}
	}

	configPath := config.GetConfigPath()
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		debugf("[CONFIG] %v, using defaults", err)
	}

	// Command-line toggles override the config file only when given
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "wrap":
			cfg.Wrap = *wrap
		case "number":
			cfg.Number = *number
		}
	})

	if *plain {
		if err := RunPlain(os.Stdout, path, cfg, *width); err != nil {
			log.Printf("Error: %v", err)

			return 1
		}

		return 0
	}

	shared := &config.SharedConfig{}
	shared.Update(cfg)

	deps := tui.Deps{
		Loader: contentLoader{},
		Store:  configStore{path: configPath},
		Shared: shared,
		Debugf: debugf,
	}

	if err := tui.Run(tui.Options{Path: path, DebugLog: *debug}, deps); err != nil {
		log.Printf("Error: %v", err)

		return 1
	}

	return 0
}

// setupCPUProfile starts CPU profiling, returns cleanup function
func setupCPUProfile(filename string) func() {
	f, err := os.Create(filename)
	if err != nil {
		log.Fatalf("could not create CPU profile: %v", err)
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		log.Fatalf("could not start CPU profile: %v", err)
	}

	return func() {
		pprof.StopCPUProfile()

		if err := f.Close(); err != nil {
			log.Printf("Warning: failed to close CPU profile: %v", err)
		}
	}
}

// writeMemoryProfile writes memory profile to file
func writeMemoryProfile(filename string) {
	f, err := os.Create(filename)
	if err != nil {
		log.Printf("could not create memory profile: %v", err)

		return
	}

	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Warning: failed to close memory profile: %v", err)
		}
	}()

	runtime.GC()

	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Printf("could not write memory profile: %v", err)
	}
}
