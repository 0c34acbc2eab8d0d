package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// =============================================================================
// Configuration
// =============================================================================

// rootEnvVar names the environment variable consulted when --root is unset.
const rootEnvVar = "PHOTO_METADATA_ROOT"

// config holds the settings for one run.
type config struct {
	Root       string // Directory to scan
	OutputName string // Report filename, relative to Root unless absolute
	Verbose    bool   // Print why metadata was unavailable for a file
}

// OutputPath returns the full report path.
func (c config) OutputPath() string {
	return reportPath(c.Root, c.OutputName)
}

// loadDotEnv loads a .env file from the working directory, if there is one.
// Variables already set in the environment win.
func loadDotEnv() {
	_ = godotenv.Load()
}

// parseConfig parses command-line arguments (without the program name).
// The root comes from --root, then $PHOTO_METADATA_ROOT, then the current
// directory. Usage and parse errors are written to stderr.
func parseConfig(args []string, stderr io.Writer) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("photo-metadata", flag.ContinueOnError)
	fs.SetOutput(stderr)

	rootDir := fs.String("root", "", "Folder to scan recursively (default: $"+rootEnvVar+" or current directory)")
	rootShort := fs.String("r", "", "Folder to scan (short for --root)")
	output := fs.String("output", defaultReportName, "Report filename, written inside the root unless absolute")
	outputShort := fs.String("o", "", "Report filename (short for --output)")
	verbose := fs.Bool("verbose", false, "Show why metadata could not be read for a file")
	verboseShort := fs.Bool("v", false, "Verbose output (short for --verbose)")

	// Custom usage message
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Photo Metadata - Inventory EXIF metadata for a photo folder tree\n\n")
		fmt.Fprintf(stderr, "Usage:\n")
		fmt.Fprintf(stderr, "  photo-metadata [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  photo-metadata                      # Scan the current directory\n")
		fmt.Fprintf(stderr, "  photo-metadata --root ~/Pictures    # Scan a specific folder\n")
		fmt.Fprintf(stderr, "  photo-metadata -r . -o photos.csv   # Custom report filename\n")
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	// Combine short and long flags
	cfg.Root = *rootDir
	if *rootShort != "" {
		cfg.Root = *rootShort
	}
	cfg.OutputName = *output
	if *outputShort != "" {
		cfg.OutputName = *outputShort
	}
	cfg.Verbose = *verbose || *verboseShort

	if cfg.Root == "" {
		cfg.Root = os.Getenv(rootEnvVar)
	}
	if cfg.Root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return cfg, fmt.Errorf("get current directory: %w", err)
		}
		cfg.Root = wd
	}
	cfg.Root = filepath.Clean(cfg.Root)

	return cfg, nil
}
