// Photo Metadata - A tool to inventory photo metadata into a CSV file
//
// This tool walks a folder tree for image files, reads a few EXIF fields from
// each one, and writes a flat CSV listing every image with its parent folder,
// capture date, camera make/model and software.
//
// Features:
//   - Recursive scan of JPEG, PNG, TIFF and HEIC/HEIF files
//   - Capture date from DateTimeOriginal, DateTimeDigitized or DateTime
//   - Files without readable EXIF are still listed, with empty fields
//   - Summary table of how much metadata was found
//
// Usage:
//
//	photo-metadata                      # Scan the current directory
//	photo-metadata --root /path         # Scan a specific folder
//	photo-metadata -r /path -o out.csv  # Custom report filename
//
// The report is written to <root>/image_metadata_with_folders.csv unless
// --output names another file.
//
// Exit codes: 0 success, 1 invalid root or write failure, 2 usage error,
// 3 no images found.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// Process exit codes.
const (
	exitOK       = 0
	exitError    = 1
	exitUsage    = 2
	exitNoImages = 3
)

// =============================================================================
// Core Scan Logic
// =============================================================================

// scanImages walks root and builds one record per matched image, in
// discovery order. A progress line is printed to out for each file.
// Only an invalid root is returned as an error; per-file metadata failures
// yield records with empty metadata fields.
func scanImages(root string, out io.Writer, verbose bool) ([]ImageRecord, error) {
	var records []ImageRecord

	err := walkImages(root, func(f imageFile) error {
		fmt.Fprintf(out, "Processing: %s (in folder: %s)\n", f.Name, folderName(f.Dir))

		tags, err := readExifTags(f.Path())
		if err != nil {
			if verbose {
				fmt.Fprintf(out, "  - no metadata: %v\n", err)
			}
			tags = nil
		}

		records = append(records, newImageRecord(f, tags))
		return nil
	})

	return records, err
}

// run executes one scan and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, "Error:", err)
		return exitUsage
	}

	// Validate the root before the banner; walkImages checks it again
	// because it is also called on its own
	if err := checkRoot(cfg.Root); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitError
	}

	// Print banner
	fmt.Fprintln(stdout, strings.Repeat("=", 50))
	fmt.Fprintln(stdout, "Photo Metadata")
	fmt.Fprintln(stdout, strings.Repeat("=", 50))
	fmt.Fprintf(stdout, "Scanning folder and subfolders: %s\n\n", cfg.Root)

	records, err := scanImages(cfg.Root, stdout, cfg.Verbose)
	if err != nil {
		fmt.Fprintln(stderr, "Error scanning folder:", err)
		return exitError
	}

	outPath := cfg.OutputPath()
	if err := writeReport(outPath, records); err != nil {
		if errors.Is(err, errNoImages) {
			fmt.Fprintln(stdout, "No images found in the specified folder or its subfolders.")
			return exitNoImages
		}
		fmt.Fprintf(stderr, "Error writing report %s: %v\n", outPath, err)
		return exitError
	}

	fmt.Fprintf(stdout, "\nMetadata for %d images saved to: %s\n\n", len(records), outPath)
	printSummary(stdout, records)

	return exitOK
}

// =============================================================================
// Main Entry Point
// =============================================================================

func main() {
	loadDotEnv()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
