package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// defaultReportName is the report filename written inside the scanned root.
const defaultReportName = "image_metadata_with_folders.csv"

// errNoImages is returned when a scan matched no image files.
var errNoImages = errors.New("no images found")

// reportHeader is the fixed first row of every report.
var reportHeader = []string{
	"Filename",
	"FolderName",
	"FullPath",
	"DateTaken",
	"CameraMake",
	"CameraModel",
	"Software",
}

// =============================================================================
// Report Writing
// =============================================================================

// reportPath returns where the report for root is written.
// An empty name selects defaultReportName; a relative name is placed inside
// root and an absolute one is used as given.
func reportPath(root, name string) string {
	if name == "" {
		name = defaultReportName
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(root, name)
}

// writeReport writes records to a CSV file at path, replacing any existing
// file. With no records it returns errNoImages and leaves the filesystem
// untouched.
func writeReport(path string, records []ImageRecord) (err error) {
	if len(records) == 0 {
		return errNoImages
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	return writeRecords(f, records)
}

// writeRecords writes the header and one row per record, in order.
func writeRecords(w io.Writer, records []ImageRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(reportHeader); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Filename,
			r.FolderName,
			r.FullPath,
			r.DateTaken,
			r.CameraMake,
			r.CameraModel,
			r.Software,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row for %s: %w", r.FullPath, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
