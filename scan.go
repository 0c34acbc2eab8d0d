package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// =============================================================================
// Supported File Types
// =============================================================================

// imageExts contains the image extensions that are inventoried.
// Matching is case-insensitive; keys are lowercase with the leading dot.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".tif":  true,
	".tiff": true,
	".heic": true,
	".heif": true,
}

// errRootNotDir is returned when the scan root is missing or not a directory.
var errRootNotDir = errors.New("root is not an existing directory")

// imageFile is one matched file found by the walker.
type imageFile struct {
	Dir  string // Directory containing the file, as reached from the root
	Name string // Base filename
}

// Path returns the full path of the file.
func (f imageFile) Path() string {
	return filepath.Join(f.Dir, f.Name)
}

// =============================================================================
// File Type Detection
// =============================================================================

// isImageFile returns true if the filename has a supported image extension.
func isImageFile(name string) bool {
	return imageExts[strings.ToLower(filepath.Ext(name))]
}

// =============================================================================
// File Discovery
// =============================================================================

// checkRoot verifies that root exists and is a directory.
func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s does not exist", errRootNotDir, root)
		}
		return fmt.Errorf("%w: %v", errRootNotDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is a file", errRootNotDir, root)
	}
	return nil
}

// walkImages calls fn for every regular file under root with a supported
// image extension, in the order the filesystem returns them.
// Unreadable subdirectories are skipped. An error returned by fn stops the
// walk and is returned.
func walkImages(root string, fn func(imageFile) error) error {
	if err := checkRoot(root); err != nil {
		return err
	}

	// A trailing separator makes WalkDir descend into a symlinked root
	start := root
	if info, err := os.Lstat(root); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		start = root + string(filepath.Separator)
	}

	return filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == start {
				return err
			}
			return nil // Skip errors, continue walking
		}

		if d.IsDir() {
			return nil
		}

		// Follow file symlinks, but never into directories
		if d.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}

		if !isImageFile(d.Name()) {
			return nil
		}

		return fn(imageFile{Dir: filepath.Dir(path), Name: d.Name()})
	})
}

// folderName returns the immediate parent folder name for a file in dir.
// Files directly under the root get the root's own base name; a root given
// as "." is resolved against the working directory first. A filesystem
// root has no name and yields "".
func folderName(dir string) string {
	name := filepath.Base(dir)
	if name == "." {
		if abs, err := filepath.Abs(dir); err == nil {
			name = filepath.Base(abs)
		}
	}
	if name == string(filepath.Separator) {
		return ""
	}
	return name
}
