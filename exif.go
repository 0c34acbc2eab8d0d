package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// exifTimeLayout is the EXIF date/time format, in Go's reference time.
const exifTimeLayout = "2006:01:02 15:04:05"

// =============================================================================
// Data Types
// =============================================================================

// ImageRecord is one row of the inventory.
// Filename and FullPath are always set; the metadata fields are empty when
// the file carries no readable EXIF value for them.
type ImageRecord struct {
	Filename    string
	FolderName  string // Immediate parent directory name
	FullPath    string
	DateTaken   string // EXIF capture date, YYYY:MM:DD HH:MM:SS
	CameraMake  string
	CameraModel string
	Software    string
}

// exifTags holds the EXIF fields a record is built from, keyed by field
// name. Absent fields are not in the map.
type exifTags map[exif.FieldName]string

// recordFields lists the EXIF fields read from every image.
var recordFields = []exif.FieldName{
	exif.DateTimeOriginal,
	exif.DateTimeDigitized,
	exif.DateTime,
	exif.Make,
	exif.Model,
	exif.Software,
}

// dateFields lists the EXIF fields DateTaken may come from, most preferred
// first.
var dateFields = []exif.FieldName{
	exif.DateTimeOriginal,  // Shutter press
	exif.DateTimeDigitized, // Written to storage
	exif.DateTime,          // Last modification
}

// errNoExif is returned when a file decodes but has none of recordFields.
var errNoExif = errors.New("no EXIF fields found")

// =============================================================================
// EXIF Extraction
// =============================================================================

// readExifTags opens path and returns the recordFields it carries.
// Any failure (unreadable file, unsupported format, missing or corrupt EXIF)
// is returned as an error with a nil map. A decode that fails only in an
// optional sub-directory such as GPS keeps the fields that were read.
func readExifTags(path string) (exifTags, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	x, err := decodeExif(f)
	if err != nil {
		return nil, err
	}

	tags := make(exifTags)
	for _, name := range recordFields {
		tag, err := x.Get(name)
		if err != nil {
			continue // Field not present
		}
		val, ok := tagValue(name, tag)
		if !ok {
			continue
		}
		if s := normalizeValue(val); s != "" {
			tags[name] = s
		}
	}

	if len(tags) == 0 {
		return nil, errNoExif
	}
	return tags, nil
}

// exifDecode is the EXIF decoder used by decodeExif.
var exifDecode = exif.Decode

// decodeExif runs the goexif decoder, converting panics from malformed
// input into errors.
func decodeExif(f *os.File) (x *exif.Exif, err error) {
	defer func() {
		if r := recover(); r != nil {
			x, err = nil, fmt.Errorf("exif: decode panic: %v", r)
		}
	}()

	x, err = exifDecode(f)
	if err != nil && (x == nil || exif.IsCriticalError(err)) {
		return nil, err
	}
	return x, nil
}

// tagValue converts a TIFF tag into a Go value for normalizeValue:
// ASCII tags become strings (or time.Time for parseable date fields),
// UNDEFINED tags stay raw bytes, and numeric tags use their string form.
func tagValue(name exif.FieldName, tag *tiff.Tag) (any, bool) {
	switch tag.Format() {
	case tiff.StringVal:
		s, err := tag.StringVal()
		if err != nil {
			return nil, false
		}
		if isDateField(name) {
			if t, err := time.Parse(exifTimeLayout, strings.TrimSpace(s)); err == nil {
				return t, true
			}
		}
		return s, true
	case tiff.UndefVal:
		return tag.Val, true
	default:
		return tag.String(), true
	}
}

// normalizeValue renders an EXIF value as trimmed text.
// Byte slices are decoded as UTF-8 with invalid sequences replaced, and
// times are formatted in EXIF layout.
func normalizeValue(v any) string {
	var s string
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		s = strings.ToValidUTF8(string(val), string(utf8.RuneError))
		s = strings.TrimRight(s, "\x00")
	case time.Time:
		return val.Format(exifTimeLayout)
	case string:
		s = strings.ToValidUTF8(val, string(utf8.RuneError))
	case fmt.Stringer:
		s = val.String()
	default:
		s = fmt.Sprint(val)
	}
	return strings.TrimSpace(s)
}

func isDateField(name exif.FieldName) bool {
	for _, f := range dateFields {
		if f == name {
			return true
		}
	}
	return false
}

// dateTaken returns the best available capture date.
// Priority:
//  1. DateTimeOriginal
//  2. DateTimeDigitized
//  3. DateTime
//  4. Empty string
func (t exifTags) dateTaken() string {
	for _, name := range dateFields {
		if v := t[name]; v != "" {
			return v
		}
	}
	return ""
}

// =============================================================================
// Record Building
// =============================================================================

// newImageRecord builds the record for f from its EXIF tags.
// tags may be nil, in which case only the path fields are set.
func newImageRecord(f imageFile, tags exifTags) ImageRecord {
	return ImageRecord{
		Filename:    f.Name,
		FolderName:  folderName(f.Dir),
		FullPath:    f.Path(),
		DateTaken:   tags.dateTaken(),
		CameraMake:  tags[exif.Make],
		CameraModel: tags[exif.Model],
		Software:    tags[exif.Software],
	}
}
