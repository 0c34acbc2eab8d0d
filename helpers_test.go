package main

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// TIFF tag IDs and types used by the fixtures.
const (
	tagMake              = 0x010F
	tagModel             = 0x0110
	tagSoftware          = 0x0131
	tagDateTime          = 0x0132
	tagExifIFDPointer    = 0x8769
	tagDateTimeOriginal  = 0x9003
	tagDateTimeDigitized = 0x9004

	typeASCII     = 2
	typeLong      = 4
	typeUndefined = 7
)

// tiffEntry is one IFD entry in a test fixture.
type tiffEntry struct {
	tag  uint16
	typ  uint16
	data []byte
}

func ascii(tag uint16, s string) tiffEntry {
	return tiffEntry{tag: tag, typ: typeASCII, data: append([]byte(s), 0)}
}

func undefined(tag uint16, b []byte) tiffEntry {
	return tiffEntry{tag: tag, typ: typeUndefined, data: b}
}

// buildTIFF returns a little-endian TIFF stream with ifd0 as the main
// directory and, when sub is non-empty, an Exif sub-IFD linked from it.
func buildTIFF(ifd0, sub []tiffEntry) []byte {
	le := binary.LittleEndian

	dir0 := append([]tiffEntry(nil), ifd0...)
	if len(sub) > 0 {
		dir0 = append(dir0, tiffEntry{tag: tagExifIFDPointer, typ: typeLong})
	}

	subOff := 8 + 2 + 12*len(dir0) + 4
	dataOff := subOff
	if len(sub) > 0 {
		dataOff += 2 + 12*len(sub) + 4
	}

	var data []byte
	writeIFD := func(buf []byte, entries []tiffEntry) []byte {
		buf = le.AppendUint16(buf, uint16(len(entries)))
		for _, e := range entries {
			buf = le.AppendUint16(buf, e.tag)
			buf = le.AppendUint16(buf, e.typ)
			if e.tag == tagExifIFDPointer {
				buf = le.AppendUint32(buf, 1)
				buf = le.AppendUint32(buf, uint32(subOff))
				continue
			}
			buf = le.AppendUint32(buf, uint32(len(e.data)))
			if len(e.data) <= 4 {
				inline := make([]byte, 4)
				copy(inline, e.data)
				buf = append(buf, inline...)
			} else {
				buf = le.AppendUint32(buf, uint32(dataOff+len(data)))
				data = append(data, e.data...)
			}
		}
		return le.AppendUint32(buf, 0)
	}

	buf := []byte("II*\x00")
	buf = le.AppendUint32(buf, 8)
	buf = writeIFD(buf, dir0)
	if len(sub) > 0 {
		buf = writeIFD(buf, sub)
	}
	return append(buf, data...)
}

// wrapJPEG embeds a TIFF stream in a minimal JPEG APP1 Exif segment.
func wrapJPEG(tiffData []byte) []byte {
	payload := append([]byte("Exif\x00\x00"), tiffData...)
	buf := []byte{0xFF, 0xD8, 0xFF, 0xE1}
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(payload)+2))
	buf = append(buf, payload...)
	return append(buf, 0xFF, 0xD9)
}

// writeFile creates dir/name (and any parent directories) with data.
func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// touch creates an empty file at dir/name.
func touch(t *testing.T, dir, name string) string {
	t.Helper()
	return writeFile(t, dir, name, nil)
}
