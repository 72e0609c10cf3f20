package convert

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"carousel3d/internal/utils"
)

// PkgEntry is one file stored in a Wallpaper Engine scene.pkg.
type PkgEntry struct {
	Name   string
	Offset uint32
	Size   uint32
}

// Pkg is an opened package: its directory plus the offset where file data
// begins.
type Pkg struct {
	Version   string
	Entries   []PkgEntry
	dataStart int64
	r         io.ReadSeeker
}

const maxPkgString = 1 << 16

func readPkgString(r io.Reader) (string, error) {
	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return "", err
	}
	if size > maxPkgString {
		return "", fmt.Errorf("convert: package string of %d bytes", size)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// ReadPkg parses the package directory from r.
func ReadPkg(r io.ReadSeeker) (*Pkg, error) {
	version, err := readPkgString(r)
	if err != nil {
		return nil, fmt.Errorf("convert: package version: %w", err)
	}
	if !strings.HasPrefix(version, "PKGV") {
		return nil, fmt.Errorf("convert: not a package (version %q)", version)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("convert: package file count: %w", err)
	}
	log.Debug("Package %s holds %d files", version, count)

	entries := make([]PkgEntry, 0, min(count, 4096))
	for i := uint32(0); i < count; i++ {
		name, err := readPkgString(r)
		if err != nil {
			return nil, fmt.Errorf("convert: package entry %d: %w", i, err)
		}
		var span [2]uint32
		if err := binary.Read(r, binary.LittleEndian, &span); err != nil {
			return nil, fmt.Errorf("convert: package entry %s: %w", name, err)
		}
		entries = append(entries, PkgEntry{Name: name, Offset: span[0], Size: span[1]})
	}

	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	return &Pkg{Version: version, Entries: entries, dataStart: start, r: r}, nil
}

// Open returns a reader over the contents of e.
func (p *Pkg) Open(e PkgEntry) (io.Reader, error) {
	if _, err := p.r.Seek(p.dataStart+int64(e.Offset), io.SeekStart); err != nil {
		return nil, err
	}
	return io.LimitReader(p.r, int64(e.Size)), nil
}

// Images lists the entries that look like decodable images, in package order.
func (p *Pkg) Images() []PkgEntry {
	var out []PkgEntry
	for _, e := range p.Entries {
		if utils.IsImageFile(e.Name) {
			out = append(out, e)
		}
	}
	return out
}

// ExtractPkgImages writes every image stored in the package at pkgPath under
// outputDir, keeping the package's relative paths, and returns the written
// paths. Files already present with the right size are reused.
func ExtractPkgImages(pkgPath, outputDir string) ([]string, error) {
	f, err := os.Open(pkgPath)
	if err != nil {
		return nil, fmt.Errorf("convert: open %s: %w", pkgPath, err)
	}
	defer f.Close()

	pkg, err := ReadPkg(f)
	if err != nil {
		return nil, fmt.Errorf("convert: read %s: %w", pkgPath, err)
	}

	images := pkg.Images()
	paths := make([]string, 0, len(images))
	for i, e := range images {
		dest, err := safeJoin(outputDir, e.Name)
		if err != nil {
			log.Warn("Skipping package entry %s: %v", e.Name, err)
			continue
		}
		if st, err := os.Stat(dest); err == nil && st.Size() == int64(e.Size) {
			paths = append(paths, dest)
			continue
		}
		if i%10 == 0 || i == len(images)-1 {
			log.Debug("Extracting image %d/%d: %s", i+1, len(images), e.Name)
		}
		if err := extractEntry(pkg, e, dest); err != nil {
			return paths, fmt.Errorf("convert: extract %s: %w", e.Name, err)
		}
		paths = append(paths, dest)
	}

	log.Info("Extracted %d images from %s", len(paths), pkgPath)
	return paths, nil
}

func extractEntry(pkg *Pkg, e PkgEntry, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	src, err := pkg.Open(e)
	if err != nil {
		return err
	}
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	_, err = io.Copy(out, src)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}

// safeJoin keeps package entry names from escaping root.
func safeJoin(root, name string) (string, error) {
	clean := filepath.Clean("/" + filepath.FromSlash(name))
	if clean == string(filepath.Separator) {
		return "", fmt.Errorf("empty entry name")
	}
	return filepath.Join(root, clean), nil
}
