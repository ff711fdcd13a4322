// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var metaExts = []string{".yaml", ".yml", ".json", ".toml"}

type Type int

const (
	TypeTemplate Type = iota
	TypeMeta
)

type File struct {
	src     Source
	relPath string
}

// NewFiles expands a mix of file paths, directory paths and "-" (stdin)
// into loadable files. Directory walks are sorted so registration order is
// stable across platforms.
func NewFiles(paths []string, recursive bool) ([]*File, error) {
	var fileSrcs []Source

	for _, path := range paths {
		switch {
		case path == "-":
			fileSrcs = append(fileSrcs, NewStdinSource())

		case strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://"):
			fileSrcs = append(fileSrcs, NewHTTPSource(path))

		default:
			fileInfo, err := os.Stat(path)
			if err != nil {
				return nil, fmt.Errorf("Checking file '%s'", path)
			}

			if fileInfo.IsDir() {
				if !recursive {
					return nil, fmt.Errorf("Expected file '%s' to not be a directory", path)
				}

				var selectedPaths []string

				err := filepath.Walk(path, func(walkedPath string, fi os.FileInfo, err error) error {
					if err != nil || fi.IsDir() {
						return err
					}
					selectedPaths = append(selectedPaths, walkedPath)
					return nil
				})
				if err != nil {
					return nil, fmt.Errorf("Listing files '%s'", path)
				}

				sort.Strings(selectedPaths)

				for _, selectedPath := range selectedPaths {
					fileSrcs = append(fileSrcs, NewLocalSource(selectedPath, path))
				}
			} else {
				fileSrcs = append(fileSrcs, NewLocalSource(path, ""))
			}
		}
	}

	var files []*File

	for _, fileSrc := range fileSrcs {
		file, err := NewFileFromSource(fileSrc)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, nil
}

func NewFileFromSource(fileSrc Source) (*File, error) {
	relPath, err := fileSrc.RelativePath()
	if err != nil {
		return nil, fmt.Errorf("Calculating relative path for '%s': %s", fileSrc, err)
	}

	return &File{src: fileSrc, relPath: relPath}, nil
}

func MustNewFileFromSource(fileSrc Source) *File {
	file, err := NewFileFromSource(fileSrc)
	if err != nil {
		panic(err)
	}
	return file
}

func (r *File) Description() string    { return r.src.Description() }
func (r *File) RelativePath() string   { return r.relPath }
func (r *File) Bytes() ([]byte, error) { return r.src.Bytes() }

// Type distinguishes directory metadata descriptors from template bodies.
func (r *File) Type() Type {
	if r.matchesExt(metaExts) {
		return TypeMeta
	}
	return TypeTemplate
}

func (r *File) matchesExt(exts []string) bool {
	filename := strings.ToLower(filepath.Base(r.RelativePath()))
	for _, ext := range exts {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}
