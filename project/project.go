// Package project locates the Riva source files belonging to a project.
//
// A project is described by an optional riva.yaml manifest listing source
// files and directories. Without a manifest the project root itself is
// scanned for .riva files.
package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const ManifestName = "riva.yaml"

// SourceExt is the file extension of Riva source files.
const SourceExt = ".riva"

type Project struct {
	Name    string   `yaml:"name"`
	Sources []string `yaml:"sources"`

	rootDir string
}

func (p *Project) RootDir() string {
	return p.rootDir
}

// Load loads the project rooted in the current directory.
func Load() (*Project, error) {
	return LoadFrom(".")
}

// LoadFrom loads the project rooted in rootDir. A missing manifest is
// not an error: the resulting project scans the root directory itself.
func LoadFrom(rootDir string) (*Project, error) {
	proj := &Project{rootDir: rootDir}

	data, err := os.ReadFile(filepath.Join(rootDir, ManifestName))
	if err != nil {
		if os.IsNotExist(err) {
			proj.Sources = []string{"."}
			return proj, nil
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	if err := yaml.Unmarshal(data, proj); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ManifestName, err)
	}
	if len(proj.Sources) == 0 {
		proj.Sources = []string{"."}
	}
	return proj, nil
}

// SourceFiles resolves the manifest's source entries to an ordered,
// de-duplicated list of .riva files. Directory entries are walked
// recursively; file entries are taken as-is.
func (p *Project) SourceFiles() ([]string, error) {
	seen := map[string]bool{}
	var files []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, source := range p.Sources {
		path := source
		if !filepath.IsAbs(path) {
			path = filepath.Join(p.rootDir, source)
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", source, err)
		}

		if !info.IsDir() {
			add(path)
			continue
		}

		err = filepath.WalkDir(path, func(entry string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(entry, SourceExt) {
				add(entry)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan %q: %w", source, err)
		}
	}

	sort.Strings(files)
	return files, nil
}
