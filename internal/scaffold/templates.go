package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

//go:embed templates
var templateFS embed.FS

const (
	// manifestName is the per-template manifest carrying description,
	// version, and ignore globs. It is never copied into projects.
	manifestName = "template.yaml"
	// filesDir is the subdirectory holding the template's file tree.
	filesDir = "files"
)

// Template describes one available project template.
type Template struct {
	Name        string   `yaml:"-"`
	Description string   `yaml:"description"`
	Version     string   `yaml:"version"`
	// Ignore lists doublestar globs for paths that are never copied
	// (editor droppings, caches).
	Ignore []string `yaml:"ignore"`
}

// ListTemplates returns all available templates sorted by name: the embedded
// ones plus any under userDir (a directory of template directories). A user
// template shadows an embedded template with the same name.
func ListTemplates(userDir string) ([]Template, error) {
	byName := map[string]Template{}

	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("reading embedded templates: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		sub, err := fs.Sub(templateFS, "templates/"+entry.Name())
		if err != nil {
			return nil, err
		}
		tmpl, err := loadManifest(sub, entry.Name())
		if err != nil {
			return nil, err
		}
		byName[entry.Name()] = tmpl
	}

	if userDir != "" {
		entries, err := os.ReadDir(userDir)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading templates directory %s: %w", userDir, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			tmpl, err := loadManifest(os.DirFS(filepath.Join(userDir, entry.Name())), entry.Name())
			if err != nil {
				return nil, err
			}
			byName[entry.Name()] = tmpl
		}
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	templates := make([]Template, 0, len(names))
	for _, name := range names {
		templates = append(templates, byName[name])
	}
	return templates, nil
}

// Apply copies the named template's file tree into root. Existing files are
// skipped unless force is set. User templates under userDir take precedence
// over embedded ones.
func Apply(root, name string, force bool, userDir string) (*Result, error) {
	src, tmpl, err := openTemplate(name, userDir)
	if err != nil {
		return nil, err
	}

	files, err := fs.Sub(src, filesDir)
	if err != nil {
		return nil, fmt.Errorf("template %s has no %s directory: %w", name, filesDir, err)
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating project root: %w", err)
	}

	result := &Result{}
	err = fs.WalkDir(files, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == "." {
			return nil
		}
		ignored, err := matchesAny(tmpl.Ignore, path)
		if err != nil {
			return err
		}
		if ignored {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		target := filepath.Join(root, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		content, err := fs.ReadFile(files, path)
		if err != nil {
			return fmt.Errorf("reading template file %s: %w", path, err)
		}
		written, err := writeFile(target, content, force)
		if err != nil {
			return err
		}
		result.record(path, written)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// openTemplate resolves the named template, preferring userDir.
func openTemplate(name, userDir string) (fs.FS, *Template, error) {
	if userDir != "" {
		dir := filepath.Join(userDir, name)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			src := os.DirFS(dir)
			tmpl, err := loadManifest(src, name)
			if err != nil {
				return nil, nil, err
			}
			return src, &tmpl, nil
		}
	}

	if _, err := templateFS.ReadDir("templates/" + name); err != nil {
		return nil, nil, fmt.Errorf("template %q was not found", name)
	}
	src, err := fs.Sub(templateFS, "templates/"+name)
	if err != nil {
		return nil, nil, err
	}
	tmpl, err := loadManifest(src, name)
	if err != nil {
		return nil, nil, err
	}
	return src, &tmpl, nil
}

// loadManifest reads a template's manifest. A missing manifest yields a
// template with defaults.
func loadManifest(src fs.FS, name string) (Template, error) {
	tmpl := Template{Name: name, Description: "No description", Version: "0.0.0"}
	data, err := fs.ReadFile(src, manifestName)
	if err != nil {
		if os.IsNotExist(err) {
			return tmpl, nil
		}
		return tmpl, fmt.Errorf("reading manifest for template %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return tmpl, fmt.Errorf("parsing manifest for template %s: %w", name, err)
	}
	tmpl.Name = name
	return tmpl, nil
}

// matchesAny reports whether path matches any of the doublestar globs.
func matchesAny(globs []string, path string) (bool, error) {
	for _, glob := range globs {
		ok, err := doublestar.Match(glob, path)
		if err != nil {
			return false, fmt.Errorf("invalid ignore pattern %q: %w", glob, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
