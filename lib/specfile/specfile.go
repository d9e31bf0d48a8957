// Package specfile loads a structure from a user-provided yaml or json
// file, for scaffolding layouts other than the built-in one.
package specfile

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/rms-studio/scaffold/lib/model"
)

type fileStructure struct {
	Categories []fileCategory `yaml:"categories" json:"categories"`
	Extras     []string       `yaml:"extras" json:"extras"`
}

type fileCategory struct {
	Name   string      `yaml:"name" json:"name"`
	Groups []fileGroup `yaml:"groups" json:"groups"`
}

type fileGroup struct {
	Dir   string   `yaml:"dir" json:"dir"`
	Files []string `yaml:"files" json:"files"`
}

// Load reads a structure from a .yaml, .yml or .json file. Unlike the
// built-in layout, these come from outside the trust boundary, so paths
// are validated: relative, slash-separated, no ".." segments.
func Load(file string) (*model.Structure, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "reading structure file %v", file)
	}

	var fs fileStructure
	switch {
	case strings.HasSuffix(file, ".yaml"), strings.HasSuffix(file, ".yml"):
		err = yaml.Unmarshal(data, &fs)

	case strings.HasSuffix(file, ".json"):
		err = json.Unmarshal(data, &fs)

	default:
		return nil, errors.Errorf("unknown structure file type: %v", file)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parsing structure file %v", file)
	}

	return toStructure(&fs)
}

func toStructure(fs *fileStructure) (*model.Structure, error) {
	result := &model.Structure{}

	for _, c := range fs.Categories {
		category := model.Category{Name: c.Name}

		for _, g := range c.Groups {
			if err := validatePath(g.Dir); err != nil {
				return nil, err
			}

			for _, f := range g.Files {
				if err := validateName(f); err != nil {
					return nil, err
				}
			}

			category.Groups = append(category.Groups, model.Group{Dir: g.Dir, Files: g.Files})
		}

		result.Categories = append(result.Categories, category)
	}

	for _, e := range fs.Extras {
		if err := validatePath(e); err != nil {
			return nil, err
		}

		result.Extras = append(result.Extras, e)
	}

	return result, nil
}

func validatePath(p string) error {
	if p == "" {
		return errors.New("empty path in structure file")
	}
	if strings.HasPrefix(p, "/") || strings.Contains(p, "\\") {
		return errors.Errorf("path must be relative and slash-separated: %v", p)
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return errors.Errorf("path must not escape the root: %v", p)
		}
		if seg == "" {
			return errors.Errorf("path has an empty segment: %v", p)
		}
	}
	return nil
}

func validateName(f string) error {
	if f == "" {
		return errors.New("empty file name in structure file")
	}
	if strings.ContainsAny(f, "/\\") {
		return errors.Errorf("file name must be a single path segment: %v", f)
	}
	if f == ".." || f == "." {
		return errors.Errorf("invalid file name: %v", f)
	}
	return nil
}
