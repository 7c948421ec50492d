package feeds

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Definition struct {
	Identifier string `yaml:"identifier"`
	Name       string `yaml:"name"`

	// Path is the feed directory, relative to the source root.
	Path string `yaml:"path"`

	// FieldAliases maps this agency's raw column names onto the canonical
	// ones, e.g. "stop_latitude: stop_lat".
	FieldAliases map[string]string `yaml:"field_aliases"`

	// RailOnly marks agencies whose entire network is rail, e.g. a commuter
	// rail operator publishing its stations as plain stops.
	RailOnly bool `yaml:"rail_only"`

	// RailRule is an optional boolean expression evaluated per stop to decide
	// rail classification; see classifier.RuleEnv for the available fields.
	RailRule string `yaml:"rail_rule"`
}

// LoadDefinitions walks a directory of YAML feed definitions, one or more
// documents per file.
func LoadDefinitions(dir string) ([]Definition, error) {
	var definitions []Definition

	err := filepath.Walk(dir,
		func(path string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if fileInfo.IsDir() {
				return nil
			}

			extension := filepath.Ext(path)
			if extension != ".yaml" && extension != ".yml" {
				return nil
			}

			log.Debug().Str("path", path).Msg("Loading feed definitions file")

			definitionYaml, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			decoder := yaml.NewDecoder(bytes.NewReader(definitionYaml))

			for {
				var definition Definition
				if decoder.Decode(&definition) != nil {
					break
				}

				if definition.Identifier == "" {
					return fmt.Errorf("feed definition in %s has no identifier", path)
				}

				definitions = append(definitions, definition)
			}

			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to load feed definitions: %w", err)
	}

	if len(definitions) == 0 {
		return nil, fmt.Errorf("no feed definitions found in %s", dir)
	}

	return definitions, nil
}
