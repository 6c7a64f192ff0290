package levels

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFile reads level descriptors from path. The format is chosen by
// extension: .yaml, .yml and .json are decoded as YAML, .toml as TOML.
// A file holds either one descriptor or a list of them.
func LoadFile(path string) ([]Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}

	var out []Descriptor
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml", ".json":
		out, err = decodeYAML(data)
	case ".toml":
		out, err = decodeTOML(data)
	default:
		return nil, fmt.Errorf("levels: %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("levels: parse %s: %w", path, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("levels: %s: no levels found", path)
	}
	return out, nil
}

func decodeYAML(data []byte) ([]Descriptor, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var list []Descriptor
		if err := root.Decode(&list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var d Descriptor
	if err := root.Decode(&d); err != nil {
		return nil, err
	}
	return []Descriptor{d}, nil
}

// tomlFile accepts either [[levels]] tables or a single descriptor at the top level.
type tomlFile struct {
	Levels []Descriptor `toml:"levels"`
	Descriptor
}

func decodeTOML(data []byte) ([]Descriptor, error) {
	var f tomlFile
	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f); err != nil {
		return nil, err
	}
	if len(f.Levels) > 0 {
		return f.Levels, nil
	}
	if len(f.Bubbles) == 0 && f.Level == 0 {
		return nil, nil
	}
	return []Descriptor{f.Descriptor}, nil
}

// Encode renders a descriptor as YAML in the authoring format.
func Encode(d Descriptor) ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("levels: encode level %d: %w", d.Level, err)
	}
	return data, nil
}
