package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/releasecfg/internal/raw"
)

// Load reads the document at path, choosing the decoder by extension.
func Load(path string) (*raw.Tree, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read release configuration %s: %w", path, err)
	}
	tree, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

// Parse decodes an in-memory document. An empty document yields an empty
// tree.
func Parse(data []byte, format Format) (*raw.Tree, error) {
	switch format {
	case FormatYAML:
		return parseYAML(data)
	case FormatJSON:
		return parseJSON(data)
	case FormatTOML:
		return parseTOML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func parseYAML(data []byte) (*raw.Tree, error) {
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if generic == nil {
		return &raw.Tree{}, nil
	}
	if err := checkStructure(generic); err != nil {
		return nil, err
	}

	var tree raw.Tree
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return &tree, nil
}

func parseJSON(data []byte) (*raw.Tree, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return &raw.Tree{}, nil
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if generic == nil {
		return &raw.Tree{}, nil
	}
	if err := checkStructure(generic); err != nil {
		return nil, err
	}

	var tree raw.Tree
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return &tree, nil
}

// parseTOML re-encodes the document as JSON before typed decoding; TOML
// tables carry no key order, so property maps come out sorted by key.
func parseTOML(data []byte) (*raw.Tree, error) {
	generic := map[string]any{}
	if err := toml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(generic) == 0 {
		return &raw.Tree{}, nil
	}
	if err := checkStructure(generic); err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(tomlFloatLiterals(generic))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	var tree raw.Tree
	if err := json.Unmarshal(encoded, &tree); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return &tree, nil
}

// tomlFloatLiterals rewrites finite floats as JSON number literals that keep
// a fractional part, so `version = 1.0` decodes as "1.0" rather than "1".
func tomlFloatLiterals(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = tomlFloatLiterals(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = tomlFloatLiterals(e)
		}
		return t
	case float64:
		if math.IsInf(t, 0) || math.IsNaN(t) {
			return t
		}
		s := strconv.FormatFloat(t, 'f', -1, 64)
		if t == math.Trunc(t) {
			s += ".0"
		}
		return json.Number(s)
	default:
		return v
	}
}
