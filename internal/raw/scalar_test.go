package raw

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestScalarJSON(t *testing.T) {
	t.Parallel()

	tests := map[string]Scalar{
		`{"v": "1.8.0_292"}`: "1.8.0_292",
		`{"v": 1.0}`:         "1.0",
		`{"v": 17}`:          "17",
		`{"v": null}`:        "",
	}
	for doc, want := range tests {
		var out struct {
			V Scalar `json:"v"`
		}
		if err := json.Unmarshal([]byte(doc), &out); err != nil {
			t.Fatalf("%s: unexpected error: %v", doc, err)
		}
		if out.V != want {
			t.Fatalf("%s: expected %q, got %q", doc, want, out.V)
		}
	}

	var out struct {
		V Scalar `json:"v"`
	}
	if err := json.Unmarshal([]byte(`{"v": [1]}`), &out); err == nil {
		t.Fatalf("expected error for a list value")
	}
}

func TestScalarYAML(t *testing.T) {
	t.Parallel()

	var out struct {
		A Scalar `yaml:"a"`
		B Scalar `yaml:"b"`
		C Scalar `yaml:"c"`
	}
	if err := yaml.Unmarshal([]byte("a: 1.0\nb: 11\nc: ~\n"), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.A != "1.0" || out.B != "11" || out.C != "" {
		t.Fatalf("expected literal scalars, got %+v", out)
	}
	if err := yaml.Unmarshal([]byte("a: [1]\n"), &out); err == nil {
		t.Fatalf("expected error for a sequence value")
	}
}
