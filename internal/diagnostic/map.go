package diagnostic

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Entry is one key of a Map.
type Entry struct {
	Key   string
	Value any
}

// Map is an ordered projection. It encodes to JSON, YAML and zap objects
// with its keys in insertion order.
type Map []Entry

// Get returns the value stored under key.
func (m Map) Get(key string) (any, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Len returns the number of entries.
func (m Map) Len() int { return len(m) }

// IsEmpty reports whether m has no entries.
func (m Map) IsEmpty() bool { return len(m) == 0 }

// Keys returns the keys in order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for _, e := range m {
		keys = append(keys, e.Key)
	}
	return keys
}

func (m *Map) add(key string, value any) {
	*m = append(*m, Entry{Key: key, Value: value})
}

// addMap appends child unless it is empty.
func (m *Map) addMap(key string, child Map) {
	if !child.IsEmpty() {
		m.add(key, child)
	}
}

// MarshalJSON implements json.Marshaler.
func (m Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", e.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler.
func (m Map) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range m {
		val, err := toNode(e.Value)
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", e.Key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
			val,
		)
	}
	return node, nil
}

func toNode(v any) (*yaml.Node, error) {
	switch val := v.(type) {
	case Map:
		n, err := val.MarshalYAML()
		if err != nil {
			return nil, err
		}
		return n.(*yaml.Node), nil
	case []Map:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range val {
			n, err := toNode(item)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, n)
		}
		return seq, nil
	default:
		n := &yaml.Node{}
		if err := n.Encode(val); err != nil {
			return nil, err
		}
		return n, nil
	}
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (m Map) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	for _, e := range m {
		var err error
		switch val := e.Value.(type) {
		case Map:
			err = enc.AddObject(e.Key, val)
		case []Map:
			err = enc.AddArray(e.Key, zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
				for _, item := range val {
					if err := arr.AppendObject(item); err != nil {
						return err
					}
				}
				return nil
			}))
		case []string:
			err = enc.AddArray(e.Key, zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
				for _, s := range val {
					arr.AppendString(s)
				}
				return nil
			}))
		case string:
			enc.AddString(e.Key, val)
		case bool:
			enc.AddBool(e.Key, val)
		case int:
			enc.AddInt(e.Key, val)
		default:
			err = enc.AddReflected(e.Key, val)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
