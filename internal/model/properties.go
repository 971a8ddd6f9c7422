package model

// Property is a single entry of an ordered property map.
type Property struct {
	Key   string
	Value any
}

// Properties is a string-keyed map that keeps insertion order. Values are
// opaque to the engine.
type Properties struct {
	entries []Property
}

// NewProperties builds a map from entries; later duplicates replace earlier values in place.
func NewProperties(entries ...Property) Properties {
	var p Properties
	for _, e := range entries {
		p.Set(e.Key, e.Value)
	}
	return p
}

// Set stores value under key, keeping the original position of an existing key.
func (p *Properties) Set(key string, value any) {
	for i := range p.entries {
		if p.entries[i].Key == key {
			p.entries[i].Value = value
			return
		}
	}
	p.entries = append(p.entries, Property{Key: key, Value: value})
}

// Get returns the value stored under key.
func (p Properties) Get(key string) (any, bool) {
	for _, e := range p.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Len returns the number of entries.
func (p Properties) Len() int {
	return len(p.entries)
}

// Keys returns the keys in insertion order.
func (p Properties) Keys() []string {
	keys := make([]string, 0, len(p.entries))
	for _, e := range p.entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// Entries returns a copy of the entries in insertion order.
func (p Properties) Entries() []Property {
	if len(p.entries) == 0 {
		return nil
	}
	out := make([]Property, len(p.entries))
	copy(out, p.entries)
	return out
}

// Clone returns an independent copy.
func (p Properties) Clone() Properties {
	return Properties{entries: p.Entries()}
}

// Merge returns a new map holding p's entries followed by other's; keys
// present in both take other's value.
func (p Properties) Merge(other Properties) Properties {
	out := p.Clone()
	for _, e := range other.entries {
		out.Set(e.Key, e.Value)
	}
	return out
}
