package model

// Model is the root of the release configuration graph.
type Model struct {
	Project   Project
	Release   Release
	Packagers Packagers
	Announce  Announce
	Signing   Signing
	Files     []Artifact
	// Distributions keeps declaration order and any duplicate names so the
	// validator can report them.
	Distributions []*Distribution
	Download      Download
}

// New returns an empty model.
func New() *Model {
	return &Model{}
}

// Distribution returns the first distribution with the given name.
func (m *Model) Distribution(name string) *Distribution {
	for _, d := range m.Distributions {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// DistributionNames lists distribution names in declaration order.
func (m *Model) DistributionNames() []string {
	names := make([]string, 0, len(m.Distributions))
	for _, d := range m.Distributions {
		names = append(names, d.Name)
	}
	return names
}

// Artifacts returns the global files followed by every distribution's artifacts.
func (m *Model) Artifacts() []Artifact {
	out := cloneArtifacts(m.Files)
	for _, d := range m.Distributions {
		out = append(out, d.Artifacts...)
	}
	return out
}
