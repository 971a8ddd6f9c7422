package model

import "strings"

// PackagerKind enumerates the supported package managers.
type PackagerKind int

const (
	BrewKind PackagerKind = iota
	ChocolateyKind
	ScoopKind
	SnapKind
)

// AllPackagerKinds lists every packager kind in canonical order.
var AllPackagerKinds = []PackagerKind{BrewKind, ChocolateyKind, ScoopKind, SnapKind}

// Packager names as they appear in configuration.
const (
	BrewName       = "brew"
	ChocolateyName = "chocolatey"
	ScoopName      = "scoop"
	SnapName       = "snap"
)

func (k PackagerKind) String() string {
	switch k {
	case BrewKind:
		return BrewName
	case ChocolateyKind:
		return ChocolateyName
	case ScoopKind:
		return ScoopName
	case SnapKind:
		return SnapName
	default:
		return "unknown"
	}
}

// Brew configures a Homebrew formula.
type Brew struct {
	ToolBase
	// Dependencies maps formula name to an optional version constraint.
	Dependencies Properties
}

func NewBrew() *Brew {
	return &Brew{ToolBase: newToolBase(BrewName)}
}

// Chocolatey configures a Chocolatey package.
type Chocolatey struct {
	ToolBase
	Username    string
	RemoteBuild Tristate
}

func NewChocolatey() *Chocolatey {
	return &Chocolatey{ToolBase: newToolBase(ChocolateyName)}
}

// IsRemoteBuild is false unless remote build was explicitly enabled.
func (c *Chocolatey) IsRemoteBuild() bool { return c.RemoteBuild.Bool() }

// IsRemoteBuildSet reports whether remote build was given explicitly.
func (c *Chocolatey) IsRemoteBuildSet() bool { return c.RemoteBuild.IsSet() }

// Scoop configures a Scoop manifest.
type Scoop struct {
	ToolBase
	CheckverURL   string
	AutoupdateURL string
}

func NewScoop() *Scoop {
	return &Scoop{ToolBase: newToolBase(ScoopName)}
}

// Plug is a snap interface consumer.
type Plug struct {
	Name       string
	Attributes map[string]string
}

// Clone returns a deep copy.
func (p Plug) Clone() Plug {
	return Plug{Name: p.Name, Attributes: cloneStringMap(p.Attributes)}
}

// Slot is a snap interface provider.
type Slot struct {
	Name       string
	Attributes map[string]string
	Reads      []string
	Writes     []string
}

// Clone returns a deep copy.
func (s Slot) Clone() Slot {
	return Slot{
		Name:       s.Name,
		Attributes: cloneStringMap(s.Attributes),
		Reads:      cloneStrings(s.Reads),
		Writes:     cloneStrings(s.Writes),
	}
}

// Snap configures a snapcraft package.
type Snap struct {
	ToolBase
	Base          string
	Grade         string
	Confinement   string
	ExportedLogin string
	RemoteBuild   Tristate
	Plugs         []Plug
	Slots         []Slot

	localPlugs []string
}

func NewSnap() *Snap {
	return &Snap{ToolBase: newToolBase(SnapName)}
}

// IsRemoteBuild is false unless remote build was explicitly enabled.
func (s *Snap) IsRemoteBuild() bool { return s.RemoteBuild.Bool() }

// LocalPlugs returns a copy of the local plug names in declaration order.
func (s *Snap) LocalPlugs() []string {
	return cloneStrings(s.localPlugs)
}

// SetLocalPlugs replaces the local plugs, applying AddLocalPlug to each.
func (s *Snap) SetLocalPlugs(plugs []string) {
	s.localPlugs = nil
	for _, p := range plugs {
		s.AddLocalPlug(p)
	}
}

// AddLocalPlug appends a trimmed plug name unless it is blank or already present.
func (s *Snap) AddLocalPlug(plug string) {
	plug = strings.TrimSpace(plug)
	if plug == "" {
		return
	}
	for _, existing := range s.localPlugs {
		if existing == plug {
			return
		}
	}
	s.localPlugs = append(s.localPlugs, plug)
}

// RemoveLocalPlug drops a plug name if present.
func (s *Snap) RemoveLocalPlug(plug string) {
	plug = strings.TrimSpace(plug)
	if plug == "" {
		return
	}
	for i, existing := range s.localPlugs {
		if existing == plug {
			s.localPlugs = append(s.localPlugs[:i:i], s.localPlugs[i+1:]...)
			return
		}
	}
}

// Packagers holds the optional configuration of each packager kind.
type Packagers struct {
	Brew       *Brew
	Chocolatey *Chocolatey
	Scoop      *Scoop
	Snap       *Snap
}

// Get returns the configured packager of the given kind, or nil.
func (p Packagers) Get(kind PackagerKind) Tool {
	switch kind {
	case BrewKind:
		if p.Brew != nil {
			return p.Brew
		}
	case ChocolateyKind:
		if p.Chocolatey != nil {
			return p.Chocolatey
		}
	case ScoopKind:
		if p.Scoop != nil {
			return p.Scoop
		}
	case SnapKind:
		if p.Snap != nil {
			return p.Snap
		}
	}
	return nil
}

// IsEmpty reports whether no packager is configured.
func (p Packagers) IsEmpty() bool {
	return p.Brew == nil && p.Chocolatey == nil && p.Scoop == nil && p.Snap == nil
}

func cloneStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
