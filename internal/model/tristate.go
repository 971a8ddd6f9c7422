package model

// Tristate models a flag that may be left unspecified, which is distinct
// from being explicitly disabled.
type Tristate uint8

const (
	Unspecified Tristate = iota
	Enabled
	Disabled
)

// TristateOf maps an optional boolean onto a Tristate.
func TristateOf(v *bool) Tristate {
	switch {
	case v == nil:
		return Unspecified
	case *v:
		return Enabled
	default:
		return Disabled
	}
}

// IsSet reports whether the flag was given an explicit value.
func (t Tristate) IsSet() bool {
	return t != Unspecified
}

// Bool is true only for an explicit Enabled.
func (t Tristate) Bool() bool {
	return t == Enabled
}

// Or returns t when it is set, fallback otherwise.
func (t Tristate) Or(fallback Tristate) Tristate {
	if t.IsSet() {
		return t
	}
	return fallback
}

func (t Tristate) String() string {
	switch t {
	case Enabled:
		return "enabled"
	case Disabled:
		return "disabled"
	default:
		return "unspecified"
	}
}

// Activation carries a tri-state enabled flag. Once SetEnabled has been
// called the flag stays set for the lifetime of the value.
type Activation struct {
	state Tristate
}

// IsEnabled returns false unless the flag was explicitly enabled.
func (a *Activation) IsEnabled() bool {
	return a.state.Bool()
}

// IsEnabledSet reports whether SetEnabled was ever called.
func (a *Activation) IsEnabledSet() bool {
	return a.state.IsSet()
}

// SetEnabled records an explicit value.
func (a *Activation) SetEnabled(enabled bool) {
	if enabled {
		a.state = Enabled
	} else {
		a.state = Disabled
	}
}

// Enabled exposes the raw tri-state.
func (a *Activation) Enabled() Tristate {
	return a.state
}

// InheritEnabled copies an explicit state and ignores Unspecified, so a set
// flag can never be reset.
func (a *Activation) InheritEnabled(state Tristate) {
	if state.IsSet() {
		a.state = state
	}
}
