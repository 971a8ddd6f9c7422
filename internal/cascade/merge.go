package cascade

import (
	"strings"

	"github.com/eugenenazirov/releasecfg/internal/model"
)

// MergeBrew returns the effective Homebrew settings, or nil when neither
// side is configured. Dependencies are replaced, not appended.
func MergeBrew(global, override *model.Brew) *model.Brew {
	if global == nil && override == nil {
		return nil
	}
	out := model.NewBrew()
	var g, o model.Brew
	if global != nil {
		g = *global
	}
	if override != nil {
		o = *override
	}
	mergeTool(out, &g.ToolBase, &o.ToolBase, global != nil, override != nil)
	if o.Dependencies.Len() > 0 {
		out.Dependencies = o.Dependencies.Clone()
	} else {
		out.Dependencies = g.Dependencies.Clone()
	}
	return out
}

// MergeChocolatey returns the effective Chocolatey settings.
func MergeChocolatey(global, override *model.Chocolatey) *model.Chocolatey {
	if global == nil && override == nil {
		return nil
	}
	out := model.NewChocolatey()
	var g, o model.Chocolatey
	if global != nil {
		g = *global
	}
	if override != nil {
		o = *override
	}
	mergeTool(out, &g.ToolBase, &o.ToolBase, global != nil, override != nil)
	out.Username = pick(g.Username, o.Username)
	out.RemoteBuild = o.RemoteBuild.Or(g.RemoteBuild)
	return out
}

// MergeScoop returns the effective Scoop settings.
func MergeScoop(global, override *model.Scoop) *model.Scoop {
	if global == nil && override == nil {
		return nil
	}
	out := model.NewScoop()
	var g, o model.Scoop
	if global != nil {
		g = *global
	}
	if override != nil {
		o = *override
	}
	mergeTool(out, &g.ToolBase, &o.ToolBase, global != nil, override != nil)
	out.CheckverURL = pick(g.CheckverURL, o.CheckverURL)
	out.AutoupdateURL = pick(g.AutoupdateURL, o.AutoupdateURL)
	return out
}

// MergeSnap returns the effective Snap settings. Local plugs, plugs and
// slots are additive: the override's entries follow the global ones.
func MergeSnap(global, override *model.Snap) *model.Snap {
	if global == nil && override == nil {
		return nil
	}
	out := model.NewSnap()
	var g, o model.Snap
	if global != nil {
		g = *global
	}
	if override != nil {
		o = *override
	}
	mergeTool(out, &g.ToolBase, &o.ToolBase, global != nil, override != nil)
	out.Base = pick(g.Base, o.Base)
	out.Grade = pick(g.Grade, o.Grade)
	out.Confinement = pick(g.Confinement, o.Confinement)
	out.ExportedLogin = pick(g.ExportedLogin, o.ExportedLogin)
	out.RemoteBuild = o.RemoteBuild.Or(g.RemoteBuild)

	out.SetLocalPlugs(g.LocalPlugs())
	for _, p := range o.LocalPlugs() {
		out.AddLocalPlug(p)
	}
	for _, p := range g.Plugs {
		out.Plugs = append(out.Plugs, p.Clone())
	}
	for _, p := range o.Plugs {
		out.Plugs = append(out.Plugs, p.Clone())
	}
	for _, s := range g.Slots {
		out.Slots = append(out.Slots, s.Clone())
	}
	for _, s := range o.Slots {
		out.Slots = append(out.Slots, s.Clone())
	}
	return out
}

// toolTarget is the mutable side of an effective tool.
type toolTarget interface {
	InheritEnabled(model.Tristate)
	SetTemplateDirectory(string)
	SetExtraProperties(model.Properties)
}

func mergeTool(dst toolTarget, global, override *model.ToolBase, hasGlobal, hasOverride bool) {
	var enabled model.Tristate
	var dir string
	var props model.Properties
	if hasGlobal {
		enabled = global.Enabled()
		dir = global.TemplateDirectory()
		props = global.ExtraProperties()
	}
	if hasOverride {
		enabled = override.Enabled().Or(enabled)
		dir = pick(dir, override.TemplateDirectory())
		props = props.Merge(override.ExtraProperties())
	}
	dst.InheritEnabled(enabled)
	dst.SetTemplateDirectory(dir)
	dst.SetExtraProperties(props)
}

// pick returns override unless it is blank.
func pick(global, override string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	return global
}
