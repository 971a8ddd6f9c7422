package convert

import (
	"github.com/eugenenazirov/releasecfg/internal/model"
	"github.com/eugenenazirov/releasecfg/internal/raw"
)

// toolSetter is satisfied by every model tool through its embedded ToolBase.
type toolSetter interface {
	SetEnabled(bool)
	SetTemplateDirectory(string)
	SetExtraProperties(model.Properties)
}

func applyTool(dst toolSetter, src raw.Tool) {
	if src.Enabled != nil {
		dst.SetEnabled(*src.Enabled)
	}
	dst.SetTemplateDirectory(src.TemplateDirectory)
	dst.SetExtraProperties(convertProperties(src.ExtraProperties))
}

func convertPackagers(brew raw.Brew, choco raw.Chocolatey, scoop raw.Scoop, snap raw.Snap) model.Packagers {
	var out model.Packagers
	if brew.IsSet() {
		out.Brew = convertBrew(brew)
	}
	if choco.IsSet() {
		out.Chocolatey = convertChocolatey(choco)
	}
	if scoop.IsSet() {
		out.Scoop = convertScoop(scoop)
	}
	if snap.IsSet() {
		out.Snap = convertSnap(snap)
	}
	return out
}

func convertBrew(b raw.Brew) *model.Brew {
	t := model.NewBrew()
	applyTool(t, b.Tool)
	t.Dependencies = convertProperties(b.Dependencies)
	return t
}

func convertChocolatey(c raw.Chocolatey) *model.Chocolatey {
	t := model.NewChocolatey()
	applyTool(t, c.Tool)
	t.Username = c.Username
	t.RemoteBuild = model.TristateOf(c.RemoteBuild)
	return t
}

func convertScoop(s raw.Scoop) *model.Scoop {
	t := model.NewScoop()
	applyTool(t, s.Tool)
	t.CheckverURL = s.CheckverURL
	t.AutoupdateURL = s.AutoupdateURL
	return t
}

func convertSnap(s raw.Snap) *model.Snap {
	t := model.NewSnap()
	applyTool(t, s.Tool)
	t.Base = s.Base
	t.Grade = s.Grade
	t.Confinement = s.Confinement
	t.ExportedLogin = s.ExportedLogin
	t.RemoteBuild = model.TristateOf(s.RemoteBuild)
	t.SetLocalPlugs(s.LocalPlugs)
	for _, p := range s.Plugs {
		t.Plugs = append(t.Plugs, model.Plug{Name: p.Name, Attributes: copyStringMap(p.Attributes)})
	}
	for _, sl := range s.Slots {
		t.Slots = append(t.Slots, model.Slot{
			Name:       sl.Name,
			Attributes: copyStringMap(sl.Attributes),
			Reads:      copyStrings(sl.Reads),
			Writes:     copyStrings(sl.Writes),
		})
	}
	return t
}

func convertAnnounce(a raw.Announce) model.Announce {
	var out model.Announce
	if a.Sdkman.IsSet() {
		t := model.NewSdkman()
		applyTool(t, a.Sdkman.Tool)
		t.ConsumerKey = a.Sdkman.ConsumerKey
		t.ConsumerToken = a.Sdkman.ConsumerToken
		t.Candidate = a.Sdkman.Candidate
		t.Major = a.Sdkman.Major == nil || *a.Sdkman.Major
		out.Sdkman = t
	}
	if a.Twitter.IsSet() {
		t := model.NewTwitter()
		applyTool(t, a.Twitter.Tool)
		t.ConsumerKey = a.Twitter.ConsumerKey
		t.ConsumerSecret = a.Twitter.ConsumerSecret
		t.AccessToken = a.Twitter.AccessToken
		t.AccessTokenSecret = a.Twitter.AccessTokenSecret
		t.Status = a.Twitter.Status
		out.Twitter = t
	}
	if a.Zulip.IsSet() {
		t := model.NewZulip()
		applyTool(t, a.Zulip.Tool)
		t.Account = a.Zulip.Account
		t.APIKey = a.Zulip.APIKey
		t.APIHost = a.Zulip.APIHost
		t.Channel = a.Zulip.Channel
		t.Subject = a.Zulip.Subject
		t.Message = a.Zulip.Message
		out.Zulip = t
	}
	return out
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
