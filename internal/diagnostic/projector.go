package diagnostic

import (
	"fmt"
	"strings"

	"github.com/eugenenazirov/releasecfg/internal/model"
	"github.com/eugenenazirov/releasecfg/internal/secret"
)

const (
	// Hide stands in for a credential that resolves to a value.
	Hide = "************"
	// Unset stands in for a credential that resolves to nothing.
	Unset = "**unset**"
)

// Projector builds diagnostic maps. Credentials are resolved through the
// secret resolver before being redacted.
type Projector struct {
	secrets *secret.Resolver
}

// NewProjector returns a Projector backed by secrets.
func NewProjector(secrets *secret.Resolver) *Projector {
	if secrets == nil {
		secrets = secret.New()
	}
	return &Projector{secrets: secrets}
}

func redact(resolved string) string {
	if strings.TrimSpace(resolved) == "" {
		return Unset
	}
	return Hide
}

// Model projects the whole configuration keyed by section.
func (p *Projector) Model(m *model.Model) Map {
	var out Map
	if m == nil {
		return out
	}
	out.addMap("project", p.Project(m))
	out.addMap("release", p.Release(&m.Release))
	out.addMap("packagers", p.Packagers(m.Packagers))
	out.addMap("announce", p.Announce(m.Announce))
	out.addMap("signing", p.Signing(&m.Signing))
	if files := p.artifacts(m.Files); len(files) > 0 {
		out.add("files", files)
	}
	var dists Map
	seen := make(map[string]bool, len(m.Distributions))
	for i, d := range m.Distributions {
		key := d.Name
		if strings.TrimSpace(key) == "" || seen[key] {
			key = fmt.Sprintf("distributions[%d]", i)
		}
		seen[key] = true
		dists.addMap(key, p.Distribution(d))
	}
	out.addMap("distributions", dists)
	out.addMap("download", p.Download(m.Download))
	return out
}

// Project projects the project section.
func (p *Projector) Project(m *model.Model) Map {
	pr := m.Project
	var out Map
	out.add("name", pr.Name)
	out.add("version", pr.Version)
	out.add("description", pr.Description)
	out.add("longDescription", pr.LongDescription)
	out.add("website", pr.Website)
	out.add("license", pr.License)
	out.add("javaVersion", pr.JavaVersion)
	out.add("tags", nonNil(pr.Tags))
	out.add("authors", nonNil(pr.Authors))
	out.add("extraProperties", properties(pr.ExtraProperties))
	return out
}

// Release projects every configured hosting service keyed by its name.
func (p *Projector) Release(r *model.Release) Map {
	var out Map
	for _, svc := range r.Services() {
		out.add(svc.ServiceName(), p.service(svc))
	}
	return out
}

func (p *Projector) service(svc model.HostingService) Map {
	b := svc.Base()
	var out Map
	out.add("owner", b.Owner)
	out.add("name", b.Name)
	out.add("username", b.Username)
	out.add("password", redact(p.secrets.GitServicePassword(svc)))
	out.add("tagName", b.TagName)
	out.add("releaseName", b.ReleaseName)
	out.add("repoUrlFormat", b.RepoURLFormat)
	out.add("commitUrlFormat", b.CommitURLFormat)
	out.add("downloadUrlFormat", b.DownloadURLFormat)
	out.add("releaseNotesUrlFormat", b.ReleaseNotesURLFormat)
	out.add("latestReleaseUrlFormat", b.LatestReleaseURLFormat)
	out.add("issueTrackerUrlFormat", b.IssueTrackerURLFormat)
	out.add("commitAuthorName", b.CommitAuthorName)
	out.add("commitAuthorEmail", b.CommitAuthorEmail)
	out.add("sign", b.Sign)
	out.add("signingKey", redact(b.SigningKey))
	out.add("overwrite", b.Overwrite)
	out.add("allowUploadToExisting", b.AllowUploadToExisting)
	out.add("apiEndpoint", b.APIEndpoint)

	switch s := svc.(type) {
	case *model.Github:
		out.add("targetCommitish", s.TargetCommitish)
		out.add("draft", s.Draft)
		out.add("prerelease", s.Prerelease)
	case *model.Gitea:
		out.add("targetCommitish", s.TargetCommitish)
		out.add("draft", s.Draft)
		out.add("prerelease", s.Prerelease)
	case *model.Gitlab:
		out.add("ref", s.Ref)
	}

	var changelog Map
	changelog.add("enabled", b.Changelog.Enabled)
	changelog.add("sort", string(b.Changelog.Sort))
	changelog.add("external", b.Changelog.External)
	out.add("changelog", changelog)
	return out
}

// Packagers projects enabled packagers keyed by kind.
func (p *Projector) Packagers(pk model.Packagers) Map {
	var out Map
	for _, kind := range model.AllPackagerKinds {
		out.addMap(kind.String(), p.Tool(pk.Get(kind)))
	}
	return out
}

// Announce projects enabled announcers keyed by kind.
func (p *Projector) Announce(a model.Announce) Map {
	var out Map
	for _, kind := range model.AllAnnouncerKinds {
		out.addMap(kind.String(), p.Tool(a.Get(kind)))
	}
	return out
}

// Signing returns an empty Map unless signing is enabled.
func (p *Projector) Signing(s *model.Signing) Map {
	var out Map
	if !s.IsEnabled() {
		return out
	}
	out.add("enabled", true)
	out.add("armored", s.Armored)
	out.add("keyRingFile", s.KeyRingFile)
	out.add("passphrase", redact(p.secrets.SigningPassphrase(s)))
	return out
}

// Distribution projects d with its effective packagers.
func (p *Projector) Distribution(d *model.Distribution) Map {
	var out Map
	out.add("name", d.Name)
	out.add("type", string(d.Type))
	out.add("executable", d.Executable)
	out.add("javaVersion", d.JavaVersion)
	out.add("tags", nonNil(d.Tags))
	out.add("artifacts", p.artifacts(d.Artifacts))
	for _, kind := range model.AllPackagerKinds {
		out.addMap(kind.String(), p.Tool(d.Effective.Get(kind)))
	}
	out.add("extraProperties", properties(d.ExtraProperties))
	return out
}

// Artifact projects a single artifact.
func (p *Projector) Artifact(a model.Artifact) Map {
	var out Map
	out.add("path", a.Path)
	out.add("hash", a.Hash)
	out.add("platform", a.Platform)
	out.add("javaVersion", a.JavaVersion())
	return out
}

func (p *Projector) artifacts(in []model.Artifact) []Map {
	out := make([]Map, 0, len(in))
	for _, a := range in {
		out = append(out, p.Artifact(a))
	}
	return out
}

// Download projects enabled downloaders grouped by type and keyed by name.
func (p *Projector) Download(d model.Download) Map {
	var http Map
	for _, h := range d.HTTP {
		http.addMap(h.Name(), p.Tool(h))
	}
	var out Map
	out.addMap(model.HTTPType, http)
	return out
}

// Tool projects an enabled tool; disabled or missing tools give an empty Map.
func (p *Projector) Tool(t model.Tool) Map {
	var out Map
	if t == nil || !t.IsEnabled() {
		return out
	}
	out.add("enabled", true)
	out.add("templateDirectory", t.TemplateDirectory())

	switch v := t.(type) {
	case *model.Brew:
		out.add("dependencies", properties(v.Dependencies))
	case *model.Chocolatey:
		out.add("username", redact(p.secrets.Packager(model.ChocolateyName, "username", v.Username)))
		out.add("remoteBuild", v.IsRemoteBuild())
	case *model.Scoop:
		out.add("checkverUrl", v.CheckverURL)
		out.add("autoupdateUrl", v.AutoupdateURL)
	case *model.Snap:
		out.add("base", v.Base)
		out.add("grade", v.Grade)
		out.add("confinement", v.Confinement)
		out.add("exportedLogin", v.ExportedLogin)
		out.add("remoteBuild", v.IsRemoteBuild())
		out.add("localPlugs", nonNil(v.LocalPlugs()))
		out.add("plugs", plugs(v.Plugs))
		out.add("slots", slots(v.Slots))
	case *model.Sdkman:
		out.add("consumerKey", redact(p.secrets.Announcer(model.SdkmanName, "consumerKey", v.ConsumerKey)))
		out.add("consumerToken", redact(p.secrets.Announcer(model.SdkmanName, "consumerToken", v.ConsumerToken)))
		out.add("candidate", v.Candidate)
		out.add("major", v.Major)
	case *model.Twitter:
		out.add("consumerKey", redact(p.secrets.Announcer(model.TwitterName, "consumerKey", v.ConsumerKey)))
		out.add("consumerSecret", redact(p.secrets.Announcer(model.TwitterName, "consumerSecret", v.ConsumerSecret)))
		out.add("accessToken", redact(p.secrets.Announcer(model.TwitterName, "accessToken", v.AccessToken)))
		out.add("accessTokenSecret", redact(p.secrets.Announcer(model.TwitterName, "accessTokenSecret", v.AccessTokenSecret)))
		out.add("status", v.Status)
	case *model.Zulip:
		out.add("account", v.Account)
		out.add("apiKey", redact(p.secrets.Announcer(model.ZulipName, "apiKey", v.APIKey)))
		out.add("apiHost", v.APIHost)
		out.add("channel", v.Channel)
		out.add("subject", v.Subject)
		out.add("message", v.Message)
	case *model.HTTPDownloader:
		out.add("name", v.Name())
		out.add("type", v.Type())
		out.add("authorization", string(v.Authorization))
		out.add("username", redact(p.secrets.HTTPUsername(v)))
		out.add("password", redact(p.secrets.HTTPPassword(v)))
		out.add("headers", properties(v.Headers))
		out.add("connectTimeout", v.ConnectTimeout)
		out.add("readTimeout", v.ReadTimeout)
	}

	out.add("extraProperties", properties(t.ExtraProperties()))
	return out
}

func properties(p model.Properties) Map {
	out := make(Map, 0, p.Len())
	for _, e := range p.Entries() {
		out.add(e.Key, e.Value)
	}
	return out
}

func plugs(in []model.Plug) []Map {
	out := make([]Map, 0, len(in))
	for _, pl := range in {
		var m Map
		m.add("name", pl.Name)
		m.add("attributes", pl.Attributes)
		out = append(out, m)
	}
	return out
}

func slots(in []model.Slot) []Map {
	out := make([]Map, 0, len(in))
	for _, s := range in {
		var m Map
		m.add("name", s.Name)
		m.add("attributes", s.Attributes)
		m.add("reads", nonNil(s.Reads))
		m.add("writes", nonNil(s.Writes))
		out = append(out, m)
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
