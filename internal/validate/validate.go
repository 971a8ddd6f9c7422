package validate

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ProtonMail/go-crypto/openpgp"
	"go.uber.org/zap"

	"github.com/eugenenazirov/releasecfg/internal/cascade"
	"github.com/eugenenazirov/releasecfg/internal/model"
	"github.com/eugenenazirov/releasecfg/internal/secret"
)

// Validator reports configuration errors in a model.
type Validator interface {
	Validate(m *model.Model) []string
}

type validator struct {
	secrets *secret.Resolver
	logger  *zap.Logger
}

// New returns a Validator that resolves credentials through secrets.
func New(secrets *secret.Resolver, logger *zap.Logger) Validator {
	if secrets == nil {
		secrets = secret.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &validator{secrets: secrets, logger: logger}
}

// Validate returns nil when m is valid.
func (v *validator) Validate(m *model.Model) []string {
	if m == nil {
		return []string{"release configuration is empty"}
	}

	r := &report{}
	v.project(r, &m.Project)
	v.release(r, &m.Release)
	v.files(r, m.Files)
	v.packagers(r, "packagers", m.Packagers, nil)
	v.distributions(r, m)
	v.announce(r, m.Announce)
	v.signing(r, &m.Signing)
	v.download(r, m.Download)

	v.logger.Debug("release configuration validated", zap.Int("errors", len(r.errs)))
	return r.errs
}

func (v *validator) project(r *report, p *model.Project) {
	r.required("project.name", p.Name)
	r.required("project.version", p.Version)
}

func (v *validator) release(r *report, rel *model.Release) {
	services := rel.Services()
	switch len(services) {
	case 0:
		r.addf("release must configure one of %s, %s or %s", model.GithubName, model.GitlabName, model.GiteaName)
		return
	case 1:
	default:
		names := make([]string, 0, len(services))
		for _, s := range services {
			names = append(names, s.ServiceName())
		}
		r.addf("release configures more than one service: %s", strings.Join(names, ", "))
	}

	for _, svc := range services {
		v.gitService(r, svc)
	}
}

func (v *validator) gitService(r *report, svc model.HostingService) {
	prefix := "release." + svc.ServiceName()
	base := svc.Base()

	r.required(prefix+".owner", base.Owner)
	r.required(prefix+".name", base.Name)

	if base.Sign && isBlank(base.SigningKey) {
		r.addf("%s.signingKey must not be blank when sign is enabled", prefix)
	}
	if !isBlank(base.SigningKey) {
		if err := checkArmoredKey(base.SigningKey); err != nil {
			r.addf("%s.signingKey is not a valid armored OpenPGP key: %v", prefix, err)
		}
	}
	r.oneOf(prefix+".changelog.sort", string(base.Changelog.Sort), string(model.SortAsc), string(model.SortDesc))
}

func checkArmoredKey(key string) error {
	entities, err := openpgp.ReadArmoredKeyRing(strings.NewReader(key))
	if err != nil {
		return err
	}
	if len(entities) == 0 {
		return fmt.Errorf("no keys found")
	}
	return nil
}

func (v *validator) files(r *report, files []model.Artifact) {
	for i, a := range files {
		r.required(fmt.Sprintf("files[%d].path", i), a.Path)
	}
}

func (v *validator) distributions(r *report, m *model.Model) {
	seen := make(map[string]int, len(m.Distributions))
	for i, d := range m.Distributions {
		prefix := fmt.Sprintf("distributions[%d]", i)
		if isBlank(d.Name) {
			r.addf("%s.name must not be blank", prefix)
		} else {
			prefix = "distributions." + d.Name
			seen[d.Name]++
			if seen[d.Name] == 2 {
				r.addf("%s is defined more than once", prefix)
			}
		}

		if len(d.Artifacts) == 0 {
			r.addf("%s must declare at least one artifact", prefix)
		}
		for j, a := range d.Artifacts {
			r.required(fmt.Sprintf("%s.artifacts[%d].path", prefix, j), a.Path)
		}
		if d.Type.RequiresJavaVersion() && isBlank(d.JavaVersion) && isBlank(m.Project.JavaVersion) {
			r.addf("%s.javaVersion must be set for type %s", prefix, d.Type)
		}

		v.packagers(r, prefix, cascade.Effective(m.Packagers, d.Packagers), d.Packagers.Get)
	}
}

// packagers checks every enabled tool in p. When overridden is set, only
// kinds the distribution overrides are checked; the rest equal the global
// packagers, which are reported once under "packagers".
func (v *validator) packagers(r *report, prefix string, p model.Packagers, overridden func(model.PackagerKind) model.Tool) {
	for _, kind := range model.AllPackagerKinds {
		if overridden != nil && overridden(kind) == nil {
			continue
		}
		tool := p.Get(kind)
		if tool == nil || !tool.IsEnabled() {
			continue
		}
		path := prefix + "." + kind.String()
		switch kind {
		case model.BrewKind:
			for i, name := range p.Brew.Dependencies.Keys() {
				if isBlank(name) {
					r.addf("%s.dependencies[%d] name must not be blank", path, i)
				}
			}
		case model.ChocolateyKind:
			r.required(path+".username", v.secrets.Packager(model.ChocolateyName, "username", p.Chocolatey.Username))
		case model.ScoopKind:
			absoluteURL(r, path+".checkverUrl", p.Scoop.CheckverURL)
			absoluteURL(r, path+".autoupdateUrl", p.Scoop.AutoupdateURL)
		case model.SnapKind:
			s := p.Snap
			r.required(path+".base", s.Base)
			r.oneOf(path+".grade", s.Grade, "stable", "devel")
			r.oneOf(path+".confinement", s.Confinement, "strict", "classic", "devmode")
			for i, plug := range s.Plugs {
				r.required(fmt.Sprintf("%s.plugs[%d].name", path, i), plug.Name)
			}
			for i, slot := range s.Slots {
				r.required(fmt.Sprintf("%s.slots[%d].name", path, i), slot.Name)
			}
		}
	}
}

func absoluteURL(r *report, path, value string) {
	if isBlank(value) {
		return
	}
	u, err := url.Parse(value)
	if err != nil || !u.IsAbs() || u.Host == "" {
		r.addf("%s must be an absolute URL, got %q", path, value)
	}
}

func (v *validator) announce(r *report, a model.Announce) {
	for _, kind := range model.AllAnnouncerKinds {
		tool := a.Get(kind)
		if tool == nil || !tool.IsEnabled() {
			continue
		}
		path := "announce." + kind.String()
		switch kind {
		case model.SdkmanKind:
			s := a.Sdkman
			r.required(path+".consumerKey", v.secrets.Announcer(model.SdkmanName, "consumerKey", s.ConsumerKey))
			r.required(path+".consumerToken", v.secrets.Announcer(model.SdkmanName, "consumerToken", s.ConsumerToken))
			r.required(path+".candidate", s.Candidate)
		case model.TwitterKind:
			tw := a.Twitter
			r.required(path+".consumerKey", v.secrets.Announcer(model.TwitterName, "consumerKey", tw.ConsumerKey))
			r.required(path+".consumerSecret", v.secrets.Announcer(model.TwitterName, "consumerSecret", tw.ConsumerSecret))
			r.required(path+".accessToken", v.secrets.Announcer(model.TwitterName, "accessToken", tw.AccessToken))
			r.required(path+".accessTokenSecret", v.secrets.Announcer(model.TwitterName, "accessTokenSecret", tw.AccessTokenSecret))
			r.required(path+".status", tw.Status)
		case model.ZulipKind:
			z := a.Zulip
			r.required(path+".account", z.Account)
			r.required(path+".apiKey", v.secrets.Announcer(model.ZulipName, "apiKey", z.APIKey))
			r.required(path+".apiHost", z.APIHost)
			r.required(path+".channel", z.Channel)
			r.required(path+".subject", z.Subject)
			r.required(path+".message", z.Message)
		}
	}
}

func (v *validator) signing(r *report, s *model.Signing) {
	if !s.IsEnabled() {
		return
	}
	r.required("signing.passphrase", v.secrets.SigningPassphrase(s))
	if !s.Armored {
		r.required("signing.keyRingFile", s.KeyRingFile)
	}
}

func (v *validator) download(r *report, d model.Download) {
	seen := make(map[string]bool, len(d.HTTP))
	for i, h := range d.HTTP {
		if !h.IsEnabled() {
			continue
		}
		path := fmt.Sprintf("download.http[%d]", i)
		if isBlank(h.Name()) {
			r.addf("%s.name must not be blank", path)
		} else {
			if seen[h.Name()] {
				r.addf("%s.name %q is defined more than once", path, h.Name())
			}
			seen[h.Name()] = true
		}
		if h.ConnectTimeout < 0 {
			r.addf("%s.connectTimeout must not be negative", path)
		}
		if h.ReadTimeout < 0 {
			r.addf("%s.readTimeout must not be negative", path)
		}

		switch h.Authorization {
		case model.AuthBasic:
			r.required(path+".username", v.secrets.HTTPUsername(h))
			r.required(path+".password", v.secrets.HTTPPassword(h))
		case model.AuthBearer:
			r.required(path+".password", v.secrets.HTTPPassword(h))
		}
	}
}
