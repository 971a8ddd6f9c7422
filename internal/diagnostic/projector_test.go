package diagnostic

import (
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/releasecfg/internal/model"
	"github.com/eugenenazirov/releasecfg/internal/secret"
)

func projectorWith(env map[string]string) *Projector {
	return NewProjector(secret.New(secret.WithLookup(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})))
}

func TestToolRedactsHTTPCredentials(t *testing.T) {
	t.Parallel()

	d := model.NewHTTPDownloader("foo")
	d.SetEnabled(true)
	d.Username = "baz"
	d.Authorization = model.AuthBasic

	got := projectorWith(nil).Tool(d)

	if v, _ := got.Get("username"); v != Hide {
		t.Fatalf("expected username to be hidden, got %v", v)
	}
	if v, _ := got.Get("password"); v != Unset {
		t.Fatalf("expected password to be unset, got %v", v)
	}

	raw, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(raw), "baz") {
		t.Fatalf("projection leaked the username: %s", raw)
	}
}

func TestToolUsesResolvedSecret(t *testing.T) {
	t.Parallel()

	d := model.NewHTTPDownloader("foo")
	d.SetEnabled(true)

	got := projectorWith(map[string]string{"HTTP_FOO_PASSWORD": "from-env"}).Tool(d)
	if v, _ := got.Get("password"); v != Hide {
		t.Fatalf("expected password satisfied by env to be hidden, got %v", v)
	}
	if v, _ := got.Get("username"); v != Unset {
		t.Fatalf("expected missing username to be unset, got %v", v)
	}
}

func TestToolHidesPackagerUsernameFromEnv(t *testing.T) {
	t.Parallel()

	c := model.NewChocolatey()
	c.SetEnabled(true)

	got := projectorWith(map[string]string{"PACKAGER_CHOCOLATEY_USERNAME": "s3cr3t-from-env"}).Tool(c)
	if v, _ := got.Get("username"); v != Hide {
		t.Fatalf("expected username to be hidden, got %v", v)
	}
	out, err := yaml.Marshal(got)
	if err != nil {
		t.Fatalf("yaml marshal failed: %v", err)
	}
	if strings.Contains(string(out), "s3cr3t-from-env") {
		t.Fatalf("projection leaked the username:\n%s", out)
	}

	if v, _ := projectorWith(nil).Tool(model.NewChocolatey()).Get("username"); v != nil {
		t.Fatalf("expected no username for a tool that is not enabled, got %v", v)
	}
}

func TestToolDisabledIsEmpty(t *testing.T) {
	t.Parallel()

	p := projectorWith(nil)

	unspecified := model.NewScoop()
	disabled := model.NewSnap()
	disabled.SetEnabled(false)

	for _, tool := range []model.Tool{nil, unspecified, disabled} {
		if got := p.Tool(tool); !got.IsEmpty() {
			t.Fatalf("expected empty projection, got %v", got.Keys())
		}
	}

	m := model.New()
	m.Packagers.Snap = disabled
	if _, ok := p.Model(m).Get("packagers"); ok {
		t.Fatalf("expected packagers section to be omitted")
	}
}

func TestToolKeyOrder(t *testing.T) {
	t.Parallel()

	c := model.NewChocolatey()
	c.SetEnabled(true)
	c.Username = "choco"
	c.SetExtraProperties(model.NewProperties(model.Property{Key: "owners", Value: "acme"}))

	got := projectorWith(nil).Tool(c).Keys()
	want := []string{"enabled", "templateDirectory", "username", "remoteBuild", "extraProperties"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected keys %v, got %v", want, got)
	}
}

func TestMapEncodersKeepOrder(t *testing.T) {
	t.Parallel()

	var inner Map
	inner.add("zeta", 1)
	inner.add("alpha", true)
	var m Map
	m.add("b", "x")
	m.add("a", inner)
	m.add("list", []Map{inner})
	m.add("tags", []string{"cli"})

	raw, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("json marshal failed: %v", err)
	}
	if want := `{"b":"x","a":{"zeta":1,"alpha":true},"list":[{"zeta":1,"alpha":true}],"tags":["cli"]}`; string(raw) != want {
		t.Fatalf("expected %s, got %s", want, raw)
	}

	out, err := yaml.Marshal(m)
	if err != nil {
		t.Fatalf("yaml marshal failed: %v", err)
	}
	if !strings.HasPrefix(string(out), "b: x\na:\n    zeta: 1\n    alpha: true\n") {
		t.Fatalf("unexpected yaml order:\n%s", out)
	}

	core, logs := observer.New(zapcore.DebugLevel)
	zap.New(core).Debug("projection", zap.Object("config", m))
	ctx := logs.All()[0].ContextMap()["config"].(map[string]interface{})
	if ctx["b"] != "x" {
		t.Fatalf("expected object field in log entry, got %v", ctx)
	}
}

func TestModelProjection(t *testing.T) {
	t.Parallel()

	m := model.New()
	m.Project = model.Project{Name: "app", Version: "1.0.0"}
	m.Release.Github = &model.Github{GitService: model.GitService{Owner: "acme", Name: "app", Password: "ghp_secret"}}
	m.Signing.SetEnabled(true)
	m.Signing.Passphrase = "pass"

	snap := model.NewSnap()
	snap.SetEnabled(true)
	snap.Base = "core22"
	m.Distributions = []*model.Distribution{{
		Name:      "app",
		Type:      model.JavaBinary,
		Artifacts: []model.Artifact{model.NewArtifact("app.zip", "", "", "1.8.0_292")},
		Effective: model.Packagers{Snap: snap},
	}}

	got := projectorWith(nil).Model(m)
	if want := "project,release,signing,distributions"; strings.Join(got.Keys(), ",") != want {
		t.Fatalf("expected sections %s, got %v", want, got.Keys())
	}

	raw, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	for _, secretValue := range []string{"ghp_secret", "pass\""} {
		if strings.Contains(string(raw), secretValue) {
			t.Fatalf("projection leaked %q: %s", secretValue, raw)
		}
	}
	if !strings.Contains(string(raw), `"javaVersion":"8"`) {
		t.Fatalf("expected normalized artifact java version in %s", raw)
	}
	if !strings.Contains(string(raw), `"snap":{"enabled":true`) {
		t.Fatalf("expected effective snap projection in %s", raw)
	}
}

func TestModelKeysDistributionsUniquely(t *testing.T) {
	t.Parallel()

	m := model.New()
	m.Distributions = []*model.Distribution{
		{Name: "app", Type: model.Binary},
		{Name: "app", Type: model.Binary},
		{Name: " ", Type: model.Binary},
	}

	section, ok := projectorWith(nil).Model(m).Get("distributions")
	if !ok {
		t.Fatalf("expected distributions section")
	}
	got := section.(Map).Keys()
	want := []string{"app", "distributions[1]", "distributions[2]"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected keys %v, got %v", want, got)
	}

	out, err := yaml.Marshal(section)
	if err != nil {
		t.Fatalf("yaml marshal failed: %v", err)
	}
	var back map[string]any
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("projection is not re-readable: %v\n%s", err, out)
	}
}
