package raw

// Tool holds the fields every packager and announcer shares.
type Tool struct {
	Enabled           *bool      `yaml:"enabled" json:"enabled"`
	TemplateDirectory string     `yaml:"templateDirectory" json:"templateDirectory"`
	ExtraProperties   Properties `yaml:"extraProperties" json:"extraProperties"`
}

// IsSet reports whether any shared field was populated.
func (t Tool) IsSet() bool {
	return t.Enabled != nil ||
		notBlank(t.TemplateDirectory) ||
		len(t.ExtraProperties) > 0
}

type Packagers struct {
	Brew       Brew       `yaml:"brew" json:"brew"`
	Chocolatey Chocolatey `yaml:"chocolatey" json:"chocolatey"`
	Scoop      Scoop      `yaml:"scoop" json:"scoop"`
	Snap       Snap       `yaml:"snap" json:"snap"`
}

type Brew struct {
	Tool         `yaml:",inline"`
	Dependencies Properties `yaml:"dependencies" json:"dependencies"`
}

func (b Brew) IsSet() bool {
	return b.Tool.IsSet() || len(b.Dependencies) > 0
}

type Chocolatey struct {
	Tool        `yaml:",inline"`
	Username    string `yaml:"username" json:"username"`
	RemoteBuild *bool  `yaml:"remoteBuild" json:"remoteBuild"`
}

func (c Chocolatey) IsSet() bool {
	return c.Tool.IsSet() || notBlank(c.Username) || c.RemoteBuild != nil
}

type Scoop struct {
	Tool          `yaml:",inline"`
	CheckverURL   string `yaml:"checkverUrl" json:"checkverUrl"`
	AutoupdateURL string `yaml:"autoupdateUrl" json:"autoupdateUrl"`
}

func (s Scoop) IsSet() bool {
	return s.Tool.IsSet() || notBlank(s.CheckverURL) || notBlank(s.AutoupdateURL)
}

type Plug struct {
	Name       string            `yaml:"name" json:"name"`
	Attributes map[string]string `yaml:"attributes" json:"attributes"`
}

type Slot struct {
	Name       string            `yaml:"name" json:"name"`
	Attributes map[string]string `yaml:"attributes" json:"attributes"`
	Reads      []string          `yaml:"reads" json:"reads"`
	Writes     []string          `yaml:"writes" json:"writes"`
}

type Snap struct {
	Tool          `yaml:",inline"`
	Base          string   `yaml:"base" json:"base"`
	Grade         string   `yaml:"grade" json:"grade"`
	Confinement   string   `yaml:"confinement" json:"confinement"`
	ExportedLogin string   `yaml:"exportedLogin" json:"exportedLogin"`
	RemoteBuild   *bool    `yaml:"remoteBuild" json:"remoteBuild"`
	LocalPlugs    []string `yaml:"localPlugs" json:"localPlugs"`
	Plugs         []Plug   `yaml:"plugs" json:"plugs"`
	Slots         []Slot   `yaml:"slots" json:"slots"`
}

// IsSet is true when any scalar or any collection is populated, so an
// override that only lists local plugs still counts.
func (s Snap) IsSet() bool {
	return s.Tool.IsSet() ||
		notBlank(s.Base) ||
		notBlank(s.Grade) ||
		notBlank(s.Confinement) ||
		notBlank(s.ExportedLogin) ||
		s.RemoteBuild != nil ||
		len(s.LocalPlugs) > 0 ||
		len(s.Plugs) > 0 ||
		len(s.Slots) > 0
}

type Announce struct {
	Sdkman  Sdkman  `yaml:"sdkman" json:"sdkman"`
	Twitter Twitter `yaml:"twitter" json:"twitter"`
	Zulip   Zulip   `yaml:"zulip" json:"zulip"`
}

type Sdkman struct {
	Tool          `yaml:",inline"`
	ConsumerKey   string `yaml:"consumerKey" json:"consumerKey"`
	ConsumerToken string `yaml:"consumerToken" json:"consumerToken"`
	Candidate     string `yaml:"candidate" json:"candidate"`
	Major         *bool  `yaml:"major" json:"major"`
}

func (s Sdkman) IsSet() bool {
	return s.Tool.IsSet() ||
		notBlank(s.ConsumerKey) ||
		notBlank(s.ConsumerToken) ||
		notBlank(s.Candidate) ||
		s.Major != nil
}

type Twitter struct {
	Tool              `yaml:",inline"`
	ConsumerKey       string `yaml:"consumerKey" json:"consumerKey"`
	ConsumerSecret    string `yaml:"consumerSecret" json:"consumerSecret"`
	AccessToken       string `yaml:"accessToken" json:"accessToken"`
	AccessTokenSecret string `yaml:"accessTokenSecret" json:"accessTokenSecret"`
	Status            string `yaml:"status" json:"status"`
}

func (t Twitter) IsSet() bool {
	return t.Tool.IsSet() ||
		notBlank(t.ConsumerKey) ||
		notBlank(t.ConsumerSecret) ||
		notBlank(t.AccessToken) ||
		notBlank(t.AccessTokenSecret) ||
		notBlank(t.Status)
}

type Zulip struct {
	Tool    `yaml:",inline"`
	Account string `yaml:"account" json:"account"`
	APIKey  string `yaml:"apiKey" json:"apiKey"`
	APIHost string `yaml:"apiHost" json:"apiHost"`
	Channel string `yaml:"channel" json:"channel"`
	Subject string `yaml:"subject" json:"subject"`
	Message string `yaml:"message" json:"message"`
}

func (z Zulip) IsSet() bool {
	return z.Tool.IsSet() ||
		notBlank(z.Account) ||
		notBlank(z.APIKey) ||
		notBlank(z.APIHost) ||
		notBlank(z.Channel) ||
		notBlank(z.Subject) ||
		notBlank(z.Message)
}
