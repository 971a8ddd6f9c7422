package raw

import "strings"

// Tree is the root of the configuration document. Absent sections decode
// to their zero value and mean "not configured".
type Tree struct {
	Project       Project        `yaml:"project" json:"project"`
	Release       Release        `yaml:"release" json:"release"`
	Packagers     Packagers      `yaml:"packagers" json:"packagers"`
	Announce      Announce       `yaml:"announce" json:"announce"`
	Signing       Signing        `yaml:"signing" json:"signing"`
	Files         []Artifact     `yaml:"files" json:"files"`
	Distributions []Distribution `yaml:"distributions" json:"distributions"`
	Download      Download       `yaml:"download" json:"download"`
}

type Project struct {
	Name            string     `yaml:"name" json:"name"`
	Version         Scalar     `yaml:"version" json:"version"`
	Description     string     `yaml:"description" json:"description"`
	LongDescription string     `yaml:"longDescription" json:"longDescription"`
	Website         string     `yaml:"website" json:"website"`
	License         string     `yaml:"license" json:"license"`
	JavaVersion     Scalar     `yaml:"javaVersion" json:"javaVersion"`
	Tags            []string   `yaml:"tags" json:"tags"`
	Authors         []string   `yaml:"authors" json:"authors"`
	ExtraProperties Properties `yaml:"extraProperties" json:"extraProperties"`
}

type Release struct {
	Github *Github `yaml:"github" json:"github"`
	Gitlab *Gitlab `yaml:"gitlab" json:"gitlab"`
	Gitea  *Gitea  `yaml:"gitea" json:"gitea"`
}

type GitService struct {
	Owner                  string    `yaml:"owner" json:"owner"`
	Name                   string    `yaml:"name" json:"name"`
	RepoURLFormat          string    `yaml:"repoUrlFormat" json:"repoUrlFormat"`
	CommitURLFormat        string    `yaml:"commitUrlFormat" json:"commitUrlFormat"`
	DownloadURLFormat      string    `yaml:"downloadUrlFormat" json:"downloadUrlFormat"`
	ReleaseNotesURLFormat  string    `yaml:"releaseNotesUrlFormat" json:"releaseNotesUrlFormat"`
	LatestReleaseURLFormat string    `yaml:"latestReleaseUrlFormat" json:"latestReleaseUrlFormat"`
	IssueTrackerURLFormat  string    `yaml:"issueTrackerUrlFormat" json:"issueTrackerUrlFormat"`
	Username               string    `yaml:"username" json:"username"`
	Password               string    `yaml:"password" json:"password"`
	TagName                string    `yaml:"tagName" json:"tagName"`
	ReleaseName            string    `yaml:"releaseName" json:"releaseName"`
	CommitAuthorName       string    `yaml:"commitAuthorName" json:"commitAuthorName"`
	CommitAuthorEmail      string    `yaml:"commitAuthorEmail" json:"commitAuthorEmail"`
	Sign                   bool      `yaml:"sign" json:"sign"`
	SigningKey             string    `yaml:"signingKey" json:"signingKey"`
	Overwrite              bool      `yaml:"overwrite" json:"overwrite"`
	AllowUploadToExisting  bool      `yaml:"allowUploadToExisting" json:"allowUploadToExisting"`
	APIEndpoint            string    `yaml:"apiEndpoint" json:"apiEndpoint"`
	Changelog              Changelog `yaml:"changelog" json:"changelog"`
}

type Changelog struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Sort     string `yaml:"sort" json:"sort"`
	External string `yaml:"external" json:"external"`
}

type Github struct {
	GitService      `yaml:",inline"`
	TargetCommitish string `yaml:"targetCommitish" json:"targetCommitish"`
	Draft           bool   `yaml:"draft" json:"draft"`
	Prerelease      bool   `yaml:"prerelease" json:"prerelease"`
}

type Gitea struct {
	GitService      `yaml:",inline"`
	TargetCommitish string `yaml:"targetCommitish" json:"targetCommitish"`
	Draft           bool   `yaml:"draft" json:"draft"`
	Prerelease      bool   `yaml:"prerelease" json:"prerelease"`
}

type Gitlab struct {
	GitService `yaml:",inline"`
	Ref        string `yaml:"ref" json:"ref"`
}

type Signing struct {
	Enabled     *bool  `yaml:"enabled" json:"enabled"`
	Armored     bool   `yaml:"armored" json:"armored"`
	KeyRingFile string `yaml:"keyRingFile" json:"keyRingFile"`
	Passphrase  string `yaml:"passphrase" json:"passphrase"`
}

type Artifact struct {
	Path        string `yaml:"path" json:"path"`
	Hash        string `yaml:"hash" json:"hash"`
	Platform    string `yaml:"platform" json:"platform"`
	JavaVersion Scalar `yaml:"javaVersion" json:"javaVersion"`
}

type Distribution struct {
	Name            string     `yaml:"name" json:"name"`
	Type            string     `yaml:"type" json:"type"`
	Executable      string     `yaml:"executable" json:"executable"`
	JavaVersion     Scalar     `yaml:"javaVersion" json:"javaVersion"`
	Tags            []string   `yaml:"tags" json:"tags"`
	ExtraProperties Properties `yaml:"extraProperties" json:"extraProperties"`
	Artifacts       []Artifact `yaml:"artifacts" json:"artifacts"`
	Brew            Brew       `yaml:"brew" json:"brew"`
	Chocolatey      Chocolatey `yaml:"chocolatey" json:"chocolatey"`
	Scoop           Scoop      `yaml:"scoop" json:"scoop"`
	Snap            Snap       `yaml:"snap" json:"snap"`
}

type Download struct {
	HTTP []HTTPDownloader `yaml:"http" json:"http"`
}

type HTTPDownloader struct {
	Name            string     `yaml:"name" json:"name"`
	Enabled         *bool      `yaml:"enabled" json:"enabled"`
	Username        string     `yaml:"username" json:"username"`
	Password        string     `yaml:"password" json:"password"`
	Authorization   string     `yaml:"authorization" json:"authorization"`
	Headers         Properties `yaml:"headers" json:"headers"`
	ConnectTimeout  int        `yaml:"connectTimeout" json:"connectTimeout"`
	ReadTimeout     int        `yaml:"readTimeout" json:"readTimeout"`
	// ExtraProperties carries opaque user data.
	ExtraProperties Properties `yaml:"extraProperties" json:"extraProperties"`
}

// IsSet reports whether any field was populated.
func (h HTTPDownloader) IsSet() bool {
	return h.Enabled != nil ||
		notBlank(h.Name) ||
		notBlank(h.Username) ||
		notBlank(h.Password) ||
		notBlank(h.Authorization) ||
		len(h.Headers) > 0 ||
		h.ConnectTimeout != 0 ||
		h.ReadTimeout != 0 ||
		len(h.ExtraProperties) > 0
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
