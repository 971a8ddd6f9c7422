package model

import (
	"fmt"
	"strings"
)

// Hosting service identifiers.
const (
	GithubName = "github"
	GitlabName = "gitlab"
	GiteaName  = "gitea"
)

// ChangelogSort orders changelog entries.
type ChangelogSort string

const (
	SortAsc  ChangelogSort = "ASC"
	SortDesc ChangelogSort = "DESC"
)

// ParseChangelogSort accepts ASC or DESC in any case; blank means DESC.
func ParseChangelogSort(s string) (ChangelogSort, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(SortDesc):
		return SortDesc, nil
	case string(SortAsc):
		return SortAsc, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownChangelogSort, s)
	}
}

// Changelog configures release notes generation.
type Changelog struct {
	Enabled  bool
	Sort     ChangelogSort
	External string
}

// GitService holds the attributes shared by every hosting service.
type GitService struct {
	Owner                  string
	Name                   string
	RepoURLFormat          string
	CommitURLFormat        string
	DownloadURLFormat      string
	ReleaseNotesURLFormat  string
	LatestReleaseURLFormat string
	IssueTrackerURLFormat  string
	Username               string
	Password               string
	TagName                string
	ReleaseName            string
	CommitAuthorName       string
	CommitAuthorEmail      string
	Sign                   bool
	SigningKey             string
	Overwrite              bool
	AllowUploadToExisting  bool
	APIEndpoint            string
	Changelog              Changelog
}

// HostingService is the closed set of release hosts. Only *Github, *Gitea
// and *Gitlab implement it.
type HostingService interface {
	ServiceName() string
	Base() *GitService
	isHostingService()
}

// Github release settings.
type Github struct {
	GitService
	TargetCommitish string
	Draft           bool
	Prerelease      bool
}

func (g *Github) ServiceName() string { return GithubName }
func (g *Github) Base() *GitService   { return &g.GitService }
func (g *Github) isHostingService()   {}

// Gitea release settings.
type Gitea struct {
	GitService
	TargetCommitish string
	Draft           bool
	Prerelease      bool
}

func (g *Gitea) ServiceName() string { return GiteaName }
func (g *Gitea) Base() *GitService   { return &g.GitService }
func (g *Gitea) isHostingService()   {}

// Gitlab release settings.
type Gitlab struct {
	GitService
	Ref string
}

func (g *Gitlab) ServiceName() string { return GitlabName }
func (g *Gitlab) Base() *GitService   { return &g.GitService }
func (g *Gitlab) isHostingService()   {}

// Release holds at most one configured hosting service per valid model.
type Release struct {
	Github *Github
	Gitlab *Gitlab
	Gitea  *Gitea
}

// Services lists every configured service in a fixed order.
func (r *Release) Services() []HostingService {
	var out []HostingService
	if r.Github != nil {
		out = append(out, r.Github)
	}
	if r.Gitlab != nil {
		out = append(out, r.Gitlab)
	}
	if r.Gitea != nil {
		out = append(out, r.Gitea)
	}
	return out
}

// Service returns the hosting service when exactly one is configured.
func (r *Release) Service() HostingService {
	services := r.Services()
	if len(services) != 1 {
		return nil
	}
	return services[0]
}
