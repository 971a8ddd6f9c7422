package convert

import (
	"fmt"

	"github.com/eugenenazirov/releasecfg/internal/model"
	"github.com/eugenenazirov/releasecfg/internal/raw"
)

// Convert builds a model from tree. It fails without returning a partial
// model when a value cannot be mapped onto a known shape.
func Convert(tree *raw.Tree) (*model.Model, error) {
	if tree == nil {
		return nil, fmt.Errorf("%w: empty document", ErrMalformed)
	}

	m := model.New()
	m.Project = convertProject(tree.Project)

	release, err := convertRelease(tree.Release)
	if err != nil {
		return nil, err
	}
	m.Release = release
	m.Packagers = convertPackagers(tree.Packagers.Brew, tree.Packagers.Chocolatey, tree.Packagers.Scoop, tree.Packagers.Snap)
	m.Announce = convertAnnounce(tree.Announce)
	m.Signing = convertSigning(tree.Signing)
	m.Files = convertArtifacts(tree.Files)

	distributions, err := convertDistributions(tree.Distributions)
	if err != nil {
		return nil, err
	}
	m.Distributions = distributions

	download, err := convertDownload(tree.Download)
	if err != nil {
		return nil, err
	}
	m.Download = download

	return m, nil
}

func convertProject(p raw.Project) model.Project {
	return model.Project{
		Name:            p.Name,
		Version:         p.Version.String(),
		Description:     p.Description,
		LongDescription: p.LongDescription,
		Website:         p.Website,
		License:         p.License,
		JavaVersion:     p.JavaVersion.String(),
		Tags:            model.UniqueStrings(p.Tags),
		Authors:         copyStrings(p.Authors),
		ExtraProperties: convertProperties(p.ExtraProperties),
	}
}

func convertRelease(r raw.Release) (model.Release, error) {
	var out model.Release
	if r.Github != nil {
		base, err := convertGitService(model.GithubName, r.Github.GitService)
		if err != nil {
			return model.Release{}, err
		}
		out.Github = &model.Github{
			GitService:      base,
			TargetCommitish: r.Github.TargetCommitish,
			Draft:           r.Github.Draft,
			Prerelease:      r.Github.Prerelease,
		}
	}
	if r.Gitlab != nil {
		base, err := convertGitService(model.GitlabName, r.Gitlab.GitService)
		if err != nil {
			return model.Release{}, err
		}
		out.Gitlab = &model.Gitlab{GitService: base, Ref: r.Gitlab.Ref}
	}
	if r.Gitea != nil {
		base, err := convertGitService(model.GiteaName, r.Gitea.GitService)
		if err != nil {
			return model.Release{}, err
		}
		out.Gitea = &model.Gitea{
			GitService:      base,
			TargetCommitish: r.Gitea.TargetCommitish,
			Draft:           r.Gitea.Draft,
			Prerelease:      r.Gitea.Prerelease,
		}
	}
	return out, nil
}

func convertGitService(name string, s raw.GitService) (model.GitService, error) {
	sort, err := model.ParseChangelogSort(s.Changelog.Sort)
	if err != nil {
		return model.GitService{}, fmt.Errorf("%w: release.%s.changelog.sort: %w", ErrMalformed, name, err)
	}
	return model.GitService{
		Owner:                  s.Owner,
		Name:                   s.Name,
		RepoURLFormat:          s.RepoURLFormat,
		CommitURLFormat:        s.CommitURLFormat,
		DownloadURLFormat:      s.DownloadURLFormat,
		ReleaseNotesURLFormat:  s.ReleaseNotesURLFormat,
		LatestReleaseURLFormat: s.LatestReleaseURLFormat,
		IssueTrackerURLFormat:  s.IssueTrackerURLFormat,
		Username:               s.Username,
		Password:               s.Password,
		TagName:                s.TagName,
		ReleaseName:            s.ReleaseName,
		CommitAuthorName:       s.CommitAuthorName,
		CommitAuthorEmail:      s.CommitAuthorEmail,
		Sign:                   s.Sign,
		SigningKey:             s.SigningKey,
		Overwrite:              s.Overwrite,
		AllowUploadToExisting:  s.AllowUploadToExisting,
		APIEndpoint:            s.APIEndpoint,
		Changelog: model.Changelog{
			Enabled:  s.Changelog.Enabled,
			Sort:     sort,
			External: s.Changelog.External,
		},
	}, nil
}

func convertSigning(s raw.Signing) model.Signing {
	out := model.Signing{
		Armored:     s.Armored,
		KeyRingFile: s.KeyRingFile,
		Passphrase:  s.Passphrase,
	}
	if s.Enabled != nil {
		out.SetEnabled(*s.Enabled)
	}
	return out
}

func convertArtifacts(in []raw.Artifact) []model.Artifact {
	if len(in) == 0 {
		return nil
	}
	out := make([]model.Artifact, 0, len(in))
	for _, a := range in {
		out = append(out, model.NewArtifact(a.Path, a.Hash, a.Platform, a.JavaVersion.String()))
	}
	return out
}

func convertDistributions(in []raw.Distribution) ([]*model.Distribution, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]*model.Distribution, 0, len(in))
	for i, d := range in {
		typ, err := model.ParseDistributionType(d.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: distributions[%d].type: %w", ErrMalformed, i, err)
		}
		out = append(out, &model.Distribution{
			Name:            d.Name,
			Type:            typ,
			Executable:      d.Executable,
			JavaVersion:     d.JavaVersion.String(),
			Tags:            model.UniqueStrings(d.Tags),
			ExtraProperties: convertProperties(d.ExtraProperties),
			Artifacts:       convertArtifacts(d.Artifacts),
			Packagers:       convertPackagers(d.Brew, d.Chocolatey, d.Scoop, d.Snap),
		})
	}
	return out, nil
}

func convertDownload(in raw.Download) (model.Download, error) {
	var out model.Download
	for i, h := range in.HTTP {
		if !h.IsSet() {
			continue
		}
		auth, err := model.ParseAuthorization(h.Authorization)
		if err != nil {
			return model.Download{}, fmt.Errorf("%w: download.http[%d].authorization: %w", ErrMalformed, i, err)
		}
		d := model.NewHTTPDownloader(h.Name)
		if h.Enabled != nil {
			d.SetEnabled(*h.Enabled)
		}
		d.Username = h.Username
		d.Password = h.Password
		d.Authorization = auth
		d.Headers = convertProperties(h.Headers)
		d.ConnectTimeout = h.ConnectTimeout
		d.ReadTimeout = h.ReadTimeout
		d.SetExtraProperties(convertProperties(h.ExtraProperties))
		out.HTTP = append(out.HTTP, d)
	}
	return out, nil
}

func convertProperties(in raw.Properties) model.Properties {
	var out model.Properties
	for _, p := range in {
		out.Set(p.Key, p.Value)
	}
	return out
}

func copyStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
