package model

import "strings"

const legacyJavaPrefix = "1.8"

// Artifact is a single distributable file.
type Artifact struct {
	Path     string
	Hash     string
	Platform string

	javaVersion string
}

// NewArtifact builds an artifact, normalizing its java version.
func NewArtifact(path, hash, platform, javaVersion string) Artifact {
	a := Artifact{Path: path, Hash: hash, Platform: platform}
	a.SetJavaVersion(javaVersion)
	return a
}

// JavaVersion returns the normalized runtime version tag.
func (a Artifact) JavaVersion() string {
	return a.javaVersion
}

// SetJavaVersion stores v after normalization.
func (a *Artifact) SetJavaVersion(v string) {
	a.javaVersion = NormalizeJavaVersion(v)
}

// NormalizeJavaVersion maps any legacy "1.8" version onto "8" and returns
// every other value unchanged.
func NormalizeJavaVersion(v string) string {
	if strings.TrimSpace(v) != "" && strings.HasPrefix(v, legacyJavaPrefix) {
		return "8"
	}
	return v
}

func cloneArtifacts(in []Artifact) []Artifact {
	if len(in) == 0 {
		return nil
	}
	out := make([]Artifact, len(in))
	copy(out, in)
	return out
}
