package model

import (
	"fmt"
	"strings"
)

// DistributionType describes how a distribution is packaged.
type DistributionType string

const (
	JavaBinary  DistributionType = "JAVA_BINARY"
	Binary      DistributionType = "BINARY"
	JLink       DistributionType = "JLINK"
	NativeImage DistributionType = "NATIVE_IMAGE"
	SingleJar   DistributionType = "SINGLE_JAR"
)

// ParseDistributionType is case-insensitive and treats '-' as '_'. Blank
// defaults to JAVA_BINARY.
func ParseDistributionType(s string) (DistributionType, error) {
	normalized := DistributionType(strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_"))
	switch normalized {
	case "":
		return JavaBinary, nil
	case JavaBinary, Binary, JLink, NativeImage, SingleJar:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDistributionType, s)
	}
}

// RequiresJavaVersion reports whether artifacts of this type run on a JVM.
func (t DistributionType) RequiresJavaVersion() bool {
	switch t {
	case JavaBinary, JLink, SingleJar:
		return true
	default:
		return false
	}
}

// Distribution is a named set of artifacts published together.
//
// Packagers holds per-distribution overrides as configured; Effective is
// filled in by the cascading resolver and is what publishers consume.
type Distribution struct {
	Name            string
	Type            DistributionType
	Executable      string
	JavaVersion     string
	Tags            []string
	ExtraProperties Properties
	Artifacts       []Artifact
	Packagers       Packagers
	Effective       Packagers
}
