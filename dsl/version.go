package dsl

import (
	"strings"

	"github.com/lyraproj/semver/semver"
)

const ToolName = `SonicWeave`

var Version semver.Version

func init() {
	var err error
	if Version, err = semver.ParseVersion(`0.0.0-alpha`); err != nil {
		panic(err)
	}
}

// VersionString returns the version in the form used in banners, e.g. "v0.0.0 alpha"
func VersionString() string {
	stable := Version.ToStable().String()
	s := `v` + stable
	if !Version.IsStable() {
		s += ` ` + strings.TrimPrefix(Version.String(), stable+`-`)
	}
	return s
}

// Banner returns the tool name followed by the version
func Banner() string {
	return ToolName + ` ` + VersionString()
}
