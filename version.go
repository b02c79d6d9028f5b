package richdoc

import (
	_ "embed"
	"regexp"
	"runtime/debug"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string
	GoVersion string
	Revision  string
	Modified  bool
}

// ReadBuildInfo combines the embedded version with the toolchain and VCS
// details stamped into the binary, when available.
func ReadBuildInfo() BuildInfo {
	info := BuildInfo{Version: Version()}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String formats the build info as one line, e.g.
// "v0.1.0 (go1.25.7, rev 1a2b3c4)".
func (b BuildInfo) String() string {
	var sb strings.Builder
	sb.WriteString("v" + b.Version)
	var extra []string
	if b.GoVersion != "" {
		extra = append(extra, b.GoVersion)
	}
	if b.Revision != "" {
		rev := b.Revision
		if len(rev) > 7 {
			rev = rev[:7]
		}
		if b.Modified {
			rev += "+dirty"
		}
		extra = append(extra, "rev "+rev)
	}
	if len(extra) > 0 {
		sb.WriteString(" (" + strings.Join(extra, ", ") + ")")
	}
	return sb.String()
}
