package frontkit

import "runtime/debug"

// Name is the module's display name.
const Name = "frontkit"

// Version is the release version.
const Version = "0.1.0"

// GitCommit is set at link time:
//
//	go build -ldflags "-X github.com/ZaguanLabs/frontkit.GitCommit=$(git rev-parse HEAD)"
var GitCommit string

var readBuildInfo = debug.ReadBuildInfo

// Revision returns the commit the binary was built from. GitCommit wins;
// otherwise the vcs.revision stamped by the go tool is used. Empty when
// neither is known.
func Revision() string {
	if GitCommit != "" {
		return GitCommit
	}
	info, ok := readBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}

// FullVersion returns Version with the short revision appended when known,
// e.g. "0.1.0+0123456".
func FullVersion() string {
	rev := Revision()
	if rev == "" {
		return Version
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	return Version + "+" + rev
}
