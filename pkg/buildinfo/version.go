// Package buildinfo provides build-time version information.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/matzehuels/tilings/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/tilings/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/tilings/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Template returns the cobra version template: the command name and
// version, then the commit and build date when they were set.
func Template() string {
	t := fmt.Sprintf("{{.Name}} %s\n", Version)
	if Commit != "none" {
		t += fmt.Sprintf("commit: %s\n", Commit)
	}
	if Date != "unknown" {
		t += fmt.Sprintf("built: %s\n", Date)
	}
	return t
}
