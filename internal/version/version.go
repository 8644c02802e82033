package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/forthekill/GenSec4/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/forthekill/GenSec4/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/forthekill/GenSec4/internal/version.Date={{.Date}}
)
