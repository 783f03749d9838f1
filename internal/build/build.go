// Package build holds information set at build time.
package build

// Version of the command. Set with -ldflags "-X github.com/askiada/go-identicon/internal/build.Version=x.y.z".
var Version = "0.0.0"
