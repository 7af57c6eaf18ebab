// internal/version/version.go
package version

// Version is overridden at build time via
// -ldflags "-X targetnorm/internal/version.Version=v1.2.3".
var Version = "dev"
