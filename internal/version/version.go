// Package version holds the application version reported by the API.
package version

// Version is overridden at build time with -ldflags "-X .../internal/version.Version=x.y.z".
var Version = "1.0.0"
