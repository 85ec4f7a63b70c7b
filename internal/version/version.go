// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.4.0"

// Milestones:
// 0.4.0 - Mission catalog hot reload, cron-style sol and season notifications
// 0.3.0 - Orbit events (aphelion, perihelion, seasons), low-accuracy Ls model
// 0.2.0 - Solar longitude conversions, MY/Sol/Ls parsing, cobra CLI
// 0.1.0 - Initial release: epoch table, UTC <-> Mars year/sol, live TUI clock
