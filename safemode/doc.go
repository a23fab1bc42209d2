// Package safemode switches argument validation on or off for the core
// spatial operations.
//
// A Config holds the switch. It is safe for concurrent use and is passed
// explicitly; there is no package-level state. A Guard built on a Config
// runs the package validators before delegating when the Config is
// enabled, and delegates straight through when it is disabled.
//
// Config sources:
//
//   - NewConfig(enabled)
//   - FromEnv(): SPATIAL_SAFE_MODE=true|1|yes|on (case-insensitive)
//   - LoadFile(path): YAML document with a top-level `safe_mode` key
//
// Errors from a Guard are wrapped as "<Func>: <cause>" and still match the
// grid sentinels under errors.Is.
package safemode
