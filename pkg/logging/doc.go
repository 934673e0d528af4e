// Package logging configures the slog JSON logger shared by foodkgd and the
// foodkg CLI.
//
// Records go to stderr as JSON and carry "module" and "version" attributes.
// At debug level the source location is added.
//
//	logging.SetDefaultStructuredLogger("foodkgd", version)
//	slog.Info("server listening", "address", addr)
//
// The level comes from LOG_LEVEL (debug, info, warn/warning, error; default
// info) unless passed explicitly, as the CLI does with --log-level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("foodkg", version, "debug")
//
// NewLogLogger adapts the default handler to a *log.Logger for APIs such as
// http.Server.ErrorLog.
package logging
