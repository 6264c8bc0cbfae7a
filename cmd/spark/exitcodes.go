package main

// Exit codes shared across commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing workspace, invalid paths)
	ExitDataError   = 3 // Data error (malformed input, validation failure)
	ExitAPIError    = 4 // OpenAlex API error
	ExitNotFound    = 5 // Requested work not found upstream
)
