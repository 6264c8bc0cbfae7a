package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/impactspark/impactspark/internal/config"
	"github.com/impactspark/impactspark/internal/record"
	"github.com/impactspark/impactspark/internal/storage"
)

// Title truncation lengths by context.
const (
	ListTitleMaxLen    = 50 // Used in list command output
	SimilarTitleMaxLen = 70 // Used in similar command output
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError writes an error message to stderr and returns the exit code.
func outputError(code int, format string, args ...interface{}) int {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	return code
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
	Count  int    `json:"count,omitempty"`
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// mustFindWorkspace locates the workspace root or exits.
func mustFindWorkspace() string {
	root, exitCode := getWorkRoot()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	wsRoot, err := config.FindWorkspace(root)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return wsRoot
}

// mustLoadRecords reads the workspace record batch or exits.
func mustLoadRecords(wsRoot string) []record.Record {
	records, err := storage.ReadAll(config.RecordsPath(wsRoot))
	if err != nil {
		exitWithError(ExitDataError, "reading records: %v", err)
	}
	return records
}

// mustOpenDatabase opens the SQLite cache or exits. Callers must Close.
func mustOpenDatabase(wsRoot string) *storage.DB {
	if err := os.MkdirAll(config.CachePath(wsRoot), 0755); err != nil {
		exitWithError(ExitError, "creating cache directory: %v", err)
	}
	db, err := storage.OpenDB(config.DBPath(wsRoot))
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	return db
}

// mustLoadConfig loads the effective (workspace over global) configuration.
func mustLoadConfig(wsRoot string) config.Config {
	cfg, err := config.Load(wsRoot)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return config.Effective(cfg)
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// formatAuthorsShort shows the first maxCount names with "et al." after.
func formatAuthorsShort(authors string, maxCount int) string {
	names := record.SplitList(authors)
	if len(names) == 0 {
		return ""
	}
	if len(names) > maxCount {
		return strings.Join(names[:maxCount], ", ") + " et al."
	}
	return strings.Join(names, ", ")
}
