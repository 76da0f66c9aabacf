// Package logging configures zerolog for nagare and keeps credentials out of logs.
//
// Formatter and git output is logged when a step fails. Push errors in
// particular can echo a remote URL, so captured text passes through
// FilterSensitiveValue before it reaches a log event or the log file.
package logging

import (
	"io"
	"regexp"

	"github.com/rs/zerolog"
)

// RedactedValue is the replacement string for sensitive data.
const RedactedValue = "[REDACTED]"

// redaction pairs a credential pattern with its replacement text.
type redaction struct {
	pattern     *regexp.Regexp
	replacement string
}

// redactions match credential formats that show up in git and CI output.
var redactions = []redaction{ //nolint:gochecknoglobals // Package-level patterns for reuse
	// GitHub tokens (ghp_, gho_, ghu_, ghs_, ghr_) and fine-grained PATs
	{regexp.MustCompile(`gh[pousr]_[a-zA-Z0-9]{20,}`), RedactedValue},
	{regexp.MustCompile(`github_pat_[a-zA-Z0-9_]{22,}`), RedactedValue},

	// Userinfo in remote URLs keeps the host visible: https://[REDACTED]@github.com
	{regexp.MustCompile(`://[^/\s:@]+:[^/\s@]+@`), "://" + RedactedValue + "@"},

	// Bearer tokens
	{regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9._-]{20,}`), RedactedValue},

	// Generic key=value secrets
	{regexp.MustCompile(`(?i)(token|secret|password|passwd|api[_-]?key)\s*[:=]\s*["']?[^\s"']{8,}["']?`), RedactedValue},

	// SSH private keys
	{regexp.MustCompile(`(?i)-----BEGIN[A-Z\s]+PRIVATE KEY-----`), RedactedValue},
}

// ContainsSensitiveData reports whether s matches any sensitive pattern.
func ContainsSensitiveData(s string) bool {
	for _, r := range redactions {
		if r.pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// FilterSensitiveValue replaces every sensitive match in value.
func FilterSensitiveValue(value string) string {
	result := value
	for _, r := range redactions {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// SensitiveDataHook flags log events whose message contains sensitive data.
// zerolog does not let a hook rewrite the message, so call sites filter values
// and this hook marks anything that slipped through.
type SensitiveDataHook struct{}

// NewSensitiveDataHook creates a new SensitiveDataHook.
func NewSensitiveDataHook() *SensitiveDataHook {
	return &SensitiveDataHook{}
}

// Run implements the zerolog.Hook interface.
func (h *SensitiveDataHook) Run(e *zerolog.Event, _ zerolog.Level, msg string) {
	if ContainsSensitiveData(msg) {
		e.Bool("contains_filtered_data", true)
	}
}

// FilteringWriter wraps an io.Writer and redacts sensitive data from everything written.
type FilteringWriter struct {
	w io.Writer
}

// NewFilteringWriter creates a FilteringWriter around w.
func NewFilteringWriter(w io.Writer) *FilteringWriter {
	return &FilteringWriter{w: w}
}

// Write implements io.Writer. It reports the original length so callers never see a short write.
func (fw *FilteringWriter) Write(p []byte) (n int, err error) {
	if _, err = fw.w.Write([]byte(FilterSensitiveValue(string(p)))); err != nil {
		return 0, err
	}
	return len(p), nil
}
