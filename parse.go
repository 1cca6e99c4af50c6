package hwid

import "strings"

// The probes read semi-structured text: key/value lines from DMI dumps and
// profiler output, or fixed-position tabular command output. Each helper
// implements one extraction rule and returns "" on a miss — only source
// I/O failures abort a collection, never an absent value.

// prefixedValue returns the trimmed content after delim on the first line
// whose trimmed form starts with prefix.
func prefixedValue(output, prefix, delim string) string {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, prefix) {
			continue
		}

		_, value, found := strings.Cut(line, delim)
		if !found {
			continue
		}

		return strings.TrimSpace(value)
	}

	return ""
}

// containedValue returns the trimmed content after delim on the first line
// containing substr.
func containedValue(output, substr, delim string) string {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, substr) {
			continue
		}

		_, value, found := strings.Cut(line, delim)
		if !found {
			continue
		}

		return strings.TrimSpace(value)
	}

	return ""
}

// lineAt returns the n-th line of output (0-based), trimmed.
// wmic-style output carries the value on the line after the header.
func lineAt(output string, n int) string {
	lines := strings.Split(output, "\n")
	if n >= len(lines) {
		return ""
	}

	return strings.TrimSpace(lines[n])
}

// fieldNear returns the n-th whitespace-separated field (0-based) of the
// first line containing substr.
func fieldNear(output, substr string, n int) string {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, substr) {
			continue
		}

		fields := strings.Fields(line)
		if n >= len(fields) {
			return ""
		}

		return fields[n]
	}

	return ""
}

// singleLine reduces a raw probe value to the snapshot invariant: the
// content before the first newline, trimmed.
func singleLine(value string) string {
	value, _, _ = strings.Cut(value, "\n")

	return strings.TrimSpace(value)
}
