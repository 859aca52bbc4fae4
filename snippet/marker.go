package snippet

import "strings"

const (
	// StartPfx and StartSfx surround the title on the line starting a
	// snippet
	StartPfx = "-- "
	StartSfx = " --"
	// EndMarker is the line ending a snippet
	EndMarker = "-- end --"

	minStartLen = len(StartPfx) + len(StartSfx)
)

// startMarker returns the line that starts a snippet with the given title
func startMarker(title string) string {
	return StartPfx + title + StartSfx
}

// trimCR removes any trailing carriage return left by a "\r\n" line ending
func trimCR(line string) string {
	return strings.TrimSuffix(line, "\r")
}

// isEndMarker returns true if the line ends a snippet
func isEndMarker(line string) bool {
	return trimCR(line) == EndMarker
}

// parseStartMarker returns the title and true if the line starts a
// snippet. The end marker is never taken as a start marker.
func parseStartMarker(line string) (string, bool) {
	line = trimCR(line)
	if line == EndMarker ||
		len(line) < minStartLen ||
		!strings.HasPrefix(line, StartPfx) ||
		!strings.HasSuffix(line, StartSfx) {
		return "", false
	}
	return strings.TrimSpace(line[len(StartPfx) : len(line)-len(StartSfx)]),
		true
}
