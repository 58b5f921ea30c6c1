package youtube

import "strings"

// titleSeparator splits the recurring "Series - Date - Title" convention of upstream titles.
const titleSeparator = "-"

// ExtractTitle returns the part of a raw upstream title after its last separator.
// Titles with fewer than two separators yield an empty string.
// Surrounding whitespace of the extracted part is trimmed.
func ExtractTitle(raw string) string {
	if strings.Count(raw, titleSeparator) < 2 {
		return ""
	}
	last := strings.LastIndex(raw, titleSeparator)
	return strings.TrimSpace(raw[last+len(titleSeparator):])
}
