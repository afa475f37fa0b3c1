package imaging

import (
	"path/filepath"
	"strings"
)

// MIMETypeForPath maps a file path's extension to an image MIME type.
// The match is case-insensitive. Unknown or missing extensions fall
// back to image/png; this is a best-effort heuristic based on the file
// name, not content sniffing.
func MIMETypeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "image/png"
	}
}
