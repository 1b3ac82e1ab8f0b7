// Package media normalizes externally hosted asset URLs.
package media

import (
	"regexp"
	"strings"
)

// driveIDPattern pulls the file id out of the share-link shapes Google
// Drive hands out: /file/d/<id>/view and open?id=<id>.
var driveIDPattern = regexp.MustCompile(`(?:/d/|id=)([a-zA-Z0-9_-]+)`)

// ProcessImageURL rewrites a Google Drive share link into a direct
// thumbnail URL at full width, which is embeddable without Drive's viewer
// chrome. Anything that is not a Drive link passes through untouched.
func ProcessImageURL(url string) string {
	if !isDriveURL(url) {
		return url
	}
	m := driveIDPattern.FindStringSubmatch(url)
	if m == nil {
		return url
	}
	return "https://drive.google.com/thumbnail?id=" + m[1] + "&sz=w4096"
}

func isDriveURL(url string) bool {
	return strings.Contains(url, "drive.google.com") || strings.Contains(url, "docs.google.com")
}
