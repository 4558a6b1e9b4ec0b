// Package drivelink rewrites Google Drive share links into their
// direct-download form so audio players can stream them.
package drivelink

import "regexp"

// https://drive.google.com/open?id=0B3NX21EKcTD7ZjFlNTd1T05LNGM
// http://docs.google.com/uc?export=open&id=0B3NX21EKcTD7ZjFlNTd1T05LNGM
var openLinkRE = regexp.MustCompile(`^(?:https?://)?drive\.google\.com/open\?id=([a-zA-Z0-9-]+)$`)

// Normalize converts a Drive "open" share link into its direct-download
// equivalent. Anything that does not match the share-link pattern is
// returned unchanged.
func Normalize(link string) string {
	m := openLinkRE.FindStringSubmatch(link)
	if m == nil {
		return link
	}
	return "http://docs.google.com/uc?export=open&id=" + m[1]
}
