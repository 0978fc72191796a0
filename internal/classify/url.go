// Package classify decides which acquisition strategy a source URL takes.
package classify

import (
	"net/url"
	"strings"
)

// ContentKind is the acquisition strategy for a source URL.
type ContentKind string

const (
	// KindGeneric routes through the scrape collaborator.
	KindGeneric ContentKind = "generic"
	// KindVideo routes through the video transcript collaborator.
	KindVideo ContentKind = "video"
)

// videoPathPrefixes are single-segment YouTube path shapes that carry a
// video or embed ID in the following segment.
var videoPathPrefixes = []string{"shorts", "embed", "v"}

// Classify determines the content kind from URL shape alone. Classification
// is total: malformed or unrecognized URLs are generic, never an error.
func Classify(rawURL string) ContentKind {
	u, err := url.Parse(rawURL)
	if err != nil {
		return KindGeneric
	}

	host := u.Host
	if isYouTubeShortHost(host) {
		if firstPathSegment(u.Path) != "" {
			return KindVideo
		}
		return KindGeneric
	}

	if !isYouTubeHost(host) {
		return KindGeneric
	}

	segments := pathSegments(u.Path)
	if len(segments) == 0 {
		return KindGeneric
	}

	// /watch?v=<id>
	if segments[0] == "watch" && u.Query().Get("v") != "" {
		return KindVideo
	}

	// /shorts/<id>, /embed/<id>, /v/<id>
	for _, prefix := range videoPathPrefixes {
		if segments[0] == prefix && len(segments) >= 2 && segments[1] != "" {
			return KindVideo
		}
	}

	// Channel/playlist style: at least two path segments ending in an ID.
	if len(segments) >= 2 {
		return KindVideo
	}

	return KindGeneric
}

func isYouTubeHost(host string) bool {
	return host == "youtube.com" || strings.HasSuffix(host, ".youtube.com")
}

func isYouTubeShortHost(host string) bool {
	return host == "youtu.be"
}

func firstPathSegment(path string) string {
	segments := pathSegments(path)
	if len(segments) == 0 {
		return ""
	}
	return segments[0]
}

func pathSegments(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
