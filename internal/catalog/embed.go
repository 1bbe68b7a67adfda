package catalog

import (
	"net/url"
	"strings"
)

const youtubeEmbedBase = "https://www.youtube.com/embed/"

// EmbedURL turns a reel's watch link into a URL an iframe player accepts.
// Links that are not recognised YouTube watch links are returned unchanged.
func EmbedURL(ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}

	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	switch host {
	case "youtube.com", "m.youtube.com":
		if u.Path == "/watch" {
			if id := u.Query().Get("v"); id != "" {
				return youtubeEmbedBase + id
			}
		}
	case "youtu.be":
		if id := strings.Trim(u.Path, "/"); id != "" {
			return youtubeEmbedBase + id
		}
	}

	return ref
}
