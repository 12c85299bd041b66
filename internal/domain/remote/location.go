package remote

import (
	"net/url"
	"strings"
)

// IsRemoteLocation reports whether the string is addressable for sync:
// an absolute URL, a //host/share path or an smb:// path. Anything else is
// stored as an inert label and never synced against.
func IsRemoteLocation(s string) bool {
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "//") || strings.HasPrefix(s, "smb://") {
		return true
	}
	u, err := url.Parse(s)
	return err == nil && u.IsAbs() && u.Host != ""
}

// Authenticated embeds url-encoded credentials into a URL location. This
// covers smb:// paths too, which parse as absolute URLs; //host paths and
// plain labels are returned unchanged.
func Authenticated(base, username, password string) string {
	if username == "" {
		return base
	}
	u, err := url.Parse(base)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return base
	}
	if password != "" {
		u.User = url.UserPassword(username, password)
	} else {
		u.User = url.User(username)
	}
	return u.String()
}

// HTTPLocation degrades share-style locations to plain HTTP. The share
// prefixes are aspirational naming: no SMB client was ever implemented, all
// traffic goes over HTTP GET/PUT regardless.
func HTTPLocation(s string) string {
	if rest, ok := strings.CutPrefix(s, "smb://"); ok {
		return "http://" + rest
	}
	if strings.HasPrefix(s, "//") {
		return "http:" + s
	}
	return s
}
