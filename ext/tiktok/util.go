package tiktok

import "strings"

// AssetURL resolves asset paths returned by the lookup API.
// relative paths are anchored on the API's own origin, which is
// where tikwm serves proxied media from.
func AssetURL(apiBase string, assetPath string) string {
	if strings.HasPrefix(assetPath, "http") {
		return assetPath
	}
	return strings.TrimSuffix(apiBase, "/") + assetPath
}
