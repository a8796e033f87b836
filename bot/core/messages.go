package core

import "loady/enums"

var noMediaMessages = map[enums.Platform]string{
	enums.PlatformTikTok: "failed to download TikTok content. ensure:\n" +
		"1. link is valid\n" +
		"2. video isn't private\n" +
		"3. URL format: https://www.tiktok.com/@user/video/123",
	enums.PlatformInstagram: "failed to download Instagram content. ensure:\n" +
		"1. post is public\n" +
		"2. account isn't private\n" +
		"3. URL is valid",
	enums.PlatformYouTube: "failed to download YouTube video. ensure:\n" +
		"1. video is available\n" +
		"2. not age-restricted\n" +
		"3. under 15 minutes",
	enums.PlatformLinkedIn: "failed to download LinkedIn video. ensure:\n" +
		"1. video is from a public post\n" +
		"2. URL is valid\n" +
		"3. not a live stream",
}

// NoMediaMessage returns the per-platform guidance shown when
// resolution comes back empty.
func NoMediaMessage(platform enums.Platform) string {
	if message, ok := noMediaMessages[platform]; ok {
		return message
	}
	return "download failed"
}
