package cdpdoc

import (
	"sort"
	"strings"
)

// Platform identifies one of the supported customer data platforms.
// The set is fixed at build time.
type Platform string

// Supported platforms.
const (
	PlatformSegment   Platform = "segment"
	PlatformMParticle Platform = "mparticle"
	PlatformLytics    Platform = "lytics"
	PlatformZeotap    Platform = "zeotap"
)

// Platforms returns all supported platforms in canonical order.
func Platforms() []Platform {
	return []Platform{PlatformSegment, PlatformMParticle, PlatformLytics, PlatformZeotap}
}

// DisplayName returns the platform's marketing name for user-facing output.
func (p Platform) DisplayName() string {
	switch p {
	case PlatformSegment:
		return "Segment"
	case PlatformMParticle:
		return "mParticle"
	case PlatformLytics:
		return "Lytics"
	case PlatformZeotap:
		return "Zeotap"
	}
	return string(p)
}

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	switch p {
	case PlatformSegment, PlatformMParticle, PlatformLytics, PlatformZeotap:
		return true
	}
	return false
}

// platformAliases maps each platform to the lowercase strings that count as
// a mention. Kept as a single table so the matching rules stay data-driven
// and testable in one place.
var platformAliases = map[Platform][]string{
	PlatformSegment:   {"segment", "twilio segment", "segment.com"},
	PlatformMParticle: {"mparticle", "m-particle", "m particle"},
	PlatformLytics:    {"lytics"},
	PlatformZeotap:    {"zeotap"},
}

// ParsePlatform resolves a user-supplied name or alias to a Platform.
// Returns EINVALID if the name matches no supported platform.
func ParsePlatform(s string) (Platform, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, p := range Platforms() {
		for _, alias := range platformAliases[p] {
			if needle == alias {
				return p, nil
			}
		}
	}
	return "", Errorf(EINVALID, "unknown platform %q", s)
}

// ExtractPlatforms returns the platforms mentioned in text, ordered by the
// position of their first mention. Matching is case-insensitive substring
// matching against each platform's alias table.
func ExtractPlatforms(text string) []Platform {
	lowered := strings.ToLower(text)

	type mention struct {
		platform Platform
		index    int
	}

	var mentions []mention
	for _, p := range Platforms() {
		first := -1
		for _, alias := range platformAliases[p] {
			if i := strings.Index(lowered, alias); i >= 0 && (first < 0 || i < first) {
				first = i
			}
		}
		if first >= 0 {
			mentions = append(mentions, mention{platform: p, index: first})
		}
	}

	sort.SliceStable(mentions, func(i, j int) bool {
		return mentions[i].index < mentions[j].index
	})

	platforms := make([]Platform, 0, len(mentions))
	for _, m := range mentions {
		platforms = append(platforms, m.platform)
	}
	return platforms
}

// StripPlatformMentions removes platform names and aliases from text.
// Comparison retrieval uses the stripped text so that the platform name
// itself does not dominate the similarity scores.
func StripPlatformMentions(text string) string {
	lowered := strings.ToLower(text)
	for _, p := range Platforms() {
		for _, alias := range platformAliases[p] {
			lowered = strings.ReplaceAll(lowered, alias, " ")
		}
	}
	return strings.Join(strings.Fields(lowered), " ")
}
