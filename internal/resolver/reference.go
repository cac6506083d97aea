package resolver

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	canonicalExact = regexp.MustCompile(`^[A-Z][A-Z0-9]*_[0-9]+$`)
	canonicalAny   = regexp.MustCompile(`[A-Z][A-Z0-9]*_[0-9]+`)
	nonDigits      = regexp.MustCompile(`[^0-9]+`)
)

const (
	summonersSegment = "summoners"
	matchesSegment   = "matches"
)

// Handle is a player display name plus discriminator.
type Handle struct {
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine,omitempty"`
}

// String renders the handle as a Riot ID.
func (h Handle) String() string {
	if h.TagLine == "" {
		return h.GameName
	}
	return h.GameName + "#" + h.TagLine
}

// siteReference is what a third-party match URL encodes.
type siteReference struct {
	handle    Handle
	region    string
	timestamp *int64
}

// canonicalID returns the match id when input is one, or embeds one.
func canonicalID(input string) (string, bool) {
	if canonicalExact.MatchString(input) {
		return input, true
	}
	if id := canonicalAny.FindString(input); id != "" {
		return id, true
	}
	return "", false
}

// parseSiteURL reads URLs shaped like
// https://site/summoners/{region}/{name-tag}/matches/{...}/{timestamp}.
func parseSiteURL(input string) (siteReference, bool) {
	u, err := url.Parse(strings.TrimSpace(input))
	if err != nil {
		return siteReference{}, false
	}

	segments := splitPath(u.EscapedPath())
	summoners, matchesAt := -1, -1
	for i, seg := range segments {
		switch strings.ToLower(seg) {
		case summonersSegment:
			if summoners < 0 {
				summoners = i
			}
		case matchesSegment:
			if summoners >= 0 && matchesAt < 0 {
				matchesAt = i
			}
		}
	}
	// The handle sits right before "matches", after "summoners".
	if summoners < 0 || matchesAt <= summoners+1 {
		return siteReference{}, false
	}

	rawHandle, err := url.QueryUnescape(segments[matchesAt-1])
	if err != nil {
		return siteReference{}, false
	}
	handle, ok := splitHandle(rawHandle)
	if !ok {
		return siteReference{}, false
	}

	ref := siteReference{handle: handle}
	if matchesAt-1 > summoners+1 {
		ref.region = segments[summoners+1]
	}
	if len(segments) > matchesAt+1 {
		ref.timestamp = parseTimestamp(segments[len(segments)-1])
	}
	return ref, true
}

func splitPath(p string) []string {
	parts := strings.Split(p, "/")
	out := parts[:0]
	for _, s := range parts {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// splitHandle splits on the last '-' or '#'. A handle without a usable
// separator is all display name.
func splitHandle(raw string) (Handle, bool) {
	raw = strings.TrimSpace(raw)
	if idx := strings.LastIndexAny(raw, "-#"); idx > 0 && idx < len(raw)-1 {
		return Handle{
			GameName: strings.TrimSpace(raw[:idx]),
			TagLine:  strings.TrimSpace(raw[idx+1:]),
		}, true
	}
	name := strings.TrimSpace(strings.Trim(raw, "-#"))
	return Handle{GameName: name}, name != ""
}

func parseTimestamp(seg string) *int64 {
	digits := nonDigits.ReplaceAllString(seg, "")
	if digits == "" {
		return nil
	}
	ts, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return nil
	}
	return &ts
}
