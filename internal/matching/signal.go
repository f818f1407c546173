package matching

import (
	"strings"
	"time"
	"unicode"
)

// RawProfile is the set of profile fields the signal store hands back.
// Pointers mark values that may legitimately be absent.
type RawProfile struct {
	UserID       uint64
	Interests    string // comma-separated
	Bio          string
	Latitude     *float64
	Longitude    *float64
	LastActiveAt *time.Time
}

// Location is a latitude/longitude pair in degrees.
type Location struct {
	Latitude  float64
	Longitude float64
}

// UserSignal is the read-only projection of a profile used for scoring.
// Only Interests is always populated (possibly empty).
type UserSignal struct {
	UserID       uint64
	Interests    map[string]struct{}
	Bio          string
	Location     *Location
	LastActiveAt *time.Time
}

// HasBio reports whether the bio carries at least one significant word.
func (s UserSignal) HasBio() bool {
	return len(significantWords(s.Bio)) > 0
}

// ParseInterests splits a comma-separated tag list into a normalised set.
// Tags are trimmed and lower-cased; blanks and duplicates are dropped.
func ParseInterests(raw string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag == "" {
			continue
		}
		set[tag] = struct{}{}
	}
	return set
}

// signalFromProfile interprets raw profile fields. Half a coordinate pair or
// an out-of-range coordinate counts as no location.
func signalFromProfile(p RawProfile) UserSignal {
	s := UserSignal{
		UserID:    p.UserID,
		Interests: ParseInterests(p.Interests),
		Bio:       strings.TrimSpace(p.Bio),
	}
	if p.Latitude != nil && p.Longitude != nil && validCoordinate(*p.Latitude, *p.Longitude) {
		s.Location = &Location{Latitude: *p.Latitude, Longitude: *p.Longitude}
	}
	if p.LastActiveAt != nil && !p.LastActiveAt.IsZero() {
		t := p.LastActiveAt.UTC()
		s.LastActiveAt = &t
	}
	return s
}

func validCoordinate(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// minWordLen is the shortest token that counts towards bio similarity.
const minWordLen = 3

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {}, "you": {},
	"all": {}, "any": {}, "can": {}, "had": {}, "her": {}, "was": {}, "one": {},
	"our": {}, "out": {}, "has": {}, "him": {}, "his": {}, "how": {}, "its": {},
	"who": {}, "did": {}, "get": {}, "got": {}, "she": {}, "too": {}, "use": {},
	"with": {}, "this": {}, "that": {}, "from": {}, "have": {}, "they": {},
	"will": {}, "your": {}, "what": {}, "when": {}, "like": {}, "just": {},
	"love": {}, "into": {}, "about": {}, "been": {}, "more": {}, "some": {},
	"very": {}, "than": {}, "them": {}, "then": {}, "there": {}, "their": {},
	"also": {}, "would": {}, "could": {}, "should": {}, "really": {},
	"looking": {}, "someone": {},
}

// significantWords lower-cases text, splits it on anything that is not a
// letter or digit and keeps tokens that are long enough and not stop-words.
func significantWords(text string) map[string]struct{} {
	words := make(map[string]struct{})
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range fields {
		if len([]rune(w)) < minWordLen {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		words[w] = struct{}{}
	}
	return words
}
