package repositories

import "regexp"

// A tag is '#' followed by one or more letters, digits or underscores (any script).
var hashtagPattern = regexp.MustCompile(`#([\p{L}\p{N}_]+)`)

// ExtractHashtags returns the tags in caption without the leading '#', in order of first
// appearance. Case is preserved and duplicates are removed by exact match, so "#a #a #A"
// yields ["a", "A"].
func ExtractHashtags(caption string) []string {
	tags := []string{}
	seen := make(map[string]struct{})
	for _, m := range hashtagPattern.FindAllStringSubmatch(caption, -1) {
		tag := m[1]
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}
