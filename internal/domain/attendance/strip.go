package attendance

import (
	"regexp"
	"strings"
)

var (
	markupRe  = regexp.MustCompile(`<[^<>]*>`)
	clanTagRe = regexp.MustCompile(`^\s*\[[^\]]*\]|\[[^\]]*\]\s*$`)
)

// StripTags removes markup and a leading or trailing [TAG] from an in-game
// name so it can be matched against stored names.
func StripTags(name string) string {
	name = markupRe.ReplaceAllString(name, "")
	name = clanTagRe.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}
