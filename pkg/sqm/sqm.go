// Package sqm extracts playable slots from a text (non-binarized) Arma
// mission.sqm file.
package sqm

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	groupMarker  = `dataType="Group";`
	objectMarker = `dataType="Object";`
	playable     = `isPlayable=1;`
)

var (
	versionRe     = regexp.MustCompile(`version=(.+);`)
	descriptionRe = regexp.MustCompile(`description="(.+)";`)
	typeRe        = regexp.MustCompile(`type="(.+)";`)
	rankRe        = regexp.MustCompile(`rank="(.+)";`)
)

// Slot is a playable unit.
type Slot struct {
	Description string
	Rank        string
}

// Group is the playable slots of one group, in file order.
type Group []Slot

// Slots holds the playable groups of each side.
type Slots struct {
	West        []Group
	East        []Group
	Independent []Group
	Civilian    []Group
}

// VersionCheck reports whether the file carries a version number, which a
// binarized file does not. When want is non-zero the version must also match.
func VersionCheck(raw string, want int) bool {
	m := versionRe.FindStringSubmatch(raw)
	if m == nil {
		return false
	}
	if want == 0 {
		return true
	}
	got, err := strconv.Atoi(strings.TrimSpace(m[1]))
	return err == nil && got == want
}

// AllSlots returns every group holding at least one playable slot, sorted by
// the group's side.
func AllSlots(raw string) Slots {
	var out Slots
	for _, group := range scopes(raw, groupMarker) {
		slots := playableSlots(group)
		if len(slots) == 0 {
			continue
		}
		if strings.Contains(group, `side="West";`) {
			out.West = append(out.West, slots)
		}
		if strings.Contains(group, `side="East";`) {
			out.East = append(out.East, slots)
		}
		if strings.Contains(group, `side="Independent";`) {
			out.Independent = append(out.Independent, slots)
		}
		if strings.Contains(group, `side="Civilian";`) {
			out.Civilian = append(out.Civilian, slots)
		}
	}
	return out
}

func playableSlots(group string) Group {
	var slots Group
	for _, unit := range scopes(group, objectMarker) {
		if !strings.Contains(unit, playable) {
			continue
		}
		var slot Slot
		if m := descriptionRe.FindStringSubmatch(unit); m != nil {
			slot.Description = m[1]
		} else if m := typeRe.FindStringSubmatch(unit); m != nil {
			slot.Description = m[1]
		}
		if m := rankRe.FindStringSubmatch(unit); m != nil {
			slot.Rank = m[1]
		}
		slots = append(slots, slot)
	}
	return slots
}

// scopes returns, for every occurrence of marker, the text from the marker to
// the end of the enclosing class body.
func scopes(raw, marker string) []string {
	var out []string
	for idx := 0; ; idx++ {
		found := strings.Index(raw[idx:], marker)
		if found < 0 {
			return out
		}
		idx += found
		out = append(out, scope(raw[idx:]))
	}
}

func scope(text string) string {
	depth := 0
	for i, c := range text {
		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return text[:i]
			}
		}
	}
	return ""
}
