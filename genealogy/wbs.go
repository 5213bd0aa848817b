package genealogy

import (
	"regexp"
	"strings"
)

var wbsPattern = regexp.MustCompile(`^\d+(\.\d+)*$`)

// CheckWBS reports a field error when wbs is not a dot-separated list of integer
// segments, or when a segment other than "0" starts with a zero.
func CheckWBS(wbs string) error {
	if !wbsPattern.MatchString(wbs) {
		return fieldErrorf(ErrMalformedWBS, "invalid wbs format: %q", wbs)
	}
	for _, seg := range strings.Split(wbs, ".") {
		if len(seg) > 1 && seg[0] == '0' {
			return fieldErrorf(ErrMalformedWBS, "invalid wbs segment %q (leading zero) in %q", seg, wbs)
		}
	}
	return nil
}

// ParentWBS drops the last segment. ok is false for a single-segment (ancestor) wbs.
func ParentWBS(wbs string) (parent string, ok bool) {
	i := strings.LastIndexByte(wbs, '.')
	if i < 0 {
		return "", false
	}
	return wbs[:i], true
}

// WBSDepth counts the segments of wbs.
func WBSDepth(wbs string) int {
	return strings.Count(wbs, ".") + 1
}
