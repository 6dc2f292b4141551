package filter

// matchWildcard reports whether s matches pattern. The only
// metacharacter is '*', which matches any possibly empty run of
// characters; every other character matches itself. The match is
// case-sensitive and anchored at both ends, so the empty pattern
// matches only the empty string.
//
// filepath.Match is not usable here: its grammar gives '?', '[', and
// '\\' special meaning, and its '*' stops at path separators.
func matchWildcard(pattern, s string) bool {
	var p, i int
	starP, starMatch := -1, 0
	for i < len(s) {
		switch {
		case p < len(pattern) && pattern[p] == '*':
			// Try the empty run first; backtracking extends the run one
			// character at a time.
			starP, starMatch = p, i
			p++
		case p < len(pattern) && pattern[p] == s[i]:
			p++
			i++
		case starP >= 0:
			p = starP + 1
			starMatch++
			i = starMatch
		default:
			return false
		}
	}
	for p < len(pattern) && pattern[p] == '*' {
		p++
	}
	return p == len(pattern)
}
