package stringsx

// OneOf checks if a given string s is present within a list of strings ss.
func OneOf(s string, ss ...string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}

	return false
}
