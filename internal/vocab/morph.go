package vocab

import "strings"

// minStem is the shortest base we will derive by stripping suffixes;
// stripping below this produces too many false substring hits.
const minStem = 3

// Forms returns the match variants of a lowercased word under the
// morphological tolerance rule: the word itself, plural/singular forms via
// trailing "s"/"es", and the "-ies"/"-y" transformation in both directions.
func Forms(word string) []string {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return nil
	}

	forms := []string{word}
	add := func(f string) {
		for _, existing := range forms {
			if existing == f {
				return
			}
		}
		forms = append(forms, f)
	}

	switch {
	case strings.HasSuffix(word, "ies") && len(word)-3 >= minStem-1:
		add(strings.TrimSuffix(word, "ies") + "y")
	case strings.HasSuffix(word, "es") && len(word)-2 >= minStem:
		add(strings.TrimSuffix(word, "es"))
		add(strings.TrimSuffix(word, "s"))
	case strings.HasSuffix(word, "s") && len(word)-1 >= minStem:
		add(strings.TrimSuffix(word, "s"))
	case strings.HasSuffix(word, "y") && len(word) >= minStem:
		add(strings.TrimSuffix(word, "y") + "ies")
		fallthrough
	default:
		add(word + "s")
		add(word + "es")
	}

	return forms
}

// Matches reports whether any morphological form of word occurs as a
// substring of the lowercased haystack.
func Matches(haystack, word string) bool {
	for _, f := range Forms(word) {
		if strings.Contains(haystack, f) {
			return true
		}
	}
	return false
}
