package ingredient

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	parenAside  = regexp.MustCompile(`\([^)]*\)`)
	letterRun   = regexp.MustCompile(`\p{L}+`)
	nonLetter   = regexp.MustCompile(`[^\p{L}\s]+`)
	spaceRun    = regexp.MustCompile(`\s+`)
	nonLetterCh = regexp.MustCompile(`[^\p{L}]`)
)

// Normalize reduces an ingredient line to its canonical matching key:
// lowercase, without amounts, units, parenthetical asides or preparation
// words, with the final word singularized. An empty result means the line
// cannot be matched against anything.
//
// Dropping punctuation can glue fragments into a new unit or descriptor
// ("c.u.p"), so the cleanup repeats until the key stops changing. A key fed
// back through Normalize is returned unchanged.
func Normalize(line string) string {
	s := ParseLine(line).Description
	s = strings.ToLower(norm.NFC.String(s))
	s = parenAside.ReplaceAllString(s, " ")
	for {
		next := cleanKey(s)
		if next == s {
			return s
		}
		s = next
	}
}

func cleanKey(s string) string {
	s = stripUnits(s)
	s = stripDescriptors(s)
	s = nonLetter.ReplaceAllString(s, "")
	s = strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
	s = strings.TrimPrefix(s, "of ")
	if s == "of" {
		s = ""
	}
	return singularizeLast(s)
}

func stripUnits(s string) string {
	return letterRun.ReplaceAllStringFunc(s, func(word string) string {
		if _, ok := unitSet[word]; ok {
			return ""
		}
		return word
	})
}

// stripDescriptors removes descriptor phrases word by word, ignoring
// punctuation glued to a word ("chopped,").
func stripDescriptors(s string) string {
	words := strings.Fields(s)
	bare := make([]string, len(words))
	for i, w := range words {
		bare[i] = nonLetterCh.ReplaceAllString(w, "")
	}

	kept := make([]string, 0, len(words))
	for i := 0; i < len(words); {
		if n := matchDescriptor(bare[i:]); n > 0 {
			i += n
			continue
		}
		kept = append(kept, words[i])
		i++
	}
	return strings.Join(kept, " ")
}

func matchDescriptor(words []string) int {
	for _, phrase := range descriptorPhrases {
		if len(phrase) > len(words) {
			continue
		}
		matched := true
		for i, w := range phrase {
			if words[i] != w {
				matched = false
				break
			}
		}
		if matched {
			return len(phrase)
		}
	}
	return 0
}

func singularizeLast(s string) string {
	if s == "" {
		return s
	}
	head, last := "", s
	if i := strings.LastIndexByte(s, ' '); i >= 0 {
		head, last = s[:i+1], s[i+1:]
	}
	return head + singularize(last)
}

func singularize(word string) string {
	if strings.HasSuffix(word, "es") &&
		(strings.HasPrefix(word, "tomato") || strings.HasPrefix(word, "potato")) {
		return word[:len(word)-2]
	}
	if _, ok := invariantPlurals[word]; ok {
		return word
	}
	if strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") && utf8.RuneCountInString(word) > 2 {
		return word[:len(word)-1]
	}
	return word
}
