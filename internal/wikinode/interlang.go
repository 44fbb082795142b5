package wikinode

import (
	"regexp"

	"golang.org/x/text/language"
)

// interlangPrefix matches the "xx:" / "xxx:" lang-code prefix spec.md
// §4.4 uses to classify a link target as an interlanguage link.
var interlangPrefix = regexp.MustCompile(`^[a-z]{2,3}:`)

// LooksLikeInterlang reports whether target starts with a bare 2-3
// letter lowercase prefix followed by ':'.
func LooksLikeInterlang(target string) bool {
	return interlangPrefix.MatchString(target)
}

// CanonicalLang returns the lang-code prefix verbatim per spec section
// 4.4 ("lang = substring before ':'"). language.Parse is called on the
// prefix but its result is discarded: the prefix is returned unchanged
// whether or not it parses as a BCP 47 tag, and deprecated aliases
// (e.g. "iw") are not canonicalized.
func CanonicalLang(prefix string) string {
	_, _ = language.Parse(prefix)
	return prefix
}
