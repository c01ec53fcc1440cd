// Package slug derives canonical URL identifiers for corpus documents.
//
// Slugs are never stored on the source records: every consumer rederives
// them from identifying fields, so a renamed or deleted document can never
// leave a stale link behind. All functions here are pure and total — given
// any input, including empty strings, they return a usable slug.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugChars    = regexp.MustCompile(`[^a-z0-9\s_-]+`)
	separatorRuns   = regexp.MustCompile(`[\s_-]+`)
	nonWordChars    = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)
	hyphenRuns      = regexp.MustCompile(`-+`)
	htmlTags        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
	nonBlogChars    = regexp.MustCompile(`[^a-z0-9\s-]+`)
	accentStripping = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// entityReplacer decodes the handful of HTML entities that show up in
// editorial titles. Full entity decoding is deliberately not attempted.
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&nbsp;", " ",
)

// Normalize converts free text to a URL-safe slug fragment: accents folded
// to ASCII, lowercased, characters outside [a-z0-9 _-] dropped, separator
// runs collapsed to single hyphens. Empty input yields "unknown".
func Normalize(text string) string {
	if folded, _, err := transform.String(accentStripping, text); err == nil {
		text = folded
	}
	s := strings.ToLower(text)
	s = nonSlugChars.ReplaceAllString(s, "")
	s = separatorRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "unknown"
	}
	return s
}

// ForArticle derives an article slug.
// Example: uae-cit-fdl-47-of-2022-article-1
func ForArticle(lawShortName, articleNumber, countryName string) string {
	countryPrefix := ""
	if countryName != "" {
		countryPrefix = Normalize(countryName)
	}
	return fmt.Sprintf("%s-%s-article-%s", countryPrefix, lawShortName, articleNumber)
}

// ForDecision derives a decision slug. The "-of-<year>" suffix is omitted
// when the year is absent; the type abbreviation defaults to "cd".
// Example: uae-cit-fdl-47-of-2022-cd-35-of-2025
func ForDecision(lawShortName, number, year, decisionType, countryName string) string {
	countryPrefix := ""
	if countryName != "" {
		countryPrefix = Normalize(countryName)
	}

	typeAbbrev := TypeAbbrev(decisionType, "cd")

	cleanNumber := nonWordChars.ReplaceAllString(number, "-")
	cleanNumber = hyphenRuns.ReplaceAllString(cleanNumber, "-")
	cleanNumber = strings.Trim(cleanNumber, "-")

	if year != "" {
		return fmt.Sprintf("%s-%s-%s-%s-of-%s", countryPrefix, lawShortName, typeAbbrev, cleanNumber, year)
	}
	return fmt.Sprintf("%s-%s-%s-%s", countryPrefix, lawShortName, typeAbbrev, cleanNumber)
}

// ForGuidance derives a guidance slug. The type abbreviation defaults to
// "guide". Example: uae-cit-fdl-47-of-2022-guide-CTGFF1
func ForGuidance(lawSlug, guidanceType, uniqueCode string) string {
	return fmt.Sprintf("%s-%s-%s", lawSlug, TypeAbbrev(guidanceType, "guide"), uniqueCode)
}

// ForTreaty derives a treaty slug from two country identifiers, defaulting
// the home jurisdiction to "uae". Case-insensitive on the alpha-3 code.
// Example: uae-alb-dtaa
func ForTreaty(country1Slug, country2Alpha3 string) string {
	c1 := strings.ToLower(country1Slug)
	if c1 == "" {
		c1 = "uae"
	}
	c2 := strings.ToLower(country2Alpha3)
	if c2 == "" {
		c2 = "unknown"
	}
	return fmt.Sprintf("%s-%s-dtaa", c1, c2)
}

// ForBlog derives a blog slug from a post title: tags stripped, common
// entities decoded, then the usual ASCII slug pass. An empty title yields
// an empty slug; such posts are ineligible for publication.
func ForBlog(title string) string {
	s := htmlTags.ReplaceAllString(title, "")
	s = entityReplacer.Replace(s)
	s = strings.ToLower(s)
	s = nonBlogChars.ReplaceAllString(s, "")
	s = strings.TrimSpace(whitespaceRuns.ReplaceAllString(s, "-"))
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// TypeAbbrev extracts the lowercase abbreviation from a coded type string
// of the form "<ABBREV> - <FullName>", falling back when the type is empty.
func TypeAbbrev(coded, fallback string) string {
	if coded == "" {
		return fallback
	}
	abbrev, _, _ := strings.Cut(coded, "-")
	abbrev = strings.ToLower(strings.TrimSpace(abbrev))
	if abbrev == "" {
		return fallback
	}
	return abbrev
}
