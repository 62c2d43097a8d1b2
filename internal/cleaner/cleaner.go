// Package cleaner strips recurring non-content noise from raw exam-dump text:
// page-number markers, repeated header/footer phrases, and trailing
// reference/verification sections appended to explanations.
package cleaner

import (
	"regexp"
	"strings"

	"github.com/grcjp/testbank/pkg/types"
)

// DefaultPhrases are the literal header/footer fragments that repeat
// throughout the CMMC CCP practice-exam dump.
var DefaultPhrases = []string{
	"Leaders in it certification",
	"Practice Exam",
	"Cyber AB - CMMC-CCP",
}

// DefaultSectionMarkers introduce trailing sections that carry no explanation
// content; each is removed from the marker to the end of its line.
var DefaultSectionMarkers = []string{
	"Relevant CMMC 2.0 References",
	"Official References from CMMC 2.0",
	"Final Verification and Conclusion",
	"Final Answer:#",
}

var (
	pageMarkerRE = regexp.MustCompile(`\b\d+\s+of\s+\d+\b`)
	newlineRunRE = regexp.MustCompile(`\n+`)
	spaceRunRE   = regexp.MustCompile(`\s+`)

	// Rhetorical headings the dump inserts before each explanation part.
	// The middle text varies ("Why the Correct Answer is B?"), so these run
	// through the closing question mark.
	headingREs = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Why the Correct Answer is[^?]*\?`),
		regexp.MustCompile(`(?i)Why Not the Other Options[^?]*\?`),
	}
)

// Cleaner removes boilerplate from question and explanation text. All methods
// are pure: same input, same output, no side effects.
type Cleaner struct {
	phrases  []*regexp.Regexp
	sections []*regexp.Regexp
}

// New creates a Cleaner for the given literal phrases and section markers.
// Empty slices fall back to the defaults. Matching is case-insensitive
// throughout.
func New(phrases, sectionMarkers []string) *Cleaner {
	if len(phrases) == 0 {
		phrases = DefaultPhrases
	}
	if len(sectionMarkers) == 0 {
		sectionMarkers = DefaultSectionMarkers
	}

	c := &Cleaner{}
	for _, p := range phrases {
		c.phrases = append(c.phrases, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(p)))
	}
	for _, m := range sectionMarkers {
		c.sections = append(c.sections, regexp.MustCompile(`(?im)`+regexp.QuoteMeta(m)+`.*$`))
	}
	return c
}

// Default creates a Cleaner configured for the CMMC CCP dump.
func Default() *Cleaner {
	return New(nil, nil)
}

// NewFromConfig creates a Cleaner from the extract configuration.
func NewFromConfig(cfg types.ExtractConfig) *Cleaner {
	return New(cfg.Phrases, cfg.SectionMarkers)
}

// CleanExplanation strips boilerplate from explanation text and collapses all
// line breaks and whitespace runs into single spaces. Idempotent.
func (c *Cleaner) CleanExplanation(text string) string {
	for _, re := range headingREs {
		text = re.ReplaceAllString(text, "")
	}
	for _, re := range c.sections {
		text = re.ReplaceAllString(text, "")
	}
	for _, re := range c.phrases {
		text = re.ReplaceAllString(text, "")
	}
	text = pageMarkerRE.ReplaceAllString(text, "")

	text = newlineRunRE.ReplaceAllString(text, " ")
	text = spaceRunRE.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// StripPageMarkers removes "N of M" page markers while preserving the line
// structure of the text. Used on the raw dump before parsing, where paragraph
// breaks still matter.
func StripPageMarkers(text string) string {
	return pageMarkerRE.ReplaceAllString(text, "")
}
