// Package extract turns the semi-structured practice-exam text dump into an
// ordered sequence of question records.
package extract

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/grcjp/testbank/internal/cleaner"
	"github.com/grcjp/testbank/pkg/types"
)

var (
	// headerRE matches question headers of the form "Question #: 17 - [Access Control]".
	headerRE = regexp.MustCompile(`Question\s*#:\s*(\d+)\s*-\s*\[([^\]]*)\]`)

	// answerRE matches the correct-answer marker inside a question block.
	answerRE = regexp.MustCompile(`Answer:\s*([A-D])`)
)

var choiceLetters = []string{"A", "B", "C", "D"}

// Parser splits cleaned dump text into question records. It resolves choice
// boundaries with a single explicit rule: a choice's text ends at the next
// lettered marker if present, else at the answer marker if present, else at
// the end of the block.
type Parser struct {
	cleaner *cleaner.Cleaner
	strict  bool
	logger  *zap.Logger
}

// NewParser creates a parser. With strict set, records with missing or empty
// choices are dropped; otherwise they are emitted with a warning.
func NewParser(c *cleaner.Cleaner, strict bool, logger *zap.Logger) *Parser {
	return &Parser{
		cleaner: c,
		strict:  strict,
		logger:  logger,
	}
}

// Parse extracts all question records from the text, in source order.
// Malformed blocks are skipped with a warning; parsing never fails outright.
func (p *Parser) Parse(text string) []types.Question {
	headers := headerRE.FindAllStringSubmatchIndex(text, -1)

	questions := make([]types.Question, 0, len(headers))
	for i, h := range headers {
		number := text[h[2]:h[3]]
		domain := strings.TrimSpace(text[h[4]:h[5]])

		start := h[1]
		end := len(text)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}

		q, ok := p.parseBlock(number, domain, strings.TrimSpace(text[start:end]))
		if ok {
			questions = append(questions, q)
		}
	}
	return questions
}

// parseBlock splits one question's content block into stem, choices, answer
// and explanation. Returns false when the block cannot yield a record.
func (p *Parser) parseBlock(number, domain, content string) (types.Question, bool) {
	id := "Q" + number

	ans := answerRE.FindStringSubmatchIndex(content)
	if ans == nil {
		p.logger.Warn("skipping block without answer marker", zap.String("question", id))
		return types.Question{}, false
	}
	correct := content[ans[2]:ans[3]]

	aPos := strings.Index(content, "A.")
	if aPos < 0 {
		p.logger.Warn("skipping block without choice markers", zap.String("question", id))
		return types.Question{}, false
	}

	stem := strings.TrimSpace(content[:aPos])

	// One pass over the letter markers, each searched after the previous one.
	positions := make([]int, len(choiceLetters))
	positions[0] = aPos
	for i := 1; i < len(choiceLetters); i++ {
		positions[i] = -1
		prev := positions[i-1]
		if prev < 0 {
			prev = aPos
		}
		if rel := strings.Index(content[prev+2:], choiceLetters[i]+"."); rel >= 0 {
			positions[i] = prev + 2 + rel
		}
	}

	choices := make([]types.Choice, len(choiceLetters))
	var empty []string
	for i, letter := range choiceLetters {
		choices[i] = types.Choice{ID: letter, Correct: letter == correct}
		if positions[i] < 0 {
			empty = append(empty, letter)
			continue
		}

		begin := positions[i] + 2
		stop := len(content)
		if next := nextPosition(positions, i); next >= 0 {
			stop = next
		} else if ans[0] > begin {
			stop = ans[0]
		}

		choices[i].Text = strings.TrimSpace(content[begin:stop])
		if choices[i].Text == "" {
			empty = append(empty, letter)
		}
	}

	if len(empty) > 0 {
		if p.strict {
			p.logger.Warn("dropping record with empty choices",
				zap.String("question", id),
				zap.Strings("letters", empty))
			return types.Question{}, false
		}
		p.logger.Warn("record has empty choices",
			zap.String("question", id),
			zap.Strings("letters", empty))
	}

	if domain == "" {
		domain = types.DefaultDomain
	}

	return types.Question{
		ID:          id,
		Domain:      domain,
		Question:    stem,
		Choices:     choices,
		Explanation: p.cleaner.CleanExplanation(content[ans[1]:]),
	}, true
}

// nextPosition returns the position of the first resolved marker after index
// i, or -1 when every later marker is missing.
func nextPosition(positions []int, i int) int {
	for j := i + 1; j < len(positions); j++ {
		if positions[j] >= 0 {
			return positions[j]
		}
	}
	return -1
}
