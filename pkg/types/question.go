package types

// DefaultDomain is the chapter group used for questions without a topic label.
const DefaultDomain = "Uncategorized"

// Choice is one of the four lettered options of a multiple-choice question.
type Choice struct {
	ID      string `json:"id"`      // "A" through "D"
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// Question is the structured representation of one exam question after
// extraction. Records are produced once by the extractor and treated as
// read-only input by the book builder.
type Question struct {
	ID          string   `json:"id"`     // e.g. "Q17"
	Domain      string   `json:"domain"` // topic label, chapter grouping key
	Question    string   `json:"question"`
	Choices     []Choice `json:"choices"`
	Explanation string   `json:"explanation"`
	Reference   string   `json:"reference"`
}

// CorrectChoice returns the first choice marked correct, or nil if none is.
// A record with no correct choice renders with an empty answer block rather
// than failing.
func (q *Question) CorrectChoice() *Choice {
	for i := range q.Choices {
		if q.Choices[i].Correct {
			return &q.Choices[i]
		}
	}
	return nil
}
