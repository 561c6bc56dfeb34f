package model

// QuestionID is the opaque identifier of a stored question.
// Its string form is produced and parsed by the repository implementation only.
type QuestionID string

// String returns the wire form of the identifier.
func (id QuestionID) String() string {
	return string(id)
}

// IsZero reports whether the identifier has not been assigned yet.
func (id QuestionID) IsZero() bool {
	return id == ""
}

// Question is a quiz question with its canonical answer and alternative suggestions.
// This is a pure domain model with no database-specific tags.
type Question struct {
	ID          QuestionID `json:"id,omitempty"`
	Category    string     `json:"category"`
	Text        string     `json:"text"`
	Response    string     `json:"response"`
	Suggestions []string   `json:"suggestions"`
}

// Mutable returns a copy of q without its identifier.
// Suggestions is never nil in the result so it always serializes as an array.
func (q Question) Mutable() Question {
	suggestions := make([]string, len(q.Suggestions))
	copy(suggestions, q.Suggestions)
	return Question{
		Category:    q.Category,
		Text:        q.Text,
		Response:    q.Response,
		Suggestions: suggestions,
	}
}
