package models

// Item is a single flashcard. Items come from the content source and are
// never mutated after loading.
type Item struct {
	ID     int    `json:"id" yaml:"id"`
	Prompt string `json:"prompt" yaml:"prompt"`
	Answer string `json:"answer" yaml:"answer"`
	Note   string `json:"note,omitempty" yaml:"note,omitempty"` // optional commentary shown with the answer
}

// HasNote reports whether the item carries a note
func (i Item) HasNote() bool {
	return i.Note != ""
}

// ScoredItem pairs an item with its current score
type ScoredItem struct {
	Item
	Score int `json:"score"`
}
