package models

// Mastery is the derived classification of an item's score
type Mastery string

const (
	MasteryUntouched Mastery = "untouched"
	MasteryWeak      Mastery = "weak"
	MasteryLearning  Mastery = "learning"
	MasteryMastered  Mastery = "mastered"
)

func (m Mastery) String() string {
	return string(m)
}
