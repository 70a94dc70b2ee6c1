package models

import "fmt"

// StudySet is a titled, inclusive range of item ids
type StudySet struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Range [2]int `yaml:"range"` // [start, end] inclusive
}

// IDs expands the inclusive range into the list of ids it covers
func (s StudySet) IDs() []int {
	start, end := s.Range[0], s.Range[1]
	if end < start {
		return nil
	}
	ids := make([]int, 0, end-start+1)
	for id := start; id <= end; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Label returns the set title with its id range, e.g. "Nara period (1-50)"
func (s StudySet) Label() string {
	return fmt.Sprintf("%s (%d-%d)", s.Title, s.Range[0], s.Range[1])
}

type Section struct {
	ID    string     `yaml:"id"`
	Title string     `yaml:"title"`
	Sets  []StudySet `yaml:"sets"`
}

type Chapter struct {
	ID       string    `yaml:"id"`
	Title    string    `yaml:"title"`
	Sections []Section `yaml:"sections"`
}

// Catalog groups study sets into chapters and sections
type Catalog struct {
	Chapters []Chapter `yaml:"chapters"`
}

// Sets returns every study set in catalog order
func (c Catalog) Sets() []StudySet {
	var sets []StudySet
	for _, ch := range c.Chapters {
		for _, sec := range ch.Sections {
			sets = append(sets, sec.Sets...)
		}
	}
	return sets
}

// FindSet looks up a set by id
func (c Catalog) FindSet(id string) (StudySet, bool) {
	for _, set := range c.Sets() {
		if set.ID == id {
			return set, true
		}
	}
	return StudySet{}, false
}
