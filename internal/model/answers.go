package model

import (
	"encoding/json"
	"sort"

	"gorm.io/datatypes"
)

// AnswerMap holds a student's selected option indices keyed by question id.
// Keys are present only for questions the student has touched. Index slices
// carry set semantics: no duplicates, order not significant.
type AnswerMap map[string][]int

// Selected returns the selection for a question; a missing key is an empty set.
func (m AnswerMap) Selected(questionID string) []int {
	return m[questionID]
}

// Replace sets the selection for a question to the single given index.
// Used for single-choice questions, where picking deselects the previous pick.
func (m AnswerMap) Replace(questionID string, optionIndex int) {
	m[questionID] = []int{optionIndex}
}

// Toggle flips membership of optionIndex in the question's selection.
// Used for multiple-choice questions.
func (m AnswerMap) Toggle(questionID string, optionIndex int) {
	current := m[questionID]
	for i, idx := range current {
		if idx == optionIndex {
			m[questionID] = append(current[:i], current[i+1:]...)
			return
		}
	}
	m[questionID] = append(current, optionIndex)
}

// Clone deep-copies the map so a frozen snapshot cannot alias live state.
func (m AnswerMap) Clone() AnswerMap {
	out := make(AnswerMap, len(m))
	for k, v := range m {
		indices := make([]int, len(v))
		copy(indices, v)
		out[k] = indices
	}
	return out
}

// ToJSON serializes the map for the jsonb result column, with each selection
// sorted so snapshots are byte-stable regardless of click order.
func (m AnswerMap) ToJSON() (datatypes.JSON, error) {
	normalized := m.Clone()
	for _, v := range normalized {
		sort.Ints(v)
	}
	raw, err := json.Marshal(normalized)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// AnswerMapFromJSON restores a frozen snapshot read back from the store.
func AnswerMapFromJSON(raw datatypes.JSON) (AnswerMap, error) {
	m := make(AnswerMap)
	if len(raw) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
