package quest

import "slices"

// AndQuest is complete iff every child is complete.
// With no children it is vacuously complete.
type AndQuest struct {
	quests []Mission
}

// NewAndQuest creates an AND over quests, in order.
func NewAndQuest(quests ...Mission) *AndQuest {
	return &AndQuest{quests: slices.Clone(quests)}
}

// AddQuest appends a child goal.
func (q *AndQuest) AddQuest(m Mission) {
	q.quests = append(q.quests, m)
}

// Children returns a copy of the child goals.
func (q *AndQuest) Children() []Mission {
	return slices.Clone(q.quests)
}

func (q *AndQuest) IsComplete(s State) bool {
	for _, m := range q.quests {
		if !m.IsComplete(s) {
			return false
		}
	}
	return true
}

func (q *AndQuest) Description() string {
	if len(q.quests) == 1 {
		return q.quests[0].Description()
	}
	return joinDescriptions(q.quests, " AND ")
}

// OrQuest is complete iff at least one child is complete.
// With no children it is never complete.
type OrQuest struct {
	quests []Mission
}

// NewOrQuest creates an OR over quests, in order.
func NewOrQuest(quests ...Mission) *OrQuest {
	return &OrQuest{quests: slices.Clone(quests)}
}

// AddQuest appends a child goal.
func (q *OrQuest) AddQuest(m Mission) {
	q.quests = append(q.quests, m)
}

// Children returns a copy of the child goals.
func (q *OrQuest) Children() []Mission {
	return slices.Clone(q.quests)
}

func (q *OrQuest) IsComplete(s State) bool {
	for _, m := range q.quests {
		if m.IsComplete(s) {
			return true
		}
	}
	return false
}

func (q *OrQuest) Description() string {
	if len(q.quests) == 1 {
		return q.quests[0].Description()
	}
	return joinDescriptions(q.quests, " OR ")
}
