package table

import (
	// Packages
	research "github.com/mutablelogic/go-research"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Models is a table of models, with the selected model emphasised
type Models struct {
	Models   []research.Model
	Selected research.Model
}

var _ TableData = Models{}

///////////////////////////////////////////////////////////////////////////////
// TableData IMPLEMENTATION

func (Models) Header() []string {
	return []string{"Model", "Description", "Default"}
}

func (m Models) Len() int {
	return len(m.Models)
}

func (m Models) Row(i int) []any {
	model := m.Models[i]
	if model == m.Selected {
		return []any{Bold{model.String()}, model.Description(), true}
	}
	return []any{model.String(), model.Description(), false}
}
