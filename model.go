package research

import (
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Model identifies one of the hosted deep research models
type Model string

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	O3DeepResearch     Model = "o3-deep-research-2025-06-26"
	O4MiniDeepResearch Model = "o4-mini-deep-research-2025-06-26"
)

// DefaultModel is the model selected when none is given
const DefaultModel = O3DeepResearch

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Models returns the models which can be selected, in display order
func Models() []Model {
	return []Model{O3DeepResearch, O4MiniDeepResearch}
}

// ParseModel returns the model for a name. An empty name returns the
// default model.
func ParseModel(name string) (Model, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultModel, nil
	}
	for _, model := range Models() {
		if string(model) == name {
			return model, nil
		}
	}
	return "", ErrBadParameter.Withf("unknown model %q", name)
}

// Valid returns true if the model is one of the known models
func (m Model) Valid() bool {
	for _, model := range Models() {
		if m == model {
			return true
		}
	}
	return false
}

// Description returns a short human-readable description of the model
func (m Model) Description() string {
	switch m {
	case O3DeepResearch:
		return "Most thorough research, slower and more expensive"
	case O4MiniDeepResearch:
		return "Faster, lighter-weight research"
	default:
		return ""
	}
}

func (m Model) String() string {
	return string(m)
}
