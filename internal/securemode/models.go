package securemode

// LLMModel is a selectable model identifier. PrivateAllowed models are the
// only ones offered while secure mode is active; selecting one from
// standard mode engages the gate.
type LLMModel struct {
	ID             string
	Name           string
	Description    string
	PrivateAllowed bool
}

// Models lists every model the demo offers, public first.
func Models() []LLMModel {
	return []LLMModel{
		{
			ID:          "gpt-4",
			Name:        "GPT-4 (Standard)",
			Description: "Most capable model for complex tasks and reasoning.",
		},
		{
			ID:          "gpt-3.5-turbo",
			Name:        "GPT-3.5 Turbo",
			Description: "Fast and cost-effective model for everyday tasks.",
		},
		{
			ID:          "claude-3-opus",
			Name:        "Claude 3 Opus",
			Description: "Strong performance on creative and open-ended tasks.",
		},
		{
			ID:          "claude-3-sonnet",
			Name:        "Claude 3 Sonnet",
			Description: "Balanced performance for enterprise workloads.",
		},
		{
			ID:             "llama-3-70b",
			Name:           "MUC-GPT Secure",
			Description:    "Hosted by IT-Referat. Certified for internal data (VS-NfD).",
			PrivateAllowed: true,
		},
		{
			ID:             "mistral-large",
			Name:           "MUC-Mistral Large",
			Description:    "High-performance model for German language tasks. Hosted on municipal servers.",
			PrivateAllowed: true,
		},
	}
}

// ModelByID resolves a model id; ok is false for unknown ids.
func ModelByID(id string) (LLMModel, bool) {
	for _, m := range Models() {
		if m.ID == id {
			return m, true
		}
	}
	return LLMModel{}, false
}

// DefaultModelID is the model preselected for a chat that has none.
func DefaultModelID(secure bool) string {
	if secure {
		return "llama-3-70b"
	}
	return "gpt-4"
}
