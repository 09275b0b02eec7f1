package rules

import (
	"encoding/json"
)

// SyntaxError reports an authored text that is not valid JSON.
type SyntaxError struct {
	Index   int     `json:"index"`
	Message Message `json:"message"`
}

// ParseSources checks every text for JSON syntax. Texts are returned as raw
// sources in order; errors list every unparseable index.
func ParseSources(texts []string) ([]json.RawMessage, []SyntaxError) {
	raws := make([]json.RawMessage, len(texts))
	var syntaxErrors []SyntaxError

	for i, text := range texts {
		var decoded any
		if err := json.Unmarshal([]byte(text), &decoded); err != nil {
			syntaxErrors = append(syntaxErrors, SyntaxError{
				Index:   i,
				Message: errorMessage(KeySyntax, "", err.Error()),
			})
			continue
		}
		raws[i] = json.RawMessage(text)
	}
	return raws, syntaxErrors
}
