package rules

import "fmt"

// Severity of a rule element message.
type Severity string

// Severities
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Message keys, resolved through the localization catalog.
const (
	KeyNoActor           = "rules.error.noActor"
	KeySelectorNoMatch   = "rules.error.selectorNoMatch"
	KeyWrongSelectedType = "rules.error.wrongSelectedType"
	KeyWrongValueType    = "rules.error.wrongValueType"
	KeyTypeChange        = "rules.warning.typeChange"
	KeyNotAnObject       = "rules.error.notAnObject"
	KeyMissingField      = "rules.error.missingField"
	KeyWrongFieldType    = "rules.error.wrongFieldType"
	KeyUnknownTarget     = "rules.error.unknownTarget"
	KeyUnknownType       = "rules.error.unknownType"
	KeyUnknownField      = "rules.warning.unknownField"
	KeySyntax            = "rules.error.syntax"
)

// Message is one diagnostic attached to a rule element.
type Message struct {
	Severity Severity `json:"severity"`
	Key      string   `json:"key"`
	Field    string   `json:"field,omitempty"`
	Args     []any    `json:"args,omitempty"`
}

// Localizer renders templated messages.
type Localizer interface {
	Format(key string, args ...any) string
}

// Describe renders the message for display.
func (m Message) Describe(l Localizer) string {
	if l == nil {
		if len(m.Args) == 0 {
			return m.Key
		}
		return fmt.Sprintf("%s %v", m.Key, m.Args)
	}
	return l.Format(m.Key, m.Args...)
}

func errorMessage(key, field string, args ...any) Message {
	return Message{Severity: SeverityError, Key: key, Field: field, Args: args}
}

func warningMessage(key, field string, args ...any) Message {
	return Message{Severity: SeverityWarning, Key: key, Field: field, Args: args}
}

func hasSeverity(messages []Message, severity Severity) bool {
	for _, m := range messages {
		if m.Severity == severity {
			return true
		}
	}
	return false
}
