package rules_test

import (
	"github.com/KirkDiggler/special-api/internal/pkg/propertypath"
	"github.com/KirkDiggler/special-api/internal/rules"
)

// memoryDoc is an in-memory document backed by a derived-data tree.
type memoryDoc struct {
	tree  map[string]any
	owner *memoryDoc
	reads int
}

func (d *memoryDoc) GetDerivedProperty(path string) (any, bool) {
	d.reads++
	return propertypath.Get(d.tree, path)
}

func (d *memoryDoc) CheckDerivedProperty(path string, value any) error {
	return propertypath.Check(d.tree, path, value)
}

func (d *memoryDoc) SetDerivedProperty(path string, value any) error {
	return propertypath.Set(d.tree, path, value)
}

func (d *memoryDoc) OwningActor() (rules.Document, bool) {
	if d.owner == nil {
		return nil, false
	}
	return d.owner, true
}

func messageKeys(messages []rules.Message) []string {
	keys := make([]string, len(messages))
	for i, m := range messages {
		keys[i] = m.Key
	}
	return keys
}
