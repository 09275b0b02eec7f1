// Package rules implements rule elements: user-authored JSON snippets on an
// item that select a property of the item or its owning actor and modify it
// while derived data is prepared.
//
// Raw sources go through three stages. ParseSources checks syntax for an
// authoring batch. Registry.FromOwningItem checks structure and dispatches on
// the type field, returning an *Invalid carrier when the source cannot become
// an Element. Each concrete kind then validates its selector and value once,
// at construction; an element with error messages never modifies anything.
package rules
