// Package entities holds the actor and item documents: their persisted
// source data and the derived-data trees rebuilt on every preparation pass.
package entities
