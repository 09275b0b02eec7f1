package rules_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/special-api/internal/entities/composite"
	"github.com/KirkDiggler/special-api/internal/entities/special"
	"github.com/KirkDiggler/special-api/internal/i18n"
	"github.com/KirkDiggler/special-api/internal/rules"
)

type ElementTestSuite struct {
	suite.Suite
	registry *rules.Registry
	actor    *memoryDoc
	item     *memoryDoc
	hp       *composite.Resource
	strength *special.Special
}

func TestElementSuite(t *testing.T) {
	suite.Run(t, new(ElementTestSuite))
}

func (s *ElementTestSuite) SetupTest() {
	s.registry = rules.DefaultRegistry()
	s.hp = composite.NewResource(10, 12, composite.AtLeast(0))
	s.strength = special.New(5)
	s.actor = &memoryDoc{tree: map[string]any{
		"level": 2.0,
		"specials": map[string]any{
			"strength": s.strength,
		},
		"vitals": map[string]any{
			"hitPoints":         s.hp,
			"radiationSickness": "none",
		},
	}}
	s.item = &memoryDoc{
		tree:  map[string]any{"name": "Hat", "weight": composite.NewNumber(1, composite.AtLeast(0))},
		owner: s.actor,
	}
}

func source(kind, target, selector string, value any, extra ...string) json.RawMessage {
	v, _ := json.Marshal(value)
	enabled := "true"
	if len(extra) > 0 {
		enabled = extra[0]
	}
	return json.RawMessage(fmt.Sprintf(
		`{"enabled":%s,"label":"Lucky Hat","priority":1,"selector":%q,"target":%q,"type":%q,"value":%s}`,
		enabled, selector, target, kind, v))
}

func (s *ElementTestSuite) build(raw json.RawMessage, item rules.Item) rules.Element {
	got := s.registry.FromOwningItem(raw, item)
	element, ok := got.(rules.Element)
	s.Require().True(ok, "expected an element, got %T: %v", got, got.Messages())
	return element
}

func (s *ElementTestSuite) TestFlatModifierAppliesLabeledComponent() {
	element := s.build(source(rules.TypeFlatModifier, "actor", "vitals.hitPoints", 3), s.item)
	s.Require().Empty(element.Messages())

	s.Require().NoError(element.OnPrepareEmbeddedDocuments())
	s.Assert().Equal(15.0, s.hp.Max())

	components := s.hp.Components()
	s.Require().Len(components, 1)
	s.Assert().Equal("Lucky Hat", components[0].Label(nil))
}

func (s *ElementTestSuite) TestFlatModifierOnSpecialIsPermanent() {
	element := s.build(source(rules.TypeFlatModifier, "actor", "specials.strength", 2), s.item)
	s.Require().NoError(element.OnPrepareEmbeddedDocuments())
	s.Assert().Equal(7.0, s.strength.PermTotal())
	s.Assert().Equal(7.0, s.strength.TempTotal())
}

func (s *ElementTestSuite) TestFlatModifierOnItem() {
	element := s.build(source(rules.TypeFlatModifier, "item", "weight", -1), s.item)
	s.Require().NoError(element.OnPrepareEmbeddedDocuments())

	weight, _ := s.item.GetDerivedProperty("weight")
	s.Assert().Equal(0.0, weight.(*composite.Number).Total())
}

func (s *ElementTestSuite) TestSelectorMismatchSuppressesMutation() {
	element := s.build(source(rules.TypeFlatModifier, "actor", "vitals.nope", 3), s.item)

	s.Assert().Equal([]string{rules.KeySelectorNoMatch}, messageKeys(element.Messages()))
	s.Assert().True(element.ShouldNotModify())
	s.Require().NoError(element.OnPrepareEmbeddedDocuments())
	s.Assert().Equal(12.0, s.hp.Max())
	s.Assert().Empty(s.hp.Components())
}

func (s *ElementTestSuite) TestActorTargetWithoutActor() {
	orphan := &memoryDoc{tree: map[string]any{"name": "Hat"}}

	element := s.build(source(rules.TypeFlatModifier, "actor", "vitals.nope", "not a number"), orphan)

	messages := element.Messages()
	s.Require().Len(messages, 1)
	s.Assert().Equal(rules.KeyNoActor, messages[0].Key)
	s.Assert().Equal(rules.SeverityError, messages[0].Severity)
	s.Assert().Zero(orphan.reads, "selector must not be resolved")
	s.Assert().Zero(s.actor.reads)
	s.Assert().True(element.ShouldNotModify())
}

func (s *ElementTestSuite) TestFlatModifierTypeErrors() {
	testCases := []struct {
		name     string
		selector string
		value    any
		expected []string
	}{
		{"primitive property", "level", 1, []string{rules.KeyWrongSelectedType}},
		{"string value", "vitals.hitPoints", "3", []string{rules.KeyWrongValueType}},
		{"both", "vitals.radiationSickness", true, []string{rules.KeyWrongSelectedType, rules.KeyWrongValueType}},
		{"missing selector still checks value", "nope", false, []string{rules.KeySelectorNoMatch, rules.KeyWrongValueType}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			element := s.build(source(rules.TypeFlatModifier, "actor", tc.selector, tc.value), s.item)
			s.Assert().Equal(tc.expected, messageKeys(element.Messages()))
			s.Assert().True(element.HasErrors())
			s.Assert().True(element.ShouldNotModify())
		})
	}
}

func (s *ElementTestSuite) TestDisabledDoesNotModify() {
	element := s.build(source(rules.TypeFlatModifier, "actor", "vitals.hitPoints", 3, "false"), s.item)
	s.Assert().False(element.HasErrors())
	s.Assert().True(element.ShouldNotModify())

	s.Require().NoError(element.OnPrepareEmbeddedDocuments())
	s.Assert().Equal(12.0, s.hp.Max())
}

func (s *ElementTestSuite) TestReplaceValue() {
	element := s.build(source(rules.TypeReplaceValue, "actor", "level", 9), s.item)
	s.Require().Empty(element.Messages())
	s.Require().NoError(element.OnPrepareEmbeddedDocuments())

	level, _ := s.actor.GetDerivedProperty("level")
	s.Assert().Equal(9.0, level)
}

func (s *ElementTestSuite) TestReplaceValueCompositeSubProperty() {
	element := s.build(source(rules.TypeReplaceValue, "actor", "vitals.hitPoints.value", 4), s.item)
	s.Require().Empty(element.Messages())
	s.Require().NoError(element.OnPrepareEmbeddedDocuments())
	s.Assert().Equal(4.0, s.hp.Value())
}

func (s *ElementTestSuite) TestReplaceValueTypeChangeWarns() {
	element := s.build(source(rules.TypeReplaceValue, "item", "name", 42), s.item)

	s.Assert().Equal([]string{rules.KeyTypeChange}, messageKeys(element.Messages()))
	s.Assert().True(element.HasWarnings())
	s.Assert().False(element.ShouldNotModify())

	s.Require().NoError(element.OnPrepareEmbeddedDocuments())
	name, _ := s.item.GetDerivedProperty("name")
	s.Assert().Equal(42.0, name)
}

func (s *ElementTestSuite) TestReplaceValueRejectsComposite() {
	element := s.build(source(rules.TypeReplaceValue, "actor", "vitals.hitPoints", 4), s.item)
	s.Assert().Equal([]string{rules.KeyWrongSelectedType}, messageKeys(element.Messages()))
}

func (s *ElementTestSuite) TestReplaceValueRejectsReadOnlySubProperty() {
	testCases := []string{
		"specials.strength.permTotal",
		"specials.strength.tempTotal",
		"vitals.hitPoints.max",
		"vitals.hitPoints.total",
		"vitals.hitPoints.modifier",
	}

	for _, selector := range testCases {
		s.Run(selector, func() {
			element := s.build(source(rules.TypeReplaceValue, "actor", selector, 9), s.item)

			s.Assert().Equal([]string{rules.KeyWrongSelectedType}, messageKeys(element.Messages()))
			s.Assert().Equal("selector", element.Messages()[0].Field)
			s.Assert().True(element.ShouldNotModify())
			s.Require().NoError(element.OnPrepareEmbeddedDocuments())
		})
	}
	s.Assert().Equal(5, s.strength.Points())
	s.Assert().Equal(12.0, s.hp.Max())
}

func (s *ElementTestSuite) TestReplaceValueRejectsValueTheSetterRefuses() {
	element := s.build(source(rules.TypeReplaceValue, "actor", "specials.strength.points", 9.5), s.item)

	messages := element.Messages()
	s.Require().Len(messages, 1)
	s.Assert().Equal(rules.KeyWrongValueType, messages[0].Key)
	s.Assert().Equal("value", messages[0].Field)
	s.Assert().Equal([]any{rules.KindNumber, "whole number"}, messages[0].Args)
	s.Assert().True(element.ShouldNotModify())

	s.Require().NoError(element.OnPrepareEmbeddedDocuments())
	s.Assert().Equal(5, s.strength.Points())
}

func (s *ElementTestSuite) TestReplaceValueResourceValueNeedsNumber() {
	element := s.build(source(rules.TypeReplaceValue, "actor", "vitals.hitPoints.value", "full"), s.item)

	s.Assert().Equal([]string{rules.KeyWrongValueType}, messageKeys(element.Messages()))
	s.Assert().Equal(10.0, s.hp.Value())
}

func (s *ElementTestSuite) TestReplaceValueWholePoints() {
	element := s.build(source(rules.TypeReplaceValue, "actor", "specials.strength.points", 9), s.item)
	s.Require().Empty(element.Messages())

	s.Require().NoError(element.OnPrepareEmbeddedDocuments())
	s.Assert().Equal(9, s.strength.Points())
}

func (s *ElementTestSuite) TestSourceRoundTripKeepsValueType() {
	for _, value := range []any{true, 2.5, "str"} {
		raw := source(rules.TypeReplaceValue, "item", "name", value)
		element := s.build(raw, s.item)

		data, err := json.Marshal(element.Source())
		s.Require().NoError(err)
		s.Assert().JSONEq(string(raw), string(data))
	}
}

func (s *ElementTestSuite) TestDescribe() {
	bundle, err := i18n.LoadEmbedded()
	s.Require().NoError(err)

	element := s.build(source(rules.TypeFlatModifier, "actor", "vitals.nope", 3), s.item)
	messages := element.Messages()
	s.Require().Len(messages, 1)
	s.Assert().Equal(`The selector "vitals.nope" does not match any property.`,
		messages[0].Describe(bundle.Localizer("en-US")))
	s.Assert().Equal(`rules.error.selectorNoMatch [vitals.nope]`, messages[0].Describe(nil))
}
