package engine_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/special-api/internal/engine"
	"github.com/KirkDiggler/special-api/internal/entities"
	"github.com/KirkDiggler/special-api/internal/entities/composite"
	"github.com/KirkDiggler/special-api/internal/entities/special"
	"github.com/KirkDiggler/special-api/internal/errors"
	"github.com/KirkDiggler/special-api/internal/rules"
	rulesmock "github.com/KirkDiggler/special-api/internal/rules/mock"
)

type EngineTestSuite struct {
	suite.Suite
	ctx    context.Context
	engine engine.Engine
	actor  *entities.Actor
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.ctx = context.Background()

	var err error
	s.engine, err = engine.New(&engine.Config{Factory: rules.DefaultRegistry()})
	s.Require().NoError(err)

	s.actor = &entities.Actor{
		ID:   "actor_1",
		Name: "Courier",
		Type: entities.ActorTypeCharacter,
		Leveling: entities.Leveling{
			Experience: 1500,
			Specials:   map[special.Name]int{special.Strength: 6},
			SkillRanks: map[special.Skill]int{special.Firearms: 10},
		},
		Vitals: entities.Vitals{
			HitPoints:    entities.ResourceValue{Value: 12},
			ActionPoints: entities.ResourceValue{Value: 7},
		},
	}
}

func flatModifier(target, selector string, value, priority float64) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(
		`{"enabled":true,"label":"Bonus","priority":%v,"selector":%q,"target":%q,"type":"flat-modifier","value":%v}`,
		priority, selector, target, value))
}

func (s *EngineTestSuite) number(path string) *composite.Number {
	n, err := s.actor.DerivedNumber(path)
	s.Require().NoError(err)
	return n
}

func (s *EngineTestSuite) TestNewRequiresFactory() {
	_, err := engine.New(&engine.Config{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = engine.New(nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestDerivedValuesWithoutRules() {
	s.Require().NoError(s.engine.PrepareActor(s.ctx, s.actor))

	level, ok := s.actor.GetDerivedProperty("level")
	s.Require().True(ok)
	s.Assert().Equal(float64(2), level)

	hp, err := s.actor.DerivedResource("vitals.hitPoints")
	s.Require().NoError(err)
	s.Assert().Equal(float64(17), hp.Max())
	s.Assert().Equal(float64(12), hp.Value())

	ap, err := s.actor.DerivedResource("vitals.actionPoints")
	s.Require().NoError(err)
	s.Assert().Equal(float64(7), ap.Max())

	s.Assert().Equal(float64(5), s.number("criticals.success").Total())
	s.Assert().Equal(float64(96), s.number("criticals.failure").Total())
	s.Assert().Equal(float64(110), s.number("carryWeight").Total())

	firearms := s.number("skills.firearms")
	s.Assert().Equal(float64(12), firearms.Source())
	s.Assert().Equal(float64(22), firearms.Total())
	s.Assert().Equal(float64(2*6+2), s.number("skills.melee").Total())
}

func (s *EngineTestSuite) TestMagicFollowsThaumSpecial() {
	s.actor.Leveling.Specials[special.Charisma] = 9
	s.actor.Magic.ThaumSpecial = special.Charisma
	s.Require().NoError(s.engine.PrepareActor(s.ctx, s.actor))

	s.Assert().Equal(float64(2*9+2), s.number("skills.magic").Total())
}

func (s *EngineTestSuite) TestRadiationSicknessUsesTempLayer() {
	s.actor.Vitals.RadiationSickness = special.RadiationModerate
	s.Require().NoError(s.engine.PrepareActor(s.ctx, s.actor))

	endurance, err := s.actor.DerivedSpecial(special.Endurance)
	s.Require().NoError(err)
	s.Assert().Equal(5, endurance.Points())
	s.Assert().Equal(float64(5), endurance.PermTotal())
	s.Assert().Equal(float64(3), endurance.TempTotal())

	hp, err := s.actor.DerivedResource("vitals.hitPoints")
	s.Require().NoError(err)
	s.Assert().Equal(float64(10+3+2), hp.Max())

	// survival reads the permanent layer
	s.Assert().Equal(float64(12), s.number("skills.survival").Total())
}

func (s *EngineTestSuite) TestUnknownRadiationLevelAbortsPass() {
	s.actor.Vitals.RadiationSickness = "lethal"
	err := s.engine.PrepareActor(s.ctx, s.actor)
	s.Assert().True(errors.IsInternal(err))
}

func replaceValue(target, selector string, value any) json.RawMessage {
	v, _ := json.Marshal(value)
	return json.RawMessage(fmt.Sprintf(
		`{"enabled":true,"label":"Override","priority":1,"selector":%q,"target":%q,"type":"replace-value","value":%s}`,
		selector, target, v))
}

func (s *EngineTestSuite) TestReplacedRadiationSicknessDrivesPenalties() {
	s.actor.AddItem(&entities.Item{ID: "rad-x", Name: "Glowing Charm", Rules: []json.RawMessage{
		replaceValue("actor", "vitals.radiationSickness", string(special.RadiationModerate)),
	}})
	s.Require().NoError(s.engine.PrepareActor(s.ctx, s.actor))

	endurance, err := s.actor.DerivedSpecial(special.Endurance)
	s.Require().NoError(err)
	s.Assert().Equal(float64(3), endurance.TempTotal())

	hp, err := s.actor.DerivedResource("vitals.hitPoints")
	s.Require().NoError(err)
	s.Assert().Equal(float64(10+3+2), hp.Max())

	radiation, _ := s.actor.GetDerivedProperty("vitals.radiationSickness")
	s.Assert().Equal(string(special.RadiationModerate), radiation)
	s.Assert().Equal(special.RadiationNone, s.actor.RadiationSickness())
}

func (s *EngineTestSuite) TestUnknownReplacedRadiationFallsBackToStored() {
	s.actor.Vitals.RadiationSickness = special.RadiationMinor
	s.actor.AddItem(&entities.Item{ID: "charm", Name: "Cracked Charm", Rules: []json.RawMessage{
		replaceValue("actor", "vitals.radiationSickness", "glowing"),
	}})
	s.Require().NoError(s.engine.PrepareActor(s.ctx, s.actor))

	endurance, err := s.actor.DerivedSpecial(special.Endurance)
	s.Require().NoError(err)
	s.Assert().Equal(float64(4), endurance.TempTotal())

	radiation, _ := s.actor.GetDerivedProperty("vitals.radiationSickness")
	s.Assert().Equal(string(special.RadiationMinor), radiation)
}

func (s *EngineTestSuite) TestRuleElementsFromTwoItemsAccumulate() {
	hat := &entities.Item{ID: "hat", Name: "Lucky Hat", Rules: []json.RawMessage{
		flatModifier("actor", "carryWeight", 5, 2),
	}}
	frame := &entities.Item{ID: "frame", Name: "Pack Frame", Rules: []json.RawMessage{
		flatModifier("actor", "carryWeight", 3, 1),
	}}

	for _, order := range [][]*entities.Item{{hat, frame}, {frame, hat}} {
		s.SetupTest()
		for _, item := range order {
			s.actor.AddItem(item)
		}
		s.Require().NoError(s.engine.PrepareActor(s.ctx, s.actor))

		carry := s.number("carryWeight")
		s.Assert().Equal(float64(118), carry.Total())
		s.Require().Len(carry.Components(), 2)
		s.Assert().Equal(float64(3), carry.Components()[0].Value())
		s.Assert().Equal(float64(5), carry.Components()[1].Value())
	}
}

func (s *EngineTestSuite) TestSpecialModifierFeedsDerivedValues() {
	s.actor.AddItem(&entities.Item{ID: "gloves", Name: "Power Gloves", Rules: []json.RawMessage{
		flatModifier("actor", "specials.strength", 2, 0),
	}})
	s.Require().NoError(s.engine.PrepareActor(s.ctx, s.actor))

	strength, err := s.actor.DerivedSpecial(special.Strength)
	s.Require().NoError(err)
	s.Assert().Equal(6, strength.Points())
	s.Assert().Equal(float64(8), strength.PermTotal())

	s.Assert().Equal(float64(130), s.number("carryWeight").Total())
	s.Assert().Equal(float64(2*8+2), s.number("skills.melee").Total())
}

func (s *EngineTestSuite) TestItemTargetedElement() {
	armor := &entities.Item{ID: "armor", Name: "Armor", Weight: 10, Rules: []json.RawMessage{
		flatModifier("item", "weight", -4, 0),
	}}
	s.actor.AddItem(armor)
	s.Require().NoError(s.engine.PrepareActor(s.ctx, s.actor))

	v, ok := armor.GetDerivedProperty("weight.total")
	s.Require().True(ok)
	s.Assert().Equal(float64(6), v)
	s.Assert().Equal(float64(10), armor.Weight)
}

func (s *EngineTestSuite) TestBadSelectorLeavesDocumentUnchanged() {
	item := &entities.Item{ID: "hat", Name: "Hat", Rules: []json.RawMessage{
		flatModifier("actor", "carryWeight.nope", 100, 0),
		flatModifier("actor", "carryWeight", 4, 1),
	}}
	s.actor.AddItem(item)
	s.Require().NoError(s.engine.PrepareActor(s.ctx, s.actor))

	s.Assert().Equal(float64(114), s.number("carryWeight").Total())

	elements := item.RuleElements()
	s.Require().Len(elements, 2)
	s.Assert().True(elements[0].ShouldNotModify())
	s.Assert().Equal(rules.KeySelectorNoMatch, elements[0].Messages()[0].Key)
	s.Assert().False(elements[1].HasErrors())
}

func (s *EngineTestSuite) TestInvalidSourceIsKept() {
	raw := json.RawMessage(`{"type":"flat-modifier"}`)
	item := &entities.Item{ID: "hat", Name: "Hat", Rules: []json.RawMessage{raw}}
	s.actor.AddItem(item)
	s.Require().NoError(s.engine.PrepareActor(s.ctx, s.actor))

	elements := item.RuleElements()
	s.Require().Len(elements, 1)
	s.Assert().Equal(string(raw), string(elements[0].RawSource()))
	s.Assert().True(elements[0].HasErrors())
	s.Assert().Equal(float64(110), s.number("carryWeight").Total())
}

func (s *EngineTestSuite) TestPrepareIsIdempotent() {
	s.actor.AddItem(&entities.Item{ID: "hat", Name: "Hat", Rules: []json.RawMessage{
		flatModifier("actor", "carryWeight", 3, 0),
	}})
	s.Require().NoError(s.engine.PrepareActor(s.ctx, s.actor))
	s.Require().NoError(s.engine.PrepareActor(s.ctx, s.actor))

	carry := s.number("carryWeight")
	s.Assert().Equal(float64(113), carry.Total())
	s.Assert().Len(carry.Components(), 1)
}

func (s *EngineTestSuite) TestPassOrderIsEnforced() {
	err := s.engine.PrepareEmbeddedDocuments(s.ctx, s.actor)
	s.Assert().True(errors.IsFailedPrecondition(err))

	s.Require().NoError(s.engine.PrepareBaseData(s.ctx, s.actor))
	err = s.engine.PrepareDerivedData(s.ctx, s.actor)
	s.Assert().True(errors.IsFailedPrecondition(err))

	_, err = s.actor.DerivedResource("vitals.hitPoints")
	s.Assert().True(errors.IsFailedPrecondition(err))

	s.Require().NoError(s.engine.PrepareEmbeddedDocuments(s.ctx, s.actor))
	s.Require().NoError(s.engine.PrepareDerivedData(s.ctx, s.actor))
	s.Assert().Equal(entities.StageDerived, s.actor.Stage())
}

func (s *EngineTestSuite) TestEventsArePublished() {
	bus := events.NewBus()
	var applied, skipped []events.Event
	bus.SubscribeFunc(engine.EventRuleElementApplied, 0, func(_ context.Context, e events.Event) error {
		applied = append(applied, e)
		return nil
	})
	bus.SubscribeFunc(engine.EventRuleElementSkipped, 0, func(_ context.Context, e events.Event) error {
		skipped = append(skipped, e)
		return nil
	})

	eng, err := engine.New(&engine.Config{Factory: rules.DefaultRegistry(), EventBus: bus})
	s.Require().NoError(err)

	disabled := json.RawMessage(`{"enabled":false,"label":"Off","priority":0,"selector":"carryWeight","target":"actor","type":"flat-modifier","value":9}`)
	s.actor.AddItem(&entities.Item{ID: "hat", Name: "Hat", Rules: []json.RawMessage{
		flatModifier("actor", "carryWeight", 3, 0),
		disabled,
	}})
	s.Require().NoError(eng.PrepareActor(s.ctx, s.actor))

	s.Require().Len(applied, 1)
	s.Assert().Equal("hat", applied[0].Source().GetID())
	s.Assert().Equal("actor_1", applied[0].Target().GetID())
	selector, ok := applied[0].Context().Get(engine.EventKeySelector)
	s.Require().True(ok)
	s.Assert().Equal("carryWeight", selector)

	s.Require().Len(skipped, 1)
	reason, ok := skipped[0].Context().Get(engine.EventKeyReason)
	s.Require().True(ok)
	s.Assert().Equal(engine.ReasonDisabled, reason)
}

func (s *EngineTestSuite) TestFormulas() {
	s.Assert().Equal(1, engine.LevelForExperience(0))
	s.Assert().Equal(1, engine.LevelForExperience(999))
	s.Assert().Equal(4, engine.LevelForExperience(3000))
	s.Assert().Equal(float64(100), engine.CriticalFailure(40))
	s.Assert().Equal(float64(97), engine.CriticalFailure(14))
	s.Assert().Equal(float64(5), engine.MaxActionPoints(1))
}

// stubFactory hands out prepared elements keyed by raw source text.
type stubFactory map[string]rules.ElementLike

func (f stubFactory) FromOwningItem(raw json.RawMessage, _ rules.Item) rules.ElementLike {
	return f[string(raw)]
}

type EngineOrderingTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	ctx  context.Context
}

func TestEngineOrderingSuite(t *testing.T) {
	suite.Run(t, new(EngineOrderingTestSuite))
}

func (s *EngineOrderingTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
}

func (s *EngineOrderingTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *EngineOrderingTestSuite) element(priority float64, target rules.Target) *rulesmock.MockElement {
	m := rulesmock.NewMockElement(s.ctrl)
	m.EXPECT().Priority().Return(priority).AnyTimes()
	m.EXPECT().Target().Return(target).AnyTimes()
	m.EXPECT().ShouldNotModify().Return(false).AnyTimes()
	m.EXPECT().Source().Return(rules.Source{Priority: priority, Target: target}).AnyTimes()
	return m
}

func (s *EngineOrderingTestSuite) TestPriorityOrderIsStable() {
	first := s.element(10, rules.TargetActor)
	second := s.element(5, rules.TargetActor)
	third := s.element(5, rules.TargetActor)

	gomock.InOrder(
		second.EXPECT().OnPrepareEmbeddedDocuments().Return(nil),
		third.EXPECT().OnPrepareEmbeddedDocuments().Return(nil),
		first.EXPECT().OnPrepareEmbeddedDocuments().Return(nil),
	)

	eng, err := engine.New(&engine.Config{Factory: stubFactory{"0": first, "1": second, "2": third}})
	s.Require().NoError(err)

	actor := &entities.Actor{ID: "actor_1", Name: "Courier", Type: entities.ActorTypeCharacter}
	actor.AddItem(&entities.Item{ID: "hat", Rules: []json.RawMessage{
		json.RawMessage("0"), json.RawMessage("1"), json.RawMessage("2"),
	}})
	s.Require().NoError(eng.PrepareActor(s.ctx, actor))
}

func (s *EngineOrderingTestSuite) TestApplyFailureSkipsOnlyThatElement() {
	failing := s.element(0, rules.TargetItem)
	sibling := s.element(1, rules.TargetItem)

	failing.EXPECT().OnPrepareEmbeddedDocuments().Return(errors.Internal("boom"))
	sibling.EXPECT().OnPrepareEmbeddedDocuments().Return(nil)

	eng, err := engine.New(&engine.Config{Factory: stubFactory{"0": failing, "1": sibling}})
	s.Require().NoError(err)

	item := &entities.Item{ID: "hat", Rules: []json.RawMessage{json.RawMessage("0"), json.RawMessage("1")}}
	s.Require().NoError(eng.PrepareItem(s.ctx, item))
	s.Assert().Len(item.RuleElements(), 2)
}
