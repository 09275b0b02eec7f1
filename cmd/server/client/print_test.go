package client

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/special-api/internal/errors"
	"github.com/KirkDiggler/special-api/internal/orchestrators/actor"
	"github.com/KirkDiggler/special-api/internal/testutils"
)

type PrintTestSuite struct {
	suite.Suite
}

func TestPrintSuite(t *testing.T) {
	suite.Run(t, new(PrintTestSuite))
}

func (s *PrintTestSuite) TestPrintView() {
	view := &actor.ActorView{
		Actor: testutils.CreateTestActor("actor_1"),
		Derived: actor.DerivedView{
			Level: 2,
			Specials: map[string]actor.SpecialView{
				"luck": {
					Label:          "Luck",
					Points:         5,
					PermTotal:      7,
					TempTotal:      7,
					PermComponents: []actor.ComponentView{{Label: "Lucky Hat", Value: 2}},
				},
			},
			HitPoints:   actor.ResourceView{NumberView: actor.NumberView{Label: "Hit Points"}, Value: 12, Max: 17},
			CarryWeight: actor.NumberView{Label: "Carry Weight", Total: 118},
		},
		RuleElements: []actor.RuleElementView{{
			ItemID:   "hat",
			Source:   []byte(`{"type":"flat-modifier"}`),
			Messages: []actor.MessageView{{Severity: "error", Text: "Value is required."}},
		}},
	}

	var buf bytes.Buffer
	printView(&buf, view)
	out := buf.String()

	s.Assert().Contains(out, "Actor: "+testutils.TestActorName+" (actor_1)")
	s.Assert().Contains(out, "Hit Points: 12/17")
	s.Assert().Contains(out, "Luck: 5 (perm 7, temp 7)")
	s.Assert().Contains(out, "+2 Lucky Hat")
	s.Assert().Contains(out, "Carry Weight: 118")
	s.Assert().Contains(out, "hat[0] valid=false active=false")
	s.Assert().Contains(out, "error: Value is required.")
}

func (s *PrintTestSuite) TestPrintJSON() {
	var buf bytes.Buffer
	s.Require().NoError(printJSON(&buf, map[string]int{"total": 3}))
	s.Assert().JSONEq(`{"total":3}`, buf.String())
}

func (s *PrintTestSuite) TestSortedKeys() {
	s.Assert().Equal([]string{"a", "b", "c"}, sortedKeys(map[string]int{"c": 1, "a": 2, "b": 3}))
}

func (s *PrintTestSuite) TestRPCErrorListsFieldViolations() {
	statusErr := errors.ToGRPCError(errors.NewValidationBuilder().
		Field("vitals.hitPoints.value", "must not be negative").
		RequiredField("name").
		Build())

	err := rpcError(statusErr)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "  name: is required")
	s.Assert().Contains(err.Error(), "  vitals.hitPoints.value: must not be negative")
}

func (s *PrintTestSuite) TestRPCErrorKeepsCode() {
	err := rpcError(errors.ToGRPCError(errors.NotFoundf("actor %s not found", "ghost")))
	s.Assert().True(errors.IsNotFound(err))
	s.Assert().Contains(err.Error(), "actor ghost not found")
}
