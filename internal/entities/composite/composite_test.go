package composite_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/special-api/internal/entities/composite"
	"github.com/KirkDiggler/special-api/internal/errors"
)

type staticResolver map[string]string

func (r staticResolver) Resolve(key string) string {
	return r[key]
}

type CompositeTestSuite struct {
	suite.Suite
}

func TestCompositeSuite(t *testing.T) {
	suite.Run(t, new(CompositeTestSuite))
}

func (s *CompositeTestSuite) TestTotalClamping() {
	testCases := []struct {
		name       string
		source     float64
		bounds     composite.Bounds
		components []float64
		expected   float64
	}{
		{"clamped to min", 5, composite.Between(0, 10), []float64{-20}, 0},
		{"clamped to max", 5, composite.Between(0, 10), []float64{4, 4}, 10},
		{"inside bounds", 5, composite.Between(0, 10), []float64{2, -1}, 6},
		{"no bounds", 5, composite.Bounds{}, []float64{-20}, -15},
		{"min only", 5, composite.AtLeast(0), []float64{100}, 105},
		{"max only", 5, composite.AtMost(10), []float64{-100}, -95},
		{"no components", 50, composite.Between(0, 10), nil, 10},
		{"clamp applies to sum not parts", 5, composite.Between(0, 10), []float64{-10, 8}, 3},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			n := composite.NewNumber(tc.source, tc.bounds)
			for _, v := range tc.components {
				n.Add(composite.NewComponent(v, composite.Text("test")))
			}
			s.Assert().Equal(tc.expected, n.Total())
		})
	}
}

func (s *CompositeTestSuite) TestComponentsAreAReadOnlyView() {
	n := composite.NewNumber(1, composite.Bounds{})
	n.Add(composite.NewComponent(2, composite.Text("gear")))

	view := n.Components()
	view[0] = composite.NewComponent(100)

	s.Assert().Equal(3.0, n.Total())
	s.Assert().Equal(2.0, n.Components()[0].Value())
}

func (s *CompositeTestSuite) TestCloneIndependence() {
	original := composite.NewNumber(5, composite.Between(0, 20))
	original.Add(composite.NewComponent(1, composite.Text("a")))

	clone := original.Clone()
	clone.Add(composite.NewComponent(3, composite.Text("b")))
	s.Assert().Equal(6.0, original.Total())
	s.Assert().Equal(9.0, clone.Total())

	original.Add(composite.NewComponent(-2, composite.Text("c")))
	s.Assert().Equal(4.0, original.Total())
	s.Assert().Equal(9.0, clone.Total())
}

func (s *CompositeTestSuite) TestRoundTrip() {
	original := composite.NewNumber(7, composite.Between(0, 10))
	original.Add(composite.NewComponent(2, composite.Key("skills.points")))
	original.Add(composite.NewComponent(-4, composite.Text("Rad"), composite.Key("radiation.level.minor")))

	data, err := json.Marshal(original.ToObject(false))
	s.Require().NoError(err)

	rebuilt, err := composite.From(json.RawMessage(data))
	s.Require().NoError(err)
	s.Assert().Equal(original.Total(), rebuilt.Total())
	s.Assert().Equal(original.ToObject(false), rebuilt.ToObject(false))

	fromObject, err := composite.From(original.ToObject(false))
	s.Require().NoError(err)
	s.Assert().Equal(original.Total(), fromObject.Total())
}

func (s *CompositeTestSuite) TestSourceProjection() {
	n := composite.NewNumber(3, composite.AtLeast(0))
	n.Add(composite.NewComponent(2))

	data, err := json.Marshal(n.ToObject(true))
	s.Require().NoError(err)
	s.Assert().JSONEq(`{"source":3,"bounds":{"min":0}}`, string(data))

	data, err = json.Marshal(n)
	s.Require().NoError(err)
	s.Assert().JSONEq(`{"source":3,"bounds":{"min":0},"components":[{"value":2,"labelComponents":[]}]}`, string(data))
}

func (s *CompositeTestSuite) TestFromPreservesIdentity() {
	n := composite.NewNumber(1, composite.Bounds{})
	got, err := composite.From(n)
	s.Require().NoError(err)
	s.Assert().Same(n, got)
}

func (s *CompositeTestSuite) TestFromRejectsMalformed() {
	testCases := []struct {
		name string
		raw  any
	}{
		{"missing source", map[string]any{"bounds": map[string]any{"min": 0}}},
		{"string source", `{"source":"5"}`},
		{"not an object", `[1,2]`},
		{"bad component", `{"source":1,"components":[{"value":"x"}]}`},
		{"bad bounds", `{"source":1,"bounds":{"max":"ten"}}`},
		{"invalid json", `{"source":`},
		{"nil", nil},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := composite.From(tc.raw)
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *CompositeTestSuite) TestLabel() {
	c := composite.NewComponent(-2, composite.Key("radiation.sickness"), composite.Text("(moderate)"), composite.Key("missing.key"))

	s.Assert().Equal("Radiation Sickness (moderate) missing.key",
		c.Label(staticResolver{"radiation.sickness": "Radiation Sickness"}))
	s.Assert().Equal("radiation.sickness (moderate) missing.key", c.Label(nil))
}

func (s *CompositeTestSuite) TestResource() {
	r := composite.NewResource(12, 10, composite.AtLeast(0))
	r.Add(composite.NewComponent(5, composite.Text("endurance")))

	s.Assert().Equal(15.0, r.Max())
	s.Assert().Equal(12.0, r.Value())

	r.SetValue(40)
	s.Assert().Equal(40.0, r.Value(), "value is never clamped by the entity")

	clone := r.Clone()
	clone.SetValue(1)
	clone.Add(composite.NewComponent(10))
	s.Assert().Equal(40.0, r.Value())
	s.Assert().Equal(15.0, r.Max())
	s.Assert().Equal(1.0, clone.Value())
	s.Assert().Equal(25.0, clone.Max())
}

func (s *CompositeTestSuite) TestResourceFrom() {
	rebuilt, err := composite.ResourceFrom(`{"value":4,"source":10,"components":[{"value":2,"labelComponents":[{"text":"x"}]}]}`)
	s.Require().NoError(err)
	s.Assert().Equal(4.0, rebuilt.Value())
	s.Assert().Equal(12.0, rebuilt.Max())

	_, err = composite.ResourceFrom(`{"source":10}`)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	r := composite.NewResource(1, 2, composite.Bounds{})
	same, err := composite.ResourceFrom(r)
	s.Require().NoError(err)
	s.Assert().Same(r, same)
}

func (s *CompositeTestSuite) TestResourceProperties() {
	r := composite.NewResource(3, 8, composite.Bounds{})

	v, ok := r.Property("max")
	s.Require().True(ok)
	s.Assert().Equal(8.0, v)

	s.Require().NoError(r.SetProperty("value", 6.0))
	s.Assert().Equal(6.0, r.Value())
	s.Assert().True(errors.IsInvalidArgument(r.SetProperty("value", "six")))
	s.Assert().True(errors.IsFailedPrecondition(r.SetProperty("max", 10.0)))
	s.Assert().True(errors.IsFailedPrecondition(r.CheckProperty("total", 10.0)))
	s.Assert().NoError(r.CheckProperty("value", 1.0))
	s.Assert().Equal(6.0, r.Value())
}
