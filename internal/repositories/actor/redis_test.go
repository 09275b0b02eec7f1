package actor_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/special-api/internal/entities"
	"github.com/KirkDiggler/special-api/internal/errors"
	"github.com/KirkDiggler/special-api/internal/pkg/clock"
	"github.com/KirkDiggler/special-api/internal/redis"
	"github.com/KirkDiggler/special-api/internal/repositories/actor"
	"github.com/KirkDiggler/special-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	mr      *miniredis.Miniredis
	client  redis.Client
	cleanup func()
	repo    actor.Repository
	now     time.Time
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.client, s.cleanup = testutils.CreateTestRedisClientWithContext(s.T(), func(mr *miniredis.Miniredis) {
		s.mr = mr
	})

	repo, err := actor.NewRedis(&actor.RedisConfig{
		Client: s.client,
		Clock:  clock.Fixed{At: s.now},
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) create(id string) {
	a := testutils.CreateTestActor(id)
	a.AddItem(testutils.CreateTestItem("hat", "Lucky Hat",
		json.RawMessage(`{"type":"flat-modifier","broken":true}`)))
	_, err := s.repo.Create(s.ctx, actor.CreateInput{Actor: a})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestNewRedisRequiresClient() {
	_, err := actor.NewRedis(&actor.RedisConfig{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = actor.NewRedis(nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	s.create("actor_1")

	s.Assert().True(s.mr.Exists("actor:actor_1"))
	members, err := s.mr.Members("actor:player:" + testutils.TestPlayerID)
	s.Require().NoError(err)
	s.Assert().Equal([]string{"actor_1"}, members)

	out, err := s.repo.Get(s.ctx, actor.GetInput{ID: "actor_1"})
	s.Require().NoError(err)
	s.Assert().Equal(testutils.TestActorName, out.Actor.Name)
	s.Assert().Equal(s.now.Unix(), out.Actor.CreatedAt)

	// rule sources survive even when invalid
	s.Require().Len(out.Actor.Items, 1)
	s.Assert().Equal(`{"type":"flat-modifier","broken":true}`, string(out.Actor.Items[0].Rules[0]))
	owner, ok := out.Actor.Items[0].OwningActor()
	s.Require().True(ok)
	s.Assert().Same(out.Actor, owner)
}

func (s *RedisRepositoryTestSuite) TestCreateErrors() {
	s.create("actor_1")

	_, err := s.repo.Create(s.ctx, actor.CreateInput{Actor: testutils.CreateTestActor("actor_1")})
	s.Assert().True(errors.IsAlreadyExists(err))

	_, err = s.repo.Create(s.ctx, actor.CreateInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	invalid := testutils.CreateTestActor("actor_2")
	invalid.Vitals.HitPoints.Value = -3
	_, err = s.repo.Create(s.ctx, actor.CreateInput{Actor: invalid})
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().False(s.mr.Exists("actor:actor_2"))
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, actor.GetInput{ID: "missing"})
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, actor.GetInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateMovesPlayerIndex() {
	s.create("actor_1")

	out, err := s.repo.Get(s.ctx, actor.GetInput{ID: "actor_1"})
	s.Require().NoError(err)
	out.Actor.PlayerID = "player_new"
	out.Actor.Name = "Renamed"

	_, err = s.repo.Update(s.ctx, actor.UpdateInput{Actor: out.Actor})
	s.Require().NoError(err)

	s.Assert().False(s.mr.Exists("actor:player:" + testutils.TestPlayerID))
	members, err := s.mr.Members("actor:player:player_new")
	s.Require().NoError(err)
	s.Assert().Equal([]string{"actor_1"}, members)

	_, err = s.repo.Update(s.ctx, actor.UpdateInput{Actor: testutils.CreateTestActor("missing")})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestPatch() {
	s.create("actor_1")

	out, err := s.repo.Patch(s.ctx, actor.PatchInput{ID: "actor_1", Path: "vitals.hitPoints.value", Value: 4})
	s.Require().NoError(err)
	s.Assert().Equal(float64(4), out.Actor.Vitals.HitPoints.Value)

	raw := json.RawMessage(`[{"a":1},  {"b":2}]`)
	_, err = s.repo.Patch(s.ctx, actor.PatchInput{ID: "actor_1", Path: "items.0.rules", Value: raw})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, actor.GetInput{ID: "actor_1"})
	s.Require().NoError(err)
	s.Assert().Equal(float64(4), got.Actor.Vitals.HitPoints.Value)
	s.Require().Len(got.Actor.Items[0].Rules, 2)
	s.Assert().Equal(`{"b":2}`, string(got.Actor.Items[0].Rules[1]))
}

func (s *RedisRepositoryTestSuite) TestPatchRejectsInvalidResult() {
	s.create("actor_1")
	before, err := s.mr.Get("actor:actor_1")
	s.Require().NoError(err)

	_, err = s.repo.Patch(s.ctx, actor.PatchInput{ID: "actor_1", Path: "vitals.hitPoints.value", Value: -1})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Patch(s.ctx, actor.PatchInput{ID: "actor_1", Path: "vitals.morale.value", Value: 1})
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.repo.Patch(s.ctx, actor.PatchInput{ID: "missing", Path: "name", Value: "x"})
	s.Assert().True(errors.IsNotFound(err))

	after, err := s.mr.Get("actor:actor_1")
	s.Require().NoError(err)
	s.Assert().Equal(before, after)
}

func (s *RedisRepositoryTestSuite) TestPatchCreatesMissingLeaf() {
	a := testutils.CreateTestActor("actor_1")
	a.AddItem(testutils.CreateTestItem("hat", "Plain Hat"))
	_, err := s.repo.Create(s.ctx, actor.CreateInput{Actor: a})
	s.Require().NoError(err)

	stored, err := s.mr.Get("actor:actor_1")
	s.Require().NoError(err)
	s.Require().NotContains(stored, `"rules"`)

	raw := json.RawMessage(`[{"type":"flat-modifier"}]`)
	_, err = s.repo.Patch(s.ctx, actor.PatchInput{ID: "actor_1", Path: "items.0.rules", Value: raw})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, actor.GetInput{ID: "actor_1"})
	s.Require().NoError(err)
	s.Require().Len(got.Actor.Items[0].Rules, 1)
	s.Assert().Equal(`{"type":"flat-modifier"}`, string(got.Actor.Items[0].Rules[0]))

	_, err = s.repo.Patch(s.ctx, actor.PatchInput{ID: "actor_1", Path: "items.3.rules", Value: raw})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestPatchResolvesPathFromStoredActor() {
	s.create("actor_1")

	var seen string
	_, err := s.repo.Patch(s.ctx, actor.PatchInput{
		ID: "actor_1",
		PathFunc: func(stored *entities.Actor) (string, error) {
			seen = stored.Items[0].ID
			return "items.0.name", nil
		},
		Value: "Unlucky Hat",
	})
	s.Require().NoError(err)
	s.Assert().Equal("hat", seen)

	got, err := s.repo.Get(s.ctx, actor.GetInput{ID: "actor_1"})
	s.Require().NoError(err)
	s.Assert().Equal("Unlucky Hat", got.Actor.Items[0].Name)

	_, err = s.repo.Patch(s.ctx, actor.PatchInput{
		ID: "actor_1",
		PathFunc: func(*entities.Actor) (string, error) {
			return "", errors.NotFound("item missing not found")
		},
		Value: "x",
	})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestPatchCheckErrorAbortsWrite() {
	s.create("actor_1")
	before, err := s.mr.Get("actor:actor_1")
	s.Require().NoError(err)

	_, err = s.repo.Patch(s.ctx, actor.PatchInput{
		ID:    "actor_1",
		Path:  "vitals.hitPoints.value",
		Value: 99,
		Check: func(patched *entities.Actor) error {
			return errors.OutOfRangef("hitPoints %v exceeds maximum %v", patched.Vitals.HitPoints.Value, 16)
		},
	})
	s.Assert().True(errors.IsOutOfRange(err))

	after, err := s.mr.Get("actor:actor_1")
	s.Require().NoError(err)
	s.Assert().Equal(before, after)
}

func (s *RedisRepositoryTestSuite) TestPatchCheckRerunsAfterConcurrentWrite() {
	s.create("actor_1")

	var names []string
	_, err := s.repo.Patch(s.ctx, actor.PatchInput{
		ID:    "actor_1",
		Path:  "vitals.hitPoints.value",
		Value: 3,
		Check: func(patched *entities.Actor) error {
			names = append(names, patched.Name)
			if len(names) == 1 {
				renamed := testutils.CreateTestActor("actor_1")
				renamed.Name = "Courier"
				_, err := s.repo.Update(s.ctx, actor.UpdateInput{Actor: renamed})
				s.Require().NoError(err)
			}
			return nil
		},
	})
	s.Require().NoError(err)
	s.Assert().Equal([]string{testutils.TestActorName, "Courier"}, names)

	got, err := s.repo.Get(s.ctx, actor.GetInput{ID: "actor_1"})
	s.Require().NoError(err)
	s.Assert().Equal("Courier", got.Actor.Name)
	s.Assert().Equal(float64(3), got.Actor.Vitals.HitPoints.Value)
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	s.create("actor_1")

	_, err := s.repo.Delete(s.ctx, actor.DeleteInput{ID: "actor_1"})
	s.Require().NoError(err)
	s.Assert().False(s.mr.Exists("actor:actor_1"))
	s.Assert().False(s.mr.Exists("actor:player:" + testutils.TestPlayerID))

	_, err = s.repo.Delete(s.ctx, actor.DeleteInput{ID: "actor_1"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListByPlayerIDCleansStaleEntries() {
	s.create("actor_1")
	s.create("actor_2")
	_, err := s.mr.SAdd("actor:player:"+testutils.TestPlayerID, "ghost")
	s.Require().NoError(err)

	out, err := s.repo.ListByPlayerID(s.ctx, actor.ListByPlayerIDInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Assert().Len(out.Actors, 2)

	isMember, err := s.mr.SIsMember("actor:player:"+testutils.TestPlayerID, "ghost")
	s.Require().NoError(err)
	s.Assert().False(isMember)

	_, err = s.repo.ListByPlayerID(s.ctx, actor.ListByPlayerIDInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}
