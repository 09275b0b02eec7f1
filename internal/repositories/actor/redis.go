package actor

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	redis "github.com/redis/go-redis/v9"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/KirkDiggler/special-api/internal/entities"
	"github.com/KirkDiggler/special-api/internal/errors"
	"github.com/KirkDiggler/special-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/special-api/internal/redis"
)

const (
	actorKeyPrefix    = "actor:"
	playerIndexPrefix = "actor:player:"

	maxPatchAttempts = 5

	errActorNil      = "actor cannot be nil"
	errActorIDEmpty  = "actor ID cannot be empty"
	errPlayerIDEmpty = "player ID cannot be empty"
	errPathEmpty     = "patch path cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis actor repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed actor repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Actor == nil {
		return nil, errors.InvalidArgument(errActorNil)
	}
	if input.Actor.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	now := r.clock.Now().Unix()
	if input.Actor.CreatedAt == 0 {
		input.Actor.CreatedAt = now
	}
	input.Actor.UpdatedAt = now

	if err := input.Actor.Validate(); err != nil {
		return nil, err
	}

	key := actorKeyPrefix + input.Actor.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("actor with ID %s already exists", input.Actor.ID)
	}

	data, err := json.Marshal(input.Actor)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal actor")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	if input.Actor.PlayerID != "" {
		pipe.SAdd(ctx, playerIndexPrefix+input.Actor.PlayerID, input.Actor.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create actor")
	}

	return &CreateOutput{Actor: input.Actor}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	result, err := r.client.Get(ctx, actorKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("actor with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get actor")
	}

	actor, err := decode(result)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Actor: actor}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Actor == nil {
		return nil, errors.InvalidArgument(errActorNil)
	}
	if input.Actor.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	input.Actor.UpdatedAt = r.clock.Now().Unix()
	if err := input.Actor.Validate(); err != nil {
		return nil, err
	}

	existing, err := r.Get(ctx, GetInput{ID: input.Actor.ID})
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Actor)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal actor")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, actorKeyPrefix+input.Actor.ID, data, 0)

	if oldPlayer := existing.Actor.PlayerID; oldPlayer != input.Actor.PlayerID {
		if oldPlayer != "" {
			pipe.SRem(ctx, playerIndexPrefix+oldPlayer, input.Actor.ID)
		}
		if input.Actor.PlayerID != "" {
			pipe.SAdd(ctx, playerIndexPrefix+input.Actor.PlayerID, input.Actor.ID)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update actor")
	}

	return &UpdateOutput{Actor: input.Actor}, nil
}

func (r *redisRepository) Patch(ctx context.Context, input PatchInput) (*PatchOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}
	if input.Path == "" && input.PathFunc == nil {
		return nil, errors.InvalidArgument(errPathEmpty)
	}

	key := actorKeyPrefix + input.ID
	var patched *entities.Actor
	path := input.Path

	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return errors.NotFoundf("actor with ID %s not found", input.ID)
			}
			return errors.Wrapf(err, "failed to get actor")
		}

		if input.PathFunc != nil {
			stored, err := decode(current)
			if err != nil {
				return err
			}
			if path, err = input.PathFunc(stored); err != nil {
				return err
			}
		}

		if parent := parentPath(path); parent != "" && !gjson.Get(current, parent).Exists() {
			return errors.NotFoundf("path %q not found on actor %s", parent, input.ID)
		}

		updated, err := setPath(current, path, input.Value)
		if err != nil {
			return errors.InvalidArgumentf("failed to set %q: %v", path, err)
		}
		updated, err = sjson.Set(updated, "updatedAt", r.clock.Now().Unix())
		if err != nil {
			return errors.Wrapf(err, "failed to set updatedAt")
		}

		actor, err := decode(updated)
		if err != nil {
			return err
		}
		if err := actor.Validate(); err != nil {
			return err
		}
		if input.Check != nil {
			if err := input.Check(actor); err != nil {
				return err
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, 0)
			return nil
		})
		if err != nil {
			return err
		}

		patched = actor
		return nil
	}

	for attempt := 1; attempt <= maxPatchAttempts; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return &PatchOutput{Actor: patched}, nil
		}
		if err != redis.TxFailedErr {
			var appErr *errors.Error
			if errors.As(err, &appErr) {
				return nil, err
			}
			return nil, errors.Wrapf(err, "failed to patch actor")
		}

		slog.DebugContext(ctx, "actor changed during patch, retrying",
			"actor_id", input.ID,
			"path", path,
			"attempt", attempt)
	}

	return nil, errors.Abortedf("actor %s kept changing during patch of %q", input.ID, path)
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, actorKeyPrefix+input.ID)
	if existing.Actor.PlayerID != "" {
		pipe.SRem(ctx, playerIndexPrefix+existing.Actor.PlayerID, input.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete actor")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByPlayerID(
	ctx context.Context,
	input ListByPlayerIDInput,
) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	indexKey := playerIndexPrefix + input.PlayerID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get actors from index %s", indexKey)
	}

	actors := make([]*entities.Actor, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "actor not found, cleaning up index",
					"actor_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, err
		}
		actors = append(actors, out.Actor)
	}

	slog.DebugContext(ctx, "listed actors by player",
		"player_id", input.PlayerID,
		"count", len(actors))

	return &ListByPlayerIDOutput{Actors: actors}, nil
}

// parentPath drops the last segment of a dot path.
func parentPath(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[:i]
	}
	return ""
}

// setPath writes raw JSON verbatim and marshals anything else.
func setPath(doc, path string, value any) (string, error) {
	if raw, ok := value.(json.RawMessage); ok {
		return sjson.SetRaw(doc, path, string(raw))
	}
	return sjson.Set(doc, path, value)
}

func decode(data string) (*entities.Actor, error) {
	var actor entities.Actor
	if err := json.Unmarshal([]byte(data), &actor); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal actor")
	}
	return &actor, nil
}
