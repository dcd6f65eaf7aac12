package sheet

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/digimon-sheet/internal/errors"
	"github.com/KirkDiggler/digimon-sheet/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/digimon-sheet/internal/redis"
	"github.com/KirkDiggler/digimon-sheet/internal/sheetdoc"
)

const (
	sheetKeyPrefix = "sheet:doc:"
	sheetIndexKey  = "sheet:index"

	fieldDocument  = "document"
	fieldName      = "name"
	fieldUpdatedAt = "updated_at"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis sheet repository.
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

// NewRedis creates a Redis-backed sheet library. Each sheet is a hash at
// sheet:doc:<location> and sheet:index holds every stored location. The
// prefixes are disjoint so no location can name the index.
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

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	location := strings.TrimSpace(input.Location)
	if location == "" {
		return nil, errors.InvalidArgument(errLocationEmpty)
	}

	data, err := r.client.HGet(ctx, sheetKeyPrefix+location, fieldDocument).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("sheet %s not found", location)
		}
		return nil, errors.Wrapf(err, "failed to get sheet")
	}

	record, err := sheetdoc.Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode sheet %s", location).WithMeta("location", location)
	}

	return &GetOutput{Location: location, Record: record}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	location := strings.TrimSpace(input.Location)
	if location == "" {
		return nil, errors.InvalidArgument(errLocationEmpty)
	}
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}

	data, err := sheetdoc.Encode(input.Record)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, sheetKeyPrefix+location,
		fieldDocument, data,
		fieldName, input.Record.Name,
		fieldUpdatedAt, r.clock.Now().UTC().UnixMilli(),
	)
	pipe.SAdd(ctx, sheetIndexKey, location)

	if _, err := pipe.Exec(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to store sheet", "location", location, "error", err)
		return nil, errors.Wrapf(err, "failed to store sheet")
	}

	slog.DebugContext(ctx, "stored sheet", "location", location, "bytes", len(data))
	return &PutOutput{Location: location}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	location := strings.TrimSpace(input.Location)
	if location == "" {
		return nil, errors.InvalidArgument(errLocationEmpty)
	}

	key := sheetKeyPrefix + location
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("sheet %s not found", location)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, sheetIndexKey, location)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete sheet")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	locations, err := r.client.SMembers(ctx, sheetIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get sheet index")
	}
	if len(locations) == 0 {
		return &ListOutput{Entries: []Entry{}}, nil
	}
	sort.Strings(locations)

	pipe := r.client.Pipeline()
	cmds := make([]*redis.SliceCmd, len(locations))
	for i, location := range locations {
		cmds[i] = pipe.HMGet(ctx, sheetKeyPrefix+location, fieldName, fieldUpdatedAt)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to get sheet metadata")
	}

	entries := make([]Entry, 0, len(locations))
	for i, cmd := range cmds {
		values := cmd.Val()
		if len(values) != 2 || values[1] == nil {
			// Index entry without a hash, left behind by an interrupted delete
			slog.DebugContext(ctx, "sheet in index but not found", "location", locations[i])
			continue
		}

		entry := Entry{Location: locations[i]}
		if name, ok := values[0].(string); ok {
			entry.Name = name
		}
		if raw, ok := values[1].(string); ok {
			if millis, err := strconv.ParseInt(raw, 10, 64); err == nil {
				entry.UpdatedAt = time.UnixMilli(millis).UTC()
			}
		}
		entries = append(entries, entry)
	}

	return &ListOutput{Entries: entries}, nil
}
