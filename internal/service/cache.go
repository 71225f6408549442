package service

import (
	"context"
	"errors"
	"fmt"
	"movie_review/model"
	errorHandler "movie_review/pkg/error"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type ICacheService interface {
	GetUserSummaries(ctx context.Context, userIds []string) (map[string]model.UserSummary, []string)
	SetUserSummaries(ctx context.Context, users []model.UserSummary)
	DeleteUserSummary(ctx context.Context, userId string)
}

const (
	userSummaryCachePrefix = "userSummary:"
	userSummaryCacheTTL    = time.Hour
)

// CacheService keeps review author summaries in redis. A nil client turns every call into a miss.
type CacheService struct {
	client *redis.Client
}

func NewCacheService(client *redis.Client) *CacheService {
	return &CacheService{client: client}
}

//------------------------------------------
//------------------------------------------

// GetUserSummaries returns the cached summaries and the ids that missed.
func (c *CacheService) GetUserSummaries(ctx context.Context, userIds []string) (map[string]model.UserSummary, []string) {
	found := make(map[string]model.UserSummary, len(userIds))
	if c.client == nil || len(userIds) == 0 {
		return found, userIds
	}

	keys := make([]string, len(userIds))
	for i, id := range userIds {
		keys[i] = userSummaryCachePrefix + id
	}
	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		errorHandler.SaveError("Redis Error on reading user summaries", err)
		return found, userIds
	}

	missed := make([]string, 0)
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			missed = append(missed, userIds[i])
			continue
		}
		var summary model.UserSummary
		if err = json.Unmarshal([]byte(s), &summary); err != nil {
			missed = append(missed, userIds[i])
			continue
		}
		found[userIds[i]] = summary
	}
	return found, missed
}

func (c *CacheService) SetUserSummaries(ctx context.Context, users []model.UserSummary) {
	if c.client == nil || len(users) == 0 {
		return
	}

	pipe := c.client.Pipeline()
	for _, u := range users {
		jsonData, err := json.Marshal(u)
		if err != nil {
			continue
		}
		pipe.Set(ctx, userSummaryCachePrefix+u.Id.Hex(), jsonData, userSummaryCacheTTL)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		errorHandler.SaveError(fmt.Sprintf("Redis Error on saving %d user summaries", len(users)), err)
	}
}

func (c *CacheService) DeleteUserSummary(ctx context.Context, userId string) {
	if c.client == nil {
		return
	}
	err := c.client.Del(ctx, userSummaryCachePrefix+userId).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		errorHandler.SaveError("Redis Error on removing user summary", err)
	}
}
