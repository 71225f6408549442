package service

import (
	"context"
	"errors"
	"fmt"
	"movie_review/model"
	errorHandler "movie_review/pkg/error"
	"movie_review/pkg/metrics"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// IMovieLocker serializes the review write path of a single movie.
// Lock blocks until the movie is free or ctx is done; the returned func releases it.
type IMovieLocker interface {
	Lock(ctx context.Context, movieId string) (func(), error)
}

//------------------------------------------
//------------------------------------------

type keyedMutex struct {
	sem  chan struct{}
	refs int
}

// KeyedMutexLocker holds one mutex per movie id, dropped once nobody waits on it.
type KeyedMutexLocker struct {
	mu    sync.Mutex
	locks map[string]*keyedMutex
}

func NewKeyedMutexLocker() *KeyedMutexLocker {
	return &KeyedMutexLocker{locks: make(map[string]*keyedMutex)}
}

func (l *KeyedMutexLocker) Lock(ctx context.Context, movieId string) (func(), error) {
	start := time.Now()

	l.mu.Lock()
	km, ok := l.locks[movieId]
	if !ok {
		km = &keyedMutex{sem: make(chan struct{}, 1)}
		l.locks[movieId] = km
	}
	km.refs++
	l.mu.Unlock()

	select {
	case km.sem <- struct{}{}:
	case <-ctx.Done():
		l.release(movieId, km)
		return nil, fmt.Errorf("%w: %w", model.ErrLockTimeout, ctx.Err())
	}
	metrics.MovieLockWait.WithLabelValues("memory").Observe(time.Since(start).Seconds())

	var once sync.Once
	return func() {
		once.Do(func() {
			<-km.sem
			l.release(movieId, km)
		})
	}, nil
}

func (l *KeyedMutexLocker) release(movieId string, km *keyedMutex) {
	l.mu.Lock()
	defer l.mu.Unlock()
	km.refs--
	if km.refs == 0 {
		delete(l.locks, movieId)
	}
}

// size is the number of movie ids currently tracked.
func (l *KeyedMutexLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

//------------------------------------------
//------------------------------------------

const (
	movieLockPrefix      = "movieLock:"
	defaultMovieLockTTL  = 10 * time.Second
	movieLockMinBackoff  = 5 * time.Millisecond
	movieLockMaxBackoff  = 200 * time.Millisecond
	movieLockReleaseWait = 2 * time.Second
)

// releases the key only if it still holds our token
var releaseMovieLockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker is shared by every api replica pointing at the same redis.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = defaultMovieLockTTL
	}
	return &RedisLocker{
		client: client,
		ttl:    ttl,
	}
}

func (l *RedisLocker) Lock(ctx context.Context, movieId string) (func(), error) {
	start := time.Now()
	key := movieLockPrefix + movieId
	token := uuid.NewString()
	backoff := movieLockMinBackoff

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("%w: %w", model.ErrLockTimeout, ctxErr)
			}
			return nil, err
		}
		if ok {
			break
		}

		timer := time.NewTimer(backoff)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("%w: %w", model.ErrLockTimeout, ctx.Err())
		}
		backoff = min(backoff*2, movieLockMaxBackoff)
	}
	metrics.MovieLockWait.WithLabelValues("redis").Observe(time.Since(start).Seconds())

	var once sync.Once
	return func() {
		once.Do(func() {
			// the request ctx may already be done here
			releaseCtx, cancel := context.WithTimeout(context.Background(), movieLockReleaseWait)
			defer cancel()
			err := releaseMovieLockScript.Run(releaseCtx, l.client, []string{key}, token).Err()
			if err != nil && !errors.Is(err, redis.Nil) {
				errorHandler.SaveError(fmt.Sprintf("Redis Error on releasing movie lock %s", movieId), err)
			}
		})
	}, nil
}
