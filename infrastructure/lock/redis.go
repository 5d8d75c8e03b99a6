package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/discount-sync-api/internal/config"
)

const (
	keyPrefix         = "discount-sync:run:"
	redisCallTimeout  = 5 * time.Second
	refreshesPerTTL   = 3
	defaultRunLockTTL = 2 * time.Hour
)

// Só apaga as chaves que ainda pertencerem ao dono que as criou
var releaseScript = redis.NewScript(`
local released = 0
for _, key in ipairs(KEYS) do
	if redis.call("GET", key) == ARGV[1] then
		released = released + redis.call("DEL", key)
	end
end
return released
`)

// Renova a expiração das chaves do dono; retorna quantas ainda lhe pertencem
var refreshScript = redis.NewScript(`
local renewed = 0
for _, key in ipairs(KEYS) do
	if redis.call("GET", key) == ARGV[1] then
		redis.call("PEXPIRE", key, ARGV[2])
		renewed = renewed + 1
	end
end
return renewed
`)

// RedisRunLocker implementa a trava de execução com SET NX e expiração.
// Enquanto a trava está de pé a expiração é renovada a cada ttl/3.
type RedisRunLocker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("falha ao conectar no Redis: %w", err)
	}

	return client, nil
}

func NewRedisRunLocker(client *redis.Client, ttl time.Duration) *RedisRunLocker {
	if ttl <= 0 {
		ttl = defaultRunLockTTL
	}

	return &RedisRunLocker{
		client: client,
		ttl:    ttl,
	}
}

// TryLock não bloqueia e trava todas as chaves ou nenhuma. A expiração libera as
// chaves se o processo morrer no meio da execução.
func (l *RedisRunLocker) TryLock(ctx context.Context, keys []string) (func(), bool, error) {
	token := uuid.New().String()

	redisKeys := make([]string, 0, len(keys))
	for _, key := range keys {
		redisKey := keyPrefix + key

		acquired, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			l.release(redisKeys, token)
			return nil, false, fmt.Errorf("erro ao adquirir lock %s: %w", key, err)
		}

		if !acquired {
			l.release(redisKeys, token)
			return nil, false, nil
		}

		redisKeys = append(redisKeys, redisKey)
	}

	stop := make(chan struct{})
	go l.keepAlive(redisKeys, token, stop)

	var once sync.Once
	unlock := func() {
		once.Do(func() {
			close(stop)
			l.release(redisKeys, token)
		})
	}

	return unlock, true, nil
}

func (l *RedisRunLocker) keepAlive(redisKeys []string, token string, stop <-chan struct{}) {
	ticker := time.NewTicker(l.ttl / refreshesPerTTL)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), redisCallTimeout)
			renewed, err := refreshScript.Run(ctx, l.client, redisKeys, token, l.ttl.Milliseconds()).Int()
			cancel()

			if err != nil {
				logrus.WithError(err).WithField("lock_keys", redisKeys).Warn("Erro ao renovar lock no Redis")
				continue
			}

			if renewed < len(redisKeys) {
				logrus.WithField("lock_keys", redisKeys).Error("Lock no Redis expirou antes do fim da execução")
				return
			}
		}
	}
}

func (l *RedisRunLocker) release(redisKeys []string, token string) {
	if len(redisKeys) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisCallTimeout)
	defer cancel()

	if err := releaseScript.Run(ctx, l.client, redisKeys, token).Err(); err != nil && err != redis.Nil {
		logrus.WithError(err).WithField("lock_keys", redisKeys).Error("Erro ao liberar lock no Redis")
	}
}
