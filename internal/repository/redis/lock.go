package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	LockTTL            = 3 * time.Second
	SubgroupLockPrefix = "lock:subgroup:name"
)

// 只有持有者才能释放，用 lua 保证比较和删除的原子性
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
  return redis.call("del", KEYS[1])
else
  return 0
end`)

type DistLock struct {
	RDB *redis.Client
	TTL time.Duration
}

func NewDistLock(rdb *redis.Client) *DistLock {
	return &DistLock{RDB: rdb, TTL: LockTTL}
}

// SubgroupNameKey 同一主分组下同名子分组创建共用一把锁
func SubgroupNameKey(mainGroupID uint64, name string) string {
	return fmt.Sprintf("%s:%d:%s", SubgroupLockPrefix, mainGroupID, name)
}

// Acquire 请求加分布式锁
func (l *DistLock) Acquire(ctx context.Context, key, token string) (bool, error) {
	return l.RDB.SetNX(ctx, key, token, l.TTL).Result()
}

func (l *DistLock) Release(ctx context.Context, key, token string) error {
	return releaseScript.Run(ctx, l.RDB, []string{key}, token).Err()
}
