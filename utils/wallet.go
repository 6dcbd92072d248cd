// utils/wallet.go
package utils

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrWithdrawalInProgress is returned when another withdrawal request for
// the same affiliate currently holds the lock.
var ErrWithdrawalInProgress = errors.New("another withdrawal request is being processed")

// AvailableBalance derives the spendable balance from ledger totals. The
// clamp to zero is a policy decision: inconsistent data can make withdrawals
// exceed earnings, and we never surface a negative balance.
func AvailableBalance(totalEarned, totalWithdrawn float64) float64 {
	return math.Max(0, totalEarned-totalWithdrawn)
}

// RoundToCents rounds an amount to 2 decimal places
func RoundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

const withdrawLockTTL = 15 * time.Second

// WithdrawLock serializes the balance-check-then-insert section of a
// withdrawal request per affiliate. Without it two concurrent requests can
// both read the same balance and overdraw the account.
//
// A Redis SETNX lock covers multi-instance deployments; when Redis is not
// available the lock degrades to an in-process mutex per affiliate, which is
// sufficient for a single-instance deployment.
type WithdrawLock struct {
	redis *redis.Client
	mu    sync.Mutex
	local map[string]*sync.Mutex
}

func NewWithdrawLock(client *redis.Client) *WithdrawLock {
	return &WithdrawLock{
		redis: client,
		local: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the per-affiliate lock and returns a release function.
// Returns ErrWithdrawalInProgress when the Redis lock is already held.
func (l *WithdrawLock) Lock(ctx context.Context, affiliateID string) (func(), error) {
	if l.redis != nil {
		key := "withdraw:lock:" + affiliateID
		ok, err := l.redis.SetNX(ctx, key, 1, withdrawLockTTL).Result()
		if err == nil {
			if !ok {
				return nil, ErrWithdrawalInProgress
			}
			return func() {
				l.redis.Del(context.Background(), key)
			}, nil
		}
		// Redis unreachable; fall through to the local lock
	}

	mu := l.localMutex(affiliateID)
	mu.Lock()
	return mu.Unlock, nil
}

func (l *WithdrawLock) localMutex(affiliateID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	mu, exists := l.local[affiliateID]
	if !exists {
		mu = &sync.Mutex{}
		l.local[affiliateID] = mu
	}
	return mu
}
