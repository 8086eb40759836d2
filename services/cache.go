package services

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	totalsCacheKey = "coinadmin:payment_totals"
	totalsCacheTTL = 5 * time.Minute
)

var cache *redis.Client

// totalsGen counts ledger writes. A fold snapshots the generation before
// reading the ledger and may only cache its result while the generation is
// unchanged, so a fold that raced a write can never pin stale totals.
var (
	totalsMu  sync.Mutex
	totalsGen uint64
)

// InitCache connects the optional totals cache. When REDIS_ADDR is unset or
// the server is unreachable, totals queries just run the full fold.
func InitCache() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Println("⚠️  Redis unavailable, totals cache disabled:", err)
		return
	}

	cache = client
	log.Println("✅ Totals cache connected")
}

func currentTotalsGen() uint64 {
	totalsMu.Lock()
	defer totalsMu.Unlock()
	return totalsGen
}

func cachedTotals() (PaymentTotals, bool) {
	if cache == nil {
		return PaymentTotals{}, false
	}

	raw, err := cache.Get(context.Background(), totalsCacheKey).Bytes()
	if err != nil {
		return PaymentTotals{}, false
	}

	var totals PaymentTotals
	if err := json.Unmarshal(raw, &totals); err != nil {
		return PaymentTotals{}, false
	}
	return totals, true
}

// storeTotals caches one fold result, unless a ledger write landed after the
// fold's generation snapshot. Reports whether the result was still current.
func storeTotals(totals PaymentTotals, gen uint64) bool {
	totalsMu.Lock()
	defer totalsMu.Unlock()
	if totalsGen != gen {
		return false
	}
	if cache == nil {
		return true
	}

	raw, err := json.Marshal(totals)
	if err != nil {
		return true
	}
	if err := cache.Set(context.Background(), totalsCacheKey, raw, totalsCacheTTL).Err(); err != nil {
		log.Println("⚠️  Failed to cache totals:", err)
	}
	return true
}

func invalidateTotals() {
	totalsMu.Lock()
	defer totalsMu.Unlock()
	totalsGen++
	if cache == nil {
		return
	}
	if err := cache.Del(context.Background(), totalsCacheKey).Err(); err != nil {
		log.Println("⚠️  Failed to invalidate totals cache:", err)
	}
}
