// Package cache хранит нормализованные выгрузки, чтобы одинаковые входные
// данные не разбирались повторно.
package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"funpay-normalizer/internal/clock"
	"funpay-normalizer/internal/domain"
)

// Item представляет кэшированный результат
type Item struct {
	Page      *domain.NormalizedPage
	ExpiresAt time.Time
}

// PageCache управляет хранением и извлечением нормализованных выгрузок.
// Срок жизни отсчитывается по переданным часам.
type PageCache struct {
	items map[string]*Item
	mutex sync.RWMutex
	clock clock.Clock
	ttl   time.Duration
}

// NewPageCache создает новый экземпляр PageCache
func NewPageCache(c clock.Clock, ttl time.Duration) *PageCache {
	return &PageCache{
		items: make(map[string]*Item),
		clock: c,
		ttl:   ttl,
	}
}

// Get извлекает выгрузку по ключу
func (pc *PageCache) Get(key string) (*domain.NormalizedPage, bool) {
	pc.mutex.RLock()
	defer pc.mutex.RUnlock()

	item, exists := pc.items[key]
	if !exists || pc.clock.Now().After(item.ExpiresAt) {
		return nil, false
	}
	return item.Page, true
}

// Put сохраняет выгрузку на время ttl
func (pc *PageCache) Put(key string, page *domain.NormalizedPage) {
	pc.mutex.Lock()
	defer pc.mutex.Unlock()

	pc.items[key] = &Item{
		Page:      page,
		ExpiresAt: pc.clock.Now().Add(pc.ttl),
	}
}

// CleanupExpired удаляет просроченные элементы из кэша
func (pc *PageCache) CleanupExpired() int {
	pc.mutex.Lock()
	defer pc.mutex.Unlock()

	now := pc.clock.Now()
	removed := 0
	for key, item := range pc.items {
		if now.After(item.ExpiresAt) {
			delete(pc.items, key)
			removed++
		}
	}
	return removed
}

// Len возвращает число элементов, включая просроченные.
func (pc *PageCache) Len() int {
	pc.mutex.RLock()
	defer pc.mutex.RUnlock()
	return len(pc.items)
}

// Key вычисляет SHA256 от содержимого выгрузки и минуты, на которую
// разрешаются относительные даты. Одинаковый текст «вчера, 12:00» в другую
// минуту может дать другой результат, поэтому минута входит в ключ.
func Key(data []byte, now time.Time) string {
	hasher := sha256.New()
	hasher.Write(data)

	var minute [8]byte
	binary.BigEndian.PutUint64(minute[:], uint64(now.UTC().Truncate(time.Minute).Unix()))
	hasher.Write(minute[:])

	return fmt.Sprintf("%x", hasher.Sum(nil))
}
