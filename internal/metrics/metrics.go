// Package metrics реализует счётчики событий витрины и их периодический вывод в лог.
package metrics

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Sink накапливает счётчики событий витрины.
// Счётчики атомарные: фоновой репортёр читает их параллельно с основным циклом.
type Sink struct {
	visits     atomic.Int64
	addToCarts atomic.Int64
}

// NewSink создаёт пустой набор счётчиков.
func NewSink() *Sink {
	return &Sink{}
}

// TrackVisit фиксирует посещение витрины.
func (s *Sink) TrackVisit() {
	s.visits.Add(1)
}

// TrackAddToCart фиксирует добавление товара в корзину.
func (s *Sink) TrackAddToCart() {
	s.addToCarts.Add(1)
}

// Snapshot возвращает текущие значения счётчиков.
func (s *Sink) Snapshot() (visits, addToCarts int64) {
	return s.visits.Load(), s.addToCarts.Load()
}

// Reporter периодически пишет значения счётчиков в лог.
type Reporter struct {
	sink     *Sink
	logger   *zap.Logger
	interval time.Duration
}

// NewReporter создаёт репортёр для указанного набора счётчиков.
func NewReporter(sink *Sink, logger *zap.Logger, interval time.Duration) *Reporter {
	return &Reporter{
		sink:     sink,
		logger:   logger,
		interval: interval,
	}
}

// Run запускает цикл вывода метрик до отмены контекста.
func (r *Reporter) Run(ctx context.Context) {
	if r.interval <= 0 {
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			visits, addToCarts := r.sink.Snapshot()
			r.logger.Info("storefront metrics",
				zap.Int64("visits", visits),
				zap.Int64("addToCart", addToCarts),
			)
		}
	}
}
