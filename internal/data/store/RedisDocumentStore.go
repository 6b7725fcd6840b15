package store

import (
	"context"
	"encoding/json"

	"github.com/akolanti/DocAPI/internal/config"
	"github.com/akolanti/DocAPI/internal/data/redisStore"
	"github.com/akolanti/DocAPI/internal/domain/commonModels"
	"github.com/akolanti/DocAPI/pkg/logger_i"
)

type RedisDocumentStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

// GetRedisDocumentStore returns nil when Redis is offline so the caller can
// fall back to the in-memory store.
func GetRedisDocumentStore(ctx context.Context) *RedisDocumentStore {
	backing := redisStore.GetRedisStore(ctx, config.RedisDocumentStore)
	if backing == nil {
		return nil
	}
	return &RedisDocumentStore{
		store:  backing,
		logger: logger_i.NewLogger("DocumentStore"),
	}
}

func (s *RedisDocumentStore) SaveDocument(ctx context.Context, doc commonModels.Document) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "document Id", doc.Id)
	log.Debug("saving document")
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	err = s.store.Set(ctx, doc.Id, data, config.RedisDocumentStoreTTL)
	if err == nil {
		log.Debug("Saved document to Redis")
	}
	return err
}

func (s *RedisDocumentStore) GetDocument(ctx context.Context, id string) (commonModels.Document, bool) {
	var doc commonModels.Document
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "document Id", id)
	log.Debug("getting document")
	val, err := s.store.Get(ctx, id)
	if s.store.IsNil(err) {
		return doc, false
	} else if err != nil {
		return doc, false
	}

	if err := json.Unmarshal([]byte(val), &doc); err != nil {
		return doc, false
	}

	log.Debug("Document found in Redis")
	return doc, true
}

func (s *RedisDocumentStore) DeleteDocument(ctx context.Context, id string) {
	err := s.store.Del(ctx, id)
	if err != nil {
		s.logger.Error("Error deleting document from Redis", "documentId", id)
		return
	}
	s.logger.Debug("Document deleted from Redis", "documentId", id)
}

func TestDocumentStore(store *redisStore.Store) *RedisDocumentStore {
	return &RedisDocumentStore{
		store:  store,
		logger: logger_i.NewLogger("test redis"),
	}
}
