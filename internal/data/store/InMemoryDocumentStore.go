package store

import (
	"context"
	"sync"

	"github.com/akolanti/DocAPI/internal/domain/commonModels"
)

type InMemoryDocumentStore struct {
	docLock *sync.RWMutex
	docMap  map[string]commonModels.Document
}

func InitInMemoryDocumentStore() *InMemoryDocumentStore {
	return &InMemoryDocumentStore{
		docLock: new(sync.RWMutex),
		docMap:  make(map[string]commonModels.Document),
	}
}

func (store *InMemoryDocumentStore) SaveDocument(ctx context.Context, doc commonModels.Document) error {
	store.docLock.Lock()
	defer store.docLock.Unlock()
	store.docMap[doc.Id] = doc
	inMemLogger.Info(doc.Id, " : Saved document to store")
	return nil
}

func (store *InMemoryDocumentStore) GetDocument(ctx context.Context, id string) (commonModels.Document, bool) {
	store.docLock.RLock()
	defer store.docLock.RUnlock()
	doc, found := store.docMap[id]
	return doc, found
}

func (store *InMemoryDocumentStore) DeleteDocument(ctx context.Context, id string) {
	store.docLock.Lock()
	defer store.docLock.Unlock()
	delete(store.docMap, id)
}
