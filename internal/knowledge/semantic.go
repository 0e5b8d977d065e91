package knowledge

import (
	"context"
	"fmt"
	"strconv"

	chromem "github.com/philippgille/chromem-go"

	"github.com/limitless-infotech/auralis/internal/embeddings"
)

const collectionName = "knowledge"

// SemanticIndex is an in-memory embedding index over knowledge items,
// consulted when substring matching finds nothing.
type SemanticIndex struct {
	db         *chromem.DB
	collection *chromem.Collection
}

// NewSemanticIndex creates an empty semantic index.
func NewSemanticIndex(embedder embeddings.Embedder) (*SemanticIndex, error) {
	cdb := chromem.NewDB()
	col, err := cdb.GetOrCreateCollection(collectionName, nil, embeddings.ToChromemFunc(embedder))
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}
	return &SemanticIndex{db: cdb, collection: col}, nil
}

// Index embeds and stores the given items.
func (i *SemanticIndex) Index(ctx context.Context, items []Item) error {
	if len(items) == 0 {
		return nil
	}

	docs := make([]chromem.Document, len(items))
	for n, item := range items {
		docs[n] = chromem.Document{
			ID:      strconv.FormatInt(item.ID, 10),
			Content: item.Content,
			Metadata: map[string]string{
				"category": item.Category,
				"title":    item.Title,
			},
		}
	}
	return i.collection.AddDocuments(ctx, docs, 1)
}

// Search returns the content of the limit nearest items.
func (i *SemanticIndex) Search(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = lookupLimit
	}

	// chromem-go requires nResults <= collection size.
	count := i.collection.Count()
	if count == 0 {
		return nil, nil
	}
	if limit > count {
		limit = count
	}

	results, err := i.collection.Query(ctx, query, limit, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("chromem query: %w", err)
	}

	snippets := make([]string, len(results))
	for n, r := range results {
		snippets[n] = r.Content
	}
	return snippets, nil
}
