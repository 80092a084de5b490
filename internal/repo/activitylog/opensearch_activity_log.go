package activitylog_repo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"returnhub/internal/domain/returns"

	"github.com/google/uuid"
	"github.com/opensearch-project/opensearch-go"
)

// OpenSearchActivityLog indexes audit entries in OpenSearch. Deployments
// that want full-text search over the audit trail use this sink instead of
// the Postgres table.
type OpenSearchActivityLog struct {
	client *opensearch.Client
	index  string
}

var _ returns.ActivityLog = (*OpenSearchActivityLog)(nil)

func NewOpenSearchActivityLog(ctx context.Context, urls []string, index string) (*OpenSearchActivityLog, error) {
	if len(urls) == 0 {
		return nil, errors.New("no OpenSearch addresses configured")
	}

	client, err := opensearch.NewClient(opensearch.Config{
		Addresses: urls,
		Transport: &http.Transport{
			MaxIdleConnsPerHost: 10,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("opensearch client: %w", err)
	}

	log := &OpenSearchActivityLog{client: client, index: index}
	if err := log.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return log, nil
}

func (l *OpenSearchActivityLog) ensureIndex(ctx context.Context) error {
	res, err := l.client.Indices.Exists([]string{l.index}, l.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("indices.exists: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body := map[string]any{
		"mappings": map[string]any{
			"properties": map[string]any{
				"entity_type": map[string]any{"type": "keyword"},
				"entity_id":   map[string]any{"type": "keyword"},
				"action":      map[string]any{"type": "keyword"},
				"actor_type":  map[string]any{"type": "keyword"},
				"actor_id":    map[string]any{"type": "keyword"},
				"old_value":   map[string]any{"type": "object"},
				"new_value":   map[string]any{"type": "object"},
				"description": map[string]any{"type": "text"},
				"created_at":  map[string]any{"type": "date"},
			},
		},
		"settings": map[string]any{
			"number_of_replicas": 0,
		},
	}
	buf, _ := json.Marshal(body)
	cr, err := l.client.Indices.Create(
		l.index,
		l.client.Indices.Create.WithBody(bytes.NewReader(buf)),
		l.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("indices.create: %w", err)
	}
	defer cr.Body.Close()
	if cr.IsError() {
		return fmt.Errorf("indices.create error: %s", cr.String())
	}
	return nil
}

func (l *OpenSearchActivityLog) Record(ctx context.Context, entry returns.ActivityEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal activity entry: %w", err)
	}

	res, err := l.client.Index(
		l.index,
		bytes.NewReader(payload),
		l.client.Index.WithDocumentID(entry.ID),
		l.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index error: %s", res.String())
	}
	return nil
}

func (l *OpenSearchActivityLog) ListForEntity(ctx context.Context, entityType, entityID string) ([]returns.ActivityEntry, error) {
	body := map[string]any{
		"size": 500,
		"query": map[string]any{
			"bool": map[string]any{
				"filter": []map[string]any{
					{"term": map[string]any{"entity_type": entityType}},
					{"term": map[string]any{"entity_id": entityID}},
				},
			},
		},
		"sort": []map[string]any{
			{"created_at": map[string]any{"order": "desc"}},
		},
	}
	raw, _ := json.Marshal(body)

	res, err := l.client.Search(
		l.client.Search.WithContext(ctx),
		l.client.Search.WithIndex(l.index),
		l.client.Search.WithBody(bytes.NewReader(raw)),
	)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search error: %s", res.String())
	}

	var sr struct {
		Hits struct {
			Hits []struct {
				ID     string          `json:"_id"`
				Source json.RawMessage `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode search: %w", err)
	}

	entries := make([]returns.ActivityEntry, 0, len(sr.Hits.Hits))
	for _, hit := range sr.Hits.Hits {
		var entry returns.ActivityEntry
		if err := json.Unmarshal(hit.Source, &entry); err != nil {
			return nil, fmt.Errorf("decode hit: %w", err)
		}
		if entry.ID == "" {
			entry.ID = hit.ID
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
