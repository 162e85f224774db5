package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/olkkari/menuload/pkg/menuload/models"
	postgrest "github.com/supabase-community/postgrest-go"
)

// PostgREST talks to a hosted PostgREST API such as Supabase's /rest/v1.
type PostgREST struct {
	client *postgrest.Client
}

// NewPostgREST returns a client for the project at baseURL using key as both
// the apikey header and the bearer token.
func NewPostgREST(baseURL, key string) (*PostgREST, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("postgrest: base URL is empty")
	}
	headers := map[string]string{
		"apikey":        key,
		"Authorization": "Bearer " + key,
	}
	client := postgrest.NewClient(strings.TrimRight(baseURL, "/")+"/rest/v1", "public", headers)
	if client.ClientError != nil {
		return nil, fmt.Errorf("postgrest: %w", client.ClientError)
	}
	return &PostgREST{client: client}, nil
}

// Insert posts all rows in one request and returns the number of rows the
// API echoed back.
func (p *PostgREST) Insert(_ context.Context, table string, rows []models.Record) (int, error) {
	if rows == nil {
		rows = []models.Record{}
	}
	body, _, err := p.client.From(table).Insert(rows, false, "", "representation", "").Execute()
	if err != nil {
		return 0, err
	}
	var inserted []json.RawMessage
	if err := json.Unmarshal(body, &inserted); err != nil {
		return 0, fmt.Errorf("postgrest: decode insert response: %w", err)
	}
	return len(inserted), nil
}

// Count asks for an exact count without fetching rows.
func (p *PostgREST) Count(_ context.Context, table string) (int64, error) {
	_, count, err := p.client.From(table).Select("id", "exact", true).Execute()
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Close is a no-op; the client holds no connections of its own.
func (p *PostgREST) Close() error {
	return nil
}
