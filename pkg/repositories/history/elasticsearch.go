package history

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/fadedpez/parlor/pkg/entities"
	"github.com/google/uuid"
)

// ElasticsearchConfig holds configuration options for the Elasticsearch repository
type ElasticsearchConfig struct {
	URL         string
	Username    string
	Password    string
	IndexPrefix string
	Timeout     time.Duration // per request
}

// DefaultElasticsearchConfig returns a default configuration for Elasticsearch
func DefaultElasticsearchConfig() *ElasticsearchConfig {
	return &ElasticsearchConfig{
		URL:         "http://localhost:9200",
		IndexPrefix: "parlor",
		Timeout:     5 * time.Second,
	}
}

// ElasticsearchRepository indexes every saved round into Elasticsearch.
// Reads go to the base repository, which remains the source of truth.
type ElasticsearchRepository struct {
	baseRepo Repository
	client   *elasticsearch.Client
	config   *ElasticsearchConfig
	index    string
}

var _ Repository = (*ElasticsearchRepository)(nil)

// NewElasticsearchRepository creates the client and the rounds index if needed
func NewElasticsearchRepository(ctx context.Context, baseRepo Repository, config *ElasticsearchConfig) (*ElasticsearchRepository, error) {
	if config == nil {
		config = DefaultElasticsearchConfig()
	}

	cfg := elasticsearch.Config{
		Addresses: []string{config.URL},
	}

	// Add authentication if provided
	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}

	if config.IndexPrefix == "" {
		config.IndexPrefix = "parlor"
	}
	if config.Timeout == 0 {
		config.Timeout = 5 * time.Second
	}

	repo := &ElasticsearchRepository{
		baseRepo: baseRepo,
		client:   client,
		config:   config,
		index:    config.IndexPrefix + "_rounds",
	}

	if err := repo.initIndex(ctx); err != nil {
		return nil, fmt.Errorf("error initializing index: %w", err)
	}

	return repo, nil
}

// Index returns the name of the rounds index
func (r *ElasticsearchRepository) Index() string {
	return r.index
}

// initIndex creates the rounds index if it doesn't exist
func (r *ElasticsearchRepository) initIndex(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	res, err := r.client.Indices.Exists([]string{r.index}, r.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("error checking if index exists: %w", err)
	}
	res.Body.Close()

	if res.StatusCode != 404 {
		return nil
	}

	res, err = r.client.Indices.Create(
		r.index,
		r.client.Indices.Create.WithBody(strings.NewReader(roundIndexMapping)),
		r.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("error creating index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating index: %s", res.String())
	}
	return nil
}

// SaveRound saves to the base repository, then indexes the round
func (r *ElasticsearchRepository) SaveRound(ctx context.Context, record *entities.RoundRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CompletedAt.IsZero() {
		record.CompletedAt = time.Now()
	}

	if r.baseRepo != nil {
		if err := r.baseRepo.SaveRound(ctx, record); err != nil {
			return err
		}
	}

	return r.IndexRound(ctx, record)
}

// IndexRound writes record as a document keyed by its ID
func (r *ElasticsearchRepository) IndexRound(ctx context.Context, record *entities.RoundRecord) error {
	data, err := json.Marshal(newESRound(record))
	if err != nil {
		return fmt.Errorf("error marshaling round: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	res, err := r.client.Index(
		r.index,
		bytes.NewReader(data),
		r.client.Index.WithDocumentID(record.ID),
		r.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("error indexing round: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing round: %s", res.String())
	}
	return nil
}

// RecentRounds delegates to the base repository
func (r *ElasticsearchRepository) RecentRounds(ctx context.Context, game string, limit int) ([]*entities.RoundRecord, error) {
	if r.baseRepo == nil {
		return []*entities.RoundRecord{}, nil
	}
	return r.baseRepo.RecentRounds(ctx, game, limit)
}

// Stats delegates to the base repository
func (r *ElasticsearchRepository) Stats(ctx context.Context, game string) (*entities.RoundStatistics, error) {
	if r.baseRepo == nil {
		return &entities.RoundStatistics{Game: game}, nil
	}
	return r.baseRepo.Stats(ctx, game)
}

// Close closes the base repository
func (r *ElasticsearchRepository) Close() error {
	if r.baseRepo != nil {
		return r.baseRepo.Close()
	}
	return nil
}
