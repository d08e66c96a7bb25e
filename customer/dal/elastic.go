package dal

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/crmbridge/acrm-cust/common"
	"github.com/crmbridge/acrm-cust/customer/domain"
)

// searchPath is the sync index queried for customer contact records.
const searchPath = "/acrm_custsync/_search"

// ErrMalformedResponse signals a backend payload whose shape violates
// the expected hits contract.
var ErrMalformedResponse = errors.New("search response: hits.hits is not a list")

// StatusError is a non-success status returned by the search backend.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Database server responded with status code %d", e.Code)
}

//go:generate mockery --name CustomerSearch --output ./mocks
type CustomerSearch interface {
	Search(ctx context.Context, query domain.SearchQuery) ([]domain.RawRecord, error)
}

// ElasticSearch queries the customer sync index over HTTP. Stateless
// beyond the shared client; safe for concurrent use.
type ElasticSearch struct {
	client *resty.Client
}

func NewElasticSearch(cfg *common.Config) *ElasticSearch {
	client := resty.New().
		SetBaseURL(cfg.ElasticURL).
		SetTimeout(cfg.BackendTimeout)

	return &ElasticSearch{client: client}
}

type searchHit struct {
	Source domain.RawRecord `json:"_source"`
}

type searchHits struct {
	Hits []searchHit `json:"hits"`
}

type searchResponse struct {
	Hits *searchHits `json:"hits"`
}

// Search posts one query body and returns the hit sources in ranking
// order. A non-200 status maps to StatusError, a missing or non-list
// hits.hits to ErrMalformedResponse.
func (d *ElasticSearch) Search(ctx context.Context, query domain.SearchQuery) ([]domain.RawRecord, error) {
	var result searchResponse

	resp, err := d.client.R().
		SetContext(ctx).
		SetBody(query).
		SetResult(&result).
		Post(searchPath)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode()}
	}

	if result.Hits == nil || result.Hits.Hits == nil {
		return nil, ErrMalformedResponse
	}

	records := make([]domain.RawRecord, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		records = append(records, hit.Source)
	}

	return records, nil
}
