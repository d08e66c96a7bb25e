package service

import (
	"context"

	"github.com/crmbridge/acrm-cust/countries"
	"github.com/crmbridge/acrm-cust/customer/dal"
	"github.com/crmbridge/acrm-cust/customer/domain"
	"github.com/crmbridge/acrm-cust/logger"
)

//go:generate mockery --name CustomerService --output=./mocks
type CustomerService interface {
	SearchByCaller(ctx context.Context, anrufer string) (domain.Record, error)
	FindCandidates(ctx context.Context, data *domain.LookupData) ([]domain.Record, error)
	VerifyContact(ctx context.Context, contactID string) (domain.Record, error)
}

// Service orchestrates the lookup pipeline: normalize input, build the
// query, call the search backend, reshape the hits.
type Service struct {
	loggerProvider logger.Provider
	search         dal.CustomerSearch
	countries      *countries.Table
}

func NewCustomerService(log logger.Provider, search dal.CustomerSearch, table *countries.Table) *Service {
	return &Service{
		loggerProvider: log,
		search:         search,
		countries:      table,
	}
}

// SearchByCaller looks up the contact record matching a caller number.
// Only the first hit is consulted; an empty record means no match.
func (s *Service) SearchByCaller(ctx context.Context, anrufer string) (domain.Record, error) {
	l := s.loggerProvider(ctx)

	digits, err := NormalizePhone(anrufer)
	if err != nil {
		return nil, err
	}

	hits, err := s.search.Search(ctx, domain.NewPhoneQuery(digits))
	if err != nil {
		return nil, err
	}

	l.Infof("caller search: %d hits", len(hits))

	if len(hits) == 0 {
		return domain.Record{}, nil
	}

	return Standardize(hits[0], s.countries), nil
}

// FindCandidates runs the fuzzy multi-field search and returns the
// ranked candidate list, each record tagged with its correlation key.
func (s *Service) FindCandidates(ctx context.Context, data *domain.LookupData) ([]domain.Record, error) {
	l := s.loggerProvider(ctx)

	hits, err := s.search.Search(ctx, domain.NewCandidateQuery(data))
	if err != nil {
		return nil, err
	}

	l.Infof("candidate search: %d hits", len(hits))

	records := make([]domain.Record, 0, len(hits))
	for _, hit := range hits {
		records = append(records, tagContactID(Standardize(hit, s.countries), hit))
	}

	return records, nil
}

// VerifyContact re-fetches a single contact by its correlation key. An
// empty record means the contact no longer exists.
func (s *Service) VerifyContact(ctx context.Context, contactID string) (domain.Record, error) {
	hits, err := s.search.Search(ctx, domain.NewVerifyQuery(contactID))
	if err != nil {
		return nil, err
	}

	if len(hits) == 0 {
		return domain.Record{}, nil
	}

	return tagContactID(Standardize(hits[0], s.countries), hits[0]), nil
}

// tagContactID attaches the correlation key, the textual customer
// number of the raw hit.
func tagContactID(record domain.Record, raw domain.RawRecord) domain.Record {
	if number, ok := raw["kundennummer"]; ok && number != nil {
		record[domain.ContactIDKey] = CoerceString(number)
	}

	return record
}
