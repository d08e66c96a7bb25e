package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/crmbridge/acrm-cust/customer/domain"
)

type CustomerSearch struct {
	mock.Mock
}

func (m *CustomerSearch) Search(ctx context.Context, query domain.SearchQuery) ([]domain.RawRecord, error) {
	args := m.Called(ctx, query)

	var records []domain.RawRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.RawRecord)
	}

	return records, args.Error(1)
}
