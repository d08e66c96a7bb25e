package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/crmbridge/acrm-cust/customer/domain"
)

type CustomerService struct {
	mock.Mock
}

func (m *CustomerService) SearchByCaller(ctx context.Context, anrufer string) (domain.Record, error) {
	args := m.Called(ctx, anrufer)

	var record domain.Record
	if args.Get(0) != nil {
		record = args.Get(0).(domain.Record)
	}

	return record, args.Error(1)
}

func (m *CustomerService) FindCandidates(ctx context.Context, data *domain.LookupData) ([]domain.Record, error) {
	args := m.Called(ctx, data)

	var records []domain.Record
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.Record)
	}

	return records, args.Error(1)
}

func (m *CustomerService) VerifyContact(ctx context.Context, contactID string) (domain.Record, error) {
	args := m.Called(ctx, contactID)

	var record domain.Record
	if args.Get(0) != nil {
		record = args.Get(0).(domain.Record)
	}

	return record, args.Error(1)
}
