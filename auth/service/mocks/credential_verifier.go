package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/crmbridge/acrm-cust/auth/service"
)

type CredentialVerifier struct {
	mock.Mock
}

func (m *CredentialVerifier) Verify(scheme, token string) service.Outcome {
	args := m.Called(scheme, token)
	return args.Get(0).(service.Outcome)
}
