package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"liaison-portal/internal/repositories"
)

type DocumentRepositoryMock struct {
	mock.Mock
}

func (m *DocumentRepositoryMock) GetDocument(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	var body []byte
	if val := args.Get(0); val != nil {
		body = val.([]byte)
	}
	return body, args.Error(1)
}

func (m *DocumentRepositoryMock) PutDocument(ctx context.Context, key string, body []byte) error {
	args := m.Called(ctx, key, body)
	return args.Error(0)
}

func (m *DocumentRepositoryMock) DeleteDocument(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

var _ repositories.DocumentRepository = (*DocumentRepositoryMock)(nil)
