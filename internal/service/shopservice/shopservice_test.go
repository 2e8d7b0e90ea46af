package shopservice

import (
	"context"
	"errors"
	"testing"

	"github.com/daikoshop/adminapi/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestIsOpen(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expected      bool
		expectedError error
	}{
		{
			name: "No config row defaults to open",
			prepareMock: func() {
				repo.EXPECT().Find(gomock.Any()).Return(nil, nil)
			},
			expected: true,
		},
		{
			name: "Persisted closed",
			prepareMock: func() {
				repo.EXPECT().Find(gomock.Any()).Return(&domain.ShopConfig{ID: domain.ConfigID, IsShopOpen: false}, nil)
			},
			expected: false,
		},
		{
			name: "Persisted open",
			prepareMock: func() {
				repo.EXPECT().Find(gomock.Any()).Return(&domain.ShopConfig{ID: domain.ConfigID, IsShopOpen: true}, nil)
			},
			expected: true,
		},
		{
			name: "Storage failure",
			prepareMock: func() {
				repo.EXPECT().Find(gomock.Any()).Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			isOpen, err := service.IsOpen(context.Background())
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, isOpen)
			}
		})
	}
}

func TestSetOpen(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Close then reopen", func(t *testing.T) {
		repo.EXPECT().Upsert(gomock.Any(), false).Return(nil)
		assert.NoError(t, service.SetOpen(context.Background(), false))

		repo.EXPECT().Upsert(gomock.Any(), true).Return(nil)
		assert.NoError(t, service.SetOpen(context.Background(), true))
	})

	t.Run("Storage failure", func(t *testing.T) {
		repo.EXPECT().Upsert(gomock.Any(), true).Return(errors.New("some error"))
		err := service.SetOpen(context.Background(), true)
		assert.Error(t, err)
	})
}
