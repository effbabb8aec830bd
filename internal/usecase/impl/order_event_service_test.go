package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mart/internal/domain/entity"
	"mart/internal/domain/repository"
	"mart/internal/domain/service"
	"mart/internal/errors"
	mockRepo "mart/internal/mocks/repository"
	"mart/internal/usecase"
)

func createTestOrderEventService(t *testing.T) (usecase.OrderEventUsecase, *mockRepo.MockOrderRepository) {
	orderRepo := mockRepo.NewMockOrderRepository(t)

	return NewOrderEventService(OrderEventServiceParams{OrderRepo: orderRepo, Logger: newDiscardLogger()}), orderRepo
}

func TestOrderEventService_HandleOrderPlaced(t *testing.T) {
	apple := newTestProduct(t, 1, "apple", "1500")
	stored, err := entity.RestoreOrder(11, []entity.Product{*apple, *apple})
	require.NoError(t, err)

	tests := []struct {
		name      string
		event     *service.OrderPlacedEvent
		setupMock func(repo *mockRepo.MockOrderRepository)
		wantErr   bool
		wantStale bool
	}{
		{
			name:  "matching event",
			event: &service.OrderPlacedEvent{EventID: "e1", OrderID: 11, UserID: testUserID, TotalPrice: "3000", UnitCount: 2},
			setupMock: func(repo *mockRepo.MockOrderRepository) {
				repo.EXPECT().FindByID(context.Background(), testUserID, int64(11)).Return(stored, nil)
			},
		},
		{
			name:      "missing ids",
			event:     &service.OrderPlacedEvent{EventID: "e2"},
			wantErr:   true,
			wantStale: true,
		},
		{
			name:  "unknown order",
			event: &service.OrderPlacedEvent{EventID: "e3", OrderID: 99, UserID: testUserID, TotalPrice: "1", UnitCount: 1},
			setupMock: func(repo *mockRepo.MockOrderRepository) {
				repo.EXPECT().FindByID(context.Background(), testUserID, int64(99)).Return(nil, repository.ErrOrderNotFound)
			},
			wantErr:   true,
			wantStale: true,
		},
		{
			name:  "total mismatch",
			event: &service.OrderPlacedEvent{EventID: "e4", OrderID: 11, UserID: testUserID, TotalPrice: "2999", UnitCount: 2},
			setupMock: func(repo *mockRepo.MockOrderRepository) {
				repo.EXPECT().FindByID(context.Background(), testUserID, int64(11)).Return(stored, nil)
			},
			wantErr:   true,
			wantStale: true,
		},
		{
			name:  "database failure is transient",
			event: &service.OrderPlacedEvent{EventID: "e5", OrderID: 11, UserID: testUserID, TotalPrice: "3000", UnitCount: 2},
			setupMock: func(repo *mockRepo.MockOrderRepository) {
				repo.EXPECT().FindByID(context.Background(), testUserID, int64(11)).Return(nil, errors.New("too many connections"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, orderRepo := createTestOrderEventService(t)
			if tt.setupMock != nil {
				tt.setupMock(orderRepo)
			}

			err := srv.HandleOrderPlaced(context.Background(), tt.event)

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantStale, errors.Is(err, usecase.ErrStaleOrderEvent))
		})
	}
}
