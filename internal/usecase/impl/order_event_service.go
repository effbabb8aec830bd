package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	deliverycontext "mart/internal/delivery/context"
	"mart/internal/domain/repository"
	"mart/internal/domain/service"
	"mart/internal/errors"
	"mart/internal/usecase"
)

// orderEventService implements the OrderEventUsecase interface.
type orderEventService struct {
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderEventServiceParams holds dependencies for OrderEventService, injected by Fx.
type OrderEventServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderEventService is the constructor for orderEventService.
func NewOrderEventService(params OrderEventServiceParams) usecase.OrderEventUsecase {
	return &orderEventService{
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

func (srv *orderEventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleOrderPlaced confirms that the event describes an order that was
// committed with the same total and unit count.
func (srv *orderEventService) HandleOrderPlaced(ctx context.Context, event *service.OrderPlacedEvent) error {
	if event == nil || event.OrderID <= 0 || event.UserID <= 0 {
		return errors.Wrap(usecase.ErrStaleOrderEvent, "event does not identify an order")
	}

	order, err := srv.orderRepo.FindByID(ctx, event.UserID, event.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return errors.Wrapf(usecase.ErrStaleOrderEvent, "order %d of user %d not found", event.OrderID, event.UserID)
		}

		return errors.Wrap(err, "failed to load order for event")
	}

	if order.TotalPrice() != event.TotalPrice || len(order.Products()) != event.UnitCount {
		srv.log(ctx).Error("Order event does not match stored order",
			slog.String("eventID", event.EventID),
			slog.Int64("orderID", event.OrderID),
			slog.String("eventTotal", event.TotalPrice),
			slog.String("storedTotal", order.TotalPrice()),
			slog.Int("eventUnits", event.UnitCount),
			slog.Int("storedUnits", len(order.Products())),
		)

		return errors.Wrapf(usecase.ErrStaleOrderEvent, "event %s disagrees with order %d", event.EventID, event.OrderID)
	}

	srv.log(ctx).Info("Order placed event confirmed",
		slog.String("eventID", event.EventID),
		slog.Int64("orderID", order.ID()),
		slog.String("totalPrice", order.TotalPrice()),
	)

	return nil
}
