package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"mart/config"
	deliverycontext "mart/internal/delivery/context"
	"mart/internal/domain/entity"
	domainerrors "mart/internal/domain/errors"
	"mart/internal/domain/repository"
	"mart/internal/domain/service"
	"mart/internal/errors"
	"mart/internal/usecase"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	qrService service.QRCodeService
	logger    *slog.Logger
	maxUnits  int
	now       func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	QRService service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	maxUnits := config.DefaultMaxOrderUnits
	if params.Config != nil && params.Config.Order != nil && params.Config.Order.MaxUnits > 0 {
		maxUnits = params.Config.Order.MaxUnits
	}

	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		qrService: params.QRService,
		logger:    params.Logger,
		maxUnits:  maxUnits,
		now:       time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder turns every unit in the cart into an order, then empties the cart.
// The order event is published after commit; a publish failure does not fail the order.
func (srv *orderService) PlaceOrder(ctx context.Context, userID int64) (*usecase.OrderDetailOutput, error) {
	var placed *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := findCart(ctx, cartRepo, userID)
		if err != nil {
			return err
		}

		if units := cart.TotalUnits(); units > srv.maxUnits {
			return domainerrors.ErrTooManyUnits.WithDetailsf("cart holds %d units, at most %d can be ordered", units, srv.maxUnits)
		}

		order, err := entity.NewOrder(cart.Units())
		if err != nil {
			return err
		}

		placed, err = repoFactory.OrderRepo().Create(ctx, userID, order)
		if err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		cart.Clear()
		if err := cartRepo.Save(ctx, cart); err != nil {
			return errors.Wrap(err, "failed to empty cart")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order placement rejected", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.Int64("orderID", placed.ID()),
		slog.Int64("userID", userID),
		slog.String("totalPrice", placed.TotalPrice()),
	)

	srv.publishOrderPlaced(ctx, userID, placed)

	return toOrderDetailOutput(placed), nil
}

func (srv *orderService) publishOrderPlaced(ctx context.Context, userID int64, order *entity.Order) {
	event := &service.OrderPlacedEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		OrderID:    order.ID(),
		UserID:     userID,
		TotalPrice: order.TotalPrice(),
		UnitCount:  len(order.Products()),
		PlacedAt:   srv.now().UTC(),
	}

	if err := srv.publisher.PublishOrderPlacedEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order placed event",
			slog.Int64("orderID", order.ID()),
			slog.String("eventID", event.EventID),
			slog.Any("error", err),
		)
	}
}

// FindOrder returns one order of the user.
func (srv *orderService) FindOrder(ctx context.Context, userID, orderID int64) (*usecase.OrderDetailOutput, error) {
	order, err := srv.findOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	return toOrderDetailOutput(order), nil
}

// FindOrders lists the orders of the user, newest first.
func (srv *orderService) FindOrders(ctx context.Context, userID int64) ([]*usecase.OrderDetailOutput, error) {
	orders, err := srv.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	outputs := make([]*usecase.OrderDetailOutput, 0, len(orders))
	for _, order := range orders {
		outputs = append(outputs, toOrderDetailOutput(order))
	}

	return outputs, nil
}

// OrderReceiptQR renders the receipt of one of the user's orders.
func (srv *orderService) OrderReceiptQR(ctx context.Context, userID, orderID int64) ([]byte, error) {
	order, err := srv.findOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateOrderReceiptQR(order.ID(), order.TotalPrice())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate receipt QR code")
	}

	return png, nil
}

func (srv *orderService) findOrder(ctx context.Context, userID, orderID int64) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WithDetailsf("order %d not found", orderID)
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}
