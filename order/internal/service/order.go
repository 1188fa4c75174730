package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	inErrors "github.com/fitin/storefront/internal/errors"
	"github.com/fitin/storefront/internal/log"
	inOtel "github.com/fitin/storefront/internal/otel"
	"github.com/fitin/storefront/internal/repository"
	"github.com/fitin/storefront/notification/pkg/mailer"
	"github.com/fitin/storefront/order/internal/otel"
	"github.com/fitin/storefront/order/pkg/request"
	"github.com/fitin/storefront/order/pkg/response"
)

type OrderService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
	mailer  mailer.Mailer
}

func NewOrderService(
	pool *pgxpool.Pool,
	queries *repository.Queries,
	mailer mailer.Mailer,
) OrderService {
	return OrderService{pool: pool, queries: queries, mailer: mailer}
}

// CreateCheckout records the order and emails the confirmation inside
// one transaction: a failed email leaves no order behind.
func (svc OrderService) CreateCheckout(
	c context.Context,
	param request.CreateCheckoutOrder,
) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService CreateCheckout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService CreateCheckout").
		Str(log.KeyEmail, param.Email).
		Logger()

	total := decimal.Zero
	items := int32(0)
	for _, item := range param.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt32(item.Quantity)))
		items += item.Quantity
	}

	logger = logger.With().Str(log.KeyProcess, "initializing transaction").Logger()
	logger.Info().Msg("initializing transaction")
	tx, err := svc.pool.BeginTx(c, pgx.TxOptions{})
	if err != nil {
		err = fmt.Errorf("failed initializing transaction with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("initialized transaction")
	defer func() {
		if err := tx.Rollback(c); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			err = fmt.Errorf("failed rolling back transaction with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
		}
	}()

	logger = logger.With().Str(log.KeyProcess, "inserting order").Logger()
	logger.Info().Msg("inserting order")
	order, err := svc.queries.WithTx(tx).InsertOrder(c, repository.InsertOrderParams{
		ID:       uuid.New(),
		Customer: param.Customer,
		Email:    param.Email,
		Phone:    param.Phone,
		Address:  fmt.Sprintf("%s, %s %s", param.Address, param.City, param.Zip),
		Total:    repository.NumericFromDecimal(total),
		Status:   repository.OrderStatusPending,
		Items:    items,
		Date:     pgtype.Date{Time: time.Now(), Valid: true},
	})
	if err != nil {
		err = fmt.Errorf("failed inserting order with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger = logger.With().Str(log.KeyOrderID, order.ID.String()).Logger()
	logger.Info().Msg("inserted order")

	mailData := mailer.OrderEmail{
		OrderID:  order.ID.String(),
		Customer: param.Customer,
		Email:    param.Email,
		Phone:    param.Phone,
		Address:  param.Address,
		City:     param.City,
		Zip:      param.Zip,
		Date:     order.Date.Time.Format("2006-01-02"),
		Total:    total.String(),
	}
	for _, item := range param.Items {
		mailData.Items = append(mailData.Items, mailer.OrderEmailItem{
			Name:     item.Name,
			Size:     item.Size,
			Quantity: item.Quantity,
			Subtotal: item.Price.Mul(decimal.NewFromInt32(item.Quantity)).String(),
		})
	}

	logger = logger.With().Str(log.KeyProcess, "sending confirmation email").Logger()
	logger.Info().Msg("sending confirmation email")
	c = logger.WithContext(c)
	body, err := mailer.RenderOrderConfirmation(mailData)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	if err := svc.mailer.Send(c, param.Email, mailer.SubjectOrderConfirmation, body); err != nil {
		err = fmt.Errorf("failed sending confirmation email with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("sent confirmation email")

	logger = logger.With().Str(log.KeyProcess, "sending owner copy").Logger()
	logger.Info().Msg("sending owner copy")
	ownerBody, err := mailer.RenderOwnerCopy(mailData)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	err = svc.mailer.Send(
		c,
		svc.mailer.OwnerEmail(),
		mailer.SubjectOwnerCopy(order.ID.String()),
		ownerBody,
	)
	if err != nil {
		err = fmt.Errorf("failed sending owner copy with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("sent owner copy")

	logger = logger.With().Str(log.KeyProcess, "committing transaction").Logger()
	logger.Info().Msg("committing transaction")
	if err := tx.Commit(c); err != nil {
		err = fmt.Errorf("failed committing transaction with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("committed transaction")

	return order.Response(), nil
}

func (svc OrderService) GetOrders(c context.Context) ([]response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService GetOrders")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService GetOrders").
		Str(log.KeyProcess, "finding orders").
		Logger()

	logger.Trace().Msg("finding orders")
	orders, err := svc.queries.GetOrders(c)
	if err != nil {
		err = fmt.Errorf("failed finding orders with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msgf("found %d orders", len(orders))

	result := make([]response.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, order.Response())
	}
	return result, nil
}

func (svc OrderService) FindOrderById(
	c context.Context,
	id uuid.UUID,
) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService FindOrderById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService FindOrderById").
		Str(log.KeyOrderID, id.String()).
		Str(log.KeyProcess, "finding order").
		Logger()

	logger.Trace().Msg("finding order")
	order, err := svc.queries.FindOrderById(c, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = inErrors.ErrOrderNotFound
		}
		err = fmt.Errorf("failed finding order with id=%s with error=%w", id.String(), err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("found order")

	return order.Response(), nil
}

func (svc OrderService) UpdateStatus(
	c context.Context,
	id uuid.UUID,
	status string,
) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService UpdateStatus")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService UpdateStatus").
		Str(log.KeyOrderID, id.String()).
		Str(log.KeyOrderStatus, status).
		Logger()

	if !repository.ValidOrderStatus(status) {
		err := fmt.Errorf("status=%s with error=%w", status, inErrors.ErrInvalidStatus)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}

	logger = logger.With().Str(log.KeyProcess, "updating order status").Logger()
	logger.Info().Msg("updating order status")
	order, err := svc.queries.UpdateOrderStatus(c, repository.UpdateOrderStatusParams{
		ID:     id,
		Status: repository.OrderStatus(status),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = inErrors.ErrOrderNotFound
		}
		err = fmt.Errorf("failed updating order with id=%s with error=%w", id.String(), err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("updated order status")

	return order.Response(), nil
}

func (svc OrderService) RemoveOrder(c context.Context, id uuid.UUID) error {
	c, span := otel.Tracer.Start(c, "OrderService RemoveOrder")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService RemoveOrder").
		Str(log.KeyOrderID, id.String()).
		Str(log.KeyProcess, "deleting order").
		Logger()

	logger.Info().Msg("deleting order")
	affected, err := svc.queries.DeleteOrderById(c, id)
	if err != nil {
		err = fmt.Errorf("failed deleting order with id=%s with error=%w", id.String(), err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	if affected == 0 {
		err = fmt.Errorf("order with id=%s with error=%w", id.String(), inErrors.ErrOrderNotFound)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("deleted order")

	return nil
}
