package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fitin/storefront/cart/internal/otel"
	"github.com/fitin/storefront/cart/pkg/request"
	"github.com/fitin/storefront/cart/pkg/response"
	"github.com/fitin/storefront/cart/session"
	inErrors "github.com/fitin/storefront/internal/errors"
	inHttp "github.com/fitin/storefront/internal/http"
	"github.com/fitin/storefront/internal/log"
	inOtel "github.com/fitin/storefront/internal/otel"
	"github.com/fitin/storefront/internal/repository"
	orderRequest "github.com/fitin/storefront/order/pkg/request"
)

type CartService struct {
	queries *repository.Queries
	cache   *redis.Client
}

func NewCartService(
	queries *repository.Queries,
	cache *redis.Client,
) CartService {
	return CartService{queries: queries, cache: cache}
}

func slotKey(sessionID string) string {
	return fmt.Sprintf("%s:%s", session.SlotKey, sessionID)
}

// loadSession restores the cart slot for sessionID. A missing, expired
// or corrupt slot yields an empty session, never an error.
func (svc CartService) loadSession(c context.Context, sessionID string) *session.Session {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService loadSession").
		Str(log.KeyCartKey, slotKey(sessionID)).
		Logger()

	snapshot, err := svc.cache.Get(c, slotKey(sessionID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Error().Err(err).Msgf("failed reading cart slot with error=%s", err.Error())
		}
		return session.New()
	}
	return session.Restore(snapshot)
}

func (svc CartService) saveSession(
	c context.Context,
	sessionID string,
	cart *session.Session,
) error {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService saveSession").
		Str(log.KeyCartKey, slotKey(sessionID)).
		Logger()

	snapshot, err := cart.Snapshot()
	if err != nil {
		err = fmt.Errorf("failed snapshotting cart with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	err = svc.cache.Set(c, slotKey(sessionID), snapshot, 7*24*time.Hour).Err()
	if err != nil {
		err = fmt.Errorf("failed writing cart slot with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	return nil
}

func cartResponse(sessionID string, cart *session.Session) response.Cart {
	return response.Cart{
		SessionID:  sessionID,
		Items:      cart.Items(),
		TotalItems: cart.TotalQuantity(),
		TotalPrice: cart.TotalPrice(),
	}
}

func (svc CartService) GetCart(c context.Context, sessionID string) response.Cart {
	c, span := otel.Tracer.Start(c, "CartService GetCart")
	defer span.End()

	return cartResponse(sessionID, svc.loadSession(c, sessionID))
}

func (svc CartService) AddItem(
	c context.Context,
	sessionID string,
	param request.AddItem,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService AddItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService AddItem").
		Str(log.KeySessionID, sessionID).
		Str(log.KeyProductID, param.ProductID.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding product").Logger()
	logger.Info().Msg("finding product")
	product, err := svc.queries.FindProductById(c, param.ProductID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = inErrors.ErrProductNotFound
		}
		err = fmt.Errorf(
			"failed finding product with id=%s with error=%w",
			param.ProductID.String(),
			err,
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("found product")

	if !slices.Contains(product.Sizes, param.Size) {
		err = fmt.Errorf("product id=%s has no size=%s", param.ProductID.String(), param.Size)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}

	quantity := param.Quantity
	if quantity < 1 {
		quantity = 1
	}

	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}
	item := session.LineItem{
		ID:    product.ID.String(),
		Name:  product.Name,
		Price: decimal.NewFromBigInt(product.Price.Int, product.Price.Exp),
		Image: image,
		Size:  param.Size,
	}

	logger = logger.With().Str(log.KeyProcess, "adding item to cart").Logger()
	logger.Info().Msg("adding item to cart")
	c = logger.WithContext(c)
	cart := svc.loadSession(c, sessionID)
	cart.Add(item, quantity)
	if err := svc.saveSession(c, sessionID, cart); err != nil {
		err = fmt.Errorf("failed saving cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("added item to cart")

	return cartResponse(sessionID, cart), nil
}

func (svc CartService) RemoveItem(
	c context.Context,
	sessionID string,
	index int,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService RemoveItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService RemoveItem").
		Str(log.KeySessionID, sessionID).
		Int("index", index).
		Logger()

	c = logger.WithContext(c)
	cart := svc.loadSession(c, sessionID)
	cart.Remove(index)
	if err := svc.saveSession(c, sessionID, cart); err != nil {
		err = fmt.Errorf("failed saving cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}

	return cartResponse(sessionID, cart), nil
}

func (svc CartService) SetQuantity(
	c context.Context,
	sessionID string,
	index int,
	quantity float64,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService SetQuantity")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService SetQuantity").
		Str(log.KeySessionID, sessionID).
		Int("index", index).
		Float64("quantity", quantity).
		Logger()

	c = logger.WithContext(c)
	cart := svc.loadSession(c, sessionID)
	cart.SetQuantity(index, quantity)
	if err := svc.saveSession(c, sessionID, cart); err != nil {
		err = fmt.Errorf("failed saving cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}

	return cartResponse(sessionID, cart), nil
}

func (svc CartService) ClearCart(c context.Context, sessionID string) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService ClearCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService ClearCart").
		Str(log.KeySessionID, sessionID).
		Logger()

	c = logger.WithContext(c)
	cart := session.New()
	if err := svc.saveSession(c, sessionID, cart); err != nil {
		err = fmt.Errorf("failed saving cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}

	return cartResponse(sessionID, cart), nil
}

// Checkout hands the cart to the order service. The cart slot is only
// cleared after the order service confirms the order, so a failed
// checkout leaves the cart intact.
func (svc CartService) Checkout(
	c context.Context,
	sessionID string,
	param request.Checkout,
) (response.Checkout, error) {
	c, span := otel.Tracer.Start(c, "CartService Checkout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService Checkout").
		Str(log.KeySessionID, sessionID).
		Str(log.KeyEmail, param.Email).
		Logger()

	c = logger.WithContext(c)
	cart := svc.loadSession(c, sessionID)
	if cart.Len() == 0 {
		err := fmt.Errorf("cart for sessionId=%s is empty", sessionID)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Checkout{}, err
	}

	items := make([]orderRequest.CheckoutItem, 0, cart.Len())
	for _, item := range cart.Items() {
		items = append(items, orderRequest.CheckoutItem{
			Name:     item.Name,
			Size:     item.Size,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}
	checkout := orderRequest.CreateCheckoutOrder{
		Customer: param.Name,
		Email:    param.Email,
		Phone:    param.Phone,
		Address:  param.Address,
		City:     param.City,
		Zip:      param.Zip,
		Items:    items,
	}

	logger = logger.With().
		Str(log.KeyProcess, fmt.Sprintf("creating order in %s", inHttp.ORDER_BASE_URL)).
		Logger()
	logger.Info().Msg("creating order")
	body, err := json.Marshal(checkout)
	if err != nil {
		err = fmt.Errorf("failed marshaling checkout with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Checkout{}, err
	}
	req, err := http.NewRequestWithContext(
		c,
		http.MethodPost,
		inHttp.ORDER_BASE_URL+"/checkout",
		bytes.NewReader(body),
	)
	if err != nil {
		err = fmt.Errorf("failed creating checkout request with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Checkout{}, err
	}
	req.Header.Add(inHttp.KEY_HEADER_CONTENT_TYPE, inHttp.VALUE_HEADER_APPLICATION_JSON)
	req.Header.Add(inHttp.KEY_HEADER_REQUEST_ID, log.RequestIDFromContext(c))
	resp, err := otelhttp.DefaultClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed creating order with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Checkout{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("order service rejected checkout with status=%d", resp.StatusCode)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Checkout{}, err
	}
	respBody := struct {
		Data struct {
			Order struct {
				ID string `json:"id"`
			} `json:"order"`
		} `json:"data"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		err = fmt.Errorf("failed decoding checkout response with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Checkout{}, err
	}
	logger = logger.With().Str(log.KeyOrderID, respBody.Data.Order.ID).Logger()
	logger.Info().Msg("created order")

	logger = logger.With().Str(log.KeyProcess, "clearing cart").Logger()
	logger.Info().Msg("clearing cart")
	cart.Clear()
	if err := svc.saveSession(c, sessionID, cart); err != nil {
		err = fmt.Errorf("failed clearing cart after checkout with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Checkout{}, err
	}
	logger.Info().Msg("cleared cart")

	return response.Checkout{
		OrderID: respBody.Data.Order.ID,
		Cart:    cartResponse(sessionID, cart),
	}, nil
}
