package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/fitin/storefront/catalog/internal/cache"
	"github.com/fitin/storefront/catalog/internal/otel"
	"github.com/fitin/storefront/catalog/pkg/request"
	"github.com/fitin/storefront/catalog/pkg/response"
	inErrors "github.com/fitin/storefront/internal/errors"
	"github.com/fitin/storefront/internal/infra"
	"github.com/fitin/storefront/internal/log"
	inOtel "github.com/fitin/storefront/internal/otel"
	"github.com/fitin/storefront/internal/repository"
)

type ProductService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
	cache   *redis.Client
	media   infra.MediaStore
}

func NewProductService(
	pool *pgxpool.Pool,
	queries *repository.Queries,
	cache *redis.Client,
	media infra.MediaStore,
) ProductService {
	return ProductService{pool: pool, queries: queries, cache: cache, media: media}
}

func (svc ProductService) InsertProduct(
	c context.Context,
	param request.Product,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService InsertProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService InsertProduct").
		Str(log.KeyProduct, param.Name).
		Logger()

	if !param.Price.IsPositive() {
		err := fmt.Errorf("price=%s must be positive", param.Price)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}

	logger = logger.With().Str(log.KeyProcess, "initializing transaction").Logger()
	logger.Info().Msg("initializing transaction")
	tx, err := svc.pool.BeginTx(c, pgx.TxOptions{})
	if err != nil {
		err = fmt.Errorf("failed initializing transaction with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger.Info().Msg("initialized transaction")
	defer func(lg zerolog.Logger) {
		err := tx.Rollback(c)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			err = fmt.Errorf("failed rolling back transaction with error=%w", err)
			inOtel.RecordError(err, span)
			lg.Error().Err(err).Msg(err.Error())
		}
	}(logger)

	logger = logger.With().Str(log.KeyProcess, "ensuring category").Logger()
	logger.Info().Msgf("ensuring category=%s exists", param.Category)
	_, err = svc.ensureCategory(c, tx, param.Category)
	if err != nil {
		err = fmt.Errorf("failed ensuring category with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger.Info().Msgf("ensured category=%s exists", param.Category)

	logger = logger.With().Str(log.KeyProcess, "inserting product to database").Logger()
	logger.Info().Msg("inserting product to database")
	featured := param.Featured
	if featured == "" {
		featured = "none"
	}
	product, err := svc.queries.WithTx(tx).InsertProduct(c, repository.InsertProductParams{
		ID:          uuid.New(),
		Name:        param.Name,
		Price:       repository.NumericFromDecimal(param.Price),
		Category:    param.Category,
		Sizes:       param.Sizes,
		Stock:       param.Stock,
		Description: pgtype.Text{String: param.Description, Valid: param.Description != ""},
		Images:      param.Images,
		Featured:    featured,
	})
	if err != nil {
		err = fmt.Errorf("failed inserting product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger = logger.With().Str(log.KeyProductID, product.ID.String()).Logger()
	logger.Info().Msg("inserted product to database")

	logger = logger.With().Str(log.KeyProcess, "committing transaction").Logger()
	logger.Info().Msg("committing transaction")
	err = tx.Commit(c)
	if err != nil {
		err = fmt.Errorf("failed committing transaction with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger.Info().Msg("committed transaction")

	svc.invalidateProductCache(c, product.ID)

	return product.Response(), nil
}

func (svc ProductService) GetProducts(c context.Context) ([]response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService GetProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService GetProducts").
		Str(log.KeyCacheKey, cache.KEY_PRODUCTS).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding products in cache").Logger()
	logger.Info().Msg("finding products in cache")
	jsonString, err := svc.cache.Get(c, cache.KEY_PRODUCTS).Result()
	if err != nil {
		err = fmt.Errorf("failed finding products in cache with error=%w", err)
		logger.Info().Err(err).Msg(err.Error())

		logger = logger.With().Str(log.KeyProcess, "finding products in db").Logger()
		logger.Info().Msg("finding products in db")
		rows, err := svc.queries.GetProducts(c)
		if err != nil {
			err = fmt.Errorf("failed finding products in db with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return nil, err
		}
		logger.Info().Msg("found products in db")

		products := make([]response.Product, len(rows))
		for i, row := range rows {
			products[i] = row.Response()
		}

		logger = logger.With().Str(log.KeyProcess, "inserting products to cache").Logger()
		logger.Info().Msg("inserting products to cache")
		encoded, err := json.Marshal(products)
		if err != nil {
			err = fmt.Errorf("failed marshaling products with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return nil, err
		}
		err = svc.cache.Set(c, cache.KEY_PRODUCTS, encoded, time.Hour).Err()
		if err != nil {
			err = fmt.Errorf("failed inserting products to cache with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return nil, err
		}
		logger.Info().Msg("inserted products to cache")

		return products, nil
	}
	logger.Info().Msg("found products in cache")

	logger = logger.With().Str(log.KeyProcess, "unmarshaling cache").Logger()
	logger.Info().Msg("unmarshaling cache")
	products := []response.Product{}
	err = json.Unmarshal([]byte(jsonString), &products)
	if err != nil {
		err = fmt.Errorf("failed unmarshaling cache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msg("unmarshaled cache")

	return products, nil
}

func (svc ProductService) FindProductById(
	c context.Context,
	id uuid.UUID,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService FindProductById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService FindProductById").
		Str(log.KeyProductID, id.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding product in db").Logger()
	logger.Info().Msg("finding product in db")
	product, err := svc.queries.FindProductById(c, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = inErrors.ErrProductNotFound
		}
		err = fmt.Errorf("failed finding productId=%s with error=%w", id.String(), err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger.Info().Msg("found product in db")

	return product.Response(), nil
}

func (svc ProductService) GetFeaturedProducts(
	c context.Context,
	featured string,
) ([]response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService GetFeaturedProducts")
	defer span.End()

	cacheKey := fmt.Sprintf(cache.KEY_FEATURED_PRODUCTS, featured)
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService GetFeaturedProducts").
		Str(log.KeyCacheKey, cacheKey).
		Str("featured", featured).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding featured products in cache").Logger()
	logger.Info().Msg("finding featured products in cache")
	jsonString, err := svc.cache.Get(c, cacheKey).Result()
	if err != nil {
		err = fmt.Errorf("failed finding featured products in cache with error=%w", err)
		logger.Info().Err(err).Msg(err.Error())

		logger = logger.With().Str(log.KeyProcess, "finding featured products in db").Logger()
		logger.Info().Msg("finding featured products in db")
		rows, err := svc.queries.GetFeaturedProducts(c, featured)
		if err != nil {
			err = fmt.Errorf("failed finding featured products in db with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return nil, err
		}
		logger.Info().Msg("found featured products in db")

		products := make([]response.Product, len(rows))
		for i, row := range rows {
			products[i] = row.Response()
		}

		logger = logger.With().Str(log.KeyProcess, "inserting featured products to cache").Logger()
		logger.Info().Msg("inserting featured products to cache")
		encoded, err := json.Marshal(products)
		if err != nil {
			err = fmt.Errorf("failed marshaling featured products with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return nil, err
		}
		err = svc.cache.Set(c, cacheKey, encoded, time.Hour).Err()
		if err != nil {
			err = fmt.Errorf("failed inserting featured products to cache with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return nil, err
		}
		logger.Info().Msg("inserted featured products to cache")

		return products, nil
	}
	logger.Info().Msg("found featured products in cache")

	logger = logger.With().Str(log.KeyProcess, "unmarshaling cache").Logger()
	logger.Info().Msg("unmarshaling cache")
	products := []response.Product{}
	err = json.Unmarshal([]byte(jsonString), &products)
	if err != nil {
		err = fmt.Errorf("failed unmarshaling cache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	return products, nil
}

func (svc ProductService) UpdateProduct(
	c context.Context,
	id uuid.UUID,
	param request.UpdateProduct,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService UpdateProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService UpdateProduct").
		Str(log.KeyProductID, id.String()).
		Logger()

	if param.Price != nil && !param.Price.IsPositive() {
		err := fmt.Errorf("price=%s must be positive", param.Price)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}

	logger = logger.With().Str(log.KeyProcess, "finding product").Logger()
	logger.Info().Msg("finding product")
	existing, err := svc.queries.FindProductById(c, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = inErrors.ErrProductNotFound
		}
		err = fmt.Errorf("failed finding productId=%s with error=%w", id.String(), err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger.Info().Msg("found product")

	updated := repository.UpdateProductParams{
		ID:          existing.ID,
		Name:        existing.Name,
		Price:       existing.Price,
		Category:    existing.Category,
		Sizes:       existing.Sizes,
		Stock:       existing.Stock,
		Description: existing.Description,
		Images:      existing.Images,
		Featured:    existing.Featured,
	}
	if param.Name != nil {
		updated.Name = *param.Name
	}
	if param.Price != nil {
		updated.Price = repository.NumericFromDecimal(*param.Price)
	}
	if param.Category != nil {
		updated.Category = *param.Category
	}
	if param.Sizes != nil {
		updated.Sizes = param.Sizes
	}
	if param.Stock != nil {
		updated.Stock = *param.Stock
	}
	if param.Description != nil {
		updated.Description = pgtype.Text{String: *param.Description, Valid: true}
	}
	if param.Images != nil {
		updated.Images = param.Images
	}
	if param.Featured != nil {
		updated.Featured = *param.Featured
	}

	logger = logger.With().Str(log.KeyProcess, "updating product").Logger()
	logger.Info().Msg("updating product")
	product, err := svc.queries.UpdateProduct(c, updated)
	if err != nil {
		err = fmt.Errorf("failed updating productId=%s with error=%w", id.String(), err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger.Info().Msg("updated product")

	svc.invalidateProductCache(c, id)

	return product.Response(), nil
}

func (svc ProductService) RemoveProduct(c context.Context, id uuid.UUID) error {
	c, span := otel.Tracer.Start(c, "ProductService RemoveProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService RemoveProduct").
		Str(log.KeyProductID, id.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "deleting product").Logger()
	logger.Info().Msg("deleting product")
	deleted, err := svc.queries.DeleteProductById(c, id)
	if err != nil {
		err = fmt.Errorf("failed deleting productId=%s with error=%w", id.String(), err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	if deleted == 0 {
		err = inErrors.ErrProductNotFound
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("deleted product")

	svc.invalidateProductCache(c, id)

	return nil
}

func (svc ProductService) UploadProductImage(
	c context.Context,
	id uuid.UUID,
	dataURL string,
) (string, error) {
	c, span := otel.Tracer.Start(c, "ProductService UploadProductImage")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService UploadProductImage").
		Str(log.KeyProductID, id.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding product").Logger()
	logger.Info().Msg("finding product")
	existing, err := svc.queries.FindProductById(c, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = inErrors.ErrProductNotFound
		}
		err = fmt.Errorf("failed finding productId=%s with error=%w", id.String(), err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}
	logger.Info().Msg("found product")

	logger = logger.With().Str(log.KeyProcess, "decoding data url").Logger()
	logger.Info().Msg("decoding data url")
	data, ext, err := infra.ParseDataURL(dataURL)
	if err != nil {
		err = fmt.Errorf("failed decoding data url with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}
	logger.Info().Msg("decoded data url")

	path := fmt.Sprintf("products/%s/%d.%s", id.String(), time.Now().UnixMilli(), ext)
	logger = logger.With().
		Str(log.KeyProcess, "storing image").
		Str(log.KeyImagePath, path).
		Logger()
	logger.Info().Msg("storing image")
	url, err := svc.media.Put(c, path, data)
	if err != nil {
		err = fmt.Errorf("failed storing image with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}
	logger.Info().Msg("stored image")

	logger = logger.With().Str(log.KeyProcess, "attaching image to product").Logger()
	logger.Info().Msg("attaching image to product")
	_, err = svc.UpdateProduct(c, id, request.UpdateProduct{
		Images: append(existing.Images, url),
	})
	if err != nil {
		err = fmt.Errorf("failed attaching image to product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}
	logger.Info().Msg("attached image to product")

	return url, nil
}

func (svc ProductService) ensureCategory(
	c context.Context,
	tx pgx.Tx,
	name string,
) (repository.Category, error) {
	queries := svc.queries.WithTx(tx)
	category, err := queries.FindCategoryByName(c, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return repository.Category{}, err
	}
	return queries.InsertCategory(c, uuid.New(), name)
}

func (svc ProductService) invalidateProductCache(c context.Context, id uuid.UUID) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService invalidateProductCache").
		Str(log.KeyProductID, id.String()).
		Logger()

	err := svc.cache.Del(c,
		cache.KEY_PRODUCTS,
		fmt.Sprintf(cache.KEY_PRODUCT, id.String()),
		fmt.Sprintf(cache.KEY_FEATURED_PRODUCTS, "best-selling"),
		fmt.Sprintf(cache.KEY_FEATURED_PRODUCTS, "trending-now"),
	).Err()
	if err != nil {
		err = fmt.Errorf("failed invalidating product cache with error=%w", err)
		logger.Info().Err(err).Msg(err.Error())
	}
}
