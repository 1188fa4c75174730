package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/fitin/storefront/catalog/internal/otel"
	"github.com/fitin/storefront/catalog/pkg/response"
	"github.com/fitin/storefront/internal/log"
	inOtel "github.com/fitin/storefront/internal/otel"
)

func (svc ProductService) GetCategories(c context.Context) ([]response.Category, error) {
	c, span := otel.Tracer.Start(c, "ProductService GetCategories")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService GetCategories").
		Str(log.KeyProcess, "finding categories").
		Logger()

	logger.Info().Msg("finding categories")
	rows, err := svc.queries.GetCategories(c)
	if err != nil {
		err = fmt.Errorf("failed finding categories with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msg("found categories")

	categories := make([]response.Category, len(rows))
	for i, row := range rows {
		categories[i] = row.Response()
	}
	return categories, nil
}

// AddCategory is idempotent by name: adding an existing category returns
// the existing row instead of erroring.
func (svc ProductService) AddCategory(
	c context.Context,
	name string,
) (response.Category, error) {
	c, span := otel.Tracer.Start(c, "ProductService AddCategory")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService AddCategory").
		Str(log.KeyCategory, name).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding category by name").Logger()
	logger.Info().Msg("finding category by name")
	existing, err := svc.queries.FindCategoryByName(c, name)
	if err == nil {
		logger.Info().Msg("category already exists")
		return existing.Response(), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("failed finding category by name with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Category{}, err
	}

	logger = logger.With().Str(log.KeyProcess, "inserting category").Logger()
	logger.Info().Msg("inserting category")
	category, err := svc.queries.InsertCategory(c, uuid.New(), name)
	if err != nil {
		err = fmt.Errorf("failed inserting category with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Category{}, err
	}
	logger.Info().Msg("inserted category")

	return category.Response(), nil
}
