package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	inErrors "github.com/fitin/storefront/internal/errors"
	"github.com/fitin/storefront/internal/log"
	inOtel "github.com/fitin/storefront/internal/otel"
	"github.com/fitin/storefront/internal/repository"
	"github.com/fitin/storefront/internal/token"
	"github.com/fitin/storefront/user/internal/otel"
	"github.com/fitin/storefront/user/pkg/request"
	"github.com/fitin/storefront/user/pkg/response"
	"github.com/fitin/storefront/user/session"
)

type UserService struct {
	pool      *pgxpool.Pool
	queries   *repository.Queries
	registry  *session.Registry
	secretKey string
}

func NewUserService(
	pool *pgxpool.Pool,
	queries *repository.Queries,
	registry *session.Registry,
	secretKey string,
) UserService {
	return UserService{pool: pool, queries: queries, registry: registry, secretKey: secretKey}
}

func (svc UserService) Register(
	c context.Context,
	param request.Register,
) (response.Session, error) {
	c, span := otel.Tracer.Start(c, "UserService Register")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService Register").
		Str(log.KeyEmail, param.Email).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "checking email").Logger()
	logger.Info().Msg("checking email")
	_, err := svc.queries.FindUserByEmail(c, param.Email)
	if err == nil {
		err = inErrors.ErrEmailTaken
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Session{}, err
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("failed checking email with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Session{}, err
	}
	logger.Info().Msg("email available")

	logger = logger.With().Str(log.KeyProcess, "hashing password").Logger()
	logger.Trace().Msg("hashing password")
	hashed, err := bcrypt.GenerateFromPassword([]byte(param.Password), bcrypt.DefaultCost)
	if err != nil {
		err = fmt.Errorf("failed hashing password with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Session{}, err
	}
	logger.Trace().Msg("hashed password")

	logger = logger.With().Str(log.KeyProcess, "inserting user").Logger()
	logger.Info().Msg("inserting user")
	user, err := svc.queries.InsertUser(c, repository.InsertUserParams{
		ID:       uuid.New(),
		Name:     pgtype.Text{String: param.Name, Valid: param.Name != ""},
		Email:    param.Email,
		Password: string(hashed),
		Role:     "user",
	})
	if err != nil {
		err = fmt.Errorf("failed inserting user with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Session{}, err
	}
	logger = logger.With().Str(log.KeyUserID, user.ID.String()).Logger()
	logger.Info().Msg("inserted user")

	return svc.openSession(c, user)
}

func (svc UserService) Login(
	c context.Context,
	param request.Login,
) (response.Session, error) {
	c, span := otel.Tracer.Start(c, "UserService Login")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService Login").
		Str(log.KeyEmail, param.Email).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding user").Logger()
	logger.Info().Msg("finding user")
	user, err := svc.queries.FindUserByEmail(c, param.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = inErrors.ErrUserNotFound
		} else {
			err = fmt.Errorf("failed finding user with error=%w", err)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Session{}, err
	}
	logger = logger.With().Str(log.KeyUserID, user.ID.String()).Logger()
	logger.Info().Msg("found user")

	logger = logger.With().Str(log.KeyProcess, "verifying password").Logger()
	logger.Trace().Msg("verifying password")
	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(param.Password))
	if err != nil {
		err = inErrors.ErrPasswordMismatch
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Session{}, err
	}
	logger.Trace().Msg("verified password")

	return svc.openSession(c, user)
}

func (svc UserService) openSession(
	c context.Context,
	user repository.User,
) (response.Session, error) {
	c, span := otel.Tracer.Start(c, "UserService openSession")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService openSession").
		Str(log.KeyUserID, user.ID.String()).
		Str(log.KeyRole, user.Role).
		Str(log.KeyProcess, "minting token").
		Logger()

	logger.Trace().Msg("minting token")
	tokenString, err := token.Mint(user.ID, user.Role, svc.secretKey)
	if err != nil {
		err = fmt.Errorf("failed minting token with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Session{}, err
	}
	logger.Trace().Msg("minted token")

	profile := user.Response()
	admin := user.Role == "admin"
	svc.registry.Publish(session.State{User: &profile, Admin: admin})

	return response.Session{User: profile, Token: tokenString, Admin: admin}, nil
}

func (svc UserService) Logout(c context.Context) {
	_, span := otel.Tracer.Start(c, "UserService Logout")
	defer span.End()

	svc.registry.Publish(session.State{})
}

func (svc UserService) CurrentSession(c context.Context) session.State {
	_, span := otel.Tracer.Start(c, "UserService CurrentSession")
	defer span.End()

	return svc.registry.Current()
}

func (svc UserService) FindUserById(
	c context.Context,
	id uuid.UUID,
) (response.User, error) {
	c, span := otel.Tracer.Start(c, "UserService FindUserById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService FindUserById").
		Str(log.KeyUserID, id.String()).
		Str(log.KeyProcess, "finding user").
		Logger()

	logger.Trace().Msg("finding user")
	user, err := svc.queries.FindUserById(c, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = inErrors.ErrUserNotFound
		}
		err = fmt.Errorf("failed finding user with id=%s with error=%w", id.String(), err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	logger.Info().Msg("found user")

	return user.Response(), nil
}

// HasAdmin reports whether any admin account exists yet. Used to open
// the first-boot promotion path.
func (svc UserService) HasAdmin(c context.Context) (bool, error) {
	c, span := otel.Tracer.Start(c, "UserService HasAdmin")
	defer span.End()

	count, err := svc.queries.CountUsersByRole(c, "admin")
	if err != nil {
		err = fmt.Errorf("failed counting admins with error=%w", err)
		inOtel.RecordError(err, span)
		zerolog.Ctx(c).Error().Err(err).Msg(err.Error())
		return false, err
	}
	return count > 0, nil
}

func (svc UserService) MakeAdmin(
	c context.Context,
	email string,
) (response.User, error) {
	c, span := otel.Tracer.Start(c, "UserService MakeAdmin")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService MakeAdmin").
		Str(log.KeyEmail, email).
		Str(log.KeyProcess, "promoting user").
		Logger()

	logger.Info().Msg("promoting user to admin")
	user, err := svc.queries.UpdateUserRoleByEmail(c, repository.UpdateUserRoleByEmailParams{
		Email: email,
		Role:  "admin",
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = inErrors.ErrUserNotFound
		}
		err = fmt.Errorf("failed promoting user with email=%s with error=%w", email, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	logger.Info().Msg("promoted user to admin")

	return user.Response(), nil
}
