package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	inHttp "github.com/fitin/storefront/internal/http"
	"github.com/fitin/storefront/internal/log"
	inOtel "github.com/fitin/storefront/internal/otel"
	"github.com/fitin/storefront/notification/pkg/mailer"
	"github.com/fitin/storefront/notification/internal/otel"
	"github.com/fitin/storefront/notification/pkg/request"
)

type ContactController struct {
	mailer mailer.Mailer
}

func AttachContactController(router *mux.Router, mailer mailer.Mailer) {
	controller := ContactController{mailer}

	router.HandleFunc("/notifications/contact", controller.Contact).Methods(http.MethodPost)
}

func (p ContactController) Contact(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "ContactController Contact")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ContactController Contact").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Trace().Msg("decoding request body")
	reqBody := request.Contact{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}

	logger = logger.With().Str(log.KeyProcess, "validating request body").Logger()
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(c, reqBody); err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}

	logger = logger.With().
		Str(log.KeyProcess, "sending contact message").
		Str(log.KeyEmail, reqBody.Email).
		Logger()
	logger.Info().Msg("sending contact message")
	c = logger.WithContext(c)
	body, err := mailer.RenderContact(mailer.ContactEmail{
		Name:    reqBody.Name,
		Email:   reqBody.Email,
		Message: reqBody.Message,
	})
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	subject := fmt.Sprintf("FITIN Store contact form: %s", reqBody.Name)
	if err := p.mailer.Send(c, p.mailer.OwnerEmail(), subject, body); err != nil {
		err = fmt.Errorf("failed sending contact message with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadGateway,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("sent contact message")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "successfully sent message",
	})
}
