package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

var (
	ErrDBInternal    = errors.New("database internal error")
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")

	ErrNoCartProvider   = errors.New("cart store must be used within a cart provider")
	ErrInvalidDirection = errors.New("direction must be increase or decrease")
	ErrEmptyCart        = errors.New("cart is empty")

	ErrUnknownProduct = errors.New("unknown product")
	ErrUnknownSize    = errors.New("unknown size")

	ErrBadID              = errors.New("bad id")
	ErrInvalidJSONPayload = errors.New("invalid JSON payload")

	ErrPublishOrder = errors.New("failed to hand off order")
)

type ErrorServer struct {
	Message string `json:"message"`
}

func (e *ErrorServer) Error() string {
	return e.Message
}

/*
NewErrorServer
Функция имеет возможность принимать "nil ошибку"
при получении nil наша функция понимает, что нам
просто надо отдать саксесс клиенту
*/
func NewErrorServer(err error) ErrorServer {
	if err == nil {
		return ErrorServer{
			Message: "success",
		}
	}

	return ErrorServer{
		Message: err.Error(),
	}
}

func SendErrorTo(w http.ResponseWriter, err error, statusCode int, logger *zap.SugaredLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if errEncode := json.NewEncoder(w).Encode(NewErrorServer(err)); errEncode != nil {
		logger.Error(errEncode)
	}
}
