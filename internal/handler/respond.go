package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/modavn/catalog_api/internal/service"
	"github.com/modavn/catalog_api/internal/utils"
)

// writeResult maps a service result onto the response envelope. Success goes
// out with the given code; failures are translated by status classification.
func writeResult[T any](c *gin.Context, successCode int, res service.Result[T]) {
	if res.Success {
		utils.Success(c, successCode, res.Message, res.Data)
		return
	}
	switch res.Status {
	case service.StatusInvalidIdentity:
		utils.Error(c, http.StatusBadRequest, "INVALID_IDENTITY", res.Message)
	case service.StatusNotFound:
		utils.Error(c, http.StatusNotFound, "NOT_FOUND", res.Message)
	case service.StatusReferentialViolation:
		utils.Error(c, http.StatusBadRequest, "REFERENTIAL_VIOLATION", res.Message)
	case service.StatusValidation:
		utils.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", res.Message)
	default:
		utils.Error(c, http.StatusInternalServerError, "PERSISTENCE_ERROR", res.Message)
	}
}

// pathID parses the :id path parameter as a UUID. A malformed id writes a 400
// and returns false; uuid.Nil is passed through for the services to classify.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_IDENTITY", "Invalid id format")
		return uuid.Nil, false
	}
	return id, true
}
