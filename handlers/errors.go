package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helabhl/bank-churn-mlops/client"
	"github.com/helabhl/bank-churn-mlops/services"
)

// respondError maps the three failure kinds onto HTTP responses:
// client-side validation → 400, a non-2xx from the prediction API → its
// status with the body verbatim, anything else (transport) → 502 with the
// error message.
func respondError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		resp := gin.H{"error": vErr.Message, "kind": "validation"}
		if len(vErr.MissingColumns) > 0 {
			resp["missing_columns"] = vErr.MissingColumns
		}
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	var sErr *client.ServiceError
	if errors.As(err, &sErr) {
		status := sErr.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": sErr.Error(), "kind": "service"})
		return
	}

	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "kind": "transport"})
}
