package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/dcapulse/internal/domain/dto"
	"github.com/guttosm/dcapulse/internal/middleware"
	"github.com/guttosm/dcapulse/internal/service"
)

// Handler exposes the DCA simulation over HTTP.
//
// Responsibilities:
//   - Decode the JSON body
//   - Run the input validator before any market data call
//   - Delegate to the simulation service
//   - Map domain errors onto HTTP status codes and the standard error payload
type Handler struct {
	svc service.DCAService
}

// NewHandler constructs a Handler backed by svc.
func NewHandler(svc service.DCAService) *Handler {
	return &Handler{svc: svc}
}

// Calculate handles POST /calculate.
//
// Calculate godoc
// @Summary      Simulate a daily DCA strategy
// @Description  Buys dailyInvestment worth of symbol at every daily close between startDate and endDate and values the position at the last close
// @Tags         simulation
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SimulationRequest   true  "Simulation input"
// @Success      200      {object}  dto.SimulationResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse       "Invalid input or no data in range"
// @Failure      500      {object}  dto.ErrorResponse       "Price provider failure"
// @Router       /calculate [post]
func (h *Handler) Calculate(c *gin.Context) {
	var body dto.SimulationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	req, err := service.ParseRequest(body.Symbol, body.AmountText(), body.StartDate, body.EndDate)
	if err != nil {
		middleware.AbortWithError(c, statusFor(err), err.Error(), nil)
		return
	}

	res, err := h.svc.Simulate(c.Request.Context(), req)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			// provider details stay in the logs
			_ = c.Error(err)
			c.AbortWithStatusJSON(status, dto.NewErrorResponse(publicMessage(err), nil))
			return
		}
		middleware.AbortWithError(c, status, err.Error(), nil)
		return
	}

	c.JSON(http.StatusOK, dto.NewSimulationResponse(res))
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	if service.IsClientError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func publicMessage(err error) string {
	if errors.Is(err, service.ErrExternalFetch) {
		return service.ErrExternalFetch.Error()
	}
	return "internal server error"
}
