package fair

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CapacityStore is the handler's view of hall capacity records.
type CapacityStore interface {
	GetHall(ctx context.Context, fairID, hallID int) (Hall, error)
}

type Handler struct {
	store CapacityStore
	log   zerolog.Logger
}

func NewHandler(store CapacityStore, log zerolog.Logger) *Handler {
	return &Handler{store: store, log: log}
}

func (h *Handler) Register(router *gin.Engine) {
	router.POST("/api/fairs", h.checkAvailability)
	router.GET("/healthz", h.health)
}

type checkRequest struct {
	FairID       int `json:"fairId"`
	HallID       int `json:"hallId"`
	SquareMeters int `json:"squareMeters"`
}

type checkResponse struct {
	Message     string `json:"message"`
	ErrorCode   string `json:"errorCode,omitempty"`
	HallName    string `json:"hallName,omitempty"`
	RemainingM2 int    `json:"remainingSquareMeters,omitempty"`
}

func (h *Handler) checkAvailability(c *gin.Context) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.FairID <= 0 || req.HallID <= 0 || req.SquareMeters <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fairId, hallId and squareMeters must be positive"})
		return
	}

	hall, err := h.store.GetHall(c.Request.Context(), req.FairID, req.HallID)
	switch {
	case errors.Is(err, ErrFairNotFound):
		c.JSON(http.StatusNotFound, checkResponse{
			Message:   fmt.Sprintf("Fair %d is not available", req.FairID),
			ErrorCode: "fair-not-found",
		})
		return
	case errors.Is(err, ErrHallNotFound):
		c.JSON(http.StatusNotFound, checkResponse{
			Message:   fmt.Sprintf("Hall %d not found at fair %d", req.HallID, req.FairID),
			ErrorCode: "hall-not-found",
		})
		return
	case err != nil:
		h.log.Error().Err(err).Int("fair_id", req.FairID).Int("hall_id", req.HallID).
			Msg("capacity lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	remaining := hall.RemainingM2()
	switch {
	case remaining <= 0:
		c.JSON(http.StatusConflict, checkResponse{
			Message:   fmt.Sprintf("%s has no available space", hall.Name),
			ErrorCode: "hall-full",
			HallName:  hall.Name,
		})
	case req.SquareMeters > remaining:
		c.JSON(http.StatusConflict, checkResponse{
			Message:   fmt.Sprintf("%s is available but there is not enough space", hall.Name),
			ErrorCode: "insufficient-space",
			HallName:  hall.Name,
		})
	default:
		c.JSON(http.StatusOK, checkResponse{
			Message:     fmt.Sprintf("%s is available", hall.Name),
			HallName:    hall.Name,
			RemainingM2: remaining,
		})
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
