package mail

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Handler struct {
	sender     Sender
	store      Store
	from       string
	simulation bool
	log        zerolog.Logger
}

func NewHandler(sender Sender, store Store, from string, simulation bool, log zerolog.Logger) *Handler {
	return &Handler{
		sender:     sender,
		store:      store,
		from:       from,
		simulation: simulation,
		log:        log,
	}
}

func (h *Handler) Register(router *gin.Engine) {
	router.POST("/api/mail/send", h.send)
	router.GET("/api/mail/status/:id", h.status)
	router.GET("/api/mail/history", h.history)
	router.GET("/healthz", h.health)
}

type sendRequest struct {
	To        []string `json:"to" binding:"required"`
	Subject   string   `json:"subject" binding:"required"`
	Body      string   `json:"body" binding:"required"`
	FromEmail string   `json:"fromEmail"`
	HTMLBody  string   `json:"htmlBody"`
}

type sendResponse struct {
	MessageID      string    `json:"messageId"`
	Status         string    `json:"status"`
	To             []string  `json:"to"`
	Subject        string    `json:"subject"`
	SentAt         time.Time `json:"sentAt"`
	Message        string    `json:"message"`
	SimulationMode bool      `json:"simulationMode"`
}

func (h *Handler) send(c *gin.Context) {
	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.To) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one recipient is required"})
		return
	}

	messageID := uuid.NewString()
	sentAt := time.Now().UTC()
	from := req.FromEmail
	if from == "" {
		from = h.from
	}

	err := h.sender.Send(c.Request.Context(), Message{
		From:     from,
		To:       req.To,
		Subject:  req.Subject,
		Body:     req.Body,
		HTMLBody: req.HTMLBody,
	})

	record := DeliveryRecord{
		MessageID: messageID,
		Status:    "sent",
		To:        req.To,
		Subject:   req.Subject,
		SentAt:    sentAt,
	}
	if err != nil {
		record.Status = "failed"
		record.ErrorMessage = err.Error()
	} else {
		record.DeliveredAt = &sentAt
	}
	if storeErr := h.store.Record(c.Request.Context(), record); storeErr != nil {
		h.log.Warn().Err(storeErr).Str("message_id", messageID).Msg("delivery log write failed")
	}

	if err != nil {
		h.log.Error().Err(err).Str("message_id", messageID).Msg("email delivery failed")
		c.JSON(http.StatusBadGateway, sendResponse{
			MessageID:      messageID,
			Status:         "failed",
			To:             req.To,
			Subject:        req.Subject,
			SentAt:         sentAt,
			Message:        fmt.Sprintf("failed to send email: %v", err),
			SimulationMode: h.simulation,
		})
		return
	}

	h.log.Info().Str("message_id", messageID).Int("recipients", len(req.To)).Msg("email sent")
	c.JSON(http.StatusOK, sendResponse{
		MessageID:      messageID,
		Status:         "sent",
		To:             req.To,
		Subject:        req.Subject,
		SentAt:         sentAt,
		Message:        fmt.Sprintf("email sent to %d recipient(s)", len(req.To)),
		SimulationMode: h.simulation,
	})
}

func (h *Handler) status(c *gin.Context) {
	record, ok := h.store.Find(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "email not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *Handler) history(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}
	records := h.store.List(c.Request.Context(), limit)
	c.JSON(http.StatusOK, gin.H{
		"count":          len(records),
		"simulationMode": h.simulation,
		"emails":         records,
	})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "simulationMode": h.simulation})
}
