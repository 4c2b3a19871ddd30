package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mchexpo/fairhall-contracts/internal/artifact"
	"github.com/mchexpo/fairhall-contracts/internal/excel"
	"github.com/mchexpo/fairhall-contracts/internal/model"
	"github.com/mchexpo/fairhall-contracts/internal/register"
	"github.com/mchexpo/fairhall-contracts/internal/workflow"
)

// ContractWorkflow is the handler's view of the orchestration core.
type ContractWorkflow interface {
	Execute(ctx context.Context, req model.ContractRequest) workflow.Result
}

type Handler struct {
	contracts ContractWorkflow
	artifacts *artifact.Store
	register  register.Store
	excel     *excel.Generator
	log       zerolog.Logger
}

func NewHandler(contracts ContractWorkflow, artifacts *artifact.Store, reg register.Store, excel *excel.Generator, log zerolog.Logger) *Handler {
	return &Handler{
		contracts: contracts,
		artifacts: artifacts,
		register:  reg,
		excel:     excel,
		log:       log,
	}
}

func (h *Handler) Register(router *gin.Engine) {
	router.POST("/api/contracts", h.createContract)
	router.GET("/contract/:filename", h.downloadContract)
	router.GET("/api/contracts/register", h.listRegister)
	router.GET("/api/contracts/register/export", h.exportRegister)
	router.GET("/healthz", h.health)
}

type createContractRequest struct {
	FairID       int    `json:"fairId"`
	HallID       int    `json:"hallId"`
	SquareMeters int    `json:"squareMeters"`
	CompanyID    string `json:"companyId"`
}

type contractResponse struct {
	Filename string `json:"filename"`
	FilePath string `json:"filePath"`
	Message  string `json:"message"`
}

type rejectionResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (h *Handler) createContract(c *gin.Context) {
	var req createContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, rejectionResponse{
			Message: "invalid request body",
			Code:    string(model.CodeInvalidRequest),
		})
		return
	}

	result := h.contracts.Execute(c.Request.Context(), model.ContractRequest{
		FairID:       req.FairID,
		HallID:       req.HallID,
		SquareMeters: req.SquareMeters,
		CompanyID:    req.CompanyID,
	})

	if result.Status == workflow.StatusCompleted {
		c.JSON(http.StatusOK, contractResponse{
			Filename: result.Filename,
			FilePath: result.FilePath,
			Message:  result.Message,
		})
		return
	}

	c.JSON(statusFor(result), rejectionResponse{
		Message: result.Message,
		Code:    string(result.Code),
	})
}

// statusFor keeps the three-way classification: 2xx completed, 4xx rejected,
// 5xx infrastructure error.
func statusFor(result workflow.Result) int {
	if result.Status == workflow.StatusRejected {
		switch result.Code {
		case model.CodeFairNotFound, model.CodeHallNotFound, model.CodeCompanyNotFound:
			return http.StatusNotFound
		default:
			return http.StatusBadRequest
		}
	}
	switch result.Code {
	case model.CodeAvailabilityUnreachable, model.CodeDirectoryUnreachable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) downloadContract(c *gin.Context) {
	name := c.Param("filename")
	path, err := h.artifacts.Open(name)
	if err != nil {
		if errors.Is(err, artifact.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("contract %s not found", name)})
			return
		}
		h.log.Error().Err(err).Str("filename", name).Msg("artifact lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=\""+name+"\"")
	c.File(path)
}

func (h *Handler) listRegister(c *gin.Context) {
	limit := parseLimit(c.DefaultQuery("limit", "50"))
	entries := h.register.List(c.Request.Context(), limit)
	c.JSON(http.StatusOK, gin.H{
		"count":     len(entries),
		"contracts": entries,
	})
}

func (h *Handler) exportRegister(c *gin.Context) {
	entries := h.register.List(c.Request.Context(), 0)
	content, err := h.excel.Generate(entries)
	if err != nil {
		h.log.Error().Err(err).Msg("register export failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	fileName := fmt.Sprintf("contracts-register-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename=\""+fileName+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func parseLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 50
	}
	if limit > 1000 {
		return 1000
	}
	return limit
}
