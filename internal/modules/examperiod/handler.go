package examperiod

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Userdead-19/labs-cse/internal/pkg/response"
	"github.com/Userdead-19/labs-cse/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	rg.POST("/exam-periods", adminOnly, h.CreateExamPeriod)
	rg.GET("/exam-periods", h.ListExamPeriods)
	rg.GET("/exam-periods/:id", h.GetExamPeriod)
	rg.PATCH("/exam-periods/:id/active", adminOnly, h.ToggleActive)
	rg.DELETE("/exam-periods/:id", adminOnly, h.DeleteExamPeriod)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid exam period ID")
		return 0, false
	}
	return id, true
}

func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid exam period fields")
	case errors.Is(err, ErrLabNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lab not found")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Exam period not found")
	default:
		log.Printf("examperiod: internal error: %v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}

func (h *Handler) CreateExamPeriod(c *gin.Context) {
	var req CreateExamPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.CreateExamPeriod(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"exam_period": p})
}

func (h *Handler) ListExamPeriods(c *gin.Context) {
	var f repository.ExamPeriodFilters

	if v := c.Query("year_group"); v != "" {
		if yg, err := strconv.Atoi(v); err == nil {
			f.YearGroup = &yg
		}
	}
	if v := c.Query("is_active"); v != "" {
		active := v == "true"
		f.IsActive = &active
	}

	periods, err := h.service.ListExamPeriods(c.Request.Context(), f)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"exam_periods": periods})
}

func (h *Handler) GetExamPeriod(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"exam_period": p})
}

func (h *Handler) ToggleActive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ToggleActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.ToggleActive(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"exam_period": p})
}

func (h *Handler) DeleteExamPeriod(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteExamPeriod(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
