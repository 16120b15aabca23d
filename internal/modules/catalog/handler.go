package catalog

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Userdead-19/labs-cse/internal/domain"
	"github.com/Userdead-19/labs-cse/internal/pkg/response"
	"github.com/Userdead-19/labs-cse/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the lab catalog. Reads are public; mutations go on
// the authenticated group and are admin-only.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	public.GET("/labs", h.GetLabs)
	public.GET("/labs/:id", h.GetLabByID)
	protected.POST("/labs", adminOnly, h.CreateLab)
	protected.PUT("/labs/:id", adminOnly, h.UpdateLab)
	protected.DELETE("/labs/:id", adminOnly, h.DeleteLab)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lab ID")
		return 0, false
	}
	return id, true
}

func handleError(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lab not found")
		return
	}
	log.Printf("catalog: internal error: %v", err)
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
}

func (h *Handler) GetLabs(c *gin.Context) {
	labs, err := h.service.ListLabs(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"labs": labs})
}

func (h *Handler) GetLabByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	lab, err := h.service.GetLab(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lab": lab})
}

func (h *Handler) CreateLab(c *gin.Context) {
	var lab domain.Lab
	if err := c.ShouldBindJSON(&lab); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if fieldErrs := validator.Validate(lab); fieldErrs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid lab fields", fieldErrs)
		return
	}

	if err := h.service.CreateLab(c.Request.Context(), &lab); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"lab": lab})
}

func (h *Handler) UpdateLab(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var lab domain.Lab
	if err := c.ShouldBindJSON(&lab); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	lab.ID = id

	if fieldErrs := validator.Validate(lab); fieldErrs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid lab fields", fieldErrs)
		return
	}

	if err := h.service.UpdateLab(c.Request.Context(), &lab); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lab": lab})
}

func (h *Handler) DeleteLab(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteLab(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
