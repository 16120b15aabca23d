package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Userdead-19/labs-cse/internal/pkg/jwt"
	"github.com/Userdead-19/labs-cse/internal/pkg/response"
	"github.com/Userdead-19/labs-cse/internal/repository"

	"github.com/gin-gonic/gin"
)

// JWTAuth validates the bearer token and stores the principal (user_id,
// role, user_name) on the request context. Handlers read the requester from
// there; nothing downstream parses tokens again.
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("user_name", claims.Name)

		c.Next()
	}
}

// BookingAccessChecker gates booking deletion: the requester must own the
// booking or be an admin.
type BookingAccessChecker struct {
	bookingRepo *repository.BookingRepository
}

func NewBookingAccessChecker(bookingRepo *repository.BookingRepository) *BookingAccessChecker {
	return &BookingAccessChecker{bookingRepo: bookingRepo}
}

// OwnerOrAdmin expects the booking ID in URL param "id"
func (bc *BookingAccessChecker) OwnerOrAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64("user_id")
		if userID == 0 {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}

		if c.GetString("role") == "admin" {
			c.Next()
			return
		}

		bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
			c.Abort()
			return
		}

		b, err := bc.bookingRepo.GetByID(c.Request.Context(), bookingID)
		if err != nil {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
			c.Abort()
			return
		}

		if b.UserID != userID {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this booking")
			c.Abort()
			return
		}

		c.Next()
	}
}
