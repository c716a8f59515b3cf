package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viren1298/event-booking-system/internal/domain"
	"github.com/viren1298/event-booking-system/internal/dto"
)

// identityFrom reads the caller identity set by the auth middleware.
// When no identity is present it writes a 401 and returns false.
func identityFrom(c *gin.Context) (domain.Identity, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "unauthorized",
			Code:  "UNAUTHORIZED",
		})
		return domain.Identity{}, false
	}

	role := domain.Role(c.GetString("user_role"))
	if !role.IsValid() {
		role = domain.RoleCustomer
	}

	return domain.Identity{UserID: userID, Role: role}, true
}
