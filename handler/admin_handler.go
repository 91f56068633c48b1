package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	adminpkg "github.com/Barento999/ecommerce-spa-sub001/admin"
	mw "github.com/Barento999/ecommerce-spa-sub001/middleware"
)

// AdminHandler bundles dependencies for role-assignment handlers.
type AdminHandler struct {
	service adminpkg.Service
	logger  *logrus.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(svc adminpkg.Service, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{service: svc, logger: logger}
}

type addAdminRolePayload struct {
	Data struct {
		Email string `json:"email"`
	} `json:"data"`
}

// AddAdminRole grants the admin claim to the account with the given email.
// Any authenticated caller may invoke it.
func (h *AdminHandler) AddAdminRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p addAdminRolePayload
		if err := c.ShouldBindJSON(&p); err != nil {
			callableError(c, statusInvalidArgument, "invalid request payload: "+err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		msg, err := h.service.GrantAdmin(ctx, p.Data.Email)
		if err != nil {
			if errors.Is(err, adminpkg.ErrEmailRequired) {
				callableError(c, statusInvalidArgument, err.Error())
				return
			}
			h.logger.WithError(err).WithFields(logrus.Fields{
				"caller_uid": c.GetString(mw.KeyUID),
				"email":      p.Data.Email,
			}).Error("Failed to grant admin role")
			callableError(c, statusInternal, err.Error())
			return
		}

		h.logger.WithFields(logrus.Fields{
			"caller_uid": c.GetString(mw.KeyUID),
			"email":      p.Data.Email,
		}).Info("Admin role granted")
		callableResult(c, http.StatusOK, gin.H{"message": msg})
	}
}
