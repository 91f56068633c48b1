package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error statuses of the callable function protocol.
const (
	statusInvalidArgument = "INVALID_ARGUMENT"
	statusInternal        = "INTERNAL"
	statusAlreadyExists   = "ALREADY_EXISTS"
)

var statusHTTP = map[string]int{
	statusInvalidArgument: http.StatusBadRequest,
	statusInternal:        http.StatusInternalServerError,
	statusAlreadyExists:   http.StatusConflict,
}

func callableResult(c *gin.Context, code int, result any) {
	c.JSON(code, gin.H{"result": result})
}

func callableError(c *gin.Context, status, message string) {
	c.JSON(statusHTTP[status], gin.H{"error": gin.H{"status": status, "message": message}})
}
