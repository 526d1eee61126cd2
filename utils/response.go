package utils

import (
	"net/http"

	"github.com/contractify/contractify-backend/apperror"
	"github.com/gin-gonic/gin"
)

func JSON200(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func JSON201(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func JSON202(c *gin.Context, data any) {
	c.JSON(http.StatusAccepted, data)
}

func JSON204(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func JSON400(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"code": "BAD_REQUEST", "message": message})
}

func JSON401(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "message": message})
}

func JSON403(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, gin.H{"code": "FORBIDDEN", "message": message})
}

func JSON404(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "message": message})
}

func JSON409(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, gin.H{"code": "CONFLICT", "message": message})
}

func JSON500(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "message": message})
}

// JSONError maps an application error to its wire shape. Unknown errors
// become 500 INTERNAL_ERROR without leaking internals.
func JSONError(c *gin.Context, err error) {
	appErr := apperror.From(err)
	body := gin.H{"code": appErr.Code, "message": appErr.Message}
	if len(appErr.Details) > 0 {
		body["details"] = appErr.Details
	}
	c.JSON(appErr.Status, body)
}
