package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetPollID parses the poll_id path parameter.
func GetPollID(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("poll_id"), 10, 32)

	if err != nil {
		return 0, errors.New("invalid poll id")
	}

	return uint(id), nil
}
