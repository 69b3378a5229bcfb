package handler

import (
	"Board/internal/pkg/response"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID 解析路径中的正整数 ID，失败时已写出响应
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.InvalidParam(c, name)
		return 0, false
	}
	return id, true
}
