// Пакет response задаёт единый конверт ответа API:
// {success:true, data:...} на успех и
// {success:false, error:{code, message}} на ошибку.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ErrorWithDetails дополняет конверт ошибкой по полям
// (валидация тела запроса).
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// NoContent отвечает 204 без тела: удаления и смена пароля.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Attachment отдаёт текст файлом на скачивание (список покупок).
func Attachment(c *gin.Context, filename, body string) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}
