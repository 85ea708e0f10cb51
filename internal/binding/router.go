package binding

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxBodyBytes caps the size of a request body.
var maxBodyBytes int64 = 8 << 20

// NewRouter returns a gin engine serving POST /v1/:op and GET /healthz.
// Request logging and panic recovery use gin's default middleware.
func NewRouter() *gin.Engine {
	engine := gin.Default()

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	engine.POST("/v1/:op", evaluateHandler)

	return engine
}

func evaluateHandler(c *gin.Context) {
	op, err := ParseOp(c.Param("op"))
	if err != nil {
		c.JSON(http.StatusNotFound, errorBody{Error: err.Error()})
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		c.JSON(status, errorBody{Error: err.Error()})
		return
	}

	req, err := DecodeRequest(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	resp, err := Evaluate(op, req)
	if err != nil {
		c.JSON(StatusCode(err), errorBody{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// StatusCode maps an Evaluate error to an HTTP status.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
