package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Collection is the envelope for every listing endpoint: items plus a
// count, so clients never receive a bare JSON array.
type Collection[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func List[T any](c *gin.Context, items []T) {
	c.JSON(http.StatusOK, Collection[T]{
		Items: items,
		Count: len(items),
	})
}
