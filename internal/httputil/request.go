// Package httputil contains helpers shared by the request handlers.
package httputil

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BindData binds the data from the request to the struct passed in the
// interface.
func BindData(c *gin.Context, data interface{}) error {
	if err := c.ShouldBindJSON(&data); err != nil {
		if errors.Is(io.EOF, err) {
			e := errors.New("Nội dung yêu cầu không được để trống")
			c.JSON(http.StatusBadRequest, gin.H{"message": e.Error()})
			return e
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		e := errors.New("Dữ liệu trong yêu cầu không hợp lệ")
		c.JSON(http.StatusBadRequest, gin.H{"message": e.Error()})
		return e
	}

	return nil
}

// ParseDate accepts both RFC3339 timestamps and plain dates in the
// "2006-01-02" format the frontend's date inputs produce.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}

	return time.Parse(time.RFC3339, s)
}
