package site

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"
)

// render writes an HTML node with status.
func render(c *gin.Context, status int, n g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := n.Render(c.Writer); err != nil {
		_ = c.Error(err)
	}
}

// num formats a style value rounded to four decimals.
func num(v float64) string {
	r := math.Round(v*1e4) / 1e4
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
