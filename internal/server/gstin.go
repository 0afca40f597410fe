package server

import (
	"net/http"
	"strings"

	"github.com/avinaxhroy/billme/internal/gstin"
	"github.com/gin-gonic/gin"
)

// ValidateGSTIN checks a GSTIN's format and resolves its state. The result
// is always 200; validity lives in the payload so point-of-sale clients can
// show it inline.
func (s *Server) ValidateGSTIN(c *gin.Context) {
	raw := strings.TrimSpace(c.Param("gstin"))
	c.JSON(http.StatusOK, gin.H{"data": gstin.Validate(raw)})
}
