package server

import (
	"net/http"

	gstconfigdomain "github.com/avinaxhroy/billme/internal/gstconfig/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) GetGSTConfig(c *gin.Context) {
	resp, err := s.gstConfigSvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpsertGSTConfig(c *gin.Context) {
	var req gstconfigdomain.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.gstConfigSvc.Upsert(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
