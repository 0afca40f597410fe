package server

import (
	"net/http"
	"strings"
	"time"

	invoicedomain "github.com/avinaxhroy/billme/internal/invoice/domain"
	"github.com/avinaxhroy/billme/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
)

func (s *Server) CreateInvoice(c *gin.Context) {
	var req invoicedomain.BuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.invoiceSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) GetInvoiceByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if _, err := snowflake.ParseString(id); err != nil {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid id"))
		return
	}

	item, err := s.invoiceSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": item})
}

func (s *Server) ListInvoices(c *gin.Context) {
	var page pagination.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	req := invoicedomain.ListRequest{Pagination: page}

	if v := strings.TrimSpace(c.Query("type")); v != "" {
		t := invoicedomain.InvoiceType(v)
		if !t.Valid() {
			AbortWithError(c, newValidationError("type", "invalid_invoice_type", "invalid value"))
			return
		}
		req.Type = &t
	}
	if v := strings.TrimSpace(c.Query("payment_status")); v != "" {
		status := invoicedomain.PaymentStatus(v)
		req.PaymentStatus = &status
	}
	if v := strings.TrimSpace(c.Query("customer_id")); v != "" {
		req.CustomerID = &v
	}
	if v := strings.TrimSpace(c.Query("invoice_number")); v != "" {
		req.InvoiceNumber = &v
	}
	if v := strings.TrimSpace(c.Query("from")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			AbortWithError(c, newValidationError("from", "invalid_date", "invalid value"))
			return
		}
		req.From = &t
	}
	if v := strings.TrimSpace(c.Query("to")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			AbortWithError(c, newValidationError("to", "invalid_date", "invalid value"))
			return
		}
		req.To = &t
	}

	resp, err := s.invoiceSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp.Invoices, "page_info": resp.PageInfo})
}
