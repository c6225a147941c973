package api

import (
	"net/http"

	"github.com/ashendes/storefront-demo/internal/models"
	"github.com/ashendes/storefront-demo/internal/support"
	"github.com/gin-gonic/gin"
)

func (h *Handler) submitContact(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	s := currentSession(c)
	ticket, err := h.desk.Submit(s.ID, s.Scheduler, msg)
	if err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusAccepted, ticket)
}

func (h *Handler) getTicket(c *gin.Context) {
	ticket, err := h.desk.Ticket(currentSession(c).ID, c.Param("ticketId"))
	if err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

func (h *Handler) getFAQ(c *gin.Context) {
	category := c.DefaultQuery("category", support.FAQCategoryAll)
	c.JSON(http.StatusOK, gin.H{
		"categories": support.FAQCategories(),
		"items":      support.FAQ(category, c.Query("q")),
	})
}

func (h *Handler) getContactInfo(c *gin.Context) {
	c.JSON(http.StatusOK, support.ContactInfo(h.now()))
}

func (h *Handler) subscribe(c *gin.Context) {
	var req models.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	created, err := h.desk.Subscribe(req)
	if err != nil {
		respondFailure(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"subscribed": true, "new": created})
}
