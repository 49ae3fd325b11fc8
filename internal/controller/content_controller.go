package controller

import (
	"net/http"

	"luxe-store-api/internal/dto"
	"luxe-store-api/internal/service"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	Content  *service.ContentService
	Messages *service.MessageService
}

func NewContentController(content *service.ContentService, messages *service.MessageService) *ContentController {
	return &ContentController{Content: content, Messages: messages}
}

// GET /home — público
func (ctl *ContentController) GetHome(c *gin.Context) {
	home, err := ctl.Content.GetHome(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, home)
}

// PUT /admin/home
func (ctl *ContentController) SaveHome(c *gin.Context) {
	var req dto.HomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	home, err := ctl.Content.SaveHome(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, home)
}

// GET /our-story — público
func (ctl *ContentController) GetOurStory(c *gin.Context) {
	story, err := ctl.Content.GetOurStory(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, story)
}

// PUT /admin/our-story
func (ctl *ContentController) SaveOurStory(c *gin.Context) {
	var req dto.OurStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	story, err := ctl.Content.SaveOurStory(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, story)
}

// GET /faqs — público
func (ctl *ContentController) ListFAQs(c *gin.Context) {
	faqs, err := ctl.Content.ListFAQs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, faqs)
}

// POST /admin/faqs
func (ctl *ContentController) CreateFAQ(c *gin.Context) {
	var req dto.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	faq, err := ctl.Content.CreateFAQ(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, faq)
}

// PUT /admin/faqs/:faqId
func (ctl *ContentController) UpdateFAQ(c *gin.Context) {
	var req dto.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	faq, err := ctl.Content.UpdateFAQ(c.Request.Context(), c.Param("faqId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, faq)
}

// DELETE /admin/faqs/:faqId
func (ctl *ContentController) DeleteFAQ(c *gin.Context) {
	if err := ctl.Content.DeleteFAQ(c.Request.Context(), c.Param("faqId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "faq deleted"})
}

// POST /contact — público
func (ctl *ContentController) CreateMessage(c *gin.Context) {
	var req dto.ContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := ctl.Messages.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// GET /admin/messages?cursor=... — mismo contrato keyset que órdenes
func (ctl *ContentController) ListMessages(c *gin.Context) {
	page, err := ctl.Messages.List(c.Request.Context(), c.Query("cursor"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// DELETE /admin/messages/:messageId
func (ctl *ContentController) DeleteMessage(c *gin.Context) {
	if err := ctl.Messages.Delete(c.Request.Context(), c.Param("messageId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "message deleted"})
}
