package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/culinarybook/backend/internal/models"
	"github.com/culinarybook/backend/internal/service"
	"github.com/culinarybook/backend/internal/types"
)

type BlogHandler struct {
	blogs *service.BlogService
}

func NewBlogHandler(blogs *service.BlogService) *BlogHandler {
	return &BlogHandler{blogs: blogs}
}

func (h *BlogHandler) RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc, createLimit gin.HandlerFunc) {
	blogs := router.Group("/blogs")
	blogs.GET("/public", h.ListPublishedBlogs)

	protected := blogs.Group("", auth)
	protected.GET("", h.ListBlogs)
	protected.GET("/:id", h.GetBlog)

	mutating := protected.Group("")
	if createLimit != nil {
		mutating.Use(createLimit)
	}
	mutating.POST("", h.CreateBlog)
	mutating.PUT("/:id", h.UpdateBlog)
	mutating.DELETE("/:id", h.DeleteBlog)
}

func (h *BlogHandler) ListPublishedBlogs(c *gin.Context) {
	status := models.StatusPublished
	blogs, err := h.blogs.FindAll(c.Request.Context(), &status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

func (h *BlogHandler) ListBlogs(c *gin.Context) {
	var status *models.ContentStatus
	if raw := c.Query("status"); raw != "" {
		parsed := models.ParseContentStatus(raw)
		status = &parsed
	}

	blogs, err := h.blogs.FindAll(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

func (h *BlogHandler) GetBlog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blog id"})
		return
	}

	blog, err := h.blogs.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

func (h *BlogHandler) CreateBlog(c *gin.Context) {
	var req types.BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fillAuthorFromContext(c, &req.AuthorID)

	blog, err := h.blogs.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, blog)
}

func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blog id"})
		return
	}

	var req types.BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fillAuthorFromContext(c, &req.AuthorID)

	blog, err := h.blogs.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blog id"})
		return
	}

	if err := h.blogs.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "blog deleted", "id": id})
}
