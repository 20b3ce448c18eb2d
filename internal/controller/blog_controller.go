package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/klass-lk/ginblog/internal/apierror"
	"github.com/klass-lk/ginblog/internal/service"
)

// BlogController maps the five blog routes onto the post service and
// shapes the success responses. Failures are attached to the context and
// rendered by the centralized apierror handler.
type BlogController struct {
	posts *service.PostService
}

func NewBlogController(posts *service.PostService) *BlogController {
	return &BlogController{
		posts: posts,
	}
}

func (c *BlogController) Register(group *gin.RouterGroup) {
	group.GET("/posts", c.GetPosts)
	group.GET("/post/:postId", c.GetPost)
	group.POST("/post", c.CreatePost)
	group.PUT("/post/:postId", c.UpdatePost)
	group.DELETE("/post/:postId", c.DeletePost)
}

func (c *BlogController) CreatePost(ctx *gin.Context) {
	var req service.PostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		_ = ctx.Error(apierror.New(http.StatusBadRequest, "invalid request body"))
		return
	}

	post, err := c.posts.CreatePost(req)
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Post created successfully!",
		"post":    post,
	})
}

func (c *BlogController) GetPosts(ctx *gin.Context) {
	posts, err := c.posts.GetPosts()
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Fetched posts successfully.",
		"posts":   posts,
	})
}

func (c *BlogController) GetPost(ctx *gin.Context) {
	post, err := c.posts.GetPost(ctx.Param("postId"))
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Fetched post successfully.",
		"post":    post,
	})
}

func (c *BlogController) UpdatePost(ctx *gin.Context) {
	var req service.PostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		_ = ctx.Error(apierror.New(http.StatusBadRequest, "invalid request body"))
		return
	}

	post, err := c.posts.UpdatePost(ctx.Param("postId"), req)
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Update post successfully.",
		"post":    post,
	})
}

func (c *BlogController) DeletePost(ctx *gin.Context) {
	if err := c.posts.DeletePost(ctx.Param("postId")); err != nil {
		_ = ctx.Error(err)
		return
	}

	// Message text kept verbatim for compatibility with existing clients.
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Delete Successed",
	})
}
