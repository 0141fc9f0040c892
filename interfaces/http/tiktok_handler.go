package http

import (
	"net/http"

	"axlas-recipes/domain/dto"
	"axlas-recipes/usecase"

	"github.com/gin-gonic/gin"
)

type ITikTokHandler interface {
	GetFeed(c *gin.Context)
	PostAction(c *gin.Context)
}

type TikTokHandler struct {
	TikTokUsecase usecase.ITikTokUsecase
}

func NewTikTokHandler(tiktokUsecase usecase.ITikTokUsecase) ITikTokHandler {
	return &TikTokHandler{TikTokUsecase: tiktokUsecase}
}

// GetFeed serves the video feed. Zero discovered videos is still HTTP 200;
// the envelope carries success=false so the frontend can render its fallback.
func (tiktokHandler *TikTokHandler) GetFeed(c *gin.Context) {
	res := tiktokHandler.TikTokUsecase.GetFeed(c.Request.Context())
	c.JSON(http.StatusOK, res)
}

func (tiktokHandler *TikTokHandler) PostAction(c *gin.Context) {
	var req dto.TikTokActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	switch req.Action {
	case "refresh":
		c.JSON(http.StatusOK, tiktokHandler.TikTokUsecase.Refresh(c.Request.Context()))
	case "test":
		c.JSON(http.StatusOK, tiktokHandler.TikTokUsecase.RunDiagnostics(c.Request.Context()))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid action. Use \"refresh\" or \"test\""})
	}
}
