package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pollbooth-dev/pollbooth/internal/flash"
	"github.com/pollbooth-dev/pollbooth/internal/forms"
	"github.com/pollbooth-dev/pollbooth/internal/types"
	"github.com/pollbooth-dev/pollbooth/internal/utils"
)

func (h *Handlers) Index(ctx *gin.Context) {
	polls, err := h.Store.ListPolls()

	if err != nil {
		log.Printf("Failed to list polls: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	summaries := make([]types.PollSummary, 0, len(polls))
	for _, poll := range polls {
		summaries = append(summaries, types.PollSummary{
			ID:       poll.ID,
			Question: poll.Question,
		})
	}

	body := gin.H{
		"page":  "index",
		"polls": summaries,
		"flash": flash.Take(ctx),
	}

	if user, err := utils.GetCurrentUser(ctx); err == nil {
		body["user"] = types.UserResponse{ID: user.ID, Username: user.Username}
	}

	ctx.JSON(http.StatusOK, body)
}

func (h *Handlers) ShowCreatePoll(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"page":  "create",
		"flash": flash.Take(ctx),
	})
}

func (h *Handlers) CreatePoll(ctx *gin.Context) {
	var form forms.PollForm

	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusOK, gin.H{
			"page":   "create",
			"errors": forms.FieldErrors(err),
		})
		return
	}

	if _, err := h.Store.CreatePoll(form.Question, form.Options); err != nil {
		log.Printf("Failed to create poll: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	flash.Set(ctx, "success", "Poll created successfully!")
	ctx.Redirect(http.StatusSeeOther, "/")
}
