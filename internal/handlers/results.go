package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pollbooth-dev/pollbooth/internal/flash"
	"github.com/pollbooth-dev/pollbooth/internal/types"
)

func (h *Handlers) Results(ctx *gin.Context) {
	poll, ok := h.lookupPoll(ctx)
	if !ok {
		return
	}

	total := 0
	for _, option := range poll.Options {
		total += option.Votes
	}

	ctx.JSON(http.StatusOK, gin.H{
		"page": "results",
		"results": types.ResultsView{
			Poll:       pollView(poll),
			TotalVotes: total,
		},
		"flash": flash.Take(ctx),
	})
}
