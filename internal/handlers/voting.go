package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pollbooth-dev/pollbooth/internal/flash"
	"github.com/pollbooth-dev/pollbooth/internal/models"
	"github.com/pollbooth-dev/pollbooth/internal/store"
	"github.com/pollbooth-dev/pollbooth/internal/types"
	"github.com/pollbooth-dev/pollbooth/internal/utils"
)

func (h *Handlers) ShowPoll(ctx *gin.Context) {
	poll, ok := h.lookupPoll(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"page":  "poll",
		"poll":  pollView(poll),
		"flash": flash.Take(ctx),
	})
}

// Vote records one vote for the selected option. A missing selection, a
// bogus option id, and an option belonging to another poll are all
// treated as "no option chosen": nothing is mutated and the client is
// sent back to the poll page with a warning.
func (h *Handlers) Vote(ctx *gin.Context) {
	poll, ok := h.lookupPoll(ctx)
	if !ok {
		return
	}

	back := fmt.Sprintf("/poll/%d", poll.ID)

	optionID, err := strconv.ParseUint(ctx.PostForm("option"), 10, 32)

	if err != nil {
		flash.Set(ctx, "warning", "Please choose an option.")
		ctx.Redirect(http.StatusFound, back)
		return
	}

	err = h.Store.IncrementVote(poll.ID, uint(optionID))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			flash.Set(ctx, "warning", "Please choose an option.")
			ctx.Redirect(http.StatusFound, back)
			return
		}
		log.Printf("Failed to record vote: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	flash.Set(ctx, "success", "Your vote has been counted!")
	ctx.Redirect(http.StatusSeeOther, fmt.Sprintf("/results/%d", poll.ID))
}

// lookupPoll resolves the poll_id path parameter. On failure it writes
// the 404 response and reports false.
func (h *Handlers) lookupPoll(ctx *gin.Context) (*models.Poll, bool) {
	pollID, err := utils.GetPollID(ctx)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Poll not found"})
		return nil, false
	}

	poll, err := h.Store.GetPoll(pollID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Poll not found"})
		} else {
			log.Printf("Failed to fetch poll: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return nil, false
	}

	return poll, true
}

func pollView(poll *models.Poll) types.PollView {
	options := make([]types.OptionView, 0, len(poll.Options))
	for _, option := range poll.Options {
		options = append(options, types.OptionView{
			ID:    option.ID,
			Text:  option.Text,
			Votes: option.Votes,
		})
	}

	return types.PollView{
		ID:       poll.ID,
		Question: poll.Question,
		Options:  options,
	}
}
