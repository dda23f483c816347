package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pollbooth-dev/pollbooth/internal/types"
)

// One-time messages carried across a redirect in a short-lived cookie,
// surfaced in the next page view-model and cleared on read.

const cookieName = "flash"

func Set(ctx *gin.Context, category, message string) {
	payload, err := json.Marshal(types.FlashMessage{Category: category, Message: message})
	if err != nil {
		return
	}

	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     cookieName,
		Value:    base64.URLEncoding.EncodeToString(payload),
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
	})
}

// Take returns the pending flash message, if any, and expires its cookie.
func Take(ctx *gin.Context) *types.FlashMessage {
	raw, err := ctx.Cookie(cookieName)
	if err != nil {
		return nil
	}

	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	payload, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}

	var msg types.FlashMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil
	}

	return &msg
}
