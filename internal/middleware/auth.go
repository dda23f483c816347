package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/pollbooth-dev/pollbooth/internal/auth"
	"github.com/pollbooth-dev/pollbooth/internal/store"
	"github.com/pollbooth-dev/pollbooth/internal/types"
)

type AuthenticatedUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// CurrentUser resolves the session cookie to a user and attaches it to
// the request context. Requests without a valid session continue as
// anonymous; gating is RequireLogin's job.
func CurrentUser(st *store.Store, sessions *auth.Sessions) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(auth.SessionCookie)

		if err != nil || token == "" {
			ctx.Next()
			return
		}

		userID, err := sessions.Verify(token)

		if err != nil {
			ctx.Next()
			return
		}

		user, err := st.GetUser(userID)

		if err != nil {
			// Stale session for a deleted user; treat as anonymous.
			ctx.Next()
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:       user.ID,
			Username: user.Username,
		})
		ctx.Next()
	}
}

// RequireLogin redirects anonymous requests to the login page, carrying
// the original path so login can send the user back.
func RequireLogin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, exists := ctx.Get(types.ContextUserKey); !exists {
			next := url.Values{"next": {ctx.Request.URL.RequestURI()}}
			ctx.Redirect(http.StatusFound, "/login?"+next.Encode())
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}
