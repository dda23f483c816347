package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/pollbooth-dev/pollbooth/internal/auth"
	"github.com/pollbooth-dev/pollbooth/internal/flash"
	"github.com/pollbooth-dev/pollbooth/internal/forms"
	"github.com/pollbooth-dev/pollbooth/internal/types"
)

func (h *Handlers) ShowRegister(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"page":  "register",
		"flash": flash.Take(ctx),
	})
}

func (h *Handlers) Register(ctx *gin.Context) {
	var form forms.RegisterForm

	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusOK, gin.H{
			"page":   "register",
			"errors": forms.FieldErrors(err),
		})
		return
	}

	// The length rules apply to the trimmed username, so a padded name
	// that shrinks below the minimum must fail here, not be stored.
	form.Normalize()

	if err := binding.Validator.ValidateStruct(&form); err != nil {
		ctx.JSON(http.StatusOK, gin.H{
			"page":   "register",
			"errors": forms.FieldErrors(err),
		})
		return
	}

	_, err := h.Auth.Register(form.Username, form.Password)

	if err != nil {
		if errors.Is(err, auth.ErrUsernameTaken) {
			flash.Set(ctx, "danger", "Username already exists. Please choose another.")
			ctx.Redirect(http.StatusFound, "/register")
			return
		}
		log.Printf("Failed to register user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	flash.Set(ctx, "success", "Registration successful. Please log in.")
	ctx.Redirect(http.StatusSeeOther, "/login")
}

func (h *Handlers) ShowLogin(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"page":  "login",
		"flash": flash.Take(ctx),
	})
}

func (h *Handlers) Login(ctx *gin.Context) {
	var form forms.LoginForm

	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusOK, gin.H{
			"page":   "login",
			"errors": forms.FieldErrors(err),
		})
		return
	}

	user, err := h.Auth.Authenticate(form.Username, form.Password)

	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			ctx.JSON(http.StatusOK, gin.H{
				"page":  "login",
				"flash": types.FlashMessage{Category: "danger", Message: "Invalid username or password."},
			})
			return
		}
		log.Printf("Failed to authenticate user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := h.Sessions.Issue(user.ID, user.Username)

	if err != nil {
		log.Printf("Failed to issue session: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.Sessions.SetCookie(ctx, token)

	flash.Set(ctx, "success", "Logged in successfully.")
	ctx.Redirect(http.StatusSeeOther, loginTarget(ctx.Query("next")))
}

func (h *Handlers) Logout(ctx *gin.Context) {
	h.Sessions.ClearCookie(ctx)

	flash.Set(ctx, "success", "You have been logged out.")
	ctx.Redirect(http.StatusFound, "/")
}

// loginTarget keeps post-login redirects on this site. Anything that is
// not a plain relative path falls back to the index.
func loginTarget(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
