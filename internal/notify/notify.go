// Package notify carries one-shot notifications across a redirect using a
// short-lived cookie, so a POST can surface its outcome on the next page
// render.
package notify

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

const cookieName = "hrportal_flash"

const (
	KindSuccess = "success"
	KindError   = "error"
	KindInfo    = "info"
)

// Flash is one pending notification.
type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Success queues a success notification for the next render.
func Success(ctx *gin.Context, message string) {
	set(ctx, Flash{Kind: KindSuccess, Message: message})
}

// Error queues an error notification for the next render.
func Error(ctx *gin.Context, message string) {
	set(ctx, Flash{Kind: KindError, Message: message})
}

// Info queues an informational notification for the next render.
func Info(ctx *gin.Context, message string) {
	set(ctx, Flash{Kind: KindInfo, Message: message})
}

func set(ctx *gin.Context, f Flash) {
	payload, err := json.Marshal(f)
	if err != nil {
		return
	}
	encoded := base64.URLEncoding.EncodeToString(payload)
	ctx.SetCookie(cookieName, encoded, 60, "/", "", false, true)
}

// Pop returns the pending notification, if any, and clears it so it shows
// exactly once.
func Pop(ctx *gin.Context) (Flash, bool) {
	encoded, err := ctx.Cookie(cookieName)
	if err != nil || encoded == "" {
		return Flash{}, false
	}
	ctx.SetCookie(cookieName, "", -1, "/", "", false, true)

	payload, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return Flash{}, false
	}
	var f Flash
	if err := json.Unmarshal(payload, &f); err != nil || f.Message == "" {
		return Flash{}, false
	}
	return f, true
}
