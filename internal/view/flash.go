package view

import (
	"encoding/gob"
	"log/slog"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeyToast    = "toast"
)

// Variant is the severity of a toast.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Toast is a transient notification shown to the visitor.
type Toast struct {
	Title       string
	Description string
	Variant     Variant
}

// FlashData carries the toasts queued for the next rendered page.
type FlashData struct {
	Toasts []Toast
}

// Descriptions returns the descriptions of the toasts with the given variant.
func (f FlashData) Descriptions(variant Variant) []string {
	var out []string
	for _, t := range f.Toasts {
		if t.Variant == variant {
			out = append(out, t.Description)
		}
	}
	return out
}

func init() {
	// Session values are gob encoded.
	gob.Register(Toast{})
}

// ErrorToast builds the destructive toast used for failures.
func ErrorToast(message string) Toast {
	return Toast{Title: "Error", Description: message, Variant: VariantDestructive}
}

// SuccessToast builds the default toast used for confirmations.
func SuccessToast(message string) Toast {
	return Toast{Title: "Success", Description: message, Variant: VariantDefault}
}

// SetFlash queues a toast in the session for the next page render.
func SetFlash(c echo.Context, toast Toast) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		slog.Warn("flash session unavailable", "error", err)
		return
	}
	sess.AddFlash(toast, flashKeyToast)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		slog.Error("failed to save flash session", "error", err)
	}
}

// SetFlashSuccess queues a success toast.
func SetFlashSuccess(c echo.Context, message string) {
	SetFlash(c, SuccessToast(message))
}

// SetFlashError queues an error toast.
func SetFlashError(c echo.Context, message string) {
	SetFlash(c, ErrorToast(message))
}

// GetFlashData retrieves and clears the queued toasts.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData

	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return data
	}

	// Flashes() removes what it returns, so the session is saved afterwards.
	flashes := sess.Flashes(flashKeyToast)
	if len(flashes) == 0 {
		return data
	}
	for _, f := range flashes {
		if t, ok := f.(Toast); ok {
			data.Toasts = append(data.Toasts, t)
		}
	}
	_ = sess.Save(c.Request(), c.Response())
	return data
}
