package handler

import (
	"net/http"

	deliverycontext "learnhub/internal/delivery/context"
	"learnhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the HTML shells of the portal. The pages are thin; the
// interesting behavior is the guard policy applied in front of them.
type PageHandler struct{}

// NewPageHandler is the constructor for PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func page(c echo.Context, title, body string) error {
	return c.HTML(http.StatusOK,
		"<!DOCTYPE html><html><head><title>"+title+"</title></head><body>"+body+"</body></html>")
}

// Home serves the public landing page.
func (h *PageHandler) Home(c echo.Context) error {
	return page(c, "LearnHub", "<h1>LearnHub</h1><p>Lecture documents and videos for members.</p>")
}

// Login serves the sign-in page. Signed-in visitors never reach it.
func (h *PageHandler) Login(c echo.Context) error {
	return page(c, "Sign in", "<h1>Sign in</h1>")
}

// Register serves the registration page. Signed-in visitors never reach it.
func (h *PageHandler) Register(c echo.Context) error {
	return page(c, "Register", "<h1>Register</h1>")
}

// Documents serves the document library page.
func (h *PageHandler) Documents(c echo.Context) error {
	return page(c, "Documents", "<h1>Documents</h1>")
}

// DocumentUploader serves the document upload page.
func (h *PageHandler) DocumentUploader(c echo.Context) error {
	return page(c, "Upload document", "<h1>Upload a document</h1>")
}

// Videos serves the video library page.
func (h *PageHandler) Videos(c echo.Context) error {
	return page(c, "Videos", "<h1>Videos</h1>")
}

// Watch serves the video watch page.
func (h *PageHandler) Watch(c echo.Context) error {
	return page(c, "Watch", "<h1>Watch</h1>")
}

// Admin serves the admin console page. Only admins get this far; the role
// check happens in the guard chain, never against a display name.
func (h *PageHandler) Admin(c echo.Context) error {
	claims := deliverycontext.GetSession(c)
	if claims == nil || claims.Role != entity.RoleAdmin {
		return c.Redirect(http.StatusTemporaryRedirect, "/documents")
	}

	return page(c, "Admin", "<h1>Admin console</h1>")
}
