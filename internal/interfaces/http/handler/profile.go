package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/stayhub/backend/internal/application/identity"
)

// maxDocumentSize caps uploaded verification documents at 10 MiB
const maxDocumentSize = 10 << 20

// ProfileHandler handles user profile endpoints
type ProfileHandler struct {
	BaseHandler
	identity *identityapp.Service
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(identity *identityapp.Service) *ProfileHandler {
	return &ProfileHandler{identity: identity}
}

// Get returns the authenticated user's profile
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	profile, err := h.identity.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

// Update updates the authenticated user's contact details
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var req identityapp.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	profile, err := h.identity.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

// UploadDocument accepts a multipart verification document upload
func (h *ProfileHandler) UploadDocument(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	docType := c.PostForm("type")
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "a document file is required")
		return
	}
	if fileHeader.Size > maxDocumentSize {
		h.BadRequest(c, "document exceeds the maximum allowed size")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	defer file.Close()

	profile, err := h.identity.UploadDocument(
		c.Request.Context(),
		userID,
		docType,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, profile)
}
