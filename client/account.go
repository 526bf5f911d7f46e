package client

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// Session is the result of a successful login
type Session struct {
	Tokens  TokenPair `json:"tokens"`
	Profile Profile   `json:"profile"`
}

// Login authenticates with email and password. The returned access
// token is installed on the client for subsequent requests.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, &APIError{Code: "ERR_VALIDATION", Message: "Email and password are required."}
	}
	body := map[string]string{"email": email, "password": password}
	var session Session
	if _, err := c.post(ctx, "/api/v1/auth/login", body, &session); err != nil {
		return nil, err
	}
	session.Profile.normalize()
	c.SetToken(session.Tokens.AccessToken)
	return &session, nil
}

// Refresh exchanges a refresh token for a new pair and installs the
// new access token on the client
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	body := map[string]string{"refresh_token": refreshToken}
	var pair TokenPair
	if _, err := c.post(ctx, "/api/v1/auth/refresh", body, &pair); err != nil {
		return nil, err
	}
	c.SetToken(pair.AccessToken)
	return &pair, nil
}

// Me fetches the authenticated user's profile
func (c *Client) Me(ctx context.Context) (*Profile, error) {
	var p Profile
	if _, err := c.get(ctx, "/api/v1/auth/me", nil, &p); err != nil {
		return nil, err
	}
	p.normalize()
	return &p, nil
}

// GetProfile fetches the user profile
func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	var p Profile
	if _, err := c.get(ctx, "/api/v1/profile", nil, &p); err != nil {
		return nil, err
	}
	p.normalize()
	return &p, nil
}

// UpdateProfileRequest updates the profile contact fields
type UpdateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
}

// UpdateProfile saves the contact fields and returns the updated
// profile. A blank first name is rejected without any API call.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*Profile, error) {
	if strings.TrimSpace(req.FirstName) == "" {
		return nil, &APIError{Code: "ERR_VALIDATION", Message: "First name is required."}
	}
	var p Profile
	if _, err := c.put(ctx, "/api/v1/profile", req, &p); err != nil {
		return nil, err
	}
	p.normalize()
	return &p, nil
}

// UploadDocument submits an identity document for verification
func (c *Client) UploadDocument(ctx context.Context, docType, fileName string, file io.Reader) (*Profile, error) {
	if strings.TrimSpace(docType) == "" {
		return nil, &APIError{Code: "ERR_VALIDATION", Message: "Please select a document type."}
	}
	if strings.TrimSpace(fileName) == "" {
		return nil, &APIError{Code: "ERR_VALIDATION", Message: "Please choose a file to upload."}
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("type", docType); err != nil {
		return nil, err
	}
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/profile/documents", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var p Profile
	if _, err := c.do(req, &p); err != nil {
		return nil, err
	}
	p.normalize()
	return &p, nil
}
