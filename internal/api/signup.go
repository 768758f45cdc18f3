package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/coli-team/coli-web/internal/domain"
)

// SignUpPath is the account creation endpoint.
const SignUpPath = "/api/v1/users/sign-up"

// SignUp posts the registration as multipart/form-data with the fields
// name, email, profile and password.
func (c *Client) SignUp(ctx context.Context, reg domain.Registration) (domain.Session, error) {
	body, contentType, err := encodeRegistration(reg)
	if err != nil {
		return domain.Session{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(SignUpPath), body)
	if err != nil {
		return domain.Session{}, fmt.Errorf("build sign-up request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	var out signUpResponse
	if err := c.do(ctx, req, &out); err != nil {
		return domain.Session{}, err
	}
	if out.Token == "" || out.Data.User == nil {
		return domain.Session{}, fmt.Errorf("sign-up: %w: missing token or user", ErrMalformedResponse)
	}

	return domain.Session{Token: out.Token, User: out.Data.User.toDomain()}, nil
}

func encodeRegistration(reg domain.Registration) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("name", reg.Name); err != nil {
		return nil, "", fmt.Errorf("write name field: %w", err)
	}
	if err := w.WriteField("email", reg.Email); err != nil {
		return nil, "", fmt.Errorf("write email field: %w", err)
	}
	if err := writeProfile(w, reg.Profile); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("password", reg.Password); err != nil {
		return nil, "", fmt.Errorf("write password field: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writeProfile(w *multipart.Writer, up domain.Upload) error {
	contentType := up.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mimetype.Detect(up.Content).String()
	}
	filename := up.Filename
	if filename == "" {
		filename = "profile" + mimetype.Detect(up.Content).Extension()
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="profile"; filename="%s"`, quoteEscaper.Replace(filename)))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create profile part: %w", err)
	}
	if _, err := part.Write(up.Content); err != nil {
		return fmt.Errorf("write profile part: %w", err)
	}
	return nil
}
