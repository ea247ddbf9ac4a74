// Package upload pushes listing images to Cloudinary, with a deterministic
// placeholder fallback for development environments without credentials.
package upload

import (
	"context"
	"errors"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader delegates image uploads to Cloudinary. With no credentials
// configured the client stays nil and Upload falls back to placeholder
// URLs instead of failing.
type Uploader struct {
	cld *cloudinary.Cloudinary
}

func New(cloudName, apiKey, apiSecret string) (*Uploader, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return &Uploader{}, nil
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	cld.Config.URL.Secure = true

	return &Uploader{cld: cld}, nil
}

// Configured reports whether uploads go to Cloudinary rather than the
// placeholder fallback.
func (u *Uploader) Configured() bool {
	return u.cld != nil
}

// Upload streams the file to Cloudinary and returns the service-assigned
// secure URL. Without credentials it returns a placeholder URL embedding
// the original filename and never fails.
func (u *Uploader) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	if u.cld == nil {
		return "https://dummyimage.com/600x400/000/fff&text=" + filename, nil
	}

	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{})
	if err != nil {
		return "", err
	}
	if resp.Error.Message != "" {
		return "", errors.New(resp.Error.Message)
	}
	return resp.SecureURL, nil
}
