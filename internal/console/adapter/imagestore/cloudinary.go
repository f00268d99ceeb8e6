package imagestore

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"lostfound-admin/internal/console/config"
	"lostfound-admin/internal/shared/errors"
	"lostfound-admin/internal/shared/logger"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://api.cloudinary.com/v1_1"
	requestTimeout = 10 * time.Second
)

// CloudinaryImageStore deletes stored item images through the Cloudinary
// destroy API using a signed form POST.
type CloudinaryImageStore struct {
	cloudName string
	apiKey    string
	apiSecret string
	baseURL   string
	client    *fasthttp.Client
	logger    logger.Logger
	now       func() time.Time
}

// NewCloudinaryImageStore creates a new Cloudinary image store adapter
func NewCloudinaryImageStore(cfg *config.CloudinaryConfig, log logger.Logger) *CloudinaryImageStore {
	return &CloudinaryImageStore{
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		baseURL:   defaultBaseURL,
		client:    &fasthttp.Client{},
		logger:    log,
		now:       time.Now,
	}
}

type destroyResponse struct {
	Result string `json:"result"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}

// DeleteImage destroys the image identified by publicID. A missing image is
// treated as already deleted.
func (s *CloudinaryImageStore) DeleteImage(ctx context.Context, publicID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if publicID == "" {
		return errors.NewValidationError("public_id is required")
	}

	timestamp := strconv.FormatInt(s.now().Unix(), 10)
	signature := signDestroy(publicID, timestamp, s.apiSecret)

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fmt.Sprintf("%s/%s/image/destroy", s.baseURL, s.cloudName))
	req.Header.SetMethod(fasthttp.MethodPost)
	args := req.PostArgs()
	args.Set("public_id", publicID)
	args.Set("timestamp", timestamp)
	args.Set("api_key", s.apiKey)
	args.Set("signature", signature)

	if err := s.client.DoTimeout(req, resp, requestTimeout); err != nil {
		s.logger.Error("Cloudinary request failed",
			zap.String("publicId", publicID),
			zap.Error(err))
		return errors.NewCollaboratorError("image store unavailable").WithCause(err)
	}

	var body destroyResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		s.logger.Error("Cloudinary returned an unreadable response",
			zap.String("publicId", publicID),
			zap.Int("status", resp.StatusCode()),
			zap.Error(err))
		return errors.NewCollaboratorError("image store returned an unreadable response").WithCause(err)
	}

	switch body.Result {
	case "ok", "not found":
		s.logger.Info("Deleted image", zap.String("publicId", publicID))
		return nil
	default:
		s.logger.Error("Failed to delete image",
			zap.String("publicId", publicID),
			zap.String("result", body.Result),
			zap.String("message", body.Error.Message))
		return errors.NewCollaboratorError("image store refused to delete image").
			WithDetail("result", body.Result)
	}
}

// signDestroy computes the Cloudinary request signature: the SHA-1 hex digest
// of the alphabetically ordered parameters concatenated with the API secret.
func signDestroy(publicID, timestamp, secret string) string {
	payload := fmt.Sprintf("public_id=%s&timestamp=%s%s", publicID, timestamp, secret)
	sum := sha1.Sum([]byte(payload))
	return hex.EncodeToString(sum[:])
}
