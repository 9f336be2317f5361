package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/chenjq/photofolio/internal/client/models"
	"github.com/chenjq/photofolio/internal/logging"
)

// HTTPClient implements Client against the backend REST API at
// {backend}{apiVersion} (e.g. "https://api.example.com/" + "v1/").
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
}

func NewHTTPClient(backend, apiVersion string, log logging.Logger) *HTTPClient {
	base := strings.TrimRight(backend, "/") + "/" + strings.Trim(apiVersion, "/") + "/"
	return &HTTPClient{baseURL: base, httpClient: http.DefaultClient, log: log}
}

// WithHTTPClient swaps the underlying transport; used by tests.
func (c *HTTPClient) WithHTTPClient(hc *http.Client) *HTTPClient {
	c.httpClient = hc
	return c
}

type listImagesResponse struct {
	APIResponse struct {
		Data []models.Image `json:"data"`
	} `json:"apiResponse"`
	HasMore bool    `json:"hasMore"`
	LastKey *string `json:"lastKey"`
}

func (c *HTTPClient) ListImages(ctx context.Context, lastKey *string, page int) (*models.ImagePage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	// lastKey is omitted entirely on the first page, not sent empty.
	if lastKey != nil && *lastKey != "" {
		q.Set("lastKey", *lastKey)
	}

	var res listImagesResponse
	if err := c.do(ctx, http.MethodGet, "images", q, nil, &res); err != nil {
		return nil, err
	}
	return &models.ImagePage{
		Images:  res.APIResponse.Data,
		HasMore: res.HasMore,
		LastKey: res.LastKey,
	}, nil
}

func (c *HTTPClient) RequestUploadGrant(ctx context.Context, contentType string) (*models.UploadGrant, error) {
	q := url.Values{}
	q.Set("contentType", contentType)

	var res struct {
		Data models.UploadGrant `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, "images", q, nil, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *HTTPClient) FinalizeUpload(ctx context.Context, fin models.UploadFinalize) error {
	return c.do(ctx, http.MethodPost, "images", nil, fin, nil)
}

func (c *HTTPClient) DeleteImage(ctx context.Context, imageID string) error {
	return c.do(ctx, http.MethodDelete, "images/"+url.PathEscape(imageID), nil, nil, nil)
}

func (c *HTTPClient) UpdateImage(ctx context.Context, imageID string, patch models.MetadataPatch) (map[string]any, error) {
	var res struct {
		Data map[string]any `json:"data"`
	}
	if err := c.do(ctx, http.MethodPatch, "images/"+url.PathEscape(imageID), nil, patch, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

type urlEnvelope struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
}

func (c *HTTPClient) GetSelfie(ctx context.Context) (string, error) {
	var res urlEnvelope
	if err := c.do(ctx, http.MethodGet, "selfie", nil, nil, &res); err != nil {
		return "", err
	}
	return res.Data.URL, nil
}

func (c *HTTPClient) SetSelfie(ctx context.Context, u string) error {
	return c.do(ctx, http.MethodPut, "selfie", nil, map[string]string{"url": u}, nil)
}

func (c *HTTPClient) GetResume(ctx context.Context) (string, error) {
	var res urlEnvelope
	if err := c.do(ctx, http.MethodGet, "resume", nil, nil, &res); err != nil {
		return "", err
	}
	return res.Data.URL, nil
}

func (c *HTTPClient) SetResume(ctx context.Context, u string) error {
	return c.do(ctx, http.MethodPut, "resume", nil, map[string]string{"url": u}, nil)
}

func (c *HTTPClient) GetSocialLinks(ctx context.Context) (*models.SocialLinks, error) {
	var res struct {
		Data models.SocialLinks `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "social-links", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *HTTPClient) SetSocialLinks(ctx context.Context, links models.SocialLinks) error {
	return c.do(ctx, http.MethodPut, "social-links", nil, links, nil)
}

func (c *HTTPClient) GetSiteMessage(ctx context.Context) (string, error) {
	var res struct {
		Data struct {
			Message string `json:"message"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "site-message", nil, nil, &res); err != nil {
		return "", err
	}
	return res.Data.Message, nil
}

func (c *HTTPClient) SetSiteMessage(ctx context.Context, message string) error {
	return c.do(ctx, http.MethodPost, "site-message", nil, map[string]string{"message": message}, nil)
}

// do issues one request and decodes the response into out (when non-nil).
// Transport failures wrap ErrUnavailable; backend-reported failures come
// back as *APIError with the body as detail.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Detail: strings.TrimSpace(string(detail))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}
