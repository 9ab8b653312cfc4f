// Package client adalah typed client untuk API CMS VisionGuard.
// Semua response API memakai envelope single-key; client yang membuka
// envelope-nya sehingga pemanggil langsung menerima record/list.
package client

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
	"time"

	"visionguard-backend/internal/models"
)

// APIError error dari server, membawa status HTTP dan pesan dari
// body {"error": ...}.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsNotFound true bila err adalah APIError 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// do menjalankan satu request dan membuka envelope response ke out.
// out nil berarti body sukses diabaikan (delete membalas body kosong).
func (c *Client) do(ctx context.Context, method, path string, body any, key string, out any) error {
	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		return &APIError{StatusCode: resp.StatusCode, Message: errBody.Error}
	}

	if out == nil {
		return nil
	}

	var envelope map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	raw, ok := envelope[key]
	if !ok {
		return fmt.Errorf("response missing %q key", key)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %q: %w", key, err)
	}
	return nil
}

// --- Blog ---

// ListPosts mengembalikan post yang published saja.
func (c *Client) ListPosts(ctx context.Context) ([]models.BlogPost, error) {
	var out []models.BlogPost
	err := c.do(ctx, http.MethodGet, "/blog", nil, "posts", &out)
	return out, err
}

// ListAllPosts listing admin, termasuk draft.
func (c *Client) ListAllPosts(ctx context.Context) ([]models.BlogPost, error) {
	var out []models.BlogPost
	err := c.do(ctx, http.MethodGet, "/admin/blog", nil, "posts", &out)
	return out, err
}

func (c *Client) GetPost(ctx context.Context, slug string) (models.BlogPost, error) {
	var out models.BlogPost
	err := c.do(ctx, http.MethodGet, "/blog/"+url.PathEscape(slug), nil, "post", &out)
	return out, err
}

func (c *Client) CreatePost(ctx context.Context, req models.BlogPostCreateRequest) (models.BlogPost, error) {
	var out models.BlogPost
	err := c.do(ctx, http.MethodPost, "/blog", req, "post", &out)
	return out, err
}

func (c *Client) UpdatePost(ctx context.Context, id int, req models.BlogPostCreateRequest) (models.BlogPost, error) {
	var out models.BlogPost
	err := c.do(ctx, http.MethodPut, "/admin/blog/"+strconv.Itoa(id), req, "post", &out)
	return out, err
}

func (c *Client) DeletePost(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/admin/blog/"+strconv.Itoa(id), nil, "", nil)
}

// --- FAQ ---

func (c *Client) ListFAQs(ctx context.Context) ([]models.FAQ, error) {
	var out []models.FAQ
	err := c.do(ctx, http.MethodGet, "/faqs", nil, "faqs", &out)
	return out, err
}

func (c *Client) CreateFAQ(ctx context.Context, req models.FAQCreateRequest) (models.FAQ, error) {
	var out models.FAQ
	err := c.do(ctx, http.MethodPost, "/faqs", req, "faq", &out)
	return out, err
}

func (c *Client) UpdateFAQ(ctx context.Context, id int, req models.FAQCreateRequest) (models.FAQ, error) {
	var out models.FAQ
	err := c.do(ctx, http.MethodPut, "/admin/faqs/"+strconv.Itoa(id), req, "faq", &out)
	return out, err
}

func (c *Client) DeleteFAQ(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/admin/faqs/"+strconv.Itoa(id), nil, "", nil)
}

// --- Testimonial ---

func (c *Client) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	var out []models.Testimonial
	err := c.do(ctx, http.MethodGet, "/testimonials", nil, "testimonials", &out)
	return out, err
}

func (c *Client) CreateTestimonial(ctx context.Context, req models.TestimonialCreateRequest) (models.Testimonial, error) {
	var out models.Testimonial
	err := c.do(ctx, http.MethodPost, "/testimonials", req, "testimonial", &out)
	return out, err
}

func (c *Client) UpdateTestimonial(ctx context.Context, id int, req models.TestimonialCreateRequest) (models.Testimonial, error) {
	var out models.Testimonial
	err := c.do(ctx, http.MethodPut, "/admin/testimonials/"+strconv.Itoa(id), req, "testimonial", &out)
	return out, err
}

func (c *Client) DeleteTestimonial(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/admin/testimonials/"+strconv.Itoa(id), nil, "", nil)
}

// --- Portfolio ---

func (c *Client) ListProjects(ctx context.Context) ([]models.PortfolioProject, error) {
	var out []models.PortfolioProject
	err := c.do(ctx, http.MethodGet, "/portfolio", nil, "projects", &out)
	return out, err
}

func (c *Client) CreateProject(ctx context.Context, req models.PortfolioProjectCreateRequest) (models.PortfolioProject, error) {
	var out models.PortfolioProject
	err := c.do(ctx, http.MethodPost, "/portfolio", req, "project", &out)
	return out, err
}

func (c *Client) UpdateProject(ctx context.Context, id int, req models.PortfolioProjectCreateRequest) (models.PortfolioProject, error) {
	var out models.PortfolioProject
	err := c.do(ctx, http.MethodPut, "/admin/portfolio/"+strconv.Itoa(id), req, "project", &out)
	return out, err
}

func (c *Client) DeleteProject(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/admin/portfolio/"+strconv.Itoa(id), nil, "", nil)
}

// --- Kontak ---

func (c *Client) SubmitContact(ctx context.Context, req models.ContactSubmissionCreateRequest) (models.ContactSubmission, error) {
	var out models.ContactSubmission
	err := c.do(ctx, http.MethodPost, "/contact", req, "submission", &out)
	return out, err
}

func (c *Client) ListSubmissions(ctx context.Context) ([]models.ContactSubmission, error) {
	var out []models.ContactSubmission
	err := c.do(ctx, http.MethodGet, "/admin/contact", nil, "submissions", &out)
	return out, err
}
