// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/career-compass/internal/config"
	"github.com/MKhiriev/career-compass/internal/logger"
	"github.com/MKhiriev/career-compass/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalizes and validates cfg.BaseURL and configures
// the resty client with the resolved base URL and request timeout.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyBaseURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return h.session(ctx, "/api/auth/register", req)
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return h.session(ctx, "/api/auth/login", req)
}

// session posts credentials to path and keeps the token of the auth
// envelope for later requests.
func (h *httpServerAdapter) session(ctx context.Context, path string, body any) (models.User, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	if result.Token == "" || result.User == nil {
		return models.User{}, ErrNoToken
	}

	h.SetToken(result.Token)
	h.logger.Debug().Str("func", "httpServerAdapter.session").Str("user_id", result.User.ID).Msg("session established")
	return *result.User, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var result models.AuthResponse

	resp, err := h.authedRequest(ctx).SetResult(&result).Get("/api/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}
	if result.User == nil {
		return models.User{}, fmt.Errorf("decode me response: no user")
	}
	return *result.User, nil
}

func (h *httpServerAdapter) SubmitAssessment(ctx context.Context, req models.SubmitAssessmentRequest) (models.Assessment, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/assessments")
	if err != nil {
		return models.Assessment{}, fmt.Errorf("submit assessment request: %w", err)
	}

	var assessment models.Assessment
	if err = decodeData(resp, &assessment); err != nil {
		return models.Assessment{}, err
	}
	return assessment, nil
}

func (h *httpServerAdapter) ListAssessments(ctx context.Context) ([]models.Assessment, error) {
	resp, err := h.authedRequest(ctx).Get("/api/assessments")
	if err != nil {
		return nil, fmt.Errorf("list assessments request: %w", err)
	}

	var list []models.Assessment
	if err = decodeData(resp, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (h *httpServerAdapter) ListCareers(ctx context.Context) ([]models.Career, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/careers")
	if err != nil {
		return nil, fmt.Errorf("list careers request: %w", err)
	}
	return decodeCareers(resp)
}

func (h *httpServerAdapter) SearchCareers(ctx context.Context, skill string) ([]models.Career, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("skill", skill).
		Get("/api/careers/search/by-skill")
	if err != nil {
		return nil, fmt.Errorf("search careers request: %w", err)
	}
	return decodeCareers(resp)
}

func (h *httpServerAdapter) Recommend(ctx context.Context, req models.RecommendationRequest) ([]models.Career, error) {
	r := h.authedRequest(ctx)
	if req.Trait != "" {
		r.SetQueryParam("trait", req.Trait)
	}
	if req.TypeCode != "" {
		r.SetQueryParam("type", req.TypeCode)
	}
	if len(req.Skills) > 0 {
		r.SetQueryParam("skills", strings.Join(req.Skills, ","))
	}

	resp, err := r.Get("/api/careers/recommendations")
	if err != nil {
		return nil, fmt.Errorf("recommendations request: %w", err)
	}
	return decodeCareers(resp)
}

func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().SetContext(ctx).SetResult(&health).Get("/api/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}
	return health, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// decodeData checks the status of resp and decodes the data field of the
// success envelope into v.
func decodeData(resp *resty.Response, v any) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	envelope := struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}{}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(envelope.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, v); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

func decodeCareers(resp *resty.Response) ([]models.Career, error) {
	var careers []models.Career
	if err := decodeData(resp, &careers); err != nil {
		return nil, err
	}
	return careers, nil
}
