package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-finance-tracker/internal/config"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/store"
	"github.com/MKhiriev/go-finance-tracker/internal/utils"
	"github.com/MKhiriev/go-finance-tracker/models"
)

const bearerPrefix = "Bearer "

func bearer(token string) string {
	return bearerPrefix + token
}

type authedKey struct{}

// withAuth marks a request context so the before-request hook attaches the
// stored access token.
func withAuth(ctx context.Context) context.Context {
	return context.WithValue(ctx, authedKey{}, true)
}

func isAuthed(ctx context.Context) bool {
	authed, _ := ctx.Value(authedKey{}).(bool)
	return authed
}

type httpServerAdapter struct {
	client    *utils.HTTPClient
	tokens    store.TokenStore
	refresher *tokenRefresher

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter] over tokens.
//
// Two resty clients are created: the main one, whose hook attaches the
// access token, and a bare one used only for POST /auth/refresh.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, tokens store.TokenStore, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	h := &httpServerAdapter{
		client:    utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		tokens:    tokens,
		refresher: newTokenRefresher(utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout), tokens, logger),
		logger:    logger,
	}
	h.client.OnBeforeRequest(h.attachAccessToken)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
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

// OnSessionExpired implements [ServerAdapter].
func (h *httpServerAdapter) OnSessionExpired(fn func()) {
	h.refresher.setOnExpired(fn)
}

// attachAccessToken is the before-request hook. A request that already has
// an Authorization header (a replay) is left alone.
func (h *httpServerAdapter) attachAccessToken(_ *resty.Client, req *resty.Request) error {
	if !isAuthed(req.Context()) || req.Header.Get("Authorization") != "" {
		return nil
	}

	session, err := h.tokens.Load(req.Context())
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}
	if session.AccessToken != "" {
		req.SetHeader("Authorization", bearer(session.AccessToken))
	}
	return nil
}

// call is one API request. A nil result discards the response body.
type call struct {
	method string
	path   string
	query  map[string]string
	body   any
	result any
}

func (h *httpServerAdapter) request(ctx context.Context, c call) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if c.query != nil {
		req.SetQueryParams(c.query)
	}
	if c.body != nil {
		req.SetBody(c.body)
	}
	if c.result != nil {
		req.SetResult(c.result)
	}
	return req
}

// doPublic sends c without credentials.
func (h *httpServerAdapter) doPublic(ctx context.Context, c call) error {
	resp, err := h.request(ctx, c).Execute(c.method, c.path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", c.method, c.path, err)
	}
	return mapHTTPError(resp)
}

// doAuthed sends c with the stored access token. On a 401 it refreshes the
// token and replays the request exactly once; a second 401 is returned as is.
func (h *httpServerAdapter) doAuthed(ctx context.Context, c call) error {
	ctx = withAuth(ctx)

	resp, err := h.request(ctx, c).Execute(c.method, c.path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", c.method, c.path, err)
	}
	if resp.StatusCode() != http.StatusUnauthorized {
		return mapHTTPError(resp)
	}

	stale := strings.TrimPrefix(resp.Request.Header.Get("Authorization"), bearerPrefix)
	token, err := h.refresher.Refresh(ctx, stale)
	if err != nil {
		return err
	}

	resp, err = h.request(ctx, c).SetHeader("Authorization", bearer(token)).Execute(c.method, c.path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", c.method, c.path, err)
	}
	return mapHTTPError(resp)
}

// Login implements [ServerAdapter].
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.TokenPair, error) {
	var pair models.TokenPair
	if err := h.doPublic(ctx, call{method: http.MethodPost, path: "/auth/login", body: credentials, result: &pair}); err != nil {
		return models.TokenPair{}, err
	}

	session := models.Session{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken, UserEmail: credentials.Email}
	if err := h.tokens.Save(ctx, session); err != nil {
		return models.TokenPair{}, fmt.Errorf("saving session: %w", err)
	}

	return pair, nil
}

// Register implements [ServerAdapter].
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	var created models.User
	err := h.doPublic(ctx, call{method: http.MethodPost, path: "/user", body: user, result: &created})
	return created, err
}

// Logout implements [ServerAdapter].
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	err := h.doAuthed(ctx, call{method: http.MethodPost, path: "/auth/logout"})

	if clearErr := h.tokens.Clear(ctx); clearErr != nil {
		h.logger.Err(clearErr).Msg("clearing session failed")
	}

	if errors.Is(err, ErrSessionExpired) {
		return nil
	}
	return err
}

// Profile implements [ServerAdapter].
func (h *httpServerAdapter) Profile(ctx context.Context) (models.User, error) {
	var user models.User
	err := h.doAuthed(ctx, call{method: http.MethodGet, path: "/auth/profile", result: &user})
	return user, err
}

// UpdateProfile implements [ServerAdapter].
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, update models.UserUpdate) (models.User, error) {
	var user models.User
	err := h.doAuthed(ctx, call{method: http.MethodPatch, path: "/user", body: update, result: &user})
	return user, err
}

// DeleteAccount implements [ServerAdapter].
func (h *httpServerAdapter) DeleteAccount(ctx context.Context, userID int64) error {
	if err := h.doAuthed(ctx, call{method: http.MethodDelete, path: resourcePath("/user", userID)}); err != nil {
		return err
	}
	return h.tokens.Clear(ctx)
}

// ListBankAccounts implements [ServerAdapter].
func (h *httpServerAdapter) ListBankAccounts(ctx context.Context) ([]models.BankAccount, error) {
	var accounts []models.BankAccount
	err := h.doAuthed(ctx, call{method: http.MethodGet, path: "/bank-account", result: &accounts})
	return accounts, err
}

// CreateBankAccount implements [ServerAdapter].
func (h *httpServerAdapter) CreateBankAccount(ctx context.Context, account models.BankAccount) (models.BankAccount, error) {
	var created models.BankAccount
	err := h.doAuthed(ctx, call{method: http.MethodPost, path: "/bank-account", body: account, result: &created})
	return created, err
}

// UpdateBankAccount implements [ServerAdapter].
func (h *httpServerAdapter) UpdateBankAccount(ctx context.Context, id int64, update models.BankAccountUpdate) (models.BankAccount, error) {
	var updated models.BankAccount
	err := h.doAuthed(ctx, call{method: http.MethodPatch, path: resourcePath("/bank-account", id), body: update, result: &updated})
	return updated, err
}

// DeleteBankAccount implements [ServerAdapter].
func (h *httpServerAdapter) DeleteBankAccount(ctx context.Context, id int64) error {
	return h.doAuthed(ctx, call{method: http.MethodDelete, path: resourcePath("/bank-account", id)})
}

// ListCategories implements [ServerAdapter].
func (h *httpServerAdapter) ListCategories(ctx context.Context, page models.PageRequest) (models.Page[models.Category], error) {
	var result models.Page[models.Category]
	err := h.doAuthed(ctx, call{method: http.MethodGet, path: "/category", query: pageQuery(page), result: &result})
	return result, err
}

// CreateCategory implements [ServerAdapter].
func (h *httpServerAdapter) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	var created models.Category
	err := h.doAuthed(ctx, call{method: http.MethodPost, path: "/category", body: category, result: &created})
	return created, err
}

// UpdateCategory implements [ServerAdapter].
func (h *httpServerAdapter) UpdateCategory(ctx context.Context, id int64, update models.CategoryUpdate) (models.Category, error) {
	var updated models.Category
	err := h.doAuthed(ctx, call{method: http.MethodPatch, path: resourcePath("/category", id), body: update, result: &updated})
	return updated, err
}

// DeleteCategory implements [ServerAdapter].
func (h *httpServerAdapter) DeleteCategory(ctx context.Context, id int64) error {
	return h.doAuthed(ctx, call{method: http.MethodDelete, path: resourcePath("/category", id)})
}

// ListTransactions implements [ServerAdapter].
func (h *httpServerAdapter) ListTransactions(ctx context.Context, page models.PageRequest) (models.Page[models.Transaction], error) {
	var result models.Page[models.Transaction]
	err := h.doAuthed(ctx, call{method: http.MethodGet, path: "/transaction", query: pageQuery(page), result: &result})
	return result, err
}

// CreateTransaction implements [ServerAdapter].
func (h *httpServerAdapter) CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error) {
	var created models.Transaction
	err := h.doAuthed(ctx, call{method: http.MethodPost, path: "/transaction", body: transaction, result: &created})
	return created, err
}

// UpdateTransaction implements [ServerAdapter].
func (h *httpServerAdapter) UpdateTransaction(ctx context.Context, id int64, update models.TransactionUpdate) (models.Transaction, error) {
	var updated models.Transaction
	err := h.doAuthed(ctx, call{method: http.MethodPatch, path: resourcePath("/transaction", id), body: update, result: &updated})
	return updated, err
}

// DeleteTransaction implements [ServerAdapter].
func (h *httpServerAdapter) DeleteTransaction(ctx context.Context, id int64) error {
	return h.doAuthed(ctx, call{method: http.MethodDelete, path: resourcePath("/transaction", id)})
}

// Dashboard implements [ServerAdapter].
func (h *httpServerAdapter) Dashboard(ctx context.Context) (models.Dashboard, error) {
	var dashboard models.Dashboard
	err := h.doAuthed(ctx, call{method: http.MethodGet, path: "/dashboard/data", result: &dashboard})
	return dashboard, err
}

// Version implements [ServerAdapter]. The endpoint answers in plain text.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).SetHeader("Accept", "text/plain").Get("/version")
	if err != nil {
		return "", fmt.Errorf("GET /version: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func resourcePath(collection string, id int64) string {
	return collection + "/" + strconv.FormatInt(id, 10)
}

func pageQuery(page models.PageRequest) map[string]string {
	query := map[string]string{}
	if page.Page > 0 {
		query["page"] = strconv.Itoa(page.Page)
	}
	if page.Limit > 0 {
		query["limit"] = strconv.Itoa(page.Limit)
	}
	if page.Search != "" {
		query["search"] = page.Search
	}
	return query
}
