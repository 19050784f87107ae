package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/retailhub/internal/client/models"
	"github.com/dmitrijs2005/retailhub/internal/common"
)

// RESTClient talks to the /users collection of the remote data service.
// All calls go through the AuthTransport envelope.
type RESTClient struct {
	baseURL string
	http    *http.Client
}

// NewRESTClient builds a client for the resource at baseURL. Every request
// is wrapped by AuthTransport: tokens provides the bearer credential and
// onAuthRejected is invoked when a call comes back 401.
//
// No explicit timeout is configured; calls rely on the underlying
// transport's default behavior.
func NewRESTClient(baseURL string, tokens TokenSource, onAuthRejected func()) *RESTClient {
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: &AuthTransport{Tokens: tokens, OnAuthRejected: onAuthRejected},
		},
	}
}

func (c *RESTClient) usersURL(query url.Values) string {
	u := c.baseURL + "/users"
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do executes the request and maps transport-level outcomes to sentinel
// errors: network failures and unexpected statuses become ErrUnavailable,
// 401 becomes ErrUnauthorized and 404 becomes ErrNotFound.
func (c *RESTClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return common.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return common.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: unexpected status %d", common.ErrUnavailable, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", common.ErrUnavailable, err)
	}
	return nil
}

func (c *RESTClient) getUsers(ctx context.Context, query url.Values) ([]models.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.usersURL(query), nil)
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := c.do(req, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *RESTClient) FindByCredentials(ctx context.Context, email, password string) ([]models.User, error) {
	q := url.Values{}
	q.Set("email", email)
	q.Set("password", password)
	return c.getUsers(ctx, q)
}

func (c *RESTClient) FindByEmail(ctx context.Context, email string) ([]models.User, error) {
	q := url.Values{}
	q.Set("email", email)
	return c.getUsers(ctx, q)
}

func (c *RESTClient) ListAll(ctx context.Context) ([]models.User, error) {
	return c.getUsers(ctx, nil)
}

func (c *RESTClient) ListPending(ctx context.Context) ([]models.User, error) {
	q := url.Values{}
	q.Set("isApproved", string(models.ApprovalNo))
	return c.getUsers(ctx, q)
}

func (c *RESTClient) Create(ctx context.Context, user models.User) (*models.User, error) {
	body, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.usersURL(nil), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var created models.User
	if err := c.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *RESTClient) Approve(ctx context.Context, id int) (*models.User, error) {
	body := []byte(fmt.Sprintf(`{"isApproved":%q}`, models.ApprovalYes))

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch,
		fmt.Sprintf("%s/users/%d", c.baseURL, id), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var updated models.User
	if err := c.do(req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *RESTClient) Delete(ctx context.Context, id int) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		fmt.Sprintf("%s/users/%d", c.baseURL, id), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}
