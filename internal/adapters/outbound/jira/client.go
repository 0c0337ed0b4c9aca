// Package jira implements domain.TicketTracker over the Jira Cloud REST API v2.
package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const issueFields = "summary,description,status,assignee,issuetype,priority"

// Client is a Jira REST client authenticated with an account email and API token.
type Client struct {
	baseURL  string
	email    string
	apiToken string
	timeout  time.Duration
	http     *http.Client
}

// NewClient creates a new Client. A non-positive timeout disables the per-call deadline.
func NewClient(baseURL, email, apiToken string, timeout time.Duration, httpClient *http.Client) Client {
	return Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		email:    email,
		apiToken: apiToken,
		timeout:  timeout,
		http:     httpClient,
	}
}

// GetTicket implements domain.TicketTracker.
func (c Client) GetTicket(ctx context.Context, key string) (domain.Ticket, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.String("ticket", key)))
	defer span.End()

	var issue issueResponse
	err := c.do(spanCtx, http.MethodGet, "/rest/api/2/issue/"+url.PathEscape(key)+"?fields="+issueFields, nil, &issue)
	if err = c.notFound(err, "ticket '%s' not found", key); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Ticket{}, err
	}
	return issue.toDomain(), nil
}

// AddComment implements domain.TicketTracker.
func (c Client) AddComment(ctx context.Context, key, text string) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.String("ticket", key)))
	defer span.End()

	err := c.do(spanCtx, http.MethodPost, "/rest/api/2/issue/"+url.PathEscape(key)+"/comment", commentRequest{Body: text}, nil)
	err = c.notFound(err, "ticket '%s' not found", key)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// TransitionToStatus looks up the transition by name, case-insensitively, and applies it.
func (c Client) TransitionToStatus(ctx context.Context, key, transitionName string) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("ticket", key),
		attribute.String("transition", transitionName),
	))
	defer span.End()

	var available transitionsResponse
	err := c.do(spanCtx, http.MethodGet, "/rest/api/2/issue/"+url.PathEscape(key)+"/transitions", nil, &available)
	if err = c.notFound(err, "ticket '%s' not found", key); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	var (
		id    string
		names []string
	)
	for _, t := range available.Transitions {
		names = append(names, t.Name)
		if strings.EqualFold(t.Name, transitionName) {
			id = t.ID
		}
	}
	if id == "" {
		err := domain.NewNotFoundErr(fmt.Sprintf(
			"transition '%s' is not available for %s (available: %s)",
			transitionName, key, strings.Join(names, ", "),
		))
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	err = c.do(spanCtx, http.MethodPost, "/rest/api/2/issue/"+url.PathEscape(key)+"/transitions", transitionRequest{
		Transition: transitionRef{ID: id},
	}, nil)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// notFound converts a 404 statusErr into a domain.NotFoundErr.
func (c Client) notFound(err error, format string, args ...any) error {
	if se, ok := err.(*statusErr); ok && se.code == http.StatusNotFound {
		return domain.NewNotFoundErr(fmt.Sprintf(format, args...))
	}
	return err
}

type statusErr struct {
	code   int
	status string
	body   string
}

func (e *statusErr) Error() string {
	return fmt.Sprintf("jira returned %s: %s", e.status, e.body)
}

func (c Client) do(ctx context.Context, method, path string, in, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.email, c.apiToken)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.NewDownstreamErr("jira request failed", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewDownstreamErr("read jira response", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &statusErr{code: resp.StatusCode, status: resp.Status, body: strings.TrimSpace(string(respBody))}
	}
	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return domain.NewDownstreamErr("decode jira response", err)
	}
	return nil
}

// InitTicketTracker registers the Jira client as the domain.TicketTracker.
type InitTicketTracker struct {
	HttpClient *http.Client  `resolve:""`
	BaseURL    string        `config:"JIRA_BASE_URL"`
	Email      string        `config:"JIRA_EMAIL"`
	APIToken   string        `config:"JIRA_API_TOKEN"`
	Timeout    time.Duration `config:"JIRA_TIMEOUT" default:"30s"`
}

// Initialize registers the TicketTracker in the dependency container.
func (i InitTicketTracker) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.TicketTracker](NewClient(i.BaseURL, i.Email, i.APIToken, i.Timeout, i.HttpClient))
	return ctx, nil
}
