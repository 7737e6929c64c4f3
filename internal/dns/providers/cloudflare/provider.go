package cloudflare

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"cf_dns_manager/internal/dnstypes"
)

// DefaultAPIBase is the Cloudflare v4 API endpoint.
const DefaultAPIBase = "https://api.cloudflare.com/client/v4"

// DefaultTimeout bounds every request; the tool never retries.
const DefaultTimeout = 10 * time.Second

// ErrZoneNotFound is returned when the account has no zone matching the
// configured domain.
var ErrZoneNotFound = errors.New("zone not found")

// APIError is a structured error surfaced by the Cloudflare API, e.g. a
// record validation failure. Only the first error of the response list
// is kept.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Code == 0 {
		return fmt.Sprintf("cloudflare API error: %s", e.Message)
	}
	return fmt.Sprintf("cloudflare API error [%d]: %s", e.Code, e.Message)
}

// Zone identifies a resolved DNS zone. Immutable once resolved.
type Zone struct {
	ID     string
	Domain string
}

// Provider is the Cloudflare API client. It owns the base URL and the
// auth headers attached to every request.
type Provider struct {
	baseURL string
	email   string
	apiKey  string
	client  *http.Client
	log     logrus.FieldLogger
}

// New creates a Cloudflare DNS provider. baseURL may be empty to use
// DefaultAPIBase; timeout <= 0 falls back to DefaultTimeout.
func New(email, apiKey, baseURL string, timeout time.Duration, log logrus.FieldLogger) *Provider {
	if baseURL == "" {
		baseURL = DefaultAPIBase
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Provider{
		baseURL: baseURL,
		email:   email,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// apiResponse is the Cloudflare v4 response envelope.
type apiResponse struct {
	Success bool            `json:"success"`
	Errors  []responseError `json:"errors"`
	Result  json.RawMessage `json:"result"`
}

type responseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// firstError turns the envelope's error list into a single *APIError.
func firstError(errs []responseError) error {
	if len(errs) == 0 {
		return &APIError{Message: "unknown error"}
	}
	return &APIError{Code: errs[0].Code, Message: errs[0].Message}
}

// do executes one authenticated request and unwraps the response
// envelope, returning the raw result payload.
func (p *Provider) do(ctx context.Context, method, path string, payload interface{}) (json.RawMessage, error) {
	var bodyReader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Auth-Email", p.email)
	req.Header.Set("X-Auth-Key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var cfResp apiResponse
	if err := json.Unmarshal(body, &cfResp); err != nil {
		return nil, fmt.Errorf("failed to parse response (status %d): %w", resp.StatusCode, err)
	}

	if !cfResp.Success {
		err := firstError(cfResp.Errors)
		p.log.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
		}).Warn(err)
		return nil, err
	}

	return cfResp.Result, nil
}

// ResolveZone looks up the zone ID for a domain. The first match wins;
// zero matches yield ErrZoneNotFound.
func (p *Provider) ResolveZone(ctx context.Context, domain string) (Zone, error) {
	result, err := p.do(ctx, http.MethodGet, "/zones?name="+url.QueryEscape(domain), nil)
	if err != nil {
		return Zone{}, err
	}

	var zones []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(result, &zones); err != nil {
		return Zone{}, fmt.Errorf("failed to parse result: %w", err)
	}
	if len(zones) == 0 {
		return Zone{}, fmt.Errorf("%w: %s", ErrZoneNotFound, domain)
	}

	p.log.WithFields(logrus.Fields{"domain": domain, "zone_id": zones[0].ID}).Debug("zone resolved")
	return Zone{ID: zones[0].ID, Domain: domain}, nil
}

// ListRecords fetches all DNS records of a zone in one request.
func (p *Provider) ListRecords(ctx context.Context, zoneID string) ([]dnstypes.DNSRecord, error) {
	result, err := p.do(ctx, http.MethodGet, fmt.Sprintf("/zones/%s/dns_records", zoneID), nil)
	if err != nil {
		return nil, err
	}

	var records []dnstypes.DNSRecord
	if err := json.Unmarshal(result, &records); err != nil {
		return nil, fmt.Errorf("failed to parse result: %w", err)
	}
	return records, nil
}

// CreateRecord submits a new DNS record. The provider assigns the ID.
func (p *Provider) CreateRecord(ctx context.Context, zoneID string, fields dnstypes.RecordFields) error {
	if err := fields.Validate(); err != nil {
		return err
	}
	_, err := p.do(ctx, http.MethodPost, fmt.Sprintf("/zones/%s/dns_records", zoneID), fields)
	if err != nil {
		return err
	}
	p.log.WithFields(logrus.Fields{"type": fields.Type, "name": fields.Name}).Debug("record created")
	return nil
}

// UpdateRecord fully replaces the fields of an existing record; every
// field must be supplied, even unchanged ones.
func (p *Provider) UpdateRecord(ctx context.Context, zoneID, recordID string, fields dnstypes.RecordFields) error {
	if err := fields.Validate(); err != nil {
		return err
	}
	_, err := p.do(ctx, http.MethodPut, fmt.Sprintf("/zones/%s/dns_records/%s", zoneID, recordID), fields)
	if err != nil {
		return err
	}
	p.log.WithFields(logrus.Fields{"record_id": recordID}).Debug("record updated")
	return nil
}

// DeleteRecord removes a record by ID.
func (p *Provider) DeleteRecord(ctx context.Context, zoneID, recordID string) error {
	_, err := p.do(ctx, http.MethodDelete, fmt.Sprintf("/zones/%s/dns_records/%s", zoneID, recordID), nil)
	if err != nil {
		return err
	}
	p.log.WithFields(logrus.Fields{"record_id": recordID}).Debug("record deleted")
	return nil
}
