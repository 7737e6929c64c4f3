package dnstypes

import (
	"errors"
	"strings"
)

// DNSRecord represents one DNS record inside a zone, as returned by the
// provider. The snapshot held by the CLI is read-only; every mutation
// round-trips through the provider API.
type DNSRecord struct {
	ID       string `json:"id"`
	Type     string `json:"type"` // A, AAAA, CNAME, TXT, MX, ...
	Name     string `json:"name"`
	Content  string `json:"content"`
	TTL      int    `json:"ttl"` // seconds, 1 means "automatic"
	Priority *int   `json:"priority,omitempty"`
	Proxied  bool   `json:"proxied"`
}

// RecordFields is the request body for creating or fully replacing a
// record. Priority stays absent from the wire for non-MX types.
type RecordFields struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Content  string `json:"content"`
	TTL      int    `json:"ttl"`
	Priority *int   `json:"priority,omitempty"`
	Proxied  bool   `json:"proxied"`
}

// TTLAuto is the sentinel TTL meaning the provider manages the TTL.
const TTLAuto = 1

// IsMX reports whether the record type is MX, the one type that carries
// a priority.
func IsMX(recordType string) bool {
	return strings.EqualFold(recordType, "MX")
}

// Validate checks the invariants the provider would otherwise reject:
// a positive TTL and a priority present if and only if the type is MX.
func (f RecordFields) Validate() error {
	if f.Type == "" {
		return errors.New("record type is required")
	}
	if f.TTL < 1 {
		return errors.New("TTL must be a positive integer (1 for auto)")
	}
	if IsMX(f.Type) && f.Priority == nil {
		return errors.New("priority is required for MX records")
	}
	if !IsMX(f.Type) && f.Priority != nil {
		return errors.New("priority is only valid for MX records")
	}
	return nil
}
