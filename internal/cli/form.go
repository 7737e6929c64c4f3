package cli

import (
	"fmt"
	"strconv"
	"strings"

	"cf_dns_manager/internal/dnstypes"
)

// promptCreateFields collects a full field set for a new record. Every
// field is prompted fresh; TTL defaults to the automatic sentinel, and
// an MX record requires an explicit priority. A closed input aborts
// the form with errInputClosed before anything is submitted.
func (a *App) promptCreateFields() (dnstypes.RecordFields, error) {
	var fields dnstypes.RecordFields

	recordType, err := a.prompt("Enter record type (A, AAAA, CNAME, TXT, etc.): ")
	if err != nil {
		return fields, err
	}
	fields.Type = strings.ToUpper(recordType)

	if fields.Name, err = a.prompt(fmt.Sprintf("Enter name (e.g. 'subdomain' for subdomain.%s): ", a.zone.Domain)); err != nil {
		return fields, err
	}
	if fields.Content, err = a.prompt("Enter content (e.g. IP address or another domain): "); err != nil {
		return fields, err
	}

	ttlStr, err := a.prompt("Enter TTL (in seconds, 1 for auto): ")
	if err != nil {
		return fields, err
	}
	fields.TTL = dnstypes.TTLAuto
	if ttlStr != "" {
		ttl, err := strconv.Atoi(ttlStr)
		if err != nil {
			return fields, fmt.Errorf("invalid TTL %q: must be an integer", ttlStr)
		}
		fields.TTL = ttl
	}

	if dnstypes.IsMX(fields.Type) {
		priorityStr, err := a.prompt("Enter priority: ")
		if err != nil {
			return fields, err
		}
		if priorityStr == "" {
			return fields, fmt.Errorf("priority is required for MX records")
		}
		priority, err := strconv.Atoi(priorityStr)
		if err != nil {
			return fields, fmt.Errorf("invalid priority %q: must be an integer", priorityStr)
		}
		fields.Priority = &priority
	}

	proxiedStr, err := a.prompt("Enable Cloudflare proxy? (yes/no): ")
	if err != nil {
		return fields, err
	}
	fields.Proxied = strings.EqualFold(proxiedStr, "yes")

	if err := fields.Validate(); err != nil {
		return fields, err
	}
	return fields, nil
}

// promptUpdateFields re-prompts every field showing the current value;
// a blank response keeps it. The result is the full replacement body,
// so leaving everything blank yields a no-op update. A closed input
// aborts the form with errInputClosed before anything is submitted.
func (a *App) promptUpdateFields(current dnstypes.DNSRecord) (dnstypes.RecordFields, error) {
	fmt.Fprintln(a.out, "\nUpdate DNS Record (press Enter to keep current value)")

	fields := dnstypes.RecordFields{
		Type:    current.Type,
		Name:    current.Name,
		Content: current.Content,
		TTL:     current.TTL,
		Proxied: current.Proxied,
	}

	recordType, err := a.prompt(fmt.Sprintf("Enter new type (%s): ", current.Type))
	if err != nil {
		return fields, err
	}
	if recordType != "" {
		fields.Type = strings.ToUpper(recordType)
	}

	name, err := a.prompt(fmt.Sprintf("Enter new name (%s): ", current.Name))
	if err != nil {
		return fields, err
	}
	if name != "" {
		fields.Name = name
	}

	content, err := a.prompt(fmt.Sprintf("Enter new content (%s): ", current.Content))
	if err != nil {
		return fields, err
	}
	if content != "" {
		fields.Content = content
	}

	ttlStr, err := a.prompt(fmt.Sprintf("Enter new TTL (%d): ", current.TTL))
	if err != nil {
		return fields, err
	}
	if ttlStr != "" {
		ttl, err := strconv.Atoi(ttlStr)
		if err != nil {
			return fields, fmt.Errorf("invalid TTL %q: must be an integer", ttlStr)
		}
		fields.TTL = ttl
	}

	if dnstypes.IsMX(fields.Type) {
		hint := ""
		if current.Priority != nil {
			hint = strconv.Itoa(*current.Priority)
		}
		priorityStr, err := a.prompt(fmt.Sprintf("Enter new priority (%s): ", hint))
		if err != nil {
			return fields, err
		}
		switch {
		case priorityStr != "":
			priority, err := strconv.Atoi(priorityStr)
			if err != nil {
				return fields, fmt.Errorf("invalid priority %q: must be an integer", priorityStr)
			}
			fields.Priority = &priority
		case current.Priority != nil:
			priority := *current.Priority
			fields.Priority = &priority
		default:
			return fields, fmt.Errorf("priority is required for MX records")
		}
	}

	hint := "no"
	if current.Proxied {
		hint = "yes"
	}
	proxiedStr, err := a.prompt(fmt.Sprintf("Enable Cloudflare proxy? (%s): ", hint))
	if err != nil {
		return fields, err
	}
	if proxiedStr != "" {
		fields.Proxied = strings.EqualFold(proxiedStr, "yes")
	}

	if err := fields.Validate(); err != nil {
		return fields, err
	}
	return fields, nil
}
