package dnstypes

import (
	"encoding/json"
	"strings"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		fields  RecordFields
		wantErr string
	}{
		{
			name:   "valid A record",
			fields: RecordFields{Type: "A", Name: "www", Content: "1.2.3.4", TTL: TTLAuto},
		},
		{
			name:   "valid MX record",
			fields: RecordFields{Type: "MX", Name: "mail", Content: "mail.example.com", TTL: 3600, Priority: intPtr(10)},
		},
		{
			name:    "MX without priority",
			fields:  RecordFields{Type: "MX", Name: "mail", Content: "mail.example.com", TTL: TTLAuto},
			wantErr: "priority is required",
		},
		{
			name:    "priority on non-MX type",
			fields:  RecordFields{Type: "A", Name: "www", Content: "1.2.3.4", TTL: TTLAuto, Priority: intPtr(5)},
			wantErr: "only valid for MX",
		},
		{
			name:    "zero TTL",
			fields:  RecordFields{Type: "A", Name: "www", Content: "1.2.3.4", TTL: 0},
			wantErr: "TTL must be",
		},
		{
			name:    "missing type",
			fields:  RecordFields{Name: "www", Content: "1.2.3.4", TTL: TTLAuto},
			wantErr: "type is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fields.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestRecordFieldsJSON_PriorityOmittedWhenAbsent(t *testing.T) {
	data, err := json.Marshal(RecordFields{Type: "A", Name: "www", Content: "1.2.3.4", TTL: TTLAuto})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(data), "priority") {
		t.Errorf("priority should be absent for non-MX bodies, got %s", data)
	}

	data, err = json.Marshal(RecordFields{Type: "MX", Name: "mail", Content: "mx.example.com", TTL: TTLAuto, Priority: intPtr(10)})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"priority":10`) {
		t.Errorf("priority should be present for MX bodies, got %s", data)
	}
}
