package mcp

import (
	"encoding/json"
	"testing"
)

func TestMustStringUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    MustString
		wantErr bool
	}{
		{name: "string id", input: `"abc-123"`, want: "abc-123"},
		{name: "numeric id", input: `42`, want: "42"},
		{name: "zero id", input: `0`, want: "0"},
		{name: "bool id", input: `true`, wantErr: true},
		{name: "object id", input: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m MustString
			err := json.Unmarshal([]byte(tt.input), &m)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", m)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m != tt.want {
				t.Errorf("got %q, want %q", m, tt.want)
			}
		})
	}
}

func TestMustStringMarshal(t *testing.T) {
	bs, err := json.Marshal(MustString("7"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(bs) != `"7"` {
		t.Errorf("got %s, want %q", bs, `"7"`)
	}
}

func TestJSONRPCMessageNotificationRoundTrip(t *testing.T) {
	raw := `{"jsonrpc":"2.0","method":"initialized"}`

	var msg JSONRPCMessage
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.ID != "" {
		t.Errorf("expected empty ID for notification, got %q", msg.ID)
	}

	bs, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(bs, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := decoded["id"]; ok {
		t.Errorf("notification must not carry an id field, got %s", bs)
	}
}

func TestSessionInitializedOneWay(t *testing.T) {
	s := newSession()
	if s.isInitialized() {
		t.Fatal("new session must start uninitialized")
	}

	result := s.handleInitialize(Info{Name: "test", Version: "0.1.0"}, initializeParams{
		Capabilities: map[string]any{"roots": map[string]any{}},
	})
	if result.ProtocolVersion != ProtocolVersion {
		t.Errorf("got protocol version %q, want %q", result.ProtocolVersion, ProtocolVersion)
	}
	if result.ServerInfo.Name != "test" {
		t.Errorf("got server name %q, want %q", result.ServerInfo.Name, "test")
	}
	if s.isInitialized() {
		t.Error("initialize request must not move the session state")
	}

	s.handleInitialized()
	if !s.isInitialized() {
		t.Error("initialized notification must move the session state")
	}
}
