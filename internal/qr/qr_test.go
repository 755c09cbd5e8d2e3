package qr

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
)

func TestEncode(t *testing.T) {
	enc := NewEncoder()
	payload := Payload{
		OrderNo:    "3f1c2a9e",
		TotalCents: 1430,
		OrderType:  "dine_in",
		Tables:     []int{4, 5},
	}

	dataURL, raw, err := enc.Encode(payload)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(dataURL, prefix) {
		t.Fatalf("data URL prefix missing: %.40s", dataURL)
	}
	png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, prefix))
	if err != nil {
		t.Fatalf("data URL is not valid base64: %v", err)
	}
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Error("payload does not look like a PNG")
	}

	var decoded Payload
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("payload JSON: %v", err)
	}
	if decoded.OrderNo != payload.OrderNo || decoded.TotalCents != 1430 {
		t.Errorf("round trip got %+v", decoded)
	}
}

func TestEncodeOmitsEmptyTables(t *testing.T) {
	enc := NewEncoder()
	_, raw, err := enc.Encode(Payload{OrderNo: "x", TotalCents: 500, OrderType: "takeaway"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if strings.Contains(raw, "tables") {
		t.Errorf("takeaway payload should omit tables: %s", raw)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	enc := NewEncoder()
	p := Payload{OrderNo: "abc", TotalCents: 100, OrderType: "takeaway"}

	a1, r1, err := enc.Encode(p)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	a2, r2, err := enc.Encode(p)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if a1 != a2 || r1 != r2 {
		t.Error("same payload must encode identically")
	}
}
