package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

type fakeStorageServer struct {
	mu       sync.Mutex
	requests []string
	bodies   []string
}

func (f *fakeStorageServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)
	f.bodies = append(f.bodies, string(body))
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"bucket":"reports","name":"object"}`)
}

func TestGCSReportSink_UploadsWithoutBucketLookup(t *testing.T) {
	fake := &fakeStorageServer{}
	srv := httptest.NewServer(fake)
	defer srv.Close()
	t.Setenv("STORAGE_EMULATOR_HOST", srv.URL)
	t.Setenv("GCS_CREDENTIALS_JSON", "")

	sink := &GCSReportSink{Bucket: "reports", Prefix: "runs"}
	defer sink.Close()

	ctx := context.Background()
	if err := sink.Put(ctx, "FullInventory.txt", []byte("A1,Acme\n"), ContentTypeText); err != nil {
		t.Fatalf("Put: %v", err)
	}
	first := sink.client
	if err := sink.Put(ctx, "DamagedInventory.txt", []byte("B1,Bolt\n"), ContentTypeText); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if sink.client == nil || sink.client != first {
		t.Fatalf("expected one storage client shared across uploads")
	}

	fake.mu.Lock()
	defer fake.mu.Unlock()
	uploads := 0
	for _, req := range fake.requests {
		if strings.HasPrefix(req, "GET ") && strings.HasSuffix(req, "/b/reports") {
			t.Fatalf("unexpected bucket metadata request %s", req)
		}
		if strings.HasPrefix(req, "POST ") && strings.Contains(req, "/b/reports/o") {
			uploads++
		}
	}
	if uploads != 2 {
		t.Fatalf("expected 2 uploads, got %v", fake.requests)
	}
	all := strings.Join(fake.bodies, "\n")
	for _, name := range []string{"runs/FullInventory.txt", "runs/DamagedInventory.txt"} {
		if !strings.Contains(all, name) {
			t.Fatalf("upload for %s not seen", name)
		}
	}
}

func TestGCSReportSink_CloseWithoutClient(t *testing.T) {
	sink := &GCSReportSink{Bucket: "reports"}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
