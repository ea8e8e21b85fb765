package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/readyz" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr string
	}{
		{name: "ready", args: []string{srv.URL + "/readyz"}, want: 0},
		{name: "unavailable", args: []string{srv.URL + "/healthz"}, want: 1, wantErr: "status 503"},
		{name: "unreachable", args: []string{"--timeout", "200ms", "http://127.0.0.1:1/readyz"}, want: 1, wantErr: "healthcheck failed"},
		{name: "bad flag", args: []string{"--nope"}, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stderr := &bytes.Buffer{}
			if got := run(tt.args, stderr); got != tt.want {
				t.Fatalf("run() = %d, want %d (stderr: %s)", got, tt.want, stderr)
			}
			if tt.wantErr != "" && !strings.Contains(stderr.String(), tt.wantErr) {
				t.Fatalf("stderr = %q, want %q", stderr, tt.wantErr)
			}
		})
	}
}
