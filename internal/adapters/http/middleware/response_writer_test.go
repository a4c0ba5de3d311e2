package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatusRecorder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		write         func(w http.ResponseWriter)
		wantStatus    int
		wantBytes     int64
		wantCommitted bool
	}{
		{
			name:       "nothing written",
			write:      func(http.ResponseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name:          "explicit status",
			write:         func(w http.ResponseWriter) { w.WriteHeader(http.StatusAccepted) },
			wantStatus:    http.StatusAccepted,
			wantCommitted: true,
		},
		{
			name: "second status ignored",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus:    http.StatusUnprocessableEntity,
			wantCommitted: true,
		},
		{
			name: "body implies 200",
			write: func(w http.ResponseWriter) {
				_, _ = w.Write([]byte(`{"action":`))
				_, _ = w.Write([]byte(`"x"}`))
			},
			wantStatus:    http.StatusOK,
			wantBytes:     14,
			wantCommitted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			sr := record(rec)
			tt.write(sr)

			if got := sr.Status(); got != tt.wantStatus {
				t.Errorf("Status() = %d, want %d", got, tt.wantStatus)
			}
			if sr.bytes != tt.wantBytes {
				t.Errorf("bytes = %d, want %d", sr.bytes, tt.wantBytes)
			}
			if got := sr.Committed(); got != tt.wantCommitted {
				t.Errorf("Committed() = %v, want %v", got, tt.wantCommitted)
			}
			if tt.wantCommitted && rec.Code != tt.wantStatus {
				t.Errorf("forwarded status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestStatusRecorder_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	if got := record(rec).Unwrap(); got != rec {
		t.Error("Unwrap() did not return the wrapped writer")
	}
}
