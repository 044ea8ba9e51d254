package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, "Patient created successfully", map[string]int{"id": 1})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	resp := decodeBody(t, rec)
	if !resp.Success {
		t.Error("success flag should be true")
	}
	if resp.Message != "Patient created successfully" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.Data == nil {
		t.Error("data should be present")
	}
}

func TestErrorHelpers(t *testing.T) {
	cases := []struct {
		name     string
		fn       func(http.ResponseWriter, string)
		wantCode int
	}{
		{"BadRequest", BadRequest, http.StatusBadRequest},
		{"Unauthorized", Unauthorized, http.StatusUnauthorized},
		{"Forbidden", Forbidden, http.StatusForbidden},
		{"NotFound", NotFound, http.StatusNotFound},
		{"Conflict", Conflict, http.StatusConflict},
		{"InternalServerError", InternalServerError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.fn(rec, "")

			if rec.Code != tc.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			resp := decodeBody(t, rec)
			if resp.Success {
				t.Error("success flag should be false")
			}
			if resp.Message == "" {
				t.Error("default message should be filled in")
			}
		})
	}
}

func TestSuccessWithMeta(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessWithMeta(rec, http.StatusOK, "ok", []int{1, 2, 3}, NewMeta(2, 10, 35))

	resp := decodeBody(t, rec)
	if resp.Meta == nil {
		t.Fatal("meta should be present")
	}
	if resp.Meta.Page != 2 || resp.Meta.Limit != 10 || resp.Meta.Total != 35 {
		t.Errorf("meta = %+v", resp.Meta)
	}
	if resp.Meta.TotalPages != 4 {
		t.Errorf("total pages = %d, want 4", resp.Meta.TotalPages)
	}
}

func TestNewMetaZeroLimit(t *testing.T) {
	meta := NewMeta(1, 0, 10)
	if meta.TotalPages != 0 {
		t.Errorf("total pages with zero limit = %d, want 0", meta.TotalPages)
	}
}

func TestValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"Name": "Name is required"})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp.Message != "Validation failed" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.Error == nil {
		t.Error("error details should be present")
	}
}
