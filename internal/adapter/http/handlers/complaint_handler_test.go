package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"urb_denuncias/internal/adapter/http/handlers/mocks"
	"urb_denuncias/internal/domain/entities"
	"urb_denuncias/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestComplaintHandler_CreateComplaint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplaintUseCase(ctrl)
		h := NewComplaintHandler(uc)

		r := gin.New()
		r.POST("/v1/complaints", h.CreateComplaint)

		req := httptest.NewRequest(http.MethodPost, "/v1/complaints", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplaintUseCase(ctrl)
		h := NewComplaintHandler(uc)

		r := gin.New()
		r.POST("/v1/complaints", h.CreateComplaint)

		req := httptest.NewRequest(http.MethodPost, "/v1/complaints", bytes.NewBufferString(`{"origin":"Telefone"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplaintUseCase(ctrl)
		h := NewComplaintHandler(uc)

		r := gin.New()
		r.POST("/v1/complaints", h.CreateComplaint)

		uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(entities.Complaint{}, usecase.ErrMissingFields)

		req := httptest.NewRequest(http.MethodPost, "/v1/complaints", bytes.NewBufferString(`{"origin":"Telefone","description":"   "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplaintUseCase(ctrl)
		h := NewComplaintHandler(uc)

		r := gin.New()
		r.POST("/v1/complaints", h.CreateComplaint)

		uc.EXPECT().Register(gomock.Any(), gomock.AssignableToTypeOf(entities.Complaint{})).DoAndReturn(
			func(_ context.Context, c entities.Complaint) (entities.Complaint, error) {
				if c.Origin != "Telefone" || c.Description != "entulho na via" {
					t.Fatalf("unexpected entity: %+v", c)
				}
				c.ID = 1
				c.ExternalID = "0001/2026"
				c.Status = entities.ComplaintStatusPendente
				return c, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/complaints", bytes.NewBufferString(`{"origin":"Telefone","description":"entulho na via"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["external_id"] != "0001/2026" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestComplaintHandler_GetAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get bad id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplaintUseCase(ctrl)
		h := NewComplaintHandler(uc)

		r := gin.New()
		r.GET("/v1/complaints/:id", h.GetComplaint)

		req := httptest.NewRequest(http.MethodGet, "/v1/complaints/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplaintUseCase(ctrl)
		h := NewComplaintHandler(uc)

		r := gin.New()
		r.GET("/v1/complaints/:id", h.GetComplaint)
		uc.EXPECT().GetByID(gomock.Any(), 9).Return(entities.Complaint{}, usecase.ErrComplaintNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/complaints/9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplaintUseCase(ctrl)
		h := NewComplaintHandler(uc)

		r := gin.New()
		r.DELETE("/v1/complaints/:id", h.DeleteComplaint)
		uc.EXPECT().Delete(gomock.Any(), 2).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/complaints/2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestComplaintHandler_ChangeStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplaintUseCase(ctrl)
		h := NewComplaintHandler(uc)

		r := gin.New()
		r.PATCH("/v1/complaints/:id/status", h.ChangeStatus)
		uc.EXPECT().ChangeStatus(gomock.Any(), 1, entities.ComplaintStatus("Cancelada")).Return(entities.Complaint{}, usecase.ErrInvalidStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/complaints/1/status", bytes.NewBufferString(`{"status":"Cancelada"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplaintUseCase(ctrl)
		h := NewComplaintHandler(uc)

		r := gin.New()
		r.PATCH("/v1/complaints/:id/status", h.ChangeStatus)
		uc.EXPECT().ChangeStatus(gomock.Any(), 1, entities.ComplaintStatusConcluida).Return(entities.Complaint{ID: 1, Status: entities.ComplaintStatusConcluida}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/complaints/1/status", bytes.NewBufferString(`{"status":"Concluída"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestComplaintHandler_AddReincidence(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplaintUseCase(ctrl)
		h := NewComplaintHandler(uc)

		r := gin.New()
		r.POST("/v1/complaints/:id/reincidences", h.AddReincidence)

		req := httptest.NewRequest(http.MethodPost, "/v1/complaints/1/reincidences", bytes.NewBufferString(`{"origin":"Telefone"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplaintUseCase(ctrl)
		h := NewComplaintHandler(uc)

		r := gin.New()
		r.POST("/v1/complaints/:id/reincidences", h.AddReincidence)
		uc.EXPECT().AppendReincidence(gomock.Any(), 1, "Telefone", "voltou").Return(entities.Complaint{
			ID:     1,
			Status: entities.ComplaintStatusEmAndamento,
			Reincidences: []entities.Reincidence{
				{Timestamp: "2026-04-01 10:00:00", Origin: "Telefone", Description: "voltou"},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/complaints/1/reincidences", bytes.NewBufferString(`{"origin":"Telefone","description":"voltou"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "Em Andamento" {
			t.Fatalf("expected reopened case in body: %s", w.Body.String())
		}
	})
}

func TestComplaintHandler_UploadPhoto(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplaintUseCase(ctrl)
		h := NewComplaintHandler(uc)

		r := gin.New()
		r.POST("/v1/complaints/:id/photos", h.UploadPhoto)

		req := httptest.NewRequest(http.MethodPost, "/v1/complaints/1/photos", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplaintUseCase(ctrl)
		h := NewComplaintHandler(uc)

		r := gin.New()
		r.POST("/v1/complaints/:id/photos", h.UploadPhoto)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile("photo", "evidencia.jpg")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		if _, err := fw.Write([]byte("jpegdata")); err != nil {
			t.Fatalf("write: %v", err)
		}
		mw.Close()

		uc.EXPECT().AttachPhoto(gomock.Any(), 1, "evidencia.jpg", gomock.Any(), int64(8), gomock.Any()).
			Return(entities.Complaint{ID: 1, Photos: []string{"uploads/evidencia.jpg"}}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/complaints/1/photos", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestComplaintHandler_ListOptions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIComplaintUseCase(ctrl)
	h := NewComplaintHandler(uc)

	r := gin.New()
	r.GET("/v1/options", h.ListOptions)

	req := httptest.NewRequest(http.MethodGet, "/v1/options", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if _, ok := body["origins"]; !ok {
		t.Fatalf("expected origins in body: %s", w.Body.String())
	}
}

func TestMapComplaintError(t *testing.T) {
	if got := mapComplaintError(usecase.ErrInvalidComplaintID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapComplaintError(usecase.ErrMissingFields); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapComplaintError(usecase.ErrInvalidReincidence); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapComplaintError(usecase.ErrInvalidStatus); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapComplaintError(usecase.ErrComplaintNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapComplaintError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
