package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pcbuild_configurator/internal/adapter/http/handlers/mocks"
	"pcbuild_configurator/internal/domain/entities"
	"pcbuild_configurator/internal/infrastructure/remote"
	"pcbuild_configurator/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newBuildRouter(h *BuildHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/builds", h.CreateSession)
	r.GET("/v1/builds/:session_id", h.GetSession)
	r.POST("/v1/builds/:session_id/platform", h.SelectPlatform)
	r.PUT("/v1/builds/:session_id/components", h.AddComponent)
	r.DELETE("/v1/builds/:session_id/components", h.RemoveComponent)
	r.POST("/v1/builds/:session_id/step", h.ChangeStep)
	r.POST("/v1/builds/:session_id/abandon", h.Abandon)
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v (%s)", err, w.Body.String())
	}
	return body
}

func activeSession() entities.BuildSession {
	now := time.Now().UTC()
	return entities.BuildSession{
		ID:            "s-1",
		Step:          entities.StepComponents,
		Lifecycle:     entities.LifecycleActive,
		Configuration: &entities.Configuration{ID: "cfg-1", Platform: entities.PlatformIntel},
		CreatedAt:     now,
		UpdatedAt:     now,
		ExpiresAt:     now.Add(time.Hour),
	}
}

func TestBuildHandler_CreateSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		wf := mocks.NewMockIWorkflowController(ctrl)
		h := NewBuildHandler(wf, mocks.NewMockIConfigurationStore(ctrl), usecase.ReviewGateStrict, nil)

		wf.EXPECT().Start(gomock.Any()).Return(entities.BuildSession{ID: "s-1", Step: entities.StepPlatform, Lifecycle: entities.LifecycleDraft}, nil)

		w := serve(newBuildRouter(h), http.MethodPost, "/v1/builds", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["session_id"] != "s-1" || body["step"] != "platform" || body["lifecycle"] != "draft" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		wf := mocks.NewMockIWorkflowController(ctrl)
		h := NewBuildHandler(wf, mocks.NewMockIConfigurationStore(ctrl), "", nil)

		wf.EXPECT().Start(gomock.Any()).Return(entities.BuildSession{}, errors.New("dynamodb down"))

		w := serve(newBuildRouter(h), http.MethodPost, "/v1/builds", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "INTERNAL_ERROR" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestBuildHandler_GetSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{"found", nil, http.StatusOK, ""},
		{"not found", usecase.ErrSessionNotFound, http.StatusNotFound, "BUILD_SESSION_NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			wf := mocks.NewMockIWorkflowController(ctrl)
			h := NewBuildHandler(wf, mocks.NewMockIConfigurationStore(ctrl), usecase.ReviewGateObserved, nil)

			if tt.err != nil {
				wf.EXPECT().Get(gomock.Any(), "s-1").Return(entities.BuildSession{}, tt.err)
			} else {
				wf.EXPECT().Get(gomock.Any(), "s-1").Return(activeSession(), nil)
			}

			w := serve(newBuildRouter(h), http.MethodGet, "/v1/builds/s-1", "")
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, w.Code)
			}
			body := decodeBody(t, w)
			if tt.wantErr != "" {
				if body["code"] != tt.wantErr {
					t.Fatalf("expected %s, got %v", tt.wantErr, body)
				}
				return
			}
			cfg, ok := body["configuration"].(map[string]any)
			if !ok || cfg["id"] != "cfg-1" {
				t.Fatalf("expected configuration in body: %v", body)
			}
			if missing, _ := body["missing_required"].([]any); len(missing) != 2 {
				t.Fatalf("expected 2 missing categories, got %v", body["missing_required"])
			}
		})
	}
}

func TestBuildHandler_SelectPlatform(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewBuildHandler(mocks.NewMockIWorkflowController(ctrl), mocks.NewMockIConfigurationStore(ctrl), "", nil)

		w := serve(newBuildRouter(h), http.MethodPost, "/v1/builds/s-1/platform", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing platform", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewBuildHandler(mocks.NewMockIWorkflowController(ctrl), mocks.NewMockIConfigurationStore(ctrl), "", nil)

		w := serve(newBuildRouter(h), http.MethodPost, "/v1/builds/s-1/platform", `{"use_case":"Gaming"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("command forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		wf := mocks.NewMockIWorkflowController(ctrl)
		h := NewBuildHandler(wf, mocks.NewMockIConfigurationStore(ctrl), "", nil)

		want := usecase.CreateConfigurationCommand{Platform: "intel", UseCase: "Gaming", BudgetTarget: 1500, ConfigName: "Rig"}
		wf.EXPECT().SelectPlatform(gomock.Any(), "s-1", want).Return(activeSession(), nil)

		w := serve(newBuildRouter(h), http.MethodPost, "/v1/builds/s-1/platform",
			`{"platform":"intel","use_case":"Gaming","budget_target":1500,"config_name":"Rig"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("platform locked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		wf := mocks.NewMockIWorkflowController(ctrl)
		h := NewBuildHandler(wf, mocks.NewMockIConfigurationStore(ctrl), "", nil)

		wf.EXPECT().SelectPlatform(gomock.Any(), "s-1", gomock.Any()).Return(entities.BuildSession{}, usecase.ErrPlatformLocked)

		w := serve(newBuildRouter(h), http.MethodPost, "/v1/builds/s-1/platform", `{"platform":"amd"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "PLATFORM_LOCKED" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("remote create failure carries service message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		wf := mocks.NewMockIWorkflowController(ctrl)
		h := NewBuildHandler(wf, mocks.NewMockIConfigurationStore(ctrl), "", nil)

		cause := &remote.Error{Op: "create", Method: http.MethodPost, Path: "/configuration", StatusCode: 400, Message: "Invalid platform"}
		wf.EXPECT().SelectPlatform(gomock.Any(), "s-1", gomock.Any()).Return(entities.BuildSession{}, fmt.Errorf("%w: %w", usecase.ErrRemoteCreate, cause))

		w := serve(newBuildRouter(h), http.MethodPost, "/v1/builds/s-1/platform", `{"platform":"intel"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["code"] != "CONFIGURATION_CREATE_FAILED" || body["message"] != "Invalid platform" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestBuildHandler_AddComponent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewBuildHandler(mocks.NewMockIWorkflowController(ctrl), mocks.NewMockIConfigurationStore(ctrl), "", nil)

		w := serve(newBuildRouter(h), http.MethodPut, "/v1/builds/s-1/components", `{"component_type":"memory"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("selection forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockIConfigurationStore(ctrl)
		h := NewBuildHandler(mocks.NewMockIWorkflowController(ctrl), store, "", nil)

		store.EXPECT().AddComponent(gomock.Any(), "s-1", "memory", "ram-1", 2).Return(activeSession(), nil)

		w := serve(newBuildRouter(h), http.MethodPut, "/v1/builds/s-1/components", `{"component_type":"memory","product_id":"ram-1","quantity":2}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("remote mutation failure falls back to generic message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockIConfigurationStore(ctrl)
		h := NewBuildHandler(mocks.NewMockIWorkflowController(ctrl), store, "", nil)

		store.EXPECT().AddComponent(gomock.Any(), "s-1", "processor", "cpu-1", 0).
			Return(entities.BuildSession{}, fmt.Errorf("%w: %w", usecase.ErrRemoteMutation, errors.New("connection reset")))

		w := serve(newBuildRouter(h), http.MethodPut, "/v1/builds/s-1/components", `{"component_type":"processor","product_id":"cpu-1"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["message"] != "Failed to update configuration" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("closed session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockIConfigurationStore(ctrl)
		h := NewBuildHandler(mocks.NewMockIWorkflowController(ctrl), store, "", nil)

		store.EXPECT().AddComponent(gomock.Any(), "s-1", "processor", "cpu-1", 1).Return(entities.BuildSession{}, usecase.ErrSessionClosed)

		w := serve(newBuildRouter(h), http.MethodPut, "/v1/builds/s-1/components", `{"component_type":"processor","product_id":"cpu-1","quantity":1}`)
		if w.Code != http.StatusGone {
			t.Fatalf("expected 410, got %d", w.Code)
		}
	})
}

func TestBuildHandler_RemoveComponent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("storage index forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockIConfigurationStore(ctrl)
		h := NewBuildHandler(mocks.NewMockIWorkflowController(ctrl), store, "", nil)

		store.EXPECT().RemoveComponent(gomock.Any(), "s-1", "storage", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ string, idx *int) (entities.BuildSession, error) {
				if idx == nil || *idx != 1 {
					t.Fatalf("expected storage index 1, got %v", idx)
				}
				return activeSession(), nil
			},
		)

		w := serve(newBuildRouter(h), http.MethodDelete, "/v1/builds/s-1/components", `{"component_type":"storage","storage_index":1}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockIConfigurationStore(ctrl)
		h := NewBuildHandler(mocks.NewMockIWorkflowController(ctrl), store, "", nil)

		store.EXPECT().RemoveComponent(gomock.Any(), "s-1", "storage", gomock.Any()).Return(entities.BuildSession{}, usecase.ErrStorageIndexOutOfRange)

		w := serve(newBuildRouter(h), http.MethodDelete, "/v1/builds/s-1/components", `{"component_type":"storage","storage_index":9}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "STORAGE_INDEX_OUT_OF_RANGE" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestBuildHandler_ChangeStepAndAbandon(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"advanced", nil, http.StatusOK},
		{"review gate", usecase.ErrReviewGate, http.StatusUnprocessableEntity},
		{"bad transition", usecase.ErrInvalidTransition, http.StatusConflict},
		{"unknown step", usecase.ErrInvalidStep, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			wf := mocks.NewMockIWorkflowController(ctrl)
			h := NewBuildHandler(wf, mocks.NewMockIConfigurationStore(ctrl), "", nil)

			out := activeSession()
			out.Step = entities.StepReview
			if tt.err != nil {
				out = entities.BuildSession{}
			}
			wf.EXPECT().Advance(gomock.Any(), "s-1", "review").Return(out, tt.err)

			w := serve(newBuildRouter(h), http.MethodPost, "/v1/builds/s-1/step", `{"step":"review"}`)
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, w.Code)
			}
		})
	}

	t.Run("abandon", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		wf := mocks.NewMockIWorkflowController(ctrl)
		h := NewBuildHandler(wf, mocks.NewMockIConfigurationStore(ctrl), "", nil)

		out := activeSession()
		out.Lifecycle = entities.LifecycleAbandoned
		wf.EXPECT().Abandon(gomock.Any(), "s-1").Return(out, nil)

		w := serve(newBuildRouter(h), http.MethodPost, "/v1/builds/s-1/abandon", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["lifecycle"] != "abandoned" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
