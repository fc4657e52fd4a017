package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/litogalan/portfolio-cms/internal/api/metrics"
	"github.com/litogalan/portfolio-cms/internal/api/middleware"
	"github.com/litogalan/portfolio-cms/internal/core/domain"
	"github.com/litogalan/portfolio-cms/internal/core/ports"
)

type stubProjectService struct {
	createFn func(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error)
	updateFn func(ctx context.Context, input ports.UpdateProjectInput) (*domain.Project, error)
}

func (s *stubProjectService) Create(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	return s.createFn(ctx, input)
}

func (s *stubProjectService) List(context.Context) ([]domain.Project, error) {
	return nil, nil
}

func (s *stubProjectService) Get(context.Context, string) (*domain.Project, error) {
	return nil, domain.ErrProjectNotFound
}

func (s *stubProjectService) Update(ctx context.Context, input ports.UpdateProjectInput) (*domain.Project, error) {
	return s.updateFn(ctx, input)
}

func (s *stubProjectService) Delete(context.Context, string, domain.AuthClaims) error {
	return nil
}

// projectForm builds a multipart body with the given text fields and an
// optional image part.
func projectForm(t *testing.T, withImage bool) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("title", "Portfolio Site"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := mw.WriteField("description", "Personal portfolio"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if withImage {
		fw, err := mw.CreateFormFile("image", "cover.png")
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := fw.Write([]byte("not-a-real-png")); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func projectContext(e *echo.Echo, method, target string, body *bytes.Buffer, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserID, "user_1")
	c.Set(middleware.CtxEmail, "owner@example.com")
	c.Set(middleware.CtxIsAdmin, true)
	return c, rec
}

func TestProjectHandler_Create_CountsAssetUpload(t *testing.T) {
	e := newTestEcho()
	stub := &stubProjectService{
		createFn: func(_ context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
			if input.Image == nil {
				t.Fatal("expected image to reach the service")
			}
			return &domain.Project{ID: "proj_1", Title: input.Title}, nil
		},
	}
	handler := NewProjectHandler(stub)

	counter := metrics.AssetUploadsTotal.WithLabelValues("portfolio_projects")
	before := testutil.ToFloat64(counter)

	body, contentType := projectForm(t, true)
	c, rec := projectContext(e, http.MethodPost, "/projects/create", body, contentType)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Fatalf("expected asset upload counter to grow by 1, grew by %v", got)
	}
}

func TestProjectHandler_Create_NoImageSkipsAssetCounter(t *testing.T) {
	e := newTestEcho()
	stub := &stubProjectService{
		createFn: func(_ context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
			return &domain.Project{ID: "proj_2", Title: input.Title}, nil
		},
	}
	handler := NewProjectHandler(stub)

	counter := metrics.AssetUploadsTotal.WithLabelValues("portfolio_projects")
	before := testutil.ToFloat64(counter)

	body, contentType := projectForm(t, false)
	c, rec := projectContext(e, http.MethodPost, "/projects/create", body, contentType)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got := testutil.ToFloat64(counter) - before; got != 0 {
		t.Fatalf("expected asset upload counter unchanged, grew by %v", got)
	}
}

func TestProjectHandler_Update_CountsAssetUpload(t *testing.T) {
	e := newTestEcho()
	stub := &stubProjectService{
		updateFn: func(_ context.Context, input ports.UpdateProjectInput) (*domain.Project, error) {
			return &domain.Project{ID: input.ID, Title: input.Title}, nil
		},
	}
	handler := NewProjectHandler(stub)

	counter := metrics.AssetUploadsTotal.WithLabelValues("portfolio_projects")
	before := testutil.ToFloat64(counter)

	body, contentType := projectForm(t, true)
	c, rec := projectContext(e, http.MethodPut, "/projects/proj_1", body, contentType)
	c.SetParamNames("id")
	c.SetParamValues("proj_1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Fatalf("expected asset upload counter to grow by 1, grew by %v", got)
	}
}
