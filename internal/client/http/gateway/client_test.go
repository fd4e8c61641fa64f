package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stroyteam/supplydesk/internal/model"
)

type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) Token() (string, error) { return s.token, s.err }

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(srv.URL, 5*time.Second, staticTokens{token: "test-token"})
}

func TestClientHeaders(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		assert.Equal(t, "/api/Projects", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"ЖК Северный","address":"ул. Ленина, 1"}]`))
	})

	projects, err := c.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, int64(1), projects[0].ID)
	assert.Equal(t, "ЖК Северный", projects[0].Name)
}

func TestClientNoTokenNoRequest(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, 5*time.Second, staticTokens{err: model.ErrUnauthorized})

	_, err := c.ListProjects(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnauthorized)
	assert.Zero(t, hits.Load(), "no request may leave the client without a token")
}

func TestClientNoContent(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteSupply(context.Background(), 5))
}

func TestClientHTMLBodyIsInvalid(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<!DOCTYPE html><html><body>login</body></html>"))
	})

	_, err := c.ListSupplies(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidResponse)
}

func TestClientStatusMapping(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		status   int
		body     string
		sentinel error
	}

	tests := []testCase{
		{name: "401", status: http.StatusUnauthorized, sentinel: model.ErrUnauthorized},
		{name: "403", status: http.StatusForbidden, sentinel: model.ErrForbidden},
		{name: "404", status: http.StatusNotFound, sentinel: model.ErrNotFound},
		{name: "409", status: http.StatusConflict, sentinel: model.ErrConflict},
		{
			name:     "400 with server message",
			status:   http.StatusBadRequest,
			body:     `{"message":"Недопустимое количество"}`,
			sentinel: model.ErrValidation,
		},
		{name: "500", status: http.StatusInternalServerError, sentinel: model.ErrBadGateway},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			_, err := c.ListProjects(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.sentinel)
			if tc.body != "" {
				assert.Contains(t, err.Error(), "Недопустимое количество")
			}
		})
	}
}

func TestClientStatusNormalization(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"projectId":1,"deliveryStatus":"в пути","status":"создана"},
			{"id":2,"projectId":1,"status":"доставлено"},
			{"id":3,"projectId":1}
		]`))
	})

	supplies, err := c.ListSupplies(context.Background())
	require.NoError(t, err)
	require.Len(t, supplies, 3)

	assert.Equal(t, model.StatusInTransit, supplies[0].Status, "deliveryStatus wins")
	assert.Equal(t, model.StatusDelivered, supplies[1].Status, "status is the fallback")
	assert.Equal(t, model.StatusCreated, supplies[2].Status, "nothing set means created")
}

func TestCreateSupplyMultipart(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "7", r.FormValue("ProjectId"))
		assert.Equal(t, "Бетон М300", r.FormValue("SupplyName"))
		assert.Equal(t, "создана", r.FormValue("DeliveryStatus"))
		assert.Equal(t, "Цемент", r.FormValue("Materials[0].Name"))
		assert.Equal(t, "12.5", r.FormValue("Materials[0].Quantity"))
		assert.Equal(t, "[]", r.FormValue("Documents"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":10,"projectId":7,"supplyName":"Бетон М300","deliveryStatus":"создана"}`))
	})

	created, err := c.CreateSupply(context.Background(), model.CreateSupplyParams{
		ProjectID:  7,
		SupplyName: "Бетон М300",
		Materials: []model.Material{
			{Name: "Цемент", Category: "вяжущие", Quantity: 12.5},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, model.StatusCreated, created.Status)
}

func TestUploadDocumentsNoContentFallback(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Len(t, r.MultipartForm.File["files"], 2)
		w.WriteHeader(http.StatusNoContent)
	})

	stored, err := c.UploadDocuments(context.Background(), 3, []model.DocumentFile{
		{Name: "ttn.pdf", Data: []byte("pdf")},
		{Name: "act.pdf", Data: []byte("pdf")},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ttn.pdf", "act.pdf"}, stored)
}

func TestListAllWriteOffs(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/WarehouseWriteOff/pending":
			_, _ = w.Write([]byte(`[{"id":1,"warehouseItemId":1,"projectId":1,"quantity":2}]`))
		case "/api/WarehouseWriteOff/approved":
			_, _ = w.Write([]byte(`[{"id":2,"warehouseItemId":1,"projectId":1,"quantity":3}]`))
		case "/api/WarehouseWriteOff/rejected":
			_, _ = w.Write([]byte(`[{"id":3,"warehouseItemId":2,"projectId":1,"quantity":1}]`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	all, err := c.ListAllWriteOffs(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Merge order is fixed regardless of which bucket answered first, and
	// each record is stamped with its bucket's status.
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, model.WriteOffPending, all[0].Status)
	assert.Equal(t, int64(2), all[1].ID)
	assert.Equal(t, model.WriteOffApproved, all[1].Status)
	assert.Equal(t, int64(3), all[2].ID)
	assert.Equal(t, model.WriteOffRejected, all[2].Status)
}

func TestLoginAnonymous(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"), "login must not carry a bearer header")
		assert.Equal(t, "/api/Auth/login", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"fresh-token"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, 5*time.Second, staticTokens{err: model.ErrUnauthorized})

	token, err := c.Login(context.Background(), model.LoginParams{
		Email:    "pm@stroy.ru",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
}

func TestEncodeDocumentPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "act%201.pdf", encodeDocumentPath("uploads/act 1.pdf"))
	assert.Equal(t, "ttn.pdf", encodeDocumentPath("/uploads/ttn.pdf"))
	assert.Equal(t, "plain.pdf", encodeDocumentPath("plain.pdf"))
}
