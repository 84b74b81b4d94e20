package reports

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/ribeirowl/processador-giga/core/reconcile"
	"github.com/ribeirowl/processador-giga/core/sheet"
	"github.com/ribeirowl/processador-giga/core/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app, _ := setupTestAppWithSessions(t)
	return app
}

func setupTestAppWithSessions(t *testing.T) (*fiber.App, *reconcile.Sessions) {
	t.Helper()
	archive, err := storage.NewLocalArchive(t.TempDir())
	require.NoError(t, err)

	sessions := reconcile.NewSessions(0)
	app := fiber.New()
	feature := NewFeature(sessions, archive, reconcile.Options{Scope: reconcile.ScopeBranch}, zap.NewNop(), "giga_session")
	require.NoError(t, feature.Load(app))
	return app, sessions
}

// churn sends requests from other sessions so pooled request buffers get
// reused before the next request of the session under test.
func churn(t *testing.T, app *fiber.App, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		other := &session{t: t, app: app, cookie: &http.Cookie{Name: "giga_session", Value: uuid.NewString()}}
		other.do(processRequest(fmt.Sprintf("filial-%02d", i)))
	}
}

func uploadRequest(t *testing.T, files map[string]string) *http.Request {
	t.Helper()

	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	for field, content := range files {
		name := field + ".csv"
		part, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func processRequest(branch string) *http.Request {
	form := url.Values{FieldBranch: {branch}}
	req := httptest.NewRequest("POST", "/processar", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// session carries the cookie issued by the first response across requests.
type session struct {
	t      *testing.T
	app    *fiber.App
	cookie *http.Cookie
}

func (s *session) do(req *http.Request) (*http.Response, string) {
	s.t.Helper()
	if s.cookie != nil {
		req.AddCookie(s.cookie)
	}
	resp, err := s.app.Test(req)
	require.NoError(s.t, err)
	for _, c := range resp.Cookies() {
		if c.Name == "giga_session" {
			s.cookie = c
		}
	}
	body, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err)
	return resp, string(body)
}

func TestHandleIndex(t *testing.T) {
	s := &session{t: t, app: setupTestApp(t)}

	resp, body := s.do(httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, `name="estoque"`)
	assert.Contains(t, body, `name="pedidos"`)
	require.NotNil(t, s.cookie)
}

func TestHandleUpload_ListsSortedBranches(t *testing.T) {
	s := &session{t: t, app: setupTestApp(t)}

	resp, body := s.do(uploadRequest(t, map[string]string{
		FieldInventory: "Produto,Filial,Qtd\nA,Sul,1\nB,Centro,2\nC,Sul,3\n",
	}))
	assert.Equal(t, 200, resp.StatusCode)

	centro := strings.Index(body, `value="Centro"`)
	sul := strings.Index(body, `value="Sul"`)
	require.GreaterOrEqual(t, centro, 0)
	require.GreaterOrEqual(t, sul, 0)
	assert.Less(t, centro, sul)
	assert.Equal(t, 1, strings.Count(body, `value="Sul"`))
}

func TestHandleUpload_InvalidFormat(t *testing.T) {
	s := &session{t: t, app: setupTestApp(t)}

	resp, body := s.do(uploadRequest(t, map[string]string{
		FieldInventory: "Produto,Qtd\nA,1\n",
	}))
	assert.Equal(t, 400, resp.StatusCode)
	assert.True(t, strings.HasPrefix(body, MessageInvalidFormat))
	assert.Contains(t, body, "Filial")
}

func TestHandleProcess_BeforeUpload(t *testing.T) {
	s := &session{t: t, app: setupTestApp(t)}

	resp, body := s.do(processRequest("X"))
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, reconcile.MessageDatasetsMissing, body)
}

func TestHandleProcess_NoBranch(t *testing.T) {
	s := &session{t: t, app: setupTestApp(t)}
	s.do(uploadRequest(t, map[string]string{
		FieldInventory: "Produto,Filial,Qtd\nA,X,1\n",
		FieldOrders:    "Produto,Qtd\nA,1\n",
	}))

	resp, body := s.do(processRequest(""))
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, MessageNoBranch, body)
}

func TestHandleDownload_Unknown(t *testing.T) {
	s := &session{t: t, app: setupTestApp(t)}

	for _, path := range []string{"/download/estoque", "/download/foo"} {
		resp, body := s.do(httptest.NewRequest("GET", path, nil))
		assert.Equal(t, 404, resp.StatusCode, path)
		assert.Equal(t, MessageNotFound, body)
	}
}

func TestFullFlow(t *testing.T) {
	s := &session{t: t, app: setupTestApp(t)}

	resp, _ := s.do(uploadRequest(t, map[string]string{
		FieldInventory: "Produto,Filial,Qtd\nA,X,10\nA,Y,5\nB,Y,0\n",
		FieldOrders:    "Produto,Qtd\nA,12\n",
	}))
	require.Equal(t, 200, resp.StatusCode)

	resp, body := s.do(processRequest("X"))
	require.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, body, "Resultados da filial X")
	assert.Contains(t, body, "/download/compras")

	resp, body = s.do(httptest.NewRequest("GET", "/download/compras", nil))
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, sheet.ContentType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "compras_resultados.xlsx")

	table, err := sheet.ReadTable(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, reconcile.ReportPurchases, table.Name)
	assert.Equal(t, [][]any{{"A", 2}}, table.Rows)

	resp, body = s.do(httptest.NewRequest("GET", "/download/transferencias", nil))
	require.Equal(t, 200, resp.StatusCode)
	table, err = sheet.ReadTable(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, [][]any{{"A", "Y", 5}}, table.Rows)
}

func TestSessionsDoNotLeak(t *testing.T) {
	app := setupTestApp(t)
	alice := &session{t: t, app: app}
	bob := &session{t: t, app: app}

	alice.do(uploadRequest(t, map[string]string{
		FieldInventory: "Produto,Filial,Qtd\nA,X,1\n",
		FieldOrders:    "Produto,Qtd\nA,1\n",
	}))
	resp, _ := alice.do(processRequest("X"))
	require.Equal(t, 200, resp.StatusCode)

	resp, body := bob.do(processRequest("X"))
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, reconcile.MessageDatasetsMissing, body)

	resp, _ = bob.do(httptest.NewRequest("GET", "/download/estoque", nil))
	assert.Equal(t, 404, resp.StatusCode)
}

func TestSession_UnknownCookieIsKept(t *testing.T) {
	app, sessions := setupTestAppWithSessions(t)
	id := uuid.NewString()
	s := &session{t: t, app: app, cookie: &http.Cookie{Name: "giga_session", Value: id}}

	resp, _ := s.do(uploadRequest(t, map[string]string{
		FieldInventory: "Produto,Filial,Qtd\nA,X,10\n",
		FieldOrders:    "Produto,Qtd\nA,12\n",
	}))
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, id, s.cookie.Value)

	churn(t, app, 50)

	resp, body := s.do(processRequest("X"))
	require.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, body, "Resultados da filial X")

	_, ok := sessions.Get(id).Store.Inventory()
	assert.True(t, ok)
}

func TestHandleProcess_CachedBranchSurvivesRequest(t *testing.T) {
	app, sessions := setupTestAppWithSessions(t)
	id := uuid.NewString()
	s := &session{t: t, app: app, cookie: &http.Cookie{Name: "giga_session", Value: id}}

	s.do(uploadRequest(t, map[string]string{
		FieldInventory: "Produto,Filial,Qtd\nA,Centro,1\n",
		FieldOrders:    "Produto,Qtd\nA,1\n",
	}))
	resp, _ := s.do(processRequest("Centro"))
	require.Equal(t, 200, resp.StatusCode)

	churn(t, app, 50)

	result, ok := sessions.Get(id).Cache.Result()
	require.True(t, ok)
	assert.Equal(t, "Centro", result.Branch)
}

func TestHandleUpload_CorruptMultipart(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{name: "Truncated body", contentType: "multipart/form-data; boundary=xyz", body: "--xyz\r\nContent-Disposition: form-data; name=\"estoque\"; filename=\"e.csv\"\r\n\r\nProduto"},
		{name: "Missing boundary", contentType: "multipart/form-data", body: "whatever"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &session{t: t, app: setupTestApp(t)}
			s.do(uploadRequest(t, map[string]string{
				FieldInventory: "Produto,Filial,Qtd\nA,X,1\n",
			}))

			req := httptest.NewRequest("POST", "/upload", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			resp, body := s.do(req)
			assert.Equal(t, 400, resp.StatusCode)
			assert.True(t, strings.HasPrefix(body, MessageInvalidFormat), body)
		})
	}
}

func TestHandleUpload_NotMultipart(t *testing.T) {
	s := &session{t: t, app: setupTestApp(t)}
	s.do(uploadRequest(t, map[string]string{
		FieldInventory: "Produto,Filial,Qtd\nA,X,1\n",
	}))

	req := httptest.NewRequest("POST", "/upload", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, body := s.do(req)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, body, `value="X"`)
}
