package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"pizzeria_admin_go/api"
	"pizzeria_admin_go/backend"
	"pizzeria_admin_go/config"
	"pizzeria_admin_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp runs the stub back office in-process and mounts the admin
// routes over it. seed loads the starter location hierarchy.
func setupApp(t *testing.T, seed bool, sessions *services.SessionStore, cfg *config.Config) *httptest.Server {
	t.Helper()

	dbName := "mem_" + uuid.New().String()
	conn, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, backend.Migrate(conn))
	if seed {
		require.NoError(t, backend.Seed(conn))
	}

	be := echo.New()
	backend.Register(be, conn)
	beSrv := httptest.NewServer(be)
	t.Cleanup(beSrv.Close)

	if cfg == nil {
		cfg = &config.Config{}
	}
	registry := services.NewRegistry(api.NewClient(beSrv.URL, 5*time.Second))
	h := New(cfg, registry, sessions)

	app := echo.New()
	h.Register(app)
	srv := httptest.NewServer(app)
	t.Cleanup(srv.Close)
	return srv
}

// do issues a request and returns the status, headers and body. hx marks
// it as an HTMX fragment request.
func do(t *testing.T, method, target string, form url.Values, hx bool) (*http.Response, string) {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequest(method, target, body)
	require.NoError(t, err)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	if hx {
		req.Header.Set("HX-Request", "true")
	}

	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

var fidPattern = regexp.MustCompile(`/forms/([0-9a-f-]+)/submit`)

var rowIDPattern = regexp.MustCompile(`hx-vals='\{"id":"([0-9a-f-]+)"\}'`)

// pickRowID extracts the first selectable row id from a picker fragment.
func pickRowID(t *testing.T, fragment string) string {
	t.Helper()
	match := rowIDPattern.FindStringSubmatch(fragment)
	require.NotNil(t, match, "fragment carries no selectable rows")
	return match[1]
}

// rowEditID extracts the first record id from a list fragment's edit link.
func rowEditID(t *testing.T, fragment, basePath string) string {
	t.Helper()
	pattern := regexp.MustCompile(regexp.QuoteMeta(basePath) + `([0-9a-f-]+)/edit`)
	match := pattern.FindStringSubmatch(fragment)
	require.NotNil(t, match, "fragment carries no edit links")
	return match[1]
}

var optionIDPattern = regexp.MustCompile(`<option value="([0-9a-f-]+)"`)

func pickOptionID(t *testing.T, fragment string) string {
	t.Helper()
	match := optionIDPattern.FindStringSubmatch(fragment)
	require.NotNil(t, match, "fragment carries no options")
	return match[1]
}

func formValues(fields map[string]string) url.Values {
	vals := url.Values{}
	for name, value := range fields {
		vals.Set(name, value)
	}
	return vals
}

// openEditor requests an editor page and extracts the form session id
// from the submit URL baked into it.
func openEditor(t *testing.T, base, path string) string {
	t.Helper()
	resp, body := do(t, http.MethodGet, base+path, nil, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	match := fidPattern.FindStringSubmatch(body)
	require.NotNil(t, match, "editor page carries no form session id")
	return match[1]
}
