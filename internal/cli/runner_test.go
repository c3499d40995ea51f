package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	usersJSON    = `[{"id":1,"name":"Leanne Graham","username":"Bret","email":"leanne@april.biz","phone":"1-770","address":{"city":"Gwenborough"},"company":{"name":"Romaguera-Crona"}}]`
	todosJSON    = `[{"userId":1,"id":1,"title":"buy milk","completed":true},{"userId":1,"id":2,"title":"walk dog","completed":false}]`
	productsJSON = `{"products":[{"id":1,"title":"Essence Mascara","category":"beauty","price":9.99,"rating":4.9,"stock":5},{"id":2,"title":"MacBook Pro","category":"laptops","description":"a laptop","price":1999.99,"rating":4.4,"stock":12,"discountPercentage":10}],"total":2,"skip":0,"limit":2}`
)

// fakeAPI serves the three endpoints and points the config at itself.
func fakeAPI(t *testing.T, status int) *int32 {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/users":
			_, _ = w.Write([]byte(usersJSON))
		case "/todos":
			assert.Equal(t, "7", r.URL.Query().Get("_limit"))
			_, _ = w.Write([]byte(todosJSON))
		case "/products":
			assert.Equal(t, "100", r.URL.Query().Get("limit"))
			_, _ = w.Write([]byte(productsJSON))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	t.Setenv("TADA_USERS_BASE_URL", srv.URL)
	t.Setenv("TADA_PRODUCTS_BASE_URL", srv.URL)
	t.Setenv("TADA_TODO_LIMIT", "7")
	t.Setenv("TADA_PRODUCT_LIMIT", "100")
	t.Setenv("TADA_THEME", "mono")
	t.Setenv("TADA_LOG_FILE", "")
	return &hits
}

func runArgs(args ...string) (int, string, string) {
	var out, errw bytes.Buffer
	code := run(context.Background(), args, &out, &errw)
	return code, out.String(), errw.String()
}

func TestNoArgsPrintsHelp(t *testing.T) {
	code, out, errw := runArgs()
	assert.Equal(t, 2, code)
	assert.Empty(t, out)
	assert.Contains(t, errw, "Usage:")
}

func TestUnknownSubcommand(t *testing.T) {
	code, _, errw := runArgs("nope")
	assert.Equal(t, 2, code)
	assert.Contains(t, errw, "unknown command")
	assert.Contains(t, errw, "Subcommands:")
}

func TestBadFlagValues(t *testing.T) {
	fakeAPI(t, http.StatusOK)

	code, _, errw := runArgs("todos", "--plain", "--filter", "someday")
	assert.Equal(t, 2, code)
	assert.Contains(t, errw, `unknown filter "someday"`)

	code, _, errw = runArgs("users", "--plain", "--format", "yaml")
	assert.Equal(t, 2, code)
	assert.Contains(t, errw, `unknown format "yaml"`)
}

func TestPlainUsers(t *testing.T) {
	hits := fakeAPI(t, http.StatusOK)

	code, out, errw := runArgs("users", "--plain")
	require.Equal(t, 0, code)
	assert.Contains(t, errw, "usuarios cargados")
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
	assert.Contains(t, out, "Leanne Graham")
	assert.Contains(t, out, "@Bret")
	assert.Contains(t, out, "Gwenborough")
	assert.Contains(t, out, "Romaguera-Crona")
}

func TestPlainUsersTable(t *testing.T) {
	fakeAPI(t, http.StatusOK)

	code, out, _ := runArgs("users", "--plain", "--format", "table")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Leanne Graham")
	assert.Contains(t, out, "leanne@april.biz")
}

func TestPlainTodosFilter(t *testing.T) {
	fakeAPI(t, http.StatusOK)

	code, out, _ := runArgs("todos", "--plain", "--filter", "pending")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "1 de 2 tareas completadas (50%)")
	assert.Contains(t, out, "walk dog")
	assert.NotContains(t, out, "buy milk")
}

func TestPlainProducts(t *testing.T) {
	fakeAPI(t, http.StatusOK)

	code, out, errw := runArgs("products", "--plain", "--detail", "0")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "1 Productos disponibles")
	assert.Contains(t, out, "MacBook Pro")
	assert.Contains(t, out, "-10%")
	assert.Contains(t, out, "📦", "no thumbnail in the fixture")
	assert.NotContains(t, out, "Essence Mascara")
	assert.Contains(t, out, "Precio: $1999.99")
	assert.Contains(t, errw, "detalle de MacBook Pro")
}

func TestPlainProductsDetailOutOfRange(t *testing.T) {
	fakeAPI(t, http.StatusOK)

	code, out, errw := runArgs("products", "--plain", "--detail", "5")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "MacBook Pro")
	assert.Contains(t, errw, "index out of range: have 1, got 5")
	assert.NotContains(t, errw, "Usage:")
	assert.NotContains(t, errw, "productos cargados")
}

func TestDetailNeedsPlain(t *testing.T) {
	hits := fakeAPI(t, http.StatusOK)

	code, out, errw := runArgs("products", "--detail", "0")
	assert.Equal(t, 2, code)
	assert.Empty(t, out)
	assert.Contains(t, errw, "--detail needs --plain")
	assert.Equal(t, int32(0), atomic.LoadInt32(hits))
}

func TestPlainFailureExitsOne(t *testing.T) {
	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"users", "--plain"}, "No se pudieron cargar los datos"},
		{[]string{"todos", "--plain"}, "No se pudieron cargar las tareas"},
		{[]string{"products", "--plain"}, "No se pudieron cargar los productos"},
	} {
		t.Run(tc.args[0], func(t *testing.T) {
			hits := fakeAPI(t, http.StatusInternalServerError)

			code, out, errw := runArgs(tc.args...)
			assert.Equal(t, 1, code)
			assert.Equal(t, int32(1), atomic.LoadInt32(hits), "no retries")
			assert.Contains(t, out, tc.want)
			assert.Contains(t, out, "500")
			assert.False(t, strings.Contains(errw, "Usage:"), "runtime failures do not print help")
			assert.NotContains(t, errw, "cargad", "no success line after a failure")
		})
	}
}
