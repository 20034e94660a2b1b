package api_test

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/news-api/internal/api"
)

var catalogParam = regexp.MustCompile(`:([a-z_]+)`)

func TestSwaggerDoc_CoversCatalog(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "GET", "/api/docs/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var doc struct {
		Swagger  string                                `json:"swagger"`
		BasePath string                                `json:"basePath"`
		Paths    map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "/api", doc.BasePath)

	documented := map[string]bool{}
	for path, ops := range doc.Paths {
		for method := range ops {
			documented[strings.ToUpper(method)+" "+path] = true
		}
	}

	for key := range api.Endpoints {
		method, path, _ := strings.Cut(key, " ")
		path = strings.TrimPrefix(path, "/api")
		if path == "" {
			path = "/"
		}
		path = catalogParam.ReplaceAllString(path, "{$1}")
		assert.True(t, documented[method+" "+path], "%s missing from swagger doc", key)
	}
	assert.Len(t, documented, len(api.Endpoints))
}

func TestSwaggerUI(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "GET", "/api/docs/index.html", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "swagger")
}
