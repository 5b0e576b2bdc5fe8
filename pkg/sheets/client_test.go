package sheets

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func TestAppendRows(t *testing.T) {
	var gotPath, gotQuery string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"spreadsheetId":"sheet-1","updates":{"updatedRows":2}}`))
	}))
	defer srv.Close()

	c, err := NewClient(context.Background(), Config{
		Endpoint: srv.URL + "/",
		Options:  []option.ClientOption{option.WithoutAuthentication(), option.WithHTTPClient(srv.Client())},
	})
	require.NoError(t, err)

	n, err := c.AppendRows(context.Background(), "sheet-1", "Jobs!A1", [][]any{{"1", "Engineer"}, {"2", "Designer"}})
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.True(t, strings.HasSuffix(gotPath, "/spreadsheets/sheet-1/values/Jobs!A1:append"), gotPath)
	assert.Contains(t, gotQuery, "valueInputOption=RAW")
	assert.Contains(t, gotQuery, "insertDataOption=INSERT_ROWS")
	assert.Len(t, gotBody["values"], 2)
}

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient(context.Background(), Config{})
	assert.Error(t, err)
}
