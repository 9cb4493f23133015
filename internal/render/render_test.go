package render

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sreejan-22/Memes4u/internal/models"
)

func TestPageRendersTemplate(t *testing.T) {
	t.Parallel()

	r, err := New("../../web/templates")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	err = r.Page(rec, http.StatusOK, "index.html", map[string]interface{}{
		"Title": "Memes4u",
		"Memes": []models.Meme{
			{ID: "m1", Name: "Ann", Username: "ann1", Caption: "lol", URL: "http://x/i.png", CreatedAt: time.Now()},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "lol")
	assert.Contains(t, rec.Body.String(), "@ann1")
}

func TestPageUnknownTemplateIs500(t *testing.T) {
	t.Parallel()

	r, err := New("../../web/templates")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	err = r.Page(rec, http.StatusOK, "missing.html", nil)
	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestFormatDateTime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "N/A", FormatDateTime(time.Time{}))
	ts := time.Date(2021, 6, 1, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, "June 1, 2021 at 3:04 PM", FormatDateTime(ts))
}
