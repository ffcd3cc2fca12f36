package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feynman/pkg/domain"
	"github.com/umputun/feynman/server/mocks"
)

func testConfig() *mocks.ConfigProviderMock {
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return ":8080", 30 * time.Second
		},
		GetAnnotatorFunc: func() string { return "数据标注专家" },
	}
}

func TestServer_statusHandler(t *testing.T) {
	store := &mocks.StoreMock{
		CountFunc: func(ctx context.Context) (int, error) { return 42, nil },
	}
	srv := New(testConfig(), store, &mocks.SuggesterMock{}, "1.2.3", false)

	req := httptest.NewRequest("GET", "/api/v1/status", http.NoBody)
	w := httptest.NewRecorder()

	srv.statusHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var status map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &status)
	require.NoError(t, err)

	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "1.2.3", status["version"])
	assert.InDelta(t, 42, status["annotations"], 0.01)
	assert.NotEmpty(t, status["time"])
}

func TestServer_saveAnnotationHandler(t *testing.T) {
	t.Run("valid payload saved with annotator", func(t *testing.T) {
		var saved *domain.AnnotationRecord
		store := &mocks.StoreMock{
			AppendFunc: func(ctx context.Context, rec *domain.AnnotationRecord) error {
				rec.ID = "assigned-id"
				rec.Timestamp = time.Now().UTC()
				saved = rec
				return nil
			},
		}
		srv := New(testConfig(), store, &mocks.SuggesterMock{}, "test", false)

		body := `{"question": "什么是能量守恒？", "answer_final": "能量不变", "quality": "good", "styleFeatures": ["analogy"]}`
		req := httptest.NewRequest("POST", "/api/v1/annotations", strings.NewReader(body))
		w := httptest.NewRecorder()

		srv.saveAnnotationHandler(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, saved)
		assert.Equal(t, "数据标注专家", saved.Annotator)
		assert.Equal(t, domain.QualityGood, saved.Quality)

		var resp domain.AnnotationRecord
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "assigned-id", resp.ID)
	})

	t.Run("html stripped from free text", func(t *testing.T) {
		var saved *domain.AnnotationRecord
		store := &mocks.StoreMock{
			AppendFunc: func(ctx context.Context, rec *domain.AnnotationRecord) error {
				saved = rec
				return nil
			},
		}
		srv := New(testConfig(), store, &mocks.SuggesterMock{}, "test", false)

		body := `{"question": "<script>alert(1)</script>Q", "answer_final": "<b>bold</b> answer"}`
		req := httptest.NewRequest("POST", "/api/v1/annotations", strings.NewReader(body))
		w := httptest.NewRecorder()

		srv.saveAnnotationHandler(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, saved)
		assert.Equal(t, "Q", saved.Question)
		assert.Equal(t, "bold answer", saved.AnswerFinal)
	})

	t.Run("missing required field rejected", func(t *testing.T) {
		store := &mocks.StoreMock{
			AppendFunc: func(ctx context.Context, rec *domain.AnnotationRecord) error {
				return rec.Validate()
			},
		}
		srv := New(testConfig(), store, &mocks.SuggesterMock{}, "test", false)

		body := `{"question": "", "answer_final": "anything"}`
		req := httptest.NewRequest("POST", "/api/v1/annotations", strings.NewReader(body))
		w := httptest.NewRecorder()

		srv.saveAnnotationHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "missing required field")
	})

	t.Run("invalid quality rejected before store", func(t *testing.T) {
		store := &mocks.StoreMock{}
		srv := New(testConfig(), store, &mocks.SuggesterMock{}, "test", false)

		body := `{"question": "Q", "answer_final": "A", "quality": "stellar"}`
		req := httptest.NewRequest("POST", "/api/v1/annotations", strings.NewReader(body))
		w := httptest.NewRecorder()

		srv.saveAnnotationHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, store.AppendCalls())
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		srv := New(testConfig(), &mocks.StoreMock{}, &mocks.SuggesterMock{}, "test", false)

		req := httptest.NewRequest("POST", "/api/v1/annotations", strings.NewReader("{broken"))
		w := httptest.NewRecorder()

		srv.saveAnnotationHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_listAnnotationsHandler(t *testing.T) {
	t.Run("passes filter through", func(t *testing.T) {
		store := &mocks.StoreMock{
			ListFunc: func(ctx context.Context, filter domain.ListFilter) ([]*domain.AnnotationRecord, error) {
				assert.Equal(t, "能量", filter.Query)
				assert.Equal(t, domain.QualityGood, filter.Quality)
				return []*domain.AnnotationRecord{
					{ID: "1", Question: "什么是能量守恒？", AnswerFinal: "能量不变", Quality: domain.QualityGood},
				}, nil
			},
		}
		srv := New(testConfig(), store, &mocks.SuggesterMock{}, "test", false)

		req := httptest.NewRequest("GET", "/api/v1/annotations?q=%E8%83%BD%E9%87%8F&quality=good", http.NoBody)
		w := httptest.NewRecorder()

		srv.listAnnotationsHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Annotations []*domain.AnnotationRecord `json:"annotations"`
			Count       int                        `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
		require.Len(t, resp.Annotations, 1)
		assert.Equal(t, "1", resp.Annotations[0].ID)
	})

	t.Run("invalid quality rejected", func(t *testing.T) {
		store := &mocks.StoreMock{}
		srv := New(testConfig(), store, &mocks.SuggesterMock{}, "test", false)

		req := httptest.NewRequest("GET", "/api/v1/annotations?quality=stellar", http.NoBody)
		w := httptest.NewRecorder()

		srv.listAnnotationsHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, store.ListCalls())
	})
}

func TestServer_deleteAnnotationHandler(t *testing.T) {
	store := &mocks.StoreMock{
		RemoveFunc: func(ctx context.Context, id string) error { return nil },
	}
	srv := New(testConfig(), store, &mocks.SuggesterMock{}, "test", false)

	req := httptest.NewRequest("DELETE", "/api/v1/annotations/abc-123", http.NoBody)
	req.SetPathValue("id", "abc-123")
	w := httptest.NewRecorder()

	srv.deleteAnnotationHandler(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.Len(t, store.RemoveCalls(), 1)
	assert.Equal(t, "abc-123", store.RemoveCalls()[0].ID)
}

func TestServer_exportHandler(t *testing.T) {
	store := &mocks.StoreMock{
		ExportFunc: func(ctx context.Context, w io.Writer, filter domain.ListFilter) error {
			_, err := w.Write([]byte(`[{"id": "1"}]`))
			return err
		},
	}
	srv := New(testConfig(), store, &mocks.SuggesterMock{}, "test", false)

	req := httptest.NewRequest("GET", "/api/v1/annotations/export", http.NoBody)
	w := httptest.NewRecorder()

	srv.exportHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	disposition := w.Header().Get("Content-Disposition")
	assert.Contains(t, disposition, "attachment")
	assert.Contains(t, disposition, "feynman-annotations-")
	assert.Contains(t, disposition, time.Now().UTC().Format("2006-01-02"))

	assert.JSONEq(t, `[{"id": "1"}]`, w.Body.String())
}

func TestServer_importHandler(t *testing.T) {
	store := &mocks.StoreMock{
		ImportJSONFunc: func(ctx context.Context, r io.Reader) (int, error) { return 3, nil },
	}
	srv := New(testConfig(), store, &mocks.SuggesterMock{}, "test", false)

	req := httptest.NewRequest("POST", "/api/v1/annotations/import", strings.NewReader("[]"))
	w := httptest.NewRecorder()

	srv.importHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp["imported"])
}

func TestServer_suggestHandler(t *testing.T) {
	t.Run("matches returned", func(t *testing.T) {
		suggester := &mocks.SuggesterMock{
			SuggestFunc: func(text string) []domain.PatternMatch {
				assert.Equal(t, "能量就像推箱子做的功，从做功角度理解能量转化", text)
				return []domain.PatternMatch{
					{Rule: "类比解释", Confidence: 85, MatchedText: "就像"},
				}
			},
		}
		srv := New(testConfig(), &mocks.StoreMock{}, suggester, "test", false)

		body := `{"text": "能量就像推箱子做的功，从做功角度理解能量转化"}`
		req := httptest.NewRequest("POST", "/api/v1/suggest", strings.NewReader(body))
		w := httptest.NewRecorder()

		srv.suggestHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Matches []domain.PatternMatch `json:"matches"`
			Count   int                   `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
		require.Len(t, resp.Matches, 1)
		assert.Equal(t, "类比解释", resp.Matches[0].Rule)
		assert.Equal(t, 85, resp.Matches[0].Confidence)
	})

	t.Run("short text yields empty array, not null", func(t *testing.T) {
		suggester := &mocks.SuggesterMock{
			SuggestFunc: func(text string) []domain.PatternMatch { return nil },
		}
		srv := New(testConfig(), &mocks.StoreMock{}, suggester, "test", false)

		req := httptest.NewRequest("POST", "/api/v1/suggest", strings.NewReader(`{"text": "短"}`))
		w := httptest.NewRecorder()

		srv.suggestHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"matches":[]`)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		srv := New(testConfig(), &mocks.StoreMock{}, &mocks.SuggesterMock{}, "test", false)

		req := httptest.NewRequest("POST", "/api/v1/suggest", strings.NewReader("nope"))
		w := httptest.NewRecorder()

		srv.suggestHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_applyTemplateHandler(t *testing.T) {
	srv := New(testConfig(), &mocks.StoreMock{}, &mocks.SuggesterMock{}, "test", false)

	body := `{
		"template": {"core_concept": "熵", "analogy": {"domain": "", "scenario": "", "description": ""}, "breakdown": [], "summary": ""},
		"draft": {"core_concept": "能量", "analogy": {"domain": "生活", "scenario": "推箱子", "description": ""}, "breakdown": [{"step": 1, "explanation": "x", "linked_concept": ""}], "summary": "总结"}
	}`
	req := httptest.NewRequest("POST", "/api/v1/template/apply", strings.NewReader(body))
	w := httptest.NewRecorder()

	srv.applyTemplateHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var merged domain.FeynmanMethod
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &merged))
	assert.Equal(t, "熵", merged.CoreConcept, "template overrides")
	assert.Equal(t, "生活", merged.Analogy.Domain, "draft kept where template empty")
	require.Len(t, merged.Breakdown, 1)
	assert.Equal(t, 1, merged.Breakdown[0].Step)
	assert.Equal(t, "总结", merged.Summary)
}
