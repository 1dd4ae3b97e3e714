package handler

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"spc-gateway/internal/bureau/normalizer"
	id "spc-gateway/pkg/domain"
	dErrors "spc-gateway/pkg/domain-errors"
	"spc-gateway/pkg/testutil"
)

type stubService struct {
	payload *normalizer.AiContextPayload
	err     error

	lastDocument id.Document
	lastRaw      []byte
}

func (s *stubService) BuildContext(_ context.Context, document id.Document) (*normalizer.AiContextPayload, error) {
	s.lastDocument = document
	return s.payload, s.err
}

func (s *stubService) NormalizeRaw(_ context.Context, raw []byte) (*normalizer.AiContextPayload, error) {
	s.lastRaw = raw
	return s.payload, s.err
}

func newRouter(svc *stubService) http.Handler {
	r := chi.NewRouter()
	New(svc, slog.Default()).Register(r)
	return r
}

func emptyPayload() *normalizer.AiContextPayload {
	return normalizer.Normalize([]byte(`{}`))
}

func TestHandleBuildContext(t *testing.T) {
	t.Run("returns wrapped payload with masked document", func(t *testing.T) {
		svc := &stubService{payload: emptyPayload()}
		rr := testutil.DoRequest(newRouter(svc),
			testutil.NewJSONRequest(t, http.MethodPost, "/context", map[string]string{"document": "123.456.789-09"}))

		testutil.AssertStatus(t, rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[ContextResponse](t, rr)
		assert.Equal(t, "*********09", resp.Document)
		assert.NotNil(t, resp.Context)
		assert.Equal(t, "12345678909", svc.lastDocument.String())
	})

	t.Run("rejects missing document", func(t *testing.T) {
		rr := testutil.DoRequest(newRouter(&stubService{}),
			testutil.NewJSONRequest(t, http.MethodPost, "/context", map[string]string{}))

		testutil.AssertStatusAndError(t, rr, http.StatusUnprocessableEntity, "validation_error")
	})

	t.Run("rejects malformed CPF", func(t *testing.T) {
		rr := testutil.DoRequest(newRouter(&stubService{}),
			testutil.NewJSONRequest(t, http.MethodPost, "/context", map[string]string{"document": "12345"}))

		testutil.AssertStatusAndError(t, rr, http.StatusUnprocessableEntity, "validation_error")
	})

	t.Run("rejects malformed JSON body", func(t *testing.T) {
		rr := testutil.DoRequest(newRouter(&stubService{}),
			testutil.NewRequestWithBody(t, http.MethodPost, "/context", `{"document": `))

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
	})

	t.Run("maps lookup unavailability to 503", func(t *testing.T) {
		svc := &stubService{err: dErrors.New(dErrors.CodeUnavailable, "bureau lookup failed")}
		rr := testutil.DoRequest(newRouter(svc),
			testutil.NewJSONRequest(t, http.MethodPost, "/context", map[string]string{"document": "123.456.789-09"}))

		testutil.AssertStatusAndError(t, rr, http.StatusServiceUnavailable, "unavailable")
	})

	t.Run("internal errors omit the description", func(t *testing.T) {
		svc := &stubService{err: dErrors.New(dErrors.CodeInternal, "pool exhausted")}
		rr := testutil.DoRequest(newRouter(svc),
			testutil.NewJSONRequest(t, http.MethodPost, "/context", map[string]string{"document": "123.456.789-09"}))

		testutil.AssertStatus(t, rr, http.StatusInternalServerError)
		errResp := testutil.UnmarshalErrorResponse(t, rr)
		assert.NotContains(t, errResp, "error_description")
	})
}

func TestHandleNormalize(t *testing.T) {
	t.Run("passes the raw body through to the service", func(t *testing.T) {
		svc := &stubService{payload: emptyPayload()}
		rr := testutil.DoRequest(newRouter(svc),
			testutil.NewRequestWithBody(t, http.MethodPost, "/context/normalize", `{"body":{}}`))

		testutil.AssertStatus(t, rr, http.StatusOK)
		assert.JSONEq(t, `{"body":{}}`, string(svc.lastRaw))
	})

	t.Run("rejects empty body", func(t *testing.T) {
		rr := testutil.DoRequest(newRouter(&stubService{}),
			testutil.NewRequestWithBody(t, http.MethodPost, "/context/normalize", ""))

		testutil.AssertStatusAndError(t, rr, http.StatusUnprocessableEntity, "validation_error")
	})

	t.Run("maps invalid payload to 400", func(t *testing.T) {
		svc := &stubService{err: dErrors.New(dErrors.CodeInvalidPayload, "envelope is not valid JSON")}
		rr := testutil.DoRequest(newRouter(svc),
			testutil.NewRequestWithBody(t, http.MethodPost, "/context/normalize", `not json`))

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "invalid_payload")
	})
}
