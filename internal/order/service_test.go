package order

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"alanya-store/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitSuccess(t *testing.T) {
	var got Payload
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	payload := Payload{
		Name:  "Иван",
		Phone: "+7 999 000 00 00",
		Items: []LineItem{{Name: "Льняной шарф", Price: "1 200 ₽"}},
		Total: "1 200 ₽",
	}

	submitter := NewDefaultSubmitter(srv.URL, srv.Client())
	require.NoError(t, submitter.Submit(context.Background(), payload))

	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, payload, got)
}

func TestSubmitNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	submitter := NewDefaultSubmitter(srv.URL, srv.Client())
	err := submitter.Submit(context.Background(), Payload{})

	var subErr *pkg.ErrSubmission
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, http.StatusBadGateway, subErr.Status)
}

func TestSubmitTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	submitter := NewDefaultSubmitter(srv.URL, http.DefaultClient)
	err := submitter.Submit(context.Background(), Payload{})

	var subErr *pkg.ErrSubmission
	require.ErrorAs(t, err, &subErr)
	assert.Error(t, errors.Unwrap(err))
}
