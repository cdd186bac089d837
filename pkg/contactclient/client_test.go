package contactclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSubmit(t *testing.T) {
	var got Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/contact", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"message":"Email sent successfully","messageId":"<1@x>"}`))
	}))
	defer srv.Close()

	c := New(srv.URL + "/api/")
	resp, err := c.Submit(context.Background(), Message{Name: "A", Email: "a@x.com", Message: "hi"})

	require.NoError(t, err)
	assert.Equal(t, Message{Name: "A", Email: "a@x.com", Message: "hi"}, got)
	assert.Equal(t, "<1@x>", resp.MessageID)
	assert.Equal(t, DeliveryRelayed, resp.Delivery())
}

func TestResponseDelivery(t *testing.T) {
	assert.Equal(t, DeliveryNotConfigured, (&Response{Message: "m", Warning: "w"}).Delivery())
	assert.Equal(t, DeliveryRelayFailed, (&Response{Message: "m", Error: "e"}).Delivery())
	assert.Equal(t, DeliveryRelayed, (&Response{Message: "m", MessageID: "id"}).Delivery())
}

func TestClientSubmitStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Missing required fields"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Submit(context.Background(), Message{})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, "Missing required fields", statusErr.Body)
}

func TestClientSubmitTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url).Submit(context.Background(), Message{Name: "A", Email: "a", Message: "m"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contactclient: POST /contact")
}

func TestClientDiagnose(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/contact/test", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"API routes are working","env":{"EMAIL_USER":"Set","EMAIL_PASS":"Not set"}}`))
	}))
	defer srv.Close()

	d, err := New(srv.URL, WithHTTPClient(srv.Client())).Diagnose(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Set", d.Env["EMAIL_USER"])
	assert.Equal(t, "Not set", d.Env["EMAIL_PASS"])
}
