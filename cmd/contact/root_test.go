package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/pkg/contactclient"
)

type stubSubmitter struct {
	resp *contactclient.Response
	err  error
}

func (s stubSubmitter) Submit(context.Context, contactclient.Message) (*contactclient.Response, error) {
	return s.resp, s.err
}

func TestRunSendRelayed(t *testing.T) {
	var out bytes.Buffer
	err := runSend(context.Background(), &out,
		stubSubmitter{resp: &contactclient.Response{Message: "Email sent successfully", MessageID: "<1@x>"}},
		"A", "a@x.com", "hi")

	require.NoError(t, err)
	assert.Equal(t, "state: submitting\nstate: success\nEmail sent successfully\nmessage id: <1@x>\n", out.String())
}

func TestRunSendWarning(t *testing.T) {
	var out bytes.Buffer
	err := runSend(context.Background(), &out,
		stubSubmitter{resp: &contactclient.Response{Message: "Message received (email service not configured)", Warning: "no creds"}},
		"A", "a@x.com", "hi")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "warning: no creds")
}

func TestRunSendIncomplete(t *testing.T) {
	var out bytes.Buffer
	err := runSend(context.Background(), &out, stubSubmitter{}, "A", "", "hi")
	assert.EqualError(t, err, "--name, --email and --message are required")
	assert.Empty(t, out.String())
}

func TestCheckCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"API routes are working","env":{"EMAIL_USER":"Not set","EMAIL_PASS":"Not set"}}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"check", "--url", srv.URL})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "API routes are working\nEMAIL_USER: Not set\nEMAIL_PASS: Not set\n", out.String())
}

func TestSendCommandReportsErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"send", "--name", "A"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "Error: --name, --email and --message are required")
	assert.NotContains(t, stderr.String(), "Usage:")
}
