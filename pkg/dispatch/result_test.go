package dispatch_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailbatch/pkg/dispatch"
)

func TestAggregate(t *testing.T) {
	t.Parallel()

	t.Run("no failures", func(t *testing.T) {
		t.Parallel()

		res := dispatch.Aggregate(dispatch.Outcome{
			Sent: []dispatch.Request{{To: "a@x.com"}, {To: "b@x.com"}},
		})
		require.Equal(t, http.StatusOK, res.Status)
		require.Equal(t, "Successfully sent emails!", res.Message)
		require.Empty(t, res.Data)

		raw, err := json.Marshal(res)
		require.NoError(t, err)
		require.JSONEq(t, `{"status":200,"message":"Successfully sent emails!"}`, string(raw))
	})

	t.Run("empty outcome", func(t *testing.T) {
		t.Parallel()

		res := dispatch.Aggregate(dispatch.Outcome{})
		require.Equal(t, http.StatusOK, res.Status)
		require.Nil(t, res.Data)
	})

	t.Run("failures are echoed", func(t *testing.T) {
		t.Parallel()

		failed := dispatch.Request{
			To:      "b@x.com",
			CC:      []string{"c@x.com"},
			Subject: "s2",
			Body:    "b2",
		}
		res := dispatch.Aggregate(dispatch.Outcome{
			Sent:   []dispatch.Request{{To: "a@x.com", Subject: "s1", Body: "b1"}},
			Failed: []dispatch.Request{failed},
		})
		require.Equal(t, http.StatusInternalServerError, res.Status)
		require.Equal(t, "Had 1 errors", res.Message)
		require.Equal(t, []dispatch.Request{failed}, res.Data)

		raw, err := json.Marshal(res)
		require.NoError(t, err)
		require.JSONEq(t, `{
			"status": 500,
			"message": "Had 1 errors",
			"data": [{"to_email":"b@x.com","cc_emails":["c@x.com"],"subject":"s2","body":"b2"}]
		}`, string(raw))
	})
}

func TestAggregate_EchoesRecipientListsAsSupplied(t *testing.T) {
	t.Parallel()

	var batch []dispatch.Request
	require.NoError(t, json.Unmarshal([]byte(`[
		{"to_email":"bad","cc_emails":[],"subject":"s1","body":"b1"},
		{"to_email":"worse","bcc_emails":[],"cc_emails":null,"subject":"s2","body":"b2"},
		{"to_email":"worst","subject":"s3","body":"b3"}
	]`), &batch))

	raw, err := json.Marshal(dispatch.Aggregate(dispatch.Outcome{Failed: batch}))
	require.NoError(t, err)
	require.JSONEq(t, `{
		"status": 500,
		"message": "Had 3 errors",
		"data": [
			{"to_email":"bad","cc_emails":[],"subject":"s1","body":"b1"},
			{"to_email":"worse","bcc_emails":[],"subject":"s2","body":"b2"},
			{"to_email":"worst","subject":"s3","body":"b3"}
		]
	}`, string(raw))
}
