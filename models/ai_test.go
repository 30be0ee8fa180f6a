package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatCompletionRequest_FieldOrder(t *testing.T) {
	req := ChatCompletionRequest{
		Model:       "mixtral-8x7b-32768",
		Messages:    []ChatMessage{{Role: RoleUser, Content: "2+2"}},
		Temperature: 0.7,
	}
	b, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Equal(t, `{"model":"mixtral-8x7b-32768","messages":[{"role":"user","content":"2+2"}],"temperature":0.7}`, string(b))
}

func TestFirstContent(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		want   string
		wantOK bool
	}{
		{"present", `{"choices":[{"message":{"content":"X"}}]}`, "X", true},
		{"empty content", `{"choices":[{"message":{"content":""}}]}`, "", true},
		{"no choices key", `{}`, "", false},
		{"empty choices", `{"choices":[]}`, "", false},
		{"no message", `{"choices":[{}]}`, "", false},
		{"no content key", `{"choices":[{"message":{"role":"assistant"}}]}`, "", false},
		{"null content", `{"choices":[{"message":{"content":null}}]}`, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var resp ChatCompletionResponse
			require.NoError(t, json.Unmarshal([]byte(tc.body), &resp))
			got, ok := resp.FirstContent()
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
