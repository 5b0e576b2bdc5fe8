package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeJSONShape(t *testing.T) {
	ok, err := json.Marshal(Succeeded(nil, 0, 3, 10))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":[],"total":0,"page":3,"limit":10}`, string(ok))

	failed, err := json.Marshal(Failed("Server error", 500))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"message":"Server error","status":500}`, string(failed))
}

func TestEnvelopeDecodesEitherVariant(t *testing.T) {
	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(`{"success":true,"data":[{"id":"1","title":"Engineer","salary":"$1200","category":"IT","location":"Remote","postedDate":"2026-10-16"}],"total":1,"page":1,"limit":10}`), &env))
	assert.True(t, env.Success)
	require.Len(t, env.Data, 1)
	assert.Equal(t, "Engineer", env.Data[0].Title)
	assert.Equal(t, CategoryIT, env.Data[0].Category)

	require.NoError(t, json.Unmarshal([]byte(`{"success":false,"message":"nope","status":404}`), &env))
	assert.False(t, env.Success)
	assert.Equal(t, 404, env.Status)
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, ValidCategory(c))
	}
	assert.False(t, ValidCategory("it"))
	assert.False(t, ValidCategory(""))
}
