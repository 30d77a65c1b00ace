package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestDocListsBothTodoNamespaces(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	for _, prefix := range []string{"", "/jpa"} {
		require.Contains(t, parsed.Paths, prefix+"/users/{username}/todos")
		require.Contains(t, parsed.Paths, prefix+"/users/{username}/todos/{id}")
		require.Len(t, parsed.Paths[prefix+"/users/{username}/todos/{id}"], 3)
	}
}
