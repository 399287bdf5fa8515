package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFields(t *testing.T) {
	fields, err := parseFields([]string{
		"name=cordless drill",
		"qty=3",
		"active=true",
		"tags=[\"power\",\"tools\"]",
		"note=\"quoted\"",
		"empty=",
		"expr=a=b",
	})
	require.NoError(t, err)

	assert.Equal(t, "cordless drill", fields["name"])
	assert.Equal(t, json.RawMessage("3"), fields["qty"])
	assert.Equal(t, json.RawMessage("true"), fields["active"])
	assert.Equal(t, json.RawMessage(`["power","tools"]`), fields["tags"])
	assert.Equal(t, `"quoted"`, fields["note"])
	assert.Equal(t, "", fields["empty"])
	assert.Equal(t, "a=b", fields["expr"])

	data, err := json.Marshal(fields)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"cordless drill","qty":3,"active":true,"tags":["power","tools"],"note":"\"quoted\"","empty":"","expr":"a=b"}`, string(data))
}

func TestParseFields_Errors(t *testing.T) {
	for _, pair := range []string{"novalue", "=x", "id=4"} {
		t.Run(pair, func(t *testing.T) {
			_, err := parseFields([]string{pair})
			assert.Error(t, err)
		})
	}
}

func TestFormatFields(t *testing.T) {
	got := formatFields(map[string]any{
		"qty":  json.Number("3"),
		"name": "cordless drill",
		"gone": nil,
	})
	assert.Equal(t, `gone=null name="cordless drill" qty=3`, got)
}
