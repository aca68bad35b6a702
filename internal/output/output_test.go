package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranshuparmar/portpause/pkg/model"
)

func TestRenderListPlain(t *testing.T) {
	var b bytes.Buffer
	RenderList(&b, []model.Endpoint{
		{Port: 8080, PID: 1234, Address: "0.0.0.0", Protocol: "TCP", Command: "nginx"},
		{Port: 5432, PID: 77, Address: "::1", Protocol: "TCP6"},
	}, false)

	want := "PORT    PROTO ADDRESS          PROCESS\n" +
		"8080    TCP   0.0.0.0          nginx (pid 1234)\n" +
		"5432    TCP6  ::1              ? (pid 77)\n"
	assert.Equal(t, want, b.String())
}

func TestRenderListEmpty(t *testing.T) {
	var b bytes.Buffer
	RenderList(&b, nil, true)
	assert.Equal(t, "No listening ports found.\n", b.String())
}

func TestRenderListColor(t *testing.T) {
	var b bytes.Buffer
	RenderList(&b, []model.Endpoint{{Port: 80, PID: 1, Command: "httpd"}}, true)
	assert.Contains(t, b.String(), colorGreenList+"httpd"+colorResetList)
}

func TestToJSON(t *testing.T) {
	out, err := ToJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", out)

	out, err = ToJSON([]model.Endpoint{{Port: 8080, PID: 1234}})
	require.NoError(t, err)
	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.EqualValues(t, 8080, got[0]["port"])
	assert.EqualValues(t, 1234, got[0]["pid"])
	assert.NotContains(t, got[0], "command")
}
