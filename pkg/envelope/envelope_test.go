package envelope_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/openoperator/webui-bridge/pkg/envelope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer

	envelope.Write(&buf, map[string]any{"success": true, "status": "ok"})

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, true, got["success"])
	assert.Equal(t, "ok", got["status"])
	assert.Equal(t, byte('\n'), buf.Bytes()[buf.Len()-1])
}

func TestWrite_UnmarshalableValue(t *testing.T) {
	var buf bytes.Buffer

	envelope.Write(&buf, map[string]any{"bad": make(chan int)})

	var got envelope.Failure
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.False(t, got.Success)
	assert.Contains(t, got.Error, "encode result")
}

func TestFail(t *testing.T) {
	f := envelope.Fail(errors.New("boom"))
	assert.False(t, f.Success)
	assert.Equal(t, "boom", f.Error)

	f = envelope.Failf("unknown action: %s", "dance")
	assert.Equal(t, "unknown action: dance", f.Error)
}
