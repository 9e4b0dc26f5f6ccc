package api

import (
	"encoding/hex"
	"testing"

	"eduhub/filterbar"
	"eduhub/visit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestDecodeEventJSON(t *testing.T) {
	body := []byte(`{"type":"toggle","dimension":"language","value":"Motoko","path":["option-language-motoko","select-boxes"]}`)

	e, err := DecodeEvent(body, "application/json", "")
	require.NoError(t, err)
	assert.Equal(t, visit.EventToggle, e.Type)
	assert.Equal(t, "language", e.Dimension)
	assert.Equal(t, "Motoko", e.Value)
	assert.Equal(t, []string{"option-language-motoko", "select-boxes"}, e.Path)
}

func TestDecodeEventMsgpack(t *testing.T) {
	want := visit.Event{Type: visit.EventSearch, Text: " Rust "}
	body, err := msgpack.Marshal(want)
	require.NoError(t, err)

	testCases := []struct {
		name        string
		contentType string
		encoding    string
	}{
		{"content type", "application/msgpack", ""},
		{"x content type", "application/x-msgpack", ""},
		{"encoding header", "application/octet-stream", "msgpack"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeEvent(body, tc.contentType, tc.encoding)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

// TestDecodeBrowserMsgpack decodes the bytes static/js/msgpack.js writes for a search event
func TestDecodeBrowserMsgpack(t *testing.T) {
	body, err := hex.DecodeString("83a474797065a6736561726368a474657874d93d496e74726f2c20c3bc6ec3af636f6465" +
		"20616e642061206c6f6e6720736561726368207465726d2070617374207468697274792d6f6e65206279746573" +
		"a47061746892ad636f757273652d736561726368ac73656c6563742d626f786573")
	require.NoError(t, err)

	e, err := DecodeEvent(body, "application/msgpack", "")
	require.NoError(t, err)
	assert.Equal(t, visit.EventSearch, e.Type)
	assert.Equal(t, "Intro, ünïcode and a long search term past thirty-one bytes", e.Text)
	assert.Equal(t, []string{"course-search", "select-boxes"}, e.Path)
}

func TestDecodeEventRejectsGarbage(t *testing.T) {
	_, err := DecodeEvent([]byte("{not json"), "application/json", "")
	assert.Error(t, err)

	_, err = DecodeEvent([]byte{0xc1}, "application/msgpack", "")
	assert.Error(t, err)
}

func TestBuildFilterOptions(t *testing.T) {
	fo := BuildFilterOptions()
	require.Len(t, fo.Dimensions, len(filterbar.Dimensions))

	assert.Equal(t, "language", fo.Dimensions[0].ID)
	assert.Equal(t, filterbar.LanguageOptions, fo.Dimensions[0].Options)
	assert.Equal(t, "Content Language", fo.Dimensions[3].Title)
	assert.Equal(t, []string{"Relevance", "A to Z", "Z to A"}, fo.Sort)
}
