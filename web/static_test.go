package web

import (
	"io/fs"
	"strings"
	"testing"
)

func TestGetContentType(t *testing.T) {
	testCases := []struct {
		path string
		want string
	}{
		{"css/eduhub.css", "text/css; charset=utf-8"},
		{"js/filterbar.js", "application/javascript; charset=utf-8"},
		{"js/msgpack.js", "application/javascript; charset=utf-8"},
		{"img/logo.png", ""},
		{"README", ""},
	}

	for _, tc := range testCases {
		if got := getContentType(tc.path); got != tc.want {
			t.Errorf("getContentType(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

// TestEmbeddedAssets verifies every embedded file is one the server knows how to serve
func TestEmbeddedAssets(t *testing.T) {
	want := map[string]bool{
		"static/css/eduhub.css":  false,
		"static/js/filterbar.js": false,
		"static/js/msgpack.js":   false,
	}

	err := fs.WalkDir(staticFiles, "static", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if getContentType(p) == "" {
			t.Errorf("embedded file %s has no content type", p)
		}
		data, _ := fs.ReadFile(staticFiles, p)
		if len(data) == 0 {
			t.Errorf("embedded asset %s is empty", p)
		}
		if _, ok := want[p]; ok {
			want[p] = true
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	for p, found := range want {
		if !found {
			t.Errorf("missing embedded asset %s", p)
		}
	}

	css, _ := fs.ReadFile(staticFiles, "static/css/eduhub.css")
	if !strings.Contains(string(css), "transition: transform 0.2s linear") {
		t.Error("Mobile panel should slide with a short linear transition")
	}
}

// TestScriptDrawsOnlyNewestResponse guards the typing race: a response to an
// older search event must not overwrite what the user typed since.
func TestScriptDrawsOnlyNewestResponse(t *testing.T) {
	js, err := fs.ReadFile(staticFiles, "static/js/filterbar.js")
	if err != nil {
		t.Fatal(err)
	}
	script := string(js)

	for _, want := range []string{
		"var seq = ++sent;",
		"apply(result.data, seq === sent);",
		"if (latest) {",
		"again.value = live;",
		"window.EduMsgpack",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("filterbar.js should contain %q", want)
		}
	}
}
