package main

import (
	"bytes"
	"os"
	"regexp"
	"strings"
	"testing"
)

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newVersionCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out.String(), "news-api dev") {
		t.Errorf("output = %q, want news-api dev prefix", out.String())
	}
}

var truncatedPath = regexp.MustCompile(`(^|[^j])oestump/news-api`)

func TestRoutesCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newRoutesCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	doc := out.String()
	for _, want := range []string{
		"/api/articles/{article_id}/comments",
		"/api/comments/{comment_id}",
		"/api/docs/*",
		"/metrics",
		"(*articlesAPIHandler).Create",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("routes doc missing %q", want)
		}
	}
	// Handler import paths print untrimmed.
	if truncatedPath.MatchString(doc) {
		t.Errorf("routes doc has a truncated import path: %q", truncatedPath.FindString(doc))
	}
}

func TestSeedCmd(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("NEWS_DB_DSN", "file:seedcmd?mode=memory&cache=shared")

	cmd := newSeedCmd()
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore wd %s: %v", wd, err)
		}
	})
}
