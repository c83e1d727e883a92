package langdetect

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"empty", "", "text"},
		{"whitespace only", "  \n\t\n", "text"},
		{"shebang bash", "#!/bin/bash\necho hi\n", "bash"},
		{"shebang python", "#!/usr/bin/env python\nprint(1)\n", "python"},
		{"go package clause", "package main\n\nfunc main() {}\n", "go"},
		{"html doctype", "<!DOCTYPE html>\n<html></html>\n", "html"},
		{"dockerfile", "FROM alpine:3.20\nRUN apk add curl\n", "dockerfile"},
		{"json object", `{"name": "x", "n": 1}`, "json"},
		{"sql select", "SELECT id, name FROM users WHERE id = 1", "sql"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect([]byte(tt.content)); got != tt.want {
				t.Errorf("Detect = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := normalize("Shell"); got != "bash" {
		t.Errorf("normalize(Shell) = %q, want bash", got)
	}
	if got := normalize("Go"); got != "go" {
		t.Errorf("normalize(Go) = %q, want go", got)
	}
}
