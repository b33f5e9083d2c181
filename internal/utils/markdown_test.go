package utils

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	// 基本 Markdown 语法
	got := string(RenderMarkdown("**粗体** 和 [链接](https://example.com)"))
	if !strings.Contains(got, "<strong>粗体</strong>") {
		t.Errorf("Expected bold rendered, got %s", got)
	}
	if !strings.Contains(got, `href="https://example.com"`) {
		t.Errorf("Expected link rendered, got %s", got)
	}

	// 脚本被消毒
	got = string(RenderMarkdown(`正文 <script>alert("xss")</script>`))
	if strings.Contains(got, "<script>") {
		t.Errorf("Expected script tag stripped, got %s", got)
	}
}
