package scaffold

import (
	"fmt"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// CheckLinks parses every generated markdown file and verifies that its
// relative links point at other generated files. Returns one message per
// broken link; an empty slice means all links resolve.
func CheckLinks(files []File) []string {
	paths := make(map[string]bool, len(files))
	for _, f := range files {
		paths[path.Clean(f.Path)] = true
	}

	var problems []string
	for _, f := range files {
		if !strings.HasSuffix(strings.ToLower(f.Path), ".md") {
			continue
		}
		for _, target := range extractLinks([]byte(f.Content)) {
			if isExternal(target) || strings.HasPrefix(target, "#") {
				continue
			}
			target = stripFragment(target)
			if target == "" {
				continue
			}
			resolved := path.Clean(path.Join(path.Dir(f.Path), target))
			if !paths[resolved] {
				problems = append(problems, fmt.Sprintf("%s links to %s, which is not generated", f.Path, target))
			}
		}
	}
	return problems
}

// extractLinks parses markdown bytes and collects link and image targets.
func extractLinks(source []byte) []string {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var targets []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Link:
			targets = append(targets, string(v.Destination))
		case *ast.Image:
			targets = append(targets, string(v.Destination))
		}
		return ast.WalkContinue, nil
	})
	return targets
}

func isExternal(target string) bool {
	return strings.HasPrefix(target, "http://") ||
		strings.HasPrefix(target, "https://") ||
		strings.HasPrefix(target, "mailto:")
}

func stripFragment(target string) string {
	if idx := strings.Index(target, "#"); idx >= 0 {
		return target[:idx]
	}
	return target
}
