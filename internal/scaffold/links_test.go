package scaffold

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckLinks_AllResolve(t *testing.T) {
	files := []File{
		{Path: "README.md", Content: "See [the bot](bot.py) and [env](.env.example)."},
		{Path: "bot.py", Content: "print('hi')"},
		{Path: ".env.example", Content: "KEY=\n"},
	}
	require.Empty(t, CheckLinks(files))
}

func TestCheckLinks_Broken(t *testing.T) {
	files := []File{
		{Path: "README.md", Content: "See [setup](docs/setup.md)."},
	}
	problems := CheckLinks(files)
	require.Len(t, problems, 1)
	require.Contains(t, problems[0], "docs/setup.md")
	require.Contains(t, problems[0], "README.md")
}

func TestCheckLinks_RelativeToContainingDir(t *testing.T) {
	files := []File{
		{Path: "docs/README.md", Content: "Back to [config](../app.yaml)."},
		{Path: "app.yaml", Content: "a: 1\n"},
	}
	require.Empty(t, CheckLinks(files))
}

func TestCheckLinks_SkipsExternalAndFragments(t *testing.T) {
	files := []File{
		{Path: "README.md", Content: "Visit [site](https://example.com), " +
			"[mail](mailto:x@example.com), or [below](#setup)."},
	}
	require.Empty(t, CheckLinks(files))
}

func TestCheckLinks_FragmentOnFile(t *testing.T) {
	files := []File{
		{Path: "README.md", Content: "See [section](GUIDE.md#setup)."},
		{Path: "GUIDE.md", Content: "# Setup\n"},
	}
	require.Empty(t, CheckLinks(files))
}

func TestCheckLinks_OnlyScansMarkdown(t *testing.T) {
	files := []File{
		{Path: "notes.txt", Content: "[broken](missing.md)"},
	}
	require.Empty(t, CheckLinks(files))
}
