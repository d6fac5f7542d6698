package structure

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loupe-dev/loupe/internal/lang"
	"github.com/loupe-dev/loupe/internal/query"
	"github.com/loupe-dev/loupe/internal/source"
)

func analyzeFixture(t *testing.T, path string, constructs ...lang.Construct) *Analysis {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	registry := lang.NewRegistry(query.NewCatalog())
	plugin, err := registry.Resolve("", path, content)
	require.NoError(t, err)

	doc := source.NewDocument(path, plugin.ID(), content)
	tree, err := plugin.Parse(context.Background(), content)
	require.NoError(t, err)
	defer tree.Close()

	return Build(doc, plugin, tree, constructs)
}

func findElement(a *Analysis, name string) (int, *Element) {
	for i := range a.Elements {
		if a.Elements[i].Name == name {
			return i, &a.Elements[i]
		}
	}
	return -1, nil
}

func TestBuild_ClassWithNestedMethods(t *testing.T) {
	t.Parallel()

	a := analyzeFixture(t, "../../testdata/code/java/Library.java",
		lang.ConstructClass, lang.ConstructMethod)
	require.Len(t, a.Elements, 3)
	assert.Empty(t, a.Diagnostics)

	classIdx, class := findElement(a, "Library")
	require.NotNil(t, class)
	assert.Equal(t, "class", class.Kind)
	assert.Equal(t, -1, class.Parent)

	for _, name := range []string{"add", "size"} {
		_, m := findElement(a, name)
		require.NotNil(t, m, "method %s", name)
		assert.Equal(t, "method", m.Kind)
		assert.Equal(t, classIdx, m.Parent)
		assert.GreaterOrEqual(t, m.StartLine, class.StartLine)
		assert.LessOrEqual(t, m.EndLine, class.EndLine)
	}

	// Ordered by start line: class, then add, then size.
	assert.Equal(t, "Library", a.Elements[0].Name)
	assert.Equal(t, "add", a.Elements[1].Name)
	assert.Equal(t, "size", a.Elements[2].Name)
}

func TestBuild_UnsupportedConstructDegrades(t *testing.T) {
	t.Parallel()

	a := analyzeFixture(t, "../../testdata/code/python/simple.py",
		lang.ConstructClass, lang.ConstructFunction, lang.ConstructField)

	// field is not supported for python: skipped with a diagnostic,
	// everything else still analyzed.
	require.Len(t, a.Diagnostics, 1)
	assert.Equal(t, "field", a.Diagnostics[0].Construct)
	assert.NotEmpty(t, a.Diagnostics[0].Message)
	assert.NotEmpty(t, a.Elements)

	_, class := findElement(a, "User")
	require.NotNil(t, class)
}

func TestBuild_PythonMethodsNestInClass(t *testing.T) {
	t.Parallel()

	a := analyzeFixture(t, "../../testdata/code/python/simple.py")

	classIdx, class := findElement(a, "User")
	require.NotNil(t, class)

	_, init := findElement(a, "__init__")
	require.NotNil(t, init)
	assert.Equal(t, classIdx, init.Parent)

	_, load := findElement(a, "load")
	require.NotNil(t, load)
	assert.Equal(t, -1, load.Parent)
}

func TestBuild_HTMLElementTree(t *testing.T) {
	t.Parallel()

	a := analyzeFixture(t, "../../testdata/code/html/page.html")

	htmlIdx, htmlEl := findElement(a, "html")
	require.NotNil(t, htmlEl)
	assert.Equal(t, -1, htmlEl.Parent)

	bodyIdx, body := findElement(a, "body")
	require.NotNil(t, body)
	assert.Equal(t, htmlIdx, body.Parent)

	divIdx, div := findElement(a, "div")
	require.NotNil(t, div)
	assert.Equal(t, bodyIdx, div.Parent)

	_, p := findElement(a, "p")
	require.NotNil(t, p)
	assert.Equal(t, divIdx, p.Parent)
}

func TestBuild_CSSRuleInsideMedia(t *testing.T) {
	t.Parallel()

	a := analyzeFixture(t, "../../testdata/code/css/styles.css")

	var mediaIdx int
	found := false
	for i, el := range a.Elements {
		if el.Kind == "media" {
			mediaIdx, found = i, true
		}
	}
	require.True(t, found, "media element should be extracted")

	nested := a.Children(mediaIdx)
	require.Len(t, nested, 1)
	assert.Equal(t, "rule", a.Elements[nested[0]].Kind)
}

func TestBuild_NestingInvariant(t *testing.T) {
	t.Parallel()

	for _, fixture := range []string{
		"../../testdata/code/java/Library.java",
		"../../testdata/code/python/simple.py",
		"../../testdata/code/typescript/app.ts",
		"../../testdata/code/html/page.html",
		"../../testdata/code/rust/lib.rs",
	} {
		a := analyzeFixture(t, fixture)
		for i, el := range a.Elements {
			assert.Positive(t, el.StartLine, "%s element %d", fixture, i)
			assert.LessOrEqual(t, el.StartLine, el.EndLine, "%s element %d", fixture, i)
			if el.Parent >= 0 {
				parent := a.Elements[el.Parent]
				assert.LessOrEqual(t, parent.StartLine, el.StartLine, "%s element %d", fixture, i)
				assert.GreaterOrEqual(t, parent.EndLine, el.EndLine, "%s element %d", fixture, i)
			}
		}
	}
}

func TestAssemble_IdenticalSpanContainerBeforeMember(t *testing.T) {
	t.Parallel()

	container := lang.CaptureMatch{
		Construct: lang.ConstructClass,
		Name:      "Wrapper",
		StartLine: 1,
		EndLine:   10,
	}
	member := lang.CaptureMatch{
		Construct: lang.ConstructMethod,
		Name:      "call",
		StartLine: 1,
		EndLine:   10,
	}

	// The container wins the tie regardless of extraction order.
	for name, matches := range map[string][]lang.CaptureMatch{
		"container first": {container, member},
		"member first":    {member, container},
	} {
		elements := assemble(matches)
		require.Len(t, elements, 2, name)
		assert.Equal(t, "class", elements[0].Kind, name)
		assert.Equal(t, -1, elements[0].Parent, name)
		assert.Equal(t, "method", elements[1].Kind, name)
		assert.Equal(t, 0, elements[1].Parent, name)
	}
}

func TestAssemble_IdenticalSpanSameKindKeepsOrder(t *testing.T) {
	t.Parallel()

	// Neither match is a container: the sort is stable, so extraction
	// order survives and the first becomes the parent of the second.
	first := lang.CaptureMatch{Construct: lang.ConstructFunction, Name: "a", StartLine: 3, EndLine: 6}
	second := lang.CaptureMatch{Construct: lang.ConstructFunction, Name: "b", StartLine: 3, EndLine: 6}

	elements := assemble([]lang.CaptureMatch{first, second})
	require.Len(t, elements, 2)
	assert.Equal(t, "a", elements[0].Name)
	assert.Equal(t, -1, elements[0].Parent)
	assert.Equal(t, "b", elements[1].Name)
	assert.Equal(t, 0, elements[1].Parent)
}

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	first := analyzeFixture(t, "../../testdata/code/typescript/app.ts")
	second := analyzeFixture(t, "../../testdata/code/typescript/app.ts")
	assert.Equal(t, first.Elements, second.Elements)
}

func TestBuild_MarkdownOutline(t *testing.T) {
	t.Parallel()

	a := analyzeFixture(t, "../../testdata/code/markdown/README.md")

	var headings []string
	codeblocks := 0
	for _, el := range a.Elements {
		switch el.Kind {
		case "heading":
			headings = append(headings, el.Name)
		case "codeblock":
			codeblocks++
		}
	}
	assert.Equal(t, []string{"Project", "Usage", "License"}, headings)
	assert.Equal(t, 1, codeblocks)
}
