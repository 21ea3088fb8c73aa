package resume

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docxFixture(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractTextDocx(t *testing.T) {
	data := docxFixture(t, `<w:document><w:body>`+
		`<w:p><w:r><w:t>Иван Иванов</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>Go,</w:t></w:r><w:r><w:t>PostgreSQL</w:t></w:r></w:p>`+
		`</w:body></w:document>`)

	text, err := ExtractText("resume.docx", data)
	require.NoError(t, err)
	assert.Contains(t, text, "Иван Иванов")
	assert.Contains(t, text, "Go, PostgreSQL")
}

func TestExtractTextDocxWithoutDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = ExtractText("resume.docx", buf.Bytes())
	require.Error(t, err)
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	for _, name := range []string{"resume.txt", "resume.doc", "resume", "resume.png"} {
		_, err := ExtractText(name, []byte("whatever"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat, name)
	}
}

func TestExtractTextExtensionCaseInsensitive(t *testing.T) {
	data := docxFixture(t, `<w:document><w:body><w:p><w:r><w:t>ok</w:t></w:r></w:p></w:body></w:document>`)
	text, err := ExtractText("RESUME.DOCX", data)
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}

func TestNormalizeWhitespace(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "  a   b\t\tc  ", want: "a b c"},
		{in: "a\n\n\nb", want: "a\nb"},
		{in: "a\u00A0b", want: "a b"},
		{in: "", want: ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, normalizeWhitespace(tc.in))
	}
}
