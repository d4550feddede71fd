package qrpdf

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeQR(t *testing.T, data []byte) string {
	t.Helper()

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	require.NoError(t, err)

	result, err := zxqrcode.NewQRCodeReader().Decode(bmp, nil)
	require.NoError(t, err)

	return result.GetText()
}

// pageCount counts /Type /Page objects; the /Type /Pages root matches the
// same substring once, hence the -1.
func pageCount(doc []byte) int {
	return bytes.Count(doc, []byte("/Type /Page")) - 1
}

func TestRenderedCodeDecodesToInput(t *testing.T) {
	const id = "11111111-1111-1111-1111-111111111111"

	data, err := NewGenerator().render(id)
	require.NoError(t, err)

	assert.Equal(t, id, decodeQR(t, data))
}

func TestGenerate_SingleIdentifierSinglePage(t *testing.T) {
	doc, err := NewGenerator().Generate([]string{"11111111-1111-1111-1111-111111111111"})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
	assert.Equal(t, 1, pageCount(doc))
}

func TestGenerate_OnePagePerIdentifierInOrder(t *testing.T) {
	ids := []string{
		"a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11",
		"11111111-1111-1111-1111-111111111111",
		"22222222-2222-2222-2222-222222222222",
	}

	realRender := NewGenerator().render
	var rendered []string
	g := NewGeneratorWithRenderer(func(text string) ([]byte, error) {
		rendered = append(rendered, text)
		return realRender(text)
	})

	doc, err := g.Generate(ids)
	require.NoError(t, err)

	assert.Equal(t, ids, rendered, "identifiers render in input order")
	assert.Equal(t, len(ids), pageCount(doc))
}

func TestGenerate_SameInputSameContent(t *testing.T) {
	const id = "a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11"
	g := NewGenerator()

	first, err := g.render(id)
	require.NoError(t, err)
	second, err := g.render(id)
	require.NoError(t, err)

	// the document bytes may drift (container metadata), the code content not
	assert.Equal(t, decodeQR(t, first), decodeQR(t, second))
}

func TestGenerate_RenderFailurePropagates(t *testing.T) {
	g := NewGeneratorWithRenderer(func(string) ([]byte, error) {
		return nil, errors.New("render blew up")
	})

	_, err := g.Generate([]string{"11111111-1111-1111-1111-111111111111"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "render blew up")
}
