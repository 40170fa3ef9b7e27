package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/playground"
	"github.com/gogpu/playground/remap"
	"github.com/gogpu/playground/sketch"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { playground.SetLogger(nil) })
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseRules(t *testing.T) {
	rules, err := parseRules([]string{"#000000=#00000000", " #ffffff = #ff0000 "})
	require.NoError(t, err)
	assert.Equal(t, []remap.Rule{
		{Target: remap.Black, Replacement: remap.Transparent},
		{Target: remap.White, Replacement: remap.RGBA{R: 255, A: 255}},
	}, rules)

	_, err = parseRules([]string{"#000000"})
	assert.Error(t, err)
	_, err = parseRules([]string{"#000000=red"})
	assert.Error(t, err)
}

func TestReplay(t *testing.T) {
	c := sketch.New()
	err := replay(c, strings.NewReader("# comment\npen 1,2 3,4\n\neraser 5,6 7,8 9,10\n"))
	require.NoError(t, err)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, sketch.Pen, lines[0].Tool)
	assert.Len(t, lines[1].Points, 3)
	assert.Equal(t, sketch.Eraser, lines[1].Tool)

	assert.Error(t, replay(sketch.New(), strings.NewReader("brush 1,1\n")))
	assert.Error(t, replay(sketch.New(), strings.NewReader("pen 1;1\n")))
}

func TestRemapCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "mask.png")
	out := filepath.Join(dir, "out", "result.png")

	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	writePNG(t, in, img)

	_, err := run(t, "remap", in, "-o", out, "-r", "#ffffff=#00ff00")
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	got, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{A: 255}, color.NRGBAModel.Convert(got.At(0, 0)))
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, color.NRGBAModel.Convert(got.At(1, 0)))
}

func TestRemapCommand_NotPNG(t *testing.T) {
	in := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(in, []byte("hello"), 0o600))

	_, err := run(t, "remap", in)
	var de *remap.DecodeError
	assert.ErrorAs(t, err, &de)
}

func TestWriteURI(t *testing.T) {
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(2, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	out := filepath.Join(dir, "nested", "piece.png")
	require.NoError(t, writeURI(out, remap.DataURI(buf.Bytes())))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	got, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), got.Bounds())
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 40}, color.NRGBAModel.Convert(got.At(2, 1)))
}

func TestWriteURI_RejectsNonPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bad.png")

	err := writeURI(out, "data:image/png;base64,aGVsbG8=")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.png")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "nothing is written for an invalid payload")
}

func TestPaletteCommand(t *testing.T) {
	out, err := run(t, "palette", "3")
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out), 3)

	_, err = run(t, "palette", "zero")
	assert.Error(t, err)
}

func TestPromptCommand(t *testing.T) {
	out, err := run(t, "prompt")
	require.NoError(t, err)
	assert.Contains(t, out, "Output Format")

	out, err = run(t, "prompt", "condition")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Condition"))

	out, err = run(t, "prompt", "--id", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Imitate")
}
