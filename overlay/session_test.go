package overlay

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/playground/remap"
)

// maskURI returns a 4×2 mask: left half white, right half black.
func maskURI(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := range 2 {
		for x := range 4 {
			c := color.NRGBA{A: 255}
			if x < 2 {
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return remap.DataURI(buf.Bytes())
}

func pixel(t *testing.T, uri string, x, y int) color.NRGBA {
	t.Helper()
	data, err := remap.ParseDataURI(uri)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func started(t *testing.T, opts ...Option) *Session {
	t.Helper()
	s := New(opts...)
	require.NoError(t, s.Start())
	t.Cleanup(s.Stop)
	return s
}

func TestSession_Lifecycle(t *testing.T) {
	s := New()

	assert.ErrorIs(t, s.Load(nil), ErrNotStarted)
	_, err := s.Toggle(0)
	assert.ErrorIs(t, err, ErrNotStarted)

	require.NoError(t, s.Start())
	require.NoError(t, s.Start(), "second Start is a no-op")
	require.NoError(t, s.Load(nil))

	s.Stop()
	s.Stop()
	assert.ErrorIs(t, s.Start(), ErrStopped)
	assert.ErrorIs(t, s.Load(nil), ErrStopped)
	_, err = s.Colorize(context.Background())
	assert.ErrorIs(t, err, ErrStopped)
}

func TestSession_Toggle(t *testing.T) {
	s := started(t)
	mask := maskURI(t)
	require.NoError(t, s.Load([]Segmentation{
		{Label: "person", Score: 0.98, Mask: mask},
		{Label: "dog", Score: 0.71, Mask: mask},
	}))

	covered, err := s.Toggle(1)
	require.NoError(t, err)
	assert.True(t, covered)
	assert.True(t, s.Covered(1))
	assert.False(t, s.Covered(0))

	covers := s.Covers()
	require.Len(t, covers, 1)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, pixel(t, covers[0], 0, 0))
	assert.Equal(t, color.NRGBA{}, pixel(t, covers[0], 3, 1))

	covered, err = s.Toggle(1)
	require.NoError(t, err)
	assert.False(t, covered)
	assert.Empty(t, s.Covers())
}

func TestSession_ToggleUsesCache(t *testing.T) {
	s := started(t)
	mask := maskURI(t)
	require.NoError(t, s.Load([]Segmentation{{Label: "a", Mask: mask}, {Label: "b", Mask: mask}}))

	_, err := s.Toggle(0)
	require.NoError(t, err)
	_, err = s.Toggle(1)
	require.NoError(t, err)

	st := s.cache.Stats()
	assert.Equal(t, uint64(1), st.Misses)
	assert.Equal(t, uint64(1), st.Hits)

	covers := s.Covers()
	require.Len(t, covers, 2)
	assert.Equal(t, covers[0], covers[1])
}

func TestSession_LoadResetsCovers(t *testing.T) {
	s := started(t)
	segs := []Segmentation{{Label: "a", Mask: maskURI(t)}}
	require.NoError(t, s.Load(segs))
	_, err := s.Toggle(0)
	require.NoError(t, err)

	require.NoError(t, s.Load(segs))
	assert.Empty(t, s.Covers())
	assert.False(t, s.Covered(0))
}

func TestSession_ToggleErrors(t *testing.T) {
	s := started(t)
	require.NoError(t, s.Load([]Segmentation{{Label: "broken", Mask: "not a png"}}))

	_, err := s.Toggle(5)
	assert.ErrorIs(t, err, ErrIndex)
	_, err = s.Toggle(-1)
	assert.ErrorIs(t, err, ErrIndex)

	covered, err := s.Toggle(0)
	var de *remap.DecodeError
	assert.ErrorAs(t, err, &de)
	assert.False(t, covered)
	assert.Empty(t, s.Covers())
}

func TestSession_CoverRulesOption(t *testing.T) {
	red := remap.RGBA{R: 255, A: 255}
	s := started(t, WithCoverRules(remap.Highlight(red)))
	require.NoError(t, s.Load([]Segmentation{{Mask: maskURI(t)}}))

	_, err := s.Toggle(0)
	require.NoError(t, err)
	assert.Equal(t, red.NRGBA(), pixel(t, s.Covers()[0], 0, 0))
}

func TestSession_Colorize(t *testing.T) {
	s := started(t, WithParallelism(2))
	mask := maskURI(t)
	require.NoError(t, s.Load([]Segmentation{
		{Label: "a", Mask: mask},
		{Label: "broken", Mask: "###"},
		{Label: "c", Mask: mask},
	}))

	out, err := s.Colorize(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Empty(t, out[1])

	colors := remap.Distinct(3)
	assert.Equal(t, colors[0].NRGBA(), pixel(t, out[0], 0, 0))
	assert.Equal(t, colors[2].NRGBA(), pixel(t, out[2], 1, 1))
	assert.Equal(t, color.NRGBA{}, pixel(t, out[2], 3, 0))
	assert.NotEqual(t, pixel(t, out[0], 0, 0), pixel(t, out[2], 0, 0))
}

func TestSession_ColorizeCancelled(t *testing.T) {
	s := started(t)
	require.NoError(t, s.Load([]Segmentation{{Mask: maskURI(t)}}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Colorize(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
