package figure

import (
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/damca/ficus/internal/fsutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ScreenDPI is the resolution used when rendering for display.
const ScreenDPI = 96

var rasterFormats = map[string]bool{"png": true, "jpg": true, "jpeg": true, "tif": true, "tiff": true}
var vectorFormats = map[string]bool{"svg": true, "pdf": true, "eps": true, "tex": true}

// FormatOf returns the output format implied by path's extension.
func FormatOf(path string) (string, error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !rasterFormats[format] && !vectorFormats[format] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	return format, nil
}

// newCanvas returns a canvas for format. Raster canvases render at dpi;
// vector canvases ignore it.
func newCanvas(format string, w, h vg.Length, dpi int) (vg.CanvasWriterTo, error) {
	if rasterFormats[format] {
		c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
		switch format {
		case "png":
			return vgimg.PngCanvas{Canvas: c}, nil
		case "jpg", "jpeg":
			return vgimg.JpegCanvas{Canvas: c}, nil
		default:
			return vgimg.TiffCanvas{Canvas: c}, nil
		}
	}
	if vectorFormats[format] {
		return draw.NewFormattedCanvas(w, h, format)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Render draws the figure in format to w.
func (f *Figure) Render(w io.Writer, format string, dpi int) (int64, error) {
	width, height := f.size.lengths()
	c, err := newCanvas(format, width, height, dpi)
	if err != nil {
		return 0, err
	}
	f.Draw(draw.New(c))
	return c.WriteTo(w)
}

// Save writes the figure to path on fsys; the format comes from the
// extension. Missing parent directories are created.
func (f *Figure) Save(fsys fsutil.FileSystem, path string, dpi int) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}

	out, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := f.Render(out, format, dpi); err != nil {
		out.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// Image renders the figure to an in-memory raster at dpi.
func (f *Figure) Image(dpi int) image.Image {
	w, h := f.size.lengths()
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	f.Draw(draw.New(c))
	return c.Image()
}
