// Command texprobe pushes an image through the texture shim and writes what
// reads back.
//
// The image is converted to the requested client format and type, embedded
// in a larger buffer when unpack parameters are given, uploaded with
// TexImage2D onto the in-memory device, read back with GetTexImage and
// saved as PNG.
//
//	texprobe -input photo.png -format bgr -type ubyte -row-length 640 -skip-rows 3
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	_ "golang.org/x/image/bmp"

	"github.com/templeblock/gl4es"
	"github.com/templeblock/gl4es/internal/pixel"
	"github.com/templeblock/gl4es/internal/softgl"
	"github.com/templeblock/gl4es/texture"
)

var formats = map[string]gl4es.Enum{
	"rgba":            gl4es.RGBA,
	"bgra":            gl4es.BGRA,
	"rgb":             gl4es.RGB,
	"bgr":             gl4es.BGR,
	"alpha":           gl4es.ALPHA,
	"luminance":       gl4es.LUMINANCE,
	"luminance_alpha": gl4es.LUMINANCE_ALPHA,
}

var types = map[string]gl4es.Enum{
	"ubyte":    gl4es.UNSIGNED_BYTE,
	"float":    gl4es.FLOAT,
	"565":      gl4es.UNSIGNED_SHORT_5_6_5,
	"4444":     gl4es.UNSIGNED_SHORT_4_4_4_4,
	"5551":     gl4es.UNSIGNED_SHORT_5_5_5_1,
	"8888_rev": gl4es.UNSIGNED_INT_8_8_8_8_REV,
}

func main() {
	var (
		input      = flag.String("input", "", "input image (png or bmp); a test pattern when empty")
		output     = flag.String("output", "readback.png", "output file")
		width      = flag.Int("width", 100, "test pattern width")
		height     = flag.Int("height", 70, "test pattern height")
		format     = flag.String("format", "rgba", "client pixel format")
		typ        = flag.String("type", "ubyte", "client pixel type")
		rowLength  = flag.Int("row-length", 0, "GL_UNPACK_ROW_LENGTH in pixels")
		skipPixels = flag.Int("skip-pixels", 0, "GL_UNPACK_SKIP_PIXELS")
		skipRows   = flag.Int("skip-rows", 0, "GL_UNPACK_SKIP_ROWS")
		shrink     = flag.Bool("shrink", false, "halve the upload (LIBGL_SHRINK)")
		dumpDir    = flag.String("dump", "", "dump uploads to this directory (LIBGL_TEXDUMP)")
		dumpFormat = flag.String("dump-format", "png", "dump encoder: "+strings.Join(pixel.Encoders(), ", "))
		showCalls  = flag.Bool("calls", false, "print the device calls of the upload and readback")
		verbose    = flag.Bool("v", false, "log debug messages")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	gl4es.SetLogger(logger)

	src, err := loadImage(*input, *width, *height)
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}
	f, ok := formats[*format]
	if !ok {
		log.Fatalf("Unknown format %q", *format)
	}
	ty, ok := types[*typ]
	if !ok {
		log.Fatalf("Unknown type %q", *typ)
	}

	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	client, err := pixel.Convert(src.Pix, w, h, gl4es.RGBA, gl4es.UNSIGNED_BYTE, f, ty)
	if err != nil {
		log.Fatalf("Failed to convert to %s/%s: %v", *format, *typ, err)
	}
	cfg := texture.UnpackConfig{RowLength: int32(*rowLength), SkipPixels: int32(*skipPixels), SkipRows: int32(*skipRows)}
	data, err := embed(client, w, h, pixel.SizeOf(f, ty), cfg)
	if err != nil {
		log.Fatalf("Bad unpack parameters: %v", err)
	}

	env := gl4es.LoadEnv()
	env.Shrink = env.Shrink || *shrink
	if *dumpDir != "" {
		env.TexDump, env.DumpDir, env.DumpFormat = true, *dumpDir, *dumpFormat
	}

	dev := softgl.New(texture.DefaultMaxUnits)
	ctx := texture.NewContext(dev, texture.WithOffscreen(dev), texture.WithEnv(env))

	const name = 1
	ctx.BindTexture(gl4es.TEXTURE_2D, name)
	ctx.PixelStorei(gl4es.UNPACK_ROW_LENGTH, cfg.RowLength)
	ctx.PixelStorei(gl4es.UNPACK_SKIP_PIXELS, cfg.SkipPixels)
	ctx.PixelStorei(gl4es.UNPACK_SKIP_ROWS, cfg.SkipRows)
	if err := ctx.TexImage2D(gl4es.TEXTURE_2D, 0, int32(gl4es.RGBA), w, h, 0, f, ty, data); err != nil {
		log.Fatalf("Upload failed: %v", err)
	}

	obj := ctx.Bound()
	logger.Info("uploaded",
		"texture", obj.Name,
		"width", obj.Width, "height", obj.Height,
		"npotWidth", obj.NPOTWidth, "npotHeight", obj.NPOTHeight,
		"storage", obj.Format,
		"calls", len(dev.Calls()))

	out := image.NewNRGBA(image.Rect(0, 0, obj.Width, obj.Height))
	if err := ctx.GetTexImage(gl4es.TEXTURE_2D, 0, gl4es.RGBA, gl4es.UNSIGNED_BYTE, out.Pix); err != nil {
		log.Fatalf("Readback failed: %v", err)
	}
	if *showCalls {
		printCalls(os.Stdout, dev.Calls())
	}
	if err := savePNG(*output, out); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Readback saved to %s (%dx%d)\n", *output, obj.Width, obj.Height)
}

// loadImage decodes path into an NRGBA image, or draws a test pattern when
// path is empty.
func loadImage(path string, width, height int) (*image.NRGBA, error) {
	if path == "" {
		return testPattern(width, height), nil
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	dst := image.NewNRGBA(img.Bounds().Sub(img.Bounds().Min))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst, nil
}

// testPattern returns a checkerboard over a red/green gradient.
func testPattern(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			i := img.PixOffset(x, y)
			img.Pix[i+0] = byte(x * 255 / max(width-1, 1))
			img.Pix[i+1] = byte(y * 255 / max(height-1, 1))
			if (x/8+y/8)%2 == 0 {
				img.Pix[i+2] = 255
			}
			img.Pix[i+3] = 255
		}
	}
	return img
}

// embed places tightly packed rows into a buffer laid out the way cfg
// describes, so the shim has to extract them again.
func embed(tight []byte, width, height, size int, cfg texture.UnpackConfig) ([]byte, error) {
	if !cfg.Needed(width) {
		return tight, nil
	}
	rowLen := width
	if cfg.RowLength != 0 {
		rowLen = int(cfg.RowLength)
	}
	skipPixels, skipRows := int(cfg.SkipPixels), int(cfg.SkipRows)
	if skipPixels < 0 || skipRows < 0 || rowLen < width+skipPixels {
		return nil, fmt.Errorf("row length %d cannot hold %d pixels after skipping %d", rowLen, width, skipPixels)
	}

	row := width * size
	buf := make([]byte, (skipRows+height)*rowLen*size)
	for y := range height {
		off := ((skipRows+y)*rowLen + skipPixels) * size
		copy(buf[off:off+row], tight[y*row:(y+1)*row])
	}
	return buf, nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// printCalls writes the device call log as a table.
func printCalls(w io.Writer, calls []softgl.Call) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Call", "Target", "Level", "Offset", "Size", "Format", "Type", "Data"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)

	for i, c := range calls {
		row := []string{strconv.Itoa(i), c.Name, "", "", "", "", "", "", ""}
		if c.Target != 0 {
			row[2] = c.Target.String()
		}
		switch c.Name {
		case "TexImage2D", "TexSubImage2D", "ReadPixels":
			row[3] = strconv.Itoa(c.Level)
			row[4] = fmt.Sprintf("%d,%d", c.X, c.Y)
			row[5] = fmt.Sprintf("%dx%d", c.Width, c.Height)
			row[6], row[7] = c.Format.String(), c.Type.String()
			row[8] = strconv.FormatBool(c.HasData)
		case "RenderbufferStorage", "DrawTexture":
			row[5] = fmt.Sprintf("%dx%d", c.Width, c.Height)
			if c.Format != 0 {
				row[6] = c.Format.String()
			}
		}
		table.Append(row)
	}
	table.Render()
}
