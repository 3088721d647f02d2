package cmd

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	barcode "github.com/gobarcode/core"
	"github.com/gobarcode/core/binarizer"

	// Register the symbology readers this module covers.
	_ "github.com/gobarcode/core/aztec"
	_ "github.com/gobarcode/core/datamatrix"
	_ "github.com/gobarcode/core/qrcode"
)

// scanFormats lists every format buildReaders should attempt.
var scanFormats = []barcode.Format{
	barcode.FormatAztec,
	barcode.FormatDataMatrix,
	barcode.FormatQRCode,
}

// NewScanCmd builds the "scan" subcommand.
func NewScanCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <image-file> [image-file...]",
		Short: "scan one or more image files for barcodes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tryHarder, _ := cmd.Flags().GetBool("try-harder")
			pure, _ := cmd.Flags().GetBool("pure")

			exitCode := 0
			for _, path := range args {
				if err := scanPath(ctx, path, tryHarder, pure, len(args) > 1); err != nil {
					fmt.Fprintf(os.Stderr, "%s: error: %v\n", path, err)
					exitCode = 1
				}
			}
			if exitCode != 0 {
				os.Exit(exitCode)
			}
			return nil
		},
	}
	cmd.Flags().Bool("try-harder", false, "spend more time looking for barcodes")
	cmd.Flags().Bool("pure", false, "hint that the image is a clean barcode render with minimal border")
	return cmd
}

// scanPath decodes every barcode found in one image file, logging the
// attempt under a per-scan correlation ID and printing each match to stdout.
func scanPath(ctx context.Context, path string, tryHarder, pure, multi bool) error {
	scanID := uuid.NewString()
	log := slog.With("scan_id", scanID, "path", path)
	log.InfoContext(ctx, "scanning image")

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	barcodes := scanImage(ctx, img, tryHarder, pure, log)
	if len(barcodes) == 0 {
		log.WarnContext(ctx, "no barcodes found")
		return fmt.Errorf("no barcodes found")
	}

	for _, b := range barcodes {
		if multi {
			fmt.Printf("%s: ", path)
		}
		fmt.Printf("[%s] %s\n", b.Format, b.Text())
	}
	return nil
}

// scanImage runs every registered symbology reader over the image, retrying
// with a second binarizer strategy (GlobalHistogram first, then the locally
// adaptive Hybrid binarizer) the way the teacher's MultiFormatReader retry
// loop did, and de-duplicating identical (format, text) hits across passes.
func scanImage(ctx context.Context, img image.Image, tryHarder, pure bool, log *slog.Logger) []*barcode.Barcode {
	source := barcode.NewImageLuminanceSource(img)
	opts := &barcode.DecodeOptions{TryHarder: tryHarder, PureBarcode: pure}

	bitmaps := []*barcode.BinaryBitmap{
		barcode.NewBinaryBitmap(binarizer.NewGlobalHistogram(source)),
		barcode.NewBinaryBitmap(binarizer.NewHybrid(source)),
	}

	var out []*barcode.Barcode
	seen := map[string]bool{}

	for _, bitmap := range bitmaps {
		for _, format := range scanFormats {
			formatOpts := *opts
			formatOpts.PossibleFormats = []barcode.Format{format}

			b := decodeRecover(bitmap, &formatOpts, log)
			if b == nil || !b.IsValid() {
				continue
			}
			key := fmt.Sprintf("%s:%s", b.Format, b.Text())
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, b)
		}
	}
	return out
}

// decodeRecover calls barcode.DecodeBarcode but recovers from panics that
// decoders may raise on malformed input, logging and treating them as a
// miss rather than crashing the whole scan.
func decodeRecover(bitmap *barcode.BinaryBitmap, opts *barcode.DecodeOptions, log *slog.Logger) (b *barcode.Barcode) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn("decoder panic recovered", "panic", r)
			b = nil
		}
	}()
	return barcode.DecodeBarcode(bitmap, opts)
}
