package cli

import (
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"pxsteg/pkg/config"
	pxstegImage "pxsteg/pkg/image"
	"pxsteg/pkg/model"
	"text/tabwriter"
)

const passwordEnvVar = "PXSTEG_PASSWORD"

func ImageCommands() *cobra.Command {
	imageCmd := &cobra.Command{
		Use:     "image",
		Short:   "Performs steganography operations on images",
		Example: "pxsteg image hide --image source.png --output stego.png --text \"meet at noon\" --bits 2 --password secret",
	}

	imageCmd.AddCommand(capacityCommand(), hideCommand(), revealCommand(), visualizeCommand(), analyzeCommand())
	return imageCmd
}

type encodeOpts struct {
	bitsPerChannel  int
	channels        string
	compress        bool
	password        string
	errorCorrection string
	pngCompression  string
	outputFormat    string
}

func (o encodeOpts) toEncodeConfig(outputPath string) (config.ImageEncodeConfig, error) {
	if o.bitsPerChannel < 1 || o.bitsPerChannel > 8 {
		return config.ImageEncodeConfig{}, fmt.Errorf("%w: bits per channel must be between 1 and 8, got %d",
			model.ErrInvalidParameter, o.bitsPerChannel)
	}
	channels, err := model.ParseChannelMask(o.channels)
	if err != nil {
		return config.ImageEncodeConfig{}, err
	}
	errorCorrection, err := model.ParseErrorCorrectionLevel(o.errorCorrection)
	if err != nil {
		return config.ImageEncodeConfig{}, err
	}
	pngCompression, err := parsePngCompression(o.pngCompression)
	if err != nil {
		return config.ImageEncodeConfig{}, err
	}
	outputFormat, err := outputFormatFor(o.outputFormat, outputPath)
	if err != nil {
		return config.ImageEncodeConfig{}, err
	}

	password := o.password
	if password == "" {
		password = os.Getenv(passwordEnvVar)
	}
	return config.ImageEncodeConfig{
		BitsPerChannel:      byte(o.bitsPerChannel),
		Channels:            channels,
		Compress:            o.compress,
		Password:            password,
		ErrorCorrection:     errorCorrection,
		PngCompressionLevel: pngCompression,
		OutputFormat:        outputFormat,
	}, nil
}

func capacityCommand() *cobra.Command {
	var sourceImage, channels string
	var bitsPerChannel int

	capacityCmd := &cobra.Command{
		Use:     "capacity",
		Example: "pxsteg image capacity --image source.png --channels RGB --bits 2",
		Short:   "Show how much data fits in an image for every bits per channel setting, or for a single one",
		RunE: func(cmd *cobra.Command, args []string) error {
			mask, err := model.ParseChannelMask(channels)
			if err != nil {
				return err
			}
			srcImage, err := pxstegImage.LoadImageFromFile(sourceImage)
			if err != nil {
				return err
			}
			if bitsPerChannel != 0 {
				bounds := srcImage.Bounds()
				report, err := pxstegImage.NewCapacityReportForDepth(bounds.Dx(), bounds.Dy(), mask, bitsPerChannel)
				if err != nil {
					return err
				}
				return PrintCapacityReport(cmd.OutOrStdout(), report)
			}
			report, err := pxstegImage.ImageCapacityReport(srcImage, mask)
			if err != nil {
				return err
			}
			return PrintCapacityReport(cmd.OutOrStdout(), report)
		},
	}

	capacityCmd.Flags().StringVar(&sourceImage, "image", "", "Image to calculate the capacity of")
	capacityCmd.Flags().StringVar(&channels, "channels", "RGB", "Channels to embed in, any combination of R, G and B")
	capacityCmd.Flags().IntVar(&bitsPerChannel, "bits", 0, "Only report the capacity at this bits per channel setting, 1-8")
	MarkFlagsRequired(capacityCmd, "image")
	return capacityCmd
}

func PrintCapacityReport(w io.Writer, report model.CapacityReport) error {
	fmt.Fprintf(w, "%dx%d image, channels %s\n", report.Width, report.Height, report.Channels)
	if row := report.Selected; row != nil {
		_, err := fmt.Fprintf(w, "%d bits per channel: %d usable bytes (%s), %d raw bits\n", row.BitsPerChannel,
			row.UsableBytes, humanize.IBytes(uint64(row.UsableBytes)), row.CapacityBits)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "BITS\tRAW BITS\tUSABLE BYTES\tUSABLE\t")
	for _, row := range report.Rows {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t\n", row.BitsPerChannel, row.CapacityBits, row.UsableBytes,
			humanize.IBytes(uint64(row.UsableBytes)))
	}
	return tw.Flush()
}

type hideOpts struct {
	sourceImage string
	outputImage string
	text        string
	file        string
	config      encodeOpts
}

func hideCommand() *cobra.Command {
	opts := hideOpts{}

	hideCmd := &cobra.Command{
		Use:     "hide",
		Example: "pxsteg image hide --image source.png --output stego.png --file secret.pdf --compress --ecc low",
		Short:   "Hide text or a file in an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			iConfig, err := opts.config.toEncodeConfig(opts.outputImage)
			if err != nil {
				return err
			}
			return HideInImage(cmd.OutOrStdout(), opts, iConfig)
		},
	}

	hideCmd.Flags().StringVar(&opts.sourceImage, "image", "", "Cover image to hide data in (it will not be modified)")
	hideCmd.Flags().StringVar(&opts.outputImage, "output", "", "Path for the generated image, written as PNG or BMP")
	hideCmd.Flags().StringVar(&opts.text, "text", "", "Text to hide")
	hideCmd.Flags().StringVar(&opts.file, "file", "", "File to hide, its name is stored along with it")
	addEncodeFlags(hideCmd, &opts.config)

	MarkFlagsRequired(hideCmd, "image", "output")
	hideCmd.MarkFlagsMutuallyExclusive("text", "file")
	hideCmd.MarkFlagsOneRequired("text", "file")
	return hideCmd
}

func addEncodeFlags(cmd *cobra.Command, opts *encodeOpts) {
	cmd.Flags().IntVar(&opts.bitsPerChannel, "bits", config.DefaultBitsPerChannel, "Least significant bits to use from each channel. Can be 1-8. The more bits are used, the more distortion will be noticeable in the final image")
	cmd.Flags().StringVar(&opts.channels, "channels", "RGB", "Channels to embed in, any combination of R, G and B")
	cmd.Flags().BoolVar(&opts.compress, "compress", false, "Compress the payload with zstd, only kept if it makes the payload smaller")
	cmd.Flags().StringVar(&opts.password, "password", "", "Encrypt the payload with a key derived from this password. Falls back to the "+passwordEnvVar+" environment variable")
	cmd.Flags().StringVar(&opts.errorCorrection, "ecc", "none", "Reed-Solomon error correction level. Options are none, low, medium, high")
	cmd.Flags().StringVar(&opts.pngCompression, "png-compression", "default", "Compression for output png. Options are default, none, fast, best")
	cmd.Flags().StringVar(&opts.outputFormat, "format", "", "Output format, png or bmp. Defaults to the extension of the output path, or png")
}

func HideInImage(out io.Writer, opts hideOpts, iConfig config.ImageEncodeConfig) error {
	s := NewSpinner()
	s.Prefix = "Reading source image from disk "
	s.Start()
	defer s.Stop()

	srcImage, err := pxstegImage.LoadImageFromFile(opts.sourceImage)
	if err != nil {
		return err
	}

	s.Prefix = "Setting up encoder "
	iEncoder, err := pxstegImage.NewImageEncoder(srcImage, iConfig)
	if err != nil {
		return err
	}

	var result model.HideResult
	if opts.file != "" {
		s.Prefix = "Reading file to hide "
		content, err := os.ReadFile(opts.file)
		if err != nil {
			return err
		}
		s.Prefix = "Hiding file "
		result, err = iEncoder.HideFile(filepath.Base(opts.file), content)
		if err != nil {
			return err
		}
	} else {
		s.Prefix = "Hiding text "
		if result, err = iEncoder.HideText(opts.text); err != nil {
			return err
		}
	}

	s.Prefix = fmt.Sprintf("Generating output %s image ", iEncoder.Config().OutputFormat)
	outputFile, err := os.Create(opts.outputImage)
	if err != nil {
		return err
	}
	if err = iEncoder.WriteEncodedImage(outputFile); err != nil {
		_ = outputFile.Close()
		return err
	}
	if err = outputFile.Close(); err != nil {
		return err
	}
	s.Stop()

	fmt.Fprintf(out, "Generated %s\n", opts.outputImage)
	printHideResult(out, result)
	stats := iEncoder.Stats()
	fmt.Fprintf(out, "Transform time: %s\nEmbed time: %s (header %s)\nOutput image encode time: %s\n",
		stats.Transform, stats.HeaderEmbedding+stats.PayloadEmbedding, stats.HeaderEmbedding, stats.OutputImageEncoding)
	return nil
}

func printHideResult(w io.Writer, result model.HideResult) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Embedded payload:\t%s (%d bytes, %d bytes of overhead)\n", humanize.IBytes(uint64(result.PayloadSizeBytes)),
		result.PayloadSizeBytes, result.OverheadBytes)
	fmt.Fprintf(tw, "Capacity used:\t%s bits at %d bits per channel over %s\n", humanize.Comma(int64(result.UsedCapacityBits)),
		result.BitsPerChannel, result.Channels)
	if result.Compressed {
		fmt.Fprintf(tw, "Compression:\t%s, ratio %.2f\n", result.Compression, result.CompressionRatio)
	}
	if result.Encrypted {
		fmt.Fprintf(tw, "Encryption:\t%s, key derived with %s\n", result.Encryption, result.KDF)
	}
	fmt.Fprintf(tw, "Error correction:\t%s\n", result.ErrorCorrection)
	fmt.Fprintf(tw, "MSE / PSNR:\t%.4f / %.2f dB\n", result.MSE, result.PSNR)
	_ = tw.Flush()
}

type revealOpts struct {
	sourceImage      string
	password         string
	outputDir        string
	maxRevealedBytes int
}

func revealCommand() *cobra.Command {
	opts := revealOpts{}

	revealCmd := &cobra.Command{
		Use:     "reveal",
		Example: "pxsteg image reveal --image stego.png --password secret --output-dir recovered",
		Short:   "Reveal text or a file hidden in an image by pxsteg",
		Long:    "Reveal the payload hidden in an image. Text is printed to stdout, files are written to the output directory under their stored name",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.password == "" {
				opts.password = os.Getenv(passwordEnvVar)
			}
			return RevealFromImage(cmd.OutOrStdout(), opts)
		},
	}

	revealCmd.Flags().StringVar(&opts.sourceImage, "image", "", "Image generated by pxsteg to reveal data from")
	revealCmd.Flags().StringVar(&opts.password, "password", "", "Password used when hiding, if any. Falls back to the "+passwordEnvVar+" environment variable")
	revealCmd.Flags().StringVar(&opts.outputDir, "output-dir", ".", "Directory to write a revealed file to")
	revealCmd.Flags().IntVar(&opts.maxRevealedBytes, "max-revealed-bytes", 0, "Maximum decompressed size of the revealed payload, 0 scales the limit with the image size")
	MarkFlagsRequired(revealCmd, "image")
	return revealCmd
}

func RevealFromImage(out io.Writer, opts revealOpts) error {
	s := NewSpinner()
	s.Prefix = "Reading source image from disk "
	s.Start()
	defer s.Stop()

	srcImage, err := pxstegImage.LoadImageFromFile(opts.sourceImage)
	if err != nil {
		return err
	}

	s.Prefix = "Reading header "
	decoder, err := pxstegImage.NewImageDecoder(srcImage)
	if err != nil {
		return err
	}
	decoder.SetMaxRevealedBytes(opts.maxRevealedBytes)

	s.Prefix = "Revealing payload "
	revealed, err := decoder.Reveal(opts.password)
	if err != nil {
		return err
	}
	s.Stop()

	if revealed.Kind == model.PayloadText {
		_, err = out.Write(revealed.Content)
		return err
	}

	if err = os.MkdirAll(opts.outputDir, 0o755); err != nil {
		return err
	}
	outputPath := filepath.Join(opts.outputDir, revealed.Name)
	if err = os.WriteFile(outputPath, revealed.Content, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(out, "Revealed %s (%s)\n", outputPath, humanize.IBytes(uint64(len(revealed.Content))))
	return nil
}

type visualizeOpts struct {
	sourceImage string
	channel     string
	bit         int
	all         bool
	output      string
}

func visualizeCommand() *cobra.Command {
	opts := visualizeOpts{}

	visualizeCmd := &cobra.Command{
		Use:     "visualize",
		Example: "pxsteg image visualize --image stego.png --channel R --bit 0 --output red-lsb.png",
		Short:   "Render bit planes of an image as black and white PNGs",
		RunE: func(cmd *cobra.Command, args []string) error {
			channel, err := model.ParseChannel(opts.channel)
			if err != nil {
				return err
			}
			return VisualizeImage(cmd.OutOrStdout(), opts, channel)
		},
	}

	visualizeCmd.Flags().StringVar(&opts.sourceImage, "image", "", "Image to render bit planes of")
	visualizeCmd.Flags().StringVar(&opts.channel, "channel", "R", "Channel to render, R, G or B")
	visualizeCmd.Flags().IntVar(&opts.bit, "bit", 0, "Bit index to render, 0 is the least significant")
	visualizeCmd.Flags().BoolVar(&opts.all, "all", false, "Render all eight planes of the channel, the output is then used as a directory")
	visualizeCmd.Flags().StringVar(&opts.output, "output", "", "Output PNG, or directory when --all is set")
	MarkFlagsRequired(visualizeCmd, "image", "output")
	return visualizeCmd
}

func VisualizeImage(out io.Writer, opts visualizeOpts, channel model.Channel) error {
	srcImage, err := pxstegImage.LoadImageFromFile(opts.sourceImage)
	if err != nil {
		return err
	}

	if !opts.all {
		plane, err := pxstegImage.ExtractPlane(srcImage, channel, opts.bit)
		if err != nil {
			return err
		}
		if err = writeImageFile(opts.output, plane); err != nil {
			return err
		}
		fmt.Fprintf(out, "Rendered bit %d of channel %s to %s\n", opts.bit, channel, opts.output)
		return nil
	}

	planes, err := pxstegImage.ExtractAllPlanes(srcImage, channel)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(opts.output, 0o755); err != nil {
		return err
	}
	for bit, plane := range planes {
		outputPath := filepath.Join(opts.output, fmt.Sprintf("%s-bit%d.png", channel, bit))
		if err = writeImageFile(outputPath, plane); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "Rendered %d bit planes of channel %s to %s\n", len(planes), channel, opts.output)
	return nil
}

func writeImageFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = pxstegImage.EncodeImage(f, img, config.OutputFormatPNG, png.DefaultCompression); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func analyzeCommand() *cobra.Command {
	var sourceImage string

	analyzeCmd := &cobra.Command{
		Use:     "analyze",
		Example: "pxsteg image analyze --image suspect.png",
		Short:   "Report least significant bit statistics of an image and whether it carries a pxsteg header",
		RunE: func(cmd *cobra.Command, args []string) error {
			srcImage, err := pxstegImage.LoadImageFromFile(sourceImage)
			if err != nil {
				return err
			}
			result, err := pxstegImage.Analyze(srcImage)
			if err != nil {
				return err
			}
			return PrintAnalysis(cmd.OutOrStdout(), result)
		},
	}

	analyzeCmd.Flags().StringVar(&sourceImage, "image", "", "Image to analyze")
	MarkFlagsRequired(analyzeCmd, "image")
	return analyzeCmd
}

func PrintAnalysis(w io.Writer, result model.AnalysisResult) error {
	fmt.Fprintf(w, "%dx%d image\n", result.Width, result.Height)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "CHANNEL\tONES RATIO\tENTROPY\tTRANSITIONS\t")
	for _, c := range result.Channels {
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.4f\t\n", c.Channel, c.OnesRatio, c.Entropy, c.Transitions)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if result.HeaderDetected {
		h := result.Header
		fmt.Fprintf(w, "pxsteg header found: version %d, %s payload of %s at %d bits per channel over %s\n", h.Version,
			payloadKind(h.Flags), humanize.IBytes(uint64(h.PayloadLength)), h.BitsPerChannel, h.Channels)
		fmt.Fprintf(w, "Compressed: %t, encrypted: %t, error correction: %s\n", h.Flags.Compressed, h.Flags.Encrypted,
			h.Flags.ErrorCorrection)
	} else {
		fmt.Fprintln(w, "No pxsteg header found")
	}
	_, err := fmt.Fprintf(w, "Suspicion score: %.2f\n", result.Suspicion)
	return err
}

func payloadKind(flags model.Flags) model.PayloadKind {
	if flags.File {
		return model.PayloadFile
	}
	return model.PayloadText
}
