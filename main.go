package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-render-sampling/pkg/core"
	"github.com/df07/go-render-sampling/pkg/curvemap"
	"github.com/df07/go-render-sampling/pkg/sampling"
)

func main() {
	// Parse command line flags
	pattern := flag.String("pattern", "filter", "Pattern to plot: 'filter', 'dof', 'disk', 'spiral', 'hemisphere', 'cosine' or 'cdf'")
	samples := flag.Int("samples", 256, "Number of samples to step")
	size := flag.Int("size", 512, "Output image size in pixels")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Sampling Pattern Plotter")
		fmt.Println("Usage: sampling.exe [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available patterns:")
		fmt.Println("  filter     - Anti-aliasing filter jitter scatter")
		fmt.Println("  dof        - Depth-of-field aperture web pattern")
		fmt.Println("  disk       - Uniform disk mapping of the lens dimensions")
		fmt.Println("  spiral     - Fibonacci spiral mapping of the lens dimensions")
		fmt.Println("  hemisphere - Hemisphere mapping of the AO dimensions, projected")
		fmt.Println("  cosine     - Cosine-weighted hemisphere around +Z, projected")
		fmt.Println("  cdf        - Response curve CDF and its numeric inverse")
		fmt.Println()
		fmt.Println("Output will be saved to output/<pattern>/plot_<timestamp>.png")
		return
	}

	logger := sampling.NewDefaultLogger()
	logger.Printf("Plotting '%s' pattern with %d samples...\n", *pattern, *samples)

	startTime := time.Now()
	img, err := renderPattern(*pattern, *samples, *size, logger)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	logger.Printf("Plot completed in %v\n", time.Since(startTime))

	// Create output directory for this pattern
	outputDir := filepath.Join("output", *pattern)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("plot_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error encoding PNG: %v\n", err)
		os.Exit(1)
	}
	logger.Printf("Saved %s\n", filename)
}

// newPlotSampler configures a batch sampler with DOF jittering enabled so the
// web pattern is live. Jittering may round the target up so the web pattern
// completes exactly.
func newPlotSampler(samples int, logger core.Logger) *sampling.Sampler {
	config := sampling.DefaultConfig()
	config.RenderSamples = samples
	config.DOFJitter = true

	sampler := sampling.NewSampler(config, logger)
	sampler.Init(sampling.SceneSource{})
	sampler.EndSync()
	return sampler
}

// renderPattern steps a sampler through an epoch and plots the requested
// view of its output
func renderPattern(pattern string, samples, size int, logger core.Logger) (*image.RGBA, error) {
	if samples < 1 {
		return nil, fmt.Errorf("sample count must be positive, got %d", samples)
	}
	if size < 16 {
		return nil, fmt.Errorf("image size too small: %d", size)
	}

	if pattern == "cdf" {
		return plotCDF(size), nil
	}

	sampler := newPlotSampler(samples, logger)

	uploadedBytes := 0
	sampler.SetUploadFunc(func(data []byte) {
		uploadedBytes += len(data)
	})

	img := newPlotImage(size)
	count := 0
	for !sampler.IsFinished() && count < samples {
		sampler.Step()
		count++

		switch pattern {
		case "filter":
			plotUnitSquare(img, sampler.Rand2(sampling.DimFilterU), size)
		case "dof":
			radius, theta := sampler.DOFDiskSample()
			plotDisk(img, core.NewVec2(radius*math.Cos(theta), radius*math.Sin(theta)), size)
		case "disk":
			plotDisk(img, sampling.SampleDisk(sampler.Rand2(sampling.DimLensU)), size)
		case "spiral":
			plotDisk(img, sampling.SampleSpiral(sampler.Rand2(sampling.DimLensU)), size)
		case "hemisphere":
			d := sampling.SampleHemisphere(sampler.Rand2(sampling.DimAOU))
			plotDisk(img, core.NewVec2(d.X, d.Y), size)
		case "cosine":
			d := sampling.SampleCosineHemisphere(core.NewVec3(0, 0, 1), sampler.Rand2(sampling.DimAOU))
			plotDisk(img, core.NewVec2(d.X, d.Y), size)
		default:
			return nil, fmt.Errorf("unknown pattern: %s", pattern)
		}
	}

	logger.Printf("Stepped %d samples, uploaded %d bytes of dimension data\n", count, uploadedBytes)
	return img, nil
}

// plotCDF draws a response curve's CDF and its numeric inverse as point rows
func plotCDF(size int) *image.RGBA {
	img := newPlotImage(size)

	mapping := curvemap.New([]curvemap.Point{
		{X: 0, Y: 0.05},
		{X: 0.4, Y: 0.2},
		{X: 0.7, Y: 0.9},
		{X: 1, Y: 1},
	})

	const tableLen = 64
	cdf := make([]float64, tableLen)
	inverted := make([]float64, tableLen)
	sampling.CDFFromCurve(mapping, cdf)
	sampling.CDFInvert(cdf, inverted)

	for i := 0; i < tableLen; i++ {
		x := float64(i) / float64(tableLen-1)
		plotAt(img, x, cdf[i], size, color.RGBA{R: 255, G: 80, B: 80, A: 255})
		plotAt(img, x, inverted[i], size, color.RGBA{R: 80, G: 160, B: 255, A: 255})
	}
	return img
}

func newPlotImage(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 16, G: 16, B: 16, A: 255})
		}
	}
	return img
}

// plotUnitSquare draws a point from [0,1)^2
func plotUnitSquare(img *image.RGBA, p core.Vec2, size int) {
	plotAt(img, p.X, p.Y, size, color.RGBA{R: 240, G: 240, B: 240, A: 255})
}

// plotDisk draws a point from [-1,1]^2
func plotDisk(img *image.RGBA, p core.Vec2, size int) {
	plotAt(img, (p.X+1)/2, (p.Y+1)/2, size, color.RGBA{R: 240, G: 240, B: 240, A: 255})
}

func plotAt(img *image.RGBA, x, y float64, size int, c color.RGBA) {
	px := int(x * float64(size-1))
	py := int((1 - y) * float64(size-1))
	if px < 0 || px >= size || py < 0 || py >= size {
		return
	}
	img.SetRGBA(px, py, c)
}
