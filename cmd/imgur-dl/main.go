package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/handiism/imgur-downloader/internal/config"
	"github.com/handiism/imgur-downloader/internal/download"
)

func main() {
	// Command line flags
	var (
		outputFlag      = flag.String("output", "", "Base output directory (overrides config)")
		configFlag      = flag.String("config", "", "Path to config file")
		concurrencyFlag = flag.Int("concurrency", 0, "Maximum concurrent downloads (overrides config)")
		headSizesFlag   = flag.Bool("head-sizes", false, "Verify item sizes with HEAD requests instead of trusting album metadata")
		verboseFlag     = flag.Bool("verbose", false, "Show verbose output")
		dryRunFlag      = flag.Bool("dry-run", false, "Fetch metadata and list files without downloading")
	)

	flag.Parse()

	// Exactly one album reference is expected
	if flag.NArg() != 1 {
		fmt.Println("imgur-dl - Download imgur albums and galleries")
		fmt.Println()
		fmt.Println("The album is downloaded into a directory named after the album id.")
		fmt.Println("Files are named after their position in the album. Existing files are")
		fmt.Println("skipped if they have the correct size as reported by imgur.")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  imgur-dl [options] <album-id-or-url>")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  imgur-dl vNOUshX")
		fmt.Println("  imgur-dl https://imgur.com/a/vNOUshX")
		fmt.Println("  imgur-dl https://imgur.com/gallery/vNOUshX")
		fmt.Println()
		fmt.Println("For interactive mode, use: imgur-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *outputFlag != "" {
		settings.DownloadsPath = *outputFlag
	}
	if *concurrencyFlag > 0 {
		settings.MaxConcurrentDownloads = *concurrencyFlag
	}
	if *headSizesFlag {
		settings.VerifySizeWithHead = true
	}

	reference := flag.Arg(0)

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager := download.NewManager(settings, func(event download.ProgressEvent) {
		if event.Level == download.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := "  "
		switch event.Level {
		case download.LevelError:
			prefix = "x "
		case download.LevelWarning:
			prefix = "! "
		case download.LevelSuccess:
			prefix = "+ "
		case download.LevelInfo:
			prefix = "> "
		}

		fmt.Println(prefix + event.Message)
	})

	if err := manager.Initialize(ctx, reference); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *dryRunFlag {
		album := manager.Album()
		fmt.Printf("\n[Dry run] would download %d file(s) to %s:\n", len(album.Media), album.Path)
		for _, name := range manager.MediaNames() {
			fmt.Println("  " + name)
		}
		return
	}

	if err := manager.StartDownloads(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nDownload cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error during download: %v\n", err)
		os.Exit(1)
	}

	received, downloaded, skipped, failed, total := manager.Progress()
	fmt.Println()
	fmt.Printf("Complete: %d/%d file(s) downloaded, %d skipped, %d failed (%s)\n",
		downloaded, total, skipped, failed, humanize.Bytes(uint64(received)))
}
