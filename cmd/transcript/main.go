package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"ytranscript/internal/youtube"
)

func main() {
	var (
		videoID    = flag.String("video", "", "YouTube video ID or URL")
		languages  = flag.String("languages", "en", "Comma-separated language codes in order of preference")
		format     = flag.String("format", "text", "Output format: text, json, srt, vtt")
		outputFile = flag.String("o", "", "Output file (default: stdout)")
		listLangs  = flag.Bool("list", false, "List available transcripts")
		verbose    = flag.Bool("v", false, "Verbose output")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -video dQw4w9WgXcQ\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -video dQw4w9WgXcQ -languages en,es\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -video dQw4w9WgXcQ -format srt -o output.srt\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -video dQw4w9WgXcQ -list\n", os.Args[0])
	}

	flag.Parse()

	// Validate input
	if *videoID == "" {
		fmt.Fprintf(os.Stderr, "Error: YouTube video ID is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	// Validate format
	validFormats := map[string]bool{"text": true, "json": true, "srt": true, "vtt": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: Invalid format '%s'. Must be: text, json, srt, or vtt\n", *format)
		os.Exit(1)
	}

	client := youtube.NewClient()

	// List available transcripts
	if *listLangs {
		tracks, err := client.ListTranscripts(*videoID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to list transcripts: %v\n", err)
			os.Exit(1)
		}
		printTrackList(tracks)
		return
	}

	langs := strings.Split(*languages, ",")

	if *verbose {
		fmt.Fprintf(os.Stderr, "Fetching transcript (languages: %s)...\n", *languages)
	}

	result, err := client.GetCaption(*videoID, langs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to fetch transcript: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "Fetched %d caption lines (language: %s)\n", len(result.Lines), result.LanguageCode)
	}

	// Format output
	var output string
	switch *format {
	case "json":
		output, err = result.FormatAsJSON()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to format JSON: %v\n", err)
			os.Exit(1)
		}
	case "srt":
		output = result.FormatAsSRT()
	case "vtt":
		output = result.FormatAsVTT()
	default:
		output = result.FormatAsText()
	}

	// Write output
	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to write output file: %v\n", err)
			os.Exit(1)
		}
		if *verbose {
			fmt.Fprintf(os.Stderr, "Output written to: %s\n", *outputFile)
		}
	} else {
		fmt.Println(output)
	}
}

func printTrackList(tracks []youtube.Track) {
	fmt.Println("=== Available Transcripts ===")
	for i, track := range tracks {
		kind := "manual"
		if track.IsGenerated {
			kind = "generated"
		}
		translatable := ""
		if track.IsTranslatable {
			translatable = ", translatable"
		}
		fmt.Printf("%d. %s (%s, %s%s)\n", i+1, track.LanguageCode, track.Language, kind, translatable)
	}
}
