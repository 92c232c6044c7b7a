package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/hostbadge/hostbadge/internal/badge"
	"github.com/hostbadge/hostbadge/internal/nativeicon"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("hostbadge %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	contextName := flag.String("context", "corp", "operating context: corp or personal")
	colorHex := flag.String("color", "", "explicit machine color as 6 hex digits (optional '#' prefix); derived from host when empty")
	host := flag.String("host", "", "host identifier; empty values use a fixed sentinel")
	out := flag.String("out", "badge.png", "output file path")
	format := flag.String("format", "png", "output format: png or ico")
	flag.Usage = usage
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	ctx, err := parseContext(*contextName)
	if err != nil {
		log.Fatalf("hostbadge: %v", err)
	}

	img, err := badge.BuildIcon(ctx, *colorHex, *host)
	if err != nil {
		log.Fatalf("hostbadge: %v", err)
	}

	switch *format {
	case "png":
		if err := imgio.Save(*out, img, imgio.PNGEncoder()); err != nil {
			log.Fatalf("hostbadge: write %s: %v", *out, err)
		}
	case "ico":
		icon, err := nativeicon.FromImage(img)
		if err != nil {
			log.Fatalf("hostbadge: encode ico: %v", err)
		}
		if err := os.WriteFile(*out, icon.ICO, 0o644); err != nil {
			log.Fatalf("hostbadge: write %s: %v", *out, err)
		}
	default:
		log.Fatalf("hostbadge: unknown format %q (want png or ico)", *format)
	}

	if os.Getenv("HOSTBADGE_LOG_LEVEL") == "debug" {
		machine, _ := badge.MachineColor(*colorHex, *host)
		p := badge.NewPalette(ctx, machine)
		log.Printf("label=%q profile=%s machine=%s high=%s mid=%s",
			badge.Label(ctx, *host), p.Profile.Hex(), p.Machine.Hex(),
			p.HighContrast.Hex(), p.MidContrast.Hex())
	}
}

func parseContext(name string) (badge.Context, error) {
	switch name {
	case "corp":
		return badge.Corp, nil
	case "personal":
		return badge.Personal, nil
	default:
		return badge.Corp, fmt.Errorf("unknown context %q (want corp or personal)", name)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "hostbadge - deterministic host-identity icon generator")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage: hostbadge [options]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Environment variables:")
	fmt.Fprintln(os.Stderr, "  HOSTBADGE_LOG_LEVEL=debug    Log the resolved palette")
}
