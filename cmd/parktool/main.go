// parktool is a CLI utility for inspecting legacy park save data.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/parkfmt/internal/config"
	"github.com/Faultbox/parkfmt/internal/logger"
	"github.com/Faultbox/parkfmt/pkg/rct12"
	"github.com/Faultbox/parkfmt/pkg/sawyer"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "info":
		cmdInfo(cfg, args)
	case "tiles":
		cmdTiles(cfg, args)
	case "entities":
		cmdEntities(cfg, args)
	case "research":
		cmdResearch(cfg, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`parktool - legacy park save data utility

Usage:
  parktool [flags] <command> <file>

Commands:
  info <file>       Scan the chunked container: encodings, sizes, checksum
  tiles <file>      Decode a raw tile element buffer and summarize by kind
  entities <file>   Decode a raw entity table and summarize by identifier
  research <file>   Decode a raw research list

Flags:
  -config <path>    Config file (default: parktool.yaml)
  -debug            Enable debug logging
  -logfile <path>   Write logs to file`)
}

// resolve finds a file directly or in the configured save paths.
func resolve(cfg *config.Config, name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}
	for _, dir := range cfg.Data.SavePaths {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("file not found: %s", name)
}

func readFileArg(cfg *config.Config, args []string, usage string) []byte {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}
	path, err := resolve(cfg, args[0])
	if err != nil {
		logger.Error("resolving file", zap.Error(err))
		os.Exit(1)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("reading file", zap.Error(err))
		os.Exit(1)
	}
	logger.Sugar.Debugf("read %d bytes from %s", len(data), path)
	return data
}

func cmdInfo(cfg *config.Config, args []string) {
	data := readFileArg(cfg, args, "Usage: parktool info <file>")

	r := bytes.NewReader(data)
	var chunks int
	var decodedTotal int
	encodings := make(map[sawyer.Encoding]int)

	for r.Len() > 4 {
		chunk, err := sawyer.ReadChunk(r)
		if err != nil {
			if errors.Is(err, sawyer.ErrTruncatedChunk) {
				break
			}
			logger.Error("reading chunk", zap.Int("chunk", chunks), zap.Error(err))
			os.Exit(1)
		}
		chunks++
		decodedTotal += len(chunk.Data)
		encodings[chunk.Encoding]++
	}

	fmt.Printf("File:     %s (%d bytes)\n", args[0], len(data))
	fmt.Printf("Chunks:   %d (%d bytes decoded)\n", chunks, decodedTotal)
	for _, enc := range []sawyer.Encoding{sawyer.EncodingNone, sawyer.EncodingRLE, sawyer.EncodingRLECompressed, sawyer.EncodingRotate} {
		if n := encodings[enc]; n > 0 {
			fmt.Printf("  %-12s %d\n", enc, n)
		}
	}
	if r.Len() == 4 {
		var trailer [4]byte
		io.ReadFull(r, trailer[:])
		stored := uint32(trailer[0]) | uint32(trailer[1])<<8 | uint32(trailer[2])<<16 | uint32(trailer[3])<<24
		computed := sawyer.Checksum(data[:len(data)-4])
		status := "OK"
		if stored != computed {
			status = fmt.Sprintf("MISMATCH (computed %08x)", computed)
		}
		fmt.Printf("Checksum: %08x %s\n", stored, status)
	}
}

func cmdTiles(cfg *config.Config, args []string) {
	data := readFileArg(cfg, args, "Usage: parktool tiles <file>")

	counts := make(map[rct12.TileElementType]int)
	var total, ghosts int
	for off := 0; off+rct12.TileElementSize <= len(data); off += rct12.TileElementSize {
		el, err := rct12.DecodeTileElement(data[off : off+rct12.TileElementSize])
		if err != nil {
			logger.Warn("skipping element", zap.Int("offset", off), zap.Error(err))
			continue
		}
		total++
		counts[el.ElementType()]++
		if el.IsGhost() {
			ghosts++
		}
	}

	fmt.Printf("Tile elements: %d (%d ghosts)\n", total, ghosts)
	type kindStat struct {
		kind  rct12.TileElementType
		count int
	}
	var stats []kindStat
	for kind, count := range counts {
		stats = append(stats, kindStat{kind, count})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].count > stats[j].count })
	for _, s := range stats {
		fmt.Printf("  %-20s %d\n", s.kind, s.count)
	}
}

func cmdEntities(cfg *config.Config, args []string) {
	data := readFileArg(cfg, args, "Usage: parktool entities <file>")

	counts := make(map[string]int)
	var total int
	for off := 0; off+rct12.EntitySlotSize <= len(data); off += rct12.EntitySlotSize {
		entity, err := rct12.DecodeEntity(data[off : off+rct12.EntitySlotSize])
		if err != nil {
			logger.Warn("skipping entity", zap.Int("offset", off), zap.Error(err))
			continue
		}
		base := entity.Base()
		if base.Identifier == rct12.EntityIdentifierNull {
			continue
		}
		total++
		counts[base.Identifier.String()]++
	}

	fmt.Printf("Entities: %d\n", total)
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-10s %d\n", name, counts[name])
	}
}

func cmdResearch(cfg *config.Config, args []string) {
	data := readFileArg(cfg, args, "Usage: parktool research <file>")

	invented, uninvented, err := rct12.DecodeResearchList(data)
	if err != nil {
		logger.Error("decoding research list", zap.Error(err))
		os.Exit(1)
	}

	fmt.Printf("Researched:  %d items\n", len(invented))
	fmt.Printf("Uninvented:  %d items\n", len(uninvented))
	for _, item := range uninvented {
		kind := "scenery"
		if item.Type == rct12.ResearchEntryTypeRide {
			kind = "ride"
		}
		fmt.Printf("  entry %3d  base ride type %3d  %s  category %d\n",
			item.EntryIndex, item.BaseRideType, kind, item.Category)
	}
}
