/*

A simple CLI app to dump the contents of an ExtremeGammon match archive
file (.xg) passed as a CLI argument.

*/
package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/ogier/pflag"
	"github.com/sirupsen/logrus"

	"github.com/mpetch/xgreplay"
	"github.com/mpetch/xgreplay/gamefile"
	"github.com/mpetch/xgreplay/rollout"
)

const (
	appName    = "xgdump"
	appVersion = "v0.1.0"
)

const (
	ExitCodeMissingArguments = 1
	ExitCodeFailedToImport   = 2
)

var (
	version  = pflag.BoolP("version", "v", false, "print version info and exit")
	segments = pflag.Bool("segments", true, "print the segment table (kind, extension, byte size)")
	records  = pflag.Bool("records", false, "decode and print gamefile records")
	rollouts = pflag.Bool("rollouts", false, "decode and print rollout records")
	outFile  = pflag.StringP("out", "o", "", "optional output file name (default stdout)")
	indent   = pflag.Bool("indent", true, "use indentation when formatting output")
	debug    = pflag.Bool("debug", false, "enable debug logging")
)

func main() {
	pflag.Parse()

	log := logrus.New()
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}

	if *version {
		logrus.StandardLogger().Out.Write([]byte(appName + " " + appVersion + "\n"))
		return
	}

	args := pflag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(ExitCodeMissingArguments)
	}

	destination := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			log.WithError(err).Fatal("failed to create output file")
		}
		defer f.Close()
		destination = f
	}

	enc := json.NewEncoder(destination)
	if *indent {
		enc.SetIndent("", "  ")
	}

	failed := false
	for _, path := range args {
		if err := dumpFile(log, enc, path); err != nil {
			log.WithError(err).WithField("file", path).Error("failed to import file")
			failed = true
		}
	}
	if failed {
		os.Exit(ExitCodeFailedToImport)
	}
}

type segmentSummary struct {
	Kind      string `json:"kind"`
	Extension string `json:"extension"`
	Bytes     int64  `json:"bytes"`
}

func dumpFile(log *logrus.Logger, enc *json.Encoder, path string) error {
	r, err := xgreplay.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	ctx := context.Background()

	var summaries []segmentSummary
	for {
		seg, err := r.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		info, statErr := seg.Handle.Stat()
		var size int64
		if statErr == nil {
			size = info.Size()
		}
		log.WithFields(logrus.Fields{
			"file": path,
			"kind": seg.Kind,
			"size": size,
		}).Debug("extracted segment")

		if *segments {
			summaries = append(summaries, segmentSummary{
				Kind:      seg.Kind.String(),
				Extension: seg.Extension,
				Bytes:     size,
			})
		}

		if *records && seg.Kind == xgreplay.KindGameFile {
			if err := dumpGamefile(enc, seg.Handle); err != nil {
				seg.Close()
				return err
			}
		}
		if *rollouts && seg.Kind == xgreplay.KindRollouts {
			if err := dumpRollouts(enc, seg.Handle); err != nil {
				seg.Close()
				return err
			}
		}

		if err := seg.Close(); err != nil {
			return err
		}
	}

	if *segments {
		return enc.Encode(struct {
			File     string           `json:"file"`
			Segments []segmentSummary `json:"segments"`
		}{path, summaries})
	}
	return nil
}

func dumpGamefile(enc *json.Encoder, r io.Reader) error {
	dec := gamefile.NewDecoder(r)
	for {
		rec, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
}

func dumpRollouts(enc *json.Encoder, r io.Reader) error {
	dec := rollout.NewDecoder(r)
	for {
		rec, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
}

func printUsage() {
	name := os.Args[0]
	os.Stderr.WriteString("Usage:\n\t" + name + " [FLAGS] matchfile.xg\n")
	os.Stderr.WriteString("\tRun with '-h' to see a list of available flags.\n")
}
