// Copyright 2026 go-bitexpand Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command bitexpand expands bytes into 3-bit runs from the command line.
//
// Usage:
//
//	bitexpand 0x80 255 0b101          # print expanded words and lanes
//	bitexpand -format bits 0xA5       # show the runs of each word
//	bitexpand -stream < in > out      # expand a byte stream (3 bytes per byte)
//	bitexpand -contract < out > in    # decode a stream, majority-voting each run
//
// Values accept Go integer prefixes (0x, 0o, 0b). Values outside [0, 255] are
// rejected and the command exits with status 1. Negative values look like
// flags, so they must follow a "--" separator:
//
//	bitexpand -- -1                   # rejected as out of range
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/ajroetker/go-bitexpand/expand"
)

// streamChunk is the number of input bytes expanded per write in stream mode.
const streamChunk = 4096

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("bitexpand", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		format   = fs.String("format", "lanes", "Output format: hex, lanes or bits")
		color    = fs.String("color", "auto", "Color bit runs: auto, always or never")
		stream   = fs.Bool("stream", false, "Expand stdin to stdout")
		contract = fs.Bool("contract", false, "Decode an expanded stream from stdin to stdout")
		verbose  = fs.Bool("v", false, "Enable debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := zap.NewNop()
	if *verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
	}
	defer logger.Sync()
	expand.SetLogger(logger)
	defer expand.SetLogger(nil)

	switch {
	case *stream && *contract:
		return errors.New("-stream and -contract are mutually exclusive")
	case *stream:
		return expandStream(stdin, stdout)
	case *contract:
		return contractStream(stdin, stdout, stderr, logger)
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("no values given")
	}

	r, err := newRenderer(*format, *color, stdout)
	if err != nil {
		return err
	}
	for _, arg := range fs.Args() {
		value, err := strconv.ParseInt(arg, 0, 0)
		if err != nil {
			return fmt.Errorf("parse %q: %w", arg, err)
		}
		lanes, err := expand.Expand(int(value))
		if err != nil {
			return err
		}
		logger.Debug("expanded", zap.Int64("value", value), zap.Uint32("word", lanes.Word()))
		fmt.Fprintln(stdout, r.render(uint8(value), lanes))
	}
	return nil
}

func expandStream(stdin io.Reader, stdout io.Writer) error {
	in := bufio.NewReaderSize(stdin, streamChunk)
	out := bufio.NewWriter(stdout)
	buf := make([]byte, streamChunk)
	expanded := make([]byte, 0, expand.Factor*streamChunk)

	for {
		n, err := in.Read(buf)
		if n > 0 {
			expanded = expand.AppendExpanded(expanded[:0], buf[:n])
			if _, werr := out.Write(expanded); werr != nil {
				return fmt.Errorf("write: %w", werr)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
	}
	return out.Flush()
}

func contractStream(stdin io.Reader, stdout, stderr io.Writer, logger *zap.Logger) error {
	out := bufio.NewWriter(stdout)
	buf := make([]byte, expand.Factor*streamChunk)
	decoded := make([]byte, streamChunk)

	var offset int64
	total := 0
	for {
		n, err := io.ReadFull(stdin, buf)
		if err == io.EOF {
			break
		}
		if err != nil && err != io.ErrUnexpectedEOF {
			return fmt.Errorf("read: %w", err)
		}

		m, corrected, cerr := expand.ContractBytes(decoded, buf[:n])
		if cerr != nil {
			return fmt.Errorf("contract at offset %d: %w", offset+int64(n-n%expand.Factor), cerr)
		}
		if corrected > 0 {
			logger.Debug("corrected bits", zap.Int64("offset", offset), zap.Int("bits", corrected))
		}
		total += corrected
		offset += int64(n)

		if _, werr := out.Write(decoded[:m]); werr != nil {
			return fmt.Errorf("write: %w", werr)
		}
		if err == io.ErrUnexpectedEOF {
			break
		}
	}
	if err := out.Flush(); err != nil {
		return err
	}
	if total > 0 {
		fmt.Fprintf(stderr, "corrected %d bits\n", total)
	}
	return nil
}
