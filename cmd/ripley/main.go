// Command ripley samples, verifies and persists Ripley's K curves.
//
// Usage:
//
//	ripley [glog flags] sample [flags]
//	ripley [glog flags] verify [flags]
//	ripley [glog flags] axes [flags]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
)

func main() {
	flag.Parse()
	defer glog.Flush()

	if err := run(context.Background(), flag.Args(), os.Stdout, os.Stderr); err != nil {
		glog.Errorf("ripley: %v", err)
		glog.Flush()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("please specify a subcommand [sample|verify|axes]")
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "sample":
		f, err := parseSampleFlags(args, stderr)
		if err != nil {
			return err
		}
		return runSample(ctx, f, stdout)
	case "verify":
		f, err := parseVerifyFlags(args, stderr)
		if err != nil {
			return err
		}
		return runVerify(ctx, f, stdout)
	case "axes":
		f, err := parseAxesFlags(args, stderr)
		if err != nil {
			return err
		}
		return runAxes(ctx, f, stdout)
	}
	return fmt.Errorf("unrecognized command %q, must be one of [sample|verify|axes]", cmd)
}
