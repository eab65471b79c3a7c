package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/xyproto/numed"
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 && (args[0] == "--version" || args[0] == "-V") {
		fmt.Printf("numed %s\n", numed.Version)
		return
	}
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}

	tty, err := numed.OpenTTY()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing terminal: %s\n", err)
		os.Exit(1)
	}
	defer tty.Close()

	e, err := numed.New(tty, numed.DiskStore{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing editor: %s\n", err)
		os.Exit(1)
	}
	if logfile := os.Getenv("NUMED_LOG"); logfile != "" {
		f, err := os.OpenFile(logfile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %s\n", err)
			os.Exit(1)
		}
		defer f.Close()
		e.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if len(args) > 0 {
		if err := e.Open(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file: %s\n", err)
			os.Exit(1)
		}
	}

	if err := tty.EnableRawMode(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	// Restore the terminal on SIGTERM and SIGHUP
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		<-sigCh
		tty.Close()
		os.Exit(0)
	}()

	if err := e.Run(); err != nil {
		tty.Close()
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
