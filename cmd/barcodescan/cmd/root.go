// Package cmd implements the barcodescan CLI commands, grounded on the
// cobra + log/slog + lumberjack command-tree pattern of
// _examples/jpfielding-dicos.go/cmd/ctl/cmd/root.go.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// NewRoot builds the barcodescan command tree.
func NewRoot(ctx context.Context, gitsha string) *cobra.Command {
	root := &cobra.Command{
		Use:   "barcodescan",
		Short: "detect and decode 2-D barcodes in image files",
		Long:  "barcodescan reads Aztec, Data Matrix and QR Code symbols out of PNG/JPEG/GIF image files; Micro QR and rMQR symbols are not read.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(newLogger(cmd))
		},
		Run: func(cmd *cobra.Command, args []string) {
			printCommandTree(cmd, 0)
		},
	}

	root.AddCommand(
		NewVersionCmd(gitsha),
		NewScanCmd(ctx),
	)

	pf := root.PersistentFlags()
	pf.String("log-level", "INFO", "log level (DEBUG, INFO, WARN, ERROR)")
	pf.String("log-file", "", "write logs to this file instead of stderr (rotated via lumberjack)")
	return root
}

// newLogger builds the process-wide structured logger from the
// --log-level/--log-file persistent flags, rotating log files through
// lumberjack when --log-file is set.
func newLogger(cmd *cobra.Command) *slog.Logger {
	logLevelFlag, _ := cmd.Flags().GetString("log-level")
	logFile, _ := cmd.Flags().GetString("log-file")

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(logLevelFlag))); err != nil {
		level = slog.LevelInfo
	}

	var writer io.Writer = os.Stderr
	if logFile != "" {
		writer = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		}
	}
	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

func printCommandTree(cmd *cobra.Command, indent int) {
	fmt.Println(strings.Repeat("\t", indent), cmd.Use+":", cmd.Short)
	for _, sub := range cmd.Commands() {
		printCommandTree(sub, indent+1)
	}
}

// NewVersionCmd reports the build's git SHA.
func NewVersionCmd(gitsha string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(gitsha)
		},
	}
}
