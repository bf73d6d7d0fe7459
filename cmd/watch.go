package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
)

var watchOut string

func init() {
	addOptionFlags(watchCmd)
	watchCmd.Flags().StringVar(&watchOut, "out", "rules.txt", "file the rules are rewritten to")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <file.mid>",
	Short: "Re-converts a MIDI file whenever it changes",
	Long:  `Re-converts a MIDI file whenever it changes`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		watch(args[0])
	},
}

func watch(path string) {
	reconvert := func() {
		if err := runConvert(path, watchOut); err != nil {
			fmt.Fprintf(os.Stderr, "conversion failed: %v\n", err)
			return
		}
		fmt.Printf("wrote %v\n", watchOut)
	}

	// editors and exporters fire several writes per save; collapse them
	// into one conversion
	debounced := debounce.New(500 * time.Millisecond)

	var lastMod time.Time
	for {
		if info, err := os.Stat(path); err == nil && info.ModTime() != lastMod {
			lastMod = info.ModTime()
			debounced(reconvert)
		}
		time.Sleep(250 * time.Millisecond)
	}
}
