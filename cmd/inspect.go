package cmd

import (
	"fmt"

	"github.com/ManHinnn0509/owmidiconverter/midi"
	"github.com/ManHinnn0509/owmidiconverter/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Summarizes a MIDI file's note timeline",
	Long:  `Summarizes a MIDI file's note timeline`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inspect(args[0])
	},
}

func inspect(path string) {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		panic(err.Error())
	}
	tl := midi.BuildTimeline(parsed)

	counts := make([]int, 0, len(tl.Tracks))
	for i, track := range tl.Tracks {
		fmt.Printf("track %v: channel %v, %v note ons\n", i, track.Channel, len(track.Events))
		counts = append(counts, len(track.Events))
	}
	fmt.Printf("tracks: %v\n", len(tl.Tracks))
	fmt.Printf("note ons: %v\n", util.Sum(counts))
	fmt.Printf("duration: %.3fs\n", tl.Duration)
}
