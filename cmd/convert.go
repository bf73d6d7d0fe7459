package cmd

import (
	"fmt"
	"os"

	"github.com/ManHinnn0509/owmidiconverter/constants"
	"github.com/ManHinnn0509/owmidiconverter/convert"
	"github.com/spf13/cobra"
)

var (
	flagStart  float64
	flagVoices int
	flagRaw    bool
	flagOut    string
)

// registered on both convert and watch; only one command runs at a time
func addOptionFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&flagStart, "start", 0, "skip notes before this many seconds")
	cmd.Flags().IntVar(&flagVoices, "voices", constants.DefaultVoices, "how many bots play simultaneously (6-11)")
	cmd.Flags().BoolVar(&flagRaw, "raw", false, "emit raw arrays instead of digit-packed ones")
}

func flagOptions() convert.Options {
	return convert.Options{
		StartTime: flagStart,
		Voices:    flagVoices,
		Compress:  !flagRaw,
	}
}

func init() {
	addOptionFlags(convertCmd)
	convertCmd.Flags().StringVar(&flagOut, "out", "", "write rules to this file instead of stdout")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <file.mid>",
	Short: "Converts a MIDI file to workshop rules",
	Long:  `Converts a MIDI file to workshop rules`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(args[0], flagOut)
	},
}

func runConvert(path string, out string) error {
	res, err := convert.ConvertFile(path, flagOptions())
	if err != nil {
		return err
	}

	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %v\n", w)
	}
	for _, e := range res.Errors {
		fmt.Fprintf(os.Stderr, "error: %v\n", e)
	}
	if len(res.Errors) > 0 {
		return fmt.Errorf("conversion produced no rules")
	}

	fmt.Fprintf(os.Stderr, "transposed %v notes, skipped %v, rules stop at %.3fs of %.3fs\n",
		res.TransposedNotes, res.SkippedNotes, res.StopTime, res.Duration)

	if out == "" {
		fmt.Println(res.Rules)
		return nil
	}
	return os.WriteFile(out, []byte(res.Rules+"\n"), 0644)
}
