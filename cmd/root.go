package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "owmidi",
	Short: "Turns MIDI files into workshop rules",
	Long:  `Turns MIDI files into workshop rules that drive an in-game music bot choir.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
