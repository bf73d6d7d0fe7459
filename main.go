package main

import "github.com/ManHinnn0509/owmidiconverter/cmd"

func main() {
	cmd.Execute()
}
