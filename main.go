package main

import "github.com/jsphweid/harmonics/cmd"

func main() {
	cmd.Execute()
}
