package main

import "mailcorpus/cmd/mailcorpus/cmd"

func main() {
	cmd.Execute()
}
