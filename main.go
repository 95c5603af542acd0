package main

import "github.com/mabhi256/hprofdecoder/cmd"

func main() {
	cmd.Execute()
}
