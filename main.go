package main

import "github.com/Drolfothesgnir/whocolor/cmd"

func main() {
	cmd.Execute()
}
