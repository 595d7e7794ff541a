package main

import "bikeshare/cmd"

func main() {
	cmd.Execute()
}
