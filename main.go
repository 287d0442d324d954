package main

import "github.com/kmacinski/veil/cmd"

func main() {
	cmd.Execute()
}
