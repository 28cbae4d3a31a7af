package main

import "github.com/consensys/go-gfptv/pkg/cmd"

func main() {
	cmd.Execute()
}
