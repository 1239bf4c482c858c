package main

import "github.com/chris/botbro/internal/cli"

func main() {
	cli.Execute()
}
