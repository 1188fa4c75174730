package main

import "github.com/fitin/storefront/cmd"

func main() {
	cmd.Start()
}
