package main

import "github.com/nfrund/sellerprofile/cmd/profilectl/cmd"

func main() {
	cmd.Execute()
}
