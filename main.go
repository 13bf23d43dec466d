package main

import "golang-netshare/cmd"

func main() {
	cmd.Execute()
}
