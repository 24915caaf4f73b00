package main

import "github.com/longkey1/agentchat/cmd"

func main() {
	cmd.Execute()
}
