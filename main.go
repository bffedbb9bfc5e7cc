package main

import "number-management-service/cmd"

func main() {
	cmd.Execute()
}
