package main

import (
	"github.com/BitLeap/BitLeap-Backend/api"
)

var envPath string = "."

func main() {
	server := api.NewServer(envPath)
	server.Start()
}
