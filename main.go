package main

import (
	"childcare-center-backend/cmd/server"
)

func main() {
	server.Init()
	server.Run()
}
