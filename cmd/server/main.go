package main

import "reajuste/internal/app/server"

func main() {
	server.Run()
}
