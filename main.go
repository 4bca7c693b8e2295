package main

import "campus-connect/cmd/server"

func main() {
	server.Init()
	server.Run()
}
