package main

import "hireboard_backend/internal/app"

func main() {
	app.Run()
}
