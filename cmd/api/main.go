package main

import (
	"log"

	"github.com/bookmymovie/booking-system/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		log.Fatal(err)
	}
}
