package main

import "github.com/AriusX7/advart/bot"

func main() {
	bot.Start()
}
