package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/VadWill/Pepe/assistant"
	"github.com/VadWill/Pepe/menu"
)

func main() {
	bot := assistant.New(menu.Default())
	order := assistant.NewOrder()

	green := color.New(color.FgGreen)
	blue := color.New(color.FgBlue)

	green.Println(assistant.Greeting)
	fmt.Println(assistant.HelpMessage)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println()
		blue.Print("You: ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		if assistant.IsExitWord(input) {
			green.Println(assistant.Farewell)
			return
		}

		fmt.Println()
		green.Print("Assistant: ")
		fmt.Println(bot.Respond(input, order))
	}
}
