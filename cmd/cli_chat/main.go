package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"wellness-coach/internal/service"
)

func main() {
	reader := bufio.NewReader(os.Stdin)
	advisor := service.Advisor{}

	fmt.Println("===== Wellness Coach =====")
	fmt.Println("Escribe tu consulta (/exit para salir).")

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		input := strings.TrimSpace(line)
		if input == "/exit" {
			return
		}

		fmt.Println()
		fmt.Println(advisor.Reply(input))
		fmt.Println()
	}
}
