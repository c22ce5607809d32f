// Команда menuctl проверяет меню офлайн: резолв имён, цены, расчёт корзины.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
