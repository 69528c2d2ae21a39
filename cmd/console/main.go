// Консольный калькулятор: движок без сервера и без внешних хранилищ.
// Читает нажатия с stdin посимвольно и печатает дисплей после каждой клавиши.
//
// Клавиши: 0-9 + - * / = . n (знак) b (backspace) c (CE) C (сброс), q — выход.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"megaCalc/internal/domain"
	"megaCalc/internal/engine"
)

const displayWidth = 9

func main() {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	eng := engine.New(displayWidth, log)

	fmt.Println("калькулятор: 0-9 + - * / = . n b c C, q — выход")
	fmt.Printf("[%s]\n", eng.Display())

	in := bufio.NewReader(os.Stdin)
	for {
		r, _, err := in.ReadRune()
		if err != nil {
			return
		}
		switch r {
		case 'q':
			return
		case '\n', '\r', ' ', '\t':
			continue
		}

		k := domain.ParseKey(r)
		if k.Kind == domain.KindUnknown {
			fmt.Printf("неизвестная клавиша %q\n", r)
			continue
		}
		fmt.Printf("[%s]\n", eng.Apply(k))
	}
}
