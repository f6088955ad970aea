// Ikona генерирует мастер-иконку приложения Rsync Studio: фиолетовый
// круг, две золотые дуговые стрелки против часовой стрелки и букву "R"
// по центру. Результат - icon_1024.png (RGBA, 1024×1024).
//
// Запуск: ikona [флаги] [директория]
// Без аргументов файл пишется в текущую директорию.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"ikona/internal/app"
)

// Version устанавливается при сборке через -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	genVariants := flag.Bool("variants", false, "дополнительно вывести платформенные варианты (PNG, ICO, ICNS)")
	configPath := flag.String("config", "", "путь к JSON-описанию иконки")
	preset := flag.String("preset", "", "имя встроенного пресета")
	showVersion := flag.Bool("version", false, "показать версию и выйти")
	flag.Parse()

	if *showVersion {
		fmt.Println("ikona", Version)
		return
	}

	dir := "."
	if flag.NArg() > 0 {
		dir = flag.Arg(0)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Не удалось создать директорию %s: %v", dir, err)
	}

	a, err := app.New(app.Options{
		OutDir:     dir,
		Variants:   *genVariants,
		ConfigPath: *configPath,
		Preset:     *preset,
	})
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}

	master, extra, err := a.Run()
	if err != nil {
		log.Fatalf("Ошибка генерации: %v", err)
	}
	for _, p := range extra {
		log.Printf("Создан: %s", p)
	}

	fmt.Printf("Сохранено: %s\n", master)
	if *genVariants {
		fmt.Println("Платформенные варианты записаны рядом с мастер-иконкой.")
	} else {
		fmt.Println("Теперь запустите: ikona -variants - чтобы получить платформенные размеры и форматы.")
	}
}
