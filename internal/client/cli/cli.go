package cli

import (
	"fmt"
	"strconv"

	"github.com/iudanet/leetkeeper/internal/client/data"
	"github.com/iudanet/leetkeeper/internal/client/iocli"
)

// Cli объединяет зависимости неинтерактивных команд
type Cli struct {
	dataService data.Service
	io          iocli.IO
	dbPath      string
}

// New создает CLI поверх data сервиса
func New(dataService data.Service, io iocli.IO, dbPath string) *Cli {
	return &Cli{
		dataService: dataService,
		io:          io,
		dbPath:      dbPath,
	}
}

// PrintUsage выводит справку по командам
func (c *Cli) PrintUsage() {
	c.io.Printf("%s", usageTemplate)
}

// parseProblemID разбирает позиционный аргумент <id>
func parseProblemID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing problem id")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid problem id %q: %w", args[0], err)
	}
	return id, nil
}

// readText возвращает текст правки: из аргументов или интерактивно
func (c *Cli) readText(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return c.io.ReadInput(prompt)
}
