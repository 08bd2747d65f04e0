package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-product-keeper/internal/adapter"
	"github.com/MKhiriev/go-product-keeper/internal/logger"
	"github.com/MKhiriev/go-product-keeper/models"
)

// Usage lists the supported commands.
const Usage = `usage: product-client [flags] <command> [operands]

commands:
  list                                  list all products
  get <id>                              show one product
  create <name> <maker> <price>         create a product (token required)
  update <id> <name> <maker> <price>    replace a product (token required)
  delete <id>                           delete a product (token required)
  version                               show the server build information
`

type command struct {
	args int
	run  func(ctx context.Context, operands []string) (any, error)
}

type App struct {
	adapter adapter.ProductAdapter
	out     io.Writer

	commands map[string]command

	logger *logger.Logger
}

func NewApp(productAdapter adapter.ProductAdapter, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		adapter: productAdapter,
		out:     out,
		logger:  logger,
	}

	a.commands = map[string]command{
		"list":    {args: 0, run: a.list},
		"get":     {args: 1, run: a.get},
		"create":  {args: 3, run: a.create},
		"update":  {args: 4, run: a.update},
		"delete":  {args: 1, run: a.delete},
		"version": {args: 0, run: a.version},
	}

	return a
}

// Run executes args[0] with the remaining operands and prints the result.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	name := strings.ToLower(args[0])
	cmd, ok := a.commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	operands := args[1:]
	if len(operands) != cmd.args {
		return fmt.Errorf("%w: %s expects %d, got %d", ErrWrongArgs, name, cmd.args, len(operands))
	}

	a.logger.Debug().Str("command", name).Strs("operands", operands).Msg("running command")

	result, err := cmd.run(ctx, operands)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return a.print(result)
}

func (a *App) print(v any) error {
	if v == nil {
		return nil
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *App) list(ctx context.Context, _ []string) (any, error) {
	products, err := a.adapter.List(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (a *App) get(ctx context.Context, operands []string) (any, error) {
	id, err := parseNumber("id", operands[0])
	if err != nil {
		return nil, err
	}
	return a.adapter.Get(ctx, id)
}

func (a *App) create(ctx context.Context, operands []string) (any, error) {
	input, err := parseInput(operands)
	if err != nil {
		return nil, err
	}
	return a.adapter.Create(ctx, input)
}

func (a *App) update(ctx context.Context, operands []string) (any, error) {
	id, err := parseNumber("id", operands[0])
	if err != nil {
		return nil, err
	}

	input, err := parseInput(operands[1:])
	if err != nil {
		return nil, err
	}
	return a.adapter.Update(ctx, id, input)
}

func (a *App) delete(ctx context.Context, operands []string) (any, error) {
	id, err := parseNumber("id", operands[0])
	if err != nil {
		return nil, err
	}
	return nil, a.adapter.Delete(ctx, id)
}

func (a *App) version(ctx context.Context, _ []string) (any, error) {
	return a.adapter.Version(ctx)
}

// parseInput reads name, maker and price. Field rules are left to the server.
func parseInput(operands []string) (models.ProductInput, error) {
	price, err := parseNumber("price", operands[2])
	if err != nil {
		return models.ProductInput{}, err
	}

	return models.ProductInput{
		Name:  operands[0],
		Maker: operands[1],
		Price: price,
	}, nil
}

func parseNumber(name, s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidNumber, name, s)
	}
	return n, nil
}
