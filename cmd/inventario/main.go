// Command inventario is the terminal client for the inventory backend. It
// drives the same list/search/form views a browser would, either against the
// REST API or, with -local, against seeded in-memory data.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gleydi12/web-inventario/internal/config"
	"github.com/gleydi12/web-inventario/internal/gateway"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `uso: inventario [-local] [-api URL] <comando> [argumentos]

comandos:
  login -u usuario -p contraseña
  logout
  listar <entidad> [-q texto]
  crear <entidad> [campos]
  editar <entidad> <id> [campos]
  borrar <entidad> <id>
  detalle <compra|venta> -doc N -producto N -cantidad N [-precio P]

entidades: productos, proveedores, compras, ventas, detalles-compras, detalles-ventas

campos de crear/editar:
  productos    -nombre -descripcion -precio -stock
  proveedores  -nombre -telefono -email
  compras      -proveedor -fecha
  ventas       -fecha
`

var errUso = errors.New("uso incorrecto")

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, args []string, out, errOut io.Writer) int {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: errOut, NoColor: true}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(errOut, "config:", err)
		return 1
	}

	fs := flag.NewFlagSet("inventario", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() { fmt.Fprint(errOut, usage) }
	local := fs.Bool("local", false, "usar datos locales de ejemplo en lugar de la API")
	api := fs.String("api", cfg.APIURL, "URL base de la API")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	tokens := gateway.FileToken{Path: cfg.TokenFile}
	var opts []gateway.Option
	if cfg.APITimeoutSeconds > 0 {
		opts = append(opts, gateway.WithTimeout(time.Duration(cfg.APITimeoutSeconds)*time.Second))
	}
	app := &app{
		out:    out,
		local:  *local,
		client: gateway.New(*api, tokens, opts...),
		tokens: tokens,
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "login":
		err = app.login(ctx, rest)
	case "logout":
		err = tokens.Clear()
	case "listar":
		err = app.listar(ctx, rest)
	case "crear", "editar":
		err = app.guardar(ctx, cmd, rest)
	case "borrar":
		err = app.borrar(ctx, rest)
	case "detalle":
		err = app.detalle(ctx, rest)
	default:
		err = fmt.Errorf("%w: comando desconocido %q", errUso, cmd)
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUso), errors.Is(err, flag.ErrHelp):
		fmt.Fprintln(errOut, err)
		fmt.Fprint(errOut, usage)
		return 2
	default:
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}
}
