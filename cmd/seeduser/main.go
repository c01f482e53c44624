// cmd/seeduser crea o actualiza un usuario con su hash bcrypt.
// Uso: go run ./cmd/seeduser -username admin -password admin1234
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gleydi12/web-inventario/internal/config"
	"github.com/gleydi12/web-inventario/internal/infra"
	"github.com/gleydi12/web-inventario/internal/repository"
	"github.com/gleydi12/web-inventario/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	username := flag.String("username", "admin", "nombre de usuario")
	password := flag.String("password", "", "contraseña (mínimo 4 caracteres)")
	nombre := flag.String("nombre", "Administrador", "nombre visible")
	flag.Parse()

	if len(*password) < 4 {
		log.Fatal().Msg("-password es obligatorio (mínimo 4 caracteres)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	db, err := infra.NewDatabase(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect error")
	}

	auth := service.NewAuthService(repository.NewUsuarioRepository(db), cfg)
	u, err := auth.GuardarUsuario(context.Background(), *username, *nombre, *password)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo guardar el usuario")
	}
	fmt.Printf("Usuario '%s' (id %d) creado/actualizado\n", u.Username, u.ID)
}
