// Command standplan runs the dev server (the static web assets plus
// the enrichment endpoint, both on one port) and manages the stored
// OpenAI API key.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/expokit/standplan/internal/config"
	"github.com/expokit/standplan/internal/credential"
	"github.com/expokit/standplan/internal/logger"
	"github.com/expokit/standplan/internal/server"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		return usage()
	}

	switch args[0] {
	case "serve":
		if len(args) != 1 {
			return usage()
		}
		return serve()
	case "key":
		return runKey(args[1:])
	default:
		return usage()
	}
}

func usage() int {
	fmt.Fprintln(os.Stderr, "Usage: standplan serve | standplan key set <api-key> | standplan key unset")
	return 1
}

func serve() int {
	// A missing .env is fine; the key may come from the keyring.
	_ = godotenv.Load()

	cfg, err := config.Load(config.DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "standplan: %v\n", err)
		return 1
	}

	log := logger.New(cfg.Server.LogFile)
	defer log.Sync()

	app := server.New(cfg, log)
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("serving",
		zap.String("addr", addr),
		zap.String("static_dir", cfg.Server.StaticDir))

	if err := app.Listen(addr); err != nil {
		log.Error("server stopped", zap.Error(err))
		return 1
	}
	return 0
}

// runKey stores or removes the OpenAI API key the enrichment endpoint
// falls back to when OPENAI_API_KEY is unset.
func runKey(args []string) int {
	switch {
	case len(args) == 2 && args[0] == "set":
		if err := credential.Set(credential.OpenAIKeyName, args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "standplan: %v\n", err)
			return 1
		}
		fmt.Println("OpenAI API key stored.")
		return 0
	case len(args) == 1 && args[0] == "unset":
		if err := credential.Delete(credential.OpenAIKeyName); err != nil {
			fmt.Fprintf(os.Stderr, "standplan: %v\n", err)
			return 1
		}
		fmt.Println("OpenAI API key removed.")
		return 0
	default:
		return usage()
	}
}
