package main

import (
	"context"
	"fmt"
	"os"

	"github.com/marcelsud/library-api/config"
	"github.com/marcelsud/library-api/internal/database"
)

/*
Migrate - aplica o schema do PostgreSQL

Este comando:
- Carrega as variáveis POSTGRES_* via Config
- Conecta ao PostgreSQL
- Aplica internal/database/schema.sql (todas as instruções são idempotentes)

Execute com:
  go run cmd/migrate/main.go

Certifique-se de que o PostgreSQL está rodando (docker-compose up)
*/

func main() {
	// 1. Carregar configuração
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Printf("❌ Error loading config: %v\n", err)
		os.Exit(1)
	}

	// 1a. Validar configuração PostgreSQL
	if err := cfg.ValidatePostgres(); err != nil {
		fmt.Printf("❌ Configuration validation failed: %v\n", err)
		os.Exit(1)
	}

	// 2. Conectar ao PostgreSQL
	fmt.Printf("🔗 Connecting to PostgreSQL at %s:%s...\n", cfg.PostgresHost, cfg.PostgresPort)
	db, err := database.Open(cfg.PostgresConnectionString())
	if err != nil {
		fmt.Printf("❌ Error connecting to PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()
	fmt.Println("✅ Connected to PostgreSQL!")

	// 3. Aplicar o schema
	fmt.Println("\n📝 Applying schema...")
	if err := database.Migrate(context.Background(), db); err != nil {
		fmt.Printf("❌ Error applying schema: %v\n", err)
		db.Close()
		os.Exit(1)
	}
	fmt.Println("✅ Schema applied!")
}
