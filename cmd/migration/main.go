package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/sistemapdv/sistema-pdv/internal/infrastructure/database"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	down := flag.Bool("down", false, "desfaz a última migração")
	force := flag.Int("force", -1, "força a versão registrada sem executar migrações")
	flag.Parse()

	switch {
	case *force >= 0:
		if err := database.ForceMigrationVersion(*force); err != nil {
			log.Fatalf("Erro ao forçar versão: %v", err)
		}
		log.Printf("Versão forçada para %d", *force)
	case *down:
		if err := database.RollbackMigration(); err != nil {
			log.Fatalf("Erro ao desfazer migração: %v", err)
		}
		log.Println("Migração desfeita com sucesso!")
	default:
		if err := database.RunMigrations(); err != nil {
			log.Fatalf("Erro ao executar migrações: %v", err)
		}
		log.Println("Migrações executadas com sucesso!")
	}
}
